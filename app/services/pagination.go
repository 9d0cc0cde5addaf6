package services

// PerPageOptions are the page sizes the list endpoints accept. Anything else
// falls back to the default.
var PerPageOptions = []int{10, 15, 25, 50}

const DefaultPerPage = 15

// NormalizePerPage clamps a requested page size to the allowed options.
func NormalizePerPage(perPage int) int {
	for _, option := range PerPageOptions {
		if perPage == option {
			return perPage
		}
	}
	return DefaultPerPage
}

// Pagination is the meta block returned alongside every paginated listing.
type Pagination struct {
	Page     int `json:"page"`
	PerPage  int `json:"per_page"`
	Total    int `json:"total"`
	LastPage int `json:"last_page"`
}

func NewPagination(page, perPage, total int) Pagination {
	if page < 1 {
		page = 1
	}
	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}
	return Pagination{Page: page, PerPage: perPage, Total: total, LastPage: lastPage}
}
