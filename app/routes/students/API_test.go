package students

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mark-john-ignacio/school-cashier-system/app/database"
	"github.com/mark-john-ignacio/school-cashier-system/app/models"
	"github.com/mark-john-ignacio/school-cashier-system/app/services"
)

func errorApp(err error) *fiber.App {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return handleServiceError(c, err)
	})
	return app
}

func TestHandleServiceErrorValidation(t *testing.T) {
	err := services.NewValidationError(errors.New("validation failed"),
		services.FieldError{Field: "student_number", Error: "this student number is already taken"})

	resp, testErr := errorApp(err).Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, testErr)
	assert.Equal(t, 422, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var payload struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "this student number is already taken", payload.Fields["student_number"])
}

func TestHandleServiceErrorNotFound(t *testing.T) {
	resp, err := errorApp(services.ErrNotFound).Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleServiceErrorConflict(t *testing.T) {
	resp, err := errorApp(&services.ConflictError{}).Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)
}

func TestHandleServiceErrorUnknown(t *testing.T) {
	resp, err := errorApp(errors.New("boom")).Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

type stubResolver struct {
	level        *models.GradeLevel
	section      *models.Section
	sectionScope string
}

func (s *stubResolver) ResolveGradeLevel(ref string) (*models.GradeLevel, error) {
	if s.level == nil {
		return nil, services.ErrNotFound
	}
	return s.level, nil
}

func (s *stubResolver) ResolveSection(ref, gradeLevelID string) (*models.Section, error) {
	s.sectionScope = gradeLevelID
	if s.section == nil {
		return nil, services.ErrNotFound
	}
	return s.section, nil
}

func filterApp(resolver *stubResolver, filters *database.StudentFilters) *fiber.App {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if err := applyRefFilters(c, resolver, filters); err != nil {
			return handleServiceError(c, err)
		}
		return c.SendStatus(204)
	})
	return app
}

func TestSectionFilterWithoutGradeLevel(t *testing.T) {
	resolver := &stubResolver{section: &models.Section{ID: "5f0f1f72-8a49-4d76-9127-6f9e01a2a001"}}
	var filters database.StudentFilters

	resp, err := filterApp(resolver, &filters).Test(httptest.NewRequest("GET", "/?section=mercy", nil))
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
	assert.Equal(t, resolver.section.ID, filters.SectionID)
	assert.Empty(t, resolver.sectionScope)
}

func TestSectionFilterScopedToGradeLevel(t *testing.T) {
	resolver := &stubResolver{
		level:   &models.GradeLevel{ID: "0d0e58db-24c5-49b9-b8a1-0a3f5c6f9002"},
		section: &models.Section{ID: "5f0f1f72-8a49-4d76-9127-6f9e01a2a001"},
	}
	var filters database.StudentFilters

	resp, err := filterApp(resolver, &filters).Test(httptest.NewRequest("GET", "/?grade_level=grade-1&section=mercy", nil))
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
	assert.Equal(t, resolver.level.ID, filters.GradeLevelID)
	assert.Equal(t, resolver.level.ID, resolver.sectionScope)
	assert.Equal(t, resolver.section.ID, filters.SectionID)
}

func TestSectionFilterUnknownSection(t *testing.T) {
	resolver := &stubResolver{}
	var filters database.StudentFilters

	resp, err := filterApp(resolver, &filters).Test(httptest.NewRequest("GET", "/?section=nope", nil))
	require.NoError(t, err)
	assert.Equal(t, 422, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var payload struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "section not found", payload.Fields["section"])
}
