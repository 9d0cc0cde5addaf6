package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mark-john-ignacio/school-cashier-system/app/models"
)

// StudentFilters represents filtering options for the student directory.
type StudentFilters struct {
	Search       string
	GradeLevelID string
	SectionID    string
	Status       string
	SortBy       string
	SortOrder    string
	Limit        int
	Offset       int
}

// studentSortColumns whitelists sortable fields to their SQL expressions.
var studentSortColumns = map[string]string{
	"student_number": "s.student_number",
	"last_name":      "s.last_name",
	"first_name":     "s.first_name",
	"created_at":     "s.created_at",
	"status":         "s.status",
}

const studentSelect = `SELECT s.id, s.student_number, s.first_name, s.middle_name, s.last_name,
		  s.grade_level_id, s.section_id, s.contact_number, s.email,
		  s.parent_name, s.parent_contact, s.parent_email, s.status, s.notes,
		  s.created_at, s.updated_at, s.deleted_at,
		  g.name AS grade_level_name, g.slug AS grade_level_slug,
		  sec.name AS section_name, sec.slug AS section_slug
		  FROM students s
		  LEFT JOIN grade_levels g ON s.grade_level_id = g.id
		  LEFT JOIN sections sec ON s.section_id = sec.id`

func scanStudent(scanner interface {
	Scan(dest ...interface{}) error
}) (*models.Student, error) {
	student := &models.Student{}
	var gradeLevelName, gradeLevelSlug, sectionName, sectionSlug *string

	err := scanner.Scan(
		&student.ID, &student.StudentNumber, &student.FirstName, &student.MiddleName, &student.LastName,
		&student.GradeLevelID, &student.SectionID, &student.ContactNumber, &student.Email,
		&student.ParentName, &student.ParentContact, &student.ParentEmail, &student.Status, &student.Notes,
		&student.CreatedAt, &student.UpdatedAt, &student.DeletedAt,
		&gradeLevelName, &gradeLevelSlug, &sectionName, &sectionSlug,
	)
	if err != nil {
		return nil, err
	}

	if gradeLevelName != nil {
		student.GradeLevel = &models.GradeLevel{ID: student.GradeLevelID, Name: *gradeLevelName, Slug: *gradeLevelSlug}
	}
	if sectionName != nil {
		student.Section = &models.Section{ID: student.SectionID, Name: *sectionName, Slug: *sectionSlug}
	}
	return student, nil
}

// buildStudentConditions translates filters into WHERE fragments. Shared by
// the count and page queries so both always agree.
func buildStudentConditions(filters StudentFilters) ([]string, []interface{}) {
	conditions := []string{"s.deleted_at IS NULL"}
	var args []interface{}
	argIndex := 1

	if filters.Search != "" {
		searchPattern := "%" + strings.ToLower(filters.Search) + "%"
		conditions = append(conditions, fmt.Sprintf(`(
			LOWER(s.student_number) LIKE $%d
			OR LOWER(s.first_name) LIKE $%d
			OR LOWER(s.middle_name) LIKE $%d
			OR LOWER(s.last_name) LIKE $%d
			OR LOWER(CONCAT(s.first_name, ' ', s.last_name)) LIKE $%d
			OR LOWER(CONCAT(s.first_name, ' ', s.middle_name, ' ', s.last_name)) LIKE $%d
		)`, argIndex, argIndex, argIndex, argIndex, argIndex, argIndex))
		args = append(args, searchPattern)
		argIndex++
	}

	if filters.GradeLevelID != "" {
		conditions = append(conditions, fmt.Sprintf("s.grade_level_id = $%d", argIndex))
		args = append(args, filters.GradeLevelID)
		argIndex++
	}

	if filters.SectionID != "" {
		conditions = append(conditions, fmt.Sprintf("s.section_id = $%d", argIndex))
		args = append(args, filters.SectionID)
		argIndex++
	}

	if filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("s.status = $%d", argIndex))
		args = append(args, filters.Status)
		argIndex++
	}

	return conditions, args
}

// GetStudentsWithFilters returns one page of students and the unpaginated total.
func GetStudentsWithFilters(db *sql.DB, filters StudentFilters) ([]*models.Student, int, error) {
	conditions, args := buildStudentConditions(filters)
	where := " WHERE " + strings.Join(conditions, " AND ")

	countQuery := `SELECT COUNT(*) FROM students s` + where
	var total int
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortColumn, ok := studentSortColumns[filters.SortBy]
	if !ok {
		sortColumn = "s.last_name"
	}
	direction := "ASC"
	if strings.EqualFold(filters.SortOrder, "desc") {
		direction = "DESC"
	}

	query := studentSelect + where + fmt.Sprintf(" ORDER BY %s %s, s.id", sortColumn, direction)
	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, filters.Limit, filters.Offset)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, student)
	}
	if students == nil {
		students = []*models.Student{}
	}
	return students, total, rows.Err()
}

func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	query := studentSelect + ` WHERE s.id = $1 AND s.deleted_at IS NULL`
	return scanStudent(db.QueryRow(query, id))
}

// StudentNumberExists checks the uniqueness backstop before insert. Excluded
// ID allows the check to pass for the row being updated.
func StudentNumberExists(db *sql.DB, studentNumber, excludedID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM students WHERE student_number = $1 AND ($2 = '' OR id::text != $2))`
	var exists bool
	err := db.QueryRow(query, studentNumber, excludedID).Scan(&exists)
	return exists, err
}

func CreateStudent(db *sql.DB, student *models.Student) error {
	query := `INSERT INTO students
			  (student_number, first_name, middle_name, last_name, grade_level_id, section_id,
			   contact_number, email, parent_name, parent_contact, parent_email, status, notes,
			   created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		student.StudentNumber, student.FirstName, student.MiddleName, student.LastName,
		student.GradeLevelID, student.SectionID, student.ContactNumber, student.Email,
		student.ParentName, student.ParentContact, student.ParentEmail, student.Status, student.Notes,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
}

// UpdateStudent writes every mutable field. student_number is immutable and
// deliberately absent from the SET list.
func UpdateStudent(db *sql.DB, student *models.Student) error {
	query := `UPDATE students
			  SET first_name = $1, middle_name = $2, last_name = $3,
				  grade_level_id = $4, section_id = $5,
				  contact_number = $6, email = $7,
				  parent_name = $8, parent_contact = $9, parent_email = $10,
				  status = $11, notes = $12, updated_at = NOW()
			  WHERE id = $13 AND deleted_at IS NULL`

	result, err := db.Exec(query,
		student.FirstName, student.MiddleName, student.LastName,
		student.GradeLevelID, student.SectionID,
		student.ContactNumber, student.Email,
		student.ParentName, student.ParentContact, student.ParentEmail,
		student.Status, student.Notes, student.ID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteStudent soft-deletes the student. Historical payments stay linked.
func DeleteStudent(db *sql.DB, id string) error {
	query := `UPDATE students SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	result, err := db.Exec(query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
