package database

import (
	"database/sql"

	"github.com/mark-john-ignacio/school-cashier-system/app/models"
)

// GetGradeLevels returns all grade levels in display order.
func GetGradeLevels(db *sql.DB) ([]*models.GradeLevel, error) {
	query := `SELECT id, name, slug, display_order, created_at, updated_at
			  FROM grade_levels
			  WHERE deleted_at IS NULL
			  ORDER BY display_order, name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var levels []*models.GradeLevel
	for rows.Next() {
		level := &models.GradeLevel{}
		err := rows.Scan(&level.ID, &level.Name, &level.Slug, &level.DisplayOrder,
			&level.CreatedAt, &level.UpdatedAt)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	if levels == nil {
		levels = []*models.GradeLevel{}
	}
	return levels, rows.Err()
}

func GetGradeLevelByID(db *sql.DB, id string) (*models.GradeLevel, error) {
	level := &models.GradeLevel{}
	query := `SELECT id, name, slug, display_order, created_at, updated_at
			  FROM grade_levels WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, id).Scan(&level.ID, &level.Name, &level.Slug,
		&level.DisplayOrder, &level.CreatedAt, &level.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return level, nil
}

// GetGradeLevelBySlugOrName matches a slug first, then a name, case-insensitively.
func GetGradeLevelBySlugOrName(db *sql.DB, input string) (*models.GradeLevel, error) {
	level := &models.GradeLevel{}
	query := `SELECT id, name, slug, display_order, created_at, updated_at
			  FROM grade_levels
			  WHERE (LOWER(slug) = LOWER($1) OR LOWER(name) = LOWER($1)) AND deleted_at IS NULL
			  ORDER BY (LOWER(slug) = LOWER($1)) DESC
			  LIMIT 1`

	err := db.QueryRow(query, input).Scan(&level.ID, &level.Name, &level.Slug,
		&level.DisplayOrder, &level.CreatedAt, &level.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return level, nil
}

func CreateGradeLevel(db *sql.DB, level *models.GradeLevel) error {
	query := `INSERT INTO grade_levels (name, slug, display_order, created_at, updated_at)
			  VALUES ($1, $2, $3, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, level.Name, level.Slug, level.DisplayOrder).Scan(
		&level.ID, &level.CreatedAt, &level.UpdatedAt,
	)
}

// GetSections returns sections, optionally restricted to one grade level.
func GetSections(db *sql.DB, gradeLevelID string) ([]*models.Section, error) {
	query := `SELECT s.id, s.name, s.slug, s.display_order, s.grade_level_id, s.created_at, s.updated_at,
			  g.name AS grade_level_name
			  FROM sections s
			  LEFT JOIN grade_levels g ON s.grade_level_id = g.id
			  WHERE s.deleted_at IS NULL`
	args := []interface{}{}
	if gradeLevelID != "" {
		query += ` AND s.grade_level_id = $1`
		args = append(args, gradeLevelID)
	}
	query += ` ORDER BY s.display_order, s.name`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*models.Section
	for rows.Next() {
		section := &models.Section{}
		var gradeLevelName *string
		err := rows.Scan(&section.ID, &section.Name, &section.Slug, &section.DisplayOrder,
			&section.GradeLevelID, &section.CreatedAt, &section.UpdatedAt, &gradeLevelName)
		if err != nil {
			return nil, err
		}
		if gradeLevelName != nil && section.GradeLevelID != nil {
			section.GradeLevel = &models.GradeLevel{ID: *section.GradeLevelID, Name: *gradeLevelName}
		}
		sections = append(sections, section)
	}
	if sections == nil {
		sections = []*models.Section{}
	}
	return sections, rows.Err()
}

func GetSectionByID(db *sql.DB, id string) (*models.Section, error) {
	section := &models.Section{}
	query := `SELECT id, name, slug, display_order, grade_level_id, created_at, updated_at
			  FROM sections WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, id).Scan(&section.ID, &section.Name, &section.Slug,
		&section.DisplayOrder, &section.GradeLevelID, &section.CreatedAt, &section.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return section, nil
}

// GetSectionBySlugOrName matches a slug or name case-insensitively. When
// gradeLevelID is non-empty the match is scoped to sections of that grade
// level (or unowned sections).
func GetSectionBySlugOrName(db *sql.DB, input, gradeLevelID string) (*models.Section, error) {
	section := &models.Section{}
	query := `SELECT id, name, slug, display_order, grade_level_id, created_at, updated_at
			  FROM sections
			  WHERE (LOWER(slug) = LOWER($1) OR LOWER(name) = LOWER($1)) AND deleted_at IS NULL`
	args := []interface{}{input}
	if gradeLevelID != "" {
		query += ` AND (grade_level_id = $2 OR grade_level_id IS NULL)`
		args = append(args, gradeLevelID)
	}
	query += ` ORDER BY (LOWER(slug) = LOWER($1)) DESC, grade_level_id NULLS LAST LIMIT 1`

	err := db.QueryRow(query, args...).Scan(&section.ID, &section.Name, &section.Slug,
		&section.DisplayOrder, &section.GradeLevelID, &section.CreatedAt, &section.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return section, nil
}

func CreateSection(db *sql.DB, section *models.Section) error {
	query := `INSERT INTO sections (name, slug, display_order, grade_level_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, section.Name, section.Slug, section.DisplayOrder, section.GradeLevelID).Scan(
		&section.ID, &section.CreatedAt, &section.UpdatedAt,
	)
}
