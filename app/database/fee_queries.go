package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mark-john-ignacio/school-cashier-system/app/models"
)

// FeeFilters represents filtering options for fee structure listings.
type FeeFilters struct {
	GradeLevelID string
	SchoolYear   string
	ActiveOnly   bool
}

const feeSelect = `SELECT f.id, f.grade_level_id, f.fee_type, f.description, f.amount, f.school_year,
		  f.is_active, f.created_at, f.updated_at,
		  g.name AS grade_level_name, g.slug AS grade_level_slug
		  FROM fee_structures f
		  LEFT JOIN grade_levels g ON f.grade_level_id = g.id`

func scanFeeStructure(scanner interface {
	Scan(dest ...interface{}) error
}) (*models.FeeStructure, error) {
	fee := &models.FeeStructure{}
	var gradeLevelName, gradeLevelSlug *string

	err := scanner.Scan(
		&fee.ID, &fee.GradeLevelID, &fee.FeeType, &fee.Description, &fee.Amount, &fee.SchoolYear,
		&fee.IsActive, &fee.CreatedAt, &fee.UpdatedAt,
		&gradeLevelName, &gradeLevelSlug,
	)
	if err != nil {
		return nil, err
	}

	if gradeLevelName != nil {
		fee.GradeLevel = &models.GradeLevel{ID: fee.GradeLevelID, Name: *gradeLevelName, Slug: *gradeLevelSlug}
	}
	return fee, nil
}

func GetFeeStructures(db *sql.DB, filters FeeFilters) ([]*models.FeeStructure, error) {
	conditions := []string{}
	var args []interface{}
	argIndex := 1

	if filters.GradeLevelID != "" {
		conditions = append(conditions, fmt.Sprintf("f.grade_level_id = $%d", argIndex))
		args = append(args, filters.GradeLevelID)
		argIndex++
	}
	if filters.SchoolYear != "" {
		conditions = append(conditions, fmt.Sprintf("f.school_year = $%d", argIndex))
		args = append(args, filters.SchoolYear)
		argIndex++
	}
	if filters.ActiveOnly {
		conditions = append(conditions, "f.is_active = TRUE")
	}

	query := feeSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY g.display_order, f.school_year DESC, f.fee_type"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []*models.FeeStructure
	for rows.Next() {
		fee, err := scanFeeStructure(rows)
		if err != nil {
			return nil, err
		}
		fees = append(fees, fee)
	}
	if fees == nil {
		fees = []*models.FeeStructure{}
	}
	return fees, rows.Err()
}

func GetFeeStructureByID(db *sql.DB, id string) (*models.FeeStructure, error) {
	query := feeSelect + ` WHERE f.id = $1`
	return scanFeeStructure(db.QueryRow(query, id))
}

// SumActiveFees totals the active fee structures for a grade level. An empty
// schoolYear means all active rows count regardless of year.
func SumActiveFees(db *sql.DB, gradeLevelID, schoolYear string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0)
			  FROM fee_structures
			  WHERE grade_level_id = $1 AND is_active = TRUE
				AND ($2 = '' OR school_year = $2)`

	var total decimal.Decimal
	err := db.QueryRow(query, gradeLevelID, schoolYear).Scan(&total)
	return total, err
}

func CreateFeeStructure(db *sql.DB, fee *models.FeeStructure) error {
	query := `INSERT INTO fee_structures
			  (grade_level_id, fee_type, description, amount, school_year, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		fee.GradeLevelID, fee.FeeType, fee.Description, fee.Amount, fee.SchoolYear, fee.IsActive,
	).Scan(&fee.ID, &fee.CreatedAt, &fee.UpdatedAt)
}

func UpdateFeeStructure(db *sql.DB, fee *models.FeeStructure) error {
	query := `UPDATE fee_structures
			  SET grade_level_id = $1, fee_type = $2, description = $3, amount = $4,
				  school_year = $5, is_active = $6, updated_at = NOW()
			  WHERE id = $7`

	result, err := db.Exec(query,
		fee.GradeLevelID, fee.FeeType, fee.Description, fee.Amount,
		fee.SchoolYear, fee.IsActive, fee.ID,
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

// SetFeeStructureActive flips the is_active flag without touching amounts.
func SetFeeStructureActive(db *sql.DB, id string, active bool) error {
	query := `UPDATE fee_structures SET is_active = $1, updated_at = NOW() WHERE id = $2`
	result, err := db.Exec(query, active, id)
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

func DeleteFeeStructure(db *sql.DB, id string) error {
	query := `DELETE FROM fee_structures WHERE id = $1`
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
