package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/mark-john-ignacio/school-cashier-system/app/models"
)

// PaymentFilters represents filtering options for the payment ledger.
type PaymentFilters struct {
	Search         string
	StudentID      string
	UserID         string
	PaymentMethod  string
	PaymentPurpose string
	DateFrom       string
	DateTo         string
	IncludeVoided  bool
	SortBy         string
	SortOrder      string
	Limit          int
	Offset         int
}

var paymentSortColumns = map[string]string{
	"payment_date":   "p.payment_date",
	"receipt_number": "p.receipt_number",
	"amount":         "p.amount",
	"created_at":     "p.created_at",
}

const paymentSelect = `SELECT p.id, p.receipt_number, p.student_id, p.user_id, p.amount,
		  p.payment_date, p.payment_purpose, p.payment_method, p.notes,
		  p.printed_at, p.created_at, p.deleted_at,
		  s.student_number, s.first_name, s.last_name,
		  u.first_name AS cashier_first_name, u.last_name AS cashier_last_name
		  FROM payments p
		  LEFT JOIN students s ON p.student_id = s.id
		  LEFT JOIN users u ON p.user_id = u.id`

func scanPayment(scanner interface {
	Scan(dest ...interface{}) error
}) (*models.Payment, error) {
	payment := &models.Payment{}
	var studentNumber, studentFirst, studentLast *string
	var cashierFirst, cashierLast *string

	err := scanner.Scan(
		&payment.ID, &payment.ReceiptNumber, &payment.StudentID, &payment.UserID, &payment.Amount,
		&payment.PaymentDate, &payment.PaymentPurpose, &payment.PaymentMethod, &payment.Notes,
		&payment.PrintedAt, &payment.CreatedAt, &payment.DeletedAt,
		&studentNumber, &studentFirst, &studentLast,
		&cashierFirst, &cashierLast,
	)
	if err != nil {
		return nil, err
	}

	if studentNumber != nil {
		payment.Student = &models.Student{
			ID:            payment.StudentID,
			StudentNumber: *studentNumber,
			FirstName:     *studentFirst,
			LastName:      *studentLast,
		}
	}
	if cashierFirst != nil {
		payment.Cashier = &models.User{ID: payment.UserID, FirstName: *cashierFirst, LastName: *cashierLast}
	}
	return payment, nil
}

// receiptPrefix is the shared "RCP-YYYYMMDD-" part of a day's receipts.
// receiptNow is the clock receipts are issued under. Overridable in tests.
var receiptNow = time.Now

// receiptDay is the calendar day a payment's receipt is numbered under:
// the day it is recorded. A backdated payment_date never shifts the
// receipt into a past day's sequence.
func receiptDay(payment *models.Payment) time.Time {
	return receiptNow()
}

func receiptPrefix(day time.Time) string {
	return fmt.Sprintf("RCP-%s-", day.Format("20060102"))
}

// formatReceiptNumber renders a receipt with a zero-padded daily sequence.
func formatReceiptNumber(day time.Time, sequence int) string {
	return fmt.Sprintf("%s%04d", receiptPrefix(day), sequence)
}

// nextReceiptNumber computes the next receipt for the given day inside tx.
// Caller must hold the advisory lock for the day so two cashiers cannot read
// the same MAX. Voided payments keep their receipts, so they still count.
func nextReceiptNumber(tx *sql.Tx, day time.Time) (string, error) {
	query := `SELECT COALESCE(MAX(CAST(RIGHT(receipt_number, 4) AS INTEGER)), 0)
			  FROM payments
			  WHERE receipt_number LIKE $1`

	var lastSequence int
	if err := tx.QueryRow(query, receiptPrefix(day)+"%").Scan(&lastSequence); err != nil {
		return "", err
	}
	return formatReceiptNumber(day, lastSequence+1), nil
}

func insertPayment(db *sql.DB, payment *models.Payment) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	day := receiptDay(payment)

	// Serialize receipt generation per calendar day.
	lockKey := "payments:receipt:" + day.Format("20060102")
	if _, err := tx.Exec(`SELECT pg_advisory_xact_lock(hashtext($1))`, lockKey); err != nil {
		return err
	}

	receiptNumber, err := nextReceiptNumber(tx, day)
	if err != nil {
		return err
	}
	payment.ReceiptNumber = receiptNumber

	query := `INSERT INTO payments
			  (receipt_number, student_id, user_id, amount, payment_date, payment_purpose, payment_method, notes, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
			  RETURNING id, created_at`

	err = tx.QueryRow(query,
		payment.ReceiptNumber, payment.StudentID, payment.UserID, payment.Amount,
		payment.PaymentDate, payment.PaymentPurpose, payment.PaymentMethod, payment.Notes,
	).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// CreatePayment records a payment and assigns its receipt number. The unique
// index on receipt_number backstops the advisory lock; on a duplicate the
// whole generation is retried once before giving up.
func CreatePayment(db *sql.DB, payment *models.Payment) error {
	err := insertPayment(db, payment)
	if isUniqueViolation(err, "payments_receipt_number_key") {
		err = insertPayment(db, payment)
	}
	return err
}

func isUniqueViolation(err error, constraint string) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == "23505" && pqErr.Constraint == constraint
}

// VoidPayment excludes a payment from balances while keeping the ledger row
// and its receipt number.
func VoidPayment(db *sql.DB, id string) error {
	query := `UPDATE payments SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
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

// MarkReceiptPrinted stamps printed_at on first print only. Reprints leave
// the original timestamp untouched and are not an error.
func MarkReceiptPrinted(db *sql.DB, id string) error {
	query := `UPDATE payments SET printed_at = NOW() WHERE id = $1 AND printed_at IS NULL AND deleted_at IS NULL`
	_, err := db.Exec(query, id)
	return err
}

func buildPaymentConditions(filters PaymentFilters) ([]string, []interface{}) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if !filters.IncludeVoided {
		conditions = append(conditions, "p.deleted_at IS NULL")
	}

	if filters.Search != "" {
		searchPattern := "%" + strings.ToLower(filters.Search) + "%"
		conditions = append(conditions, fmt.Sprintf(`(
			LOWER(p.receipt_number) LIKE $%d
			OR LOWER(s.student_number) LIKE $%d
			OR LOWER(CONCAT(s.first_name, ' ', s.last_name)) LIKE $%d
		)`, argIndex, argIndex, argIndex))
		args = append(args, searchPattern)
		argIndex++
	}

	if filters.StudentID != "" {
		conditions = append(conditions, fmt.Sprintf("p.student_id = $%d", argIndex))
		args = append(args, filters.StudentID)
		argIndex++
	}

	if filters.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("p.user_id = $%d", argIndex))
		args = append(args, filters.UserID)
		argIndex++
	}

	if filters.PaymentMethod != "" {
		conditions = append(conditions, fmt.Sprintf("p.payment_method = $%d", argIndex))
		args = append(args, filters.PaymentMethod)
		argIndex++
	}

	if filters.PaymentPurpose != "" {
		conditions = append(conditions, fmt.Sprintf("p.payment_purpose = $%d", argIndex))
		args = append(args, filters.PaymentPurpose)
		argIndex++
	}

	if filters.DateFrom != "" {
		conditions = append(conditions, fmt.Sprintf("p.payment_date >= $%d", argIndex))
		args = append(args, filters.DateFrom)
		argIndex++
	}

	if filters.DateTo != "" {
		conditions = append(conditions, fmt.Sprintf("p.payment_date <= $%d", argIndex))
		args = append(args, filters.DateTo)
		argIndex++
	}

	return conditions, args
}

// GetPaymentsWithFilters returns one page of the ledger and the unpaginated total.
func GetPaymentsWithFilters(db *sql.DB, filters PaymentFilters) ([]*models.Payment, int, error) {
	conditions, args := buildPaymentConditions(filters)
	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := `SELECT COUNT(*) FROM payments p LEFT JOIN students s ON p.student_id = s.id` + where
	var total int
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortColumn, ok := paymentSortColumns[filters.SortBy]
	if !ok {
		sortColumn = "p.payment_date"
	}
	direction := "DESC"
	if strings.EqualFold(filters.SortOrder, "asc") {
		direction = "ASC"
	}

	query := paymentSelect + where + fmt.Sprintf(" ORDER BY %s %s, p.receipt_number DESC", sortColumn, direction)
	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, filters.Limit, filters.Offset)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, 0, err
		}
		payments = append(payments, payment)
	}
	if payments == nil {
		payments = []*models.Payment{}
	}
	return payments, total, rows.Err()
}

func GetPaymentByID(db *sql.DB, id string) (*models.Payment, error) {
	query := paymentSelect + ` WHERE p.id = $1`
	return scanPayment(db.QueryRow(query, id))
}

// GetPaymentsByStudent returns the student's non-voided payments, newest first.
func GetPaymentsByStudent(db *sql.DB, studentID string) ([]*models.Payment, error) {
	query := paymentSelect + ` WHERE p.student_id = $1 AND p.deleted_at IS NULL
			  ORDER BY p.payment_date DESC, p.receipt_number DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	if payments == nil {
		payments = []*models.Payment{}
	}
	return payments, rows.Err()
}

// SumPaymentsByStudent totals the student's non-voided payments.
func SumPaymentsByStudent(db *sql.DB, studentID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE student_id = $1 AND deleted_at IS NULL`
	var total decimal.Decimal
	err := db.QueryRow(query, studentID).Scan(&total)
	return total, err
}

// GetCashiers lists active users for the ledger's cashier filter dropdown.
func GetCashiers(db *sql.DB) ([]*models.User, error) {
	query := `SELECT id, email, first_name, last_name FROM users WHERE is_active = TRUE ORDER BY first_name, last_name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if users == nil {
		users = []*models.User{}
	}
	return users, rows.Err()
}
