package database

import (
	"database/sql"

	"github.com/mark-john-ignacio/school-cashier-system/app/models"
)

// GetStudentStats returns the dashboard headcount figures. Soft-deleted
// students are excluded entirely.
func GetStudentStats(db *sql.DB) (*models.StudentStats, error) {
	query := `SELECT COUNT(*),
			  COUNT(*) FILTER (WHERE status = 'active')
			  FROM students WHERE deleted_at IS NULL`

	stats := &models.StudentStats{}
	err := db.QueryRow(query).Scan(&stats.Total, &stats.Active)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// GetPaymentStats returns today's, this month's and this year's collections.
// Voided payments never count.
func GetPaymentStats(db *sql.DB) (*models.PaymentStats, error) {
	query := `SELECT
			  COALESCE(SUM(amount) FILTER (WHERE payment_date = CURRENT_DATE), 0),
			  COUNT(*) FILTER (WHERE payment_date = CURRENT_DATE),
			  COALESCE(SUM(amount) FILTER (WHERE date_trunc('month', payment_date) = date_trunc('month', CURRENT_DATE)), 0),
			  COALESCE(SUM(amount) FILTER (WHERE date_trunc('year', payment_date) = date_trunc('year', CURRENT_DATE)), 0)
			  FROM payments WHERE deleted_at IS NULL`

	stats := &models.PaymentStats{}
	err := db.QueryRow(query).Scan(&stats.Today, &stats.TodayCount, &stats.Monthly, &stats.Yearly)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// GetDailyTrend returns one point per day for the last `days` days, today
// included. Days with no payments appear with zero amounts.
func GetDailyTrend(db *sql.DB, days int) ([]models.TrendPoint, error) {
	query := `SELECT to_char(d.day, 'YYYY-MM-DD'),
			  COALESCE(SUM(p.amount), 0),
			  COUNT(p.id)
			  FROM generate_series(CURRENT_DATE - ($1 - 1) * INTERVAL '1 day', CURRENT_DATE, INTERVAL '1 day') AS d(day)
			  LEFT JOIN payments p ON p.payment_date = d.day::date AND p.deleted_at IS NULL
			  GROUP BY d.day
			  ORDER BY d.day`

	rows, err := db.Query(query, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trend []models.TrendPoint
	for rows.Next() {
		var point models.TrendPoint
		if err := rows.Scan(&point.Date, &point.Amount, &point.Count); err != nil {
			return nil, err
		}
		trend = append(trend, point)
	}
	if trend == nil {
		trend = []models.TrendPoint{}
	}
	return trend, rows.Err()
}

// GetMonthlyTrend returns one point per month for the last `months` months,
// the current month included. Empty months appear with zero amounts.
func GetMonthlyTrend(db *sql.DB, months int) ([]models.MonthTrendPoint, error) {
	query := `SELECT to_char(m.month, 'YYYY-MM'),
			  COALESCE(SUM(p.amount), 0),
			  COUNT(p.id)
			  FROM generate_series(
				  date_trunc('month', CURRENT_DATE) - ($1 - 1) * INTERVAL '1 month',
				  date_trunc('month', CURRENT_DATE),
				  INTERVAL '1 month') AS m(month)
			  LEFT JOIN payments p ON date_trunc('month', p.payment_date) = m.month AND p.deleted_at IS NULL
			  GROUP BY m.month
			  ORDER BY m.month`

	rows, err := db.Query(query, months)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trend []models.MonthTrendPoint
	for rows.Next() {
		var point models.MonthTrendPoint
		if err := rows.Scan(&point.Month, &point.Amount, &point.Count); err != nil {
			return nil, err
		}
		trend = append(trend, point)
	}
	if trend == nil {
		trend = []models.MonthTrendPoint{}
	}
	return trend, rows.Err()
}

// GetMethodDistribution breaks the current month's payments down by method.
func GetMethodDistribution(db *sql.DB) ([]models.MethodDistribution, error) {
	query := `SELECT payment_method, COUNT(*), COALESCE(SUM(amount), 0)
			  FROM payments
			  WHERE deleted_at IS NULL
				AND date_trunc('month', payment_date) = date_trunc('month', CURRENT_DATE)
			  GROUP BY payment_method
			  ORDER BY SUM(amount) DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var distribution []models.MethodDistribution
	for rows.Next() {
		var entry models.MethodDistribution
		if err := rows.Scan(&entry.Method, &entry.Count, &entry.Total); err != nil {
			return nil, err
		}
		distribution = append(distribution, entry)
	}
	if distribution == nil {
		distribution = []models.MethodDistribution{}
	}
	return distribution, rows.Err()
}

// GetPurposeDistribution returns the current month's top five purposes by
// collected amount.
func GetPurposeDistribution(db *sql.DB) ([]models.PurposeDistribution, error) {
	query := `SELECT payment_purpose, COUNT(*), COALESCE(SUM(amount), 0)
			  FROM payments
			  WHERE deleted_at IS NULL
				AND date_trunc('month', payment_date) = date_trunc('month', CURRENT_DATE)
			  GROUP BY payment_purpose
			  ORDER BY SUM(amount) DESC
			  LIMIT 5`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var distribution []models.PurposeDistribution
	for rows.Next() {
		var entry models.PurposeDistribution
		if err := rows.Scan(&entry.Purpose, &entry.Count, &entry.Total); err != nil {
			return nil, err
		}
		distribution = append(distribution, entry)
	}
	if distribution == nil {
		distribution = []models.PurposeDistribution{}
	}
	return distribution, rows.Err()
}

// recentPaymentsOrder sorts by the payment day first, then by recording time
// within the day, so a just-recorded backdated payment does not jump ahead of
// newer payment days.
const recentPaymentsOrder = "p.payment_date DESC, p.created_at DESC"

// GetRecentPayments returns the latest non-voided payments for the dashboard.
func GetRecentPayments(db *sql.DB, limit int) ([]models.RecentPayment, error) {
	query := `SELECT p.id, p.receipt_number,
			  CONCAT(s.first_name, ' ', s.last_name),
			  s.student_number, p.amount, p.payment_date, p.payment_purpose
			  FROM payments p
			  JOIN students s ON p.student_id = s.id
			  WHERE p.deleted_at IS NULL
			  ORDER BY ` + recentPaymentsOrder + `
			  LIMIT $1`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recent []models.RecentPayment
	for rows.Next() {
		var payment models.RecentPayment
		err := rows.Scan(&payment.ID, &payment.ReceiptNumber, &payment.StudentName,
			&payment.StudentNumber, &payment.Amount, &payment.PaymentDate, &payment.PaymentPurpose)
		if err != nil {
			return nil, err
		}
		recent = append(recent, payment)
	}
	if recent == nil {
		recent = []models.RecentPayment{}
	}
	return recent, rows.Err()
}
