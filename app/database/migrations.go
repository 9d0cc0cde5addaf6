package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema when missing and applies incremental
// updates. Safe to run on every start.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(100) UNIQUE NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS user_roles (
			user_id UUID NOT NULL REFERENCES users(id),
			role_id UUID NOT NULL REFERENCES roles(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (user_id, role_id)
		)`,

		`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS grade_levels (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(100) UNIQUE NOT NULL,
			slug VARCHAR(100) UNIQUE NOT NULL,
			display_order INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS sections (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(100) NOT NULL,
			slug VARCHAR(100) NOT NULL,
			display_order INT NOT NULL DEFAULT 0,
			grade_level_id UUID REFERENCES grade_levels(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sections_grade_level ON sections(grade_level_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sections_slug ON sections(slug)`,

		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_number VARCHAR(50) UNIQUE NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			middle_name VARCHAR(100),
			last_name VARCHAR(100) NOT NULL,
			grade_level_id UUID NOT NULL REFERENCES grade_levels(id),
			section_id UUID NOT NULL REFERENCES sections(id),
			contact_number VARCHAR(50),
			email VARCHAR(255),
			parent_name VARCHAR(255),
			parent_contact VARCHAR(50),
			parent_email VARCHAR(255),
			status VARCHAR(20) NOT NULL DEFAULT 'active'
				CHECK (status IN ('active', 'inactive', 'graduated')),
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_students_grade_section ON students(grade_level_id, section_id)`,
		`CREATE INDEX IF NOT EXISTS idx_students_status ON students(status)`,

		`CREATE TABLE IF NOT EXISTS fee_structures (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			grade_level_id UUID NOT NULL REFERENCES grade_levels(id),
			fee_type VARCHAR(100) NOT NULL,
			amount NUMERIC(10,2) NOT NULL,
			school_year VARCHAR(9) NOT NULL,
			description TEXT,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_fee_structures_grade_active ON fee_structures(grade_level_id, is_active)`,
		`CREATE INDEX IF NOT EXISTS idx_fee_structures_school_year ON fee_structures(school_year)`,

		`CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			receipt_number VARCHAR(20) UNIQUE NOT NULL,
			student_id UUID NOT NULL REFERENCES students(id),
			user_id UUID NOT NULL REFERENCES users(id),
			amount NUMERIC(10,2) NOT NULL CHECK (amount > 0),
			payment_date DATE NOT NULL,
			payment_purpose VARCHAR(255) NOT NULL,
			payment_method VARCHAR(20) NOT NULL DEFAULT 'cash'
				CHECK (payment_method IN ('cash', 'check', 'online')),
			notes TEXT,
			printed_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_student ON payments(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_date ON payments(payment_date)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_cashier ON payments(user_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration statement failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
