package models

// StudentStatus defines the enrollment status of a student.
type StudentStatus string

const (
	StudentActive    StudentStatus = "active"
	StudentInactive  StudentStatus = "inactive"
	StudentGraduated StudentStatus = "graduated"
)

// ValidStudentStatus reports whether s is a known enrollment status.
func ValidStudentStatus(s string) bool {
	switch StudentStatus(s) {
	case StudentActive, StudentInactive, StudentGraduated:
		return true
	}
	return false
}

// PaymentMethod defines how a payment was tendered.
type PaymentMethod string

const (
	MethodCash   PaymentMethod = "cash"
	MethodCheck  PaymentMethod = "check"
	MethodOnline PaymentMethod = "online"
)

// ValidPaymentMethod reports whether m is a known payment method.
func ValidPaymentMethod(m string) bool {
	switch PaymentMethod(m) {
	case MethodCash, MethodCheck, MethodOnline:
		return true
	}
	return false
}

// PaymentStatus is the derived settlement label for a student.
// It is never stored; it is recomputed from the ledger on every access.
type PaymentStatus string

const (
	StatusOutstanding PaymentStatus = "outstanding"
	StatusPartial     PaymentStatus = "partial"
	StatusPaid        PaymentStatus = "paid"
	StatusOverpaid    PaymentStatus = "overpaid"
)
