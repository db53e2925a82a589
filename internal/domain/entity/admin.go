package entity

import "time"

// AdminSession admin sessiya
type AdminSession struct {
	IsAdmin      bool
	LoginTime    time.Time
	LastActivity time.Time
}

// AdminAction admin harakatlari
type AdminAction struct {
	ID        string
	Action    string // "login", "create_product", "update_product", "delete_product", "reset_store", "import_catalog"
	Details   string
	Timestamp time.Time
}

// AttemptState login urinishlari holati
type AttemptState struct {
	Attempts     int
	LockoutUntil time.Time // nol qiymat = lockout yo'q
}

// Locked lockout hozir aktivmi
func (s AttemptState) Locked(now time.Time) bool {
	return !s.LockoutUntil.IsZero() && now.Before(s.LockoutUntil)
}

// LockoutStatus CheckLockout natijasi
type LockoutStatus struct {
	Locked           bool
	RemainingMinutes int
}

// LockoutOutcome RecordFailure natijasi
type LockoutOutcome int

const (
	AttemptRemaining LockoutOutcome = iota
	LockedOut
)

func (o LockoutOutcome) String() string {
	if o == LockedOut {
		return "locked_out"
	}
	return "attempt_remaining"
}
