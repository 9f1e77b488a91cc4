package kernel

import (
	"fmt"
	"time"

	"storeops/internal/pkg/errs"
)

// ErrPeriodIsNotConstructed is returned when attempting to use an
// improperly initialized Period. Periods must be created via NewPeriod.
var ErrPeriodIsNotConstructed = errs.NewValidationError(
	"period must be created via NewPeriod constructor")

// Period is an inclusive date range. It is an immutable value object; the
// zero value is invalid and fails validation.
//
// Both ends are inclusive: a timestamp equal to From or To is contained.
type Period struct {
	from time.Time
	to   time.Time

	isConstructed bool
}

// NewPeriod creates a Period from from to to, both inclusive.
// Returns a validation error when to precedes from.
func NewPeriod(from, to time.Time) (Period, error) {
	if to.Before(from) {
		return Period{}, errs.NewValidationErrorWithCause("period",
			fmt.Errorf("end %s precedes start %s", to.Format(time.DateOnly), from.Format(time.DateOnly)))
	}

	return Period{from: from, to: to, isConstructed: true}, nil
}

// Validate ensures the Period was created via NewPeriod.
func (p Period) Validate() error {
	if !p.isConstructed {
		return ErrPeriodIsNotConstructed
	}
	return nil
}

// From returns the inclusive start of the period.
func (p Period) From() time.Time {
	return p.from
}

// To returns the inclusive end of the period.
func (p Period) To() time.Time {
	return p.to
}

// Contains reports whether t falls within the period, ends included.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.from) && !t.After(p.to)
}

// String returns a human-readable representation of the period.
func (p Period) String() string {
	return fmt.Sprintf("Period(%s..%s)", p.from.Format(time.DateOnly), p.to.Format(time.DateOnly))
}
