package ledger

import (
	"fmt"
	"strings"

	"storeops/internal/core/domain/model/customer"
	"storeops/internal/core/domain/model/kernel"
	"storeops/internal/pkg/errs"
)

// Ledger is the single owner of the customer collection. Lookups by id or
// national id that find nothing report absence through the boolean return,
// never through an error.
type Ledger struct {
	customers []*customer.Customer
	seq       *kernel.Sequence
}

func NewLedger() *Ledger {
	return &Ledger{seq: kernel.NewSequence()}
}

// Create registers a new customer. National ids are unique across the
// ledger; a duplicate is rejected before an id is allocated.
func (l *Ledger) Create(name, nationalID, phone string) (*customer.Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValidationError("name")
	}
	if strings.TrimSpace(nationalID) == "" {
		return nil, errs.NewValidationError("national id")
	}
	if _, ok := l.FindByNationalID(nationalID); ok {
		return nil, errs.NewValidationErrorWithCause("national id",
			fmt.Errorf("customer with national id %s already exists", nationalID))
	}

	c, err := customer.New(l.seq.Next(), name, nationalID, phone)
	if err != nil {
		return nil, err
	}
	l.customers = append(l.customers, c)
	return c, nil
}

func (l *Ledger) FindByID(id int) (*customer.Customer, bool) {
	for _, c := range l.customers {
		if c.ID() == id {
			return c, true
		}
	}
	return nil, false
}

// FindByName matches the full name, ignoring case and surrounding
// whitespace. The first registered match wins.
func (l *Ledger) FindByName(name string) (*customer.Customer, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false
	}
	for _, c := range l.customers {
		if strings.EqualFold(c.Name(), name) {
			return c, true
		}
	}
	return nil, false
}

func (l *Ledger) FindByNationalID(nationalID string) (*customer.Customer, bool) {
	nationalID = strings.TrimSpace(nationalID)
	if nationalID == "" {
		return nil, false
	}
	for _, c := range l.customers {
		if c.NationalID() == nationalID {
			return c, true
		}
	}
	return nil, false
}

// SearchByName returns every customer whose name contains the fragment,
// ignoring case. A blank fragment matches nobody.
func (l *Ledger) SearchByName(fragment string) []*customer.Customer {
	fragment = strings.ToLower(strings.TrimSpace(fragment))
	if fragment == "" {
		return nil
	}
	var result []*customer.Customer
	for _, c := range l.customers {
		if strings.Contains(strings.ToLower(c.Name()), fragment) {
			result = append(result, c)
		}
	}
	return result
}

// RegisterPayment credits a payment against the customer's balance. It
// reports false when the customer is unknown or the amount is invalid for
// the current balance.
func (l *Ledger) RegisterPayment(id int, amount float64) bool {
	c, ok := l.FindByID(id)
	if !ok {
		return false
	}
	_, err := c.RegisterPayment(amount)
	return err == nil
}

// SettleDebt clears the customer's balance entirely.
func (l *Ledger) SettleDebt(id int) bool {
	c, ok := l.FindByID(id)
	if !ok {
		return false
	}
	c.SettleDebt()
	return true
}

// WithDebt returns the customers carrying a positive balance, in
// registration order.
func (l *Ledger) WithDebt() []*customer.Customer {
	var result []*customer.Customer
	for _, c := range l.customers {
		if c.HasDebt() {
			result = append(result, c)
		}
	}
	return result
}

// TotalDebt sums the outstanding balance across all customers.
func (l *Ledger) TotalDebt() float64 {
	var total float64
	for _, c := range l.customers {
		total += c.Balance()
	}
	return total
}

// All returns a snapshot of the customer collection in registration order.
func (l *Ledger) All() []*customer.Customer {
	result := make([]*customer.Customer, len(l.customers))
	copy(result, l.customers)
	return result
}

func (l *Ledger) Count() int {
	return len(l.customers)
}

// Remove drops the customer from the ledger. The id is never reused.
func (l *Ledger) Remove(id int) bool {
	for i, c := range l.customers {
		if c.ID() == id {
			l.customers = append(l.customers[:i], l.customers[i+1:]...)
			return true
		}
	}
	return false
}
