// Package customer provides the Customer aggregate for the store-credit
// ledger. A customer accumulates purchases on credit into a debt balance
// and pays it down with partial payments or a full settlement.
package customer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storeops/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the New factory method.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via New constructor")

// Purchase is one credit purchase in a customer's history. It is an
// immutable value object owned by its customer.
type Purchase struct {
	amount float64
	at     time.Time
	note   string
}

// Amount returns the purchase amount.
func (p Purchase) Amount() float64 {
	return p.amount
}

// At returns the purchase timestamp.
func (p Purchase) At() time.Time {
	return p.at
}

// Note returns the purchase description.
func (p Purchase) Note() string {
	return p.note
}

// Customer represents a store customer buying on credit. The aggregate
// owns the debt balance and the purchase history.
//
// Invariants:
//   - The balance never goes negative: a payment may not exceed the
//     outstanding balance
//   - Every successful purchase appends exactly one history entry
type Customer struct {
	// id uniquely identifies the customer within its ledger
	id int
	// name is the customer's display name
	name string
	// nationalID is the customer's national identity number, unique per ledger
	nationalID string
	// phone is the contact phone number
	phone string
	// balance is the outstanding debt
	balance float64
	// purchases is the append-only credit purchase history
	purchases []Purchase
	// registeredAt is the registration timestamp
	registeredAt time.Time

	// isConstructed ensures the customer was created via New
	isConstructed bool
}

// New creates a Customer with validation. Name and national id must not be
// blank after trimming. The customer starts with a zero balance and an
// empty purchase history.
func New(id int, name, nationalID, phone string) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValidationError("name")
	}
	if strings.TrimSpace(nationalID) == "" {
		return nil, errs.NewValidationError("national id")
	}

	return &Customer{
		id:            id,
		name:          name,
		nationalID:    nationalID,
		phone:         phone,
		registeredAt:  time.Now(),
		isConstructed: true,
	}, nil
}

// Validate ensures the Customer instance was properly constructed via New.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// AddPurchase accumulates a credit purchase onto the balance and appends
// a history entry. The amount must be greater than zero.
func (c *Customer) AddPurchase(amount float64) error {
	if amount <= 0 {
		return errs.NewValidationErrorWithCause("amount",
			fmt.Errorf("%g is not greater than 0", amount))
	}

	c.balance += amount
	c.purchases = append(c.purchases, Purchase{
		amount: amount,
		at:     time.Now(),
		note:   "store credit purchase",
	})
	return nil
}

// RegisterPayment reduces the balance by the given amount and returns the
// remaining balance. The amount must be greater than zero and must not
// exceed the outstanding balance.
func (c *Customer) RegisterPayment(amount float64) (float64, error) {
	if amount <= 0 {
		return c.balance, errs.NewValidationErrorWithCause("amount",
			fmt.Errorf("%g is not greater than 0", amount))
	}
	if amount > c.balance {
		return c.balance, errs.NewValidationErrorWithCause("amount",
			fmt.Errorf("payment %g exceeds outstanding balance %g", amount, c.balance))
	}

	c.balance -= amount
	return c.balance, nil
}

// SettleDebt zeroes the balance unconditionally.
func (c *Customer) SettleDebt() {
	c.balance = 0
}

// HasDebt reports whether the customer owes anything.
func (c *Customer) HasDebt() bool {
	return c.balance > 0
}

// ID returns the customer's identifier.
func (c *Customer) ID() int {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// NationalID returns the customer's national identity number.
func (c *Customer) NationalID() string {
	return c.nationalID
}

// Phone returns the contact phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// Balance returns the outstanding debt.
func (c *Customer) Balance() float64 {
	return c.balance
}

// RegisteredAt returns the registration timestamp.
func (c *Customer) RegisteredAt() time.Time {
	return c.registeredAt
}

// SetName updates the display name. Blank names are rejected.
func (c *Customer) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValidationError("name")
	}
	c.name = name
	return nil
}

// SetPhone updates the contact phone number.
func (c *Customer) SetPhone(phone string) {
	c.phone = phone
}

// Purchases returns a copy of the purchase history in insertion order.
// Mutating the returned slice never affects the customer.
func (c *Customer) Purchases() []Purchase {
	purchases := make([]Purchase, len(c.purchases))
	copy(purchases, c.purchases)
	return purchases
}

// String returns a short human-readable representation of the customer.
func (c *Customer) String() string {
	return fmt.Sprintf("Customer{id=%d, name=%s, nationalID=%s, balance=%g, purchases=%d}",
		c.id, c.name, c.nationalID, c.balance, len(c.purchases))
}
