package supplier

import (
	"errors"
	"fmt"
	"strings"

	"storeops/internal/pkg/errs"
)

// ErrSupplierIsNotConstructed is returned when a Supplier instance was not
// created through the New factory method.
var ErrSupplierIsNotConstructed = errors.New("Supplier must be created via New constructor")

// Supplier represents a vendor the store orders goods from. It is an
// aggregate root owning its contact data, the list of products it can
// supply, and its active flag.
//
// Supplier follows these invariants:
//   - Name and company are never blank
//   - The product list contains no duplicates
//   - Identity never changes after construction
//
// A supplier starts active. Deactivation does not remove it; orders that
// reference it remain valid, but no new orders may be placed against it.
type Supplier struct {
	// id uniquely identifies the supplier within its registry
	id int
	// name is the contact person's display name
	name string
	// company is the legal company name
	company string
	// phone is the contact phone number
	phone string
	// email is the contact email address
	email string
	// products are the product names this supplier can deliver
	products []string
	// active marks whether new orders may be placed with this supplier
	active bool

	// isConstructed ensures the supplier was created via New
	isConstructed bool
}

// New creates a Supplier with validation. Name and company must not be
// blank after trimming; phone and email are free-form and may be empty.
// The supplier starts active with an empty product list.
func New(id int, name, company, phone, email string) (*Supplier, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValidationError("name")
	}
	if strings.TrimSpace(company) == "" {
		return nil, errs.NewValidationError("company")
	}

	return &Supplier{
		id:            id,
		name:          name,
		company:       company,
		phone:         phone,
		email:         email,
		active:        true,
		isConstructed: true,
	}, nil
}

// Validate ensures the Supplier instance was properly constructed via New.
func (s *Supplier) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSupplierIsNotConstructed
	}
	return nil
}

// IsEqual compares two suppliers by identity.
func (s *Supplier) IsEqual(other *Supplier) bool {
	return other != nil && s.id == other.id
}

// ID returns the supplier's identifier.
func (s *Supplier) ID() int {
	return s.id
}

// Name returns the contact person's display name.
func (s *Supplier) Name() string {
	return s.name
}

// Company returns the company name.
func (s *Supplier) Company() string {
	return s.company
}

// Phone returns the contact phone number.
func (s *Supplier) Phone() string {
	return s.phone
}

// Email returns the contact email address.
func (s *Supplier) Email() string {
	return s.email
}

// Active reports whether new orders may be placed with this supplier.
func (s *Supplier) Active() bool {
	return s.active
}

// SetName updates the contact name. Blank names are rejected.
func (s *Supplier) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValidationError("name")
	}
	s.name = name
	return nil
}

// SetCompany updates the company name. Blank companies are rejected.
func (s *Supplier) SetCompany(company string) error {
	if strings.TrimSpace(company) == "" {
		return errs.NewValidationError("company")
	}
	s.company = company
	return nil
}

// SetPhone updates the contact phone number.
func (s *Supplier) SetPhone(phone string) {
	s.phone = phone
}

// SetEmail updates the contact email address.
func (s *Supplier) SetEmail(email string) {
	s.email = email
}

// SetActive flips the active flag. Deactivation is the only soft delete
// this system has for suppliers.
func (s *Supplier) SetActive(active bool) {
	s.active = active
}

// AddProduct registers a product this supplier can deliver. Adding a
// product that is already present is a no-op; the list never contains
// duplicates.
func (s *Supplier) AddProduct(product string) error {
	if strings.TrimSpace(product) == "" {
		return errs.NewValidationError("product")
	}
	if s.Supplies(product) {
		return nil
	}

	s.products = append(s.products, product)
	return nil
}

// Supplies reports whether the supplier delivers the given product.
// The match is exact.
func (s *Supplier) Supplies(product string) bool {
	for _, p := range s.products {
		if p == product {
			return true
		}
	}
	return false
}

// Products returns a copy of the product list in insertion order.
// Mutating the returned slice never affects the supplier.
func (s *Supplier) Products() []string {
	products := make([]string, len(s.products))
	copy(products, s.products)
	return products
}

// String returns a short human-readable representation of the supplier.
func (s *Supplier) String() string {
	return fmt.Sprintf("Supplier{id=%d, name=%s, company=%s, active=%t, products=%d}",
		s.id, s.name, s.company, s.active, len(s.products))
}
