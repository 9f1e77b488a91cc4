package procurement

import (
	"strings"

	"storeops/internal/core/domain/model/kernel"
	"storeops/internal/core/domain/model/supplier"
	"storeops/internal/pkg/errs"
)

// Registry owns the set of suppliers and issues their identities.
// Suppliers are never deleted; ids start at 1 and are never reused.
type Registry struct {
	suppliers []*supplier.Supplier
	seq       *kernel.Sequence
}

// NewRegistry creates an empty supplier registry with its own id counter.
func NewRegistry() *Registry {
	return &Registry{seq: kernel.NewSequence()}
}

// Create validates the details, assigns the next sequential id, and adds
// the supplier to the registry. Name and company must not be blank.
//
// Validation happens before an id is allocated, so a rejected creation
// never burns an identifier.
func (r *Registry) Create(name, company, phone, email string) (*supplier.Supplier, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValidationError("name")
	}
	if strings.TrimSpace(company) == "" {
		return nil, errs.NewValidationError("company")
	}

	s, err := supplier.New(r.seq.Next(), name, company, phone, email)
	if err != nil {
		return nil, err
	}

	r.suppliers = append(r.suppliers, s)
	return s, nil
}

// FindByID returns the supplier with the given id, or false when absent.
func (r *Registry) FindByID(id int) (*supplier.Supplier, bool) {
	for _, s := range r.suppliers {
		if s.ID() == id {
			return s, true
		}
	}
	return nil, false
}

// FindByName returns the supplier whose name matches case-insensitively
// after trimming, or false when absent or when the name is blank.
func (r *Registry) FindByName(name string) (*supplier.Supplier, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, false
	}

	for _, s := range r.suppliers {
		if strings.EqualFold(s.Name(), trimmed) {
			return s, true
		}
	}
	return nil, false
}

// ListActive returns a snapshot of the active suppliers in insertion
// order.
func (r *Registry) ListActive() []*supplier.Supplier {
	active := make([]*supplier.Supplier, 0)
	for _, s := range r.suppliers {
		if s.Active() {
			active = append(active, s)
		}
	}
	return active
}

// All returns a snapshot of every supplier in insertion order. This is
// part of the read-only contract the backup collaborator depends on.
func (r *Registry) All() []*supplier.Supplier {
	all := make([]*supplier.Supplier, len(r.suppliers))
	copy(all, r.suppliers)
	return all
}

// Count returns the number of registered suppliers.
func (r *Registry) Count() int {
	return len(r.suppliers)
}
