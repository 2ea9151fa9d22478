package tenant

import (
	"errors"
	"fmt"
)

var (
	errNoTenants       = errors.New("tenant registry requires at least one tenant")
	errDuplicateTenant = errors.New("duplicate tenant name")
)

// Tenant is a named credential profile. Credential is the full Authorization
// header value and is treated as a secret: it is passed verbatim to the gateway
// and must never be logged or displayed.
type Tenant struct {
	Name       string
	Credential string
}

// String returns the display name only, never the credential.
func (t Tenant) String() string {
	return t.Name
}

// Registry is an ordered, immutable catalog of tenants. The first entry is the
// default selection.
type Registry struct {
	tenants []Tenant
}

// NewRegistry builds a registry from an ordered, non-empty tenant list.
// Names must be unique.
func NewRegistry(tenants []Tenant) (*Registry, error) {
	if len(tenants) == 0 {
		return nil, errNoTenants
	}
	seen := make(map[string]struct{}, len(tenants))
	for _, t := range tenants {
		if _, ok := seen[t.Name]; ok {
			return nil, fmt.Errorf("%w: %q", errDuplicateTenant, t.Name)
		}
		seen[t.Name] = struct{}{}
	}
	cp := make([]Tenant, len(tenants))
	copy(cp, tenants)
	return &Registry{tenants: cp}, nil
}

// All returns the tenants in registration order.
func (r *Registry) All() []Tenant {
	cp := make([]Tenant, len(r.tenants))
	copy(cp, r.tenants)
	return cp
}

// Default returns the first registered tenant.
func (r *Registry) Default() Tenant {
	return r.tenants[0]
}

// ByName returns the tenant with the exact display name. ok is false if no
// tenant matches.
func (r *Registry) ByName(name string) (t Tenant, ok bool) {
	for _, cand := range r.tenants {
		if cand.Name == name {
			return cand, true
		}
	}
	return Tenant{}, false
}

// After returns the tenant following current in registration order, wrapping
// around at the end. If current is not registered, the default is returned.
func (r *Registry) After(current Tenant) Tenant {
	for i, cand := range r.tenants {
		if cand == current {
			return r.tenants[(i+1)%len(r.tenants)]
		}
	}
	return r.Default()
}
