package session

import (
	"context"
)

type Role string

const (
	RoleEmployee Role = "employee"
	RoleHead     Role = "head"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleHead, RoleAdmin:
		return true
	}
	return false
}

// Identity is who the session belongs to. The zero value is the anonymous visitor.
type Identity struct {
	Role       Role   `json:"role,omitempty"`
	EmployeeID string `json:"employeeId,omitempty"`
	Department string `json:"department,omitempty"`
	Name       string `json:"name,omitempty"`
}

func Anonymous() Identity {
	return Identity{}
}

func (i Identity) Authenticated() bool {
	return i.Role.Valid()
}

// Save replaces whatever the session held with id.
func Save(ctx context.Context, bag *Bag, id Identity) error {
	if err := bag.Clear(ctx); err != nil {
		return err
	}
	if !id.Authenticated() {
		return nil
	}

	values := [][2]string{{KeyRole, string(id.Role)}}
	switch id.Role {
	case RoleEmployee:
		values = append(values, [2]string{KeyEmployeeID, id.EmployeeID}, [2]string{KeyDepartment, id.Department})
	case RoleHead:
		values = append(values, [2]string{KeyHeadID, id.EmployeeID}, [2]string{KeyHeadDepartment, id.Department})
	}
	if id.Name != "" {
		values = append(values, [2]string{KeyName, id.Name})
	}

	for _, kv := range values {
		if err := bag.Set(ctx, kv[0], kv[1]); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the identity stored in bag. Missing keys yield Anonymous; only
// store failures are returned as errors.
func Load(ctx context.Context, bag *Bag) (Identity, error) {
	get := func(key string) (string, error) {
		v, _, err := bag.Get(ctx, key)
		return v, err
	}

	role, err := get(KeyRole)
	if err != nil {
		return Anonymous(), err
	}
	name, err := get(KeyName)
	if err != nil {
		return Anonymous(), err
	}

	idKey, deptKey := KeyEmployeeID, KeyDepartment
	switch Role(role) {
	case RoleAdmin:
		return Identity{Role: RoleAdmin, Name: name}, nil
	case RoleHead:
		idKey, deptKey = KeyHeadID, KeyHeadDepartment
	case RoleEmployee:
	case "":
		// Sessions written before the role key existed.
		if headID, err := get(KeyHeadID); err != nil {
			return Anonymous(), err
		} else if headID != "" {
			role = string(RoleHead)
			idKey, deptKey = KeyHeadID, KeyHeadDepartment
		} else {
			role = string(RoleEmployee)
		}
	default:
		return Anonymous(), nil
	}

	id, err := get(idKey)
	if err != nil {
		return Anonymous(), err
	}
	if id == "" {
		return Anonymous(), nil
	}
	dept, err := get(deptKey)
	if err != nil {
		return Anonymous(), err
	}

	return Identity{Role: Role(role), EmployeeID: id, Department: dept, Name: name}, nil
}

type identityKey struct{}

// WithIdentity stores id in ctx for handlers further down the chain.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext returns the identity set by WithIdentity, or Anonymous.
func FromContext(ctx context.Context) Identity {
	if id, ok := ctx.Value(identityKey{}).(Identity); ok {
		return id
	}
	return Anonymous()
}
