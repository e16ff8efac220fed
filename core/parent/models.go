package parent

import (
	"strings"

	"github.com/crestview/admin/core"
)

// Statuses
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Relationships
const (
	RelationshipFather   = "Father"
	RelationshipMother   = "Mother"
	RelationshipGuardian = "Guardian"
)

// Wildcard matches any value in an equality filter.
const Wildcard = "all"

// Parent is one guardian contact record, linked to a student by name.
type Parent struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	StudentName  string `json:"studentName"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Status       string `json:"status"`
}

// NewParent contains information needed to create a new Parent.
type NewParent struct {
	Name         string `json:"name" validate:"required"`
	StudentName  string `json:"studentName" validate:"required"`
	Relationship string `json:"relationship" validate:"omitempty,oneof=Father Mother Guardian"`
	Phone        string `json:"phone" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Status       string `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (np *NewParent) Validate() error {
	np.Name = core.CleanString(np.Name)
	np.StudentName = core.CleanString(np.StudentName)
	np.Phone = core.CleanString(np.Phone)
	np.Email = core.CleanString(np.Email, true /* lower */)
	return core.Validate.Struct(np)
}

// UpdateParent defines what information may be provided to modify an existing Parent.
type UpdateParent struct {
	Name         string `json:"name" validate:"required"`
	StudentName  string `json:"studentName" validate:"required"`
	Relationship string `json:"relationship" validate:"omitempty,oneof=Father Mother Guardian"`
	Phone        string `json:"phone" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Status       string `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (up *UpdateParent) Validate() error {
	up.Name = core.CleanString(up.Name)
	up.StudentName = core.CleanString(up.StudentName)
	up.Phone = core.CleanString(up.Phone)
	up.Email = core.CleanString(up.Email, true /* lower */)
	return core.Validate.Struct(up)
}

// QueryFilter narrows a parent listing.
// Search does a case-insensitive substring match on name, student name or
// email; Status must match exactly unless empty or the wildcard.
type QueryFilter struct {
	Search string `query:"search"`
	Status string `query:"status"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}

// Matches reports whether p satisfies the filter.
func (qf QueryFilter) Matches(p Parent) bool {
	if q := strings.ToLower(qf.Search); q != "" {
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.StudentName), q) &&
			!strings.Contains(strings.ToLower(p.Email), q) {
			return false
		}
	}
	if qf.Status != "" && qf.Status != Wildcard && p.Status != qf.Status {
		return false
	}
	return true
}
