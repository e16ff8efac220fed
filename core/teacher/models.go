package teacher

import (
	"strings"

	"github.com/crestview/admin/core"
)

// Statuses; a teacher may move between any of them.
const (
	StatusActive   = "active"
	StatusOnLeave  = "on_leave"
	StatusInactive = "inactive"
)

// Wildcard matches any value in an equality filter.
const Wildcard = "all"

// Teacher is one staff record.
type Teacher struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Status     string `json:"status"`
	JoinedAt   string `json:"joinedAt"` // YYYY-MM-DD
}

// NewTeacher contains information needed to create a new Teacher.
type NewTeacher struct {
	Name       string `json:"name" validate:"required"`
	Department string `json:"department" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Status     string `json:"status" validate:"omitempty,oneof=active on_leave inactive"`
	JoinedAt   string `json:"joinedAt" validate:"omitempty,datekey"`
}

func (nt *NewTeacher) Validate() error {
	nt.Name = core.CleanString(nt.Name)
	nt.Department = core.CleanString(nt.Department)
	nt.Email = core.CleanString(nt.Email, true /* lower */)
	nt.Phone = core.CleanString(nt.Phone)
	return core.Validate.Struct(nt)
}

// UpdateTeacher defines what information may be provided to modify an existing Teacher.
type UpdateTeacher struct {
	Name       string `json:"name" validate:"required"`
	Department string `json:"department" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Status     string `json:"status" validate:"omitempty,oneof=active on_leave inactive"`
	JoinedAt   string `json:"joinedAt" validate:"omitempty,datekey"`
}

func (ut *UpdateTeacher) Validate() error {
	ut.Name = core.CleanString(ut.Name)
	ut.Department = core.CleanString(ut.Department)
	ut.Email = core.CleanString(ut.Email, true /* lower */)
	ut.Phone = core.CleanString(ut.Phone)
	return core.Validate.Struct(ut)
}

// StatusChange is a standalone status transition request.
type StatusChange struct {
	Status string `json:"status" validate:"required,oneof=active on_leave inactive"`
}

func (sc *StatusChange) Validate() error {
	sc.Status = core.CleanString(sc.Status, true /* lower */)
	return core.Validate.Struct(sc)
}

// QueryFilter narrows a staff listing.
// Search does a case-insensitive substring match on name, department or
// email; Status must match exactly unless empty or the wildcard.
type QueryFilter struct {
	Search string `query:"search"`
	Status string `query:"status"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}

// Matches reports whether t satisfies the filter.
func (qf QueryFilter) Matches(t Teacher) bool {
	if q := strings.ToLower(qf.Search); q != "" {
		if !strings.Contains(strings.ToLower(t.Name), q) &&
			!strings.Contains(strings.ToLower(t.Department), q) &&
			!strings.Contains(strings.ToLower(t.Email), q) {
			return false
		}
	}
	if qf.Status != "" && qf.Status != Wildcard && t.Status != qf.Status {
		return false
	}
	return true
}
