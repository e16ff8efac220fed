package student

import (
	"strings"

	"github.com/crestview/admin/core"
)

// Statuses
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Wildcard matches any value in an equality filter.
const Wildcard = "all"

// Student is one roster record.
type Student struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Grade    string `json:"grade"`
	Section  string `json:"section"`
	RollNo   string `json:"rollNo"`
	Guardian string `json:"guardian"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`
	JoinedAt string `json:"joinedAt"` // YYYY-MM-DD
}

// NewStudent contains information needed to create a new Student.
type NewStudent struct {
	Name     string `json:"name" validate:"required"`
	Grade    string `json:"grade"`
	Section  string `json:"section"`
	RollNo   string `json:"rollNo" validate:"required"`
	Guardian string `json:"guardian" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Status   string `json:"status" validate:"omitempty,oneof=active inactive"`
	JoinedAt string `json:"joinedAt" validate:"omitempty,datekey"`
}

func (ns *NewStudent) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	ns.RollNo = core.CleanString(ns.RollNo)
	ns.Guardian = core.CleanString(ns.Guardian)
	ns.Phone = core.CleanString(ns.Phone)
	return core.Validate.Struct(ns)
}

// UpdateStudent defines what information may be provided to modify an existing Student.
// Updates replace the record's fields wholesale; its id and listing position never change.
type UpdateStudent struct {
	Name     string `json:"name" validate:"required"`
	Grade    string `json:"grade"`
	Section  string `json:"section"`
	RollNo   string `json:"rollNo" validate:"required"`
	Guardian string `json:"guardian" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Status   string `json:"status" validate:"omitempty,oneof=active inactive"`
	JoinedAt string `json:"joinedAt" validate:"omitempty,datekey"`
}

func (us *UpdateStudent) Validate() error {
	us.Name = core.CleanString(us.Name)
	us.RollNo = core.CleanString(us.RollNo)
	us.Guardian = core.CleanString(us.Guardian)
	us.Phone = core.CleanString(us.Phone)
	return core.Validate.Struct(us)
}

// QueryFilter narrows a roster listing.
// Search does a case-insensitive substring match on name, roll number or
// guardian; Status must match exactly unless empty or the wildcard.
type QueryFilter struct {
	Search string `query:"search"`
	Status string `query:"status"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}

// Matches reports whether s satisfies the filter.
func (qf QueryFilter) Matches(s Student) bool {
	if q := strings.ToLower(qf.Search); q != "" {
		if !strings.Contains(strings.ToLower(s.Name), q) &&
			!strings.Contains(strings.ToLower(s.RollNo), q) &&
			!strings.Contains(strings.ToLower(s.Guardian), q) {
			return false
		}
	}
	if qf.Status != "" && qf.Status != Wildcard && s.Status != qf.Status {
		return false
	}
	return true
}
