package invoice

import (
	"strings"

	"github.com/crestview/admin/core"
)

// Statuses; no transition matrix is enforced, any status may follow any
// other. Marking paid additionally settles the paid amount.
const (
	StatusDraft   = "draft"
	StatusSent    = "sent"
	StatusPaid    = "paid"
	StatusOverdue = "overdue"
	StatusVoid    = "void"
)

// Categories
const (
	CategoryTuition   = "Tuition"
	CategoryTransport = "Transport"
	CategoryLibrary   = "Library"
	CategoryExams     = "Exams"
	CategoryMisc      = "Misc"
)

// Wildcard matches any value in an equality filter.
const Wildcard = "all"

// Invoice is one fee record raised against a student.
// Paid never exceeds Amount.
type Invoice struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	StudentName string  `json:"studentName"`
	Amount      float64 `json:"amount"`
	Paid        float64 `json:"paid"`
	Status      string  `json:"status"`
	DueDate     string  `json:"dueDate"`   // YYYY-MM-DD
	CreatedAt   string  `json:"createdAt"` // YYYY-MM-DD
}

// Due returns the outstanding balance.
func (inv Invoice) Due() float64 {
	return inv.Amount - inv.Paid
}

// NewInvoice contains information needed to create a new Invoice.
type NewInvoice struct {
	Title       string  `json:"title" validate:"required"`
	Category    string  `json:"category" validate:"omitempty,oneof=Tuition Transport Library Exams Misc"`
	StudentName string  `json:"studentName" validate:"required"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	Paid        float64 `json:"paid" validate:"gte=0,ltefield=Amount"`
	Status      string  `json:"status" validate:"omitempty,oneof=draft sent paid overdue void"`
	DueDate     string  `json:"dueDate" validate:"omitempty,datekey"`
}

func (ni *NewInvoice) Validate() error {
	ni.Title = core.CleanString(ni.Title)
	ni.StudentName = core.CleanString(ni.StudentName)
	return core.Validate.Struct(ni)
}

// UpdateInvoice defines what information may be provided to modify an existing Invoice.
type UpdateInvoice struct {
	Title       string  `json:"title" validate:"required"`
	Category    string  `json:"category" validate:"omitempty,oneof=Tuition Transport Library Exams Misc"`
	StudentName string  `json:"studentName" validate:"required"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	Paid        float64 `json:"paid" validate:"gte=0,ltefield=Amount"`
	Status      string  `json:"status" validate:"omitempty,oneof=draft sent paid overdue void"`
	DueDate     string  `json:"dueDate" validate:"omitempty,datekey"`
}

func (ui *UpdateInvoice) Validate() error {
	ui.Title = core.CleanString(ui.Title)
	ui.StudentName = core.CleanString(ui.StudentName)
	return core.Validate.Struct(ui)
}

// StatusChange is a standalone status transition request.
type StatusChange struct {
	Status string `json:"status" validate:"required,oneof=draft sent paid overdue void"`
}

func (sc *StatusChange) Validate() error {
	sc.Status = core.CleanString(sc.Status, true /* lower */)
	return core.Validate.Struct(sc)
}

// QueryFilter narrows an invoice listing.
// Search does a case-insensitive substring match on title, student name or
// category; Status and Category must match exactly unless empty or the
// wildcard.
type QueryFilter struct {
	Search   string `query:"search"`
	Status   string `query:"status"`
	Category string `query:"category"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
	qf.Category = core.CleanString(qf.Category)
}

// Matches reports whether inv satisfies the filter.
func (qf QueryFilter) Matches(inv Invoice) bool {
	if q := strings.ToLower(qf.Search); q != "" {
		if !strings.Contains(strings.ToLower(inv.Title), q) &&
			!strings.Contains(strings.ToLower(inv.StudentName), q) &&
			!strings.Contains(strings.ToLower(inv.Category), q) {
			return false
		}
	}
	if qf.Status != "" && qf.Status != Wildcard && inv.Status != qf.Status {
		return false
	}
	if qf.Category != "" && qf.Category != Wildcard && inv.Category != qf.Category {
		return false
	}
	return true
}

// Totals aggregates a filtered invoice listing.
type Totals struct {
	Amount float64 `json:"amount"`
	Paid   float64 `json:"paid"`
	Due    float64 `json:"due"`
}

// Totalize reduces rows to their amount and paid sums. Due is clamped at
// zero even if overpayment makes the data inconsistent.
func Totalize(rows []Invoice) Totals {
	var t Totals
	for _, inv := range rows {
		t.Amount += inv.Amount
		t.Paid += inv.Paid
	}
	if due := t.Amount - t.Paid; due > 0 {
		t.Due = due
	}
	return t
}
