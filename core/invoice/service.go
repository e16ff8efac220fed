package invoice

import (
	"errors"
	"time"

	"github.com/crestview/admin/core/calendar"
)

var ErrNotFound = errors.New("invoice not found")

type (
	Repository interface {
		// CreateInvoice assigns a fresh id and inserts the record at the head
		// of the listing (most-recent-first).
		CreateInvoice(inv Invoice) (Invoice, error)
		QueryAllInvoices() ([]Invoice, error)
		GetInvoiceByID(id string) (Invoice, error)
		// FilterInvoices applies QueryFilter in listing order; records are
		// never re-sorted.
		FilterInvoices(filter QueryFilter) ([]Invoice, error)
		// UpdateInvoice replaces the fields of the record matching inv.ID in
		// place, preserving its listing position.
		UpdateInvoice(inv Invoice) (Invoice, error)
		// UpdateInvoiceStatus sets only the record's status.
		UpdateInvoiceStatus(id, status string) (Invoice, error)
		// MarkInvoicePaid settles the record: paid = amount, status = paid,
		// regardless of the prior paid value.
		MarkInvoicePaid(id string) (Invoice, error)
		// DeleteInvoice removes the record if present; unknown ids are a no-op.
		DeleteInvoice(id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ni NewInvoice) (Invoice, error) {
	inv := Invoice{
		Title:       ni.Title,
		Category:    ni.Category,
		StudentName: ni.StudentName,
		Amount:      ni.Amount,
		Paid:        ni.Paid,
		Status:      ni.Status,
		DueDate:     ni.DueDate,
		CreatedAt:   calendar.Key(time.Now().UTC()),
	}
	if inv.Category == "" {
		inv.Category = CategoryMisc
	}
	if inv.Status == "" {
		inv.Status = StatusDraft
	}
	return svc.repo.CreateInvoice(inv)
}

func (svc *Service) QueryAll() ([]Invoice, error) {
	return svc.repo.QueryAllInvoices()
}

func (svc *Service) GetByID(id string) (Invoice, error) {
	return svc.repo.GetInvoiceByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Invoice, error) {
	filter.Clean()
	return svc.repo.FilterInvoices(filter)
}

func (svc *Service) Update(id string, ui UpdateInvoice) (Invoice, error) {
	// optional fields left empty keep their prior values; a partial payload
	// can never blank the status or category out of their closed sets
	orig, err := svc.repo.GetInvoiceByID(id)
	if err != nil {
		return Invoice{}, err
	}
	if ui.Category == "" {
		ui.Category = orig.Category
	}
	if ui.Status == "" {
		ui.Status = orig.Status
	}
	return svc.repo.UpdateInvoice(Invoice{
		ID:          id,
		Title:       ui.Title,
		Category:    ui.Category,
		StudentName: ui.StudentName,
		Amount:      ui.Amount,
		Paid:        ui.Paid,
		Status:      ui.Status,
		DueDate:     ui.DueDate,
	})
}

func (svc *Service) SetStatus(id, status string) (Invoice, error) {
	if status == StatusPaid {
		return svc.repo.MarkInvoicePaid(id)
	}
	return svc.repo.UpdateInvoiceStatus(id, status)
}

func (svc *Service) MarkPaid(id string) (Invoice, error) {
	return svc.repo.MarkInvoicePaid(id)
}

func (svc *Service) Delete(id string) error {
	return svc.repo.DeleteInvoice(id)
}
