package inmemdb

import (
	"github.com/google/uuid"

	"github.com/crestview/admin/core/invoice"
)

type invoiceRepository struct {
	db *invoiceTable
}

func NewInvoiceRepository(db *DB) invoice.Repository {
	return &invoiceRepository{db: db.invoices}
}

func (repo *invoiceRepository) query() []invoice.Invoice {
	rows := make([]invoice.Invoice, 0, len(repo.db.rows))
	for _, inv := range repo.db.rows {
		rows = append(rows, *inv)
	}
	return rows
}

func (repo *invoiceRepository) CreateInvoice(inv invoice.Invoice) (invoice.Invoice, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	inv.ID = uuid.New().String()
	repo.db.rows = append([]*invoice.Invoice{&inv}, repo.db.rows...)
	return inv, nil
}

func (repo *invoiceRepository) QueryAllInvoices() ([]invoice.Invoice, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *invoiceRepository) GetInvoiceByID(id string) (invoice.Invoice, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, inv := range repo.db.rows {
		if inv.ID == id {
			return *inv, nil
		}
	}
	return invoice.Invoice{}, invoice.ErrNotFound
}

func (repo *invoiceRepository) FilterInvoices(filter invoice.QueryFilter) ([]invoice.Invoice, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	rows := make([]invoice.Invoice, 0, len(repo.db.rows))
	for _, inv := range repo.db.rows {
		if filter.Matches(*inv) {
			rows = append(rows, *inv)
		}
	}
	return rows, nil
}

func (repo *invoiceRepository) UpdateInvoice(inv invoice.Invoice) (invoice.Invoice, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, orig := range repo.db.rows {
		if orig.ID == inv.ID {
			orig.Title = inv.Title
			orig.Category = inv.Category
			orig.StudentName = inv.StudentName
			orig.Amount = inv.Amount
			orig.Paid = inv.Paid
			orig.Status = inv.Status
			orig.DueDate = inv.DueDate
			if inv.CreatedAt != "" {
				orig.CreatedAt = inv.CreatedAt
			}
			return *orig, nil
		}
	}
	return invoice.Invoice{}, invoice.ErrNotFound
}

func (repo *invoiceRepository) UpdateInvoiceStatus(id, status string) (invoice.Invoice, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, orig := range repo.db.rows {
		if orig.ID == id {
			orig.Status = status
			return *orig, nil
		}
	}
	return invoice.Invoice{}, invoice.ErrNotFound
}

func (repo *invoiceRepository) MarkInvoicePaid(id string) (invoice.Invoice, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, orig := range repo.db.rows {
		if orig.ID == id {
			// settles regardless of the prior paid value
			orig.Paid = orig.Amount
			orig.Status = invoice.StatusPaid
			return *orig, nil
		}
	}
	return invoice.Invoice{}, invoice.ErrNotFound
}

func (repo *invoiceRepository) DeleteInvoice(id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for i, inv := range repo.db.rows {
		if inv.ID == id {
			repo.db.rows = append(repo.db.rows[:i], repo.db.rows[i+1:]...)
			break
		}
	}
	return nil
}
