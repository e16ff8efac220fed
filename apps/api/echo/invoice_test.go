package echoapi

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crestview/admin/core/invoice"
)

func listInvoices(t *testing.T, server *Server, path string) InvoiceListResponse {
	t.Helper()
	req, rec := newRequest(http.MethodGet, path)
	server.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET %s = %d; body %s", path, rec.Code, rec.Body.String())
	}
	var resp InvoiceListResponse
	decodeBody(t, rec, &resp)
	return resp
}

func findInvoice(t *testing.T, server *Server, title string) invoice.Invoice {
	t.Helper()
	for _, inv := range listInvoices(t, server, "/v1/invoices").Invoices {
		if inv.Title == title {
			return inv
		}
	}
	t.Fatalf("invoice %q not found", title)
	return invoice.Invoice{}
}

func TestInvoiceAPI_queryWithTotals(t *testing.T) {
	server, _, _ := newTestServer(t)

	resp := listInvoices(t, server, "/v1/invoices")
	assert.Len(t, resp.Invoices, 5)
	assert.Equal(t, "Term 2 Tuition", resp.Invoices[0].Title)
	// totals aggregate exactly the rows returned
	assert.Equal(t, invoice.Totals{Amount: 1555, Paid: 1245, Due: 310}, resp.Totals)

	// totals follow the filter
	resp = listInvoices(t, server, "/v1/invoices?status=sent")
	assert.Len(t, resp.Invoices, 2)
	assert.Equal(t, invoice.Totals{Amount: 270, Paid: 45, Due: 225}, resp.Totals)

	resp = listInvoices(t, server, "/v1/invoices?category=Transport")
	assert.Len(t, resp.Invoices, 1)
	assert.Equal(t, "Transport (Feb)", resp.Invoices[0].Title)

	resp = listInvoices(t, server, "/v1/invoices?search=nothing-matches")
	assert.Len(t, resp.Invoices, 0)
	assert.Equal(t, invoice.Totals{}, resp.Totals)
}

func TestInvoiceAPI_create(t *testing.T) {
	server, _, _ := newTestServer(t)

	body := marshalObj(t, invoice.NewInvoice{
		Title: "Field Trip", StudentName: "Sophia Kim", Amount: 45, DueDate: "2026-03-02",
	})
	req, rec := newRequest(http.MethodPost, "/v1/invoices", body)
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created invoice.Invoice
	decodeBody(t, rec, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, invoice.StatusDraft, created.Status)   // defaulted
	assert.Equal(t, invoice.CategoryMisc, created.Category) // defaulted
	assert.NotEmpty(t, created.CreatedAt)

	resp := listInvoices(t, server, "/v1/invoices")
	assert.Len(t, resp.Invoices, 6)
	assert.Equal(t, "Field Trip", resp.Invoices[0].Title)
}

func TestInvoiceAPI_createPaidOverAmountRejected(t *testing.T) {
	server, _, _ := newTestServer(t)

	body := marshalObj(t, invoice.NewInvoice{
		Title: "Broken", StudentName: "Sophia Kim", Amount: 10, Paid: 20,
	})
	req, rec := newRequest(http.MethodPost, "/v1/invoices", body)
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, listInvoices(t, server, "/v1/invoices").Invoices, 5)
}

func TestInvoiceAPI_updateOmittedFieldsKeepPrior(t *testing.T) {
	server, _, _ := newTestServer(t)
	target := findInvoice(t, server, "Sports Kit") // draft, Misc

	// payload without status or category; neither may be blanked
	body := []byte(`{"title": "Sports Kit", "studentName": "Ethan Brooks", "amount": 60, "paid": 0, "dueDate": "2026-02-25"}`)
	req, rec := newRequest(http.MethodPut, "/v1/invoices/"+target.ID, body)
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var updated invoice.Invoice
	decodeBody(t, rec, &updated)
	assert.Equal(t, invoice.StatusDraft, updated.Status)
	assert.Equal(t, invoice.CategoryMisc, updated.Category)
	assert.Equal(t, target.CreatedAt, updated.CreatedAt)

	// the record still answers to its filters
	resp := listInvoices(t, server, "/v1/invoices?status=draft")
	assert.Len(t, resp.Invoices, 1)
	assert.Equal(t, target.ID, resp.Invoices[0].ID)
}

func TestInvoiceAPI_setStatus(t *testing.T) {
	server, _, _ := newTestServer(t)
	target := findInvoice(t, server, "Sports Kit")

	req, rec := newRequest(http.MethodPost, "/v1/invoices/"+target.ID+"/status", []byte(`{"status": "sent"}`))
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var updated invoice.Invoice
	decodeBody(t, rec, &updated)
	assert.Equal(t, invoice.StatusSent, updated.Status)
	assert.Equal(t, target.Paid, updated.Paid) // status alone never touches money

	// setting status to paid settles the balance too
	req, rec = newRequest(http.MethodPost, "/v1/invoices/"+target.ID+"/status", []byte(`{"status": "paid"}`))
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &updated)
	assert.Equal(t, invoice.StatusPaid, updated.Status)
	assert.Equal(t, updated.Amount, updated.Paid)

	// unknown statuses are rejected
	req, rec = newRequest(http.MethodPost, "/v1/invoices/"+target.ID+"/status", []byte(`{"status": "refunded"}`))
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// unknown ids are a benign no-op
	req, rec = newRequest(http.MethodPost, "/v1/invoices/missing/status", []byte(`{"status": "sent"}`))
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestInvoiceAPI_markPaid(t *testing.T) {
	server, _, _ := newTestServer(t)
	target := findInvoice(t, server, "Exam Fee") // partially paid

	req, rec := newRequest(http.MethodPost, "/v1/invoices/"+target.ID+"/pay")
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var settled invoice.Invoice
	decodeBody(t, rec, &settled)
	assert.Equal(t, invoice.StatusPaid, settled.Status)
	assert.Equal(t, settled.Amount, settled.Paid)

	req, rec = newRequest(http.MethodPost, "/v1/invoices/missing/pay")
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestInvoiceAPI_export(t *testing.T) {
	server, _, _ := newTestServer(t)

	req, rec := newRequest(http.MethodGet, "/v1/invoices/export?status=sent")
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="invoices-export.json"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, strings.Contains(rec.Body.String(), "\n")) // pretty-printed

	var resp InvoiceListResponse
	decodeBody(t, rec, &resp)
	assert.Len(t, resp.Invoices, 2)
	assert.Equal(t, invoice.Totals{Amount: 270, Paid: 45, Due: 225}, resp.Totals)
}
