package inmemdb

import (
	"errors"
	"testing"

	"github.com/crestview/admin/core/invoice"
	"github.com/crestview/admin/core/student"
)

func openSeeded(t *testing.T) *DB {
	t.Helper()

	db, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err = Seed(db); err != nil {
		t.Fatalf("Seed() failed: %v", err)
	}
	return db
}

func studentNames(rows []student.Student) []string {
	names := make([]string, 0, len(rows))
	for _, s := range rows {
		names = append(names, s.Name)
	}
	return names
}

func TestStudentRepository_listingOrder(t *testing.T) {
	db := openSeeded(t)
	repo := NewStudentRepository(db)

	rows, err := repo.QueryAllStudents()
	if err != nil {
		t.Fatalf("QueryAllStudents() failed: %v", err)
	}
	want := []string{"Aarav Mehta", "Sophia Kim", "Miguel Santos", "Zara Khan", "Ethan Brooks"}
	got := studentNames(rows)
	if len(got) != len(want) {
		t.Fatalf("expected %d students; got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i] != name {
			t.Errorf("row %d: expected %q; got %q", i, name, got[i])
		}
	}
}

func TestStudentRepository_createInsertsAtHead(t *testing.T) {
	db := openSeeded(t)
	repo := NewStudentRepository(db)

	created, err := repo.CreateStudent(student.Student{
		Name: "Ada Lovelace", Grade: "10", Section: "A", RollNo: "10A-99",
		Guardian: "Anne Byron", Phone: "+1 (555) 019-0042",
		Status: student.StatusActive, JoinedAt: "2026-02-09",
	})
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	if created.ID == "" {
		t.Error("expected a generated id")
	}

	rows, err := repo.QueryAllStudents()
	if err != nil {
		t.Fatalf("QueryAllStudents() failed: %v", err)
	}
	if len(rows) != 6 {
		t.Fatalf("expected 6 students; got %d", len(rows))
	}
	if rows[0].ID != created.ID || rows[0].Name != "Ada Lovelace" {
		t.Errorf("expected new record at head; got %q", rows[0].Name)
	}
	if rows[1].Name != "Aarav Mehta" {
		t.Errorf("expected prior head to shift to row 1; got %q", rows[1].Name)
	}
}

func TestStudentRepository_filter(t *testing.T) {
	db := openSeeded(t)
	repo := NewStudentRepository(db)

	tests := []struct {
		name   string
		filter student.QueryFilter
		want   []string
	}{
		{"empty filter returns all", student.QueryFilter{}, []string{"Aarav Mehta", "Sophia Kim", "Miguel Santos", "Zara Khan", "Ethan Brooks"}},
		{"wildcard status returns all", student.QueryFilter{Status: student.Wildcard}, []string{"Aarav Mehta", "Sophia Kim", "Miguel Santos", "Zara Khan", "Ethan Brooks"}},
		{"search matches name case-insensitively", student.QueryFilter{Search: "mehta"}, []string{"Aarav Mehta"}},
		{"search matches roll number", student.QueryFilter{Search: "8c-19"}, []string{"Sophia Kim"}},
		{"search matches guardian", student.QueryFilter{Search: "claire"}, []string{"Ethan Brooks"}},
		{"status narrows", student.QueryFilter{Status: student.StatusInactive}, []string{"Miguel Santos"}},
		{"search and status combine", student.QueryFilter{Search: "khan", Status: student.StatusActive}, []string{"Zara Khan"}},
		{"no match", student.QueryFilter{Search: "nobody"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := repo.FilterStudents(tt.filter)
			if err != nil {
				t.Fatalf("FilterStudents() failed: %v", err)
			}
			got := studentNames(rows)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v; got %v", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("row %d: expected %q; got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestStudentRepository_filterIsIdempotent(t *testing.T) {
	db := openSeeded(t)
	repo := NewStudentRepository(db)

	filter := student.QueryFilter{Search: "a", Status: student.StatusActive}
	once, err := repo.FilterStudents(filter)
	if err != nil {
		t.Fatalf("FilterStudents() failed: %v", err)
	}

	// re-applying the same filter to its own result must change nothing
	again := make([]student.Student, 0, len(once))
	for _, s := range once {
		if filter.Matches(s) {
			again = append(again, s)
		}
	}
	if len(again) != len(once) {
		t.Fatalf("filter not idempotent: %d rows became %d", len(once), len(again))
	}
}

func TestStudentRepository_updatePreservesPosition(t *testing.T) {
	db := openSeeded(t)
	repo := NewStudentRepository(db)

	rows, _ := repo.QueryAllStudents()
	target := rows[2] // Miguel Santos
	target.Status = student.StatusActive
	target.Phone = "+1 (555) 000-0000"

	updated, err := repo.UpdateStudent(target)
	if err != nil {
		t.Fatalf("UpdateStudent() failed: %v", err)
	}
	if updated.Status != student.StatusActive {
		t.Errorf("expected status %q; got %q", student.StatusActive, updated.Status)
	}

	rows, _ = repo.QueryAllStudents()
	if rows[2].ID != target.ID {
		t.Errorf("expected record to keep listing position 2; found %q there", rows[2].Name)
	}
	if rows[2].Phone != "+1 (555) 000-0000" {
		t.Errorf("expected phone to be updated; got %q", rows[2].Phone)
	}
}

func TestStudentRepository_updateUnknownIDLeavesStoreUnchanged(t *testing.T) {
	db := openSeeded(t)
	repo := NewStudentRepository(db)

	before, _ := repo.QueryAllStudents()
	_, err := repo.UpdateStudent(student.Student{ID: "missing", Name: "Ghost"})
	if !errors.Is(err, student.ErrNotFound) {
		t.Fatalf("expected ErrNotFound; got %v", err)
	}

	after, _ := repo.QueryAllStudents()
	if len(after) != len(before) {
		t.Fatalf("store changed: %d rows became %d", len(before), len(after))
	}
	for i := range before {
		if after[i] != before[i] {
			t.Errorf("row %d changed: %+v != %+v", i, after[i], before[i])
		}
	}
}

func TestStudentRepository_delete(t *testing.T) {
	db := openSeeded(t)
	repo := NewStudentRepository(db)

	rows, _ := repo.QueryAllStudents()
	if err := repo.DeleteStudent(rows[1].ID); err != nil {
		t.Fatalf("DeleteStudent() failed: %v", err)
	}
	rows, _ = repo.QueryAllStudents()
	if len(rows) != 4 {
		t.Fatalf("expected 4 students after delete; got %d", len(rows))
	}

	// unknown ids are a silent no-op
	if err := repo.DeleteStudent("missing"); err != nil {
		t.Fatalf("expected nil for unknown id; got %v", err)
	}
	rows, _ = repo.QueryAllStudents()
	if len(rows) != 4 {
		t.Fatalf("expected store unchanged; got %d rows", len(rows))
	}
}

func TestInvoiceRepository_markPaidSettlesBalance(t *testing.T) {
	db := openSeeded(t)
	repo := NewInvoiceRepository(db)

	rows, _ := repo.QueryAllInvoices()
	var target invoice.Invoice
	for _, inv := range rows {
		if inv.Title == "Exam Fee" {
			target = inv
		}
	}
	if target.ID == "" {
		t.Fatal("fixture invoice not found")
	}

	settled, err := repo.MarkInvoicePaid(target.ID)
	if err != nil {
		t.Fatalf("MarkInvoicePaid() failed: %v", err)
	}
	if settled.Status != invoice.StatusPaid {
		t.Errorf("expected status %q; got %q", invoice.StatusPaid, settled.Status)
	}
	if settled.Paid != settled.Amount {
		t.Errorf("expected paid == amount (%v); got %v", settled.Amount, settled.Paid)
	}
	if settled.Due() != 0 {
		t.Errorf("expected no outstanding balance; got %v", settled.Due())
	}

	_, err = repo.MarkInvoicePaid("missing")
	if !errors.Is(err, invoice.ErrNotFound) {
		t.Fatalf("expected ErrNotFound; got %v", err)
	}
}

func TestInvoiceRepository_updateStatus(t *testing.T) {
	db := openSeeded(t)
	repo := NewInvoiceRepository(db)

	rows, _ := repo.QueryAllInvoices()
	var draft invoice.Invoice
	for _, inv := range rows {
		if inv.Status == invoice.StatusDraft {
			draft = inv
		}
	}
	if draft.ID == "" {
		t.Fatal("draft fixture not found")
	}

	sent, err := repo.UpdateInvoiceStatus(draft.ID, invoice.StatusSent)
	if err != nil {
		t.Fatalf("UpdateInvoiceStatus() failed: %v", err)
	}
	if sent.Status != invoice.StatusSent {
		t.Errorf("expected status %q; got %q", invoice.StatusSent, sent.Status)
	}
	if sent.Paid != draft.Paid {
		t.Errorf("status change must not touch paid; %v became %v", draft.Paid, sent.Paid)
	}
}

func TestInvoiceTotals(t *testing.T) {
	rows := []invoice.Invoice{
		{Amount: 1200, Paid: 1200},
		{Amount: 180, Paid: 0},
	}
	totals := invoice.Totalize(rows)
	if totals.Amount != 1380 {
		t.Errorf("expected amount 1380; got %v", totals.Amount)
	}
	if totals.Paid != 1200 {
		t.Errorf("expected paid 1200; got %v", totals.Paid)
	}
	if totals.Due != 180 {
		t.Errorf("expected due 180; got %v", totals.Due)
	}
}

func TestDashboardRepository_returnsDetachedCopy(t *testing.T) {
	db, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	repo := NewDashboardRepository(db)

	snap, err := repo.GetSnapshot()
	if err != nil {
		t.Fatalf("GetSnapshot() failed: %v", err)
	}
	if len(snap.Stats) == 0 {
		t.Fatal("expected the default snapshot to carry stats")
	}

	snap.Stats[0].Title = "tampered"
	fresh, _ := repo.GetSnapshot()
	if fresh.Stats[0].Title == "tampered" {
		t.Error("mutating a returned snapshot must not affect the store")
	}
}
