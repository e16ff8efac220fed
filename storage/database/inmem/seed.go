package inmemdb

import (
	"github.com/crestview/admin/core/invoice"
	"github.com/crestview/admin/core/parent"
	"github.com/crestview/admin/core/student"
	"github.com/crestview/admin/core/teacher"
)

// Seed loads the sample roster and invoice fixtures for local runs.
// Fixtures are inserted oldest-first so the listing shows them in their
// catalog order (newest records lead the listing).
func Seed(db *DB) error {
	students := []student.Student{
		{Name: "Aarav Mehta", Grade: "10", Section: "A", RollNo: "10A-07", Guardian: "Neha Mehta", Phone: "+1 (555) 014-2211", Status: student.StatusActive, JoinedAt: "2025-04-18"},
		{Name: "Sophia Kim", Grade: "8", Section: "C", RollNo: "8C-19", Guardian: "Jin Kim", Phone: "+1 (555) 018-3302", Status: student.StatusActive, JoinedAt: "2024-09-01"},
		{Name: "Miguel Santos", Grade: "6", Section: "B", RollNo: "6B-03", Guardian: "Ana Santos", Phone: "+1 (555) 017-1109", Status: student.StatusInactive, JoinedAt: "2023-06-12"},
		{Name: "Zara Khan", Grade: "9", Section: "A", RollNo: "9A-14", Guardian: "Imran Khan", Phone: "+1 (555) 010-8874", Status: student.StatusActive, JoinedAt: "2025-01-09"},
		{Name: "Ethan Brooks", Grade: "7", Section: "D", RollNo: "7D-22", Guardian: "Claire Brooks", Phone: "+1 (555) 015-9021", Status: student.StatusActive, JoinedAt: "2024-02-26"},
	}
	studentRepo := NewStudentRepository(db)
	for i := len(students) - 1; i >= 0; i-- {
		if _, err := studentRepo.CreateStudent(students[i]); err != nil {
			return err
		}
	}

	parents := []parent.Parent{
		{Name: "Neha Mehta", StudentName: "Aarav Mehta", Relationship: parent.RelationshipMother, Phone: "+1 (555) 014-2211", Email: "neha.mehta@example.com", Status: parent.StatusActive},
		{Name: "Jin Kim", StudentName: "Sophia Kim", Relationship: parent.RelationshipFather, Phone: "+1 (555) 018-3302", Email: "jin.kim@example.com", Status: parent.StatusActive},
		{Name: "Ana Santos", StudentName: "Miguel Santos", Relationship: parent.RelationshipMother, Phone: "+1 (555) 017-1109", Email: "ana.santos@example.com", Status: parent.StatusInactive},
		{Name: "Imran Khan", StudentName: "Zara Khan", Relationship: parent.RelationshipFather, Phone: "+1 (555) 010-8874", Email: "imran.khan@example.com", Status: parent.StatusActive},
	}
	parentRepo := NewParentRepository(db)
	for i := len(parents) - 1; i >= 0; i-- {
		if _, err := parentRepo.CreateParent(parents[i]); err != nil {
			return err
		}
	}

	teachers := []teacher.Teacher{
		{Name: "Dr. Amelia Stone", Department: "Science", Email: "amelia.stone@school.edu", Phone: "+1 (555) 013-4420", Status: teacher.StatusActive, JoinedAt: "2022-08-15"},
		{Name: "Noah Turner", Department: "Mathematics", Email: "noah.turner@school.edu", Phone: "+1 (555) 011-2044", Status: teacher.StatusOnLeave, JoinedAt: "2021-03-07"},
		{Name: "Priya Nair", Department: "Languages", Email: "priya.nair@school.edu", Phone: "+1 (555) 012-7781", Status: teacher.StatusActive, JoinedAt: "2023-11-21"},
		{Name: "Hassan Ali", Department: "Social Studies", Email: "hassan.ali@school.edu", Phone: "+1 (555) 016-5510", Status: teacher.StatusInactive, JoinedAt: "2020-01-10"},
	}
	teacherRepo := NewTeacherRepository(db)
	for i := len(teachers) - 1; i >= 0; i-- {
		if _, err := teacherRepo.CreateTeacher(teachers[i]); err != nil {
			return err
		}
	}

	invoices := []invoice.Invoice{
		{Title: "Term 2 Tuition", Category: invoice.CategoryTuition, StudentName: "Aarav Mehta", Amount: 1200, Paid: 1200, Status: invoice.StatusPaid, DueDate: "2026-02-12", CreatedAt: "2026-01-20"},
		{Title: "Transport (Feb)", Category: invoice.CategoryTransport, StudentName: "Sophia Kim", Amount: 180, Paid: 0, Status: invoice.StatusSent, DueDate: "2026-02-10", CreatedAt: "2026-01-28"},
		{Title: "Library Fine", Category: invoice.CategoryLibrary, StudentName: "Miguel Santos", Amount: 25, Paid: 0, Status: invoice.StatusOverdue, DueDate: "2026-01-18", CreatedAt: "2026-01-10"},
		{Title: "Exam Fee", Category: invoice.CategoryExams, StudentName: "Zara Khan", Amount: 90, Paid: 45, Status: invoice.StatusSent, DueDate: "2026-02-05", CreatedAt: "2026-01-29"},
		{Title: "Sports Kit", Category: invoice.CategoryMisc, StudentName: "Ethan Brooks", Amount: 60, Paid: 0, Status: invoice.StatusDraft, DueDate: "2026-02-25", CreatedAt: "2026-02-01"},
	}
	invoiceRepo := NewInvoiceRepository(db)
	for i := len(invoices) - 1; i >= 0; i-- {
		if _, err := invoiceRepo.CreateInvoice(invoices[i]); err != nil {
			return err
		}
	}

	return nil
}
