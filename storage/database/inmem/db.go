package inmemdb

import (
	"sync"

	"github.com/crestview/admin/core/dashboard"
	"github.com/crestview/admin/core/invoice"
	"github.com/crestview/admin/core/parent"
	"github.com/crestview/admin/core/student"
	"github.com/crestview/admin/core/teacher"
)

type (
	// tables keep listing order: index 0 is the most recent record.
	studentTable struct {
		mutex sync.RWMutex
		rows  []*student.Student
	}

	parentTable struct {
		mutex sync.RWMutex
		rows  []*parent.Parent
	}

	teacherTable struct {
		mutex sync.RWMutex
		rows  []*teacher.Teacher
	}

	invoiceTable struct {
		mutex sync.RWMutex
		rows  []*invoice.Invoice
	}

	dashboardTable struct {
		mutex sync.RWMutex
		snap  dashboard.Snapshot
	}

	DB struct {
		students  *studentTable
		parents   *parentTable
		teachers  *teacherTable
		invoices  *invoiceTable
		dashboard *dashboardTable
	}
)

// Open returns a fresh in-memory database holding the static dashboard
// snapshot and no records. Nothing survives a process restart.
func Open() (*DB, error) {
	return &DB{
		students:  &studentTable{},
		parents:   &parentTable{},
		teachers:  &teacherTable{},
		invoices:  &invoiceTable{},
		dashboard: &dashboardTable{snap: dashboard.Fallback()},
	}, nil
}

// SetDashboardSnapshot replaces the snapshot served to the dashboard.
func (db *DB) SetDashboardSnapshot(snap dashboard.Snapshot) {
	db.dashboard.mutex.Lock()
	defer db.dashboard.mutex.Unlock()
	db.dashboard.snap = copySnapshot(snap)
}
