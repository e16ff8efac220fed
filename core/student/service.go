package student

import (
	"errors"
	"time"

	"github.com/crestview/admin/core/calendar"
)

var ErrNotFound = errors.New("student not found")

type (
	Repository interface {
		// CreateStudent assigns a fresh id and inserts the record at the head
		// of the listing (most-recent-first).
		CreateStudent(s Student) (Student, error)
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id string) (Student, error)
		// FilterStudents applies QueryFilter in listing order; records are
		// never re-sorted.
		FilterStudents(filter QueryFilter) ([]Student, error)
		// UpdateStudent replaces the fields of the record matching s.ID in
		// place, preserving its listing position.
		UpdateStudent(s Student) (Student, error)
		// DeleteStudent removes the record if present; unknown ids are a no-op.
		DeleteStudent(id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ns NewStudent) (Student, error) {
	s := Student{
		Name:     ns.Name,
		Grade:    ns.Grade,
		Section:  ns.Section,
		RollNo:   ns.RollNo,
		Guardian: ns.Guardian,
		Phone:    ns.Phone,
		Status:   ns.Status,
		JoinedAt: ns.JoinedAt,
	}
	if s.Status == "" {
		s.Status = StatusActive
	}
	if s.JoinedAt == "" {
		s.JoinedAt = calendar.Key(time.Now().UTC())
	}
	return svc.repo.CreateStudent(s)
}

func (svc *Service) QueryAll() ([]Student, error) {
	return svc.repo.QueryAllStudents()
}

func (svc *Service) GetByID(id string) (Student, error) {
	return svc.repo.GetStudentByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Student, error) {
	filter.Clean()
	return svc.repo.FilterStudents(filter)
}

func (svc *Service) Update(id string, us UpdateStudent) (Student, error) {
	// optional fields left empty keep their prior values; a partial payload
	// can never blank the status out of its closed set
	orig, err := svc.repo.GetStudentByID(id)
	if err != nil {
		return Student{}, err
	}
	if us.Status == "" {
		us.Status = orig.Status
	}
	if us.JoinedAt == "" {
		us.JoinedAt = orig.JoinedAt
	}
	return svc.repo.UpdateStudent(Student{
		ID:       id,
		Name:     us.Name,
		Grade:    us.Grade,
		Section:  us.Section,
		RollNo:   us.RollNo,
		Guardian: us.Guardian,
		Phone:    us.Phone,
		Status:   us.Status,
		JoinedAt: us.JoinedAt,
	})
}

func (svc *Service) Delete(id string) error {
	return svc.repo.DeleteStudent(id)
}
