package teacher

import (
	"errors"
	"time"

	"github.com/crestview/admin/core/calendar"
)

var ErrNotFound = errors.New("teacher not found")

type (
	Repository interface {
		// CreateTeacher assigns a fresh id and inserts the record at the head
		// of the listing (most-recent-first).
		CreateTeacher(t Teacher) (Teacher, error)
		QueryAllTeachers() ([]Teacher, error)
		GetTeacherByID(id string) (Teacher, error)
		// FilterTeachers applies QueryFilter in listing order; records are
		// never re-sorted.
		FilterTeachers(filter QueryFilter) ([]Teacher, error)
		// UpdateTeacher replaces the fields of the record matching t.ID in
		// place, preserving its listing position.
		UpdateTeacher(t Teacher) (Teacher, error)
		// UpdateTeacherStatus sets only the record's status. No transition
		// matrix is enforced; any status may follow any other.
		UpdateTeacherStatus(id, status string) (Teacher, error)
		// DeleteTeacher removes the record if present; unknown ids are a no-op.
		DeleteTeacher(id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(nt NewTeacher) (Teacher, error) {
	t := Teacher{
		Name:       nt.Name,
		Department: nt.Department,
		Email:      nt.Email,
		Phone:      nt.Phone,
		Status:     nt.Status,
		JoinedAt:   nt.JoinedAt,
	}
	if t.Status == "" {
		t.Status = StatusActive
	}
	if t.JoinedAt == "" {
		t.JoinedAt = calendar.Key(time.Now().UTC())
	}
	return svc.repo.CreateTeacher(t)
}

func (svc *Service) QueryAll() ([]Teacher, error) {
	return svc.repo.QueryAllTeachers()
}

func (svc *Service) GetByID(id string) (Teacher, error) {
	return svc.repo.GetTeacherByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Teacher, error) {
	filter.Clean()
	return svc.repo.FilterTeachers(filter)
}

func (svc *Service) Update(id string, ut UpdateTeacher) (Teacher, error) {
	// optional fields left empty keep their prior values; a partial payload
	// can never blank the status out of its closed set
	orig, err := svc.repo.GetTeacherByID(id)
	if err != nil {
		return Teacher{}, err
	}
	if ut.Status == "" {
		ut.Status = orig.Status
	}
	if ut.JoinedAt == "" {
		ut.JoinedAt = orig.JoinedAt
	}
	return svc.repo.UpdateTeacher(Teacher{
		ID:         id,
		Name:       ut.Name,
		Department: ut.Department,
		Email:      ut.Email,
		Phone:      ut.Phone,
		Status:     ut.Status,
		JoinedAt:   ut.JoinedAt,
	})
}

func (svc *Service) SetStatus(id, status string) (Teacher, error) {
	return svc.repo.UpdateTeacherStatus(id, status)
}

func (svc *Service) Delete(id string) error {
	return svc.repo.DeleteTeacher(id)
}
