package inmemdb

import (
	"github.com/google/uuid"

	"github.com/crestview/admin/core/teacher"
)

type teacherRepository struct {
	db *teacherTable
}

func NewTeacherRepository(db *DB) teacher.Repository {
	return &teacherRepository{db: db.teachers}
}

func (repo *teacherRepository) query() []teacher.Teacher {
	rows := make([]teacher.Teacher, 0, len(repo.db.rows))
	for _, t := range repo.db.rows {
		rows = append(rows, *t)
	}
	return rows
}

func (repo *teacherRepository) CreateTeacher(t teacher.Teacher) (teacher.Teacher, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	t.ID = uuid.New().String()
	repo.db.rows = append([]*teacher.Teacher{&t}, repo.db.rows...)
	return t, nil
}

func (repo *teacherRepository) QueryAllTeachers() ([]teacher.Teacher, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *teacherRepository) GetTeacherByID(id string) (teacher.Teacher, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, t := range repo.db.rows {
		if t.ID == id {
			return *t, nil
		}
	}
	return teacher.Teacher{}, teacher.ErrNotFound
}

func (repo *teacherRepository) FilterTeachers(filter teacher.QueryFilter) ([]teacher.Teacher, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	rows := make([]teacher.Teacher, 0, len(repo.db.rows))
	for _, t := range repo.db.rows {
		if filter.Matches(*t) {
			rows = append(rows, *t)
		}
	}
	return rows, nil
}

func (repo *teacherRepository) UpdateTeacher(t teacher.Teacher) (teacher.Teacher, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, orig := range repo.db.rows {
		if orig.ID == t.ID {
			orig.Name = t.Name
			orig.Department = t.Department
			orig.Email = t.Email
			orig.Phone = t.Phone
			orig.Status = t.Status
			orig.JoinedAt = t.JoinedAt
			return *orig, nil
		}
	}
	return teacher.Teacher{}, teacher.ErrNotFound
}

func (repo *teacherRepository) UpdateTeacherStatus(id, status string) (teacher.Teacher, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, orig := range repo.db.rows {
		if orig.ID == id {
			orig.Status = status
			return *orig, nil
		}
	}
	return teacher.Teacher{}, teacher.ErrNotFound
}

func (repo *teacherRepository) DeleteTeacher(id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for i, t := range repo.db.rows {
		if t.ID == id {
			repo.db.rows = append(repo.db.rows[:i], repo.db.rows[i+1:]...)
			break
		}
	}
	return nil
}
