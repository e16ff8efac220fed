package inmemdb

import (
	"github.com/google/uuid"

	"github.com/crestview/admin/core/student"
)

type studentRepository struct {
	db *studentTable
}

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.students}
}

func (repo *studentRepository) query() []student.Student {
	rows := make([]student.Student, 0, len(repo.db.rows))
	for _, s := range repo.db.rows {
		rows = append(rows, *s)
	}
	return rows
}

func (repo *studentRepository) CreateStudent(s student.Student) (student.Student, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	s.ID = uuid.New().String()
	// newest records lead the listing
	repo.db.rows = append([]*student.Student{&s}, repo.db.rows...)
	return s, nil
}

func (repo *studentRepository) QueryAllStudents() ([]student.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *studentRepository) GetStudentByID(id string) (student.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, s := range repo.db.rows {
		if s.ID == id {
			return *s, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) FilterStudents(filter student.QueryFilter) ([]student.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	rows := make([]student.Student, 0, len(repo.db.rows))
	for _, s := range repo.db.rows {
		if filter.Matches(*s) {
			rows = append(rows, *s)
		}
	}
	return rows, nil
}

func (repo *studentRepository) UpdateStudent(s student.Student) (student.Student, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, orig := range repo.db.rows {
		if orig.ID == s.ID {
			// id and listing position survive the update
			orig.Name = s.Name
			orig.Grade = s.Grade
			orig.Section = s.Section
			orig.RollNo = s.RollNo
			orig.Guardian = s.Guardian
			orig.Phone = s.Phone
			orig.Status = s.Status
			orig.JoinedAt = s.JoinedAt
			return *orig, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) DeleteStudent(id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for i, s := range repo.db.rows {
		if s.ID == id {
			repo.db.rows = append(repo.db.rows[:i], repo.db.rows[i+1:]...)
			break
		}
	}
	return nil
}
