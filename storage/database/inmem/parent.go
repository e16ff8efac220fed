package inmemdb

import (
	"github.com/google/uuid"

	"github.com/crestview/admin/core/parent"
)

type parentRepository struct {
	db *parentTable
}

func NewParentRepository(db *DB) parent.Repository {
	return &parentRepository{db: db.parents}
}

func (repo *parentRepository) query() []parent.Parent {
	rows := make([]parent.Parent, 0, len(repo.db.rows))
	for _, p := range repo.db.rows {
		rows = append(rows, *p)
	}
	return rows
}

func (repo *parentRepository) CreateParent(p parent.Parent) (parent.Parent, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	p.ID = uuid.New().String()
	repo.db.rows = append([]*parent.Parent{&p}, repo.db.rows...)
	return p, nil
}

func (repo *parentRepository) QueryAllParents() ([]parent.Parent, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *parentRepository) GetParentByID(id string) (parent.Parent, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, p := range repo.db.rows {
		if p.ID == id {
			return *p, nil
		}
	}
	return parent.Parent{}, parent.ErrNotFound
}

func (repo *parentRepository) FilterParents(filter parent.QueryFilter) ([]parent.Parent, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	rows := make([]parent.Parent, 0, len(repo.db.rows))
	for _, p := range repo.db.rows {
		if filter.Matches(*p) {
			rows = append(rows, *p)
		}
	}
	return rows, nil
}

func (repo *parentRepository) UpdateParent(p parent.Parent) (parent.Parent, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, orig := range repo.db.rows {
		if orig.ID == p.ID {
			orig.Name = p.Name
			orig.StudentName = p.StudentName
			orig.Relationship = p.Relationship
			orig.Phone = p.Phone
			orig.Email = p.Email
			orig.Status = p.Status
			return *orig, nil
		}
	}
	return parent.Parent{}, parent.ErrNotFound
}

func (repo *parentRepository) DeleteParent(id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for i, p := range repo.db.rows {
		if p.ID == id {
			repo.db.rows = append(repo.db.rows[:i], repo.db.rows[i+1:]...)
			break
		}
	}
	return nil
}
