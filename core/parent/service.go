package parent

import "errors"

var ErrNotFound = errors.New("parent not found")

type (
	Repository interface {
		// CreateParent assigns a fresh id and inserts the record at the head
		// of the listing (most-recent-first).
		CreateParent(p Parent) (Parent, error)
		QueryAllParents() ([]Parent, error)
		GetParentByID(id string) (Parent, error)
		// FilterParents applies QueryFilter in listing order; records are
		// never re-sorted.
		FilterParents(filter QueryFilter) ([]Parent, error)
		// UpdateParent replaces the fields of the record matching p.ID in
		// place, preserving its listing position.
		UpdateParent(p Parent) (Parent, error)
		// DeleteParent removes the record if present; unknown ids are a no-op.
		DeleteParent(id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(np NewParent) (Parent, error) {
	p := Parent{
		Name:         np.Name,
		StudentName:  np.StudentName,
		Relationship: np.Relationship,
		Phone:        np.Phone,
		Email:        np.Email,
		Status:       np.Status,
	}
	if p.Relationship == "" {
		p.Relationship = RelationshipGuardian
	}
	if p.Status == "" {
		p.Status = StatusActive
	}
	return svc.repo.CreateParent(p)
}

func (svc *Service) QueryAll() ([]Parent, error) {
	return svc.repo.QueryAllParents()
}

func (svc *Service) GetByID(id string) (Parent, error) {
	return svc.repo.GetParentByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Parent, error) {
	filter.Clean()
	return svc.repo.FilterParents(filter)
}

func (svc *Service) Update(id string, up UpdateParent) (Parent, error) {
	// optional fields left empty keep their prior values; a partial payload
	// can never blank the status or relationship out of their closed sets
	orig, err := svc.repo.GetParentByID(id)
	if err != nil {
		return Parent{}, err
	}
	if up.Relationship == "" {
		up.Relationship = orig.Relationship
	}
	if up.Status == "" {
		up.Status = orig.Status
	}
	return svc.repo.UpdateParent(Parent{
		ID:           id,
		Name:         up.Name,
		StudentName:  up.StudentName,
		Relationship: up.Relationship,
		Phone:        up.Phone,
		Email:        up.Email,
		Status:       up.Status,
	})
}

func (svc *Service) Delete(id string) error {
	return svc.repo.DeleteParent(id)
}
