package dashboard

import (
	"github.com/pkg/errors"

	"github.com/crestview/admin/core"
)

type (
	// Repository returns the current snapshot from the aggregation source.
	Repository interface {
		GetSnapshot() (Snapshot, error)
	}

	Service struct {
		repo Repository
		log  core.Logger
	}
)

func NewService(repo Repository, logger core.Logger) *Service {
	return &Service{repo: repo, log: logger}
}

// Get returns the current snapshot, validated against the dashboard contract.
// An invalid snapshot never leaves the service: the violation is logged and
// the whole snapshot is rejected, nothing partial.
func (svc *Service) Get() (Snapshot, error) {
	snap, err := svc.repo.GetSnapshot()
	if err != nil {
		return Snapshot{}, err
	}
	if err := snap.Validate(); err != nil {
		svc.log.Error("dashboard snapshot failed contract validation", err)
		return Snapshot{}, errors.Wrap(err, "dashboard snapshot rejected")
	}
	return snap, nil
}
