package inmemdb

import "github.com/crestview/admin/core/dashboard"

type dashboardRepository struct {
	db *dashboardTable
}

func NewDashboardRepository(db *DB) dashboard.Repository {
	return &dashboardRepository{db: db.dashboard}
}

func (repo *dashboardRepository) GetSnapshot() (dashboard.Snapshot, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return copySnapshot(repo.db.snap), nil
}

// copySnapshot deep-copies the sequences so callers can never mutate the
// held snapshot through a returned value. Nil sequences stay nil.
func copySnapshot(s dashboard.Snapshot) dashboard.Snapshot {
	return dashboard.Snapshot{
		Stats:      append(s.Stats[:0:0], s.Stats...),
		FeesChart:  append(s.FeesChart[:0:0], s.FeesChart...),
		Notices:    append(s.Notices[:0:0], s.Notices...),
		Activities: append(s.Activities[:0:0], s.Activities...),
		Events:     append(s.Events[:0:0], s.Events...),
	}
}
