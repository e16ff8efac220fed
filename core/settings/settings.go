package settings

import (
	"sync"
	"time"

	"github.com/crestview/admin/core"
)

// Settings are the school-wide preferences shown on the settings page.
type Settings struct {
	SchoolName         string `json:"schoolName" validate:"required"`
	Timezone           string `json:"timezone" validate:"required"`
	EmailNotifications bool   `json:"emailNotifications"`
	SMSNotifications   bool   `json:"smsNotifications"`
	AuditMode          bool   `json:"auditMode"`
}

func (s *Settings) Validate() error {
	s.SchoolName = core.CleanString(s.SchoolName)
	s.Timezone = core.CleanString(s.Timezone)
	return core.Validate.Struct(s)
}

// Defaults returns the settings a fresh deployment starts with.
func Defaults() Settings {
	return Settings{
		SchoolName:         "Crestview Academy",
		Timezone:           "UTC",
		EmailNotifications: true,
		SMSNotifications:   false,
		AuditMode:          true,
	}
}

// Store owns the settings of one running process. State is explicit and
// injected where needed; there is no process-wide singleton.
type Store struct {
	mu sync.RWMutex
	s  Settings
}

func NewStore() *Store {
	return &Store{s: Defaults()}
}

func (st *Store) Get() Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.s
}

// Put replaces the held settings after validation; invalid input leaves the
// store untouched.
func (st *Store) Put(s Settings) (Settings, error) {
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s = s
	return s, nil
}

// AuditExport is the descriptor serialized by the audit export action.
type AuditExport struct {
	SchoolName  string    `json:"schoolName"`
	Timezone    string    `json:"timezone"`
	AuditMode   bool      `json:"auditMode"`
	GeneratedAt time.Time `json:"generatedAt"`
	Notes       string    `json:"notes"`
}

// Audit builds the audit export descriptor for the current settings.
func (st *Store) Audit(now time.Time) AuditExport {
	s := st.Get()
	return AuditExport{
		SchoolName:  s.SchoolName,
		Timezone:    s.Timezone,
		AuditMode:   s.AuditMode,
		GeneratedAt: now.UTC(),
		Notes:       "In-memory audit descriptor. Connect persistent logging for real audit trails.",
	}
}
