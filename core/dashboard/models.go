package dashboard

import (
	"errors"

	"github.com/crestview/admin/core"
	"github.com/crestview/admin/core/calendar"
)

var ErrInvalidSnapshot = errors.New("invalid dashboard snapshot")

type (
	// StatCard is one headline figure at the top of the dashboard.
	StatCard struct {
		ID        string  `json:"id" validate:"required"`
		Title     string  `json:"title" validate:"required"`
		Value     float64 `json:"value"`
		DeltaText string  `json:"deltaText,omitempty"`
		Icon      string  `json:"icon" validate:"required,oneof=students parents teachers earnings"`
		Color     string  `json:"color" validate:"required,oneof=green yellow blue purple"`
	}

	// ChartPoint is one period of the fees chart; the sequence order is
	// chronological and meaningful.
	ChartPoint struct {
		Label    string  `json:"label" validate:"required"`
		Income   float64 `json:"income"`
		Expenses float64 `json:"expenses"`
	}

	Notice struct {
		ID    string `json:"id" validate:"required"`
		Date  string `json:"date" validate:"required,datekey"`
		Title string `json:"title" validate:"required"`
		Body  string `json:"body" validate:"required"`
	}

	Activity struct {
		ID   string `json:"id" validate:"required"`
		Time string `json:"time" validate:"required"`
		Text string `json:"text" validate:"required"`
		Kind string `json:"kind" validate:"required,oneof=info success warning danger"`
	}

	// Snapshot is one immutable, fully populated dashboard payload, produced
	// atomically: either every sequence is present and valid, or the whole
	// snapshot is rejected.
	Snapshot struct {
		Stats      []StatCard       `json:"stats" validate:"dive"`
		FeesChart  []ChartPoint     `json:"feesChart" validate:"dive"`
		Notices    []Notice         `json:"notices" validate:"dive"`
		Activities []Activity       `json:"activities" validate:"dive"`
		Events     []calendar.Event `json:"events" validate:"dive"`
	}
)

// Validate checks the snapshot against the dashboard contract. A nil sequence
// means the field was absent from the payload; empty sequences are valid.
func (s *Snapshot) Validate() error {
	var flds []core.FieldError
	for _, seq := range []struct {
		field  string
		absent bool
	}{
		{"stats", s.Stats == nil},
		{"feesChart", s.FeesChart == nil},
		{"notices", s.Notices == nil},
		{"activities", s.Activities == nil},
		{"events", s.Events == nil},
	} {
		if seq.absent {
			flds = append(flds, core.FieldError{Field: seq.field, Error: "this field is required"})
		}
	}
	if flds != nil {
		return core.NewValidationError(ErrInvalidSnapshot, flds...)
	}
	return core.Validate.Struct(s)
}
