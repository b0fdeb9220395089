package snapshot

import (
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/pointgen/model"
)

// Params records the generator arguments that produced a snapshot.
type Params struct {
	Clusters int     `json:"clusters,omitempty"`
	Circles  int     `json:"circles,omitempty"`
	Radius   float64 `json:"radius,omitempty"`
	Variance float64 `json:"variance,omitempty"`
	Rings    int     `json:"rings,omitempty"`
}

// Snapshot is a persisted dataset with its centers and centroid history.
type Snapshot struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Layout        string              `json:"layout"`
	Amount        int                 `json:"amount"`
	Params        Params              `json:"params"`
	Points        model.Dataset       `json:"points"`
	Centers       model.CentroidSet   `json:"centers,omitempty"`
	CentroidSteps []model.CentroidSet `json:"centroid_steps,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

// NewID returns a new time-ordered snapshot ID.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	out := *s
	out.Points = s.Points.Clone()
	out.Centers = s.Centers.Clone()
	if s.CentroidSteps != nil {
		out.CentroidSteps = make([]model.CentroidSet, len(s.CentroidSteps))
		for i, cs := range s.CentroidSteps {
			out.CentroidSteps[i] = cs.Clone()
		}
	}
	return &out
}
