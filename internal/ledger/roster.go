package ledger

import (
	"fmt"

	errs "github.com/julianstephens/petgarden/internal/errors"
	"github.com/julianstephens/petgarden/internal/models"
)

// Roster owns the students in the order they were added.
type Roster struct {
	order []string
	byID  map[string]models.Student
}

// NewRoster builds a roster from persisted students.
func NewRoster(students []models.Student) (*Roster, error) {
	r := &Roster{byID: make(map[string]models.Student, len(students))}
	for _, s := range students {
		if _, ok := r.byID[s.ID]; ok {
			return nil, fmt.Errorf("%w: student %s", errs.ErrDuplicateID, s.ID)
		}
		r.put(s)
	}
	return r, nil
}

// Get returns a copy of the student with the given id.
func (r *Roster) Get(id string) (models.Student, error) {
	s, ok := r.byID[id]
	if !ok {
		return models.Student{}, fmt.Errorf("%w: %s", errs.ErrStudentNotFound, id)
	}
	return s.Clone(), nil
}

// All returns copies of every student in roster order.
func (r *Roster) All() []models.Student {
	out := make([]models.Student, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out
}

func (r *Roster) Len() int {
	return len(r.order)
}

// put inserts or replaces a student.
func (r *Roster) put(s models.Student) {
	if _, ok := r.byID[s.ID]; !ok {
		r.order = append(r.order, s.ID)
	}
	r.byID[s.ID] = s.Clone()
}
