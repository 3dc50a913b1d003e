package ledger

import (
	"sort"
	"strings"

	"github.com/julianstephens/petgarden/internal/models"
)

const honorTop = 3

// Standing is one row of the honor roll.
type Standing struct {
	Rank    int
	Student models.Student
	Top     bool
}

// HonorRoll ranks students by medals, then by pet level, then by name.
func (l *Ledger) HonorRoll() []Standing {
	students := l.roster.All()
	sort.SliceStable(students, func(i, j int) bool {
		a, b := students[i], students[j]
		if a.Medals != b.Medals {
			return a.Medals > b.Medals
		}
		if a.PetLevel() != b.PetLevel() {
			return a.PetLevel() > b.PetLevel()
		}
		return a.Name < b.Name
	})

	out := make([]Standing, len(students))
	for i, s := range students {
		out[i] = Standing{Rank: i + 1, Student: s, Top: i < honorTop}
	}
	return out
}

// Search returns students whose name or pet name contains query, ignoring
// case. An empty query matches everyone.
func (l *Ledger) Search(query string) []models.Student {
	q := strings.ToLower(strings.TrimSpace(query))
	all := l.roster.All()
	if q == "" {
		return all
	}
	var out []models.Student
	for _, s := range all {
		if strings.Contains(strings.ToLower(s.Name), q) ||
			(s.Pet != nil && strings.Contains(strings.ToLower(s.Pet.Name), q)) {
			out = append(out, s)
		}
	}
	return out
}
