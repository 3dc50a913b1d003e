package garden

import (
	"fmt"

	"github.com/julianstephens/petgarden/internal/models"
	"github.com/julianstephens/petgarden/internal/progression"
)

// Check scans the loaded state for values that break the growth rules,
// which can only happen when stored data was edited by hand. It does not
// require activation.
func (g *Garden) Check() []string {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	for _, s := range g.ledger.Roster().All() {
		if s.FoodCount < 0 {
			add("student %s (%s): negative food count %d", s.ID, s.Name, s.FoodCount)
		}
		if s.Medals < 0 {
			add("student %s (%s): negative medals %d", s.ID, s.Name, s.Medals)
		}
		if s.Pet != nil {
			for _, p := range checkPet(*s.Pet) {
				add("student %s (%s): %s", s.ID, s.Name, p)
			}
		}
	}

	for _, it := range g.ledger.Catalog().Items() {
		if it.Type == models.ItemTypeColor {
			if _, err := it.Hue(); err != nil {
				add("shop item %s: %v", it.ID, err)
			}
		}
	}

	if g.evicted > 0 {
		add("stored growth log was %d records over the cap of %d, the oldest are dropped on the next save", g.evicted, g.opts.recordLimit)
	}
	return problems
}

func checkPet(p models.Pet) []string {
	var out []string
	if p.XP < 0 {
		out = append(out, fmt.Sprintf("pet %s has negative xp %d", p.Name, p.XP))
	}
	if want := progression.LevelFromXP(p.XP); p.Level != want {
		out = append(out, fmt.Sprintf("pet %s is level %d but %d xp means level %d", p.Name, p.Level, p.XP, want))
	}
	if want := progression.StageFromLevel(p.Level); p.Stage != want {
		out = append(out, fmt.Sprintf("pet %s is %s but level %d means %s", p.Name, p.Stage, p.Level, want))
	}
	seen := map[string]bool{}
	for _, a := range p.Abilities {
		if seen[a.ID] {
			out = append(out, fmt.Sprintf("pet %s holds ability %s twice", p.Name, a.ID))
		}
		seen[a.ID] = true
	}
	for _, a := range progression.Abilities {
		if a.UnlockedAt <= p.Level && !seen[a.ID] {
			out = append(out, fmt.Sprintf("pet %s is missing ability %s", p.Name, a.ID))
		}
	}
	return out
}
