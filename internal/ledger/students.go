package ledger

import (
	"fmt"

	"github.com/julianstephens/petgarden/internal/constants"
	errs "github.com/julianstephens/petgarden/internal/errors"
	"github.com/julianstephens/petgarden/internal/logger"
	"github.com/julianstephens/petgarden/internal/models"
	"github.com/julianstephens/petgarden/internal/progression"
)

// AwardResult is the committed outcome of a point award.
type AwardResult struct {
	Student models.Student
	Outcome progression.Outcome
	Records []models.GrowthRecord
}

// AdoptRequest describes a pet adoption. Replace allows overwriting a pet
// the student already has, which discards its progression.
type AdoptRequest struct {
	StudentID string
	Type      models.PetType
	Name      string
	BaseImage string
	Replace   bool
}

// AddStudent enrolls a new student with empty balances and no pet.
func (l *Ledger) AddStudent(name string) models.Student {
	s := models.Student{ID: l.ids.EntityID(), Name: name}
	l.roster.put(s)
	logger.Debug("Student added", "id", s.ID, "name", name)
	return s.Clone()
}

// RenameStudent changes a display name. Existing records keep the old one.
func (l *Ledger) RenameStudent(id, name string) (models.Student, error) {
	s, err := l.roster.Get(id)
	if err != nil {
		return models.Student{}, err
	}
	s.Name = name
	l.roster.put(s)
	return s, nil
}

// Award applies the catalog rule ruleID to a student.
func (l *Ledger) Award(studentID, ruleID string) (AwardResult, error) {
	rule, err := l.catalog.Rule(ruleID)
	if err != nil {
		return AwardResult{}, err
	}
	return l.ApplyPointRule(studentID, rule)
}

// ApplyPointRule credits or deducts food for rule, grants a medal for
// positive rules and grows the student's pet by twice the rule value.
func (l *Ledger) ApplyPointRule(studentID string, rule models.PointRule) (AwardResult, error) {
	s, err := l.roster.Get(studentID)
	if err != nil {
		return AwardResult{}, err
	}

	s.FoodCount = max(0, s.FoodCount+rule.Value)
	if rule.Value > 0 {
		s.Medals += constants.MedalsPerPositiveAward
	}

	var outcome progression.Outcome
	if s.Pet != nil {
		var pet models.Pet
		pet, outcome = progression.Apply(*s.Pet, progression.XPDelta(rule.Value))
		s.Pet = &pet
	}

	recs := []models.GrowthRecord{
		l.log.NewRecord(s.Name, models.RecordPoint, rule.Label, foodChange(rule.Value)),
	}
	if outcome.LeveledUp {
		recs = append(recs, l.log.NewRecord(
			s.Name,
			models.RecordMilestone,
			fmt.Sprintf("%s reached level %d and is now %s", s.Pet.Name, outcome.NewLevel, s.Pet.Stage),
			fmt.Sprintf("Lv %d", outcome.NewLevel),
		))
	}

	l.roster.put(s)
	l.log.Append(recs...)

	logger.Debug("Point rule applied", "student", s.ID, "rule", rule.ID, "value", rule.Value, "leveled_up", outcome.LeveledUp)
	return AwardResult{Student: s, Outcome: outcome, Records: recs}, nil
}

// Adopt gives a student a new level 1 pet.
func (l *Ledger) Adopt(req AdoptRequest) (models.Student, error) {
	s, err := l.roster.Get(req.StudentID)
	if err != nil {
		return models.Student{}, err
	}
	if s.Pet != nil && !req.Replace {
		return models.Student{}, fmt.Errorf("%w: %s already has %s", errs.ErrPetAlreadyAdopted, s.Name, s.Pet.Name)
	}
	if s.Pet != nil {
		logger.Warn("Replacing adopted pet", "student", s.ID, "old_pet", s.Pet.Name, "old_level", s.Pet.Level)
	}

	pet := progression.NewPet(l.ids.EntityID(), req.Name, req.Type, req.BaseImage)
	s.Pet = &pet

	rec := l.log.NewRecord(s.Name, models.RecordAdopt, fmt.Sprintf("Adopted %s", pet.Name), "")

	l.roster.put(s)
	l.log.Append(rec)

	logger.Debug("Pet adopted", "student", s.ID, "pet", pet.ID, "type", pet.Type)
	return s, nil
}

func foodChange(value int) string {
	return fmt.Sprintf("%+d food", value)
}
