// Package progression computes pet growth from experience changes.
// Everything here is pure: inputs are never mutated.
package progression

import (
	"github.com/julianstephens/petgarden/internal/constants"
	"github.com/julianstephens/petgarden/internal/models"
)

// Abilities is the fixed ability catalog in unlock order.
var Abilities = []models.Ability{
	{ID: "a1", Name: "Studious Eye", Description: "20% chance of one bonus XP when earning XP", UnlockedAt: 5, Icon: "Zap"},
	{ID: "a2", Name: "Honor Heart", Description: "10% discount when redeeming rewards", UnlockedAt: 10, Icon: "Target"},
	{ID: "a3", Name: "Guardian Aura", Description: "Deductions hurt one point less", UnlockedAt: 15, Icon: "Shield"},
}

// Outcome describes what a single xp change did to a pet.
type Outcome struct {
	OldLevel  int
	NewLevel  int
	LeveledUp bool
	Unlocked  []models.Ability
}

// LevelFromXP maps experience to a level; level 1 starts at 0 xp.
func LevelFromXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/constants.XPPerLevel + 1
}

// StageFromLevel maps a level to its growth stage.
func StageFromLevel(level int) models.Stage {
	switch {
	case level <= constants.BabyMaxLevel:
		return models.StageBaby
	case level <= constants.TeenMaxLevel:
		return models.StageTeen
	default:
		return models.StageAdult
	}
}

// XPDelta converts a point rule value into pet experience.
func XPDelta(points int) int {
	return points * constants.XPPerPoint
}

// DisplayImage returns the image a pet is shown with. Pets currently keep
// their adoption image at every level.
func DisplayImage(p models.Pet) string {
	return p.BaseImage
}

// NewPet returns a freshly adopted pet at level 1.
func NewPet(id, name string, petType models.PetType, baseImage string) models.Pet {
	p := models.Pet{
		ID:        id,
		Name:      name,
		Type:      petType,
		Level:     1,
		XP:        0,
		BaseImage: baseImage,
		Stage:     StageFromLevel(1),
		Abilities: []models.Ability{},
	}
	p.Image = DisplayImage(p)
	return p
}

// Apply adds delta xp to a copy of p. Abilities already held are kept even
// when the level drops.
func Apply(p models.Pet, delta int) (models.Pet, Outcome) {
	next := p.Clone()

	next.XP = max(0, p.XP+delta)
	next.Level = LevelFromXP(next.XP)
	next.Stage = StageFromLevel(next.Level)
	next.Image = DisplayImage(next)

	var unlocked []models.Ability
	for _, a := range Abilities {
		if a.UnlockedAt <= next.Level && !p.HasAbility(a.ID) {
			unlocked = append(unlocked, a)
		}
	}
	next.Abilities = append(next.Abilities, unlocked...)

	return next, Outcome{
		OldLevel:  p.Level,
		NewLevel:  next.Level,
		LeveledUp: next.Level > p.Level,
		Unlocked:  unlocked,
	}
}
