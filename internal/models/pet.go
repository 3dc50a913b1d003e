package models

import (
	"fmt"
	"strings"
)

type PetType string

const (
	PetTypeEgg    PetType = "Egg"
	PetTypeCat    PetType = "Cat"
	PetTypeDog    PetType = "Dog"
	PetTypeRabbit PetType = "Rabbit"
)

// ParsePetType accepts the type name in any letter case.
func ParsePetType(s string) (PetType, error) {
	for _, t := range []PetType{PetTypeEgg, PetTypeCat, PetTypeDog, PetTypeRabbit} {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid pet type: %q (expected cat, dog, rabbit or egg)", s)
}

type Stage string

const (
	StageBaby  Stage = "Baby"
	StageTeen  Stage = "Teen"
	StageAdult Stage = "Adult"
)

type Ability struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	UnlockedAt  int    `json:"unlocked_at" yaml:"unlocked_at"` // minimum level
	Icon        string `json:"icon" yaml:"icon"`
}

type Pet struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      PetType   `json:"type"`
	Level     int       `json:"level"`
	XP        int       `json:"xp"`
	BaseImage string    `json:"base_image"` // chosen at adoption, never changes
	Image     string    `json:"image"`      // derived from BaseImage
	Stage     Stage     `json:"stage"`
	Abilities []Ability `json:"abilities"`
	HueRotate *int      `json:"hue_rotate,omitempty"`
	Accessory *string   `json:"accessory,omitempty"`
}

// HasAbility reports whether the pet already holds the ability id.
func (p Pet) HasAbility(id string) bool {
	for _, a := range p.Abilities {
		if a.ID == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can mutate it freely.
func (p Pet) Clone() Pet {
	c := p
	c.Abilities = append([]Ability(nil), p.Abilities...)
	if p.HueRotate != nil {
		hue := *p.HueRotate
		c.HueRotate = &hue
	}
	if p.Accessory != nil {
		acc := *p.Accessory
		c.Accessory = &acc
	}
	return c
}
