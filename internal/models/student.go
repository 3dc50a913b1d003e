package models

type Student struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	FoodCount int    `json:"food_count"`
	Medals    int    `json:"medals"`
	Pet       *Pet   `json:"pet,omitempty"`
}

// HasPet reports whether the student has adopted a pet.
func (s Student) HasPet() bool {
	return s.Pet != nil
}

// PetLevel returns the pet's level, or 0 for students without a pet.
func (s Student) PetLevel() int {
	if s.Pet == nil {
		return 0
	}
	return s.Pet.Level
}

// Clone returns a deep copy of the student including its pet.
func (s Student) Clone() Student {
	c := s
	if s.Pet != nil {
		pet := s.Pet.Clone()
		c.Pet = &pet
	}
	return c
}
