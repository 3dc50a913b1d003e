package models

import "testing"

func TestRuleTypeForValue(t *testing.T) {
	tests := []struct {
		value int
		want  RuleType
	}{
		{3, RuleTypePositive},
		{0, RuleTypePositive},
		{-1, RuleTypeNegative},
	}
	for _, tt := range tests {
		if got := RuleTypeForValue(tt.value); got != tt.want {
			t.Errorf("RuleTypeForValue(%d) = %s, want %s", tt.value, got, tt.want)
		}
	}
}

func TestParsePetType(t *testing.T) {
	if got, err := ParsePetType("rabbit"); err != nil || got != PetTypeRabbit {
		t.Errorf("ParsePetType(rabbit) = %q, %v", got, err)
	}
	if _, err := ParsePetType("dragon"); err == nil {
		t.Error("ParsePetType(dragon) should fail")
	}
}

func TestShopItemHue(t *testing.T) {
	hue, err := ShopItem{ID: "c1", Type: ItemTypeColor, Value: "300"}.Hue()
	if err != nil || hue != 300 {
		t.Errorf("Hue() = %d, %v", hue, err)
	}
	if _, err := (ShopItem{ID: "c9", Type: ItemTypeColor, Value: "pink"}).Hue(); err == nil {
		t.Error("expected error for non-numeric hue")
	}
	if _, err := (ShopItem{ID: "s1", Type: ItemTypeConsumable}).Hue(); err == nil {
		t.Error("expected error for non-color item")
	}
}

func TestStudentCloneIsDeep(t *testing.T) {
	hue, acc := 90, "Glasses"
	s := Student{ID: "s", Pet: &Pet{Level: 6, Abilities: []Ability{{ID: "a1"}}, HueRotate: &hue, Accessory: &acc}}

	c := s.Clone()
	c.Pet.Level = 1
	c.Pet.Abilities[0].ID = "changed"
	*c.Pet.HueRotate = 0
	*c.Pet.Accessory = "Hat"

	if s.Pet.Level != 6 || s.Pet.Abilities[0].ID != "a1" || *s.Pet.HueRotate != 90 || *s.Pet.Accessory != "Glasses" {
		t.Errorf("clone shares state with original: %+v", s.Pet)
	}
	if s.PetLevel() != 6 || (Student{}).PetLevel() != 0 {
		t.Error("PetLevel mismatch")
	}
}

func TestApplyDefaultSettings(t *testing.T) {
	s := Settings{ClassName: "Room 4"}
	ApplyDefaultSettings(&s)
	if s.SystemName == "" || s.ClassName != "Room 4" {
		t.Errorf("ApplyDefaultSettings() = %+v", s)
	}
}
