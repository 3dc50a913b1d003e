package models

import (
	"fmt"
	"strconv"
)

type RuleType string

const (
	RuleTypePositive RuleType = "positive"
	RuleTypeNegative RuleType = "negative"
)

// RuleTypeForValue derives the rule type from the sign of its value.
func RuleTypeForValue(value int) RuleType {
	if value < 0 {
		return RuleTypeNegative
	}
	return RuleTypePositive
}

type PointRule struct {
	ID    string   `json:"id" yaml:"id"`
	Label string   `json:"label" yaml:"label"`
	Value int      `json:"value" yaml:"value"`
	Icon  string   `json:"icon" yaml:"icon"`
	Type  RuleType `json:"type" yaml:"type"`
}

type ItemType string

const (
	ItemTypeConsumable ItemType = "consumable"
	ItemTypeAccessory  ItemType = "accessory"
	ItemTypeColor      ItemType = "color"
)

// ParseItemType validates a shop item type name.
func ParseItemType(s string) (ItemType, error) {
	switch ItemType(s) {
	case ItemTypeConsumable, ItemTypeAccessory, ItemTypeColor:
		return ItemType(s), nil
	}
	return "", fmt.Errorf("invalid item type: %q (expected consumable, accessory or color)", s)
}

type ShopItem struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Price       int      `json:"price" yaml:"price"`
	Icon        string   `json:"icon" yaml:"icon"`
	Stock       int      `json:"stock" yaml:"stock"`
	Type        ItemType `json:"type" yaml:"type"`
	// Value is a hue rotation in degrees for color items and an
	// accessory id for accessory items.
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// Hue returns the hue rotation carried by a color item.
func (i ShopItem) Hue() (int, error) {
	if i.Type != ItemTypeColor {
		return 0, fmt.Errorf("item %s is not a color item", i.ID)
	}
	hue, err := strconv.Atoi(i.Value)
	if err != nil {
		return 0, fmt.Errorf("color item %s has invalid hue %q: %w", i.ID, i.Value, err)
	}
	return hue, nil
}
