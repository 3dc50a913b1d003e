// Package catalog holds the configurable point rules and shop items.
package catalog

import (
	"fmt"

	"github.com/julianstephens/petgarden/internal/constants"
	errs "github.com/julianstephens/petgarden/internal/errors"
	"github.com/julianstephens/petgarden/internal/models"
)

// Catalog keeps rules and items in insertion order, keyed by id.
type Catalog struct {
	rules []models.PointRule
	items []models.ShopItem
}

// New returns a catalog holding copies of rules and items.
func New(rules []models.PointRule, items []models.ShopItem) (*Catalog, error) {
	r, err := buildRules(rules)
	if err != nil {
		return nil, err
	}
	it, err := buildItems(items)
	if err != nil {
		return nil, err
	}
	return &Catalog{rules: r, items: it}, nil
}

// Rules returns a copy of all point rules.
func (c *Catalog) Rules() []models.PointRule {
	return append([]models.PointRule(nil), c.rules...)
}

// Rule looks up a point rule by id.
func (c *Catalog) Rule(id string) (models.PointRule, error) {
	for _, r := range c.rules {
		if r.ID == id {
			return r, nil
		}
	}
	return models.PointRule{}, fmt.Errorf("%w: %s", errs.ErrRuleNotFound, id)
}

// AddRule appends a rule. Its type is re-derived from the value sign.
func (c *Catalog) AddRule(rule models.PointRule) error {
	if _, err := c.Rule(rule.ID); err == nil {
		return fmt.Errorf("%w: rule %s", errs.ErrDuplicateID, rule.ID)
	}
	if err := checkRule(rule); err != nil {
		return err
	}
	rule.Type = models.RuleTypeForValue(rule.Value)
	c.rules = append(c.rules, rule)
	return nil
}

// RemoveRule deletes a rule. Past growth records are unaffected.
func (c *Catalog) RemoveRule(id string) error {
	for i, r := range c.rules {
		if r.ID == id {
			c.rules = append(c.rules[:i:i], c.rules[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", errs.ErrRuleNotFound, id)
}

// ReplaceRules swaps in a whole new rule list. On error the catalog is
// unchanged.
func (c *Catalog) ReplaceRules(rules []models.PointRule) error {
	next, err := buildRules(rules)
	if err != nil {
		return err
	}
	c.rules = next
	return nil
}

func buildRules(rules []models.PointRule) ([]models.PointRule, error) {
	seen := make(map[string]bool, len(rules))
	next := make([]models.PointRule, 0, len(rules))
	for _, r := range rules {
		if seen[r.ID] {
			return nil, fmt.Errorf("%w: rule %s", errs.ErrDuplicateID, r.ID)
		}
		if err := checkRule(r); err != nil {
			return nil, err
		}
		seen[r.ID] = true
		r.Type = models.RuleTypeForValue(r.Value)
		next = append(next, r)
	}
	return next, nil
}

// Items returns a copy of all shop items.
func (c *Catalog) Items() []models.ShopItem {
	return append([]models.ShopItem(nil), c.items...)
}

// Item looks up a shop item by id.
func (c *Catalog) Item(id string) (models.ShopItem, error) {
	for _, it := range c.items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.ShopItem{}, fmt.Errorf("%w: %s", errs.ErrItemNotFound, id)
}

// AddItem appends a shop item.
func (c *Catalog) AddItem(item models.ShopItem) error {
	if _, err := c.Item(item.ID); err == nil {
		return fmt.Errorf("%w: item %s", errs.ErrDuplicateID, item.ID)
	}
	if err := checkItem(item); err != nil {
		return err
	}
	c.items = append(c.items, clampItem(item))
	return nil
}

// UpdateItem overwrites an existing item in place.
func (c *Catalog) UpdateItem(item models.ShopItem) error {
	if err := checkItem(item); err != nil {
		return err
	}
	for i, it := range c.items {
		if it.ID == item.ID {
			c.items[i] = clampItem(item)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", errs.ErrItemNotFound, item.ID)
}

// RemoveItem deletes a shop item.
func (c *Catalog) RemoveItem(id string) error {
	for i, it := range c.items {
		if it.ID == id {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", errs.ErrItemNotFound, id)
}

// ReplaceItems swaps in a whole new item list. On error the catalog is
// unchanged.
func (c *Catalog) ReplaceItems(items []models.ShopItem) error {
	next, err := buildItems(items)
	if err != nil {
		return err
	}
	c.items = next
	return nil
}

func buildItems(items []models.ShopItem) ([]models.ShopItem, error) {
	seen := make(map[string]bool, len(items))
	next := make([]models.ShopItem, 0, len(items))
	for _, it := range items {
		if seen[it.ID] {
			return nil, fmt.Errorf("%w: item %s", errs.ErrDuplicateID, it.ID)
		}
		if err := checkItem(it); err != nil {
			return nil, err
		}
		seen[it.ID] = true
		next = append(next, clampItem(it))
	}
	return next, nil
}

// AdjustStock adds delta to an item's stock, flooring at zero.
func (c *Catalog) AdjustStock(id string, delta int) (models.ShopItem, error) {
	item, err := c.Item(id)
	if err != nil {
		return models.ShopItem{}, err
	}
	delta = min(max(delta, -constants.MaxItemStock), constants.MaxItemStock)
	item.Stock += delta
	item = clampItem(item)
	return item, c.UpdateItem(item)
}

func clampItem(item models.ShopItem) models.ShopItem {
	item.Stock = min(max(0, item.Stock), constants.MaxItemStock)
	item.Price = max(0, item.Price)
	return item
}

func checkRule(r models.PointRule) error {
	if r.Value > constants.MaxRuleValue || r.Value < -constants.MaxRuleValue {
		return fmt.Errorf("%w: rule %s value %d is outside ±%d", errs.ErrInvalidInput, r.ID, r.Value, constants.MaxRuleValue)
	}
	return nil
}

// checkItem rejects values above the caps. Negative price and stock are
// floored by clampItem instead.
func checkItem(it models.ShopItem) error {
	if it.Price > constants.MaxItemPrice {
		return fmt.Errorf("%w: item %s price %d is over %d", errs.ErrInvalidInput, it.ID, it.Price, constants.MaxItemPrice)
	}
	if it.Stock > constants.MaxItemStock {
		return fmt.Errorf("%w: item %s stock %d is over %d", errs.ErrInvalidInput, it.ID, it.Stock, constants.MaxItemStock)
	}
	return nil
}
