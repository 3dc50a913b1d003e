package garden

import (
	"fmt"
	"io"
	"strings"

	"github.com/julianstephens/petgarden/internal/catalog"
	"github.com/julianstephens/petgarden/internal/constants"
	errs "github.com/julianstephens/petgarden/internal/errors"
	"github.com/julianstephens/petgarden/internal/ledger"
	"github.com/julianstephens/petgarden/internal/models"
)

func (g *Garden) Items() ([]models.ShopItem, error) {
	if err := g.requireActive(); err != nil {
		return nil, err
	}
	return g.ledger.Catalog().Items(), nil
}

func (g *Garden) Redeem(studentID, itemID string) (ledger.Receipt, error) {
	if err := g.requireActive(); err != nil {
		return ledger.Receipt{}, err
	}
	rc, err := g.ledger.Redeem(studentID, itemID)
	if err != nil {
		return ledger.Receipt{}, err
	}
	return rc, g.persist(constants.KeyStudents, constants.KeyShop, constants.KeyRecords)
}

// AddItem adds a shop item, generating an id when none is given.
func (g *Garden) AddItem(item models.ShopItem) (models.ShopItem, error) {
	if err := g.requireActive(); err != nil {
		return models.ShopItem{}, err
	}
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return models.ShopItem{}, errs.ErrEmptyName
	}
	if _, err := models.ParseItemType(string(item.Type)); err != nil {
		return models.ShopItem{}, fmt.Errorf("%w: %v", errs.ErrInvalidInput, err)
	}
	if item.Type == models.ItemTypeColor {
		if _, err := item.Hue(); err != nil {
			return models.ShopItem{}, fmt.Errorf("%w: %v", errs.ErrInvalidInput, err)
		}
	}
	if item.ID == "" {
		item.ID = g.opts.ids.EntityID()
	}
	if item.Icon == "" {
		item.Icon = constants.DefaultShopItemIcon
	}
	if err := g.ledger.Catalog().AddItem(item); err != nil {
		return models.ShopItem{}, err
	}
	added, err := g.ledger.Catalog().Item(item.ID)
	if err != nil {
		return models.ShopItem{}, err
	}
	return added, g.persist(constants.KeyShop)
}

func (g *Garden) RemoveItem(id string) error {
	if err := g.requireActive(); err != nil {
		return err
	}
	if err := g.ledger.Catalog().RemoveItem(id); err != nil {
		return err
	}
	return g.persist(constants.KeyShop)
}

// Restock adds delta to an item's stock; the result never drops below zero.
func (g *Garden) Restock(id string, delta int) (models.ShopItem, error) {
	if err := g.requireActive(); err != nil {
		return models.ShopItem{}, err
	}
	item, err := g.ledger.Catalog().AdjustStock(id, delta)
	if err != nil {
		return models.ShopItem{}, err
	}
	return item, g.persist(constants.KeyShop)
}

func (g *Garden) SetStock(id string, stock int) (models.ShopItem, error) {
	if err := g.requireActive(); err != nil {
		return models.ShopItem{}, err
	}
	item, err := g.ledger.Catalog().Item(id)
	if err != nil {
		return models.ShopItem{}, err
	}
	stock = min(max(stock, 0), constants.MaxItemStock)
	return g.Restock(id, stock-item.Stock)
}

func (g *Garden) Rules() ([]models.PointRule, error) {
	if err := g.requireActive(); err != nil {
		return nil, err
	}
	return g.ledger.Catalog().Rules(), nil
}

// RuleInput is a quick-add rule. The sign of Value is forced by Negative.
type RuleInput struct {
	Label    string
	Value    int
	Negative bool
	Icon     string
}

func (g *Garden) AddRule(in RuleInput) (models.PointRule, error) {
	if err := g.requireActive(); err != nil {
		return models.PointRule{}, err
	}
	label := strings.TrimSpace(in.Label)
	if label == "" {
		return models.PointRule{}, errs.ErrEmptyName
	}
	if in.Value > constants.MaxRuleValue || in.Value < -constants.MaxRuleValue {
		return models.PointRule{}, fmt.Errorf("%w: rule value must be within ±%d", errs.ErrInvalidInput, constants.MaxRuleValue)
	}
	value := max(in.Value, -in.Value)
	icon := in.Icon
	if in.Negative {
		value = -value
		if icon == "" {
			icon = constants.DefaultNegativeRuleIcon
		}
	} else if icon == "" {
		icon = constants.DefaultPositiveRuleIcon
	}
	rule := models.PointRule{
		ID:    g.opts.ids.EntityID(),
		Label: label,
		Value: value,
		Icon:  icon,
		Type:  models.RuleTypeForValue(value),
	}
	if err := g.ledger.Catalog().AddRule(rule); err != nil {
		return models.PointRule{}, err
	}
	return rule, g.persist(constants.KeyRules)
}

func (g *Garden) RemoveRule(id string) error {
	if err := g.requireActive(); err != nil {
		return err
	}
	if err := g.ledger.Catalog().RemoveRule(id); err != nil {
		return err
	}
	return g.persist(constants.KeyRules)
}

// ImportCatalog replaces rules and/or items from a YAML document.
func (g *Garden) ImportCatalog(r io.Reader) (catalog.File, error) {
	if err := g.requireActive(); err != nil {
		return catalog.File{}, err
	}
	f, err := catalog.DecodeFile(r)
	if err != nil {
		return catalog.File{}, fmt.Errorf("%w: %v", errs.ErrInvalidInput, err)
	}
	if err := g.ledger.Catalog().Import(f); err != nil {
		return catalog.File{}, err
	}
	return f, g.persist(constants.KeyRules, constants.KeyShop)
}

func (g *Garden) ExportCatalog(w io.Writer) error {
	if err := g.requireActive(); err != nil {
		return err
	}
	return catalog.EncodeFile(w, g.ledger.Catalog())
}
