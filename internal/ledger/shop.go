package ledger

import (
	"fmt"

	errs "github.com/julianstephens/petgarden/internal/errors"
	"github.com/julianstephens/petgarden/internal/logger"
	"github.com/julianstephens/petgarden/internal/models"
)

// Receipt is the committed outcome of a redemption.
type Receipt struct {
	Student models.Student
	Item    models.ShopItem
	Record  models.GrowthRecord
}

// Redeem buys itemID for a student. The medal debit, the cosmetic change,
// the stock decrement and the redeem record are committed together; any
// failed check leaves everything unchanged.
func (l *Ledger) Redeem(studentID, itemID string) (Receipt, error) {
	item, err := l.catalog.Item(itemID)
	if err != nil {
		return Receipt{}, err
	}
	if item.Stock <= 0 {
		return Receipt{}, fmt.Errorf("%w: %s", errs.ErrItemOutOfStock, item.Name)
	}
	s, err := l.roster.Get(studentID)
	if err != nil {
		return Receipt{}, err
	}
	if s.Medals < item.Price {
		return Receipt{}, fmt.Errorf("%w: %s has %d, %s costs %d", errs.ErrNotEnoughMedals, s.Name, s.Medals, item.Name, item.Price)
	}

	s.Medals -= item.Price
	if s.Pet != nil {
		switch item.Type {
		case models.ItemTypeColor:
			hue, err := item.Hue()
			if err != nil {
				return Receipt{}, err
			}
			s.Pet.HueRotate = &hue
		case models.ItemTypeAccessory:
			acc := item.Value
			s.Pet.Accessory = &acc
		}
	}
	item.Stock = max(0, item.Stock-1)

	rec := l.log.NewRecord(s.Name, models.RecordRedeem, fmt.Sprintf("Redeemed: %s", item.Name), fmt.Sprintf("-%d medals", item.Price))

	if err := l.catalog.UpdateItem(item); err != nil {
		return Receipt{}, err
	}
	l.roster.put(s)
	l.log.Append(rec)

	logger.Debug("Item redeemed", "student", s.ID, "item", item.ID, "price", item.Price, "stock", item.Stock)
	return Receipt{Student: s, Item: item, Record: rec}, nil
}
