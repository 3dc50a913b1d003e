package shop

import (
	"github.com/julianstephens/petgarden/internal/cli"
	"github.com/julianstephens/petgarden/internal/cli/render"
	"github.com/julianstephens/petgarden/internal/models"
)

type ShopListCmd struct{}

func (c *ShopListCmd) Run(ctx *cli.Context) error {
	g, err := ctx.Garden()
	if err != nil {
		return err
	}
	items, err := g.Items()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		ctx.Println("The shop is empty. Add items with 'petgarden item add'.")
		return nil
	}
	render.Items(ctx.Stdout(), items)
	return nil
}

type ShopRedeemCmd struct {
	StudentID string `arg:"" help:"Student ID."`
	ItemID    string `arg:"" help:"Shop item ID."`
}

func (c *ShopRedeemCmd) Run(ctx *cli.Context) error {
	g, err := ctx.Garden()
	if err != nil {
		return err
	}
	rc, err := g.Redeem(c.StudentID, c.ItemID)
	if err != nil {
		return err
	}
	ctx.Printf("✓ %s redeemed %s for %d medals (%d left)\n", rc.Student.Name, rc.Item.Name, rc.Item.Price, rc.Student.Medals)
	if rc.Student.Pet != nil && rc.Item.Type != models.ItemTypeConsumable {
		ctx.Printf("  %s\n", render.PetSummary(rc.Student))
	}
	return nil
}
