package shop

import (
	"fmt"
	"os"

	"github.com/julianstephens/petgarden/internal/cli"
	"github.com/julianstephens/petgarden/internal/models"
)

type ItemAddCmd struct {
	Name        string `arg:"" help:"Item name."`
	Type        string `short:"t" default:"consumable" enum:"consumable,accessory,color" help:"Item type."`
	Price       int    `short:"p" required:"" help:"Price in medals."`
	Stock       int    `default:"10" help:"Units available."`
	Value       string `help:"Accessory name, or hue in degrees for color items."`
	Description string `short:"d" help:"Short description."`
	Icon        string `help:"Icon name."`
	ID          string `help:"Item ID. Generated when empty."`
}

func (c *ItemAddCmd) Run(ctx *cli.Context) error {
	g, err := ctx.Garden()
	if err != nil {
		return err
	}
	item, err := g.AddItem(models.ShopItem{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Price:       c.Price,
		Icon:        c.Icon,
		Stock:       c.Stock,
		Type:        models.ItemType(c.Type),
		Value:       c.Value,
	})
	if err != nil {
		return err
	}
	ctx.Printf("✓ Added %s (%s)\n", item.Name, item.ID)
	return nil
}

type ItemRemoveCmd struct {
	ID string `arg:"" help:"Item ID."`
}

func (c *ItemRemoveCmd) Run(ctx *cli.Context) error {
	g, err := ctx.Garden()
	if err != nil {
		return err
	}
	if err := g.RemoveItem(c.ID); err != nil {
		return err
	}
	ctx.Printf("✓ Removed item %s\n", c.ID)
	return nil
}

type ItemRestockCmd struct {
	ID    string `arg:"" help:"Item ID."`
	Delta int    `arg:"" help:"Units to add, negative to take away."`
}

func (c *ItemRestockCmd) Run(ctx *cli.Context) error {
	g, err := ctx.Garden()
	if err != nil {
		return err
	}
	item, err := g.Restock(c.ID, c.Delta)
	if err != nil {
		return err
	}
	ctx.Printf("✓ %s stock is now %d\n", item.Name, item.Stock)
	return nil
}

type ItemSetStockCmd struct {
	ID    string `arg:"" help:"Item ID."`
	Stock int    `arg:"" help:"New stock level."`
}

func (c *ItemSetStockCmd) Run(ctx *cli.Context) error {
	g, err := ctx.Garden()
	if err != nil {
		return err
	}
	item, err := g.SetStock(c.ID, c.Stock)
	if err != nil {
		return err
	}
	ctx.Printf("✓ %s stock is now %d\n", item.Name, item.Stock)
	return nil
}

type CatalogImportCmd struct {
	File string `arg:"" type:"existingfile" help:"YAML file with rules and/or items."`
}

func (c *CatalogImportCmd) Run(ctx *cli.Context) error {
	g, err := ctx.Garden()
	if err != nil {
		return err
	}
	fh, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer fh.Close()

	f, err := g.ImportCatalog(fh)
	if err != nil {
		return err
	}
	if len(f.Rules) > 0 {
		ctx.Printf("✓ Replaced point rules (%d)\n", len(f.Rules))
	}
	if len(f.Items) > 0 {
		ctx.Printf("✓ Replaced shop items (%d)\n", len(f.Items))
	}
	return nil
}

type CatalogExportCmd struct{}

func (c *CatalogExportCmd) Run(ctx *cli.Context) error {
	g, err := ctx.Garden()
	if err != nil {
		return err
	}
	return g.ExportCatalog(ctx.Stdout())
}
