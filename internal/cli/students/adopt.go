package students

import (
	"errors"

	"github.com/julianstephens/petgarden/internal/catalog"
	"github.com/julianstephens/petgarden/internal/cli"
	"github.com/julianstephens/petgarden/internal/cli/render"
	"github.com/julianstephens/petgarden/internal/ledger"
	"github.com/julianstephens/petgarden/internal/models"
)

type AdoptCmd struct {
	StudentID  string `arg:"" optional:"" help:"Student ID."`
	PetName    string `arg:"" optional:"" help:"Name for the new pet."`
	Breed      string `short:"b" help:"Adopt one of the built-in breeds." xor:"look"`
	Type       string `short:"t" help:"Pet type: egg, cat, dog or rabbit." xor:"look"`
	Image      string `help:"Base image URL, used with --type."`
	Replace    bool   `help:"Replace a pet the student already has. Its progress is lost."`
	ListBreeds bool   `help:"List the built-in breeds and exit."`
}

func (c *AdoptCmd) Run(ctx *cli.Context) error {
	if c.ListBreeds {
		render.Breeds(ctx.Stdout(), catalog.Breeds())
		return nil
	}
	if c.StudentID == "" || c.PetName == "" {
		return errors.New("adopt needs a student ID and a pet name")
	}

	req := ledger.AdoptRequest{StudentID: c.StudentID, Name: c.PetName, Replace: c.Replace}
	switch {
	case c.Breed != "":
		b, err := catalog.FindBreed(c.Breed)
		if err != nil {
			return err
		}
		req.Type, req.BaseImage = b.Type, b.Image
	case c.Type != "":
		t, err := models.ParsePetType(c.Type)
		if err != nil {
			return err
		}
		if c.Image == "" {
			return errors.New("--type needs an --image URL, or pick a --breed")
		}
		req.Type, req.BaseImage = t, c.Image
	default:
		return errors.New("choose a look with --breed or --type and --image")
	}

	g, err := ctx.Garden()
	if err != nil {
		return err
	}
	s, err := g.Adopt(req)
	if err != nil {
		return err
	}
	ctx.Printf("✓ %s adopted %s the %s!\n", s.Name, s.Pet.Name, s.Pet.Type)
	return nil
}
