package system

import (
	"context"
	"errors"

	"github.com/julianstephens/petgarden/internal/activation"
	"github.com/julianstephens/petgarden/internal/cli"
	"github.com/julianstephens/petgarden/internal/constants"
)

type ActivateCmd struct {
	Code      string `arg:"" help:"Activation code."`
	CodesURL  string `help:"URL of the activation code list." env:"PETGARDEN_CODES_URL" xor:"source"`
	CodesFile string `help:"Local file with one activation code per line." type:"existingfile" xor:"source"`
}

func (c *ActivateCmd) Run(ctx *cli.Context) error {
	g, err := ctx.Garden()
	if err != nil {
		return err
	}
	if g.IsActivated() {
		ctx.Println("✓ The garden is already activated.")
		return nil
	}

	var src activation.Source
	switch {
	case c.CodesFile != "":
		src = activation.File(c.CodesFile)
	case c.CodesURL != "":
		src = activation.NewFetcher(c.CodesURL)
	default:
		return errors.New("no code list configured, pass --codes-url or --codes-file")
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), constants.ActivationFetchTimeout)
	defer cancel()
	if err := g.Activate(reqCtx, c.Code, src); err != nil {
		return err
	}
	ctx.Println("✓ Garden activated. Have fun!")
	return nil
}
