package rules

import (
	"github.com/julianstephens/petgarden/internal/cli"
	"github.com/julianstephens/petgarden/internal/cli/render"
	"github.com/julianstephens/petgarden/internal/garden"
)

type RuleListCmd struct{}

func (c *RuleListCmd) Run(ctx *cli.Context) error {
	g, err := ctx.Garden()
	if err != nil {
		return err
	}
	rules, err := g.Rules()
	if err != nil {
		return err
	}
	if len(rules) == 0 {
		ctx.Println("No point rules. Add one with 'petgarden rule add <label> <value>'.")
		return nil
	}
	render.Rules(ctx.Stdout(), rules)
	return nil
}

type RuleAddCmd struct {
	Label    string `arg:"" help:"What the rule is for."`
	Value    int    `arg:"" help:"Points, the sign is ignored."`
	Negative bool   `short:"n" help:"Deduct points instead of awarding them."`
	Icon     string `help:"Icon name."`
}

func (c *RuleAddCmd) Run(ctx *cli.Context) error {
	g, err := ctx.Garden()
	if err != nil {
		return err
	}
	r, err := g.AddRule(garden.RuleInput{Label: c.Label, Value: c.Value, Negative: c.Negative, Icon: c.Icon})
	if err != nil {
		return err
	}
	ctx.Printf("✓ Added rule %s (%+d, %s)\n", r.ID, r.Value, r.Type)
	return nil
}

type RuleRemoveCmd struct {
	ID string `arg:"" help:"Rule ID."`
}

func (c *RuleRemoveCmd) Run(ctx *cli.Context) error {
	g, err := ctx.Garden()
	if err != nil {
		return err
	}
	if err := g.RemoveRule(c.ID); err != nil {
		return err
	}
	ctx.Printf("✓ Removed rule %s\n", c.ID)
	return nil
}
