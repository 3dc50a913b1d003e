package students

import (
	"github.com/julianstephens/petgarden/internal/cli"
	"github.com/julianstephens/petgarden/internal/cli/render"
	"github.com/julianstephens/petgarden/internal/models"
)

type AwardCmd struct {
	StudentIDs []string `arg:"" help:"Student IDs."`
	Rule       string   `short:"r" required:"" help:"Point rule ID."`
}

func (c *AwardCmd) Run(ctx *cli.Context) error {
	g, err := ctx.Garden()
	if err != nil {
		return err
	}
	for _, id := range c.StudentIDs {
		res, err := g.Award(id, c.Rule)
		if err != nil {
			return err
		}
		s := res.Student
		ctx.Printf("✓ %s: %s (food %d, medals %d)\n", s.Name, res.Records[0].ValueChange, s.FoodCount, s.Medals)
		for _, rec := range res.Records[1:] {
			if rec.Type == models.RecordMilestone {
				ctx.Printf("  🎉 %s\n", rec.Description)
			}
		}
	}
	return nil
}

type HonorCmd struct{}

func (c *HonorCmd) Run(ctx *cli.Context) error {
	g, err := ctx.Garden()
	if err != nil {
		return err
	}
	roll, err := g.HonorRoll()
	if err != nil {
		return err
	}
	if len(roll) == 0 {
		ctx.Println("No students yet.")
		return nil
	}
	render.Title(ctx.Stdout(), g.Settings().SystemName+" honor roll")
	render.HonorRoll(ctx.Stdout(), roll)
	return nil
}
