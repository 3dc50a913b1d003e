package students

import (
	"github.com/julianstephens/petgarden/internal/cli"
	"github.com/julianstephens/petgarden/internal/cli/render"
)

type StudentAddCmd struct {
	Names []string `arg:"" help:"Names of the students to add."`
}

func (c *StudentAddCmd) Run(ctx *cli.Context) error {
	g, err := ctx.Garden()
	if err != nil {
		return err
	}
	for _, name := range c.Names {
		s, err := g.AddStudent(name)
		if err != nil {
			return err
		}
		ctx.Printf("✓ Added %s (%s)\n", s.Name, s.ID)
	}
	return nil
}

type StudentListCmd struct {
	Search string `short:"s" help:"Only show students whose name or pet name contains this text."`
}

func (c *StudentListCmd) Run(ctx *cli.Context) error {
	g, err := ctx.Garden()
	if err != nil {
		return err
	}
	students, err := g.Students(c.Search)
	if err != nil {
		return err
	}
	if len(students) == 0 {
		if c.Search != "" {
			ctx.Printf("No students match %q.\n", c.Search)
		} else {
			ctx.Println("No students yet. Add one with 'petgarden student add <name>'.")
		}
		return nil
	}
	render.Title(ctx.Stdout(), g.Settings().ClassName)
	render.Students(ctx.Stdout(), students)
	return nil
}

type StudentRenameCmd struct {
	ID   string `arg:"" help:"Student ID."`
	Name string `arg:"" help:"New name."`
}

func (c *StudentRenameCmd) Run(ctx *cli.Context) error {
	g, err := ctx.Garden()
	if err != nil {
		return err
	}
	s, err := g.RenameStudent(c.ID, c.Name)
	if err != nil {
		return err
	}
	ctx.Printf("✓ Renamed to %s\n", s.Name)
	return nil
}

type StudentShowCmd struct {
	ID string `arg:"" help:"Student ID."`
}

func (c *StudentShowCmd) Run(ctx *cli.Context) error {
	g, err := ctx.Garden()
	if err != nil {
		return err
	}
	s, err := g.Student(c.ID)
	if err != nil {
		return err
	}
	render.Student(ctx.Stdout(), s)
	return nil
}
