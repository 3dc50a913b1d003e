package settings

import (
	"github.com/julianstephens/petgarden/internal/cli"
	"github.com/julianstephens/petgarden/internal/garden"
)

// SettingsCmd shows the display configuration, or updates the fields given.
type SettingsCmd struct {
	SystemName *string `help:"Name shown in the title."`
	ClassName  *string `help:"Name of the class."`
	Sound      *bool   `help:"Play sounds in UI clients (--sound=false to mute)."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	g, err := ctx.Garden()
	if err != nil {
		return err
	}

	s := g.Settings()
	if c.SystemName != nil || c.ClassName != nil || c.Sound != nil {
		s, err = g.UpdateSettings(garden.SettingsUpdate{
			SystemName:   c.SystemName,
			ClassName:    c.ClassName,
			SoundEnabled: c.Sound,
		})
		if err != nil {
			return err
		}
		ctx.Println("✓ Settings updated")
	}

	ctx.Printf("System name: %s\n", s.SystemName)
	ctx.Printf("Class name:  %s\n", s.ClassName)
	ctx.Printf("Sound:       %t\n", s.SoundEnabled)
	return nil
}
