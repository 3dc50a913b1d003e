package models

import "github.com/julianstephens/petgarden/internal/constants"

// Settings is the display configuration shown by UI callers.
type Settings struct {
	SystemName   string `json:"system_name"`
	ClassName    string `json:"class_name"`
	SoundEnabled bool   `json:"sound_enabled"`
}

// DefaultSettings returns the settings installed by init.
func DefaultSettings() Settings {
	return Settings{
		SystemName:   constants.DefaultSystemName,
		ClassName:    constants.DefaultClassName,
		SoundEnabled: constants.DefaultSoundEnabled,
	}
}

// ApplyDefaultSettings fills in missing names.
func ApplyDefaultSettings(settings *Settings) {
	if settings.SystemName == "" {
		settings.SystemName = constants.DefaultSystemName
	}
	if settings.ClassName == "" {
		settings.ClassName = constants.DefaultClassName
	}
}
