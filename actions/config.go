package actions

import (
	"io"

	"github.com/fatih/color"

	"github.com/forestvpn/restcountries/settings"
)

// ShowConfig writes the current settings in ini syntax.
func ShowConfig(out io.Writer, s *settings.Settings) error {
	_, err := s.WriteTo(out)
	return err
}

// SetConfig updates and persists a single setting.
func SetConfig(out io.Writer, s *settings.Settings, key string, value string) error {
	err := s.Set(key, value)

	if err != nil {
		return err
	}

	err = s.Save()

	if err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(out, "%s is set to %s\n", key, value)
	return nil
}
