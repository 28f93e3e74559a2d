// actions is a package containing a high-level structure that implements the functions to use as CLI Actions.
//
// See https://cli.urfave.org/v2/ for more information.

package actions

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/forestvpn/restcountries/api"
	"github.com/forestvpn/restcountries/settings"
	"github.com/forestvpn/restcountries/utils"
)

// Query is a single REST Countries request with the field projection left open.
type Query func(ctx context.Context, fields ...api.Field) ([]api.Country, error)

// QueryWrapper is a structure that wraps the api.Client together with the output preferences of the CLI.
type QueryWrapper struct {
	Client   *api.Client
	Settings *settings.Settings
	// Fields overrides Settings.Fields when not empty.
	Fields []api.Field
	// Table renders a table instead of JSON. It is false when stdout is not a terminal or --json is set.
	Table bool
	// SaveTo is a file path to dump the JSON result to, if any.
	SaveTo string
	Out    io.Writer
}

func (w QueryWrapper) fields() []api.Field {
	if len(w.Fields) > 0 {
		return w.Fields
	}

	if w.Settings != nil {
		return w.Settings.Fields
	}

	return nil
}

// Run executes the query with the effective field projection and prints the result.
func (w QueryWrapper) Run(ctx context.Context, query Query) error {
	fields := w.fields()
	start := time.Now()
	countries, err := query(ctx, fields...)

	if err != nil {
		return err
	}

	utils.Logger.WithFields(logrus.Fields{
		"count":   len(countries),
		"elapsed": utils.HumanizeDuration(time.Since(start)),
	}).Info("query finished")

	data, err := json.MarshalIndent(countries, "", "    ")

	if err != nil {
		return err
	}

	if len(w.SaveTo) > 0 {
		err = settings.JsonDump(data, w.SaveTo)

		if err != nil {
			return err
		}
	}

	if !w.Table {
		_, err = w.Out.Write(append(data, '\n'))
		return err
	}

	if len(countries) == 0 {
		color.New(color.Faint).Fprintln(w.Out, "No countries matched")
		return nil
	}

	return RenderTable(w.Out, countries, fields)
}
