// settings is a package containing the CLI preferences stored in an ini file under AppDir.
package settings

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/forestvpn/restcountries/api"
	"github.com/forestvpn/restcountries/utils"
)

const (
	querySection  = "query"
	outputSection = "output"
	fieldsKey     = "fields"
	formatKey     = "format"
)

// Keys lists the names accepted by Set.
var Keys = []string{fieldsKey, formatKey}

// Settings holds the default field projection and output format.
type Settings struct {
	Fields []api.Field
	Format Format
	path   string
	file   *ini.File
}

// Load reads the settings at path. A missing file yields the defaults.
// An unsupported format is logged and replaced by FormatTable, so that
// 'config set format' can still repair the file.
func Load(path string) (*Settings, error) {
	file, err := ini.LooseLoad(path)

	if err != nil {
		return nil, err
	}

	s := &Settings{Format: FormatTable, path: path, file: file}
	s.Fields = api.ParseFields(file.Section(querySection).Key(fieldsKey).String())
	format := file.Section(outputSection).Key(formatKey).String()

	if len(format) > 0 {
		if err := Format(format).Validate(); err != nil {
			utils.Logger.WithField("config", path).Warn(err)
		} else {
			s.Format = Format(format)
		}
	}

	return s, nil
}

// Set updates one setting in memory. Call Save to persist it.
func (s *Settings) Set(key string, value string) error {
	switch key {
	case fieldsKey:
		s.Fields = api.ParseFields(value)
		names := make([]string, len(s.Fields))

		for i, f := range s.Fields {
			names[i] = string(f)
		}

		s.file.Section(querySection).Key(fieldsKey).SetValue(strings.Join(names, ","))
	case formatKey:
		format := Format(value)

		if err := format.Validate(); err != nil {
			return err
		}

		s.Format = format
		s.file.Section(outputSection).Key(formatKey).SetValue(value)
	default:
		return fmt.Errorf("unknown setting: %s (want one of %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

func (s *Settings) Save() error {
	return s.file.SaveTo(s.path)
}

// WriteTo writes the settings in ini syntax.
func (s *Settings) WriteTo(w io.Writer) (int64, error) {
	return s.file.WriteTo(w)
}
