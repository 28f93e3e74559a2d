package actions

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/forestvpn/restcountries/api"
)

const absent = "-"

var defaultColumns = []api.Field{
	api.FieldName,
	api.FieldAlpha2Code,
	api.FieldAlpha3Code,
	api.FieldCapital,
	api.FieldRegion,
	api.FieldPopulation,
}

// cells renders one Country attribute as a table cell.
var cells = map[api.Field]func(api.Country) string{
	api.FieldName:           func(c api.Country) string { return str(c.Name) },
	api.FieldNativeName:     func(c api.Country) string { return str(c.NativeName) },
	api.FieldTopLevelDomain: func(c api.Country) string { return list(c.TopLevelDomain) },
	api.FieldAlpha2Code:     func(c api.Country) string { return str(c.Alpha2Code) },
	api.FieldAlpha3Code:     func(c api.Country) string { return str(c.Alpha3Code) },
	api.FieldNumericCode:    func(c api.Country) string { return str(c.NumericCode) },
	api.FieldCallingCodes:   func(c api.Country) string { return list(c.CallingCodes) },
	api.FieldCapital:        func(c api.Country) string { return str(c.Capital) },
	api.FieldAltSpellings:   func(c api.Country) string { return list(c.AltSpellings) },
	api.FieldRegion:         func(c api.Country) string { return str(c.Region) },
	api.FieldSubregion:      func(c api.Country) string { return str(c.Subregion) },
	api.FieldPopulation: func(c api.Country) string {
		if v, ok := c.Population.Get(); ok {
			return strconv.FormatInt(v, 10)
		}
		return absent
	},
	api.FieldLatlng: func(c api.Country) string {
		if c.Latlng == nil {
			return absent
		}
		coords := make([]string, len(c.Latlng))
		for i, v := range c.Latlng {
			coords[i] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		return strings.Join(coords, ", ")
	},
	api.FieldDemonym:   func(c api.Country) string { return str(c.Demonym) },
	api.FieldArea:      func(c api.Country) string { return float(c.Area) },
	api.FieldGini:      func(c api.Country) string { return float(c.Gini) },
	api.FieldTimezones: func(c api.Country) string { return list(c.Timezones) },
	api.FieldBorders:   func(c api.Country) string { return list(c.Borders) },
	api.FieldCurrencies: func(c api.Country) string {
		if c.Currencies == nil {
			return absent
		}
		codes := make([]string, len(c.Currencies))
		for i, currency := range c.Currencies {
			codes[i] = str(currency.Code)
		}
		return strings.Join(codes, ", ")
	},
	api.FieldLanguages: func(c api.Country) string {
		if c.Languages == nil {
			return absent
		}
		names := make([]string, len(c.Languages))
		for i, language := range c.Languages {
			names[i] = str(language.Name)
		}
		return strings.Join(names, ", ")
	},
	api.FieldTranslations: func(c api.Country) string {
		t, ok := c.Translations.Get()
		if !ok {
			return absent
		}
		data, err := json.Marshal(t)
		if err != nil {
			return absent
		}
		return string(data)
	},
	api.FieldFlag: func(c api.Country) string { return str(c.Flag) },
	api.FieldRegionalBlocs: func(c api.Country) string {
		if c.RegionalBlocs == nil {
			return absent
		}
		acronyms := make([]string, len(c.RegionalBlocs))
		for i, bloc := range c.RegionalBlocs {
			acronyms[i] = str(bloc.Acronym)
		}
		return strings.Join(acronyms, ", ")
	},
	api.FieldCioc: func(c api.Country) string { return str(c.Cioc) },
}

func str(o api.Optional[string]) string {
	return o.ValueOr(absent)
}

func float(o api.Optional[float64]) string {
	if v, ok := o.Get(); ok {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return absent
}

func list(values []string) string {
	if values == nil {
		return absent
	}
	return strings.Join(values, ", ")
}

// columns picks the requested fields that can be rendered, or the default set.
func columns(fields []api.Field) []api.Field {
	var cols []api.Field

	for _, f := range fields {
		if _, ok := cells[f]; ok {
			cols = append(cols, f)
		}
	}

	if len(cols) == 0 {
		return defaultColumns
	}

	return cols
}

// RenderTable writes countries as a borderless table, one column per field, in upstream order.
// Attributes upstream did not send are shown as "-".
func RenderTable(out io.Writer, countries []api.Country, fields []api.Field) error {
	cols := columns(fields)
	header := make([]string, len(cols))

	for i, f := range cols {
		header[i] = string(f)
	}

	var data [][]string

	for _, c := range countries {
		row := make([]string, len(cols))

		for i, f := range cols {
			row[i] = cells[f](c)
		}

		data = append(data, row)
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.Render()
	return nil
}

// ListFields writes the field registry, marking the fields used by default.
func ListFields(out io.Writer, defaults []api.Field) error {
	var data [][]string

	for _, f := range api.AllFields() {
		mark := ""

		for _, d := range defaults {
			if d == f {
				mark = "*"
				break
			}
		}

		data = append(data, []string{string(f), mark})
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Field", "Default"})
	table.SetBorder(false)
	table.AppendBulk(data)
	table.Render()

	_, err := fmt.Fprintf(out, "\n%d fields\n", len(data))
	return err
}
