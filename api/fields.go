package api

import "strings"

// Field is a Country attribute name as accepted by the upstream fields= projection.
// Values outside the constants below are not rejected locally.
type Field string

const (
	FieldName           Field = "name"
	FieldTopLevelDomain Field = "topLevelDomain"
	FieldAlpha2Code     Field = "alpha2Code"
	FieldAlpha3Code     Field = "alpha3Code"
	FieldCallingCodes   Field = "callingCodes"
	FieldCapital        Field = "capital"
	FieldAltSpellings   Field = "altSpellings"
	FieldRegion         Field = "region"
	FieldSubregion      Field = "subregion"
	FieldPopulation     Field = "population"
	FieldLatlng         Field = "latlng"
	FieldDemonym        Field = "demonym"
	FieldArea           Field = "area"
	FieldGini           Field = "gini"
	FieldTimezones      Field = "timezones"
	FieldBorders        Field = "borders"
	FieldNativeName     Field = "nativeName"
	FieldNumericCode    Field = "numericCode"
	FieldCurrencies     Field = "currencies"
	FieldLanguages      Field = "languages"
	FieldTranslations   Field = "translations"
	FieldFlag           Field = "flag"
	FieldRegionalBlocs  Field = "regionalBlocs"
	FieldCioc           Field = "cioc"
)

var allFields = []Field{
	FieldName,
	FieldTopLevelDomain,
	FieldAlpha2Code,
	FieldAlpha3Code,
	FieldCallingCodes,
	FieldCapital,
	FieldAltSpellings,
	FieldRegion,
	FieldSubregion,
	FieldPopulation,
	FieldLatlng,
	FieldDemonym,
	FieldArea,
	FieldGini,
	FieldTimezones,
	FieldBorders,
	FieldNativeName,
	FieldNumericCode,
	FieldCurrencies,
	FieldLanguages,
	FieldTranslations,
	FieldFlag,
	FieldRegionalBlocs,
	FieldCioc,
}

// AllFields returns every known field in declaration order.
func AllFields() []Field {
	fields := make([]Field, len(allFields))
	copy(fields, allFields)
	return fields
}

// IsKnown reports whether f is one of the registered fields.
func (f Field) IsKnown() bool {
	for _, known := range allFields {
		if f == known {
			return true
		}
	}
	return false
}

// ParseFields splits a comma or semicolon separated list into fields.
// Blank entries are dropped, unknown names are kept.
func ParseFields(s string) []Field {
	var fields []Field

	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' }) {
		part = strings.TrimSpace(part)

		if len(part) > 0 {
			fields = append(fields, Field(part))
		}
	}

	return fields
}
