package api

import "encoding/json"

// Country is a single entry of a REST Countries response.
//
// Scalars use Optional so that a field left out by a fields= projection stays absent
// instead of turning into a zero value. Slices follow encoding/json: nil means the key
// was missing (or null), a non-nil empty slice means upstream sent [].
type Country struct {
	Name           Optional[string]       `json:"name"`
	NativeName     Optional[string]       `json:"nativeName"`
	TopLevelDomain []string               `json:"topLevelDomain"`
	Alpha2Code     Optional[string]       `json:"alpha2Code"`
	Alpha3Code     Optional[string]       `json:"alpha3Code"`
	NumericCode    Optional[string]       `json:"numericCode"`
	CallingCodes   []string               `json:"callingCodes"`
	Capital        Optional[string]       `json:"capital"`
	AltSpellings   []string               `json:"altSpellings"`
	Region         Optional[string]       `json:"region"`
	Subregion      Optional[string]       `json:"subregion"`
	Population     Optional[int64]        `json:"population"`
	Latlng         []float64              `json:"latlng"`
	Demonym        Optional[string]       `json:"demonym"`
	Area           Optional[float64]      `json:"area"`
	Gini           Optional[float64]      `json:"gini"`
	Timezones      []string               `json:"timezones"`
	Borders        []string               `json:"borders"`
	Currencies     []Currency             `json:"currencies"`
	Languages      []Language             `json:"languages"`
	Translations   Optional[Translations] `json:"translations"`
	Flag           Optional[string]       `json:"flag"`
	RegionalBlocs  []RegionalBloc         `json:"regionalBlocs"`
	Cioc           Optional[string]       `json:"cioc"`
}

type Currency struct {
	Code   Optional[string] `json:"code"`
	Name   Optional[string] `json:"name"`
	Symbol Optional[string] `json:"symbol"`
}

type Language struct {
	Iso639_1   Optional[string] `json:"iso639_1"`
	Iso639_2   Optional[string] `json:"iso639_2"`
	Name       Optional[string] `json:"name"`
	NativeName Optional[string] `json:"nativeName"`
}

// Translations maps the ten language keys upstream knows about to the translated country name.
type Translations struct {
	De Optional[string] `json:"de"`
	Es Optional[string] `json:"es"`
	Fr Optional[string] `json:"fr"`
	Ja Optional[string] `json:"ja"`
	It Optional[string] `json:"it"`
	Br Optional[string] `json:"br"`
	Pt Optional[string] `json:"pt"`
	Nl Optional[string] `json:"nl"`
	Hr Optional[string] `json:"hr"`
	Fa Optional[string] `json:"fa"`
}

// RegionalBloc is a trade or political bloc a country belongs to.
// OtherAcronyms and OtherNames are kept as raw JSON since upstream does not fix their element type.
type RegionalBloc struct {
	Acronym       Optional[string]  `json:"acronym"`
	Name          Optional[string]  `json:"name"`
	OtherAcronyms []json.RawMessage `json:"otherAcronyms"`
	OtherNames    []json.RawMessage `json:"otherNames"`
}
