package api

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadNepal(t *testing.T) []byte {
	t.Helper()
	body, err := os.ReadFile("testdata/nepal.json")
	require.NoError(t, err)
	return body
}

func TestDecodeFilteredCountry(t *testing.T) {
	countries, err := decodeCountries([]byte(`[{"name": "Nepal", "alpha2Code": "NP"}]`))
	require.NoError(t, err)
	require.Len(t, countries, 1)

	c := countries[0]
	name, ok := c.Name.Get()
	assert.True(t, ok)
	assert.Equal(t, "Nepal", name)
	assert.Equal(t, "NP", c.Alpha2Code.ValueOr(""))

	assert.False(t, c.Capital.IsSet())
	assert.False(t, c.Population.IsSet())
	assert.False(t, c.Translations.IsSet())
	assert.Nil(t, c.Currencies)
	assert.Nil(t, c.RegionalBlocs)
	assert.Nil(t, c.Latlng)
}

func TestDecodeFullCountry(t *testing.T) {
	countries, err := decodeCountries(loadNepal(t))
	require.NoError(t, err)
	require.Len(t, countries, 1)

	c := countries[0]
	require.Len(t, c.Latlng, 2)
	assert.Equal(t, 28.0, c.Latlng[0])
	assert.Equal(t, int64(28431500), c.Population.ValueOr(0))
	assert.Equal(t, "Kathmandu", c.Capital.ValueOr(""))
	assert.Equal(t, 32.8, c.Gini.ValueOr(0))

	require.Len(t, c.Currencies, 1)
	assert.Equal(t, "NPR", c.Currencies[0].Code.ValueOr(""))

	require.Len(t, c.Languages, 1)
	assert.Equal(t, "ne", c.Languages[0].Iso639_1.ValueOr(""))

	translations, ok := c.Translations.Get()
	require.True(t, ok)
	assert.Equal(t, "Népal", translations.Fr.ValueOr(""))

	require.Len(t, c.RegionalBlocs, 1)
	assert.NotNil(t, c.RegionalBlocs[0].OtherNames)
	assert.Empty(t, c.RegionalBlocs[0].OtherNames)
	assert.Equal(t, "SAARC", c.RegionalBlocs[0].Acronym.ValueOr(""))
}

func TestDecodeAbsentVersusEmpty(t *testing.T) {
	body := `[{"capital": "", "borders": [], "gini": null, "translations": {"de": "Nepal"}}]`
	countries, err := decodeCountries([]byte(body))
	require.NoError(t, err)

	c := countries[0]
	capital, ok := c.Capital.Get()
	assert.True(t, ok)
	assert.Equal(t, "", capital)

	assert.NotNil(t, c.Borders)
	assert.Empty(t, c.Borders)
	assert.Nil(t, c.Timezones)

	assert.False(t, c.Gini.IsSet())

	translations, ok := c.Translations.Get()
	require.True(t, ok)
	assert.True(t, translations.De.IsSet())
	assert.False(t, translations.Ja.IsSet())
}

func TestDecodeHeterogeneousBlocNames(t *testing.T) {
	body := `[{"regionalBlocs": [{"acronym": "AU", "otherAcronyms": ["UA", 1], "otherNames": [{"ar": "الاتحاد الأفريقي"}, null]}]}]`
	countries, err := decodeCountries([]byte(body))
	require.NoError(t, err)

	bloc := countries[0].RegionalBlocs[0]
	require.Len(t, bloc.OtherAcronyms, 2)
	assert.JSONEq(t, `"UA"`, string(bloc.OtherAcronyms[0]))
	assert.JSONEq(t, `1`, string(bloc.OtherAcronyms[1]))
	require.Len(t, bloc.OtherNames, 2)
	assert.JSONEq(t, `null`, string(bloc.OtherNames[1]))
}

func TestDecodeEmptyArray(t *testing.T) {
	countries, err := decodeCountries([]byte(`[]`))
	require.NoError(t, err)
	assert.NotNil(t, countries)
	assert.Empty(t, countries)
}

func TestDecodeErrors(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"not json", `not json`},
		{"truncated", `[{"name": "Nepal"`},
		{"object instead of array", `{"status": 404, "message": "Not Found"}`},
		{"null", `null`},
		{"element is not an object", `["Nepal"]`},
		{"null element", `[null]`},
		{"null among countries", `[null, {"name": "Nepal"}]`},
		{"wrong scalar type", `[{"population": "many"}]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			countries, err := decodeCountries([]byte(tc.body))
			assert.Error(t, err)
			assert.Nil(t, countries)
		})
	}
}

func TestOptionalJSON(t *testing.T) {
	type wrapper struct {
		A Optional[string] `json:"a"`
		B Optional[int64]  `json:"b"`
	}

	data, err := json.Marshal(wrapper{A: Some("x")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": "x", "b": null}`, string(data))

	var w wrapper
	require.NoError(t, json.Unmarshal(data, &w))
	assert.Equal(t, Some("x"), w.A)
	assert.Equal(t, None[int64](), w.B)
	assert.Equal(t, int64(7), w.B.ValueOr(7))
}

func TestDecodeErrorExcerpt(t *testing.T) {
	body := make([]byte, 1000)

	for i := range body {
		body[i] = 'x'
	}

	err := newDecodeError("http://example.test/all", body, errNotArray)
	assert.Len(t, err.Excerpt, maxExcerpt)
	assert.ErrorIs(t, err, ErrDecodeFailed)
	assert.ErrorIs(t, err, errNotArray)
}

func TestDecodeNullElement(t *testing.T) {
	countries, err := decodeCountries([]byte(`[{"name": "Nepal"}, null]`))
	assert.Nil(t, countries)
	assert.ErrorIs(t, err, errNotObject)
	assert.Contains(t, err.Error(), "element 1")
}

func TestDecodeErrorExcerptRuneBoundary(t *testing.T) {
	// "é" is two bytes and straddles the excerpt limit
	body := []byte(strings.Repeat("x", maxExcerpt-1) + "é" + strings.Repeat("x", 10))

	err := newDecodeError("http://example.test/all", body, errNotArray)
	assert.True(t, utf8.ValidString(err.Excerpt))
	assert.Equal(t, strings.Repeat("x", maxExcerpt-1), err.Excerpt)
}

func TestEndpointLabel(t *testing.T) {
	assert.Equal(t, "all", endpointLabel("all"))
	assert.Equal(t, "all", endpointLabel("all?fields=name"))
	assert.Equal(t, "name", endpointLabel("name/nepal?fullText=true"))
	assert.Equal(t, "alpha", endpointLabel("alpha?codes=np;in;"))
}
