package api

import (
	"strconv"
	"strings"
)

// Relative request paths for each query kind. Parameters are inserted verbatim;
// escaping is left to the transport.

func AllPath(fields ...Field) string {
	return withFields("all", fields)
}

func NamePath(name string, fields ...Field) string {
	return withFields("name/"+name, fields)
}

func FullNamePath(name string, fields ...Field) string {
	return withFields("name/"+name+"?fullText=true", fields)
}

func CodePath(code string, fields ...Field) string {
	return withFields("alpha/"+code, fields)
}

// CodesPath joins codes with ';' keeping a trailing separator after the last code,
// e.g. alpha?codes=np;in;
func CodesPath(codes []string, fields ...Field) string {
	var b strings.Builder
	b.WriteString("alpha?codes=")

	for _, code := range codes {
		b.WriteString(code)
		b.WriteByte(';')
	}

	return withFields(b.String(), fields)
}

func CurrencyPath(code string, fields ...Field) string {
	return withFields("currency/"+code, fields)
}

func LanguagePath(code string, fields ...Field) string {
	return withFields("lang/"+code, fields)
}

func CapitalPath(capital string, fields ...Field) string {
	return withFields("capital/"+capital, fields)
}

func CallingCodePath(code int, fields ...Field) string {
	return withFields("callingcode/"+strconv.Itoa(code), fields)
}

func RegionPath(region string, fields ...Field) string {
	return withFields("region/"+region, fields)
}

func RegionalBlocPath(bloc string, fields ...Field) string {
	return withFields("regionalbloc/"+bloc, fields)
}

// withFields appends a fields= projection. '?' opens the query string, '&' extends one that exists.
func withFields(path string, fields []Field) string {
	if len(fields) == 0 {
		return path
	}

	names := make([]string, len(fields))

	for i, f := range fields {
		names[i] = string(f)
	}

	sep := "?"

	if strings.Contains(path, "?") {
		sep = "&"
	}

	return path + sep + "fields=" + strings.Join(names, ";")
}
