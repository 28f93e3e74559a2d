package api

import "context"

// All returns every country.
func (c *Client) All(ctx context.Context, fields ...Field) ([]Country, error) {
	return c.fetch(ctx, AllPath(fields...))
}

// Name searches by native or partial country name.
func (c *Client) Name(ctx context.Context, name string, fields ...Field) ([]Country, error) {
	return c.fetch(ctx, NamePath(name, fields...))
}

// FullName searches by the exact full country name.
func (c *Client) FullName(ctx context.Context, name string, fields ...Field) ([]Country, error) {
	return c.fetch(ctx, FullNamePath(name, fields...))
}

// Code searches by ISO 3166-1 2-letter or 3-letter country code.
func (c *Client) Code(ctx context.Context, code string, fields ...Field) ([]Country, error) {
	return c.fetch(ctx, CodePath(code, fields...))
}

// Codes searches by a list of ISO 3166-1 2-letter or 3-letter country codes.
func (c *Client) Codes(ctx context.Context, codes []string, fields ...Field) ([]Country, error) {
	return c.fetch(ctx, CodesPath(codes, fields...))
}

// Currency searches by ISO 4217 currency code.
func (c *Client) Currency(ctx context.Context, code string, fields ...Field) ([]Country, error) {
	return c.fetch(ctx, CurrencyPath(code, fields...))
}

// Language searches by ISO 639-1 language code.
func (c *Client) Language(ctx context.Context, code string, fields ...Field) ([]Country, error) {
	return c.fetch(ctx, LanguagePath(code, fields...))
}

// Capital searches by capital city.
func (c *Client) Capital(ctx context.Context, capital string, fields ...Field) ([]Country, error) {
	return c.fetch(ctx, CapitalPath(capital, fields...))
}

// CallingCode searches by international calling code.
func (c *Client) CallingCode(ctx context.Context, code int, fields ...Field) ([]Country, error) {
	return c.fetch(ctx, CallingCodePath(code, fields...))
}

// Region searches by region: Africa, Americas, Asia, Europe, Oceania.
func (c *Client) Region(ctx context.Context, region string, fields ...Field) ([]Country, error) {
	return c.fetch(ctx, RegionPath(region, fields...))
}

// RegionalBloc searches by regional bloc acronym, e.g. EU, EFTA, ASEAN, SAARC.
func (c *Client) RegionalBloc(ctx context.Context, bloc string, fields ...Field) ([]Country, error) {
	return c.fetch(ctx, RegionalBlocPath(bloc, fields...))
}

func (c *Client) AllAsync(ctx context.Context, fields ...Field) *Future {
	return c.async(ctx, AllPath(fields...))
}

func (c *Client) NameAsync(ctx context.Context, name string, fields ...Field) *Future {
	return c.async(ctx, NamePath(name, fields...))
}

func (c *Client) FullNameAsync(ctx context.Context, name string, fields ...Field) *Future {
	return c.async(ctx, FullNamePath(name, fields...))
}

func (c *Client) CodeAsync(ctx context.Context, code string, fields ...Field) *Future {
	return c.async(ctx, CodePath(code, fields...))
}

func (c *Client) CodesAsync(ctx context.Context, codes []string, fields ...Field) *Future {
	return c.async(ctx, CodesPath(codes, fields...))
}

func (c *Client) CurrencyAsync(ctx context.Context, code string, fields ...Field) *Future {
	return c.async(ctx, CurrencyPath(code, fields...))
}

func (c *Client) LanguageAsync(ctx context.Context, code string, fields ...Field) *Future {
	return c.async(ctx, LanguagePath(code, fields...))
}

func (c *Client) CapitalAsync(ctx context.Context, capital string, fields ...Field) *Future {
	return c.async(ctx, CapitalPath(capital, fields...))
}

func (c *Client) CallingCodeAsync(ctx context.Context, code int, fields ...Field) *Future {
	return c.async(ctx, CallingCodePath(code, fields...))
}

func (c *Client) RegionAsync(ctx context.Context, region string, fields ...Field) *Future {
	return c.async(ctx, RegionPath(region, fields...))
}

func (c *Client) RegionalBlocAsync(ctx context.Context, bloc string, fields ...Field) *Future {
	return c.async(ctx, RegionalBlocPath(bloc, fields...))
}
