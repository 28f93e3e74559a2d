package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/getsentry/sentry-go"
	"github.com/urfave/cli/v2"

	"github.com/forestvpn/restcountries/actions"
	"github.com/forestvpn/restcountries/api"
	"github.com/forestvpn/restcountries/settings"
	"github.com/forestvpn/restcountries/utils"
)

var (
	// DSN is a Data Source Name for Sentry. It is stored in an environment variable and assigned during the build with ldflags.
	//
	// See https://docs.sentry.io/product/sentry-basics/dsn-explainer/ for more information.
	Dsn string
	// appVersion value is stored in an environment variable and assigned during the build with ldflags.
	appVersion string
)

func main() {
	err := settings.Init()

	if err != nil {
		log.Fatal(err)
	}

	err = sentry.Init(sentry.ClientOptions{
		Dsn:     Dsn,
		Release: appVersion,
	})

	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx)
	stop()

	if err != nil {
		sentry.CaptureException(err)
		color.Red(utils.TitleFirstWord(err.Error()))
		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}

	sentry.Flush(2 * time.Second)
}

func run(ctx context.Context) error {
	// fields is a comma or semicolon separated projection overriding the configured one.
	var fields string
	// jsonOutput forces JSON even on a terminal.
	var jsonOutput bool
	// saveTo is a file path to dump the JSON result to.
	var saveTo string
	// fullText makes the name command match the full country name only.
	var fullText bool

	conf, err := settings.Load(settings.ConfigFile)

	if err != nil {
		return err
	}

	wrapper := actions.QueryWrapper{Settings: conf, Out: os.Stdout}

	cli.VersionPrinter = func(cCtx *cli.Context) {
		fmt.Println(cCtx.App.Version)
	}

	// query turns a one-argument lookup into a CLI action.
	query := func(name string, lookup func(ctx context.Context, arg string, fields ...api.Field) ([]api.Country, error)) cli.ActionFunc {
		return func(cCtx *cli.Context) error {
			arg := cCtx.Args().First()

			if len(arg) < 1 {
				return fmt.Errorf("%s required", name)
			}

			return wrapper.Run(cCtx.Context, func(ctx context.Context, fields ...api.Field) ([]api.Country, error) {
				return lookup(ctx, arg, fields...)
			})
		}
	}

	app := &cli.App{
		Version:              appVersion,
		EnableBashCompletion: true,
		Suggest:              true,
		Name:                 "rcountries",
		Usage:                "look up countries on the REST Countries service",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"V"},
				Usage:       "make commands more talkative",
				Value:       false,
				Destination: &utils.Verbose,
			},
			&cli.StringFlag{
				Name:        "fields",
				Aliases:     []string{"f"},
				Usage:       "comma separated `FIELDS` to request, see 'rcountries fields'",
				Destination: &fields,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print JSON even on a terminal",
				Destination: &jsonOutput,
			},
			&cli.StringFlag{
				Name:        "save",
				Usage:       "dump the JSON result to `FILE`",
				Destination: &saveTo,
			},
		},
		Before: func(cCtx *cli.Context) error {
			utils.ConfigureLogger()
			wrapper.Client = api.GetApiClient(api.WithLogger(utils.Logger))
			wrapper.Fields = api.ParseFields(fields)
			wrapper.SaveTo = saveTo
			wrapper.Table = utils.IsTerminal(os.Stdout) && conf.Format == settings.FormatTable && !jsonOutput

			for _, f := range wrapper.Fields {
				if !f.IsKnown() {
					utils.Logger.WithField("field", f).Warn("unknown field is passed through as is")
				}
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "all",
				Usage: "list every country",
				Action: func(cCtx *cli.Context) error {
					return wrapper.Run(cCtx.Context, wrapper.Client.All)
				},
			},
			{
				Name:      "name",
				Usage:     "search by native or partial country name",
				ArgsUsage: "NAME",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "full",
						Usage:       "match the full country name only",
						Destination: &fullText,
					},
				},
				Action: func(cCtx *cli.Context) error {
					if fullText {
						return query("country name", wrapper.Client.FullName)(cCtx)
					}
					return query("country name", wrapper.Client.Name)(cCtx)
				},
			},
			{
				Name:      "code",
				Usage:     "search by ISO 3166-1 2-letter or 3-letter country code",
				ArgsUsage: "CODE",
				Action: func(cCtx *cli.Context) error {
					return query("country code", wrapper.Client.Code)(cCtx)
				},
			},
			{
				Name:      "codes",
				Usage:     "search by a list of ISO 3166-1 country codes",
				ArgsUsage: "CODE[,CODE...]",
				Action: func(cCtx *cli.Context) error {
					var codes []string

					for _, arg := range cCtx.Args().Slice() {
						for _, code := range strings.FieldsFunc(arg, func(r rune) bool { return r == ',' || r == ';' }) {
							if code = strings.TrimSpace(code); len(code) > 0 {
								codes = append(codes, code)
							}
						}
					}

					if len(codes) == 0 {
						return errors.New("at least one country code required")
					}

					return wrapper.Run(cCtx.Context, func(ctx context.Context, fields ...api.Field) ([]api.Country, error) {
						return wrapper.Client.Codes(ctx, codes, fields...)
					})
				},
			},
			{
				Name:      "currency",
				Usage:     "search by ISO 4217 currency code",
				ArgsUsage: "CODE",
				Action: func(cCtx *cli.Context) error {
					return query("currency code", wrapper.Client.Currency)(cCtx)
				},
			},
			{
				Name:      "lang",
				Usage:     "search by ISO 639-1 language code",
				ArgsUsage: "CODE",
				Action: func(cCtx *cli.Context) error {
					return query("language code", wrapper.Client.Language)(cCtx)
				},
			},
			{
				Name:      "capital",
				Usage:     "search by capital city",
				ArgsUsage: "CITY",
				Action: func(cCtx *cli.Context) error {
					return query("capital city", wrapper.Client.Capital)(cCtx)
				},
			},
			{
				Name:      "callingcode",
				Usage:     "search by international calling code",
				ArgsUsage: "CODE",
				Action: func(cCtx *cli.Context) error {
					return query("calling code", func(ctx context.Context, arg string, fields ...api.Field) ([]api.Country, error) {
						code, err := strconv.Atoi(strings.TrimPrefix(arg, "+"))

						if err != nil {
							return nil, fmt.Errorf("invalid calling code: %s", arg)
						}

						return wrapper.Client.CallingCode(ctx, code, fields...)
					})(cCtx)
				},
			},
			{
				Name:      "region",
				Usage:     "search by region: Africa, Americas, Asia, Europe, Oceania",
				ArgsUsage: "REGION",
				Action: func(cCtx *cli.Context) error {
					return query("region", wrapper.Client.Region)(cCtx)
				},
			},
			{
				Name:      "bloc",
				Usage:     "search by regional bloc, e.g. EU, EFTA, ASEAN, SAARC",
				ArgsUsage: "BLOC",
				Action: func(cCtx *cli.Context) error {
					return query("regional bloc", wrapper.Client.RegionalBloc)(cCtx)
				},
			},
			{
				Name:  "fields",
				Usage: "list the fields a query can be filtered to",
				Action: func(cCtx *cli.Context) error {
					return actions.ListFields(os.Stdout, conf.Fields)
				},
			},
			{
				Name:  "config",
				Usage: "manage CLI preferences",
				Subcommands: []*cli.Command{
					{
						Name:  "show",
						Usage: "print the current preferences",
						Action: func(cCtx *cli.Context) error {
							return actions.ShowConfig(os.Stdout, conf)
						},
					},
					{
						Name:      "set",
						Usage:     "set a preference: " + strings.Join(settings.Keys, ", "),
						ArgsUsage: "KEY VALUE",
						Action: func(cCtx *cli.Context) error {
							if cCtx.Args().Len() != 2 {
								return errors.New("key and value required")
							}

							return actions.SetConfig(os.Stdout, conf, cCtx.Args().Get(0), cCtx.Args().Get(1))
						},
					},
				},
			},
		},
	}

	return app.RunContext(ctx, os.Args)
}
