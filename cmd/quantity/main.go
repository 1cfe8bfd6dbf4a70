// Command quantity converts and combines physical quantities from the
// command line.
//
//	quantity convert 12 m cm
//	quantity add 12 m 5 cm
//	quantity units length
//
// The unit catalog is the standard one unless QUANTITY_CATALOG_DB names a
// SQLite database holding a saved catalog called QUANTITY_CATALOG_NAME.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"

	"quantity/internal/config"
)

// Config is read from the environment.
type Config struct {
	CatalogDB   string `env:"QUANTITY_CATALOG_DB"`
	CatalogName string `env:"QUANTITY_CATALOG_NAME" envDefault:"standard"`
	LogLevel    string `env:"QUANTITY_LOG_LEVEL" envDefault:"info"`
}

func main() {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.CatalogDB, "db", cfg.CatalogDB, "SQLite catalog database")
	flag.StringVar(&cfg.CatalogName, "catalog", cfg.CatalogName, "catalog name to load or save")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flag.Usage = usage
	flag.Parse()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, flag.Args(), os.Stdout); err != nil {
		slog.Error("quantity failed", "err", err)
		os.Exit(1)
	}
}

func newLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      l,
		TimeFormat: "15:04:05",
	})), nil
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: quantity [flags] <command> [args]

Commands:
  convert <value> <unit> <target>        re-express a quantity in another unit
  add <value> <unit> <value> <unit>      sum two quantities, in the first unit
  sub <value> <unit> <value> <unit>      difference of two quantities
  mul <value> <unit> <value> <unit>      product of two quantities
  compare <value> <unit> <value> <unit>  order two quantities
  units [category]                       list known units
  save                                   save the standard catalog to -db
  catalogs                               list catalogs saved in -db
  encode <value> <unit>                  print the MessagePack record as hex
  decode <hex>                           decode a hex MessagePack record

Flags:
`)
	flag.PrintDefaults()
}
