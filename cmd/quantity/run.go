package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"

	"quantity"
	"quantity/catalog"
	quantitymsgpack "quantity/msgpack"
)

var errUsage = errors.New("usage: quantity <command> [args], see -h")

func run(ctx context.Context, cfg Config, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case "save":
		return saveCatalog(ctx, cfg, out)
	case "catalogs":
		return listCatalogs(ctx, cfg, out)
	}

	reg, err := loadRegistry(ctx, cfg)
	if err != nil {
		return err
	}

	switch cmd {
	case "convert":
		if len(args) != 3 {
			return fmt.Errorf("convert: want <value> <unit> <target>, got %d args", len(args))
		}
		q, err := parseQuantity(reg, args[0], args[1])
		if err != nil {
			return err
		}
		res, err := q.Dispatch("to " + args[2])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, res)
	case "add", "sub", "mul", "compare":
		if len(args) != 4 {
			return fmt.Errorf("%s: want <value> <unit> <value> <unit>, got %d args", cmd, len(args))
		}
		a, err := parseQuantity(reg, args[0], args[1])
		if err != nil {
			return err
		}
		b, err := parseQuantity(reg, args[2], args[3])
		if err != nil {
			return err
		}
		return binary(cmd, a, b, out)
	case "units":
		return listUnits(reg, args, out)
	case "encode":
		if len(args) != 2 {
			return fmt.Errorf("encode: want <value> <unit>, got %d args", len(args))
		}
		q, err := parseQuantity(reg, args[0], args[1])
		if err != nil {
			return err
		}
		data, err := quantitymsgpack.Marshal(q)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, hex.EncodeToString(data))
	case "decode":
		if len(args) != 1 {
			return fmt.Errorf("decode: want <hex>, got %d args", len(args))
		}
		data, err := hex.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		q, err := quantitymsgpack.Unmarshal(reg, data)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, q)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func binary(cmd string, a, b quantity.Quantity, out io.Writer) error {
	var (
		res quantity.Quantity
		err error
	)
	switch cmd {
	case "add":
		res, err = a.Add(b)
	case "sub":
		res, err = a.Sub(b)
	case "mul":
		res, err = a.Mul(b)
	case "compare":
		cmp, err := a.CompareErr(b)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s %s\n", a, [...]string{"<", "=", ">"}[cmp+1], b)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, res)
	return nil
}

func parseQuantity(reg quantity.Registry, value, unit string) (quantity.Quantity, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return quantity.Quantity{}, fmt.Errorf("value %q: %w", value, err)
	}
	return quantity.New(reg, v, unit)
}

func listUnits(reg *catalog.Registry, args []string, out io.Writer) error {
	units := reg.Units()
	if len(args) > 0 {
		category := strings.Join(args, " ")
		units = reg.UnitsOf(category)
		if len(units) == 0 {
			return fmt.Errorf("units: no category %q (have %s)", category, strings.Join(reg.Categories(), ", "))
		}
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "UNIT\tMEASURES\tFACTOR\tALIASES")
	for _, u := range units {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.Name(), u.Measures(),
			strconv.FormatFloat(u.ScaleFactor(), 'g', -1, 64), strings.Join(u.Aliases(), ", "))
	}
	return tw.Flush()
}

func loadRegistry(ctx context.Context, cfg Config) (*catalog.Registry, error) {
	if cfg.CatalogDB == "" {
		return catalog.Default(), nil
	}
	store, err := catalog.OpenStore(ctx, cfg.CatalogDB)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	id, err := store.Latest(ctx, cfg.CatalogName)
	if errors.Is(err, catalog.ErrCatalogNotFound) {
		slog.Warn("catalog not saved, using the standard catalog", "db", cfg.CatalogDB, "catalog", cfg.CatalogName)
		return catalog.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	slog.Debug("loading catalog", "id", id, "catalog", cfg.CatalogName)
	return store.LoadRegistry(ctx, id)
}

func saveCatalog(ctx context.Context, cfg Config, out io.Writer) error {
	if cfg.CatalogDB == "" {
		return errors.New("save: no catalog database, set -db or QUANTITY_CATALOG_DB")
	}
	store, err := catalog.OpenStore(ctx, cfg.CatalogDB)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Save(ctx, cfg.CatalogName, catalog.Standard)
	if err != nil {
		return err
	}
	slog.Info("catalog saved", "id", id, "catalog", cfg.CatalogName, "units", len(catalog.Standard))
	fmt.Fprintln(out, id)
	return nil
}

func listCatalogs(ctx context.Context, cfg Config, out io.Writer) error {
	if cfg.CatalogDB == "" {
		return errors.New("catalogs: no catalog database, set -db or QUANTITY_CATALOG_DB")
	}
	store, err := catalog.OpenStore(ctx, cfg.CatalogDB)
	if err != nil {
		return err
	}
	defer store.Close()

	infos, err := store.List(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tUNITS\tCREATED")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", info.ID, info.Name, info.Units, info.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return tw.Flush()
}
