package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-expertise/pkg/optionset"
)

// catalogFlags selects where the catalog comes from.
type catalogFlags struct {
	path     string
	openapi  string
	schema   string
	property string
	selected []string
}

func (f *catalogFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.path, "catalog", "c", "", "YAML catalog file")
	cmd.Flags().StringVar(&f.openapi, "openapi", "", "OpenAPI document to read the catalog enum from")
	cmd.Flags().StringVar(&f.schema, "schema", "", "Schema name under components.schemas (with --openapi)")
	cmd.Flags().StringVar(&f.property, "property", "", "Enum property of the schema (with --openapi)")
	cmd.Flags().StringSliceVar(&f.selected, "select", nil, "Labels to preselect")
}

func (f *catalogFlags) load(ctx context.Context) (optionset.Catalog, error) {
	var (
		catalog optionset.Catalog
		err     error
	)
	switch {
	case f.path != "" && f.openapi != "":
		return optionset.Catalog{}, errors.New("use either --catalog or --openapi")
	case f.path != "":
		catalog, err = optionset.LoadFile(f.path)
		if err != nil {
			return optionset.Catalog{}, err
		}
	case f.openapi != "":
		catalog, err = f.loadOpenAPI(ctx)
		if err != nil {
			return optionset.Catalog{}, err
		}
	default:
		return optionset.Catalog{}, errors.New("a catalog is required: pass --catalog or --openapi")
	}

	for _, label := range f.selected {
		if !preselect(catalog.Options, label) {
			logger.Warn("preselected label not in catalog", zap.String("label", label))
		}
	}
	return catalog.Normalize(), nil
}

func (f *catalogFlags) loadOpenAPI(ctx context.Context) (optionset.Catalog, error) {
	if f.schema == "" || f.property == "" {
		return optionset.Catalog{}, errors.New("--openapi needs --schema and --property")
	}
	raw, err := os.ReadFile(f.openapi)
	if err != nil {
		return optionset.Catalog{}, fmt.Errorf("read openapi document: %w", err)
	}
	options, err := optionset.FromOpenAPI(ctx, raw, f.schema, f.property)
	if err != nil {
		return optionset.Catalog{}, err
	}
	return optionset.Catalog{
		ID:      "id_" + f.property,
		Name:    f.property,
		Label:   strings.ToUpper(f.property[:1]) + f.property[1:],
		Options: options,
	}, nil
}

func preselect(options []optionset.Option, label string) bool {
	found := false
	for i := range options {
		if options[i].Label == label {
			options[i].Selected = true
			found = true
		}
	}
	return found
}
