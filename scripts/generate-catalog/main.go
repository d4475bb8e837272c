package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-expertise/pkg/optionset"
)

func main() {
	var (
		schemaPath = flag.String("openapi", "examples/fixtures/profile.openapi.yaml", "OpenAPI document path")
		schemaName = flag.String("schema", "Profile", "schema name under components.schemas")
		property   = flag.String("property", "expertise", "enum property to convert")
		id         = flag.String("id", "", "select id (defaults to id_<property>)")
		outputPath = flag.String("output", "", "output path for the YAML catalog (stdout if empty)")
	)
	flag.Parse()

	raw, err := os.ReadFile(*schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read OpenAPI document: %v\n", err)
		os.Exit(1)
	}

	options, err := optionset.FromOpenAPI(context.Background(), raw, *schemaName, *property)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to extract options: %v\n", err)
		os.Exit(1)
	}

	catalogID := *id
	if catalogID == "" {
		catalogID = "id_" + *property
	}
	catalog := optionset.Catalog{ID: catalogID, Name: *property, Options: options}.Normalize()
	if issues := catalog.Validate(); len(issues) > 0 {
		for _, issue := range issues {
			fmt.Fprintf(os.Stderr, "warning: %s\n", issue)
		}
	}

	out := os.Stdout
	if *outputPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outputPath), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create output dir: %v\n", err)
			os.Exit(1)
		}
		file, err := os.Create(*outputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create output: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		out = file
	}

	if err := optionset.WriteYAML(out, catalog); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write catalog: %v\n", err)
		os.Exit(1)
	}
	if *outputPath != "" {
		fmt.Printf("Catalog written to %s\n", *outputPath)
	}
}
