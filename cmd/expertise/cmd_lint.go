package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-expertise/pkg/optionset"
)

var lintCmd = &cobra.Command{
	Use:   "lint <catalog.yaml>...",
	Short: "Report empty and duplicate labels in catalogs",
	Long: `Lint loads each YAML catalog and reports labels the typeahead cannot tell
apart. Labels are the selection key, so duplicates toggle together and empty
labels can never be chosen. Exits non-zero when any issue is found.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		issues, err := lintCatalogs(cmd.OutOrStdout(), args)
		if err != nil {
			return err
		}
		if issues > 0 {
			return fmt.Errorf("%d catalog issue(s) found", issues)
		}
		return nil
	},
}

func lintCatalogs(w io.Writer, paths []string) (int, error) {
	total := 0
	for _, path := range paths {
		catalog, err := optionset.LoadFile(path)
		if err != nil {
			return total, fmt.Errorf("lint %s: %w", path, err)
		}
		for _, issue := range catalog.Validate() {
			fmt.Fprintf(w, "%s: %s\n", path, issue)
			total++
		}
	}
	return total, nil
}
