package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-expertise/pkg/expertise"
	"github.com/goliatone/go-expertise/pkg/page"
	"github.com/goliatone/go-expertise/pkg/renderers/tui"
)

var (
	promptCatalog catalogFlags
	promptFormat  string
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Pick expertise interactively in the terminal",
	Long: `Prompt mounts the typeahead and drives it from the terminal: search,
confirm a suggestion, add it, or remove selected entries. The final selection
is printed as json, form or pretty text.`,
	Args: cobra.NoArgs,
	RunE: runPrompt,
}

func init() {
	promptCatalog.register(promptCmd)
	promptCmd.Flags().StringVarP(&promptFormat, "format", "f", string(tui.OutputFormatJSON), "Output format: json, form or pretty")
}

func runPrompt(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	format := tui.OutputFormat(promptFormat)
	switch format {
	case tui.OutputFormatJSON, tui.OutputFormatFormURLEncoded, tui.OutputFormatPrettyText:
	default:
		return fmt.Errorf("unknown output format %q", promptFormat)
	}

	catalog, err := promptCatalog.load(ctx)
	if err != nil {
		return err
	}
	renderer, err := page.New()
	if err != nil {
		return err
	}
	mounted, err := renderer.Mount(ctx, page.Data{Catalog: catalog}, expertise.WithLogger(logger))
	if err != nil {
		return err
	}
	defer mounted.Typeahead.Close()

	session := tui.New(
		tui.WithOutputFormat(format),
		tui.WithLogger(logger.Named("tui")),
	)
	out, err := session.Run(ctx, mounted)
	if errors.Is(err, tui.ErrAborted) {
		fmt.Fprintln(cmd.ErrOrStderr(), "aborted")
		return nil
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
