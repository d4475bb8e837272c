package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-expertise/pkg/expertise"
	"github.com/goliatone/go-expertise/pkg/page"
)

var (
	renderCatalog catalogFlags
	renderTitle   string
	renderAction  string
	renderMounted bool
	renderOutput  string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the host page for a catalog",
	Long: `Render prints the host page markup. With --mounted the typeahead is mounted
over the page first and the resulting document is printed instead.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCatalog.register(renderCmd)
	renderCmd.Flags().StringVar(&renderTitle, "title", "", "Page title (defaults to the catalog label)")
	renderCmd.Flags().StringVar(&renderAction, "action", "", "Form action URL")
	renderCmd.Flags().BoolVar(&renderMounted, "mounted", false, "Print the document after mounting the typeahead")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file (stdout if empty)")
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	catalog, err := renderCatalog.load(ctx)
	if err != nil {
		return err
	}

	renderer, err := page.New()
	if err != nil {
		return err
	}
	data := page.Data{Title: renderTitle, Action: renderAction, Catalog: catalog}

	var out string
	if renderMounted {
		mounted, err := renderer.Mount(ctx, data, expertise.WithLogger(logger))
		if err != nil {
			return err
		}
		out = mounted.HTML()
	} else {
		out, err = renderer.Render(data)
		if err != nil {
			return err
		}
	}

	logger.Debug("page rendered",
		zap.String("catalog", catalog.ID),
		zap.Int("options", len(catalog.Options)),
		zap.Bool("mounted", renderMounted),
	)

	if renderOutput == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
		return err
	}
	if err := os.WriteFile(renderOutput, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Page written to %s\n", renderOutput)
	return nil
}
