package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	goexpertise "github.com/goliatone/go-expertise"
	component "github.com/goliatone/go-expertise/components/expertise"
	"github.com/goliatone/go-expertise/pkg/expertise"
	"github.com/goliatone/go-expertise/pkg/optionset"
	"github.com/goliatone/go-expertise/pkg/page"
)

const assetsPrefix = "/assets/"

var (
	serveCatalog catalogFlags
	serveAddr    string
	serveBase    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the host page and the suggestion endpoint",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCatalog.register(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().StringVar(&serveBase, "base", "/", "Base path for the suggestion endpoint")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog, err := serveCatalog.load(ctx)
	if err != nil {
		return err
	}
	mux, pattern, err := newServeMux(ctx, catalog)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              serveAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving expertise page",
			zap.String("addr", serveAddr),
			zap.String("suggestions", pattern),
		)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// newServeMux serves the page as it looks once mounted, next to the
// suggestion endpoint for the same catalog.
func newServeMux(ctx context.Context, catalog optionset.Catalog) (*http.ServeMux, string, error) {
	renderer, err := page.New()
	if err != nil {
		return nil, "", err
	}
	data := page.Data{Catalog: catalog, Stylesheet: assetsPrefix + goexpertise.StylesheetName}
	mounted, err := renderer.Mount(ctx, data, expertise.WithLogger(logger))
	if err != nil {
		return nil, "", err
	}
	markup := mounted.HTML()

	mux := http.NewServeMux()
	suggestions := component.New(
		component.WithCatalog(catalog),
		component.WithLogger(logger.Named("suggestions")),
	)
	pattern, err := suggestions.RegisterRoutes(mux, serveBase)
	if err != nil {
		return nil, "", err
	}

	mux.Handle(assetsPrefix, http.StripPrefix(assetsPrefix, http.FileServer(http.FS(goexpertise.AssetsFS()))))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write([]byte(markup))
	})
	return mux, pattern, nil
}
