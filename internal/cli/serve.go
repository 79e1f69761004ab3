package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"textfreq/internal/adapter/analyzer"
	"textfreq/internal/adapter/cache"
	"textfreq/internal/adapter/memstore"
	"textfreq/internal/logging"
	"textfreq/internal/port"
	"textfreq/internal/server"
	"textfreq/internal/usecase"
)

var (
	serveHost   string
	servePort   int
	serveMemory bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the document and analysis HTTP API",
	Long: `Start the JSON HTTP API for uploading documents and analyzing them.

Documents are stored in .textfreq/documents.db unless --memory is given.

Examples:
  textfreq serve                    # Listen on the configured address
  textfreq serve --port 9000        # Override the port
  textfreq serve --memory           # Keep documents in memory only`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (default from config)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (default from config)")
	serveCmd.Flags().BoolVar(&serveMemory, "memory", false, "keep documents in memory instead of on disk")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	var st port.DocumentStore
	if serveMemory {
		st = memstore.NewMemoryStore()
	} else {
		bolt, err := openStore()
		if err != nil {
			return err
		}
		st = bolt
	}
	defer st.Close()

	tok := analyzer.NewTokenizer(nil)
	az := usecase.NewAnalyzeUseCase(tok, cfg.Analysis.TopK)
	docs := usecase.NewDocumentUseCase(st, az, cfg, logging.NewComponentLogger(GetLogger(), "documents"))
	if cfg.Analysis.CacheSize > 0 {
		docs.SetCache(cache.NewDocumentCache(cfg.Analysis.CacheSize, cfg.Analysis.CacheTTL))
	}
	srv := server.New(docs, az, tok.StopwordVersion(), cfg, logging.NewComponentLogger(GetLogger(), "http"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving on http://%s\n", srv.Addr())
	return srv.Run(ctx)
}
