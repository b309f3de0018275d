package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Projekt-ERROR/calc/pkg/api"
	"github.com/Projekt-ERROR/calc/pkg/config"
	"github.com/Projekt-ERROR/calc/pkg/history"
	"github.com/Projekt-ERROR/calc/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the calc HTTP API and web UI",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("config", "", "YAML config file (env CALC_CONFIG)")
	serveCmd.Flags().String("host", "", "Bind address (default 0.0.0.0, env HOST)")
	serveCmd.Flags().Int("port", 0, "HTTP server port (default 8787, env PORT)")
	serveCmd.Flags().String("history-db", "", "SQLite path for persistent history (default in-memory, env HISTORY_DB)")
	serveCmd.Flags().Int("history-limit", 0, "Max retained history entries (default 100, env HISTORY_LIMIT)")
	serveCmd.Flags().Bool("no-web", false, "Disable the embedded web UI")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfgPath := envOrDefault("CALC_CONFIG", "")
	if v, _ := cmd.Flags().GetString("config"); v != "" {
		cfgPath = v
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	// Environment over file, flags over environment.
	if v := os.Getenv("HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = p
	}
	if v := os.Getenv("HISTORY_DB"); v != "" {
		cfg.History.DB = v
	}
	if v := os.Getenv("HISTORY_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid HISTORY_LIMIT %q: %w", v, err)
		}
		cfg.History.Limit = n
	}
	if v, _ := cmd.Flags().GetString("host"); v != "" {
		cfg.Host = v
	}
	if v, _ := cmd.Flags().GetInt("port"); v != 0 {
		cfg.Port = v
	}
	if v, _ := cmd.Flags().GetString("history-db"); v != "" {
		cfg.History.DB = v
	}
	if v, _ := cmd.Flags().GetInt("history-limit"); v != 0 {
		cfg.History.Limit = v
	}
	if v, _ := cmd.Flags().GetBool("no-web"); v {
		cfg.Web.Enabled = false
	}

	var store history.Store
	if cfg.History.DB != "" {
		sqlStore, err := history.NewSQLiteStore(cfg.History.DB, cfg.History.Limit)
		if err != nil {
			return fmt.Errorf("opening history database: %w", err)
		}
		store = sqlStore
		log.Printf("History persisted to %s (limit %d)", cfg.History.DB, cfg.History.Limit)
	} else {
		store = history.NewMemoryStore(cfg.History.Limit)
		log.Printf("History kept in memory (limit %d)", cfg.History.Limit)
	}
	defer store.Close()

	server := api.New(store)

	if cfg.Web.Enabled {
		ui := web.New(store)
		ui.Register(server.App())
	} else {
		log.Printf("Web UI disabled")
	}

	// Graceful shutdown
	done := make(chan struct{})
	stopped := watchShutdown(server, done)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	log.Printf("calc server listening on %s", addr)
	listenErr := server.Listen(addr)

	// Release the signal watcher even when Listen failed on its own,
	// e.g. on a bind error.
	close(done)
	<-stopped
	return listenErr
}

// watchShutdown shuts the server down on SIGINT/SIGTERM. Closing done makes
// the watcher return without acting; the returned channel closes once the
// watcher has exited.
func watchShutdown(server *api.Server, done <-chan struct{}) <-chan struct{} {
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		select {
		case <-sigCh:
			log.Println("Shutting down calc server...")
			if err := server.Shutdown(); err != nil {
				log.Printf("Error during shutdown: %v", err)
			}
		case <-done:
		}
	}()
	return stopped
}
