package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/flowforge/flowforge/internal/adapters/file"
	httpAdapter "github.com/flowforge/flowforge/internal/adapters/http"
	"github.com/flowforge/flowforge/internal/adapters/memory"
	"github.com/flowforge/flowforge/internal/adapters/redis"
	"github.com/flowforge/flowforge/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the generator in server mode, exposing a JSON API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")

		gen, err := newGenerator(cmd)
		if err != nil {
			fmt.Printf("Error initializing generator: %v\n", err)
			os.Exit(1)
		}

		store, err := newStore(cmd)
		if err != nil {
			fmt.Printf("Error initializing store: %v\n", err)
			os.Exit(1)
		}

		handler := httpAdapter.NewHandler(gen,
			httpAdapter.WithStore(store),
			httpAdapter.WithLogger(newLogger(cmd)),
		)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting FlowForge Server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("FlowForge Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("store", "memory", "Artifact store backend: memory, redis, or file")
	serveCmd.Flags().String("store-dir", "", "Directory for the file store")
	serveCmd.Flags().String("redis-addr", "localhost:6379", "Redis server address")
	serveCmd.Flags().String("redis-password", "", "Redis password")
	serveCmd.Flags().Int("redis-db", 0, "Redis database number")
	serveCmd.Flags().Duration("redis-ttl", 0, "Artifact lifetime in Redis, 0 keeps them forever")
}

func newStore(cmd *cobra.Command) (ports.ArtifactStore, error) {
	backend, _ := cmd.Flags().GetString("store")
	switch backend {
	case "memory":
		return memory.NewStore(), nil
	case "file":
		dir, _ := cmd.Flags().GetString("store-dir")
		return file.NewStore(dir), nil
	case "redis":
		addr, _ := cmd.Flags().GetString("redis-addr")
		password, _ := cmd.Flags().GetString("redis-password")
		db, _ := cmd.Flags().GetInt("redis-db")
		ttl, _ := cmd.Flags().GetDuration("redis-ttl")
		return redis.New(addr, password, db, redis.WithTTL(ttl)), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s (supported: memory, redis, file)", backend)
	}
}
