// mockarena runs a stand-in arena service for local development and demos.
// It speaks the same HTTP contract as the real backend; point clash at it
// with --server or CODECLASH_SERVER_URL.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeclash/internal/mockarena"
)

func main() {
	addr := flag.String("addr", ":5000", "address to listen on")
	fake := flag.Int("fake", 8, "number of fake contestants to seed (0 = empty board)")
	seed := flag.Uint64("seed", 1, "fixture seed; the same seed yields the same standings")
	flag.Parse()

	svc := mockarena.New()
	if *fake > 0 {
		svc.SeedFixtures(*fake, *seed)
	}

	server := &http.Server{
		Addr:    *addr,
		Handler: svc.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		fmt.Printf("mockarena listening on %s (%d seeded contestants)\n", *addr, *fake)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "shutdown: %v\n", err)
			os.Exit(1)
		}
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
