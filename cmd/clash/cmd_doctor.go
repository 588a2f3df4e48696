package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"codeclash/cmd/clash/ui"
	"codeclash/internal/arena"
)

var doctorDeep bool

// A small, well-formed snippet for the deep probes. What matters is that
// the endpoints answer, not what they say about it.
const probeSnippet = `def add(a, b):
    return a + b
`

// doctorCmd checks whether the arena service is reachable and healthy.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check connectivity to the arena service",
	Long: `Probes the arena service and reports what works.

The basic check times a leaderboard fetch. With --deep the analyze and
optimize endpoints are exercised too, with a canonical snippet under a
throwaway username; the probes run concurrently.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx, cancel := shotContext()
	defer cancel()

	client := newClient()
	styles := ui.DefaultStyles()

	ok := func(name string, elapsed time.Duration) {
		fmt.Printf("%s %s (%s)\n", styles.Success.Render("ok"), name, elapsed.Round(time.Millisecond))
	}
	fail := func(name string, err error) {
		fmt.Printf("%s %s: %v\n", styles.Error.Render("FAIL"), name, err)
	}

	fmt.Printf("Arena service: %s\n\n", client.BaseURL())

	start := time.Now()
	entries, err := client.Leaderboard(ctx)
	if err != nil {
		fail("GET /leaderboard", err)
		return fmt.Errorf("arena service unreachable")
	}
	ok("GET /leaderboard", time.Since(start))
	fmt.Printf("   %d entries on the board\n", len(entries))

	if !doctorDeep {
		return nil
	}

	sub := arena.Submission{
		Username: "clash-doctor",
		Code:     probeSnippet,
		Language: arena.LangPython,
	}

	// Each probe gets its own slot; printing waits until both are done.
	type probe struct {
		name    string
		elapsed time.Duration
		err     error
	}
	probes := [2]probe{{name: "POST /analyze"}, {name: "POST /optimize"}}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		start := time.Now()
		_, probes[0].err = client.Analyze(gctx, sub)
		probes[0].elapsed = time.Since(start)
		return nil
	})
	g.Go(func() error {
		start := time.Now()
		_, probes[1].err = client.Optimize(gctx, sub)
		probes[1].elapsed = time.Since(start)
		return nil
	})
	_ = g.Wait()

	healthy := true
	for _, p := range probes {
		if p.err != nil {
			fail(p.name, p.err)
			healthy = false
			continue
		}
		ok(p.name, p.elapsed)
	}

	if !healthy {
		return fmt.Errorf("arena service degraded")
	}
	return nil
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorDeep, "deep", false, "Also exercise the analyze and optimize endpoints")
	rootCmd.AddCommand(doctorCmd)
}
