package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	optimizeUser string
	optimizeLang string
)

// optimizeCmd prints the optimized source to stdout so it can be piped
// into a file or a diff.
var optimizeCmd = &cobra.Command{
	Use:   "optimize <file>",
	Short: "Optimize a source file and print the rewritten code",
	Long: `Submits a source file to the arena's optimization endpoint and writes
the rewritten code to stdout. Use "-" to read from stdin, e.g.:

  clash optimize solution.py > solution_optimized.py`,
	Args: cobra.ExactArgs(1),
	RunE: runOptimize,
}

func runOptimize(cmd *cobra.Command, args []string) error {
	sub, err := buildSubmission(args[0], optimizeUser, optimizeLang)
	if err != nil {
		return err
	}

	ctx, cancel := shotContext()
	defer cancel()

	code, err := newClient().Optimize(ctx, sub)
	if err != nil {
		// Every failure mode of the optimize call surfaces as the one
		// message; the board behaves the same way.
		return errors.New("Failed to retrieve optimized code.")
	}

	fmt.Print(code)
	return nil
}

func init() {
	optimizeCmd.Flags().StringVar(&optimizeUser, "user", "", "Username to submit as")
	optimizeCmd.Flags().StringVar(&optimizeLang, "lang", "", "Language of the submission")
	rootCmd.AddCommand(optimizeCmd)
}
