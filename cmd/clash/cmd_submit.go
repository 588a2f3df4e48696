package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"codeclash/cmd/clash/ui"
	"codeclash/internal/arena"
)

var (
	submitUser string
	submitLang string
)

// submitCmd is the one-shot analysis path: read a file, send it, print the
// verdict and the refreshed standings.
var submitCmd = &cobra.Command{
	Use:   "submit <file>",
	Short: "Analyze a source file and print the result",
	Long: `Submits a source file to the arena's analysis endpoint and prints the
readability score, complexity estimates, and improvement suggestions.
After a successful submission the leaderboard is re-fetched and its top
is printed, same as the interactive board does.

Use "-" to read the code from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runSubmit,
}

func runSubmit(cmd *cobra.Command, args []string) error {
	sub, err := buildSubmission(args[0], submitUser, submitLang)
	if err != nil {
		return err
	}

	ctx, cancel := shotContext()
	defer cancel()

	client := newClient()
	result, err := client.Analyze(ctx, sub)
	if err != nil {
		if arena.IsServiceError(err) {
			return err
		}
		return errors.New("Failed to reach the arena service. Please try again.")
	}

	styles := ui.DefaultStyles()
	fmt.Printf("%s  %s\n",
		styles.Title.Render("Analysis for"),
		styles.Bold.Render(sub.Username))
	fmt.Printf("  Readability  %.1f/100\n", result.ReadabilityScore)
	fmt.Printf("  Runtime      %s\n", result.Runtime)
	fmt.Printf("  Memory       %s\n", result.Memory)
	if len(result.Suggestions) > 0 {
		fmt.Println("  Suggestions:")
		for _, s := range result.Suggestions {
			fmt.Printf("    - %s\n", s)
		}
	}
	fmt.Println()

	// Submit refreshes the standings, same contract as the board. A
	// failed refresh does not undo the submission; report it and move on.
	entries, err := client.Leaderboard(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load leaderboard.")
		return nil
	}
	fmt.Print(renderStandings(entries, 10))
	return nil
}

// buildSubmission assembles and validates the payload for the one-shot
// commands. Validation failures carry the same messages the board shows
// and never reach the network.
func buildSubmission(path, user, lang string) (arena.Submission, error) {
	username := strings.TrimSpace(user)
	if username == "" {
		username = strings.TrimSpace(cfg.Defaults.Username)
	}
	if username == "" {
		return arena.Submission{}, errors.New("Please enter a username.")
	}

	code, err := readSource(path)
	if err != nil {
		return arena.Submission{}, err
	}
	if strings.TrimSpace(code) == "" {
		return arena.Submission{}, errors.New("Please enter some code.")
	}

	language := cfg.Language()
	if lang != "" {
		language, err = arena.ParseLanguage(lang)
		if err != nil {
			return arena.Submission{}, err
		}
	} else if guessed, ok := languageFromExt(path); ok {
		language = guessed
	}

	return arena.Submission{Username: username, Code: code, Language: language}, nil
}

func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// languageFromExt guesses the language from the file extension so plain
// "clash submit solution.py" does the right thing without --lang.
func languageFromExt(path string) (arena.Language, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".py":
		return arena.LangPython, true
	case ".js", ".mjs", ".ts":
		return arena.LangJavaScript, true
	case ".java":
		return arena.LangJava, true
	case ".cpp", ".cc", ".cxx", ".hpp", ".h":
		return arena.LangCPP, true
	}
	return "", false
}

func init() {
	submitCmd.Flags().StringVar(&submitUser, "user", "", "Username to submit as")
	submitCmd.Flags().StringVar(&submitLang, "lang", "", "Language of the submission")
	rootCmd.AddCommand(submitCmd)
}
