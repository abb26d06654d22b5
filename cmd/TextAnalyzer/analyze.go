package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"TextAnalyzer/internal/modules/analyzer/domain/analysis"

	"github.com/spf13/cobra"
)

var (
	analyzeMode    string
	analyzeOffline bool
	analyzeJSON    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text...]",
	Short: "Analyze text locally without starting the server",
	Long: `Count vowels or consonants in the given text and print the result.
With --offline, consonants are limited to the 21 English consonant letters.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(cmd.OutOrStdout(), strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeMode, "mode", "m", string(analysis.ModeVowels), "Analysis type: vowels or consonants")
	analyzeCmd.Flags().BoolVar(&analyzeOffline, "offline", false, "Count only English consonant letters")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the counts as JSON")
}

func runAnalyze(out io.Writer, text string) error {
	mode, ok := analysis.ParseMode(analyzeMode)
	if !ok {
		return fmt.Errorf("unknown mode %q: must be vowels or consonants", analyzeMode)
	}

	analyzer := analysis.NewAnalyzer()
	var result *analysis.FrequencyResult
	if analyzeOffline {
		result = analyzer.AnalyzeOffline(text, mode)
	} else {
		result = analyzer.Analyze(text, mode)
	}

	if analyzeJSON {
		b, err := json.Marshal(result)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}
	_, err := fmt.Fprintf(out, "In your analyzed text %q, %s\n", text, analysis.Summarize(result))
	return err
}
