package main

import (
	"TextAnalyzer/internal/config"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "TextAnalyzer",
	Short: "Vowel and consonant frequency analysis",
	Long: `TextAnalyzer counts vowels or consonants in a block of text.
It runs as an HTTP service (serve) or analyzes text locally (analyze).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "Path to the TOML config file")
}
