package main

import (
	"fmt"

	"TextAnalyzer/internal/config"
	"TextAnalyzer/pkg/util/myjwt"

	"github.com/spf13/cobra"
)

var tokenSubject string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token signed with jwtConfig.key",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		token, err := myjwt.GenerateToken(conf.JwtConfig, tokenSubject)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
		return err
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "frontend", "Token subject")
}
