// Package cmd implements the jsonx command-line front end: format,
// validate, and tokens subcommands over the json/parser/printer library.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:           "jsonx",
		Short:         "jsonx",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long:          `Command-line tool for validating, formatting, and inspecting JSON, JSONC, and JSON5 documents.`,
	}

	mode                string
	allowTrailingCommas bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&mode, "mode", "m", "json5", `dialect: "json", "jsonc", or "json5"`)
	rootCmd.PersistentFlags().BoolVar(&allowTrailingCommas, "allow-trailing-commas", false, "permit a trailing comma before a closing } or ] in json/jsonc mode")
	return rootCmd.Execute()
}
