package cmd

import (
	"github.com/spf13/cobra"
)

var configFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Zeigt die wirksame Konfiguration",
	Long: `Gibt die geladene Konfiguration inklusive Defaults aus, als TOML
(default) oder YAML.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cfg.Encode(cmd.OutOrStdout(), configFormat)
	},
}

func init() {
	configCmd.Flags().StringVarP(&configFormat, "format", "f", "toml", "Ausgabeformat (toml, yaml)")
	rootCmd.AddCommand(configCmd)
}
