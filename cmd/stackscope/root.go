package main

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "stackscope",
	Short: "Stackscope - technology compatibility resolution engine",
	Long: `Stackscope resolves which technologies in a catalog remain valid under a
partial selection of interdependent choices (framework, state management,
database system, hosting, ORM, ...), so a configuration wizard can never
offer a combination that does not work together.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"path to config file (default: ./stackscope.{json,yaml,toml} if present)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
