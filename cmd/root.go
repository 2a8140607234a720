package cmd

import (
	"os"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"

	"github.com/Aquilabot/KreaPC-Builder/internal/logger"
)

var (
	logLevel string

	rootCmd = &cobra.Command{
		Use:   "kreapc",
		Short: "PC parts catalog and build compatibility checker",
		Long: `KreaPC Builder serves a PC parts catalog for Philippine retailers and
checks whether the parts in a build work together.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(logLevel, false)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log level for offline commands (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)

	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkFormat, "output", "o", formatText, "Output format: text, json or yaml")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Exit with an error when any check fails")

	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVarP(&importType, "type", "t", "", "Part type, taken from the page when empty")
	importCmd.Flags().BoolVar(&importRandomAgent, "random-agent", false, "Send a random User-Agent")
	importCmd.Flags().StringVar(&importPrice, "price", "", `Listed price for the draft, e.g. "₱11,500.00"`)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
