package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Aquilabot/KreaPC-Builder/internal/models"
	"github.com/Aquilabot/KreaPC-Builder/pkg/specimport"
)

var (
	importType        string
	importRandomAgent bool
	importPrice       string
)

var importCmd = &cobra.Command{
	Use:   "import [url]",
	Short: "Import a product spec sheet as a catalog draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var t models.ComponentType
		if importType != "" {
			parsed, ok := models.ParseComponentType(importType)
			if !ok {
				return fmt.Errorf("%w: %q", models.ErrUnknownPartType, importType)
			}
			t = parsed
		}

		price, err := parseDraftPrice(importPrice)
		if err != nil {
			return err
		}

		imp := specimport.NewImporter()
		if importRandomAgent {
			imp.RandomizeUserAgent()
		}

		draft, err := imp.Import(args[0], t)
		if err != nil {
			return err
		}
		draft.Component.Price = price

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(draft); err != nil {
			return err
		}
		return enc.Close()
	},
}

var errForeignCurrency = errors.New("price must be in pesos")

func parseDraftPrice(raw string) (float64, error) {
	amount, currency, err := models.ParsePrice(raw)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", raw, err)
	}
	if currency != "" && currency != models.PesoSign && currency != "PHP" {
		return 0, fmt.Errorf("%w: %q", errForeignCurrency, raw)
	}
	return amount, nil
}
