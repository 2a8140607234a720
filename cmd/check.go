package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Aquilabot/KreaPC-Builder/internal/compat"
	"github.com/Aquilabot/KreaPC-Builder/internal/models"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	checkFormat string
	checkStrict bool

	errIncompatible = errors.New("build has incompatible parts")
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check a YAML or JSON part list offline and print the report",
	Long: `Reads a part list and prints the compatibility report. The file holds
either a list of parts or a mapping with a "parts" key; "-" reads stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		report, err := runCheck(in, cmd.OutOrStdout(), checkFormat)
		if err != nil {
			return err
		}
		if checkStrict && !report.Compatible() {
			return errIncompatible
		}
		return nil
	},
}

type checkOutput struct {
	compat.Report `yaml:",inline"`
	TotalPrice    string `json:"totalPrice" yaml:"totalPrice"`
}

func runCheck(r io.Reader, w io.Writer, format string) (compat.Report, error) {
	parts, err := decodeParts(r)
	if err != nil {
		return compat.Report{}, err
	}
	sel := models.Selection(parts).Normalized()
	report := compat.NewReport(sel)
	out := checkOutput{Report: report, TotalPrice: models.FormatPeso(models.TotalPrice(sel), 2)}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(out)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(out)
		if err == nil {
			err = enc.Close()
		}
	case formatText:
		err = writeText(w, out)
	default:
		err = fmt.Errorf("unknown output format %q", format)
	}
	return report, err
}

// decodeParts accepts a bare list or {parts: [...]}. JSON input parses as
// YAML, so one decoder covers both.
func decodeParts(r io.Reader) ([]*models.Component, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode part list: %w", err)
	}

	var parts []*models.Component
	if len(doc.Content) > 0 && doc.Content[0].Kind == yaml.MappingNode {
		var wrapped struct {
			Parts []*models.Component `yaml:"parts"`
		}
		if err := doc.Decode(&wrapped); err != nil {
			return nil, fmt.Errorf("decode part list: %w", err)
		}
		parts = wrapped.Parts
	} else if err := doc.Decode(&parts); err != nil {
		return nil, fmt.Errorf("decode part list: %w", err)
	}

	return parts, nil
}

func writeText(w io.Writer, out checkOutput) error {
	status := map[bool]string{true: "PASS", false: "FAIL"}

	if len(out.Checks) == 0 {
		if _, err := fmt.Fprintln(w, "No checks apply to this selection."); err != nil {
			return err
		}
	}
	for _, f := range out.Checks {
		if _, err := fmt.Fprintf(w, "[%s] %s: %s\n", status[f.Status], f.Name, f.Message); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Estimated power: %dW\n", out.PowerConsumption)
	if err != nil {
		return err
	}
	if out.PSU != nil {
		_, err = fmt.Fprintf(w, "PSU: %dW for %dW required\n", out.PSU.PSUWattage, out.PSU.RequiredWattage)
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "Total: %s\n", out.TotalPrice)
	return err
}
