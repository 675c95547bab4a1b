package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhisek/casesim/internal/casebank"
	"github.com/abhisek/casesim/internal/export"
	"github.com/spf13/cobra"
)

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "Browse and export the case catalog",
}

var casesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cases (diagnoses hidden unless --answers)",
	RunE: func(cmd *cobra.Command, args []string) error {
		answers, _ := cmd.Flags().GetBool("answers")
		out := cmd.OutOrStdout()

		cases := casebank.All()

		// Header.
		fmt.Fprintf(out, "%-3s  %-10s  %-48s  %s\n", "#", "Age / Sex", "Presenting Complaint", "Diagnosis")
		fmt.Fprintln(out, strings.Repeat("─", 110))

		for i, c := range cases {
			complaint := c.PresentingComplaint
			if len(complaint) > 48 {
				complaint = complaint[:45] + "..."
			}
			dx := "(hidden)"
			if answers {
				dx = c.Diagnosis.String()
			}
			fmt.Fprintf(out, "%-3d  %-10s  %-48s  %s\n",
				i+1, fmt.Sprintf("%d / %s", c.Age, c.Sex), complaint, dx)
		}

		fmt.Fprintf(out, "\n%d cases\n", len(cases))
		return nil
	},
}

var casesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog as an XLSX workbook or YAML document",
	RunE: func(cmd *cobra.Command, args []string) error {
		formatFlag, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("out")

		format, err := export.ParseFormat(formatFlag)
		if err != nil {
			return err
		}

		var w io.Writer = cmd.OutOrStdout()
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			defer f.Close()
			w = f
		} else if format == export.FormatXLSX {
			return fmt.Errorf("--out is required for xlsx")
		}

		if err := export.Write(w, format, casebank.All()); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if outPath != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d cases to %s\n", casebank.Len(), outPath)
		}
		return nil
	},
}

func init() {
	casesListCmd.Flags().Bool("answers", false, "Show each case's diagnosis")

	casesExportCmd.Flags().String("format", "yaml", "Output format: xlsx or yaml")
	casesExportCmd.Flags().String("out", "", "Output file (yaml defaults to stdout)")

	casesCmd.AddCommand(casesListCmd)
	casesCmd.AddCommand(casesExportCmd)
}
