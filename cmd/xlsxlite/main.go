// Package main provides the CLI entry point for xlsxlite-go.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/xlsxlite-go/pkg/xlsxlite"
	"github.com/ukaji3/xlsxlite-go/pkg/xlsxlite/manifest"
	"github.com/ukaji3/xlsxlite-go/pkg/xlsxlite/models"
)

var (
	outputPath string
	summary    bool
	pretty     bool
	verbose    bool
	noAutoFit  bool
	demoDir    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlsxlite",
		Short: "Write Excel workbooks from YAML manifests",
		Long: `xlsxlite-go writes minimal .xlsx workbooks: typed cells, shared strings,
header and date styles, estimated column widths, frozen panes and hyperlinks.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug statistics")

	buildCmd := &cobra.Command{
		Use:   "build [manifest.yaml]",
		Short: "Build a workbook from a YAML manifest",
		Args:  cobra.ExactArgs(1),
		RunE:  runBuild,
	}
	buildCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: manifest name with .xlsx)")
	buildCmd.Flags().BoolVar(&summary, "summary", false, "Print a JSON report of the written package")
	buildCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print the JSON report")
	buildCmd.Flags().BoolVar(&noAutoFit, "no-autofit", false, "Disable column width estimation by default")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Write the sample workbooks",
		Args:  cobra.NoArgs,
		RunE:  runDemo,
	}
	demoCmd.Flags().StringVarP(&demoDir, "dir", "d", ".", "Directory for the sample files")

	rootCmd.AddCommand(buildCmd, demoCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	m, err := manifest.LoadFile(inputPath)
	if err != nil {
		return err
	}

	opts := xlsxlite.DefaultOptions()
	if noAutoFit {
		autoFit := false
		opts.AutoFitColumns = &autoFit
	}

	wb, err := m.Build(opts)
	if err != nil {
		return fmt.Errorf("invalid manifest: %w", err)
	}

	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".xlsx"
	}
	if err := wb.SaveAs(outputPath); err != nil {
		return fmt.Errorf("save failed: %w", err)
	}

	report := wb.Report()
	if summary {
		return printReport(cmd, report)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d sheets, %s)\n",
		outputPath, len(report.Sheets), humanize.Bytes(uint64(report.Size)))
	return nil
}

func printReport(cmd *cobra.Command, report *models.WorkbookReport) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(demoDir, 0755); err != nil {
		return err
	}
	for _, d := range demos {
		wb, err := d.build()
		if err != nil {
			return fmt.Errorf("%s: %w", d.file, err)
		}
		path := filepath.Join(demoDir, d.file)
		if err := wb.SaveAs(path); err != nil {
			return fmt.Errorf("%s: %w", d.file, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-36s %s\n", d.file, humanize.Bytes(uint64(wb.Report().Size)))
	}
	return nil
}
