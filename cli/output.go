package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/handlekit"
	"github.com/dmitrymomot/handlekit/pkg/logger"
)

// OutputFormat selects how results are written.
type OutputFormat string

const (
	// FormatTxt writes one generated value per line.
	FormatTxt OutputFormat = "txt"
	// FormatCSV writes one row per result with a header.
	FormatCSV OutputFormat = "csv"
)

// csvHeader is the fixed column order of CSV output.
var csvHeader = []string{"full_name", "type", "value", "domain"}

// DefaultOutputName builds the output filename used when --output is not set.
func DefaultOutputName(mode string, format OutputFormat, now time.Time) string {
	return fmt.Sprintf("handlekit_%s_%s.%s", mode, now.Format("20060102_150405"), format)
}

// WriteTxt writes the value of each result on its own line.
func WriteTxt(w io.Writer, results []handlekit.Result) error {
	for _, res := range results {
		if _, err := fmt.Fprintln(w, res.Value); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV writes results as CSV rows under the full_name,type,value,domain
// header. Domain is empty for username rows.
func WriteCSV(w io.Writer, results []handlekit.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, res := range results {
		row := []string{res.Name, string(res.Kind), res.Value, res.Domain}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeTo(w io.Writer, format OutputFormat, results []handlekit.Result) error {
	if format == FormatCSV {
		return WriteCSV(w, results)
	}
	return WriteTxt(w, results)
}

// writeResults routes results to stdout or a file per the output flag. File
// destinations are logged with their absolute path once written.
func writeResults(cmd *cobra.Command, opts options, results []handlekit.Result, log *slog.Logger) error {
	format := OutputFormat(opts.format)

	if opts.output == "-" {
		return writeTo(cmd.OutOrStdout(), format, results)
	}

	path := opts.output
	if path == "" {
		path = DefaultOutputName(opts.mode, format, time.Now())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := writeTo(f, format, results); err != nil {
		f.Close()
		return fmt.Errorf("write output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	log.InfoContext(cmd.Context(), "results saved",
		logger.Path(path),
		logger.Count(len(results)),
	)
	return nil
}
