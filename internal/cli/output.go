package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/axzolotle/learning-intern/internal/domain"
	"github.com/axzolotle/learning-intern/internal/infra/frame"
	"github.com/axzolotle/learning-intern/internal/usecase"
)

func printReport(w io.Writer, report domain.Report, savedID string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"saved_id": savedID,
			"report":   report,
		}
		return enc.Encode(payload)
	case "table":
		df, err := frame.FromClassified(report.DatasetName, report.Rows)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, df.String())
		printSummary(w, report.Summary)
		return nil
	case "pretty", "":
		printPrettyReport(w, report, savedID)
		return nil
	default:
		return unsupportedFormat(format, "pretty|json|table")
	}
}

func printPrettyReport(w io.Writer, report domain.Report, savedID string) {
	if report.DatasetName != "" {
		fmt.Fprintf(w, "Dataset:  %s\n", report.DatasetName)
	}
	if !report.StartedAt.IsZero() {
		fmt.Fprintf(w, "Started:  %s\n", report.StartedAt.Format(time.RFC3339))
	}
	if savedID != "" {
		fmt.Fprintf(w, "Saved as: %s\n", savedID)
	}
	fmt.Fprintln(w)

	nameWidth := 4
	for _, r := range report.Rows {
		if len(r.Name) > nameWidth {
			nameWidth = len(r.Name)
		}
	}

	fmt.Fprintf(w, "%-*s  %6s  %s\n", nameWidth, "NAME", "AGE", "AGE GROUP")
	for _, r := range report.Rows {
		fmt.Fprintf(w, "%-*s  %6s  %s\n", nameWidth, r.Name, formatAge(r.Age), r.Group)
	}
	fmt.Fprintln(w)
	printSummary(w, report.Summary)
}

func printSummary(w io.Writer, s domain.Summary) {
	fmt.Fprintf(w, "Total: %d\n", s.Total)
	for _, c := range s.Counts {
		fmt.Fprintf(w, "  %-12s %d\n", c.Group, c.Count)
	}
}

func printComparison(w io.Writer, res usecase.BinningComparison, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "pretty", "":
		fmt.Fprintf(w, "Bins: %s\n\n", res.Bins)
		fmt.Fprintf(w, "%-10s  %6s  %-12s  %-12s  %s\n", "NAME", "AGE", "CANONICAL", "BINNED", "")
		for _, r := range res.Rows {
			binned := r.Binned.String()
			if r.Unbinned {
				binned = "(unbinned)"
			}
			mark := "✓"
			if !r.Agree {
				mark = "✗"
			}
			fmt.Fprintf(w, "%-10s  %6s  %-12s  %-12s  %s\n", r.Name, formatAge(r.Age), r.Canonical, binned, mark)
		}
		fmt.Fprintf(w, "\nDivergent: %d of %d\n", res.Divergent, len(res.Rows))
		return nil
	default:
		return unsupportedFormat(format, "pretty|json")
	}
}

func formatAge(a float64) string {
	return fmt.Sprintf("%g", a)
}

func unsupportedFormat(format, expected string) error {
	return &domain.OpError{
		Op:   "cli.output",
		Kind: domain.KindInvalidInput,
		Err:  fmt.Errorf("unsupported format %q (expected %s): %w", format, expected, domain.ErrInvalidInput),
	}
}
