package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"bannergen/internal/core/domain"
)

const rule = "================================================================================"

func writeSummary(w io.Writer, result *domain.BatchResult) error {
	if _, err := fmt.Fprintln(w, "\n=== Generation Summary ==="); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("Template", "Status", "File")
	for _, r := range result.Results {
		status, file := "FAILED", "N/A"
		if r.Success {
			status, file = "SUCCESS", r.FilePath
		}
		if err := table.Append(r.Template.Name, status, file); err != nil {
			return fmt.Errorf("failed to add %s to summary: %w", r.Template.Name, err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}

	_, err := fmt.Fprintf(w, "\nTotal: %d/%d images generated successfully\n",
		len(result.Succeeded()), len(result.Results))
	return err
}

// buildReport renders the flat URL report for the successful results.
func buildReport(title string, succeeded []domain.JobResult) []byte {
	var b strings.Builder
	b.WriteString(title + " - GENERATED IMAGES\n")
	b.WriteString(rule + "\n\n")
	for _, r := range succeeded {
		fmt.Fprintf(&b, "%s:\n%s\n\n", r.Template.Name, r.ImageURL)
	}
	return []byte(b.String())
}
