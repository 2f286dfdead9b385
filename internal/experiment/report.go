package experiment

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// WriteCSV writes the per-run rows to path, one line per instance and sweep
// point.
func WriteCSV(path string, rows []Row) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"File", "Vars", "Clauses", "P", "Policy", "Status", "Decisions", "Propagations", "Restarts", "Elapsed(ms)"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.File,
			fmt.Sprintf("%d", row.Vars),
			fmt.Sprintf("%d", row.Clauses),
			fmt.Sprintf("%.2f", row.P),
			row.Policy,
			row.Status,
			fmt.Sprintf("%d", row.Decisions),
			fmt.Sprintf("%d", row.Propagations),
			fmt.Sprintf("%d", row.Restarts),
			fmt.Sprintf("%.3f", row.ElapsedMs),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}
	return writer.Error()
}

// PrintSummary renders the per-p aggregates as a fixed-width table.
func PrintSummary(w io.Writer, summaries []Summary) {
	fmt.Fprintf(w, "%6s %10s %6s %6s %9s %9s %15s %13s\n",
		"p", "instances", "sat", "unsat", "timeouts", "success%", "mean decisions", "mean time(ms)")
	for _, s := range summaries {
		fmt.Fprintf(w, "%6.2f %10d %6d %6d %9d %9.1f %15.1f %13.3f\n",
			s.P, s.Instances, s.Sat, s.Unsat, s.Timeouts, s.SuccessRate, s.MeanDecisions, s.MeanElapsedMs)
	}
}
