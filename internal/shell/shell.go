// Package shell implements the interactive console menu. It is a thin
// dispatcher over the ledger service: every command runs to completion,
// reports its outcome in a single message, and returns to the menu.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"tally/internal/core"
	"tally/internal/services"
)

const menu = `
Personal Expense Tracker
------------------------
1. Add expense
2. View all expenses
3. Search / Filter expenses
4. Analytics (totals, charts)
5. Export to CSV
6. Help
7. Quit
`

const helpText = `
Quick usage tips:
- Dates must be YYYY-MM-DD (leave blank when adding to use today's date)
- Categories are case-insensitive for searching, but stored as entered
- Charts are saved as PNG files:
    - category pie chart
    - monthly trend chart
- Export creates a CSV file readable by Excel / Google Sheets
`

// Paths are the default output locations offered by the shell.
type Paths struct {
	Export   string
	PieChart string
	Trend    string
}

// Shell runs the interactive menu loop.
type Shell struct {
	svc   *services.LedgerService
	in    *bufio.Scanner
	out   io.Writer
	paths Paths
	now   func() time.Time
}

func New(svc *services.LedgerService, in io.Reader, out io.Writer, paths Paths) *Shell {
	return &Shell{
		svc:   svc,
		in:    bufio.NewScanner(in),
		out:   out,
		paths: paths,
		now:   time.Now,
	}
}

// Run loops until the user quits or input ends. No command failure is
// fatal: errors are reported once and the menu comes back.
func (s *Shell) Run(ctx context.Context) error {
	for {
		fmt.Fprint(s.out, menu)
		choice, ok := s.prompt("Enter choice [1-7]: ")
		if !ok {
			return nil
		}
		switch strings.ToLower(choice) {
		case "1":
			s.addExpense(ctx)
		case "2":
			s.viewAll(ctx)
		case "3":
			s.search(ctx)
		case "4":
			s.analytics(ctx)
		case "5":
			s.exportCSV(ctx)
		case "6":
			fmt.Fprint(s.out, helpText)
		case "7", "q", "quit", "exit":
			fmt.Fprintln(s.out, "Bye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Try again.")
		}
	}
}

// prompt reads one trimmed line; ok is false when input is exhausted.
func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) addExpense(ctx context.Context) {
	fmt.Fprintln(s.out, "\nAdd new expense (enter 'q' to cancel)")

	date, ok := s.prompt("Date (YYYY-MM-DD) [default: today]: ")
	if !ok || strings.EqualFold(date, "q") {
		return
	}
	if date == "" {
		date = s.now().Format(core.DateLayout)
	}
	category, ok := s.prompt("Category (e.g., Food, Travel): ")
	if !ok || strings.EqualFold(category, "q") {
		return
	}
	amount, ok := s.prompt("Amount (numeric): ")
	if !ok || strings.EqualFold(amount, "q") {
		return
	}
	notes, ok := s.prompt("Notes (optional): ")
	if !ok {
		return
	}

	rec, err := s.svc.Add(ctx, date, category, amount, notes)
	if err != nil {
		fmt.Fprintln(s.out, "Error adding expense:", err)
		return
	}
	fmt.Fprintf(s.out, "Expense added (id %d).\n", rec.ID)
}

func (s *Shell) viewAll(ctx context.Context) {
	records, err := s.svc.All(ctx)
	if err != nil {
		fmt.Fprintln(s.out, "Error loading expenses:", err)
		return
	}
	s.displayRecords(records)
}

func (s *Shell) search(ctx context.Context) {
	fmt.Fprintln(s.out, "\nSearch / Filter (press ENTER to skip a filter)")

	filter, ok, err := s.promptFilter()
	if !ok {
		return
	}
	if err != nil {
		fmt.Fprintln(s.out, "Invalid filter:", err)
		return
	}

	records, err := s.svc.Search(ctx, filter)
	if err != nil {
		fmt.Fprintln(s.out, "Error searching expenses:", err)
		return
	}
	s.displayRecords(records)
}

// promptFilter collects the five optional constraints. Blank input
// means no constraint on that dimension.
func (s *Shell) promptFilter() (core.Filter, bool, error) {
	var f core.Filter

	text, ok := s.prompt("Start date (YYYY-MM-DD): ")
	if !ok {
		return f, false, nil
	}
	if text != "" {
		d, err := core.ParseDate(text)
		if err != nil {
			return f, true, fmt.Errorf("start date: %w", err)
		}
		f.From = &d
	}
	text, ok = s.prompt("End date (YYYY-MM-DD): ")
	if !ok {
		return f, false, nil
	}
	if text != "" {
		d, err := core.ParseDate(text)
		if err != nil {
			return f, true, fmt.Errorf("end date: %w", err)
		}
		f.To = &d
	}
	f.Category, ok = s.prompt("Category (exact match): ")
	if !ok {
		return f, false, nil
	}
	text, ok = s.prompt("Min amount: ")
	if !ok {
		return f, false, nil
	}
	if text != "" {
		v, err := core.ParseAmount(text)
		if err != nil {
			return f, true, fmt.Errorf("min amount: %w", err)
		}
		f.MinAmount = &v
	}
	text, ok = s.prompt("Max amount: ")
	if !ok {
		return f, false, nil
	}
	if text != "" {
		v, err := core.ParseAmount(text)
		if err != nil {
			return f, true, fmt.Errorf("max amount: %w", err)
		}
		f.MaxAmount = &v
	}

	return f, true, nil
}

func (s *Shell) analytics(ctx context.Context) {
	report, err := s.svc.Analytics(ctx)
	if err != nil {
		fmt.Fprintln(s.out, "Error computing analytics:", err)
		return
	}
	if report.Empty() {
		fmt.Fprintln(s.out, "No data available for analytics.")
		return
	}

	fmt.Fprintf(s.out, "\nTotal spending (all time): %.2f\n\n", report.Total)
	fmt.Fprintln(s.out, "Spending by category:")
	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	for _, ct := range report.ByCategory {
		fmt.Fprintf(tw, "%s\t%.2f\n", ct.Category, ct.Sum)
	}
	tw.Flush()

	written, err := s.svc.RenderCharts(ctx, report, s.paths.PieChart, s.paths.Trend)
	if err != nil {
		fmt.Fprintln(s.out, "Error rendering charts:", err)
	}
	if len(written) > 0 {
		fmt.Fprintln(s.out, "\nCharts saved as:", strings.Join(written, ", "))
	} else {
		fmt.Fprintln(s.out, "\nNo charts produced (nothing to plot).")
	}
}

func (s *Shell) exportCSV(ctx context.Context) {
	path, ok := s.prompt(fmt.Sprintf("Export filename [default: %s]: ", s.paths.Export))
	if !ok {
		return
	}
	if path == "" {
		path = s.paths.Export
	}

	rows, err := s.svc.ExportCSV(ctx, path)
	if errors.Is(err, services.ErrNoRecords) {
		fmt.Fprintln(s.out, "No data to export.")
		return
	}
	if err != nil {
		fmt.Fprintln(s.out, "Error exporting:", err)
		return
	}
	fmt.Fprintf(s.out, "Exported %d records to %s\n", rows, path)
}

func (s *Shell) displayRecords(records []core.Record) {
	if len(records) == 0 {
		fmt.Fprintln(s.out, "No records found.")
		return
	}
	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "id\tdate\tcategory\tamount\tnotes")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%s\n",
			strconv.FormatInt(r.ID, 10), r.Date, r.Category, r.Amount, r.Notes)
	}
	tw.Flush()
}
