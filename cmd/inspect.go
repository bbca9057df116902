package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/zjrosen/spangrid/internal/sheet"
)

var (
	inspectAt   string
	inspectWrap int
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Print the merged regions of a sheet",
	Long: `Print a sheet's size, its merged regions (explicit merges first, then runs
derived from merge_runs) and the columns that can hold a region.

Examples:
  # Regions of the built-in example
  spangrid inspect

  # Which region covers row 1, column 1 (zero based)?
  spangrid inspect plan.yaml --at 1,1`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := sheetPath(args)
		if err != nil {
			return err
		}
		snap, err := loadSnapshot(cmd.Context(), sheet.NewMemoryLoader(), path)
		if err != nil {
			return err
		}
		return inspect(cmd.OutOrStdout(), snap, inspectAt, inspectWrap)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectAt, "at", "", "report the region and value at row,column")
	inspectCmd.Flags().IntVar(&inspectWrap, "wrap", 72, "wrap long values at this width")
}

func inspect(out io.Writer, snap *sheet.Snapshot, at string, wrap int) error {
	s := snap.Sheet
	fmt.Fprintf(out, "%s: %d rows x %d columns\n", s.Name, s.RowCount(), s.ColumnCount())
	fmt.Fprintf(out, "layout digest: %s\n", snap.Digest)
	fmt.Fprintf(out, "candidate columns: %v\n", snap.Set.CandidateColumns())
	fmt.Fprintf(out, "regions (%d):\n", snap.Set.Len())
	for _, r := range snap.Set.Regions() {
		fmt.Fprintf(out, "  %s  %q\n", r, snap.Value(r.StartRow, r.StartColumn))
	}

	if at == "" {
		return nil
	}
	row, column, err := parseCell(at)
	if err != nil {
		return err
	}
	if r := snap.Set.ContainingRegion(row, column); r != nil {
		fmt.Fprintf(out, "(%d,%d) is in %s\n", row, column, r)
	} else {
		fmt.Fprintf(out, "(%d,%d) is not merged\n", row, column)
	}
	value := snap.Value(row, column)
	fmt.Fprintf(out, "value: %q\n", value)
	if wrap > 0 && ansi.StringWidth(value) > wrap {
		fmt.Fprintln(out, indent.String(wordwrap.String(value, wrap), 2))
	}
	return nil
}

func parseCell(s string) (int, int, error) {
	rowText, columnText, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("--at wants row,column, got %q", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowText))
	if err != nil {
		return 0, 0, fmt.Errorf("--at row: %w", err)
	}
	column, err := strconv.Atoi(strings.TrimSpace(columnText))
	if err != nil {
		return 0, 0, fmt.Errorf("--at column: %w", err)
	}
	return row, column, nil
}
