package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// PrintTable writes rows under header as a boxed table.
func PrintTable(w io.Writer, header []string, rows [][]string) error {
	data := append([][]string{header}, rows...)

	str, err := pterm.DefaultTable.
		WithBoxed().
		WithHasHeader().
		WithData(data).
		Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	_, err = fmt.Fprintln(w, str)

	return err
}
