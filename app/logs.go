package app

import (
	"io"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/personaplus/plus/internal/logging"
	"github.com/personaplus/plus/internal/ui"
	"github.com/personaplus/plus/store"
)

func entryType(t logging.EntryType) string {
	switch t {
	case logging.TypeSuccess:
		return ui.Green(string(t))
	case logging.TypeWarn:
		return ui.Yellow(string(t))
	case logging.TypeError:
		return ui.Red(string(t))
	default:
		return ui.Cyan(string(t))
	}
}

func printJournal(w io.Writer, entries []logging.Entry) error {
	rows := make([][]string, 0, len(entries))

	for _, e := range entries {
		rows = append(rows, []string{
			e.Time().Format("Jan 02, 2006 03:04 PM"),
			entryType(e.Type),
			e.Message,
		})
	}

	return ui.PrintTable(w, []string{"TIME", "TYPE", "MESSAGE"}, rows)
}

// logsAction prints the journal and optionally clears it.
func (a *application) logsAction(ctx *cli.Context) error {
	entries, err := logging.ReadJournal(ctx.Context, a.kv)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		pterm.Info.Println("The journal is empty")
	} else if err = printJournal(a.out, entries); err != nil {
		return err
	}

	if !ctx.Bool("clear") {
		return nil
	}

	return logging.ClearJournal(ctx.Context, a.kv)
}

// resetAction deletes everything plus keeps in the store.
func (a *application) resetAction(ctx *cli.Context) error {
	if !ctx.Bool("yes") {
		err := confirm(a.in, a.out, "Every objective and the journal will be deleted")
		if err != nil {
			return err
		}
	}

	err := a.kv.MultiRemove(ctx.Context, store.KnownKeys)
	if err != nil {
		return err
	}

	pterm.Success.Println("plus has been reset")

	return nil
}
