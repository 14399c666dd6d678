package app

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/personaplus/plus/internal/logging"
	"github.com/personaplus/plus/internal/ui"
	"github.com/personaplus/plus/store"
)

// profileAction prints the stored name, or replaces it when --name is set.
func (a *application) profileAction(ctx *cli.Context) error {
	if !ctx.IsSet("name") {
		name, found, err := a.kv.Get(ctx.Context, store.KeyUsername)
		if err != nil {
			return err
		}

		if !found || name == "" {
			pterm.Info.Println("No name yet. Set one with `plus profile --name <name>`")
			return nil
		}

		fmt.Fprintln(a.out, "Name: "+ui.Highlight(name))

		return nil
	}

	name := strings.TrimSpace(ctx.String("name"))
	if name == "" {
		return errEmptyName
	}

	err := a.kv.Set(ctx.Context, store.KeyUsername, name)
	if err != nil {
		return err
	}

	logging.Success(ctx.Context, a.logger, "name updated")
	pterm.Success.Printfln("plus will greet you as %s", name)

	return nil
}
