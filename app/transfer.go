package app

import (
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/personaplus/plus/internal/objective"
	"github.com/personaplus/plus/internal/osutil"
)

// exportObjectives writes set as a YAML document.
func exportObjectives(w io.Writer, set *objective.Set) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(set); err != nil {
		return err
	}

	return enc.Close()
}

// importObjectives reads a YAML document written by exportObjectives and
// checks every objective in it.
func importObjectives(r io.Reader) (*objective.Set, error) {
	set := objective.NewSet()

	err := yaml.NewDecoder(r).Decode(set)
	if err != nil {
		return nil, errImport.Wrap(err)
	}

	for _, o := range set.All() {
		if err := o.Validate(); err != nil {
			return nil, errImport.Wrap(err)
		}
	}

	return set, nil
}

// exportAction handles the export command.
func (a *application) exportAction(ctx *cli.Context) error {
	set, err := a.objectives.LoadAll(ctx.Context)
	if err != nil {
		return err
	}

	output := ctx.String("output")
	if output == "" {
		return exportObjectives(a.out, set)
	}

	f, err := os.OpenFile(
		output,
		os.O_CREATE|os.O_TRUNC|os.O_WRONLY,
		osutil.FilePermission,
	)
	if err != nil {
		return err
	}

	err = exportObjectives(f, set)
	if err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	pterm.Success.Printfln("%d objectives exported to %s", set.Len(), output)

	return nil
}

// importAction handles the import command. The objectives in the file
// replace the stored ones.
func (a *application) importAction(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return errMissingFile
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	defer f.Close()

	set, err := importObjectives(f)
	if err != nil {
		return err
	}

	if !ctx.Bool("yes") {
		now := a.now()
		_, err = printObjectives(a.out, set, now, now, true)
		if err != nil {
			return err
		}

		err = confirm(a.in, a.out, "The above objectives will replace the current ones")
		if err != nil {
			return err
		}
	}

	err = a.objectives.Save(ctx.Context, set)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("%d objectives imported", set.Len())

	return nil
}
