package main

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"

	"github.com/personaplus/plus/app"
	"github.com/personaplus/plus/internal/osutil"
	"github.com/personaplus/plus/report"
)

const (
	configDir = "plus"
)

//go:embed static/*
var static embed.FS

// installStatic copies the embedded files to the data directory unless they
// are already installed.
func installStatic() error {
	return fs.WalkDir(static, "static", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		relPath := filepath.Join(configDir, path)

		if _, err = xdg.SearchDataFile(relPath); err == nil {
			return nil
		}

		b, err := fs.ReadFile(static, path)
		if err != nil {
			return err
		}

		pathToFile, err := xdg.DataFile(relPath)
		if err != nil {
			return err
		}

		return os.WriteFile(pathToFile, b, osutil.FilePermission)
	})
}

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := installStatic()
	if err != nil {
		pterm.Warning.Printfln("unable to install the notification icon: %v", err)
	}

	err = run(os.Args)
	if err != nil {
		report.Quit(err)
	}
}
