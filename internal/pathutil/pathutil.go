// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	dbFileName     string
	diskDirName    string
	sqliteFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dataDir        string
	logFilePath    string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = &Paths{
			configDir:      "plus",
			configFileName: "config.yml",
			dbFileName:     "plus.db",
			diskDirName:    "kv",
			sqliteFileName: "plus.sqlite",
			logFileName:    "plus.log",
		}

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func Dir() string {
	return Must().configDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

// StoragePath returns the default location of the store for a storage driver.
func StoragePath(driver string) string {
	p := Must()

	switch driver {
	case "diskv":
		return filepath.Join(p.dataDir, p.diskDirName)
	case "sqlite":
		return filepath.Join(p.dataDir, p.sqliteFileName)
	default:
		return filepath.Join(p.dataDir, p.dbFileName)
	}
}

func (p *Paths) applyEnvironmentOverrides() {
	plusEnv := strings.TrimSpace(os.Getenv("PLUS_ENV"))
	if plusEnv != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", plusEnv)
		p.dbFileName = fmt.Sprintf("plus_%s.db", plusEnv)
		p.diskDirName = fmt.Sprintf("kv_%s", plusEnv)
		p.sqliteFileName = fmt.Sprintf("plus_%s.sqlite", plusEnv)
		p.logFileName = fmt.Sprintf("plus_%s.log", plusEnv)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	p.dataDir, err = xdg.DataFile(p.configDir)
	if err != nil {
		return err
	}

	p.logFilePath = filepath.Join(p.dataDir, "log", p.logFileName)

	return nil
}

// IconPath returns the notification icon installed in the data directories,
// or an empty string if there is none.
func IconPath() string {
	icon, _ := xdg.SearchDataFile(
		filepath.Join(Dir(), "static", "icon.png"),
	)

	return icon
}
