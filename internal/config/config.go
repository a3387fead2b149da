// Package config resolves the file locations the estimator works
// with. Values come from the environment, optionally loaded from an
// env file, with working-directory defaults for a portable install.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvCatalogPath  = "BAGBOM_CATALOG_PATH"
	EnvTemplatePath = "BAGBOM_TEMPLATE_PATH"
	EnvSaveDir      = "BAGBOM_SAVE_DIR"
	EnvBackupDir    = "BAGBOM_BACKUP_DIR"
)

// Config holds the resolved paths. The backup directory doubles as the
// job-number record store: the generator scans it for the latest
// issued number.
type Config struct {
	CatalogPath  string
	TemplatePath string
	SaveDir      string
	BackupDir    string
}

// Default returns the working-directory layout used when nothing is
// configured.
func Default() Config {
	return Config{
		CatalogPath:  "catalog.csv",
		TemplatePath: "template.xlsx",
		SaveDir:      "bom",
		BackupDir:    "backup",
	}
}

// Load resolves the configuration. When envFile is non-empty it must
// exist and is loaded first; otherwise a ".env" in the working
// directory is loaded when present. Environment variables already set
// take precedence, as godotenv never overwrites them.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("loading env file %s: %w", envFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("loading .env: %w", err)
		}
	}

	cfg := Default()
	cfg.CatalogPath = getenv(EnvCatalogPath, cfg.CatalogPath)
	cfg.TemplatePath = getenv(EnvTemplatePath, cfg.TemplatePath)
	cfg.SaveDir = getenv(EnvSaveDir, cfg.SaveDir)
	cfg.BackupDir = getenv(EnvBackupDir, cfg.BackupDir)
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
