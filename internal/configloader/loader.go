// Package configloader locates and loads spacelint configuration, layering
// an explicit --config path, the SPACELINT_CONFIG environment variable, and
// an upward search from the working directory.
package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/spacelint/pkg/config"
)

// EnvConfigPath is the environment variable naming an explicit config file.
const EnvConfigPath = "SPACELINT_CONFIG"

// configFileNames are the config file names searched for, in order of
// preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFileNames = []string{
	".spacelint.yaml",
	".spacelint.yml",
	"spacelint.yaml",
	"spacelint.yml",
}

// vcsRootMarkers are directories that indicate a VCS root. The upward search
// stops at the first directory containing one.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// Load resolves and loads the configuration for a run.
//
// Resolution order:
//  1. explicitPath (from --config); an unreadable explicit path is an error.
//  2. $SPACELINT_CONFIG, same strictness as an explicit path.
//  3. Upward search from workDir for a config file, stopping at the VCS root.
//  4. Built-in defaults when nothing is found.
//
// The returned string is the path the config was loaded from, or "" for
// defaults.
func Load(ctx context.Context, workDir, explicitPath string) (*config.Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config: %w", ctx.Err())
	default:
	}

	if explicitPath != "" {
		cfg, err := config.LoadFile(explicitPath)
		if err != nil {
			return nil, "", err
		}
		return cfg, explicitPath, nil
	}

	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		cfg, err := config.LoadFile(envPath)
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", EnvConfigPath, err)
		}
		return cfg, envPath, nil
	}

	found, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, "", err
	}
	if found != "" {
		cfg, err := config.LoadFile(found)
		if err != nil {
			return nil, "", err
		}
		return cfg, found, nil
	}

	return config.NewConfig(), "", nil
}

// FindProjectConfig searches upward from workDir for a config file.
// The search stops after the first directory containing a VCS root marker,
// or at the filesystem root. Returns "" when no config file exists.
func FindProjectConfig(ctx context.Context, workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}

	dir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", workDir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("config search cancelled: %w", ctx.Err())
		default:
		}

		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		if isVCSRoot(dir) {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// isVCSRoot reports whether dir contains a VCS root marker.
func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
