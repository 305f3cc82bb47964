package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// SupportedExtensions lists file types handled by the tool.
var SupportedExtensions = map[string]bool{
	".js":  true,
	".jsx": true,
	".ts":  true,
	".tsx": true,
	".mjs": true,
	".cjs": true,
	".vue": true,
}

// excludedDirs are dependency and build-output directories that never hold
// first-party UI strings.
var excludedDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"coverage":     true,
	"vendor":       true,
	".git":         true,
	".next":        true,
	".nuxt":        true,
}

// Walk discovers all supported source files under root, in lexical order.
func Walk(root string) ([]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root path: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	var paths []string

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error walking path")
			return nil
		}

		if info.IsDir() {
			if path != root && excludedDirs[info.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if !eligible(path) {
			return nil
		}

		paths = append(paths, path)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	log.Info().Int("count", len(paths)).Str("root", root).Msg("Discovered files")
	return paths, nil
}

// eligible reports whether a file should be scanned. Minified bundles and
// TypeScript declaration files carry no first-party strings worth keeping.
func eligible(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	if !SupportedExtensions[filepath.Ext(name)] {
		return false
	}
	if strings.Contains(name, ".min.") {
		return false
	}
	if strings.HasSuffix(name, ".d.ts") || strings.HasSuffix(name, ".d.mts") || strings.HasSuffix(name, ".d.cts") {
		return false
	}
	return true
}
