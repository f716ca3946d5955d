package templates

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// TemplateSearchPaths returns user template directories in load order.
func TemplateSearchPaths(projectDir string) []string {
	paths := make([]string, 0, 2)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".emailpro", "templates"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "emailpro", "templates"))
	}
	return paths
}

// LoadCatalog builds the catalog: builtins first in shipped order, then
// templates from each directory in dirs. A user template whose id is already
// taken is skipped so builtins are never shadowed.
func LoadCatalog(dirs []string, logger zerolog.Logger) (*Catalog, error) {
	builtins, err := LoadBuiltinTemplates()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(builtins))
	resolved := make([]*Template, 0, len(builtins))
	for _, tmpl := range builtins {
		seen[tmpl.ID] = struct{}{}
		resolved = append(resolved, tmpl)
	}

	for _, dir := range dirs {
		loaded, err := LoadTemplatesFromDir(dir)
		if err != nil {
			return nil, err
		}
		for _, tmpl := range loaded {
			if _, exists := seen[tmpl.ID]; exists {
				logger.Warn().
					Str("template_id", tmpl.ID).
					Str("source", tmpl.Source).
					Msg("skipping template with duplicate id")
				continue
			}
			seen[tmpl.ID] = struct{}{}
			resolved = append(resolved, tmpl)
		}
	}

	logger.Debug().Int("templates", len(resolved)).Msg("catalog loaded")
	return NewCatalog(resolved)
}
