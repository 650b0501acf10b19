package yaml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bnema/bundesliga-context-cli/internal/domain"
	"github.com/bnema/bundesliga-context-cli/internal/ports"
	yaml "gopkg.in/yaml.v3"
)

// Store reads named prompt templates from a YAML mapping file. The file is
// read on every call so edits apply without a restart.
type Store struct {
	path string
}

var _ ports.PromptTemplates = (*Store)(nil)

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Template(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	templates, err := s.load()
	if err != nil {
		return "", err
	}

	raw, ok := templates[name]
	if !ok {
		return "", fmt.Errorf("%w: template %q not found in %s", domain.ErrTemplate, name, s.path)
	}

	text, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: template %q in %s is %T, want string", domain.ErrTemplate, name, s.path, raw)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: template %q in %s is empty", domain.ErrTemplate, name, s.path)
	}

	return text, nil
}

func (s *Store) load() (map[string]any, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: prompts file %s not found", domain.ErrTemplate, s.path)
		}
		return nil, fmt.Errorf("%w: read prompts file: %w", domain.ErrTemplate, err)
	}

	var templates map[string]any
	if err := yaml.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("%w: decode prompts file %s: %w", domain.ErrTemplate, s.path, err)
	}

	return templates, nil
}
