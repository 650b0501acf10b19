package ports

import "context"

type PromptTemplates interface {
	Template(ctx context.Context, name string) (string, error)
}
