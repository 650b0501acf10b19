package ports

import (
	"context"

	"github.com/bnema/bundesliga-context-cli/internal/domain"
)

type Encyclopedia interface {
	Page(ctx context.Context, title string) (domain.Page, error)
}
