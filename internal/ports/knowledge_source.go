package ports

import (
	"context"

	"github.com/bnema/bundesliga-context-cli/internal/domain"
)

// KnowledgeSource answers the two fixed knowledge-graph queries the
// pipeline needs.
type KnowledgeSource interface {
	// Clubs returns every known (club, city) row for the top-tier league.
	Clubs(ctx context.Context) ([]domain.RawClub, error)
	// Coaches returns the display names of the club's current coaches,
	// possibly none.
	Coaches(ctx context.Context, club domain.ClubID) ([]string, error)
}
