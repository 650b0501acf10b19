package application

import "github.com/bnema/bundesliga-context-cli/internal/domain"

// Answer is the outcome of one question: the matched club, its coach, the
// coach biography and the rendered system prompt.
type Answer struct {
	TurnID    string
	Question  string
	City      string
	Club      domain.ClubRecord
	Coach     string
	Biography string
	Prompt    string
}
