package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/bundesliga-context-cli/internal/domain"
	"github.com/bnema/bundesliga-context-cli/internal/logger"
	"github.com/bnema/bundesliga-context-cli/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultTemplateName = "chatbot_prompt"

type Options struct {
	// TemplateName selects the prompt template; empty means DefaultTemplateName.
	TemplateName string
	Logger       *zap.Logger
	NewTurnID    func() string
}

type Service struct {
	source       ports.KnowledgeSource
	encyclopedia ports.Encyclopedia
	templates    ports.PromptTemplates
	templateName string
	logger       *zap.Logger
	newTurnID    func() string
}

func NewService(source ports.KnowledgeSource, encyclopedia ports.Encyclopedia, templates ports.PromptTemplates, opts Options) *Service {
	if opts.TemplateName == "" {
		opts.TemplateName = DefaultTemplateName
	}
	if opts.NewTurnID == nil {
		opts.NewTurnID = uuid.NewString
	}

	return &Service{
		source:       source,
		encyclopedia: encyclopedia,
		templates:    templates,
		templateName: opts.TemplateName,
		logger:       logger.OrNop(opts.Logger),
		newTurnID:    opts.NewTurnID,
	}
}

// BuildIndex queries the knowledge source for every Bundesliga club and maps
// each home city to its club.
func (s *Service) BuildIndex(ctx context.Context) (domain.CityClubIndex, error) {
	started := time.Now()

	records, err := s.source.Clubs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}

	index, err := domain.BuildCityClubIndex(records)
	if err != nil {
		return nil, fmt.Errorf("build city index: %w", err)
	}

	if len(index) < len(records) {
		s.logger.Warn("duplicate city labels collapsed",
			zap.Int("records", len(records)),
			zap.Int("cities", len(index)),
		)
	}
	s.logger.Info("city index built",
		zap.Int("records", len(records)),
		zap.Int("cities", len(index)),
		zap.Duration("duration", time.Since(started)),
	)

	return index, nil
}

func (s *Service) ExtractClub(index domain.CityClubIndex, question string) (domain.Match, error) {
	return index.Extract(question)
}

// ResolveCoach returns the first current head coach reported for club.
func (s *Service) ResolveCoach(ctx context.Context, club domain.ClubRecord) (string, error) {
	coaches, err := s.source.Coaches(ctx, club.ID)
	if err != nil {
		return "", fmt.Errorf("list coaches: %w", err)
	}

	for _, coach := range coaches {
		if name := strings.TrimSpace(coach); name != "" {
			if len(coaches) > 1 {
				s.logger.Debug("several current coaches, using the first",
					zap.String("club_id", string(club.ID)),
					zap.Strings("coaches", coaches),
				)
			}
			return name, nil
		}
	}

	return "", &domain.CoachNotFoundError{Club: club}
}

// FetchBiography returns the introductory summary of the coach's
// encyclopedia page.
func (s *Service) FetchBiography(ctx context.Context, coach string) (string, error) {
	page, err := s.encyclopedia.Page(ctx, coach)
	if err != nil {
		return "", fmt.Errorf("fetch page: %w", err)
	}
	if !page.Exists {
		return "", &domain.BiographyNotFoundError{Title: coach}
	}

	return page.Summary, nil
}

// ComposePrompt loads the configured template and renders it with prompt.
func (s *Service) ComposePrompt(ctx context.Context, prompt domain.PromptContext) (string, error) {
	template, err := s.templates.Template(ctx, s.templateName)
	if err != nil {
		return "", fmt.Errorf("load template %q: %w", s.templateName, err)
	}

	composer, err := NewPromptComposer(template)
	if err != nil {
		return "", fmt.Errorf("template %q: %w", s.templateName, err)
	}

	return composer.Compose(prompt), nil
}

// Ask runs one question through city extraction, coach resolution,
// biography lookup and prompt composition, stopping at the first failure.
func (s *Service) Ask(ctx context.Context, index domain.CityClubIndex, question string) (Answer, error) {
	started := time.Now()
	answer := Answer{TurnID: s.newTurnID(), Question: question}
	log := s.logger.With(zap.String("turn_id", answer.TurnID))

	match, err := s.ExtractClub(index, question)
	if err != nil {
		log.Debug("no city recognised")
		return answer, err
	}
	answer.City = match.City
	answer.Club = match.Club
	log.Debug("city recognised",
		zap.String("city", match.City),
		zap.String("club_id", string(match.Club.ID)),
	)

	coach, err := s.ResolveCoach(ctx, match.Club)
	if err != nil {
		return answer, fmt.Errorf("resolve coach: %w", err)
	}
	answer.Coach = coach
	log.Debug("coach resolved", zap.String("coach", coach))

	biography, err := s.FetchBiography(ctx, coach)
	if err != nil {
		return answer, fmt.Errorf("fetch biography: %w", err)
	}
	answer.Biography = biography

	prompt, err := s.ComposePrompt(ctx, domain.PromptContext{
		CityName:  match.City,
		ClubName:  match.Club.Name,
		CoachName: coach,
		CoachInfo: biography,
	})
	if err != nil {
		return answer, fmt.Errorf("compose prompt: %w", err)
	}
	answer.Prompt = prompt

	log.Info("question answered",
		zap.String("city", match.City),
		zap.String("club_id", string(match.Club.ID)),
		zap.String("coach", coach),
		zap.Duration("duration", time.Since(started)),
	)

	return answer, nil
}
