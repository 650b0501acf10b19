package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/bundesliga-context-cli/internal/domain"
	"github.com/bnema/bundesliga-context-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var testIndex = domain.CityClubIndex{
	"Munich":  {Name: "FC Bayern Munich", ID: "Q15789"},
	"Hamburg": {Name: "Hamburger SV", ID: "Q41420"},
}

type serviceMocks struct {
	source       *mocks.MockKnowledgeSource
	encyclopedia *mocks.MockEncyclopedia
	templates    *mocks.MockPromptTemplates
}

func newTestService(t *testing.T, logger *zap.Logger) (*Service, serviceMocks) {
	t.Helper()

	m := serviceMocks{
		source:       mocks.NewMockKnowledgeSource(t),
		encyclopedia: mocks.NewMockEncyclopedia(t),
		templates:    mocks.NewMockPromptTemplates(t),
	}
	service := NewService(m.source, m.encyclopedia, m.templates, Options{
		Logger:    logger,
		NewTurnID: func() string { return "turn-1" },
	})

	return service, m
}

func TestServiceBuildIndex(t *testing.T) {
	service, m := newTestService(t, nil)

	m.source.EXPECT().Clubs(mockAnyContext()).Return([]domain.RawClub{
		{URI: "http://www.wikidata.org/entity/Q15789", Label: "FC Bayern Munich", CityLabel: "Munich"},
		{URI: "http://www.wikidata.org/entity/Q41420", Label: "Hamburger SV", CityLabel: "Hamburg"},
	}, nil)

	index, err := service.BuildIndex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testIndex, index)
}

func TestServiceBuildIndexLookupFailure(t *testing.T) {
	service, m := newTestService(t, nil)

	m.source.EXPECT().Clubs(mockAnyContext()).Return(nil, domain.NewLookupError("query clubs", errors.New("status 503")))

	index, err := service.BuildIndex(context.Background())
	require.ErrorIs(t, err, domain.ErrLookup)
	assert.Nil(t, index)
	assert.False(t, domain.IsRecoverable(err))
}

func TestServiceBuildIndexMalformedURI(t *testing.T) {
	service, m := newTestService(t, nil)

	m.source.EXPECT().Clubs(mockAnyContext()).Return([]domain.RawClub{
		{URI: "not-an-entity", Label: "Broken FC", CityLabel: "Nowhere"},
	}, nil)

	_, err := service.BuildIndex(context.Background())
	require.ErrorIs(t, err, domain.ErrLookup)
}

func TestServiceBuildIndexWarnsOnDuplicateCities(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	service, m := newTestService(t, zap.New(core))

	m.source.EXPECT().Clubs(mockAnyContext()).Return([]domain.RawClub{
		{URI: "http://www.wikidata.org/entity/Q1", Label: "Hertha BSC", CityLabel: "Berlin"},
		{URI: "http://www.wikidata.org/entity/Q2", Label: "1. FC Union Berlin", CityLabel: "Berlin"},
	}, nil)

	index, err := service.BuildIndex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ClubRecord{Name: "1. FC Union Berlin", ID: "Q2"}, index["Berlin"])

	entries := logs.FilterMessage("duplicate city labels collapsed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].ContextMap()["records"])
	assert.Equal(t, int64(1), entries[0].ContextMap()["cities"])
}

func TestServiceResolveCoachUsesFirstNonEmptyName(t *testing.T) {
	service, m := newTestService(t, nil)
	club := domain.ClubRecord{Name: "FC Bayern Munich", ID: "Q15789"}

	m.source.EXPECT().Coaches(mockAnyContext(), domain.ClubID("Q15789")).Return([]string{" ", "Vincent Kompany", "Someone Else"}, nil)

	coach, err := service.ResolveCoach(context.Background(), club)
	require.NoError(t, err)
	assert.Equal(t, "Vincent Kompany", coach)
}

func TestServiceResolveCoachNotFound(t *testing.T) {
	service, m := newTestService(t, nil)
	club := domain.ClubRecord{Name: "Hamburger SV", ID: "Q41420"}

	m.source.EXPECT().Coaches(mockAnyContext(), domain.ClubID("Q41420")).Return(nil, nil)

	_, err := service.ResolveCoach(context.Background(), club)
	require.ErrorIs(t, err, domain.ErrCoachNotFound)

	var notFound *domain.CoachNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, club, notFound.Club)
}

func TestServiceFetchBiography(t *testing.T) {
	service, m := newTestService(t, nil)

	m.encyclopedia.EXPECT().Page(mockAnyContext(), "Vincent Kompany").Return(domain.Page{
		Title:   "Vincent Kompany",
		Exists:  true,
		Summary: "Belgian football manager.",
	}, nil)

	summary, err := service.FetchBiography(context.Background(), "Vincent Kompany")
	require.NoError(t, err)
	assert.Equal(t, "Belgian football manager.", summary)
}

func TestServiceFetchBiographyMissingPage(t *testing.T) {
	service, m := newTestService(t, nil)

	m.encyclopedia.EXPECT().Page(mockAnyContext(), "Unknown Coach").Return(domain.Page{Title: "Unknown Coach"}, nil)

	_, err := service.FetchBiography(context.Background(), "Unknown Coach")
	require.ErrorIs(t, err, domain.ErrBiographyNotFound)
	assert.Equal(t, "Wikipedia page not found. Please try again!", err.Error())
}

func TestServiceComposePromptUsesConfiguredTemplate(t *testing.T) {
	m := serviceMocks{
		source:       mocks.NewMockKnowledgeSource(t),
		encyclopedia: mocks.NewMockEncyclopedia(t),
		templates:    mocks.NewMockPromptTemplates(t),
	}
	service := NewService(m.source, m.encyclopedia, m.templates, Options{TemplateName: "short_prompt"})

	m.templates.EXPECT().Template(mockAnyContext(), "short_prompt").Return("{city_name}|{club_name}|{coach_name}|{coach_info}", nil)

	prompt, err := service.ComposePrompt(context.Background(), domain.PromptContext{CityName: "a", ClubName: "b", CoachName: "c", CoachInfo: "d"})
	require.NoError(t, err)
	assert.Equal(t, "a|b|c|d", prompt)
}

func TestServiceAskSuccess(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	service, m := newTestService(t, zap.New(core))

	m.source.EXPECT().Coaches(mockAnyContext(), domain.ClubID("Q15789")).Return([]string{"Vincent Kompany"}, nil).Once()
	m.encyclopedia.EXPECT().Page(mockAnyContext(), "Vincent Kompany").Return(domain.Page{
		Title:   "Vincent Kompany",
		Exists:  true,
		Summary: "Belgian football manager.",
	}, nil).Once()
	m.templates.EXPECT().Template(mockAnyContext(), DefaultTemplateName).Return(testTemplate, nil).Once()

	answer, err := service.Ask(context.Background(), testIndex, "Who is the coach of munich?")
	require.NoError(t, err)

	assert.Equal(t, Answer{
		TurnID:    "turn-1",
		Question:  "Who is the coach of munich?",
		City:      "Munich",
		Club:      domain.ClubRecord{Name: "FC Bayern Munich", ID: "Q15789"},
		Coach:     "Vincent Kompany",
		Biography: "Belgian football manager.",
		Prompt:    "You talk about FC Bayern Munich from Munich. Coach: Vincent Kompany.\nBelgian football manager.",
	}, answer)

	entries := logs.FilterMessage("question answered").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "turn-1", entries[0].ContextMap()["turn_id"])
	assert.Equal(t, "Q15789", entries[0].ContextMap()["club_id"])
}

func TestServiceAskStopsAtFirstFailure(t *testing.T) {
	tests := []struct {
		name     string
		question string
		setup    func(m serviceMocks)
		sentinel error
	}{
		{
			name:     "unknown city makes no lookup",
			question: "Who coaches Atlantis?",
			setup:    func(serviceMocks) {},
			sentinel: domain.ErrInvalidInput,
		},
		{
			name:     "no coach skips biography",
			question: "Hamburg coach?",
			setup: func(m serviceMocks) {
				m.source.EXPECT().Coaches(mockAnyContext(), domain.ClubID("Q41420")).Return([]string{}, nil)
			},
			sentinel: domain.ErrCoachNotFound,
		},
		{
			name:     "coach lookup failure",
			question: "Hamburg coach?",
			setup: func(m serviceMocks) {
				m.source.EXPECT().Coaches(mockAnyContext(), domain.ClubID("Q41420")).Return(nil, domain.NewLookupError("query coaches", context.DeadlineExceeded))
			},
			sentinel: domain.ErrLookup,
		},
		{
			name:     "missing page skips composition",
			question: "Hamburg coach?",
			setup: func(m serviceMocks) {
				m.source.EXPECT().Coaches(mockAnyContext(), domain.ClubID("Q41420")).Return([]string{"Merlin Polzin"}, nil)
				m.encyclopedia.EXPECT().Page(mockAnyContext(), "Merlin Polzin").Return(domain.Page{Title: "Merlin Polzin"}, nil)
			},
			sentinel: domain.ErrBiographyNotFound,
		},
		{
			name:     "invalid template",
			question: "Hamburg coach?",
			setup: func(m serviceMocks) {
				m.source.EXPECT().Coaches(mockAnyContext(), domain.ClubID("Q41420")).Return([]string{"Merlin Polzin"}, nil)
				m.encyclopedia.EXPECT().Page(mockAnyContext(), "Merlin Polzin").Return(domain.Page{Title: "Merlin Polzin", Exists: true, Summary: "German coach."}, nil)
				m.templates.EXPECT().Template(mockAnyContext(), DefaultTemplateName).Return("Only {city_name}", nil)
			},
			sentinel: domain.ErrTemplate,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service, m := newTestService(t, nil)
			tc.setup(m)

			answer, err := service.Ask(context.Background(), testIndex, tc.question)
			require.ErrorIs(t, err, tc.sentinel)
			assert.Empty(t, answer.Prompt)
			assert.Equal(t, "turn-1", answer.TurnID)
		})
	}
}

func TestNewServiceDefaults(t *testing.T) {
	service := NewService(nil, nil, nil, Options{})

	assert.Equal(t, DefaultTemplateName, service.templateName)
	assert.NotNil(t, service.logger)
	assert.NotEmpty(t, service.newTurnID())
	assert.NotEqual(t, service.newTurnID(), service.newTurnID())
}

func mockAnyContext() interface{} {
	return mock.Anything
}
