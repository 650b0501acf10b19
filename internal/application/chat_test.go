package application

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/bnema/bundesliga-context-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const greetingLine = "Chatbot: Hi! Type 'exit' to quit.\n"

func runChat(t *testing.T, service *Service, input string) (string, *Chat, error) {
	t.Helper()

	var out bytes.Buffer
	chat := NewChat(service, testIndex, nil)
	err := chat.Run(context.Background(), strings.NewReader(input), &out)

	return out.String(), chat, err
}

func TestChatExitWithoutLookup(t *testing.T) {
	for _, input := range []string{"exit\n", "EXIT\n", "  Exit  \n"} {
		t.Run(strings.TrimSpace(input), func(t *testing.T) {
			service, _ := newTestService(t, nil)

			out, chat, err := runChat(t, service, input+"Who coaches Munich?\n")
			require.NoError(t, err)
			assert.Equal(t, greetingLine+"You: Chatbot: Goodbye!\n", out)
			assert.Equal(t, ChatTerminated, chat.State())
		})
	}
}

func TestChatEndOfInputTerminates(t *testing.T) {
	service, _ := newTestService(t, nil)

	out, chat, err := runChat(t, service, "")
	require.NoError(t, err)
	assert.Equal(t, greetingLine+"You: \n", out)
	assert.Equal(t, ChatTerminated, chat.State())
}

func TestChatIgnoresBlankLines(t *testing.T) {
	service, _ := newTestService(t, nil)

	out, _, err := runChat(t, service, "\n   \nexit\n")
	require.NoError(t, err)
	assert.Equal(t, greetingLine+"You: You: You: Chatbot: Goodbye!\n", out)
}

func TestChatHandlesVeryLongLine(t *testing.T) {
	service, _ := newTestService(t, nil)

	out, chat, err := runChat(t, service, strings.Repeat("a", 70000)+"\nexit\n")
	require.NoError(t, err)
	assert.Equal(t, greetingLine+
		"You: Chatbot: Please enter a valid city with a team playing in the Bundesliga.\n"+
		"You: Chatbot: Goodbye!\n", out)
	assert.Equal(t, ChatTerminated, chat.State())
}

func TestChatAnswersFinalLineWithoutNewline(t *testing.T) {
	service, _ := newTestService(t, nil)

	out, _, err := runChat(t, service, "Who coaches Atlantis?")
	require.NoError(t, err)
	assert.Equal(t, greetingLine+
		"You: Chatbot: Please enter a valid city with a team playing in the Bundesliga.\n"+
		"You: \n", out)
}

func TestChatReportsRecoverableErrorsAndContinues(t *testing.T) {
	service, m := newTestService(t, nil)

	m.source.EXPECT().Coaches(mockAnyContext(), domain.ClubID("Q41420")).Return(nil, nil).Once()
	m.source.EXPECT().Coaches(mockAnyContext(), domain.ClubID("Q15789")).Return([]string{"Vincent Kompany"}, nil).Once()
	m.encyclopedia.EXPECT().Page(mockAnyContext(), "Vincent Kompany").Return(domain.Page{Title: "Vincent Kompany"}, nil).Once()

	out, _, err := runChat(t, service, "Who coaches Atlantis?\nHamburg?\nMunich?\nexit\n")
	require.NoError(t, err)

	assert.Equal(t, greetingLine+
		"You: Chatbot: Please enter a valid city with a team playing in the Bundesliga.\n"+
		"You: Chatbot: No current coach is recorded for Hamburger SV. Please try another city.\n"+
		"You: Chatbot: Wikipedia page not found. Please try again!\n"+
		"You: Chatbot: Goodbye!\n", out)
}

func TestChatPrintsComposedPrompt(t *testing.T) {
	service, m := newTestService(t, nil)

	m.source.EXPECT().Coaches(mockAnyContext(), domain.ClubID("Q15789")).Return([]string{"Vincent Kompany"}, nil)
	m.encyclopedia.EXPECT().Page(mockAnyContext(), "Vincent Kompany").Return(domain.Page{
		Title:   "Vincent Kompany",
		Exists:  true,
		Summary: "Belgian football manager.",
	}, nil)
	m.templates.EXPECT().Template(mockAnyContext(), DefaultTemplateName).Return(testTemplate, nil)

	out, _, err := runChat(t, service, "Who coaches Munich?\n")
	require.NoError(t, err)
	assert.Equal(t, greetingLine+
		"You: You talk about FC Bayern Munich from Munich. Coach: Vincent Kompany.\nBelgian football manager.\n"+
		"You: \n", out)
}

func TestChatStopsOnLookupFailure(t *testing.T) {
	service, m := newTestService(t, nil)

	m.source.EXPECT().Coaches(mockAnyContext(), domain.ClubID("Q15789")).Return(nil, domain.NewLookupError("query coaches", context.DeadlineExceeded))

	out, chat, err := runChat(t, service, "Munich?\nexit\n")
	require.ErrorIs(t, err, domain.ErrLookup)
	assert.Equal(t, greetingLine+"You: ", out)
	assert.Equal(t, ChatTerminated, chat.State())
}

func TestChatStopsWhenContextCancelled(t *testing.T) {
	service, _ := newTestService(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := NewChat(service, testIndex, nil).Run(ctx, strings.NewReader("Munich?\n"), &out)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, greetingLine, out.String())
}

func TestReplyForStripsPipelineContext(t *testing.T) {
	t.Parallel()

	err := &domain.CoachNotFoundError{Club: domain.ClubRecord{Name: "Hamburger SV", ID: "Q41420"}}
	wrapped := fmt.Errorf("resolve coach: %w", err)

	assert.Equal(t, "No current coach is recorded for Hamburger SV. Please try another city.", ReplyFor(wrapped))
	assert.Contains(t, wrapped.Error(), "resolve coach: ")
}

func TestChatStateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "awaiting-input", ChatAwaitingInput.String())
	assert.Equal(t, "processing", ChatProcessing.String())
	assert.Equal(t, "terminated", ChatTerminated.String())
	assert.Equal(t, "unknown", ChatState(42).String())
}
