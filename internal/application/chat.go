package application

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/bundesliga-context-cli/internal/domain"
)

const (
	ExitCommand = "exit"

	GreetingMessage = "Hi! Type 'exit' to quit."
	FarewellMessage = "Goodbye!"

	botLabel  = "Chatbot: "
	userLabel = "You: "
)

// ChatState is the position of the interactive loop.
type ChatState int

const (
	ChatAwaitingInput ChatState = iota
	ChatProcessing
	ChatTerminated
)

func (s ChatState) String() string {
	switch s {
	case ChatAwaitingInput:
		return "awaiting-input"
	case ChatProcessing:
		return "processing"
	case ChatTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// ChatPrinter decorates the lines written by the chat loop.
type ChatPrinter interface {
	Bot(label, message string) string
	Prompt(label string) string
}

type plainPrinter struct{}

func (plainPrinter) Bot(label, message string) string { return label + message }
func (plainPrinter) Prompt(label string) string { return label }

// Chat reads questions line by line from in and writes rendered prompts to
// out until the user types exit or input ends.
type Chat struct {
	service *Service
	index   domain.CityClubIndex
	printer ChatPrinter
	state   ChatState
}

func NewChat(service *Service, index domain.CityClubIndex, printer ChatPrinter) *Chat {
	if printer == nil {
		printer = plainPrinter{}
	}

	return &Chat{service: service, index: index, printer: printer}
}

func (c *Chat) State() ChatState {
	return c.state
}

// Run drives the loop. Recoverable failures are reported to the user and the
// loop continues; any other failure terminates it and is returned.
func (c *Chat) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	c.state = ChatAwaitingInput
	defer func() { c.state = ChatTerminated }()

	if err := c.say(out, GreetingMessage); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprint(out, c.printer.Prompt(userLabel)); err != nil {
			return fmt.Errorf("write prompt: %w", err)
		}

		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("read input: %w", readErr)
		}
		if readErr != nil && line == "" {
			_, err := fmt.Fprintln(out)
			return err
		}

		question := strings.TrimSpace(line)
		if question == "" {
			continue
		}
		if strings.EqualFold(question, ExitCommand) {
			return c.say(out, FarewellMessage)
		}

		c.state = ChatProcessing
		answer, err := c.service.Ask(ctx, c.index, question)
		c.state = ChatAwaitingInput
		if err != nil {
			if !domain.IsRecoverable(err) {
				return err
			}
			if err := c.say(out, ReplyFor(err)); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintln(out, answer.Prompt); err != nil {
			return fmt.Errorf("write answer: %w", err)
		}
	}
}

func (c *Chat) say(out io.Writer, message string) error {
	if _, err := fmt.Fprintln(out, c.printer.Bot(botLabel, message)); err != nil {
		return fmt.Errorf("write reply: %w", err)
	}
	return nil
}

// ReplyFor returns the user-facing message of a recoverable error without
// the pipeline context it was wrapped in.
func ReplyFor(err error) string {
	var invalid *domain.InvalidInputError
	var coach *domain.CoachNotFoundError
	var biography *domain.BiographyNotFoundError

	switch {
	case errors.As(err, &invalid):
		return invalid.Error()
	case errors.As(err, &coach):
		return coach.Error()
	case errors.As(err, &biography):
		return biography.Error()
	default:
		return err.Error()
	}
}
