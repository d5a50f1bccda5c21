package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/calc/internal/core/domain"
	"github.com/custodia-labs/calc/internal/core/ports/driving"
	"github.com/custodia-labs/calc/internal/logger"
)

// DefaultPrompt is printed before every line is read.
const DefaultPrompt = "calc $> "

// Config holds everything a session needs.
type Config struct {
	// Input is where lines are read from.
	Input io.Reader

	// Output receives the prompt, messages and results.
	Output io.Writer

	// Calculator parses and evaluates expression lines.
	Calculator driving.Calculator

	// Messages is the message set shown to the user.
	Messages domain.MessageSet

	// ShowNotice prints the license notice before the welcome message.
	ShowNotice bool

	// Prompt overrides DefaultPrompt when non-empty.
	Prompt string

	// Styles decorates output. Nil means plain output.
	Styles *Styles
}

// Session is one interactive calculator session.
// A session is not safe for concurrent use and cannot be restarted
// once terminated.
type Session struct {
	id         string
	in         *bufio.Reader
	out        *bufio.Writer
	calc       driving.Calculator
	messages   domain.MessageSet
	showNotice bool
	prompt     string
	styles     *Styles
	state      State
}

// NewSession creates a session from a configuration.
func NewSession(cfg Config) (*Session, error) {
	if cfg.Input == nil {
		return nil, errors.New("session input not configured")
	}
	if cfg.Output == nil {
		return nil, errors.New("session output not configured")
	}
	if cfg.Calculator == nil {
		return nil, errors.New("calculator not configured")
	}
	if !cfg.Messages.IsComplete() {
		return nil, domain.ErrIncompleteMessages
	}

	prompt := cfg.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}
	styles := cfg.Styles
	if styles == nil {
		styles = PlainStyles()
	}

	return &Session{
		id:         uuid.NewString(),
		in:         bufio.NewReader(cfg.Input),
		out:        bufio.NewWriter(cfg.Output),
		calc:       cfg.Calculator,
		messages:   cfg.Messages,
		showNotice: cfg.ShowNotice,
		prompt:     prompt,
		styles:     styles,
		state:      StatePrompting,
	}, nil
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Run prints the banner and handles lines until the exit command or the
// end of input. End of input ends the session like exit does. Other read
// errors and write errors are returned. The context is checked before
// every prompt.
func (s *Session) Run(ctx context.Context) error {
	if s.state == StateTerminated {
		return errors.New("session already terminated")
	}
	logger.Info("Session %s started", s.id)

	if s.showNotice {
		s.println(s.styles.paint(s.styles.Notice, s.messages.License))
		s.println("")
	}
	s.println(s.styles.paint(s.styles.Banner, s.messages.Welcome))

	for s.state != StateTerminated {
		if err := ctx.Err(); err != nil {
			_ = s.out.Flush()
			return err
		}

		s.state = StatePrompting
		s.print(s.styles.paint(s.styles.Prompt, s.prompt))
		if err := s.flush(); err != nil {
			return err
		}

		line, err := s.readLine()
		if errors.Is(err, io.EOF) {
			logger.Debug("Session %s reached end of input", s.id)
			s.println("")
			s.terminate()
			break
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		s.state = StateDispatching
		s.dispatch(line)
	}

	logger.Info("Session %s terminated", s.id)
	return s.flush()
}

// dispatch handles one line of input.
func (s *Session) dispatch(line string) {
	switch line {
	case "":
		return
	case domain.CommandExit:
		logger.Debug("Session %s: exit requested", s.id)
		s.terminate()
	case domain.CommandInfo:
		logger.Debug("Session %s: info requested", s.id)
		s.println(s.styles.paint(s.styles.Banner, s.messages.Info))
	default:
		result, err := s.calc.Calculate(line)
		if err != nil {
			s.println(s.styles.paint(s.styles.Error, s.messages.Error))
			return
		}
		s.println(domain.FormatResult(result))
	}
}

func (s *Session) terminate() {
	s.println(s.styles.paint(s.styles.Banner, s.messages.Goodbye))
	s.println("")
	s.state = StateTerminated
}

// readLine reads one line without its line ending. A final line without
// a trailing newline is returned before io.EOF.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Write errors are sticky in bufio.Writer and surface on flush.
func (s *Session) print(text string) {
	_, _ = s.out.WriteString(text)
}

func (s *Session) println(text string) {
	_, _ = s.out.WriteString(text)
	_ = s.out.WriteByte('\n')
}

func (s *Session) flush() error {
	if err := s.out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
