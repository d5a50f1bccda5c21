package repl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/calc/internal/core/domain"
	"github.com/custodia-labs/calc/internal/core/services"
)

func testMessages() domain.MessageSet {
	return domain.MessageSet{
		License: "LICENSE\nNO WARRANTY",
		Welcome: "Welcome",
		Goodbye: "Bye",
		Error:   "Error!",
		Info:    "calc info\nmore info",
	}
}

// runSession runs a session over the given input and returns its output.
func runSession(t *testing.T, input string, mutate func(*Config)) (string, *Session, error) {
	t.Helper()

	var out bytes.Buffer
	cfg := Config{
		Input:      strings.NewReader(input),
		Output:     &out,
		Calculator: services.NewCalculatorService(),
		Messages:   testMessages(),
	}
	if mutate != nil {
		mutate(&cfg)
	}

	session, err := NewSession(cfg)
	require.NoError(t, err)

	err = session.Run(context.Background())
	return out.String(), session, err
}

func TestSession_EvaluatesAndExits(t *testing.T) {
	out, session, err := runSession(t, "3 + 4\nexit\n", nil)

	require.NoError(t, err)
	assert.Equal(t, "Welcome\ncalc $> 7\ncalc $> Bye\n\n", out)
	assert.Equal(t, StateTerminated, session.State())
}

func TestSession_Results(t *testing.T) {
	tests := []struct {
		line     string
		expected string
	}{
		{"3 + 4", "7"},
		{"10 / 4", "2.5"},
		{"2 ^ 10", "1024"},
		{"9 # ", "3"},
		{"9 #", "3"},
		{"5 / 0", "inf"},
		{"-5 / 0", "-inf"},
		{"0 / 0", "NaN"},
		{"-4 # ", "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			out, _, err := runSession(t, tt.line+"\nexit\n", nil)

			require.NoError(t, err)
			assert.Equal(t, "Welcome\ncalc $> "+tt.expected+"\ncalc $> Bye\n\n", out)
		})
	}
}

func TestSession_ParseFailuresContinue(t *testing.T) {
	for _, line := range []string{"abc + 2", "3 & 2", "1 + 2 3 4", "   ", " exit", "EXIT"} {
		t.Run(line, func(t *testing.T) {
			out, _, err := runSession(t, line+"\n3 * 3\nexit\n", nil)

			require.NoError(t, err)
			assert.Equal(t, "Welcome\ncalc $> Error!\ncalc $> 9\ncalc $> Bye\n\n", out)
		})
	}
}

func TestSession_EmptyLineIsSilent(t *testing.T) {
	out, _, err := runSession(t, "\n\nexit\n", nil)

	require.NoError(t, err)
	assert.Equal(t, "Welcome\ncalc $> calc $> calc $> Bye\n\n", out)
}

func TestSession_Info(t *testing.T) {
	out, _, err := runSession(t, "info\n1 + 1\nexit\n", nil)

	require.NoError(t, err)
	assert.Equal(t, "Welcome\ncalc $> calc info\nmore info\ncalc $> 2\ncalc $> Bye\n\n", out)
}

func TestSession_NoPromptAfterExit(t *testing.T) {
	out, _, err := runSession(t, "exit\n3 + 4\n", nil)

	require.NoError(t, err)
	assert.Equal(t, "Welcome\ncalc $> Bye\n\n", out)
}

func TestSession_SameLineTwiceGivesSameOutput(t *testing.T) {
	out, _, err := runSession(t, "10 / 3\n10 / 3\nexit\n", nil)

	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "calc $> 3.3333333333333335", lines[1])
	assert.Equal(t, lines[1], lines[2])
}

func TestSession_ShowNotice(t *testing.T) {
	out, _, err := runSession(t, "exit\n", func(cfg *Config) {
		cfg.ShowNotice = true
	})

	require.NoError(t, err)
	assert.Equal(t, "LICENSE\nNO WARRANTY\n\nWelcome\ncalc $> Bye\n\n", out)
}

func TestSession_EndOfInputTerminatesGracefully(t *testing.T) {
	out, session, err := runSession(t, "3 + 4\n", nil)

	require.NoError(t, err)
	assert.Equal(t, "Welcome\ncalc $> 7\ncalc $> \nBye\n\n", out)
	assert.Equal(t, StateTerminated, session.State())
}

func TestSession_FinalLineWithoutNewline(t *testing.T) {
	out, _, err := runSession(t, "2 * 21", nil)

	require.NoError(t, err)
	assert.Equal(t, "Welcome\ncalc $> 42\ncalc $> \nBye\n\n", out)
}

func TestSession_CarriageReturnLineEndings(t *testing.T) {
	out, _, err := runSession(t, "3 + 4\r\nexit\r\n", nil)

	require.NoError(t, err)
	assert.Equal(t, "Welcome\ncalc $> 7\ncalc $> Bye\n\n", out)
}

func TestSession_CustomPrompt(t *testing.T) {
	out, _, err := runSession(t, "exit\n", func(cfg *Config) {
		cfg.Prompt = "> "
	})

	require.NoError(t, err)
	assert.Equal(t, "Welcome\n> Bye\n\n", out)
}

func TestSession_StrictOperators(t *testing.T) {
	calc := services.NewCalculatorService()
	calc.SetStrictOperators(true)

	out, _, err := runSession(t, "3 +5 4\nexit\n", func(cfg *Config) {
		cfg.Calculator = calc
	})

	require.NoError(t, err)
	assert.Equal(t, "Welcome\ncalc $> Error!\ncalc $> Bye\n\n", out)
}

func TestSession_ColourStylesOnBufferArePlain(t *testing.T) {
	var out bytes.Buffer
	session, err := NewSession(Config{
		Input:      strings.NewReader("abc\nexit\n"),
		Output:     &out,
		Calculator: services.NewCalculatorService(),
		Messages:   testMessages(),
		ShowNotice: true,
		Styles:     NewStyles(&out, nil),
	})
	require.NoError(t, err)

	require.NoError(t, session.Run(context.Background()))
	assert.Equal(t, "LICENSE\nNO WARRANTY\n\nWelcome\ncalc $> Error!\ncalc $> Bye\n\n", out.String())
}

func TestSession_InfoUsesBannerStyle(t *testing.T) {
	styles := &Styles{
		Prompt: lipgloss.NewStyle(),
		Banner: lipgloss.NewStyle().Transform(strings.ToUpper),
		Notice: lipgloss.NewStyle(),
		Error:  lipgloss.NewStyle(),
	}

	out, _, err := runSession(t, "info\nexit\n", func(cfg *Config) {
		cfg.Styles = styles
	})

	require.NoError(t, err)
	assert.Equal(t, "WELCOME\ncalc $> CALC INFO\nMORE INFO\ncalc $> BYE\n\n", out)
}

// errReader fails every read with err.
type errReader struct {
	err error
}

func (r errReader) Read(_ []byte) (int, error) {
	return 0, r.err
}

func TestSession_ReadErrorIsReturned(t *testing.T) {
	readErr := errors.New("terminal gone")

	_, session, err := runSession(t, "", func(cfg *Config) {
		cfg.Input = errReader{err: readErr}
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
	assert.Contains(t, err.Error(), "read input")
	assert.NotEqual(t, StateTerminated, session.State())
}

// errWriter fails every write.
type errWriter struct{}

func (errWriter) Write(_ []byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestSession_WriteErrorIsReturned(t *testing.T) {
	session, err := NewSession(Config{
		Input:      strings.NewReader("exit\n"),
		Output:     errWriter{},
		Calculator: services.NewCalculatorService(),
		Messages:   testMessages(),
	})
	require.NoError(t, err)

	err = session.Run(context.Background())

	assert.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestSession_CancelledContext(t *testing.T) {
	var out bytes.Buffer
	session, err := NewSession(Config{
		Input:      strings.NewReader("3 + 4\n"),
		Output:     &out,
		Calculator: services.NewCalculatorService(),
		Messages:   testMessages(),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = session.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "Welcome\n", out.String())
}

func TestSession_RunAfterTerminated(t *testing.T) {
	_, session, err := runSession(t, "exit\n", nil)
	require.NoError(t, err)

	err = session.Run(context.Background())

	assert.Error(t, err)
}

func TestNewSession_Validation(t *testing.T) {
	valid := Config{
		Input:      strings.NewReader(""),
		Output:     &bytes.Buffer{},
		Calculator: services.NewCalculatorService(),
		Messages:   testMessages(),
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing input", func(c *Config) { c.Input = nil }},
		{"missing output", func(c *Config) { c.Output = nil }},
		{"missing calculator", func(c *Config) { c.Calculator = nil }},
		{"incomplete messages", func(c *Config) { c.Messages.Error = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			_, err := NewSession(cfg)

			assert.Error(t, err)
		})
	}
}

func TestNewSession_AssignsID(t *testing.T) {
	a, err := NewSession(Config{
		Input:      strings.NewReader(""),
		Output:     &bytes.Buffer{},
		Calculator: services.NewCalculatorService(),
		Messages:   testMessages(),
	})
	require.NoError(t, err)
	b, err := NewSession(Config{
		Input:      strings.NewReader(""),
		Output:     &bytes.Buffer{},
		Calculator: services.NewCalculatorService(),
		Messages:   testMessages(),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, a.id)
	assert.NotEqual(t, a.id, b.id)
	assert.Equal(t, StatePrompting, a.State())
}
