package display

import (
	"os"
	"runtime"
	"strings"

	"golang.org/x/term"
)

// termEnv reads the viewport from a real terminal attached to stdout.
type termEnv struct {
	out *os.File
}

// Term returns an Environment backed by the terminal on stdout. When stdout
// is not a terminal the environment behaves as headless: zero dimensions,
// the ssr sentinel appended to the ident, and no resize notifications.
func Term() Environment {
	return &termEnv{out: os.Stdout}
}

func (e *termEnv) HasViewport() bool {
	return term.IsTerminal(int(e.out.Fd()))
}

func (e *termEnv) Size() (int, int) {
	if !e.HasViewport() {
		return 0, 0
	}
	w, h, err := term.GetSize(int(e.out.Fd()))
	if err != nil {
		return 0, 0
	}
	return w, h
}

// Ident composes the identification string from the OS token and the
// TERM_PROGRAM / TERM environment variables, lowercased so the
// case-sensitive platform token matches behave predictably.
func (e *termEnv) Ident() string {
	if !e.HasViewport() {
		return SSRIdent
	}
	parts := []string{osToken()}
	if p := os.Getenv("TERM_PROGRAM"); p != "" {
		parts = append(parts, strings.ToLower(p))
	}
	if t := os.Getenv("TERM"); t != "" {
		parts = append(parts, strings.ToLower(t))
	}
	return strings.Join(parts, " ")
}

func osToken() string {
	switch runtime.GOOS {
	case "windows":
		return "win"
	case "darwin":
		return "mac"
	default:
		return runtime.GOOS
	}
}

// mouseTerms are TERM prefixes known to support mouse reporting, the
// terminal analogue of a touch capability.
var mouseTerms = []string{"xterm", "screen", "tmux", "rxvt", "alacritty", "kitty", "wezterm", "foot"}

func (e *termEnv) Touch() bool {
	if !e.HasViewport() {
		return false
	}
	t := strings.ToLower(os.Getenv("TERM"))
	for _, p := range mouseTerms {
		if strings.HasPrefix(t, p) {
			return true
		}
	}
	return false
}

func (e *termEnv) CanObserve() bool {
	return e.HasViewport()
}
