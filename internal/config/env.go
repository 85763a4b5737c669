package config

import (
    "os"

    "github.com/charmbracelet/lipgloss"
)

// Env supplies the two environment signals preferences depend on.
type Env interface {
    Locale() string
    PrefersDark() bool
}

// SystemEnv reads the process environment and the terminal.
type SystemEnv struct{}

// Locale follows POSIX precedence: LC_ALL, then LC_MESSAGES, then LANG.
func (SystemEnv) Locale() string {
    for _, k := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
        if v := os.Getenv(k); v != "" {
            return v
        }
    }
    return ""
}

// PrefersDark asks the terminal for its background color. lipgloss caches
// the answer after the first query.
func (SystemEnv) PrefersDark() bool {
    return lipgloss.HasDarkBackground()
}

// StaticEnv is an Env with fixed answers.
type StaticEnv struct {
    Loc  string
    Dark bool
}

func (e StaticEnv) Locale() string    { return e.Loc }
func (e StaticEnv) PrefersDark() bool { return e.Dark }
