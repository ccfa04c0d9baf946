package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"wkbscope/internal/tui"
)

const configFile = "wkbscope.toml"

func main() {
	lg := newLogger()
	opts, err := loadOptions(configFile)
	if err != nil {
		log.Fatal(err)
	}
	var m tea.Model
	if len(os.Args) > 1 {
		m = tui.NewWithPath(opts, lg, os.Args[1])
	} else {
		m = tui.New(opts, lg)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}

// newLogger writes to the file named by WKBSCOPE_LOG. Logging is off
// otherwise: stdout belongs to the terminal UI.
func newLogger() zerolog.Logger {
	path := os.Getenv("WKBSCOPE_LOG")
	if path == "" {
		return zerolog.Nop()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Logger()
}
