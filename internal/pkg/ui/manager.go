// Package ui provides console output and the confirmation prompt for gcommit.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/gcommit/gcommit/internal/pkg/errors"
)

// Manager defines the interface for console interactions.
type Manager interface {
	ShowMessage(message string)
	PromptConfirm(question string) (bool, error)
	ShowInfo(message string)
	ShowSuccess(message string)
}

// ConsoleManager implements Manager against standard streams.
type ConsoleManager struct {
	in           *bufio.Reader
	out          io.Writer
	colorEnabled bool
	styles       *styles
}

// styles holds the lipgloss styles for console rendering.
type styles struct {
	title   lipgloss.Style
	message lipgloss.Style
	success lipgloss.Style
	info    lipgloss.Style
}

// NewConsoleManager creates a ConsoleManager bound to the process streams.
func NewConsoleManager(colorEnabled bool) *ConsoleManager {
	return NewConsoleManagerWithIO(os.Stdin, os.Stdout, colorEnabled)
}

// NewConsoleManagerWithIO creates a ConsoleManager with explicit streams.
func NewConsoleManagerWithIO(in io.Reader, out io.Writer, colorEnabled bool) *ConsoleManager {
	m := &ConsoleManager{
		in:           bufio.NewReader(in),
		out:          out,
		colorEnabled: colorEnabled,
	}
	m.initStyles()
	return m
}

// initStyles initializes the lipgloss styles.
func (m *ConsoleManager) initStyles() {
	if !m.colorEnabled {
		m.styles = &styles{
			title:   lipgloss.NewStyle(),
			message: lipgloss.NewStyle(),
			success: lipgloss.NewStyle(),
			info:    lipgloss.NewStyle(),
		}
		return
	}

	m.styles = &styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		message: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")),
		success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")),
		info: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
	}
}

// ShowMessage prints the generated commit message under a fixed header.
// The message text itself is printed unmodified.
func (m *ConsoleManager) ShowMessage(message string) {
	fmt.Fprintln(m.out, m.styles.title.Render("Generated commit message:"))
	fmt.Fprintln(m.out, m.styles.message.Render(message))
}

// PromptConfirm prints the question and reads exactly one line from input.
// The answer is trimmed and lower-cased; only "y" confirms. A failed read
// is an error, never an implicit no.
func (m *ConsoleManager) PromptConfirm(question string) (bool, error) {
	fmt.Fprintln(m.out, question)

	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return false, apperrors.NewInputError(err)
	}

	return strings.ToLower(strings.TrimSpace(line)) == "y", nil
}

// ShowInfo prints an informational line to standard output.
func (m *ConsoleManager) ShowInfo(message string) {
	fmt.Fprintln(m.out, m.styles.info.Render(message))
}

// ShowSuccess prints a success line to standard output.
func (m *ConsoleManager) ShowSuccess(message string) {
	fmt.Fprintln(m.out, m.styles.success.Render(message))
}
