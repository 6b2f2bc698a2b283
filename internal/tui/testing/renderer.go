// Package testing drives Bubble Tea models in tests without a terminal.
package testing

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// TestRenderer captures the output of a Bubble Tea component without requiring a real terminal.
type TestRenderer struct {
	// Output contains the last rendered view
	Output string

	// Commands contains all commands returned by Update calls
	Commands []tea.Cmd

	// Messages contains all messages sent to the component
	Messages []tea.Msg

	// UpdateCount tracks how many times Update was called
	UpdateCount int
}

// NewTestRenderer creates a new test renderer.
func NewTestRenderer() *TestRenderer {
	return &TestRenderer{
		Commands: make([]tea.Cmd, 0),
		Messages: make([]tea.Msg, 0),
	}
}

// Render renders a component and captures its output.
func (r *TestRenderer) Render(model tea.Model) string {
	r.Output = model.View()
	return r.Output
}

// Update sends a message to the component and captures the result.
func (r *TestRenderer) Update(model tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	r.Messages = append(r.Messages, msg)
	r.UpdateCount++

	newModel, cmd := model.Update(msg)
	if cmd != nil {
		r.Commands = append(r.Commands, cmd)
	}

	// Update the rendered output
	r.Output = newModel.View()

	return newModel, cmd
}

// ProcessCommands executes all pending commands, feeds their messages back
// into the model, and returns the updated model with the messages it saw.
// Batches are flattened; commands produced while processing are not run.
func (r *TestRenderer) ProcessCommands(model tea.Model) (tea.Model, []tea.Msg) {
	pending := r.Commands
	r.Commands = nil

	var messages []tea.Msg
	for _, msg := range Collect(pending...) {
		messages = append(messages, msg)
		model, _ = r.Update(model, msg)
	}

	// Drop follow-ups such as spinner ticks.
	r.Commands = nil

	return model, messages
}

// Collect runs commands and returns their messages, expanding batches.
func Collect(cmds ...tea.Cmd) []tea.Msg {
	var messages []tea.Msg
	for _, cmd := range cmds {
		if cmd == nil {
			continue
		}
		switch msg := cmd().(type) {
		case nil:
		case tea.BatchMsg:
			messages = append(messages, Collect(msg...)...)
		default:
			messages = append(messages, msg)
		}
	}
	return messages
}

// LastCommand returns the most recent command, or nil if no commands were generated.
func (r *TestRenderer) LastCommand() tea.Cmd {
	if len(r.Commands) == 0 {
		return nil
	}
	return r.Commands[len(r.Commands)-1]
}

// StripANSI removes ANSI escape codes from the output for content-only testing.
func (r *TestRenderer) StripANSI() string {
	return StripANSI(r.Output)
}

// Lines returns the output split by newlines.
func (r *TestRenderer) Lines() []string {
	return strings.Split(r.Output, "\n")
}

// Reset clears all captured data.
func (r *TestRenderer) Reset() {
	r.Output = ""
	r.Commands = nil
	r.Messages = nil
	r.UpdateCount = 0
}
