// Package tui is the interactive front-end: a Bubble Tea program around one
// board.
package tui

import (
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/idilsaglam/projboard/internal/board"
	"github.com/idilsaglam/projboard/internal/surface"
	"github.com/idilsaglam/projboard/internal/ui"
	"github.com/idilsaglam/projboard/internal/view"
)

// Options configure the program.
type Options struct {
	Templates *surface.Library
	Log       *slog.Logger
}

// alertBox is the failure channel. The form alerts during a submit; the model
// picks the message up right after and blocks input until it is dismissed.
type alertBox struct{ msg string }

func (a *alertBox) Alert(msg string) { a.msg = msg }

func (a *alertBox) take() string {
	msg := a.msg
	a.msg = ""
	return msg
}

var fieldOrder = []string{view.FieldTitle, view.FieldDescription, view.FieldPeople}

var placeholders = map[string]string{
	view.FieldTitle:       "What is the project called?",
	view.FieldDescription: "At least 5 characters",
	view.FieldPeople:      "1 to 5",
}

type modelTUI struct {
	board  *board.Board
	alerts *alertBox
	log    *slog.Logger

	inputs []textinput.Model
	fields []*surface.Node
	focus  int

	alert string // shown as a modal until dismissed

	width, height int
	keys          keyMap
	help          help.Model
}

func newModel(opt Options) (modelTUI, error) {
	if opt.Log == nil {
		opt.Log = slog.New(slog.DiscardHandler)
	}
	alerts := &alertBox{}
	b, err := board.New(board.Config{Templates: opt.Templates, Alert: alerts, Log: opt.Log})
	if err != nil {
		return modelTUI{}, err
	}

	w, h := widthHeight()
	m := modelTUI{
		board:  b,
		alerts: alerts,
		log:    opt.Log,
		width:  w,
		height: h,
		keys:   newKeyMap(),
		help:   help.New(),
	}
	for _, id := range fieldOrder {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[id]
		ti.CharLimit = 200
		m.inputs = append(m.inputs, ti)
		m.fields = append(m.fields, b.Input.Element().Find(id))
	}
	m.inputs[0].Focus()
	return m, nil
}

// Run starts the program and blocks until the user quits.
func Run(opt Options) error {
	m, err := newModel(opt)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(modelTUI); ok {
		fm.log.Info("session ended", "projects", fm.board.Store.Len())
	}
	return nil
}

func (m modelTUI) Init() tea.Cmd { return textinput.Blink }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.alert != "" {
			switch {
			case msg.String() == "ctrl+c":
				return m, tea.Quit
			case key.Matches(msg, m.keys.Dismiss):
				m.alert = ""
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			cmd := m.setFocus((m.focus + 1) % len(m.inputs))
			return m, cmd
		case key.Matches(msg, m.keys.Prev):
			cmd := m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, cmd
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.fields[m.focus].SetFieldValue(m.inputs[m.focus].Value())
	return m, cmd
}

func (m *modelTUI) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

// submit fires the form's submit event and copies the field nodes back into
// the text inputs, which clears them after a successful add.
func (m modelTUI) submit() (tea.Model, tea.Cmd) {
	if err := m.board.Submit(); err != nil {
		m.log.Error("submit", "error", err)
		m.alert = err.Error()
		return m, nil
	}
	for i, f := range m.fields {
		m.inputs[i].SetValue(f.FieldValue())
	}
	if msg := m.alerts.take(); msg != "" {
		m.alert = msg
		return m, nil
	}
	cmd := m.setFocus(0)
	return m, cmd
}

func (m modelTUI) View() string {
	width := m.width - 2
	var b strings.Builder
	b.WriteString(ui.Summary(len(m.board.Active.Projects()), len(m.board.Finished.Projects())))
	b.WriteString("\n")
	b.WriteString(ui.Render(m.board.Page.Root, ui.RenderOptions{
		Width: width,
		Field: m.renderField,
	}))
	b.WriteString("\n")
	if m.alert != "" {
		b.WriteString(alertPanel(m.alert, width))
		b.WriteString("\n")
	}
	b.WriteString(ui.Current().Muted.Render(m.help.View(m.keys)))
	return b.String()
}

func (m modelTUI) renderField(n *surface.Node) string {
	for i, f := range m.fields {
		if f == n {
			prefix := "  "
			if i == m.focus {
				prefix = ui.Current().Selected.Render(ui.Current().SymFocus) + " "
			}
			return prefix + m.inputs[i].View()
		}
	}
	return n.FieldValue()
}

func alertPanel(msg string, width int) string {
	t := ui.Current()
	style := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("9")).
		Padding(0, 1)
	if width > 2 {
		style = style.Width(width - 2)
	}
	return style.Render(t.Error.Render(t.SymFail+" "+msg) + "\n" + t.Muted.Render("press enter to continue"))
}

func widthHeight() (int, int) {
	w, h := 80, 24
	if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		w, h = tw, th
	}
	return w, h
}
