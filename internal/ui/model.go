package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"driftbg/internal/engine"
)

// bandHeight is the number of terminal rows the animated background band
// occupies above the content.
const bandHeight = 7

// Model is the Bubbletea model for the driftbg demo. The viewport scroll
// position is the engine's progress signal; each render frame samples the
// engine's latest snapshot.
type Model struct {
	engine   *engine.Engine
	viewport viewport.Model
	snap     engine.Snapshot
	width    int
	height   int
	ready    bool
	quitting bool
}

// New creates a model around a constructed (not necessarily started)
// engine.
func New(eng *engine.Engine) Model {
	return Model{engine: eng, snap: eng.Snapshot()}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(), tea.SetWindowTitle("driftbg"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			m.quitting = true
			m.engine.Stop()
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
		switch msg.String() {
		case "g":
			m.viewport.GotoTop()
		case "G":
			m.viewport.GotoBottom()
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			m.pushProgress()
			return m, cmd
		}
		m.pushProgress()
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.pushProgress()
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := msg.Height - bandHeight - 2
		if contentHeight < 3 {
			contentHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, contentHeight)
			m.viewport.SetContent(contentStyle.Render(demoContent()))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = contentHeight
		}
		m.pushProgress()
		return m, nil

	case frameMsg:
		m.snap = m.engine.Snapshot()
		return m, frameCmd()
	}

	return m, nil
}

// pushProgress forwards the viewport scroll position to the engine.
func (m *Model) pushProgress() {
	if m.ready {
		m.engine.SetProgress(m.viewport.ScrollPercent())
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "\n  loading..."
	}

	var b strings.Builder
	b.WriteString(renderBand(m.snap, m.width))
	b.WriteByte('\n')
	b.WriteString(m.viewport.View())
	b.WriteByte('\n')
	b.WriteString("  " + headerStyle.Render("driftbg") + "  " +
		helpStyle.Render(fmt.Sprintf("%3.0f%%  %s", m.viewport.ScrollPercent()*100, helpText())))
	return b.String()
}
