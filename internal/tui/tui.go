package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/turnlog/internal/controller"
	"github.com/tatianab/turnlog/internal/state"
)

type sessionState int

const (
	stateLoading sessionState = iota
	stateBrowsing
	stateNotice
)

type model struct {
	state     sessionState
	store     *state.Store
	ctl       *controller.Controller
	textInput textinput.Model
	viewport  viewport.Model
	spinner   spinner.Model
	cursor    int    // index into the player list; -1 = no selection
	notice    string // blocking submission error, dismissed by any key
	status    string // transient line, e.g. where a transcript was written
	width     int
	height    int
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true)

	statsStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	turnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	actionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Bold(true)

	noticeStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#FF5F5F")).
			Padding(1, 2)
)

func NewModel(store *state.Store, ctl *controller.Controller) model {
	ti := textinput.New()
	ti.Placeholder = "What does your character do?"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		state:     stateLoading,
		store:     store,
		ctl:       ctl,
		textInput: ti,
		spinner:   sp,
		cursor:    -1,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.ctl.LoadPlayers())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateNotice {
			// Blocking notice: any key acknowledges it. The draft is still
			// in the input, ready to resubmit.
			m.notice = ""
			m.state = stateBrowsing
			return m, nil
		}

		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit

		case tea.KeyUp, tea.KeyDown:
			return m.moveSelection(msg.Type == tea.KeyDown)

		case tea.KeyEsc:
			m.cursor = -1
			m.status = ""
			return m, m.ctl.Select("")

		case tea.KeyEnter:
			m.status = ""
			return m, m.ctl.Submit(m.store.SelectedID(), m.textInput.Value())

		case tea.KeyCtrlR:
			m.status = ""
			return m, tea.Batch(m.ctl.LoadPlayers(), m.spinner.Tick)

		case tea.KeyCtrlS:
			if path := m.ctl.ExportTranscript(); path != "" {
				m.status = "Transcript saved to " + path
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = int(float64(msg.Width) * 0.5)
		m.viewport.Height = msg.Height - 8
		m.viewport.SetContent(m.renderLog())

	case spinner.TickMsg:
		if m.state == stateLoading || m.store.LoadingPlayers() {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case controller.PlayersFetchedMsg:
		cmd = m.ctl.HandlePlayersFetched(msg)
		if m.state == stateLoading {
			m.state = stateBrowsing
		}
		if m.viewport.Width == 0 && m.width > 0 {
			m.viewport = viewport.New(int(float64(m.width)*0.5), m.height-8)
			m.viewport.SetContent(m.renderLog())
		}
		return m, cmd

	case controller.ActionsFetchedMsg:
		m.ctl.HandleActionsFetched(msg)
		m.viewport.SetContent(m.renderLog())
		m.viewport.GotoBottom()
		return m, nil

	case controller.ActionCreatedMsg:
		if msg.Err != nil {
			m.notice = fmt.Sprintf("Could not save action: %v", msg.Err)
			m.state = stateNotice
			return m, nil
		}
		cmd = m.ctl.HandleActionCreated(msg)
		m.textInput.Reset()
		return m, cmd
	}

	if m.state == stateBrowsing {
		m.textInput, cmd = m.textInput.Update(msg)
		m.store.SetDraft(m.textInput.Value())
		return m, cmd
	}

	return m, nil
}

// moveSelection shifts the cursor through the player list. Every move is a
// selection change, so each one triggers the controller.
func (m model) moveSelection(down bool) (tea.Model, tea.Cmd) {
	players := m.store.Players()
	if len(players) == 0 {
		return m, nil
	}

	if down {
		if m.cursor < len(players)-1 {
			m.cursor++
		}
	} else {
		if m.cursor > 0 {
			m.cursor--
		}
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	m.status = ""
	return m, m.ctl.Select(players[m.cursor].ID)
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateLoading:
		s = fmt.Sprintf("\n  %s Loading players...\n", m.spinner.View())

	case stateNotice:
		s = noticeStyle.Render(m.notice) + "\n\n" +
			helpStyle.Render("Press any key to continue. Your text is still in the input.")

	case stateBrowsing:
		left := m.renderPlayers()
		right := lipgloss.JoinVertical(lipgloss.Left,
			m.renderStats(),
			m.viewport.View(),
		)
		mainView := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

		help := helpStyle.Render("up/down: pick player · enter: log action · ctrl+s: export · ctrl+r: reload · esc: clear · ctrl+c: quit")

		lines := []string{mainView, "\n" + m.textInput.View()}
		if m.status != "" {
			lines = append(lines, helpStyle.Render(m.status))
		}
		lines = append(lines, "\n"+help)
		s = lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	return "\n" + s + "\n"
}

func (m model) renderPlayers() string {
	out := titleStyle.Render("PLAYERS") + "\n"

	if err := m.store.Err(); err != "" {
		out += errorStyle.Render(err) + "\n"
	}
	if m.store.LoadingPlayers() {
		out += m.spinner.View() + " refreshing...\n"
	}

	players := m.store.Players()
	if len(players) == 0 {
		out += "(no players)\n"
		return out
	}

	for i, p := range players {
		line := p.Name
		if i == m.cursor && p.ID == m.store.SelectedID() {
			line = cursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		out += line + "\n"
	}
	return out
}

func (m model) renderStats() string {
	p := m.store.Selected()
	if p == nil {
		return statsStyle.Render("Pick a player with up/down.")
	}

	content := titleStyle.Render(p.Name) + "\n" +
		fmt.Sprintf("HP:           %d\n", p.HP) +
		fmt.Sprintf("Strength:     %d\n", p.Strength) +
		fmt.Sprintf("Dexterity:    %d\n", p.Dexterity) +
		fmt.Sprintf("Intelligence: %d\n", p.Intelligence) +
		fmt.Sprintf("Gold:         %d", p.Gold)

	return statsStyle.Render(content)
}

func (m model) renderLog() string {
	actions := m.store.Actions()
	if len(actions) == 0 {
		return turnStyle.Render("(no actions logged)")
	}

	out := ""
	for _, a := range actions {
		line := turnStyle.Render(fmt.Sprintf("[%d] ", a.TurnNumber)) +
			actionStyle.Render(a.ActionText)
		if a.CreatedAt != "" {
			line += turnStyle.Render("  " + a.CreatedAt)
		}
		out += line + "\n"
	}
	return out
}

func Run(store *state.Store, ctl *controller.Controller) error {
	p := tea.NewProgram(NewModel(store, ctl), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
