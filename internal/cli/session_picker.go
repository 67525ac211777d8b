package cli

import (
	"errors"
	"fmt"
	"time"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wethinkt/codex-resume/internal/i18n"
	"github.com/wethinkt/codex-resume/internal/resume"
)

// pickerTitleWidth bounds the session preview shown as the item title.
const pickerTitleWidth = 60

// SessionPickerItem represents a selectable session in the picker.
type SessionPickerItem struct {
	Index   int
	Session resume.Session
	Now     time.Time
}

func (i SessionPickerItem) Title() string {
	if i.Session.Preview != "" {
		return resume.Truncate(i.Session.Preview, pickerTitleWidth)
	}
	return i.Session.ID
}

func (i SessionPickerItem) Description() string {
	turns := i18n.Tn("picker.turns", "{{.Count}} turn", "{{.Count}} turns", i.Session.Turns)
	return fmt.Sprintf("%s | %s | %s", i18n.RelativeTime(i.Session.ModifiedAt, i.Now), turns, i.Session.WorkDir)
}

func (i SessionPickerItem) FilterValue() string {
	return i.Session.Preview + " " + i.Session.WorkDir + " " + i.Session.ID
}

// sessionPickerModel is the bubbletea model for session selection.
type sessionPickerModel struct {
	list     list.Model
	selected *SessionPickerItem
	quitting bool
}

func newSessionPickerModel(sessions []resume.Session, now time.Time) sessionPickerModel {
	items := make([]list.Item, len(sessions))
	for i, s := range sessions {
		items[i] = SessionPickerItem{Index: i, Session: s, Now: now}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color("#9d7aff")).
		Bold(true)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color("#666666"))

	l := list.New(items, delegate, 80, 20)
	l.SetShowTitle(true)
	l.Title = i18n.T("picker.title", "Resume a Codex session (press / to search)")
	l.SetShowStatusBar(false)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)

	return sessionPickerModel{list: l}
}

func (m sessionPickerModel) Init() tea.Cmd {
	return nil
}

func (m sessionPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(SessionPickerItem); ok {
				m.selected = &item
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m sessionPickerModel) View() tea.View {
	if m.quitting && m.selected == nil {
		return tea.NewView(i18n.T("picker.cancelled", "Cancelled.") + "\n")
	}
	return tea.NewView(m.list.View())
}

// PickSessionInteractive shows a full-screen picker over sessions, which
// are expected in display order. It returns the chosen index or Quit.
func PickSessionInteractive(sessions []resume.Session, now time.Time) (int, error) {
	if len(sessions) == 0 {
		return 0, errors.New("no sessions to pick from")
	}

	p := tea.NewProgram(newSessionPickerModel(sessions, now))
	finalModel, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("run session picker: %w", err)
	}

	m := finalModel.(sessionPickerModel)
	if m.selected == nil {
		return Quit, nil
	}
	return m.selected.Index, nil
}

// CanPick reports whether the interactive picker can run: both stdin and
// stdout must be terminals.
func CanPick(in, out any) bool {
	return isTerminal(in) && isTerminal(out)
}
