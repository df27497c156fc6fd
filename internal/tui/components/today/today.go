package today

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/heainKang/daily-me-app/internal/journal"
	"github.com/heainKang/daily-me-app/internal/models"
)

type AnswerItemMsg struct {
	Item models.CatalogItem
}

type RecordMoodMsg struct{}

type Item struct {
	CatalogItem models.CatalogItem
	Kind        string // "명언" or "질문"
	Answered    models.Option
}

func (i Item) Title() string {
	if i.Answered != "" {
		return "✓ " + i.CatalogItem.Text
	}
	return "○ " + i.CatalogItem.Text
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%s · %s · A: %s  B: %s", i.Kind, i.CatalogItem.Slot, i.CatalogItem.OptionA.Label, i.CatalogItem.OptionB.Label)
	if i.Answered != "" {
		desc += fmt.Sprintf("  (선택: %s)", i.Answered)
	}
	return desc
}

func (i Item) FilterValue() string { return i.CatalogItem.Text }

type KeyMap struct {
	Answer key.Binding
	Mood   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Answer: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "answer"),
		),
		Mood: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "record mood"),
		),
	}
}

// Model lists today's quotes and questions.
type Model struct {
	list     list.Model
	keys     KeyMap
	greeting string
	mood     *models.Response
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Answer, keys.Mood}
	}
	return Model{list: l, keys: keys}
}

// SetDay replaces the listed items with view's.
func (m *Model) SetDay(view journal.DayView, greeting string) {
	m.greeting = greeting
	m.mood = view.Mood

	items := make([]list.Item, 0, len(view.Quotes)+len(view.Questions))
	for _, q := range view.Quotes {
		items = append(items, Item{CatalogItem: q, Kind: "명언", Answered: view.Answered[q.ID]})
	}
	for _, q := range view.Questions {
		items = append(items, Item{CatalogItem: q, Kind: "질문", Answered: view.Answered[q.ID]})
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Answer):
			if i, ok := m.list.SelectedItem().(Item); ok && i.Answered == "" {
				return m, func() tea.Msg { return AnswerItemMsg{Item: i.CatalogItem} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Mood):
			if m.mood == nil {
				return m, func() tea.Msg { return RecordMoodMsg{} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// MoodRecorded reports whether today's mood is already stored.
func (m Model) MoodRecorded() bool {
	return m.mood != nil
}

func (m Model) View() string {
	header := m.greeting + "\n"
	if m.mood != nil {
		header += fmt.Sprintf("오늘의 기분: %s\n", m.mood.Mood)
	} else {
		header += "오늘의 기분을 기록해 주세요 (m)\n"
	}
	return header + "\n" + m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height-3)
}
