package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/arboretum/internal/dashboard"
	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

type categoryItem struct {
	group dashboard.CategoryGroup
}

func (i categoryItem) Title() string { return i.group.Category }

func (i categoryItem) Description() string {
	open := dashboard.ActiveTaskCount(i.group.Tasks)
	return fmt.Sprintf("%d tasks · %d open", len(i.group.Tasks), open)
}

func (i categoryItem) FilterValue() string { return i.group.Category }

type WorkflowModel struct {
	CommonModel
	deps Deps

	categories list.Model
	tasks      table.Model
	groups     []dashboard.CategoryGroup

	inProgress int
	priority   int
}

func NewWorkflowModel(deps Deps) WorkflowModel {
	snap := deps.Dataset.Snapshot()
	groups := dashboard.TasksByCategory(snap.Tasks)

	items := make([]list.Item, len(groups))
	for i, g := range groups {
		items[i] = categoryItem{group: g}
	}

	categories := list.New(items, list.NewDefaultDelegate(), 28, 18)
	categories.Title = "Categories"
	categories.SetShowStatusBar(false)
	categories.SetFilteringEnabled(false)
	categories.SetShowHelp(false)

	tasks := newTable([]table.Column{
		{Title: "Due", Width: 11},
		{Title: "Task", Width: 34},
		{Title: "Priority", Width: 9},
		{Title: "Status", Width: 12},
		{Title: "Est.", Width: 6},
		{Title: "Actual", Width: 7},
	}, 14)

	m := WorkflowModel{
		deps:       deps,
		categories: categories,
		tasks:      tasks,
		groups:     groups,
		inProgress: dashboard.InProgressTaskCount(snap.Tasks),
		priority:   dashboard.PriorityTaskCount(snap.Tasks),
	}
	m.showSelected()

	return m
}

func (m WorkflowModel) Title() string { return "Workflow" }

func (m WorkflowModel) ShortHelp() string {
	return "Esc: back | ↑/↓: category"
}

func (m WorkflowModel) Init() tea.Cmd {
	return nil
}

func (m *WorkflowModel) showSelected() {
	idx := m.categories.Index()
	if idx < 0 || idx >= len(m.groups) {
		m.tasks.SetRows(nil)
		return
	}

	rows := make([]table.Row, 0, len(m.groups[idx].Tasks))
	for _, t := range m.groups[idx].Tasks {
		actual := "-"
		if t.ActualHours != nil {
			actual = FormatHours(*t.ActualHours)
		}

		rows = append(rows, table.Row{
			FormatDate(t.DueDate),
			t.Title,
			priorityLabel(t.Priority),
			string(t.Status),
			FormatHours(t.EstimatedHours),
			actual,
		})
	}

	m.tasks.SetRows(rows)
}

func priorityLabel(p record.Priority) string {
	if p.Elevated() {
		return activeStyle(string(p))
	}

	return string(p)
}

func (m WorkflowModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		return m, Back
	}

	var cmd tea.Cmd
	m.categories, cmd = m.categories.Update(msg)
	m.showSelected()

	return m, cmd
}

func (m WorkflowModel) View() string {
	header := fmt.Sprintf("%d in progress · %d high priority", m.inProgress, m.priority)

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.categories.View(),
			borderStyle.Render(m.tasks.View()),
		),
	))
}
