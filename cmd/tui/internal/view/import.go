package view

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/arboretum/internal/dataset"
	"github.com/MrJamesThe3rd/arboretum/internal/importer"
	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

type importState int

const (
	importStatePick importState = iota
	importStatePreview
	importStateImporting
	importStateResult
)

// ImportModel walks through pick file → preview parsed rows → publish.
type ImportModel struct {
	CommonModel
	deps Deps

	state      importState
	filePicker filepicker.Model
	path       string

	pending []record.Transaction
	preview table.Model

	conflicts list.Model
	status    string
	err       error
}

func NewImportModel(deps Deps) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt"}
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		deps:       deps,
		filePicker: fp,
		preview:    newTable(ledgerColumns(), 12),
	}
}

func (m ImportModel) Title() string { return "Import Ledger" }

func (m ImportModel) ShortHelp() string {
	switch m.state {
	case importStatePreview:
		return "Enter: import | Esc: pick another file"
	case importStateResult:
		return "Esc: back"
	}

	return "Enter: select | Esc: back"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case parsedMsg:
		if msg.err != nil {
			m.state = importStateResult
			m.err = msg.err
			m.status = fmt.Sprintf("Error reading %s: %v", m.path, msg.err)

			return m, nil
		}

		m.pending = msg.txs
		m.preview.SetRows(ledgerRows(msg.txs))
		m.state = importStatePreview

		return m, nil

	case importResultMsg:
		m.state = importStateResult
		m.pending = nil

		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.status = fmt.Sprintf("Imported %d transactions, skipped %d duplicates.",
			len(msg.result.Imported), len(msg.result.Conflicts))
		m.conflicts = conflictList(msg.result.Conflicts)

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		switch m.state {
		case importStatePreview:
			if msg.Type == tea.KeyEnter {
				m.state = importStateImporting
				m.status = fmt.Sprintf("Importing %d rows...", len(m.pending))

				return m, m.publishCmd(m.pending)
			}

			var cmd tea.Cmd
			m.preview, cmd = m.preview.Update(msg)

			return m, cmd

		case importStateResult:
			if len(m.conflicts.Items()) == 0 {
				return m, nil
			}

			var cmd tea.Cmd
			m.conflicts, cmd = m.conflicts.Update(msg)

			return m, cmd
		}
	}

	if m.state != importStatePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.path = path
		return m, m.parseCmd(path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStatePreview, importStateResult:
		m.state = importStatePick
		m.pending = nil
		m.err = nil
		m.status = ""

		return m, m.filePicker.Init()
	case importStateImporting:
		return m, nil
	}

	return m, Back
}

func (m ImportModel) View() string {
	switch m.state {
	case importStatePick:
		return lipgloss.NewStyle().Padding(1).Render(
			"Select a ledger CSV to import:\n\n" + m.filePicker.View(),
		)
	case importStatePreview:
		heading := titleStyle.Render(fmt.Sprintf("%d rows in %s", len(m.pending), m.path))
		return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left,
			heading,
			mutedStyle.Render("Blank categories were filled from earlier transactions."),
			borderStyle.Render(m.preview.View()),
		))
	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	}

	style := lipgloss.NewStyle().Padding(2)
	if m.err != nil {
		return style.Render(errorStyle.Render(m.status) + "\n\n(Esc to go back)")
	}

	body := okStyle.Render(m.status)
	if len(m.conflicts.Items()) > 0 {
		body += "\n\n" + m.conflicts.View()
	}

	return style.Render(body + "\n\n(Esc to go back)")
}

type parsedMsg struct {
	txs []record.Transaction
	err error
}

type importResultMsg struct {
	result *dataset.ImportResult
	err    error
}

func (m ImportModel) parseCmd(path string) tea.Cmd {
	deps := m.deps

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return parsedMsg{err: err}
		}
		defer f.Close()

		txs, err := deps.Importer.Import(importer.FormatLedger, f)
		if err != nil {
			return parsedMsg{err: err}
		}

		if deps.Matching == nil {
			return parsedMsg{txs: txs}
		}

		ctx, cancel := LoadCtx()
		defer cancel()

		txs, err = deps.Matching.Categorize(ctx, txs)

		return parsedMsg{txs: txs, err: err}
	}
}

func (m ImportModel) publishCmd(txs []record.Transaction) tea.Cmd {
	svc := m.deps.Dataset

	return func() tea.Msg {
		ctx, cancel := LoadCtx()
		defer cancel()

		result, err := svc.ImportTransactions(ctx, txs)

		return importResultMsg{result: result, err: err}
	}
}

func conflictList(cs []dataset.Conflict) list.Model {
	items := make([]list.Item, len(cs))
	for i, c := range cs {
		items[i] = conflictItem{conflict: c}
	}

	l := list.New(items, conflictDelegate{}, 80, 15)
	l.Title = "Skipped Duplicates"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return l
}

type conflictItem struct {
	conflict dataset.Conflict
}

func (i conflictItem) Title() string       { return i.conflict.Incoming.Description }
func (i conflictItem) Description() string { return "" }
func (i conflictItem) FilterValue() string { return "" }

type conflictDelegate struct{}

func (d conflictDelegate) Height() int                             { return 2 }
func (d conflictDelegate) Spacing() int                            { return 1 }
func (d conflictDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d conflictDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(conflictItem)
	if !ok {
		return
	}

	cursor := "  "
	if index == m.Index() {
		cursor = "> "
	}

	in, ex := item.conflict.Incoming, item.conflict.Existing

	fmt.Fprintf(w, "%s%s  %s  %s\n    matches %s (%s, %s)",
		cursor,
		FormatDate(in.Date),
		FormatMoney(in.Amount),
		in.Description,
		ex.Description,
		FormatDate(ex.Date),
		ex.Status,
	)
}
