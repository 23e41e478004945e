package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/arboretum/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/arboretum/internal/config"
	"github.com/MrJamesThe3rd/arboretum/internal/database"
	"github.com/MrJamesThe3rd/arboretum/internal/dataset"
	"github.com/MrJamesThe3rd/arboretum/internal/dataset/seed"
	"github.com/MrJamesThe3rd/arboretum/internal/dataset/store"
	"github.com/MrJamesThe3rd/arboretum/internal/importer"
	"github.com/MrJamesThe3rd/arboretum/internal/matching"
	matchingStore "github.com/MrJamesThe3rd/arboretum/internal/matching/store"
)

type model struct {
	deps view.Deps
	name string

	currentView View
	active      view.View
}

type View int

const (
	ViewMenu     View = 0
	ViewOverview View = 1
	ViewCalendar View = 2
	ViewEstates  View = 3
	ViewWorkflow View = 4
	ViewAccounts View = 5
	ViewImport   View = 6
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	loc, err := cfg.Location()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	impSvc := importer.NewService()

	var (
		repo     dataset.Repository  = seed.New(cfg.Data.SeedPath, cfg.Data.LedgerPath, impSvc)
		mappings matching.Repository = matching.NewMemoryStore()
	)

	if cfg.Data.Source == config.SourcePostgres {
		db, err := database.New(context.Background(), cfg.ConnectionString())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}

		repo = store.New(db)
		mappings = matchingStore.New(db)
	}

	dataSvc := dataset.NewService(repo)

	ctx, cancel := view.LoadCtx()
	defer cancel()

	snap, err := dataSvc.Reload(ctx)
	if err != nil {
		slog.Error("failed to load snapshot", "error", err)
		os.Exit(1)
	}

	matchSvc := matching.NewService(mappings)
	if err := matchSvc.LearnFrom(ctx, snap.Transactions); err != nil {
		slog.Warn("failed to learn categories", "error", err)
	}

	return model{
		deps: view.Deps{
			Dataset:       dataSvc,
			Importer:      impSvc,
			Matching:      matchSvc,
			Location:      loc,
			UpcomingLimit: cfg.Dashboard.UpcomingTaskLimit,
		},
		name:        cfg.App.Name,
		currentView: ViewMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// open builds a fresh screen so it reads the latest snapshot.
func (m model) open(v View) (model, tea.Cmd) {
	switch v {
	case ViewOverview:
		m.active = view.NewOverviewModel(m.deps)
	case ViewCalendar:
		m.active = view.NewCalendarModel(m.deps)
	case ViewEstates:
		m.active = view.NewEstatesModel(m.deps)
	case ViewWorkflow:
		m.active = view.NewWorkflowModel(m.deps)
	case ViewAccounts:
		m.active = view.NewAccountsModel(m.deps)
	case ViewImport:
		m.active = view.NewImportModel(m.deps)
	default:
		return m, nil
	}

	m.currentView = v

	return m, m.active.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1", "2", "3", "4", "5", "6":
				return m.open(View(msg.String()[0] - '0'))
			}

			return m, nil
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		m.active = nil

		return m, nil
	}

	if m.active == nil {
		return m, nil
	}

	newModel, cmd := m.active.Update(msg)
	m.active = newModel.(view.View)

	return m, cmd
}

func (m model) View() string {
	if m.currentView == ViewMenu || m.active == nil {
		return lipgloss.NewStyle().Padding(2).Render(
			m.name + "\n\n" +
				"1. Overview\n" +
				"2. Calendar\n" +
				"3. Estates\n" +
				"4. Workflow\n" +
				"5. Accounts\n" +
				"6. Import Ledger\n\n" +
				"q. Quit",
		)
	}

	help := lipgloss.NewStyle().Faint(true).PaddingLeft(1).Render(m.active.ShortHelp())

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).PaddingLeft(1).Render(m.active.Title()),
		m.active.View(),
		help,
	)
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
