package view

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrJamesThe3rd/arboretum/internal/dataset"
	"github.com/MrJamesThe3rd/arboretum/internal/importer"
	"github.com/MrJamesThe3rd/arboretum/internal/matching"
)

// View is the interface that all TUI screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// Deps are the services and settings shared by every screen.
type Deps struct {
	Dataset       *dataset.Service
	Importer      *importer.Service
	Matching      *matching.Service
	Location      *time.Location
	UpcomingLimit int
	Now           func() time.Time
}

// Today returns midnight of the current day in the configured location.
func (d Deps) Today() time.Time {
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}

	t := now().In(d.Location)

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, d.Location)
}

// CommonModel is embedded by all views.
type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}
