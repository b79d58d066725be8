package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/yhkl-dev/gospotify/domain"
)

// OverviewView lists the albums, artists and playlists of the current search
type OverviewView struct {
	modalView
	table *tview.Table
}

// NewOverviewView creates a new overview view
func NewOverviewView(app *App) *OverviewView {
	table := tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)

	headerStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Attributes(tcell.AttrBold)
	table.SetCell(0, 0, tview.NewTableCell("Kind").SetStyle(headerStyle))
	table.SetCell(0, 1, tview.NewTableCell("Name").SetStyle(headerStyle))
	table.SetCell(0, 2, tview.NewTableCell("Details").SetStyle(headerStyle))
	table.SetCell(0, 3, tview.NewTableCell("URI").SetStyle(headerStyle))

	return &OverviewView{
		modalView: newModalView(app, table, " Overview (ESC/o to close) ", tcell.NewHexColor(0x1db954)),
		table:     table,
	}
}

// Show refreshes the table from the current search and displays it
func (ov *OverviewView) Show() {
	page, _, _ := ov.app.state.GetState()
	ov.refresh(page)
	ov.modalView.Show()
}

// overviewRow is one line of the overview table
type overviewRow struct {
	kind    string
	name    string
	details string
	uri     string
}

// overviewRows flattens the non-track results of a page
func overviewRows(page *domain.SearchPage) []overviewRow {
	if page == nil {
		return nil
	}
	rows := make([]overviewRow, 0, len(page.Albums)+len(page.Artists)+len(page.Playlists))
	for _, al := range page.Albums {
		details := fmt.Sprintf("%s, %d, %s", al.Artist, al.Year, al.Type)
		if !al.Available {
			details += " (unavailable)"
		}
		rows = append(rows, overviewRow{kind: "album", name: al.Name, details: details, uri: al.URI})
	}
	for _, ar := range page.Artists {
		details := ""
		if ar.HasPortrait {
			details = "portrait"
		}
		rows = append(rows, overviewRow{kind: "artist", name: ar.Name, details: details, uri: ar.URI})
	}
	for _, pl := range page.Playlists {
		rows = append(rows, overviewRow{kind: "playlist", name: pl.Name, uri: pl.URI})
	}
	return rows
}

// refresh updates the table with the current page
func (ov *OverviewView) refresh(page *domain.SearchPage) {
	for i := ov.table.GetRowCount() - 1; i > 0; i-- {
		ov.table.RemoveRow(i)
	}

	rows := overviewRows(page)
	if len(rows) == 0 {
		ov.table.SetCell(1, 0, tview.NewTableCell("Nothing to show").
			SetAlign(tview.AlignCenter).
			SetExpansion(4).
			SetTextColor(tcell.ColorGray))
		return
	}

	rowStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	maxWidth := ov.app.cfg.UI.MaxColumnWidth

	for i, r := range rows {
		row := i + 1

		ov.table.SetCell(row, 0,
			tview.NewTableCell(r.kind).
				SetStyle(rowStyle.Foreground(tcell.ColorLightGreen)))

		ov.table.SetCell(row, 1,
			tview.NewTableCell(Truncate(r.name, maxWidth)).
				SetStyle(rowStyle).
				SetExpansion(2))

		ov.table.SetCell(row, 2,
			tview.NewTableCell(Truncate(r.details, maxWidth)).
				SetStyle(rowStyle.Foreground(tcell.ColorGray)))

		ov.table.SetCell(row, 3,
			tview.NewTableCell(r.uri).
				SetStyle(rowStyle.Foreground(tcell.ColorDarkGray)))
	}

	ov.table.SetSelectedStyle(tcell.StyleDefault.
		Background(tcell.ColorDarkCyan).
		Foreground(tcell.ColorWhite))
}
