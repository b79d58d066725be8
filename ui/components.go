package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// createHomepage sets up the UI layout
func (a *App) createHomepage() {
	a.infoBar = tview.NewTextView().
		SetDynamicColors(true)
	a.infoBar.SetBorder(false)

	a.statusBar = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false).
		SetWrap(true)
	a.statusBar.SetBorder(false)
	a.statusBar.SetText(CreateWelcomeMessage(true))

	a.resultTable = tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)
	a.resultTable.SetBorder(false)

	// Initialize views
	a.searchView = NewSearchView(a)
	a.helpView = NewHelpView(a)
	a.overviewView = NewOverviewView(a)

	a.setupTableHeaders()
	a.setupKeyBindings()
	a.setupInputHandlers()

	leftPanel := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.statusBar, 0, 1, false)

	rightPanel := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.searchView.GetContainer(), 2, 0, false).
		AddItem(a.resultTable, 0, 1, true)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(leftPanel, 0, 1, false).
		AddItem(rightPanel, 0, 2, true)

	a.rootFlex = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(mainLayout, 0, 1, true).
		AddItem(a.infoBar, 2, 0, false)

	a.tviewApp.SetRoot(a.rootFlex, true)
}

// tableColumns returns the header of every column shown at the current width
func (a *App) tableColumns() []string {
	columns := []string{"#", "Title"}
	termWidth := a.getTerminalWidth()
	if termWidth >= 50 {
		columns = append(columns, "Time")
	}
	if termWidth >= 60 {
		columns = append(columns, "Artist")
	}
	if termWidth >= 90 {
		columns = append(columns, "Album")
	}
	return columns
}

// setupTableHeaders sets up the table header row
func (a *App) setupTableHeaders() {
	headerStyle := tcell.StyleDefault.Foreground(tcell.ColorGray).Attributes(tcell.AttrBold)

	for col, title := range a.tableColumns() {
		a.resultTable.SetCell(0, col, tview.NewTableCell(title).SetStyle(headerStyle))
	}
}

// setupKeyBindings registers the result table shortcuts
func (a *App) setupKeyBindings() {
	a.keys.RegisterKeyBinding(
		KeyAction{name: "search", handler: a.searchView.Focus},
		nil, []rune{'/'})
	a.keys.RegisterKeyBinding(
		KeyAction{name: "suggestion", handler: a.searchView.SubmitSuggestion},
		nil, []rune{'s', 'S'})
	a.keys.RegisterKeyBinding(
		KeyAction{name: "help", handler: a.showHelp},
		nil, []rune{'?'})
	a.keys.RegisterKeyBinding(
		KeyAction{name: "overview", handler: a.showOverview},
		nil, []rune{'o', 'O'})
	a.keys.RegisterKeyBinding(
		KeyAction{name: "nextPage", handler: a.nextPage},
		[]tcell.Key{tcell.KeyPgDn}, []rune{']', '>', 'J'})
	a.keys.RegisterKeyBinding(
		KeyAction{name: "previousPage", handler: a.previousPage},
		[]tcell.Key{tcell.KeyPgUp}, []rune{'[', '<', 'K'})
	a.keys.RegisterSequence(
		KeyAction{name: "firstPage", handler: a.firstPage},
		"gg")
	a.keys.RegisterKeyBinding(
		KeyAction{name: "lastPage", handler: a.lastPage},
		nil, []rune{'G'})
	a.keys.RegisterKeyBinding(
		KeyAction{name: "exit", handler: a.handleExit},
		[]tcell.Key{tcell.KeyCtrlC}, nil)
}

// setupInputHandlers sets up keyboard input handlers
func (a *App) setupInputHandlers() {
	a.resultTable.SetSelectionChangedFunc(func(row, column int) {
		a.selectRow(row)
	})

	a.resultTable.SetSelectedFunc(func(row, column int) {
		if row > 0 {
			a.selectRow(row)
			a.showCoverArt()
		}
	})

	a.resultTable.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if a.keys.HandleKey(event) {
			return nil
		}
		return event
	})

	a.tviewApp.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		// Handle modal views first
		if a.helpView != nil && a.helpView.IsActive() {
			if event.Key() == tcell.KeyEscape || event.Rune() == '?' {
				a.helpView.Close()
				return nil
			}
			return event
		}
		if a.overviewView != nil && a.overviewView.IsActive() {
			if event.Key() == tcell.KeyEscape || event.Rune() == 'o' || event.Rune() == 'O' {
				a.overviewView.Close()
				return nil
			}
			return event
		}

		switch event.Key() {
		case tcell.KeyEsc:
			if a.tviewApp.GetFocus() == a.resultTable {
				a.handleExit()
				return nil
			}
		case tcell.KeyCtrlC:
			a.handleExit()
			return nil
		}
		return event
	})
}

// handleExit handles the exit signal
func (a *App) handleExit() {
	a.tviewApp.Stop()
}

// renderResultTable renders the track table with current page data
func (a *App) renderResultTable() {
	a.resultTable.Clear()
	a.setupTableHeaders()
	pageData := a.getCurrentPageData()
	startIndex := (a.currentPage - 1) * a.pageSize
	columns := a.tableColumns()
	maxWidth := a.cfg.UI.MaxColumnWidth

	for i, track := range pageData {
		row := i + 1
		globalIndex := startIndex + i + 1
		rowStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDefault)
		titleStyle := rowStyle
		if !track.Playable {
			titleStyle = rowStyle.Foreground(tcell.ColorDarkGray)
		}

		for col, name := range columns {
			var cell *tview.TableCell
			switch name {
			case "#":
				cell = tview.NewTableCell(fmt.Sprintf("%d:", globalIndex)).
					SetStyle(rowStyle.Foreground(tcell.ColorLightGreen)).
					SetAlign(tview.AlignRight)
			case "Title":
				cell = tview.NewTableCell(Truncate(track.Name, maxWidth)).
					SetStyle(titleStyle).
					SetExpansion(1)
			case "Time":
				cell = tview.NewTableCell(FormatDuration(track.Duration)).
					SetStyle(rowStyle.Foreground(tcell.ColorGray)).
					SetAlign(tview.AlignRight)
			case "Artist":
				cell = tview.NewTableCell(Truncate(strings.Join(track.Artists, ", "), maxWidth)).
					SetStyle(rowStyle.Foreground(tcell.ColorGray)).
					SetMaxWidth(20)
			case "Album":
				cell = tview.NewTableCell(Truncate(track.Album, maxWidth)).
					SetStyle(rowStyle.Foreground(tcell.ColorGray)).
					SetMaxWidth(20)
			}
			a.resultTable.SetCell(row, col, cell)
		}
	}

	a.resultTable.SetSelectedStyle(tcell.StyleDefault.
		Background(tcell.ColorDarkGreen).
		Foreground(tcell.ColorWhite))

	a.resultTable.ScrollToBeginning()
	if len(pageData) > 0 {
		a.resultTable.Select(1, 0)
	}
}

// showModal puts container in the middle of the screen
func (a *App) showModal(container tview.Primitive, width int) {
	modal := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().
			SetDirection(tview.FlexColumn).
			AddItem(nil, 0, 1, false).
			AddItem(container, width, 0, true).
			AddItem(nil, 0, 1, false), 20, 0, true).
		AddItem(nil, 0, 1, false)

	a.keys.ResetPending()
	a.tviewApp.SetRoot(modal, true)
}

// showHelp displays the help modal view
func (a *App) showHelp() {
	if a.helpView == nil {
		return
	}
	a.showModal(a.helpView.GetContainer(), 60)
	a.helpView.Show()
}

// showOverview displays the albums, artists and playlists modal view
func (a *App) showOverview() {
	if a.overviewView == nil {
		return
	}
	a.showModal(a.overviewView.GetContainer(), 100)
	a.overviewView.Show()
}
