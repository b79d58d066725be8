package ui

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/yhkl-dev/gospotify/config"
	"github.com/yhkl-dev/gospotify/coverart"
	"github.com/yhkl-dev/gospotify/domain"
	"github.com/yhkl-dev/gospotify/library"
)

const defaultTerminalWidth = 80

// App represents the TUI application
type App struct {
	tviewApp *tview.Application
	cfg      *config.Config
	library  library.Library
	ctx      context.Context
	state    *domain.BrowserState
	keys     *KeyBindingManager

	currentPage int
	pageSize    int
	totalPages  int
	width       atomic.Int32

	rootFlex       *tview.Flex
	resultTable    *tview.Table
	statusBar      *tview.TextView
	infoBar        *tview.TextView
	searchView     *SearchView
	helpView       *HelpView
	overviewView   *OverviewView
	coverConverter *coverart.Converter
}

// NewApp creates a new TUI application with dependency injection
func NewApp(ctx context.Context, cfg *config.Config, lib library.Library) *App {
	return &App{
		tviewApp:       tview.NewApplication(),
		cfg:            cfg,
		library:        lib,
		ctx:            ctx,
		state:          domain.NewBrowserState(),
		keys:           NewKeyBindingManager(),
		pageSize:       cfg.UI.PageSize,
		currentPage:    1,
		totalPages:     1,
		coverConverter: coverart.NewConverter(),
	}
}

// Run starts the application. A non-empty query is searched right away.
func (a *App) Run(query string) error {
	a.createHomepage()
	a.tviewApp.SetBeforeDrawFunc(a.trackTerminalWidth)
	go a.checkLibrary()
	if query != "" {
		a.searchView.Submit(query)
	}

	go func() {
		<-a.ctx.Done()
		a.Stop()
	}()

	slog.Info("starting browser")
	return a.tviewApp.Run()
}

// Stop stops the application
func (a *App) Stop() {
	if a.tviewApp != nil {
		a.tviewApp.Stop()
	}
}

// checkLibrary pings the library and shows the result on the welcome screen
func (a *App) checkLibrary() {
	err := a.library.Ping()
	if err != nil {
		slog.Warn("library ping failed", "error", err)
	}
	a.tviewApp.QueueUpdateDraw(func() {
		if page, _, _ := a.state.GetState(); page == nil {
			a.statusBar.SetText(CreateWelcomeMessage(err == nil))
		}
	})
}

// trackTerminalWidth re-renders the table when the screen width changes
func (a *App) trackTerminalWidth(screen tcell.Screen) bool {
	w, _ := screen.Size()
	if old := a.width.Swap(int32(w)); old != 0 && int(old) != w {
		a.renderResultTable()
	}
	return false
}

// getTerminalWidth returns the last seen terminal width
func (a *App) getTerminalWidth() int {
	if w := a.width.Load(); w > 0 {
		return int(w)
	}
	return defaultTerminalWidth
}

// applyPage makes page the current search and shows its first table page
func (a *App) applyPage(page *domain.SearchPage) {
	a.state.SetPage(page)
	a.totalPages = (len(page.Tracks) + a.pageSize - 1) / a.pageSize
	if a.totalPages == 0 {
		a.totalPages = 1
	}
	a.currentPage = 1
	a.renderResultTable()
	a.updateStatusWithPageInfo()
}

// getCurrentPageData returns tracks for the current table page
func (a *App) getCurrentPageData() []domain.Track {
	page, _, _ := a.state.GetState()
	if page == nil {
		return nil
	}
	start := (a.currentPage - 1) * a.pageSize
	end := min(start+a.pageSize, len(page.Tracks))
	if start >= end {
		return nil
	}
	return page.Tracks[start:end]
}

// rowToIndex maps a table row to an index into the page's tracks
func (a *App) rowToIndex(row int) int {
	return (a.currentPage-1)*a.pageSize + row - 1
}

// selectRow records the selection and shows the track in the status bar
func (a *App) selectRow(row int) {
	if row <= 0 {
		return
	}
	index := a.rowToIndex(row)
	a.state.Select(index)
	if track, ok := a.state.SelectedTrack(); ok {
		a.statusBar.SetText(FormatTrackInfo(track, index, ""))
	}
}

// showCoverArt loads the cover of the selected track's album in the background
func (a *App) showCoverArt() {
	track, ok := a.state.SelectedTrack()
	if !ok {
		return
	}
	_, index, _ := a.state.GetState()

	go func() {
		data, err := a.library.CoverArt(a.ctx, track.AlbumURI)
		if err != nil {
			slog.Debug("no cover art", "album", track.AlbumURI, "error", err)
		}
		ascii, err := a.coverConverter.Convert(data)
		if err != nil {
			slog.Warn("failed to convert cover art", "album", track.AlbumURI, "error", err)
		}

		a.tviewApp.QueueUpdateDraw(func() {
			if current, ok := a.state.SelectedTrack(); !ok || current.URI != track.URI {
				return
			}
			a.statusBar.SetText(FormatTrackInfo(track, index, ascii))
		})
	}()
}

// nextPage moves to the next page
func (a *App) nextPage() {
	if a.currentPage < a.totalPages {
		a.currentPage++
		a.renderResultTable()
		a.updateStatusWithPageInfo()
	}
}

// previousPage moves to the previous page
func (a *App) previousPage() {
	if a.currentPage > 1 {
		a.currentPage--
		a.renderResultTable()
		a.updateStatusWithPageInfo()
	}
}

// firstPage jumps to the first page
func (a *App) firstPage() {
	if a.currentPage != 1 {
		a.currentPage = 1
		a.renderResultTable()
		a.updateStatusWithPageInfo()
	}
}

// lastPage jumps to the last page
func (a *App) lastPage() {
	if a.currentPage != a.totalPages {
		a.currentPage = a.totalPages
		a.renderResultTable()
		a.updateStatusWithPageInfo()
	}
}

// updateStatusWithPageInfo updates the info bar and the selected track panel
func (a *App) updateStatusWithPageInfo() {
	page, _, _ := a.state.GetState()
	a.infoBar.SetText("\n" + FormatPageInfo(page, a.currentPage, a.totalPages))

	if page == nil || len(page.Tracks) == 0 {
		a.statusBar.SetText(CreateWelcomeMessage(true) + "\n\n" + fmt.Sprintf("[gray]%d results", a.resultCount(page)))
		return
	}
	a.selectRow(1)
}

func (a *App) resultCount(page *domain.SearchPage) int {
	if page == nil {
		return 0
	}
	return len(page.Tracks) + len(page.Albums) + len(page.Artists) + len(page.Playlists)
}
