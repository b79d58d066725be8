package ui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/yhkl-dev/gospotify/domain"
)

// SearchView represents the search bar above the result table
type SearchView struct {
	app        *App
	container  *tview.Flex
	inputField *tview.InputField
	hint       *tview.TextView
	cancel     context.CancelFunc
}

// NewSearchView creates a new search view
func NewSearchView(app *App) *SearchView {
	sv := &SearchView{
		app: app,
	}

	sv.inputField = tview.NewInputField().
		SetLabel("[yellow]Search: ").
		SetFieldWidth(0).
		SetPlaceholder("Type a query, ENTER to search, ESC to leave...").
		SetFieldBackgroundColor(tcell.ColorBlack)

	sv.hint = tview.NewTextView().
		SetDynamicColors(true)

	sv.inputField.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			sv.Submit(sv.inputField.GetText())
		} else if key == tcell.KeyEscape {
			sv.app.tviewApp.SetFocus(sv.app.resultTable)
		}
	})

	sv.inputField.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyDown || event.Key() == tcell.KeyTab {
			sv.app.tviewApp.SetFocus(sv.app.resultTable)
			return nil
		}
		return event
	})

	sv.container = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(sv.inputField, 1, 0, true).
		AddItem(sv.hint, 1, 0, false)

	return sv
}

// Focus moves the keyboard focus to the search field
func (sv *SearchView) Focus() {
	sv.app.tviewApp.SetFocus(sv.inputField)
}

// GetContainer returns the search view container
func (sv *SearchView) GetContainer() *tview.Flex {
	return sv.container
}

// Submit runs query in the background. A newer query cancels the older one.
func (sv *SearchView) Submit(query string) {
	if query == "" {
		return
	}
	if sv.cancel != nil {
		sv.cancel()
	}
	ctx, cancel := context.WithCancel(sv.app.ctx)
	sv.cancel = cancel

	sv.inputField.SetText(query)
	sv.inputField.SetFieldBackgroundColor(tcell.ColorDarkBlue)
	sv.hint.SetText(fmt.Sprintf("[darkgray]Searching for %q...", query))
	sv.app.state.SetSearching(true)

	go func() {
		defer cancel()
		page, err := sv.app.library.Search(ctx, query, sv.app.cfg.Search.Options())
		sv.app.state.SetSearching(false)
		if ctx.Err() == context.Canceled {
			return
		}
		if err != nil {
			slog.Warn("search failed", "query", query, "error", err)
			sv.app.tviewApp.QueueUpdateDraw(func() {
				sv.showError(fmt.Sprintf("Search failed: %v", err))
			})
			return
		}

		sv.app.tviewApp.QueueUpdateDraw(func() {
			sv.showPage(page)
			sv.app.applyPage(page)
			sv.app.tviewApp.SetFocus(sv.app.resultTable)
		})
	}()
}

// SubmitSuggestion searches for the "did you mean" text of the current page
func (sv *SearchView) SubmitSuggestion() {
	page, _, _ := sv.app.state.GetState()
	if FormatSuggestion(page) == "" {
		return
	}
	sv.Submit(page.DidYouMean)
}

// showPage resets the field and shows the suggestion hint, if any
func (sv *SearchView) showPage(page *domain.SearchPage) {
	sv.inputField.SetFieldBackgroundColor(tcell.ColorDarkGreen)
	if hint := FormatSuggestion(page); hint != "" {
		sv.hint.SetText(hint)
		return
	}
	if page.Empty() {
		sv.hint.SetText("[darkgray]No results found")
		return
	}
	sv.hint.SetText("")
}

// showError displays an error message
func (sv *SearchView) showError(message string) {
	sv.inputField.SetFieldBackgroundColor(tcell.ColorDarkRed)
	sv.hint.SetText("[red]" + tview.Escape(message))
}
