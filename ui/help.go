package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// modalView is the state shared by the views shown on top of the browser
type modalView struct {
	app       *App
	container *tview.Flex
	focus     tview.Primitive
	isActive  bool
}

func newModalView(app *App, body tview.Primitive, title string, border tcell.Color) modalView {
	container := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(body, 0, 1, true)
	container.SetBorder(true).
		SetTitle(title).
		SetBorderColor(border)
	return modalView{app: app, container: container, focus: body}
}

// Show displays the view
func (m *modalView) Show() {
	m.isActive = true
	m.app.tviewApp.SetFocus(m.focus)
}

// Close hides the view and gives the focus back to the result table
func (m *modalView) Close() {
	m.isActive = false
	m.app.tviewApp.SetRoot(m.app.rootFlex, true)
	m.app.tviewApp.SetFocus(m.app.resultTable)
}

func (m *modalView) IsActive() bool {
	return m.isActive
}

func (m *modalView) GetContainer() *tview.Flex {
	return m.container
}

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Search", []helpEntry{
		{"/", "Focus the search field"},
		{"Enter", "Run the search (in the search field)"},
		{"s / S", "Search for the suggested spelling"},
		{"Tab / ↓", "Move from the search field to the results"},
	}},
	{"Results", []helpEntry{
		{"j / k", "Next/Previous row"},
		{"Enter", "Show cover art of the selected track"},
		{"J / K", "Next/Previous page"},
		{"< / >", "Previous/Next page (alternative)"},
		{"PgUp/PgDn", "Previous/Next page (alternative)"},
		{"gg / G", "First/Last page"},
		{"o / O", "Albums, artists and playlists overview"},
		{"?", "Show this help panel"},
	}},
	{"General", []helpEntry{
		{"ESC", "Close modal / Exit program"},
		{"Ctrl+C", "Exit program"},
	}},
}

// helpText renders the shortcut table
func helpText() string {
	var b strings.Builder
	b.WriteString("[yellow::b]Keyboard Shortcuts[-:-:-]\n")
	for _, section := range helpSections {
		fmt.Fprintf(&b, "\n[lightgreen]%s:[-]\n", section.title)
		for _, e := range section.entries {
			fmt.Fprintf(&b, "  [white]%-11s[-] %s\n", tview.Escape(e.keys), e.desc)
		}
	}
	b.WriteString("\n[yellow]Press ESC or ? to close this help panel[-]\n")
	return b.String()
}

// HelpView represents the keyboard shortcuts help interface
type HelpView struct {
	modalView
}

// NewHelpView creates a new help view
func NewHelpView(app *App) *HelpView {
	textView := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true).
		SetText(helpText())

	return &HelpView{
		modalView: newModalView(app, textView, " Help (ESC to close) ", tcell.ColorYellow),
	}
}
