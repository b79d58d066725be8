package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"github.com/yhkl-dev/gospotify/config"
	"github.com/yhkl-dev/gospotify/domain"
	"github.com/yhkl-dev/gospotify/ui"
)

type SearchParams struct {
	Query   string `pos:"true" required:"true" help:"Search query."`
	Config  string `short:"c" optional:"true" help:"Path to a config file (default: gospotify.toml in ~/.config or .)."`
	Count   int    `short:"n" optional:"true" help:"Results per category, -1 uses the config value." default:"-1"`
	Offset  int    `short:"o" optional:"true" help:"Offset into every category, -1 uses the config value." default:"-1"`
	Suggest bool   `short:"s" optional:"true" help:"Run a suggest search (at most 4 results per category)." default:"false"`
	Timeout int    `short:"t" optional:"true" help:"Seconds to wait for results, 0 uses the config value." default:"0"`
	Verbose bool   `short:"v" optional:"true" help:"Log debug output to stderr." default:"false"`
}

func SearchCmd() *cobra.Command {
	return boa.CmdT[SearchParams]{
		Use:         "search",
		Short:       "Search the catalog for tracks, albums, artists and playlists",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *SearchParams, cmd *cobra.Command, args []string) {
			os.Exit(runSearch(params, os.Stdout, os.Stderr))
		},
	}.ToCobra()
}

// apply overrides the config with the flags that were given
func (p *SearchParams) apply(cfg *config.Config) {
	s := &cfg.Search
	if p.Count >= 0 {
		s.TrackCount, s.AlbumCount, s.ArtistCount, s.PlaylistCount = p.Count, p.Count, p.Count, p.Count
	}
	if p.Offset >= 0 {
		s.TrackOffset, s.AlbumOffset, s.ArtistOffset, s.PlaylistOffset = p.Offset, p.Offset, p.Offset, p.Offset
	}
	if p.Suggest {
		s.Type = "suggest"
	}
	if p.Timeout > 0 {
		cfg.Load.TimeoutSeconds = p.Timeout
	}
}

func runSearch(params *SearchParams, stdout, stderr io.Writer) int {
	cfg, err := config.NewLoader(params.Config).Load()
	if err != nil {
		fmt.Fprintf(stderr, "search: %v\n", err)
		return 1
	}
	params.apply(cfg)

	closeLog, err := setupLogging(cfg.Log, params.Verbose, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "search: %v\n", err)
		return 1
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b, err := openBackend(ctx, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "search: %v\n", err)
		return 1
	}
	defer b.Close()

	page, err := b.library.Search(ctx, params.Query, cfg.Search.Options())
	if err != nil {
		fmt.Fprintf(stderr, "search: %v\n", err)
		return 1
	}

	renderPage(stdout, page, cfg.UI.MaxColumnWidth)
	return 0
}

// renderPage prints one table per non-empty result category
func renderPage(out io.Writer, page *domain.SearchPage, maxWidth int) {
	if hint := page.DidYouMean; hint != "" {
		fmt.Fprintf(out, "Did you mean %s?\n", text.FgYellow.Sprint(hint))
	}
	if page.Empty() {
		fmt.Fprintf(out, "No results for %q\n", page.Query)
		return
	}

	if len(page.Tracks) > 0 {
		t := newTable(out, "Tracks", len(page.Tracks), page.TotalTracks)
		t.AppendHeader(table.Row{"#", "Track", "Artists", "Album", "Time", "Popularity"})
		for i, tr := range page.Tracks {
			name := ui.Truncate(tr.Name, maxWidth)
			if !tr.Playable {
				name += " (unplayable)"
			}
			t.AppendRow(table.Row{
				i + 1,
				name,
				ui.Truncate(strings.Join(tr.Artists, ", "), maxWidth),
				ui.Truncate(tr.Album, maxWidth),
				ui.FormatDuration(tr.Duration),
				tr.Popularity,
			})
		}
		t.Render()
	}

	if len(page.Albums) > 0 {
		t := newTable(out, "Albums", len(page.Albums), page.TotalAlbums)
		t.AppendHeader(table.Row{"#", "Album", "Artist", "Year", "Type", "Available", "URI"})
		for i, al := range page.Albums {
			t.AppendRow(table.Row{
				i + 1,
				ui.Truncate(al.Name, maxWidth),
				ui.Truncate(al.Artist, maxWidth),
				al.Year,
				al.Type,
				yesNo(al.Available),
				al.URI,
			})
		}
		t.Render()
	}

	if len(page.Artists) > 0 {
		t := newTable(out, "Artists", len(page.Artists), page.TotalArtists)
		t.AppendHeader(table.Row{"#", "Artist", "Portrait", "URI"})
		for i, ar := range page.Artists {
			t.AppendRow(table.Row{i + 1, ui.Truncate(ar.Name, maxWidth), yesNo(ar.HasPortrait), ar.URI})
		}
		t.Render()
	}

	if len(page.Playlists) > 0 {
		t := newTable(out, "Playlists", len(page.Playlists), page.TotalPlaylists)
		t.AppendHeader(table.Row{"#", "Playlist", "URI", "Image"})
		for i, pl := range page.Playlists {
			t.AppendRow(table.Row{i + 1, ui.Truncate(pl.Name, maxWidth), pl.URI, pl.ImageURI})
		}
		t.Render()
	}

	fmt.Fprintf(out, "%s\n", page.Summary())
	if page.SearchURI != "" {
		fmt.Fprintf(out, "%s\n", page.SearchURI)
	}
}

func newTable(out io.Writer, title string, shown, total int) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.SetTitle("%s (%d of %d)", title, shown, total)
	return t
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
