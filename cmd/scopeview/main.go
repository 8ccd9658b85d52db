// Command scopeview composites the scope annotations in a scene file
// and shows the merged result, either rendered to the terminal or as a
// span dump.
//
// Usage:
//
//	scopeview render scene.json [--theme dark]
//	scopeview dump scene.json [--from 0 --to 20] [--theme-file my.json]
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/AvianY/xi-editor/layers"
	"github.com/AvianY/xi-editor/spans"
	"github.com/AvianY/xi-editor/styles"
	"github.com/AvianY/xi-editor/theme"
)

var cli struct {
	Theme     string `help:"Built-in theme." enum:"light,dark" default:"light"`
	ThemeFile string `help:"JSON theme file; overrides --theme." type:"path"`

	Render RenderCmd `cmd:"" help:"Render the scene's text with its merged styles."`
	Dump   DumpCmd   `cmd:"" help:"Print merged spans and per-layer diagnostics."`
}

type RenderCmd struct {
	Scene string `arg:"" help:"Scene JSON file." type:"path"`
}

func (c *RenderCmd) Run() error {
	set, scene, err := composite(c.Scene)
	if err != nil {
		return err
	}
	var out strings.Builder
	for iv, st := range set.Merged().Iter() {
		out.WriteString(lipStyle(st).Render(scene.Text[iv.Start:iv.End]))
	}
	fmt.Println(out.String())
	return nil
}

type DumpCmd struct {
	Scene string `arg:"" help:"Scene JSON file." type:"path"`
	From  int    `help:"Start offset." default:"0"`
	To    int    `help:"End offset; -1 means end of text." default:"-1"`
}

func (c *DumpCmd) Run() error {
	set, scene, err := composite(c.Scene)
	if err != nil {
		return err
	}
	iv := spans.Interval{Start: c.From, End: c.To}
	if iv.End < 0 {
		iv.End = len(scene.Text)
	}
	if iv.Start < 0 || iv.End < iv.Start || iv.End > len(scene.Text) {
		return fmt.Errorf("range %v out of bounds for text of length %d", iv, len(scene.Text))
	}
	fmt.Println("merged:")
	for siv, st := range set.Merged().Subseq(iv).Iter() {
		fmt.Printf("%v: %s\n", siv, st)
	}
	set.DebugSpans(os.Stdout, iv)
	return nil
}

func composite(scenePath string) (*layers.Set, *Scene, error) {
	t, err := pickTheme()
	if err != nil {
		return nil, nil, err
	}
	scene, err := loadScene(scenePath)
	if err != nil {
		return nil, nil, err
	}
	return scene.apply(theme.NewMap(t)), scene, nil
}

func pickTheme() (*theme.Theme, error) {
	if cli.ThemeFile != "" {
		return theme.LoadFile(cli.ThemeFile)
	}
	if cli.Theme == "dark" {
		return theme.Dark(), nil
	}
	return theme.Light(), nil
}

func lipStyle(st styles.Style) lipgloss.Style {
	ls := lipgloss.NewStyle()
	if st.Fg != nil {
		ls = ls.Foreground(lipgloss.Color(st.Fg.Hex()))
	}
	if st.Bg != nil {
		ls = ls.Background(lipgloss.Color(st.Bg.Hex()))
	}
	if st.Bold != nil && *st.Bold {
		ls = ls.Bold(true)
	}
	if st.Italic != nil && *st.Italic {
		ls = ls.Italic(true)
	}
	if st.Underline != nil && *st.Underline {
		ls = ls.Underline(true)
	}
	return ls
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("scopeview"),
		kong.Description("Inspect composited scope styling for a document."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
