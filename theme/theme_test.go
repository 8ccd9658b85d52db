package theme

import (
	"strings"
	"testing"

	"github.com/AvianY/xi-editor/styles"
)

func testTheme() *Theme {
	return &Theme{
		Name:    "test",
		Default: styles.Style{}.WithFg(styles.Black),
		Rules: []Rule{
			{MustSelector("string"), styles.Style{}.WithFg(0x006600FF)},
			{MustSelector("string.quoted"), styles.Style{}.WithItalic(true)},
			{MustSelector("keyword"), styles.Style{}.WithBold(true)},
		},
	}
}

func TestStyleForStack(t *testing.T) {
	th := testTheme()

	tests := []struct {
		name  string
		stack []styles.Scope
		want  styles.Style
	}{
		{
			name:  "empty stack gets default",
			stack: nil,
			want:  styles.Style{}.WithFg(styles.Black),
		},
		{
			name:  "single rule",
			stack: stack("source.go", "keyword.control"),
			want:  styles.Style{}.WithFg(styles.Black).WithBold(true),
		},
		{
			name:  "more specific rule merges on top",
			stack: stack("source.go", "string.quoted.double"),
			want:  styles.Style{}.WithFg(0x006600FF).WithItalic(true),
		},
		{
			name:  "unmatched stack gets default",
			stack: stack("source.go", "variable.other"),
			want:  styles.Style{}.WithFg(styles.Black),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := th.StyleForStack(tt.stack); !got.Equal(tt.want) {
				t.Errorf("StyleForStack() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuiltinThemes(t *testing.T) {
	for _, th := range []*Theme{Light(), Dark()} {
		t.Run(th.Name, func(t *testing.T) {
			st := th.StyleForStack(stack("source.go", "keyword.control"))
			if st.Bold == nil || !*st.Bold {
				t.Errorf("keyword style %v is not bold", st)
			}
			if st.Fg == nil {
				t.Errorf("keyword style %v has no foreground", st)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	const src = `{
		"name": "custom",
		"default": {"fg": "#112233"},
		"rules": [
			{"scope": "comment", "fg": "#888888", "italic": true},
			{"scope": "string.quoted, string.unquoted", "fg": "#006600"}
		]
	}`
	th, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if th.Name != "custom" {
		t.Errorf("Name = %q, want %q", th.Name, "custom")
	}
	got := th.StyleForStack(stack("comment.line"))
	want := styles.Style{}.WithFg(0x888888FF).WithItalic(true)
	if !got.Equal(want) {
		t.Errorf("comment style = %v, want %v", got, want)
	}
	got = th.StyleForStack(stack("string.unquoted"))
	want = styles.Style{}.WithFg(0x006600FF)
	if !got.Equal(want) {
		t.Errorf("string style = %v, want %v", got, want)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"bad json", `{`},
		{"unknown field", `{"nome": "x"}`},
		{"bad color", `{"rules": [{"scope": "comment", "fg": "red"}]}`},
		{"bad selector", `{"rules": [{"scope": "a..b"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tt.src)); err == nil {
				t.Errorf("Load(%q) succeeded, want error", tt.src)
			}
		})
	}
}

func TestMap(t *testing.T) {
	var _ styles.Resolver = (*Map)(nil)

	m := NewMap(testTheme())
	st := m.StyleForStack(stack("keyword.control"))
	if st.Bold == nil || !*st.Bold {
		t.Fatalf("keyword style %v is not bold", st)
	}

	m.SetTheme(&Theme{Name: "flat"})
	if got := m.StyleForStack(stack("keyword.control")); !got.IsDefault() {
		t.Errorf("after SetTheme, style = %v, want default", got)
	}
	if m.Theme().Name != "flat" {
		t.Errorf("Theme().Name = %q, want %q", m.Theme().Name, "flat")
	}
}
