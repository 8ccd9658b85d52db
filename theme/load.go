package theme

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/AvianY/xi-editor/styles"
)

type themeFile struct {
	Name    string     `json:"name"`
	Default *styleFile `json:"default,omitempty"`
	Rules   []ruleFile `json:"rules"`
}

type ruleFile struct {
	Scope string `json:"scope"`
	styleFile
}

type styleFile struct {
	Fg        string `json:"fg,omitempty"`
	Bg        string `json:"bg,omitempty"`
	Bold      *bool  `json:"bold,omitempty"`
	Italic    *bool  `json:"italic,omitempty"`
	Underline *bool  `json:"underline,omitempty"`
}

// Load reads a JSON theme. Colors are "#rrggbb" or "#rrggbbaa" strings;
// omitted attributes stay unset.
func Load(r io.Reader) (*Theme, error) {
	var tf themeFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&tf); err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	t := &Theme{Name: tf.Name}
	if tf.Default != nil {
		st, err := tf.Default.style()
		if err != nil {
			return nil, fmt.Errorf("theme %q: default: %w", tf.Name, err)
		}
		t.Default = st
	}
	for _, rf := range tf.Rules {
		sel, err := ParseSelector(rf.Scope)
		if err != nil {
			return nil, fmt.Errorf("theme %q: %w", tf.Name, err)
		}
		st, err := rf.style()
		if err != nil {
			return nil, fmt.Errorf("theme %q: rule %q: %w", tf.Name, rf.Scope, err)
		}
		t.Rules = append(t.Rules, Rule{Selector: sel, Style: st})
	}
	return t, nil
}

// LoadFile reads a JSON theme from path.
func LoadFile(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func (sf *styleFile) style() (styles.Style, error) {
	var st styles.Style
	if sf.Fg != "" {
		c, err := styles.ParseColor(sf.Fg)
		if err != nil {
			return st, err
		}
		st.Fg = &c
	}
	if sf.Bg != "" {
		c, err := styles.ParseColor(sf.Bg)
		if err != nil {
			return st, err
		}
		st.Bg = &c
	}
	st.Bold = sf.Bold
	st.Italic = sf.Italic
	st.Underline = sf.Underline
	return st, nil
}
