package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AvianY/xi-editor/layers"
	"github.com/AvianY/xi-editor/spans"
	"github.com/AvianY/xi-editor/styles"
)

// Scene describes a document plus the scope data each source would have
// contributed for it: per-source stacks and the index spans pointing
// into them. Offsets are byte offsets into Text.
type Scene struct {
	Text   string       `json:"text"`
	Layers []SceneLayer `json:"layers"`
}

type SceneLayer struct {
	ID     int         `json:"id"`
	Stacks [][]string  `json:"stacks"`
	Spans  []SceneSpan `json:"spans"`
}

type SceneSpan struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Scope uint32 `json:"scope"`
}

func loadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	var sc Scene
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	for _, sl := range sc.Layers {
		for _, sp := range sl.Spans {
			if sp.Start < 0 || sp.End < sp.Start || sp.End > len(sc.Text) {
				return nil, fmt.Errorf("scene %s: layer %d: span [%d, %d) out of range",
					path, sl.ID, sp.Start, sp.End)
			}
			if int(sp.Scope) >= len(sl.Stacks) {
				return nil, fmt.Errorf("scene %s: layer %d: scope index %d out of range",
					path, sl.ID, sp.Scope)
			}
		}
	}
	return &sc, nil
}

// apply replays the scene's contributions into a fresh layer set.
func (sc *Scene) apply(resolver styles.Resolver) *layers.Set {
	set := layers.New(len(sc.Text))
	for _, sl := range sc.Layers {
		id := layers.SourceID(sl.ID)
		set.AddScopes(id, sl.Stacks, resolver)
		b := spans.NewBuilder[uint32](len(sc.Text))
		b.Gap(layers.NoScope)
		for _, sp := range sl.Spans {
			b.Add(spans.Interval{Start: sp.Start, End: sp.End}, sp.Scope)
		}
		set.UpdateLayer(id, spans.Interval{End: len(sc.Text)}, b.Build())
	}
	return set
}
