// Package layout arranges storyboard panels into fixed-size grid pages.
//
// Everything a renderer needs is computed here: scene grouping and ordering,
// pagination, page and cell geometry in millimetres, the content of each
// panel card, text fitting against a caller-supplied measurer, and the
// colour assigned to shots, cameras and scenes. The PDF writer and the
// terminal preview only translate these values into drawing calls, so the
// two never disagree about what goes where.
package layout

import (
	"math"
	"sort"
	"strconv"

	"github.com/akyairhashvil/storyboard/internal/models"
)

// NumericKey returns the integer value of a purely numeric label and
// math.MaxInt for anything else, so non-numeric labels sort last.
func NumericKey(label string) int {
	if label == "" {
		return math.MaxInt
	}
	for _, r := range label {
		if r < '0' || r > '9' {
			return math.MaxInt
		}
	}
	n, err := strconv.Atoi(label)
	if err != nil {
		return math.MaxInt
	}
	return n
}

// SceneGroup is every panel of one scene, in shot order.
type SceneGroup struct {
	Scene  string
	Panels []models.Panel
}

// GroupByScene groups panels by scene number. Scenes are ordered
// numerically with non-numeric scenes last; ties are broken by label.
// Within a scene panels are ordered by shot label, and panels with equal
// labels keep their storyboard order.
func GroupByScene(panels []models.Panel) []SceneGroup {
	index := make(map[string]int)
	var groups []SceneGroup
	for _, p := range panels {
		i, ok := index[p.SceneNumber]
		if !ok {
			i = len(groups)
			index[p.SceneNumber] = i
			groups = append(groups, SceneGroup{Scene: p.SceneNumber})
		}
		groups[i].Panels = append(groups[i].Panels, p)
	}
	for i := range groups {
		ps := groups[i].Panels
		sort.SliceStable(ps, func(a, b int) bool {
			return ps[a].ShotNumber < ps[b].ShotNumber
		})
	}
	sort.SliceStable(groups, func(a, b int) bool {
		ka, kb := NumericKey(groups[a].Scene), NumericKey(groups[b].Scene)
		if ka != kb {
			return ka < kb
		}
		return groups[a].Scene < groups[b].Scene
	})
	return groups
}

// Chunk splits panels into consecutive groups of at most size.
func Chunk(panels []models.Panel, size int) [][]models.Panel {
	if size <= 0 || len(panels) == 0 {
		return nil
	}
	out := make([][]models.Panel, 0, (len(panels)+size-1)/size)
	for start := 0; start < len(panels); start += size {
		end := start + size
		if end > len(panels) {
			end = len(panels)
		}
		out = append(out, panels[start:end])
	}
	return out
}
