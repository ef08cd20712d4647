// Package shotlist turns storyboard panels into a filtered, sorted shooting
// order and writes it out as a table.
package shotlist

import (
	"fmt"
	"sort"
	"strings"

	"github.com/akyairhashvil/storyboard/internal/layout"
	"github.com/akyairhashvil/storyboard/internal/models"
)

// AllValues matches every panel regardless of filter kind.
const AllValues = "All"

// FilterKind selects the panel field a filter matches on.
type FilterKind int

const (
	FilterAll FilterKind = iota
	FilterCamera
	FilterSetup
	FilterScene
)

// Kinds lists filter kinds in cycling order.
var Kinds = []FilterKind{FilterAll, FilterCamera, FilterSetup, FilterScene}

func (k FilterKind) String() string {
	switch k {
	case FilterCamera:
		return "Camera"
	case FilterSetup:
		return "Setup"
	case FilterScene:
		return "Scene"
	default:
		return "All"
	}
}

// Next returns the kind after k, wrapping around.
func (k FilterKind) Next() FilterKind {
	return Kinds[(int(k)+1)%len(Kinds)]
}

// ParseKind parses a kind name case-insensitively.
func ParseKind(s string) (FilterKind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(k.String(), strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return FilterAll, fmt.Errorf("unknown filter kind %q", s)
}

// Filter narrows a panel list to one value of one field.
type Filter struct {
	Kind  FilterKind
	Value string
}

// ParseFilter reads "kind=value", e.g. "camera=Camera 2". An empty string
// is the match-all filter.
func ParseFilter(s string) (Filter, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, AllValues) {
		return Filter{Kind: FilterAll, Value: AllValues}, nil
	}
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return Filter{}, fmt.Errorf("filter %q: want kind=value", s)
	}
	kind, err := ParseKind(name)
	if err != nil {
		return Filter{}, err
	}
	return Filter{Kind: kind, Value: strings.TrimSpace(value)}, nil
}

func (f Filter) String() string {
	if f.matchesAll() {
		return AllValues
	}
	return f.Kind.String() + "=" + f.Value
}

func (f Filter) matchesAll() bool {
	return f.Kind == FilterAll || f.Value == "" || f.Value == AllValues
}

func field(kind FilterKind, p models.Panel) string {
	switch kind {
	case FilterCamera:
		return p.Camera
	case FilterSetup:
		return p.SetupNumber
	case FilterScene:
		return p.SceneNumber
	default:
		return ""
	}
}

// Values returns "All" followed by the distinct values of kind across
// panels, sorted.
func Values(kind FilterKind, panels []models.Panel) []string {
	out := []string{AllValues}
	if kind == FilterAll {
		return out
	}
	seen := make(map[string]bool)
	var vals []string
	for _, p := range panels {
		v := field(kind, p)
		if !seen[v] {
			seen[v] = true
			vals = append(vals, v)
		}
	}
	sort.Strings(vals)
	return append(out, vals...)
}

// Apply returns the panels matching f, in their original order.
func Apply(f Filter, panels []models.Panel) []models.Panel {
	if f.matchesAll() {
		return append([]models.Panel(nil), panels...)
	}
	var out []models.Panel
	for _, p := range panels {
		if field(f.Kind, p) == f.Value {
			out = append(out, p)
		}
	}
	return out
}

// Sort orders panels for shooting: by scene, then setup, then shot label.
// Scene and setup compare numerically with non-numeric values last. The
// input is not modified.
func Sort(panels []models.Panel) []models.Panel {
	out := append([]models.Panel(nil), panels...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if ka, kb := layout.NumericKey(a.SceneNumber), layout.NumericKey(b.SceneNumber); ka != kb {
			return ka < kb
		}
		if ka, kb := layout.NumericKey(a.SetupNumber), layout.NumericKey(b.SetupNumber); ka != kb {
			return ka < kb
		}
		return a.ShotNumber < b.ShotNumber
	})
	return out
}
