package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler reacts to a key; handled=false lets lower-priority bindings try.
type KeyHandler func(m Model, key string) (next Model, cmd tea.Cmd, handled bool)

type KeyBinding struct {
	Keys        []string
	Handler     KeyHandler
	Description string
	Views       []View
	Priority    int
}

func (b KeyBinding) AppliesToView(v View) bool {
	if len(b.Views) == 0 {
		return true
	}
	for _, view := range b.Views {
		if view == v {
			return true
		}
	}
	return false
}

func (b KeyBinding) matches(key string) bool {
	for _, k := range b.Keys {
		if k == key {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.matches(key) && b.AppliesToView(m.view) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) GetBindingsForView(v View) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesToView(v) {
			out = append(out, b)
		}
	}
	return out
}

// HelpForView renders "[key]description" pairs for the bindings of v, in
// priority order.
func (r *HandlerRegistry) HelpForView(v View) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.GetBindingsForView(v) {
		if b.Description == "" || len(b.Keys) == 0 {
			continue
		}
		label := strings.Join(b.Keys, "/")
		if seen[label] {
			continue
		}
		seen[label] = true
		parts = append(parts, "["+label+"]"+b.Description)
	}
	return strings.Join(parts, " ")
}
