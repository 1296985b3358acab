package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// listState holds cursor and filter state for a list tab.
type listState struct {
	cursor    int
	filtering bool
	input     textinput.Model
	query     string // applied filter; input holds the one being typed
}

func newListState() listState {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter by name"
	ti.CharLimit = 64
	ti.Width = 40
	return listState{input: ti}
}

func (ls *listState) move(delta, n int) {
	ls.cursor += delta
	ls.clamp(n)
}

func (ls *listState) clamp(n int) {
	if ls.cursor >= n {
		ls.cursor = n - 1
	}
	if ls.cursor < 0 {
		ls.cursor = 0
	}
}

func (ls *listState) startFilter() tea.Cmd {
	ls.filtering = true
	ls.input.SetValue(ls.query)
	ls.input.CursorEnd()
	return ls.input.Focus()
}

func (ls *listState) applyFilter() {
	ls.query = strings.TrimSpace(ls.input.Value())
	ls.filtering = false
	ls.input.Blur()
	ls.cursor = 0
}

// visibleWindow returns the [start, end) range of n rows to draw in a
// viewport of size rows, keeping cursor in view.
func visibleWindow(cursor, n, size int) (int, int) {
	if size < 1 {
		size = 1
	}
	start := 0
	if cursor >= size {
		start = cursor - size + 1
	}
	end := start + size
	if end > n {
		end = n
	}
	return start, end
}
