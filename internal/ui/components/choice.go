package components

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/balancer/internal/ui/theme"
)

// ChoiceList is a single-select option list. Horizontal lists render on
// one line and move with left/right, as used for 1..n scales.
type ChoiceList struct {
	Options    []string
	Cursor     int
	Chosen     int // -1 until an option is chosen
	Horizontal bool
	Focused    bool
}

// NewChoiceList creates a list with the cursor on chosen, or the first
// option when chosen is empty or unknown.
func NewChoiceList(options []string, chosen string, horizontal bool) ChoiceList {
	idx := slices.Index(options, chosen)
	return ChoiceList{
		Options:    options,
		Cursor:     max(idx, 0),
		Chosen:     idx,
		Horizontal: horizontal,
	}
}

// Value returns the chosen option.
func (c ChoiceList) Value() (string, bool) {
	if c.Chosen < 0 || c.Chosen >= len(c.Options) {
		return "", false
	}
	return c.Options[c.Chosen], true
}

// Update handles keyboard navigation and selection. Number keys choose directly.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !c.Focused {
		return c, nil
	}

	prev, next := "up", "down"
	if c.Horizontal {
		prev, next = "left", "right"
	}

	switch key := kmsg.String(); key {
	case prev, "k", "h":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case next, "j", "l":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter", "space", " ":
		c.Chosen = c.Cursor
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(c.Options) {
				c.Cursor = i
				c.Chosen = i
			}
		}
	}
	return c, nil
}

// View renders the list.
func (c ChoiceList) View() string {
	parts := make([]string, 0, len(c.Options))
	for i, opt := range c.Options {
		mark := "○"
		if i == c.Chosen {
			mark = "●"
		}
		label := fmt.Sprintf("%s %s", mark, opt)
		if !c.Horizontal {
			prefix := "  "
			if c.Focused && i == c.Cursor {
				prefix = "▸ "
			}
			label = prefix + label
		}

		style := theme.Unselected
		switch {
		case c.Focused && i == c.Cursor:
			style = theme.Selected
		case i == c.Chosen:
			style = theme.Chosen
		}
		parts = append(parts, style.Render(label))
	}

	if c.Horizontal {
		return strings.Join(parts, "   ")
	}
	return strings.Join(parts, "\n")
}
