package components

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/balancer/internal/ui/theme"
)

// RankList orders a fixed set of items. Space picks up the item under the
// cursor so up/down carry it; shift+up/shift+down move it directly. Enter
// confirms the order.
type RankList struct {
	Items     []string
	Cursor    int
	Holding   bool
	Confirmed bool
	Focused   bool
}

// NewRankList starts from order when it is a permutation of items, else from items.
func NewRankList(items, order []string) RankList {
	start := slices.Clone(items)
	confirmed := false
	if len(order) == len(items) && sameItems(items, order) {
		start = slices.Clone(order)
		confirmed = true
	}
	return RankList{Items: start, Confirmed: confirmed}
}

// Order returns a copy of the current order.
func (r RankList) Order() []string {
	return slices.Clone(r.Items)
}

// Update handles keyboard input.
func (r RankList) Update(msg tea.Msg) (RankList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !r.Focused {
		return r, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if r.Holding {
			r.move(-1)
		} else if r.Cursor > 0 {
			r.Cursor--
		}
	case "down", "j":
		if r.Holding {
			r.move(1)
		} else if r.Cursor < len(r.Items)-1 {
			r.Cursor++
		}
	case "shift+up", "K":
		r.move(-1)
	case "shift+down", "J":
		r.move(1)
	case "space", " ":
		r.Holding = !r.Holding
	case "enter":
		r.Holding = false
		r.Confirmed = true
	}
	return r, nil
}

func (r *RankList) move(delta int) {
	to := r.Cursor + delta
	if to < 0 || to >= len(r.Items) {
		return
	}
	r.Items[r.Cursor], r.Items[to] = r.Items[to], r.Items[r.Cursor]
	r.Cursor = to
	r.Confirmed = false
}

// View renders the ranked items.
func (r RankList) View() string {
	var b strings.Builder
	for i, item := range r.Items {
		prefix := "  "
		if r.Focused && i == r.Cursor {
			prefix = "▸ "
			if r.Holding {
				prefix = "↕ "
			}
		}
		line := fmt.Sprintf("%s%d. %s", prefix, i+1, item)

		style := theme.Unselected
		switch {
		case r.Focused && i == r.Cursor:
			style = theme.Selected
		case r.Confirmed:
			style = theme.Chosen
		}
		b.WriteString(style.Render(line))
		if i < len(r.Items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func sameItems(a, b []string) bool {
	x, y := slices.Clone(a), slices.Clone(b)
	slices.Sort(x)
	slices.Sort(y)
	return slices.Equal(x, y)
}
