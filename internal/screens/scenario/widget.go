package scenario

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/balancer/internal/assessment"
	"github.com/abhisek/balancer/internal/catalog"
	"github.com/abhisek/balancer/internal/ui/components"
)

// widget is the input for one question. Exactly one of the component
// fields is set, matching q.Type.
type widget struct {
	q      catalog.Question
	choice components.ChoiceList
	rank   components.RankList
	text   components.TextInput
}

func newWidget(q catalog.Question, prior assessment.Answer, answered bool) widget {
	w := widget{q: q}
	switch q.Type {
	case catalog.TypeMultipleChoice, catalog.TypeScale:
		chosen := ""
		if answered {
			chosen, _ = prior.Choice()
		}
		w.choice = components.NewChoiceList(q.Options, chosen, q.Type == catalog.TypeScale)
	case catalog.TypeRanking:
		var order []string
		if answered {
			order, _ = prior.Ranking()
		}
		w.rank = components.NewRankList(q.Options, order)
	case catalog.TypeText:
		body := ""
		if answered {
			body, _ = prior.Text()
		}
		w.text = components.NewTextInput("Type your answer...", body)
	}
	return w
}

func (w *widget) focus() tea.Cmd {
	switch w.q.Type {
	case catalog.TypeText:
		return w.text.Focus()
	case catalog.TypeRanking:
		w.rank.Focused = true
	default:
		w.choice.Focused = true
	}
	return nil
}

func (w *widget) blur() {
	switch w.q.Type {
	case catalog.TypeText:
		w.text.Blur()
	case catalog.TypeRanking:
		w.rank.Focused = false
		w.rank.Holding = false
	default:
		w.choice.Focused = false
	}
}

// update forwards msg and reports the answer to record, if the input
// produced one.
func (w *widget) update(msg tea.Msg) (assessment.Answer, bool, tea.Cmd) {
	var cmd tea.Cmd
	switch w.q.Type {
	case catalog.TypeMultipleChoice, catalog.TypeScale:
		before := w.choice.Chosen
		w.choice, cmd = w.choice.Update(msg)
		if w.choice.Chosen != before {
			v, _ := w.choice.Value()
			if w.q.Type == catalog.TypeScale {
				return assessment.ScaleAnswer(v), true, cmd
			}
			return assessment.ChoiceAnswer(v), true, cmd
		}
	case catalog.TypeRanking:
		before := w.rank.Confirmed
		w.rank, cmd = w.rank.Update(msg)
		if w.rank.Confirmed && !before {
			return assessment.RankingAnswer(w.rank.Order()), true, cmd
		}
	case catalog.TypeText:
		w.text, cmd = w.text.Update(msg)
	}
	return assessment.Answer{}, false, cmd
}

// pendingText returns an unsaved free-text answer.
func (w *widget) pendingText() (assessment.Answer, bool) {
	if w.q.Type != catalog.TypeText || !w.text.Dirty() {
		return assessment.Answer{}, false
	}
	return assessment.TextAnswer(w.text.Value()), true
}

func (w *widget) view() string {
	switch w.q.Type {
	case catalog.TypeText:
		return w.text.View()
	case catalog.TypeRanking:
		return w.rank.View()
	default:
		return w.choice.View()
	}
}

func (w *widget) hint() string {
	switch w.q.Type {
	case catalog.TypeText:
		return "type, then Enter or Tab to save"
	case catalog.TypeRanking:
		return "Space to pick up, ↑↓ to move, Enter to confirm order"
	case catalog.TypeScale:
		return "←→ or 1-5, Enter to choose"
	default:
		return "↑↓ or number, Enter to choose"
	}
}
