package assessment

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/balancer/internal/catalog"
)

// Answer is a captured response. Its shape is tagged by the question type it
// answers: a single option for multiple-choice and scale, an ordered list for
// ranking, free text for text. Build one with the constructors below.
type Answer struct {
	kind    catalog.QuestionType
	choice  string
	ranking []string
	text    string
}

// ChoiceAnswer answers a multiple-choice question with the selected option.
func ChoiceAnswer(option string) Answer {
	return Answer{kind: catalog.TypeMultipleChoice, choice: option}
}

// ScaleAnswer answers a scale question with the selected point, as a string.
func ScaleAnswer(value string) Answer {
	return Answer{kind: catalog.TypeScale, choice: value}
}

// RankingAnswer answers a ranking question with options in ranked order.
func RankingAnswer(order []string) Answer {
	return Answer{kind: catalog.TypeRanking, ranking: cloneStrings(order)}
}

// TextAnswer answers a free-text question.
func TextAnswer(text string) Answer {
	return Answer{kind: catalog.TypeText, text: text}
}

// Kind returns the question type this answer is shaped for.
func (a Answer) Kind() catalog.QuestionType {
	return a.kind
}

// Choice returns the selected option of a multiple-choice or scale answer.
func (a Answer) Choice() (string, bool) {
	if a.kind != catalog.TypeMultipleChoice && a.kind != catalog.TypeScale {
		return "", false
	}
	return a.choice, true
}

// Ranking returns a copy of the ranked options of a ranking answer.
func (a Answer) Ranking() ([]string, bool) {
	if a.kind != catalog.TypeRanking {
		return nil, false
	}
	return cloneStrings(a.ranking), true
}

// Text returns the body of a free-text answer.
func (a Answer) Text() (string, bool) {
	if a.kind != catalog.TypeText {
		return "", false
	}
	return a.text, true
}

// IsBlank reports whether the answer carries an empty value: empty option,
// empty text or empty ranking. The zero Answer is blank.
func (a Answer) IsBlank() bool {
	switch a.kind {
	case catalog.TypeMultipleChoice, catalog.TypeScale:
		return a.choice == ""
	case catalog.TypeRanking:
		return len(a.ranking) == 0
	case catalog.TypeText:
		return a.text == ""
	default:
		return true
	}
}

// Fits reports whether the answer is shaped for question q.
func (a Answer) Fits(q catalog.Question) bool {
	return a.kind == q.Type
}

// Value returns the answer in its natural JSON shape: a string, or a list of
// strings for rankings.
func (a Answer) Value() any {
	switch a.kind {
	case catalog.TypeRanking:
		return cloneStrings(a.ranking)
	case catalog.TypeText:
		return a.text
	case catalog.TypeMultipleChoice, catalog.TypeScale:
		return a.choice
	default:
		return nil
	}
}

func (a Answer) String() string {
	switch a.kind {
	case catalog.TypeRanking:
		return strings.Join(a.ranking, " > ")
	case catalog.TypeText:
		return a.text
	default:
		return a.choice
	}
}

type answerJSON struct {
	Kind  catalog.QuestionType `json:"kind"`
	Value json.RawMessage      `json:"value"`
}

func (a Answer) MarshalJSON() ([]byte, error) {
	v, err := json.Marshal(a.Value())
	if err != nil {
		return nil, err
	}
	return json.Marshal(answerJSON{Kind: a.kind, Value: v})
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var raw answerJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch raw.Kind {
	case catalog.TypeRanking:
		var order []string
		if err := json.Unmarshal(raw.Value, &order); err != nil {
			return fmt.Errorf("ranking answer: %w", err)
		}
		*a = RankingAnswer(order)
	case catalog.TypeMultipleChoice, catalog.TypeScale, catalog.TypeText:
		var s string
		if err := json.Unmarshal(raw.Value, &s); err != nil {
			return fmt.Errorf("%s answer: %w", raw.Kind, err)
		}
		*a = Answer{kind: raw.Kind}
		if raw.Kind == catalog.TypeText {
			a.text = s
		} else {
			a.choice = s
		}
	default:
		return fmt.Errorf("unknown answer kind %q", raw.Kind)
	}
	return nil
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
