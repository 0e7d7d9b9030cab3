package catalog

// QuestionType identifies how a question is answered.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeRanking        QuestionType = "ranking"
	TypeText           QuestionType = "text"
	TypeScale          QuestionType = "scale"
)

// AllQuestionTypes returns the closed set of question types.
func AllQuestionTypes() []QuestionType {
	return []QuestionType{
		TypeMultipleChoice,
		TypeRanking,
		TypeText,
		TypeScale,
	}
}

// Valid reports whether t is one of the known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case TypeMultipleChoice, TypeRanking, TypeText, TypeScale:
		return true
	default:
		return false
	}
}

// HasOptions reports whether questions of this type carry an option list.
func (t QuestionType) HasOptions() bool {
	return t == TypeMultipleChoice || t == TypeRanking || t == TypeScale
}

// DisplayName returns a human-readable name for the question type.
func (t QuestionType) DisplayName() string {
	switch t {
	case TypeMultipleChoice:
		return "Multiple choice"
	case TypeRanking:
		return "Ranking"
	case TypeText:
		return "Free text"
	case TypeScale:
		return "Scale"
	default:
		return string(t)
	}
}

// Question is a single prompt inside a scenario.
type Question struct {
	ID       string       `yaml:"id" json:"id"`
	Text     string       `yaml:"text" json:"text"`
	Type     QuestionType `yaml:"type" json:"type"`
	Options  []string     `yaml:"options,omitempty" json:"options,omitempty"`
	Required bool         `yaml:"required" json:"required"`
}

// Scenario is a narrative workplace situation with attached questions.
type Scenario struct {
	ID          string     `yaml:"id" json:"id"`
	Title       string     `yaml:"title" json:"title"`
	Description string     `yaml:"description" json:"description"`
	Situation   string     `yaml:"situation" json:"situation"`
	Questions   []Question `yaml:"questions" json:"questions"`
}

// RequiredQuestions returns the questions flagged as required, in order.
func (s Scenario) RequiredQuestions() []Question {
	var out []Question
	for _, q := range s.Questions {
		if q.Required {
			out = append(out, q)
		}
	}
	return out
}

// Section is a named phase of the assessment.
type Section struct {
	ID          string     `yaml:"id" json:"id"`
	Title       string     `yaml:"title" json:"title"`
	Description string     `yaml:"description" json:"description"`
	Icon        string     `yaml:"icon" json:"icon"`
	Scenarios   []Scenario `yaml:"scenarios,omitempty" json:"scenarios,omitempty"`

	// Completed is carried from the data file but not consulted by any logic.
	Completed bool `yaml:"completed" json:"completed"`
}

// Implemented reports whether the section has any scenarios to present.
func (s Section) Implemented() bool {
	return len(s.Scenarios) > 0
}

// IconGlyph maps the catalog icon reference to a terminal glyph.
func (s Section) IconGlyph() string {
	switch s.Icon {
	case "BookOpen":
		return "📖"
	case "Users":
		return "👥"
	case "Settings":
		return "⚙"
	case "Clock":
		return "⏱"
	case "Lightbulb":
		return "💡"
	default:
		return "•"
	}
}
