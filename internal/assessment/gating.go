package assessment

import (
	"fmt"
	"strings"

	"github.com/abhisek/balancer/internal/catalog"
)

// PresencePolicy decides when a required question counts as answered.
type PresencePolicy int

const (
	// PresenceExists counts any recorded answer, blank or not.
	PresenceExists PresencePolicy = iota

	// PresenceTruthy additionally rejects blank answers: empty choice,
	// empty text and empty ranking.
	PresenceTruthy
)

func (p PresencePolicy) String() string {
	switch p {
	case PresenceTruthy:
		return "truthy"
	default:
		return "exists"
	}
}

// ParsePresencePolicy parses "exists" or "truthy". An empty string selects the default.
func ParsePresencePolicy(s string) (PresencePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "exists":
		return PresenceExists, nil
	case "truthy":
		return PresenceTruthy, nil
	default:
		return PresenceExists, fmt.Errorf("unknown presence policy %q (want exists or truthy)", s)
	}
}

// Present reports whether answers satisfies question id under p.
func (p PresencePolicy) Present(answers Answers, id string) bool {
	a, ok := answers[id]
	if !ok {
		return false
	}
	if p == PresenceTruthy {
		return !a.IsBlank()
	}
	return true
}

// CanAdvance reports whether every required question of the active scenario
// is answered. Positions without an active scenario never block.
func CanAdvance(s State, cat *catalog.Catalog, policy PresencePolicy) bool {
	return len(MissingRequired(s, cat, policy)) == 0
}

// MissingRequired lists the required questions of the active scenario that
// are not yet answered, in catalog order.
func MissingRequired(s State, cat *catalog.Catalog, policy PresencePolicy) []catalog.Question {
	scn, ok := cat.Scenario(s.CurrentSection, s.CurrentScenario)
	if !ok {
		return nil
	}

	var missing []catalog.Question
	for _, q := range scn.RequiredQuestions() {
		if !policy.Present(s.Answers, q.ID) {
			missing = append(missing, q)
		}
	}
	return missing
}
