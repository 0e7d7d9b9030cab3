// Package scoring turns captured answers into an assessment result.
//
// The scoring model is a placeholder: only the number of distinct answered
// questions matters. There is no per-question weighting and no rubric.
package scoring

const (
	// AnswerWeight is the number of points each answered question is worth.
	AnswerWeight = 12

	// MaxScore caps the overall score.
	MaxScore = 100

	ThresholdBalanced   = 80
	ThresholdDeveloping = 60
)

// Section labels, in the order they are reported.
const (
	LabelScenarios      = "scenarios"
	LabelPractical      = "practical"
	LabelTimeManagement = "timeManagement"
	LabelProblemSolving = "problemSolving"
)

type sectionWeight struct {
	label  string
	factor float64
}

var sectionWeights = []sectionWeight{
	{LabelScenarios, 0.9},
	{LabelPractical, 0.8},
	{LabelTimeManagement, 0.85},
	{LabelProblemSolving, 0.88},
}

var (
	strengths    = []string{"Decision Making", "Adaptability", "Time Awareness"}
	improvements = []string{"Error Prevention", "Process Optimization"}

	recommendations = []string{
		"Practice more scenario-based decision making",
		"Develop systematic quality checks",
		"Improve time estimation skills",
	}
)

// OverallScore returns min(MaxScore, answered*AnswerWeight).
func OverallScore(answered int) int {
	switch {
	case answered <= 0:
		return 0
	case answered > MaxScore/AnswerWeight:
		return MaxScore
	}
	return min(MaxScore, answered*AnswerWeight)
}

// ProfileFor picks the profile label for an overall score.
func ProfileFor(score int) Profile {
	switch {
	case score >= ThresholdBalanced:
		return ProfileBalanced
	case score >= ThresholdDeveloping:
		return ProfileDeveloping
	default:
		return ProfileEmerging
	}
}

// ComputeResult builds a Result from a set of answers keyed by question id.
// Only len(answers) is consulted.
func ComputeResult[V any](answers map[string]V) Result {
	return ResultForCount(len(answers))
}

// ResultForCount builds the Result for a number of distinct answered questions.
func ResultForCount(answered int) Result {
	overall := OverallScore(answered)

	scores := make(SectionScores, 0, len(sectionWeights))
	for _, w := range sectionWeights {
		scores = append(scores, SectionScore{
			Label: w.label,
			Score: float64(overall) * w.factor,
		})
	}

	return Result{
		OverallScore:    overall,
		SectionScores:   scores,
		Profile:         ProfileFor(overall),
		Strengths:       clone(strengths),
		Improvements:    clone(improvements),
		Recommendations: clone(recommendations),
	}
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
