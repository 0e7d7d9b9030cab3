package assessment

import (
	"errors"
	"testing"

	"github.com/abhisek/balancer/internal/catalog"
	"github.com/abhisek/balancer/internal/scoring"
)

func mustNext(t *testing.T, s State, cat *catalog.Catalog) State {
	t.Helper()
	got, err := Next(s, cat, PresenceExists)
	if err != nil {
		t.Fatalf("Next at %d/%d: %v", s.CurrentSection, s.CurrentScenario, err)
	}
	return got
}

func TestNext_Walkthrough(t *testing.T) {
	cat := testCatalog(t)
	s := New(testStart)

	s = mustNext(t, s, cat)
	if s.CurrentSection != 1 || s.CurrentScenario != 0 {
		t.Fatalf("after intro: %d/%d, want 1/0", s.CurrentSection, s.CurrentScenario)
	}

	if _, err := Next(s, cat, PresenceExists); !errors.Is(err, ErrBlocked) {
		t.Fatalf("err = %v, want ErrBlocked", err)
	}

	s = RecordAnswer(s, "a-choice", ChoiceAnswer("Careful"))
	s = mustNext(t, s, cat)
	if s.CurrentScenario != 1 {
		t.Fatalf("CurrentScenario = %d, want 1", s.CurrentScenario)
	}

	s = RecordAnswer(s, "a-rank", RankingAnswer([]string{"Three", "One", "Two"}))
	s = RecordAnswer(s, "a-scale", ScaleAnswer("5"))
	s = mustNext(t, s, cat)
	s = mustNext(t, s, cat)
	if s.CurrentSection != 2 || s.CurrentScenario != 0 {
		t.Fatalf("after alpha: %d/%d, want 2/0", s.CurrentSection, s.CurrentScenario)
	}

	s = mustNext(t, s, cat)
	if !s.Completed || s.Result == nil {
		t.Fatal("expected completion from the last section")
	}
	if s.Result.OverallScore != 36 || s.Result.Profile != scoring.ProfileEmerging {
		t.Errorf("result = %d %q", s.Result.OverallScore, s.Result.Profile)
	}
	if s.CurrentSection != 2 {
		t.Errorf("completion must not move past the last section, got %d", s.CurrentSection)
	}

	if _, err := Next(s, cat, PresenceExists); !errors.Is(err, ErrAlreadyCompleted) {
		t.Errorf("err = %v, want ErrAlreadyCompleted", err)
	}
}

func TestNext_DefaultCatalogAllAnswered(t *testing.T) {
	cat := catalog.Default()
	s := New(testStart)

	for i := 0; i < 20 && !s.Completed; i++ {
		if scn, ok := cat.Scenario(s.CurrentSection, s.CurrentScenario); ok {
			for _, q := range scn.Questions {
				var a Answer
				switch q.Type {
				case catalog.TypeRanking:
					a = RankingAnswer(q.Options)
				case catalog.TypeText:
					a = TextAnswer("answer")
				case catalog.TypeScale:
					a = ScaleAnswer(q.Options[0])
				default:
					a = ChoiceAnswer(q.Options[0])
				}
				s = RecordAnswer(s, q.ID, a)
			}
		}
		s = mustNext(t, s, cat)
	}

	if !s.Completed {
		t.Fatal("expected to complete the default catalog")
	}
	if s.AnsweredCount() != 9 {
		t.Errorf("answered %d, want 9", s.AnsweredCount())
	}
	if s.Result.OverallScore != 100 || s.Result.Profile != scoring.ProfileBalanced {
		t.Errorf("result = %d %q, want 100 Balanced Performer", s.Result.OverallScore, s.Result.Profile)
	}
	if s.CurrentSection != cat.LastSectionIndex() {
		t.Errorf("CurrentSection = %d, want %d", s.CurrentSection, cat.LastSectionIndex())
	}
}

func TestBack(t *testing.T) {
	s := New(testStart)
	if got := Back(s); got.CurrentSection != 0 || got.CurrentScenario != 0 {
		t.Error("back on the first step must be a no-op")
	}

	s.CurrentSection, s.CurrentScenario = 1, 2
	s = Back(s)
	if s.CurrentSection != 1 || s.CurrentScenario != 1 {
		t.Errorf("position = %d/%d, want 1/1", s.CurrentSection, s.CurrentScenario)
	}

	s.CurrentScenario = 0
	s = Back(s)
	if s.CurrentSection != 0 || s.CurrentScenario != 0 {
		t.Errorf("position = %d/%d, want 0/0", s.CurrentSection, s.CurrentScenario)
	}

	done := Complete(New(testStart), scoring.ResultForCount(0))
	done.CurrentSection = 2
	if got := Back(done); got.CurrentSection != 2 {
		t.Error("back must be a no-op once completed")
	}
}

func TestDescribe(t *testing.T) {
	cat := testCatalog(t)

	p := Describe(New(testStart), cat)
	if !p.Intro || p.Scenario != nil || p.Progress != 0 {
		t.Errorf("intro position = %+v", p)
	}
	if p.SectionCount != 2 {
		t.Errorf("SectionCount = %d, want 2", p.SectionCount)
	}

	s := New(testStart)
	s.CurrentSection, s.CurrentScenario = 1, 1
	p = Describe(s, cat)
	if p.Intro || p.Pending || p.LastStep {
		t.Errorf("alpha-2 flags = %+v", p)
	}
	if p.Scenario == nil || p.Scenario.ID != "alpha-2" {
		t.Fatalf("Scenario = %v, want alpha-2", p.Scenario)
	}
	if p.ScenarioCount != 3 || p.SectionNumber != 1 {
		t.Errorf("ScenarioCount=%d SectionNumber=%d", p.ScenarioCount, p.SectionNumber)
	}
	if p.Progress != 0.25 {
		t.Errorf("Progress = %v, want 0.25", p.Progress)
	}

	s.CurrentSection, s.CurrentScenario = 2, 0
	p = Describe(s, cat)
	if !p.Pending || !p.LastStep || p.Section.ID != "beta" {
		t.Errorf("beta position = %+v", p)
	}
	if p.Progress != 0.75 {
		t.Errorf("Progress = %v, want 0.75", p.Progress)
	}

	p = Describe(Complete(s, scoring.ResultForCount(1)), cat)
	if p.Progress != 1 {
		t.Errorf("completed Progress = %v, want 1", p.Progress)
	}
}
