package engine

import (
	"strings"
	"testing"
)

func TestScoreBounds(t *testing.T) {
	cal := DefaultCalibration()

	vectors := []Features{
		{},
		{Words: 5},
		{Words: 500, HasGoal: true, HasInputs: true, HasAudience: true, HasExamples: true,
			HasConstraints: true, HasOutputFormat: true, HasSuccessCriteria: true, HasTone: true,
			HasLengthHint: true, HasTimeframe: true, HasRegion: true, HasErrorDetails: true,
			HasReproSteps: true},
		{Words: 2, InjectionLike: true, Contradictions: true, LanguageMismatch: true},
	}

	for _, f := range vectors {
		s := cal.Score(TaskText, TargetGPT, f, LangEN)
		if s.Score < 0 || s.Score > 100 {
			t.Fatalf("score out of bounds: %d for %+v", s.Score, f)
		}
		if s.Confidence < 0 || s.Confidence > 100 {
			t.Fatalf("confidence out of bounds: %d", s.Confidence)
		}
		for _, comp := range []int{s.Breakdown.Clarity, s.Breakdown.Context, s.Breakdown.Constraints,
			s.Breakdown.Output, s.Breakdown.Verifiability, s.Breakdown.Safety} {
			if comp < 0 || comp > 100 {
				t.Fatalf("component out of bounds: %+v", s.Breakdown)
			}
		}
	}
}

func TestSafetyPenalties(t *testing.T) {
	cal := DefaultCalibration()

	cases := []struct {
		name string
		f    Features
		want int
	}{
		{"clean", Features{}, 100},
		{"injection", Features{InjectionLike: true}, 60},
		{"contradiction", Features{Contradictions: true}, 75},
		{"mismatch", Features{LanguageMismatch: true}, 85},
		{"all three", Features{InjectionLike: true, Contradictions: true, LanguageMismatch: true}, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := cal.Score(TaskText, TargetGPT, tc.f, LangEN)
			if s.Breakdown.Safety != tc.want {
				t.Fatalf("safety = %d, want %d", s.Breakdown.Safety, tc.want)
			}
		})
	}
}

func TestClarityTiers(t *testing.T) {
	cal := DefaultCalibration()

	cases := []struct {
		words int
		want  int
	}{
		{3, 20},
		{8, 45},
		{15, 65},
		{25, 85},
		{40, 100},
	}
	for _, tc := range cases {
		s := cal.Score(TaskText, TargetGPT, Features{Words: tc.words}, LangEN)
		if s.Breakdown.Clarity != tc.want {
			t.Fatalf("clarity(%d words) = %d, want %d", tc.words, s.Breakdown.Clarity, tc.want)
		}
	}

	// goal and tone lift clarity past the length tier
	s := cal.Score(TaskText, TargetGPT, Features{Words: 25, HasGoal: true, HasTone: true}, LangEN)
	if s.Breakdown.Clarity != 100 {
		t.Fatalf("clarity with goal+tone = %d, want 100", s.Breakdown.Clarity)
	}
}

func TestExamplesBoostForStudyAndCode(t *testing.T) {
	cal := DefaultCalibration()

	f := Features{HasExamples: true}
	plain := cal.Score(TaskText, TargetGPT, f, LangEN).Breakdown.Context
	study := cal.Score(TaskStudy, TargetGPT, f, LangEN).Breakdown.Context
	coding := cal.Score(TaskCoding, TargetGPT, f, LangEN).Breakdown.Context

	if study != plain+8 || coding != plain+8 {
		t.Fatalf("expected +8 context boost, got plain=%d study=%d coding=%d", plain, study, coding)
	}
}

func TestConfidence(t *testing.T) {
	cal := DefaultCalibration()

	if got := cal.Score(TaskText, TargetGPT, Features{}, LangEN).Confidence; got != 55 {
		t.Fatalf("base confidence = %d, want 55", got)
	}

	full := Features{Words: 35, HasGoal: true, HasOutputFormat: true, HasConstraints: true}
	if got := cal.Score(TaskText, TargetGPT, full, LangEN).Confidence; got != 96 {
		t.Fatalf("full confidence = %d, want 96", got)
	}

	risky := Features{InjectionLike: true, Contradictions: true}
	if got := cal.Score(TaskText, TargetGPT, risky, LangEN).Confidence; got != 20 {
		t.Fatalf("risky confidence = %d, want 20", got)
	}
}

func TestExplainLocalization(t *testing.T) {
	cal := DefaultCalibration()

	es := cal.Score(TaskText, TargetGPT, Features{}, LangES)
	if len(es.Explain) == 0 || !strings.HasPrefix(es.Explain[0], "Prompt débil") {
		t.Fatalf("expected ES weak headline, got %v", es.Explain)
	}
	if len(es.Explain) > 4 {
		t.Fatalf("headline plus at most 3 bullets, got %d lines", len(es.Explain))
	}

	en := cal.Score(TaskText, TargetGPT, Features{}, LangEN)
	if !strings.HasPrefix(en.Explain[0], "Weak prompt") {
		t.Fatalf("expected EN weak headline, got %v", en.Explain)
	}
}
