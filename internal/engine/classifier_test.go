package engine

import "testing"

func TestClassifyTask(t *testing.T) {
	cases := []struct {
		in   string
		want TaskCategory
	}{
		{"fix this bug in my python api", CategoryDebugging},
		{"write a short story about two wizards", CategoryWriting},
		{"summarize this article, tl;dr please", CategorySummarization},
		{"translate this paragraph", CategoryTranslation},
		{"extract the required fields into a json schema", CategoryDataExtraction},
		{"plan a roadmap with milestones for q3", CategoryPlanning},
		{"draft an apology for this support ticket", CategoryCustomerSupport},
		{"hello there", CategoryGeneral},
		{"", CategoryGeneral},
	}
	for _, tc := range cases {
		if got := ClassifyTask(tc.in); got != tc.want {
			t.Fatalf("ClassifyTask(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDebuggingBeatsPlainCoding(t *testing.T) {
	// both families match; the debugging boost must break the tie
	if got := ClassifyTask("my react app throws an exception"); got != CategoryDebugging {
		t.Fatalf("got %q, want %q", got, CategoryDebugging)
	}
	// code words alone stay coding
	if got := ClassifyTask("build a rest api in go with python bindings"); got != CategoryCoding {
		t.Fatalf("got %q, want %q", got, CategoryCoding)
	}
}
