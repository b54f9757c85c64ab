package lint

import (
	"regexp"
	"strings"
)

var (
	strictJSONRes = []*regexp.Regexp{
		regexp.MustCompile(`solo\s+json\b`),
		regexp.MustCompile(`only\s+json\b`),
		regexp.MustCompile(`json\s+válido\b`),
		regexp.MustCompile(`valid\s+json\b`),
		regexp.MustCompile(`sin\s+texto\s+extra\b`),
		regexp.MustCompile(`no\s+incluyas\s+texto\b`),
	}

	jsonRes = []*regexp.Regexp{
		regexp.MustCompile(`\bjson\b`),
		regexp.MustCompile(`\bschema\b`),
		regexp.MustCompile(`\bcampos\b`),
		regexp.MustCompile(`\bfields\b`),
		regexp.MustCompile(`\bparseable\b`),
	}

	tableRes = []*regexp.Regexp{
		regexp.MustCompile(`\btabla\b`),
		regexp.MustCompile(`\btable\b`),
		regexp.MustCompile(`\bmarkdown\s+table\b`),
		regexp.MustCompile(`\btabular\b`),
	}

	stepsRes = []*regexp.Regexp{
		regexp.MustCompile(`\bpasos\b`),
		regexp.MustCompile(`\bsteps\b`),
		regexp.MustCompile(`\bpaso\s+1\b`),
		regexp.MustCompile(`\bstep\s+1\b`),
		regexp.MustCompile(`\bnumbered\b`),
		regexp.MustCompile(`\benumerad[ao]s?\b`),
	}

	bulletsRes = []*regexp.Regexp{
		regexp.MustCompile(`\bviñetas\b`),
		regexp.MustCompile(`\bbullets?\b`),
		regexp.MustCompile(`\blista\b`),
		regexp.MustCompile(`\bchecklist\b`),
		regexp.MustCompile(`\b- `),
	}
)

func matchAny(res []*regexp.Regexp, s string) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// DetectOutputFormat finds the requested output shape, if any. Priority when
// several families match: json > table > steps > bullets. JSON strictness
// propagates independently of which phrase triggered it.
func DetectOutputFormat(prompt string) *OutputFormat {
	p := strings.ToLower(prompt)

	strict := matchAny(strictJSONRes, p)

	switch {
	case matchAny(jsonRes, p):
		return &OutputFormat{Kind: FormatJSON, Strict: strict}
	case matchAny(tableRes, p):
		return &OutputFormat{Kind: FormatTable}
	case matchAny(stepsRes, p):
		return &OutputFormat{Kind: FormatSteps}
	case matchAny(bulletsRes, p):
		return &OutputFormat{Kind: FormatBullets}
	}
	return nil
}
