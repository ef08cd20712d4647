package util

import (
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
)

// SearchQuery represents the parsed components of a search string.
type SearchQuery struct {
	Scene  []string
	Shot   []string
	Camera []string
	Setup  []string
	Text   []string
}

var (
	sceneRegex  = regexp.MustCompile(`scene:(\S+)`)
	shotRegex   = regexp.MustCompile(`shot:(\S+)`)
	cameraRegex = regexp.MustCompile(`camera:(\S+)`)
	setupRegex  = regexp.MustCompile(`setup:(\S+)`)
)

// ParseSearchQuery breaks down a raw query string into its structured components.
func ParseSearchQuery(query string) SearchQuery {
	sq := SearchQuery{}

	extract := func(re *regexp.Regexp) []string {
		matches := re.FindAllStringSubmatch(query, -1)
		if matches == nil {
			return nil
		}
		var values []string
		for _, match := range matches {
			if len(match) > 1 {
				values = append(values, match[1])
			}
		}
		query = re.ReplaceAllString(query, "")
		return values
	}

	sq.Scene = extract(sceneRegex)
	sq.Shot = extract(shotRegex)
	sq.Camera = extract(cameraRegex)
	sq.Setup = extract(setupRegex)
	sq.Text = strings.Fields(strings.ToLower(query))

	return sq
}

// Empty reports whether the query has no constraints at all.
func (q SearchQuery) Empty() bool {
	return len(q.Scene) == 0 && len(q.Shot) == 0 && len(q.Camera) == 0 && len(q.Setup) == 0 && len(q.Text) == 0
}

// FuzzyTolerance is the edit distance allowed for a term of the given length.
func FuzzyTolerance(term string) int {
	switch n := len([]rune(term)); {
	case n <= 3:
		return 0
	case n <= 6:
		return 1
	default:
		return 2
	}
}

// FuzzyScore rates how well term matches text: 0 is a substring hit, higher
// values are edit distances to the closest word, and -1 means no match.
func FuzzyScore(term, text string) int {
	term = strings.ToLower(strings.TrimSpace(term))
	text = strings.ToLower(text)
	if term == "" {
		return 0
	}
	if strings.Contains(text, term) {
		return 0
	}
	best := -1
	tol := FuzzyTolerance(term)
	for _, word := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.' || r == ';' || r == ':' || r == '\n' || r == '\t'
	}) {
		d := levenshtein.ComputeDistance(term, word)
		if d <= tol && (best < 0 || d < best) {
			best = d
		}
	}
	return best
}
