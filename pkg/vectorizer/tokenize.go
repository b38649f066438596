package vectorizer

import (
	"regexp"
	"strings"
)

// tokenPattern matches runs of two or more word characters: letters, digits and '_'.
// Combining marks are not word characters, so decomposed "cafe\u0301" yields "cafe".
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

func tokenize(doc string, stopWords map[string]struct{}) []string {
	terms := tokenPattern.FindAllString(strings.ToLower(doc), -1)
	if len(stopWords) == 0 {
		return terms
	}
	kept := terms[:0]
	for _, t := range terms {
		if _, stop := stopWords[t]; !stop {
			kept = append(kept, t)
		}
	}
	return kept
}
