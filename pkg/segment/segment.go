// Package segment pre-chunks uploaded text into analysis units.
//
// Splitting is naive: every period ends a segment, so abbreviations ("Dr."), decimal
// numbers ("3.5") and ellipses all produce extra segments. Real sentence boundaries are
// recomputed by the analyzer for each segment and may disagree with these chunks.
package segment

import "strings"

const delimiter = "."

// Split cuts text on every period, trims each piece, drops empty pieces and re-appends
// the period to what remains.
func Split(text string) []string {
	pieces := strings.Split(text, delimiter)
	segments := make([]string, 0, len(pieces))
	for _, p := range pieces {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		segments = append(segments, p+delimiter)
	}
	return segments
}
