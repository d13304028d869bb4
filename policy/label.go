/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package policy

import (
	"regexp"
	"strings"
	"unicode"
)

// Label is a triage label applied to passing PRs.
type Label string

const (
	LabelCriticalPath  Label = "critical-path"
	LabelDeferAfterMVP Label = "defer-after-mvp"
)

// CriticalKeywords are the whole words that mark an explanation as critical path.
var CriticalKeywords = []string{"yes", "critical", "mvp", "blocking", "required"}

var criticalRegex = regexp.MustCompile(`(?i)\b(` + strings.Join(CriticalKeywords, "|") + `)\b`)

// negations flip the keyword that follows them ("not required", "unrelated to MVP").
var negations = map[string]bool{
	"no": true, "not": true, "non": true, "never": true, "unrelated": true, "without": true,
}

// fillers may sit between a negation and the keyword it applies to.
var fillers = map[string]bool{
	"to": true, "for": true, "the": true, "a": true, "an": true, "our": true, "any": true,
}

// Classify picks the triage label for an explanation. An explanation is on
// the critical path when it mentions one of CriticalKeywords as a whole word,
// case-insensitively, without a negation directly in front of it.
func Classify(explanation string) Label {
	for _, loc := range criticalRegex.FindAllStringIndex(explanation, -1) {
		if !negated(explanation[:loc[0]]) {
			return LabelCriticalPath
		}
	}
	return LabelDeferAfterMVP
}

// negated reports whether the text before a keyword ends in a negation,
// allowing up to two filler words in between.
func negated(prefix string) bool {
	words := strings.FieldsFunc(strings.ToLower(prefix), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	skipped := 0
	for i := len(words) - 1; i >= 0; i-- {
		switch {
		case negations[words[i]]:
			return true
		case fillers[words[i]] && skipped < 2:
			skipped++
		default:
			return false
		}
	}
	return false
}
