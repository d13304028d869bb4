/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package policy

import (
	"regexp"
	"strings"
	"unicode/utf16"
)

// DefaultQuestion is the policy question every PR description must answer.
const DefaultQuestion = "Is this effort on the critical path to a functional MVP?"

// MinExplanationLength is the minimum length of an explanation, in UTF-16
// code units as counted by the GitHub web editor.
const MinExplanationLength = 10

// CheckboxRegex matches the task-list item for the critical path question,
// capturing the box state. Only the question prefix is matched so that
// rewordings of the trailing text are still recognized. The match is case
// insensitive but only a lowercase "x" counts as checked.
var CheckboxRegex = regexp.MustCompile(`(?i)- \[(x| )\] Is this effort on the critical path`)

// CheckResult holds what was parsed out of a PR description.
type CheckResult struct {
	CheckboxPresent bool
	Checked         bool
	Explanation     string
}

// Parse extracts the checkbox state and explanation from a PR body.
func Parse(body string) CheckResult {
	m := CheckboxRegex.FindStringSubmatch(body)
	if m == nil {
		return CheckResult{}
	}
	return CheckResult{
		CheckboxPresent: true,
		Checked:         m[1] == "x",
		Explanation:     ExtractExplanation(body),
	}
}

// ExtractExplanation collects the text following the checkbox line.
//
// Lines after the checkbox are kept when they are non-blank and do not start
// with '#' or '-'. Collection stops at the first line starting with "---"
// once the checkbox has been seen. Headers and list items are skipped rather
// than treated as the end of the section.
func ExtractExplanation(body string) string {
	var parts []string
	found := false
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if found && trimmed != "" && !strings.HasPrefix(line, "#") && !strings.HasPrefix(line, "-") {
			parts = append(parts, trimmed)
		}
		if CheckboxRegex.MatchString(line) {
			found = true
		}
		if found && strings.HasPrefix(line, "---") {
			break
		}
	}
	return strings.Join(parts, " ")
}

// ExplanationLength returns the length of s in UTF-16 code units, so a
// character outside the Basic Multilingual Plane counts twice.
func ExplanationLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// rule is one step of the ordered evaluation.
type rule struct {
	failed func(CheckResult) bool
	reason Reason
}

var rules = []rule{{
	failed: func(r CheckResult) bool { return !r.CheckboxPresent },
	reason: ReasonCheckboxMissing,
}, {
	failed: func(r CheckResult) bool { return !r.Checked },
	reason: ReasonCheckboxUnchecked,
}, {
	failed: func(r CheckResult) bool { return ExplanationLength(r.Explanation) < MinExplanationLength },
	reason: ReasonExplanationInsufficient,
}}

// Verdict is the outcome of evaluating a PR description.
// Exactly one of Label or Failure is meaningful: Failure is nil on a pass.
type Verdict struct {
	Result  CheckResult
	Label   Label
	Failure *Failure
}

// Passed reports whether the description satisfied every check.
func (v Verdict) Passed() bool {
	return v.Failure == nil
}

// Evaluate parses the body and runs the checks in order using DefaultQuestion
// for any corrective comment.
func Evaluate(body string) Verdict {
	return EvaluateWithQuestion(body, DefaultQuestion)
}

// EvaluateWithQuestion is Evaluate with a custom question text for comments.
// Detection always uses CheckboxRegex.
func EvaluateWithQuestion(body, question string) Verdict {
	result := Parse(body)
	for _, r := range rules {
		if r.failed(result) {
			return Verdict{
				Result:  result,
				Failure: newFailure(r.reason, question),
			}
		}
	}
	return Verdict{
		Result: result,
		Label:  Classify(result.Explanation),
	}
}
