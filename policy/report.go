/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package policy

import (
	"fmt"
	"strings"
)

// Report describes one evaluation for the job summary.
type Report struct {
	Owner   string
	Repo    string
	Number  int
	Verdict Verdict
}

// Markdown renders the report as markdown for the job summary.
func (r Report) Markdown() string {
	var sb strings.Builder
	sb.WriteString("## Critical Path Check\n\n")
	if r.Owner != "" {
		sb.WriteString(fmt.Sprintf("Pull request: `%s/%s#%d`\n\n", r.Owner, r.Repo, r.Number))
	}
	sb.WriteString("| Check | Status |\n")
	sb.WriteString("|-------|--------|\n")

	res := r.Verdict.Result
	sb.WriteString(fmt.Sprintf("| Checkbox present | %s |\n", status(res.CheckboxPresent)))
	sb.WriteString(fmt.Sprintf("| Checkbox checked | %s |\n", status(res.CheckboxPresent && res.Checked)))
	sb.WriteString(fmt.Sprintf("| Explanation | %s |\n", status(r.Verdict.Passed())))

	if f := r.Verdict.Failure; f != nil {
		sb.WriteString("\n### Issue\n\n")
		sb.WriteString(f.Comment)
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("\n**Label:** `%s`\n\n", r.Verdict.Label))
	sb.WriteString(fmt.Sprintf("**Explanation:** %s\n", res.Explanation))
	return sb.String()
}

func status(ok bool) string {
	if ok {
		return "✅ Valid"
	}
	return "❌ Invalid"
}
