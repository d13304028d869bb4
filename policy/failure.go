/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package policy

import "fmt"

// Reason identifies which check a description failed.
type Reason string

const (
	ReasonCheckboxMissing         Reason = "checkbox-missing"
	ReasonCheckboxUnchecked       Reason = "checkbox-unchecked"
	ReasonExplanationInsufficient Reason = "explanation-insufficient"
)

// Failure is a policy violation. It implements error so the CI harness can
// fail the check with it; Comment is the body to post on the PR.
type Failure struct {
	Reason  Reason
	Message string
	Comment string
}

func (f *Failure) Error() string {
	return f.Message
}

func newFailure(reason Reason, question string) *Failure {
	switch reason {
	case ReasonCheckboxMissing:
		return &Failure{
			Reason:  reason,
			Message: "critical path checkbox missing",
			Comment: "⚠️ **Critical Path Check Missing**\n\n" +
				"Please include the critical path question in your PR description:\n\n" +
				fmt.Sprintf("```\n%s\n```", CheckboxTemplate(question)),
		}
	case ReasonCheckboxUnchecked:
		return &Failure{
			Reason:  reason,
			Message: "critical path checkbox not checked",
			Comment: "⚠️ **Critical Path Question Unanswered**\n\n" +
				"Please check the box and provide an explanation for:\n\n" +
				fmt.Sprintf("**%s**", question),
		}
	default:
		return &Failure{
			Reason:  ReasonExplanationInsufficient,
			Message: "critical path explanation missing or insufficient",
			Comment: "⚠️ **Critical Path Explanation Required**\n\n" +
				"You've checked the box, but please provide a brief explanation:\n\n" +
				"- If YES: How does this work contribute to the MVP?\n" +
				"- If NO: Why is this being included now? Should it be behind a feature flag?",
		}
	}
}

// CheckboxTemplate is the unchecked task-list line authors should paste into
// their description.
func CheckboxTemplate(question string) string {
	return "- [ ] " + question
}
