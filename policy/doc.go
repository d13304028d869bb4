/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package policy evaluates pull request descriptions against the critical
// path policy. It performs no I/O: callers hand it the PR body and act on the
// returned Verdict.
//
// A conforming description contains a checked task-list item answering the
// critical path question, followed by a short explanation:
//
//	- [x] Is this effort on the critical path to a functional MVP?
//	Yes, the deploy pipeline is blocked on this change.
//
//	---
//
// Evaluation runs three ordered checks (checkbox present, checkbox checked,
// explanation long enough). The first failing check decides the Failure and
// the comment to post. A passing description is classified into one of two
// triage labels based on keywords in its explanation.
package policy
