/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package checker

import (
	"context"

	"chainguard.dev/criticalpath/policy"
	"github.com/chainguard-dev/clog"
	"github.com/google/go-github/v84/github"
)

// IssuesService is the subset of the GitHub issues API the checker calls.
// *github.IssuesService satisfies it.
type IssuesService interface {
	CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error)
	AddLabelsToIssue(ctx context.Context, owner, repo string, number int, labels []string) ([]*github.Label, *github.Response, error)
}

var _ IssuesService = (*github.IssuesService)(nil)

// Event is the input to a check. PullRequest is nil for non-PR triggers.
type Event struct {
	Owner       string
	Repo        string
	PullRequest *github.PullRequest
}

// Checker validates PR descriptions and reports the result on the PR.
type Checker struct {
	issues   IssuesService
	question string
	labels   bool
}

// Option configures a Checker.
type Option func(*Checker)

// WithQuestion overrides the policy question quoted in corrective comments.
func WithQuestion(question string) Option {
	return func(c *Checker) {
		if question != "" {
			c.question = question
		}
	}
}

// WithLabels toggles applying the triage label to passing PRs.
func WithLabels(enabled bool) Option {
	return func(c *Checker) {
		c.labels = enabled
	}
}

// New creates a Checker that reports through issues.
func New(issues IssuesService, opts ...Option) *Checker {
	c := &Checker{
		issues:   issues,
		question: policy.DefaultQuestion,
		labels:   true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check evaluates the pull request in ev.
//
// It returns a nil verdict and nil error when ev has no pull request. On a
// policy violation it posts one comment and returns the verdict together with
// its *policy.Failure as the error. On a pass it applies the triage label and
// returns the verdict with a nil error.
func (c *Checker) Check(ctx context.Context, ev *Event) (*policy.Verdict, error) {
	log := clog.FromContext(ctx)

	if ev == nil || ev.PullRequest == nil {
		log.Info("Not a pull request event, skipping")
		return nil, nil
	}

	number := ev.PullRequest.GetNumber()
	log = log.With("owner", ev.Owner, "repo", ev.Repo, "pr", number)
	ctx = clog.WithLogger(ctx, log)
	log.Infof("Checking PR #%d", number)

	verdict := policy.EvaluateWithQuestion(ev.PullRequest.GetBody(), c.question)
	if f := verdict.Failure; f != nil {
		log.With("reason", f.Reason).Warnf("Critical path check failed: %s", f.Message)
		c.comment(ctx, ev, number, f.Comment)
		return &verdict, f
	}

	log.With("explanation", verdict.Result.Explanation).Info("Critical path check passed")
	if c.labels {
		c.label(ctx, ev, number, verdict.Label)
	}
	return &verdict, nil
}

// comment posts body on the PR. Errors are logged, not returned.
func (c *Checker) comment(ctx context.Context, ev *Event, number int, body string) {
	if _, _, err := c.issues.CreateComment(ctx, ev.Owner, ev.Repo, number, &github.IssueComment{
		Body: github.Ptr(body),
	}); err != nil {
		clog.FromContext(ctx).Errorf("Failed to add comment: %v", err)
	}
}

// label applies the triage label. The label may not exist in the repository,
// so errors are logged, not returned.
func (c *Checker) label(ctx context.Context, ev *Event, number int, label policy.Label) {
	log := clog.FromContext(ctx)
	if _, _, err := c.issues.AddLabelsToIssue(ctx, ev.Owner, ev.Repo, number, []string{string(label)}); err != nil {
		log.Warnf("Could not add label %q (may not exist): %v", label, err)
		return
	}
	log.Infof("Added label: %s", label)
}
