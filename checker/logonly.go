/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package checker

import (
	"context"

	"github.com/chainguard-dev/clog"
	"github.com/google/go-github/v84/github"
)

// LogOnly is an IssuesService that logs the calls it would make.
type LogOnly struct{}

var _ IssuesService = LogOnly{}

// CreateComment implements IssuesService.
func (LogOnly) CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error) {
	clog.FromContext(ctx).With("body", comment.GetBody()).Infof("[dry-run] would comment on %s/%s#%d", owner, repo, number)
	return comment, nil, nil
}

// AddLabelsToIssue implements IssuesService.
func (LogOnly) AddLabelsToIssue(ctx context.Context, owner, repo string, number int, labels []string) ([]*github.Label, *github.Response, error) {
	clog.FromContext(ctx).Infof("[dry-run] would add labels %v to %s/%s#%d", labels, owner, repo, number)
	out := make([]*github.Label, 0, len(labels))
	for _, l := range labels {
		out = append(out, &github.Label{Name: github.Ptr(l)})
	}
	return out, nil, nil
}
