/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package ghaction

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"chainguard.dev/criticalpath/checker"
	"github.com/google/go-github/v84/github"
)

// LoadEvent decodes the webhook payload at path into a check event.
//
// Payloads without a pull_request object (push, schedule, ...) produce an
// event with a nil PullRequest. The payload's repository wins over owner and
// repo, which serve as the fallback from GITHUB_REPOSITORY.
func LoadEvent(path, owner, repo string) (*checker.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading event payload: %w", err)
	}
	return ParseEvent(data, owner, repo)
}

// ParseEvent is LoadEvent over an in-memory payload.
func ParseEvent(data []byte, owner, repo string) (*checker.Event, error) {
	var payload github.PullRequestEvent
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decoding event payload: %w", err)
	}

	ev := &checker.Event{
		Owner:       owner,
		Repo:        repo,
		PullRequest: payload.PullRequest,
	}
	if r := payload.GetRepo(); r.GetName() != "" && r.GetOwner().GetLogin() != "" {
		ev.Owner = r.GetOwner().GetLogin()
		ev.Repo = r.GetName()
	}
	return ev, nil
}

// PullRequestGetter is the subset of the pulls API FetchEvent uses.
// *github.PullRequestsService satisfies it.
type PullRequestGetter interface {
	Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error)
}

var _ PullRequestGetter = (*github.PullRequestsService)(nil)

// FetchEvent builds a check event by fetching the pull request.
func FetchEvent(ctx context.Context, pulls PullRequestGetter, owner, repo string, number int) (*checker.Event, error) {
	pr, _, err := pulls.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("fetching PR: %w", err)
	}
	return &checker.Event{
		Owner:       owner,
		Repo:        repo,
		PullRequest: pr,
	}, nil
}
