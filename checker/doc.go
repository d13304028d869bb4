/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package checker applies the critical path policy to a pull request event.
// It evaluates the PR description with the policy package and then performs
// the side effects the verdict calls for:
//
//  1. Skip events that carry no pull request
//  2. On a policy violation, post one corrective comment and return the Failure
//  3. On a pass, apply the triage label
//
// Both GitHub calls are best effort: their errors are logged and never change
// the outcome of the check.
//
// # Basic Usage
//
//	gh := github.NewClient(nil).WithAuthToken(token)
//	c := checker.New(gh.Issues)
//
//	verdict, err := c.Check(ctx, &checker.Event{
//	    Owner:       "org",
//	    Repo:        "repo",
//	    PullRequest: pr,
//	})
package checker
