/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package ghaction reads the GitHub Actions runtime surface: the environment
// the runner exports, the triggering event payload, the job summary file and
// workflow commands.
package ghaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

// DefaultAPIURL is the public GitHub REST endpoint.
const DefaultAPIURL = "https://api.github.com"

// Environment holds the variables the runner exports, plus the credentials
// and overrides this tool accepts.
type Environment struct {
	Actions     bool   `env:"GITHUB_ACTIONS,default=false"`
	EventName   string `env:"GITHUB_EVENT_NAME"`
	EventPath   string `env:"GITHUB_EVENT_PATH"`
	Repository  string `env:"GITHUB_REPOSITORY"`
	APIURL      string `env:"GITHUB_API_URL,default=https://api.github.com"`
	StepSummary string `env:"GITHUB_STEP_SUMMARY"`

	// Token auth; takes precedence over app auth.
	Token string `env:"GITHUB_TOKEN"`

	// GitHub App installation auth
	AppID          int64  `env:"GITHUB_APP_ID"`
	InstallationID int64  `env:"GITHUB_APP_INSTALLATION_ID"`
	PrivateKeyPath string `env:"GITHUB_APP_PRIVATE_KEY_PATH"`

	// Question overrides the policy question quoted in comments.
	Question string `env:"CRITICAL_PATH_QUESTION"`
}

// LoadEnvironment processes the environment through l.
// A nil l reads the process environment.
func LoadEnvironment(ctx context.Context, l envconfig.Lookuper) (*Environment, error) {
	if l == nil {
		l = envconfig.OsLookuper()
	}
	var env Environment
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &env,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}
	return &env, nil
}

// InActions reports whether the process runs inside a workflow step.
func (e *Environment) InActions() bool {
	return e.Actions || e.EventPath != ""
}

// OwnerRepo splits Repository ("owner/name").
func (e *Environment) OwnerRepo() (owner, repo string, err error) {
	return SplitRepository(e.Repository)
}

// SplitRepository splits an "owner/name" slug.
func SplitRepository(slug string) (owner, repo string, err error) {
	owner, repo, ok := strings.Cut(slug, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", fmt.Errorf("invalid repository %q, expected owner/name", slug)
	}
	return owner, repo, nil
}
