/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package main implements critical-path-check, a GitHub Actions step that
// requires PR descriptions to answer the critical path question.
// Failing PRs get one corrective comment and a failed step; passing PRs get a
// triage label.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"chainguard.dev/criticalpath/checker"
	"chainguard.dev/criticalpath/ghaction"
	"chainguard.dev/criticalpath/ghclient"
	"chainguard.dev/criticalpath/policy"
	"github.com/chainguard-dev/clog"
	"github.com/google/go-github/v84/github"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"
)

// errStandalone is returned when run outside a workflow with nothing to check.
var errStandalone = errors.New("not running in GitHub Actions")

const usageNotice = `Critical Path Check
This tool should be run as a GitHub Actions step on pull_request events.
To check a PR by hand, pass --pr <number> --repo <owner/name> with GITHUB_TOKEN set,
or --event-path <payload.json>.
`

type options struct {
	eventPath string
	repo      string
	pr        int
	dryRun    bool
	noLabel   bool
	logLevel  string
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(nil).ExecuteContext(ctx)
	cancel()
	if err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command. A nil lookuper reads the process environment.
func newRootCmd(lookuper envconfig.Lookuper) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "critical-path-check",
		Short: "Require PR descriptions to answer the critical path question",
		Long: `Validates that the pull request description contains a checked
"Is this effort on the critical path" checkbox followed by an explanation.

On failure one corrective comment is posted and the command exits non-zero.
On success the PR is labeled critical-path or defer-after-mvp.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), lookuper, opts)
		},
	}

	cmd.Flags().StringVar(&opts.eventPath, "event-path", "", "Path to the event payload (default $GITHUB_EVENT_PATH)")
	cmd.Flags().StringVar(&opts.repo, "repo", "", "Repository as owner/name (default $GITHUB_REPOSITORY)")
	cmd.Flags().IntVar(&opts.pr, "pr", 0, "Fetch and check this PR number instead of reading an event payload")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Log the comment or label instead of posting it")
	cmd.Flags().BoolVar(&opts.noLabel, "no-label", false, "Do not apply a triage label to passing PRs")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	return cmd
}

func run(ctx context.Context, stdout, stderr io.Writer, lookuper envconfig.Lookuper, opts *options) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	log := clog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	ctx = clog.WithLogger(ctx, log)

	env, err := ghaction.LoadEnvironment(ctx, lookuper)
	if err != nil {
		log.Errorf("Loading environment: %v", err)
		return err
	}
	if opts.eventPath == "" {
		opts.eventPath = env.EventPath
	}
	if opts.repo == "" {
		opts.repo = env.Repository
	}

	if !env.InActions() && opts.eventPath == "" && opts.pr == 0 {
		fmt.Fprint(stdout, usageNotice)
		return errStandalone
	}

	ev, gh, err := loadEvent(ctx, env, opts)
	if err != nil {
		log.Errorf("Loading event: %v", err)
		return err
	}

	issues, err := issuesFor(ctx, env, opts, ev, gh)
	if err != nil {
		log.Errorf("Creating GitHub client: %v", err)
		return err
	}

	c := checker.New(issues, checker.WithQuestion(env.Question), checker.WithLabels(!opts.noLabel))
	verdict, err := c.Check(ctx, ev)
	if verdict != nil {
		report := policy.Report{Owner: ev.Owner, Repo: ev.Repo, Number: ev.PullRequest.GetNumber(), Verdict: *verdict}
		if serr := ghaction.WriteSummary(env.StepSummary, report.Markdown()); serr != nil {
			log.Warnf("Failed to write step summary: %v", serr)
		}
	}

	var failure *policy.Failure
	if errors.As(err, &failure) && env.InActions() {
		ghaction.Error(stdout, "Critical path check", failure.Message)
	}
	return err
}

// loadEvent reads the event payload, or fetches the PR when --pr is set.
// The client is returned when one had to be created.
func loadEvent(ctx context.Context, env *ghaction.Environment, opts *options) (*checker.Event, *github.Client, error) {
	if opts.pr > 0 {
		owner, repo, err := ghaction.SplitRepository(opts.repo)
		if err != nil {
			return nil, nil, err
		}
		gh, err := newClient(ctx, env)
		if err != nil {
			return nil, nil, err
		}
		ev, err := ghaction.FetchEvent(ctx, gh.PullRequests, owner, repo, opts.pr)
		if err != nil {
			return nil, nil, err
		}
		return ev, gh, nil
	}

	// The payload carries the repository, so a missing slug is not fatal here.
	owner, repo, _ := ghaction.SplitRepository(opts.repo)
	ev, err := ghaction.LoadEvent(opts.eventPath, owner, repo)
	if err != nil {
		return nil, nil, err
	}
	if ev.PullRequest != nil && (ev.Owner == "" || ev.Repo == "") {
		return nil, nil, fmt.Errorf("unknown repository for PR #%d: set --repo or GITHUB_REPOSITORY", ev.PullRequest.GetNumber())
	}
	return ev, nil, nil
}

// issuesFor picks where comments and labels go. Skipped events never reach
// the issues API, so no client is created for them.
func issuesFor(ctx context.Context, env *ghaction.Environment, opts *options, ev *checker.Event, gh *github.Client) (checker.IssuesService, error) {
	if opts.dryRun || ev.PullRequest == nil {
		return checker.LogOnly{}, nil
	}
	if gh == nil {
		var err error
		if gh, err = newClient(ctx, env); err != nil {
			return nil, err
		}
	}
	return gh.Issues, nil
}

func newClient(ctx context.Context, env *ghaction.Environment) (*github.Client, error) {
	return ghclient.New(ctx, ghclient.Options{
		APIURL:         env.APIURL,
		Token:          env.Token,
		AppID:          env.AppID,
		InstallationID: env.InstallationID,
		PrivateKeyPath: env.PrivateKeyPath,
	})
}
