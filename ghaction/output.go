/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package ghaction

import (
	"fmt"
	"io"

	"github.com/sethvargo/go-githubactions"
)

// WriteSummary appends markdown to the job summary file.
// An empty path is a no-op, which is the case outside Actions.
func WriteSummary(path, markdown string) (err error) {
	if path == "" {
		return nil
	}
	action := githubactions.New(
		githubactions.WithWriter(io.Discard),
		githubactions.WithGetenv(func(key string) string {
			if key == "GITHUB_STEP_SUMMARY" {
				return path
			}
			return ""
		}),
	)

	// File commands panic when the file cannot be written.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("writing step summary: %v", r)
		}
	}()
	action.AddStepSummary(markdown)
	return nil
}

// Error emits an error workflow command so the message is annotated on the run.
func Error(w io.Writer, title, message string) {
	githubactions.New(githubactions.WithWriter(w)).
		WithFieldsMap(map[string]string{"title": title}).
		Errorf("%s", message)
}
