/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package ghclient constructs authenticated GitHub REST clients.
package ghclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/chainguard-dev/clog"
	"github.com/google/go-github/v84/github"
	"golang.org/x/oauth2"
)

// ErrNoCredentials is returned when neither a token nor app credentials are set.
var ErrNoCredentials = errors.New("no GitHub credentials: set GITHUB_TOKEN or GitHub App credentials")

// Options selects the endpoint and credentials.
type Options struct {
	// APIURL is the REST base; empty or the public endpoint means github.com.
	APIURL string

	Token string

	AppID          int64
	InstallationID int64
	PrivateKeyPath string

	// Transport is the base transport, http.DefaultTransport when nil.
	Transport http.RoundTripper
}

func (o Options) hasApp() bool {
	return o.AppID != 0 && o.InstallationID != 0 && o.PrivateKeyPath != ""
}

// New returns a client authenticated with the token when one is set,
// otherwise as the GitHub App installation.
func New(ctx context.Context, opts Options) (*github.Client, error) {
	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	var httpClient *http.Client
	switch {
	case opts.Token != "":
		clog.FromContext(ctx).Debug("Using token authentication")
		ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Transport: base})
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token}))

	case opts.hasApp():
		clog.FromContext(ctx).Debugf("Using GitHub App authentication: app=%d installation=%d", opts.AppID, opts.InstallationID)
		key, err := os.ReadFile(opts.PrivateKeyPath)
		if err != nil {
			return nil, fmt.Errorf("reading app private key: %w", err)
		}
		tr, err := ghinstallation.New(base, opts.AppID, opts.InstallationID, key)
		if err != nil {
			return nil, fmt.Errorf("creating installation transport: %w", err)
		}
		if enterprise(opts.APIURL) {
			tr.BaseURL = strings.TrimSuffix(opts.APIURL, "/")
		}
		httpClient = &http.Client{Transport: tr}

	default:
		return nil, ErrNoCredentials
	}

	gh := github.NewClient(httpClient)
	if !enterprise(opts.APIURL) {
		return gh, nil
	}
	gh, err := gh.WithEnterpriseURLs(opts.APIURL, opts.APIURL)
	if err != nil {
		return nil, fmt.Errorf("configuring enterprise URLs: %w", err)
	}
	return gh, nil
}

// enterprise reports whether apiURL points somewhere other than github.com.
func enterprise(apiURL string) bool {
	u := strings.TrimSuffix(apiURL, "/")
	return u != "" && u != "https://api.github.com"
}
