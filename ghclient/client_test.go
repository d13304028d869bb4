/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package ghclient

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// authRecorder records the Authorization header of each API request and
// mints installation tokens for app auth.
type authRecorder struct {
	mu    sync.Mutex
	paths []string
	auth  []string
}

func (a *authRecorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/app/installations/34/access_tokens") {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"token": "ghs_installation", "expires_at": "2099-01-01T00:00:00Z"}`))
		return
	}

	a.paths = append(a.paths, r.URL.Path)
	a.auth = append(a.auth, r.Header.Get("Authorization"))
	_, _ = w.Write([]byte(`{"number": 1}`))
}

func writeKey(t *testing.T) string {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "app.pem")
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	require.NoError(t, os.WriteFile(path, pemBytes, 0o600))
	return path
}

func TestNewNoCredentials(t *testing.T) {
	_, err := New(context.Background(), Options{})
	if !errors.Is(err, ErrNoCredentials) {
		t.Errorf("New error: got = %v, wanted = %v", err, ErrNoCredentials)
	}

	// Partial app credentials are not enough.
	_, err = New(context.Background(), Options{AppID: 1, InstallationID: 2})
	if !errors.Is(err, ErrNoCredentials) {
		t.Errorf("New error: got = %v, wanted = %v", err, ErrNoCredentials)
	}
}

func TestNewPublicEndpoint(t *testing.T) {
	gh, err := New(context.Background(), Options{Token: "tok", APIURL: "https://api.github.com/"})
	require.NoError(t, err)
	if got := gh.BaseURL.String(); got != "https://api.github.com/" {
		t.Errorf("BaseURL: got = %q, wanted = %q", got, "https://api.github.com/")
	}
}

func TestNewToken(t *testing.T) {
	rec := &authRecorder{}
	srv := httptest.NewServer(rec)
	t.Cleanup(srv.Close)

	gh, err := New(context.Background(), Options{APIURL: srv.URL, Token: "ghp_secret"})
	require.NoError(t, err)

	if _, _, err := gh.PullRequests.Get(context.Background(), "org", "repo", 1); err != nil {
		t.Fatalf("Get error: got = %v, wanted = nil", err)
	}
	require.Len(t, rec.auth, 1)
	if got, want := rec.auth[0], "Bearer ghp_secret"; got != want {
		t.Errorf("Authorization: got = %q, wanted = %q", got, want)
	}
	if got, want := rec.paths[0], "/api/v3/repos/org/repo/pulls/1"; got != want {
		t.Errorf("path: got = %q, wanted = %q", got, want)
	}
}

func TestNewApp(t *testing.T) {
	rec := &authRecorder{}
	srv := httptest.NewServer(rec)
	t.Cleanup(srv.Close)

	gh, err := New(context.Background(), Options{
		APIURL:         srv.URL,
		AppID:          12,
		InstallationID: 34,
		PrivateKeyPath: writeKey(t),
	})
	require.NoError(t, err)

	pr, _, err := gh.PullRequests.Get(context.Background(), "org", "repo", 1)
	require.NoError(t, err)
	if got := pr.GetNumber(); got != 1 {
		t.Errorf("number: got = %d, wanted = 1", got)
	}
	require.Len(t, rec.auth, 1)
	if !strings.Contains(rec.auth[0], "ghs_installation") {
		t.Errorf("Authorization: got = %q, wanted installation token", rec.auth[0])
	}
}

func TestNewAppBadKey(t *testing.T) {
	_, err := New(context.Background(), Options{
		AppID:          12,
		InstallationID: 34,
		PrivateKeyPath: filepath.Join(t.TempDir(), "missing.pem"),
	})
	if err == nil {
		t.Error("New error: got = nil, wanted error for missing key")
	}
}

func TestNewTokenWinsOverApp(t *testing.T) {
	gh, err := New(context.Background(), Options{
		Token:          "tok",
		AppID:          12,
		InstallationID: 34,
		PrivateKeyPath: "/does/not/exist",
	})
	require.NoError(t, err)
	require.NotNil(t, gh)
}
