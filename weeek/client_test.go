// ABOUTME: Tests for client construction, functional options, and environment-based setup.
// ABOUTME: Verifies the missing-credential path returns ConfigurationError before any network activity.

package weeek

import (
	"errors"
	"testing"
	"time"
)

func TestNewRequiresToken(t *testing.T) {
	for _, token := range []string{"", "   "} {
		_, err := New(token)
		var ce *ConfigurationError
		if !errors.As(err, &ce) {
			t.Errorf("token %q: expected ConfigurationError, got %T: %v", token, err, err)
		}
	}
}

func TestNewAppliesOptions(t *testing.T) {
	c, err := New("tok",
		WithBaseURL("https://example.test/api/"),
		WithTimeout(5*time.Second),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.baseURL != "https://example.test/api" {
		t.Errorf("expected trailing slash trimmed, got %q", c.baseURL)
	}
	if c.httpClient.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", c.httpClient.Timeout)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(envToken, "")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error with no token in environment")
	}

	t.Setenv(envToken, "env-token")
	t.Setenv(envBaseURL, "https://custom.test/v1")
	c, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.token != "env-token" {
		t.Errorf("expected token from environment, got %q", c.token)
	}
	if c.baseURL != "https://custom.test/v1" {
		t.Errorf("expected base URL from environment, got %q", c.baseURL)
	}

	// Explicit options win over the environment.
	c, err = FromEnv(WithBaseURL("https://explicit.test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.baseURL != "https://explicit.test" {
		t.Errorf("expected explicit base URL to win, got %q", c.baseURL)
	}
}
