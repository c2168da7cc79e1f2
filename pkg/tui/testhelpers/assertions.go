package testhelpers

import (
	"strings"
	"testing"
)

// AssertViewContains checks that a rendered view includes the expected text
func AssertViewContains(t *testing.T, view, expected string) {
	t.Helper()
	if !strings.Contains(view, expected) {
		t.Errorf("View missing expected text %q\nView:\n%s", expected, view)
	}
}

// AssertViewNotContains checks that a rendered view excludes the given text
func AssertViewNotContains(t *testing.T, view, unexpected string) {
	t.Helper()
	if strings.Contains(view, unexpected) {
		t.Errorf("View contains unexpected text %q\nView:\n%s", unexpected, view)
	}
}
