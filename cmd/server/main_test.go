package main

import (
	"strings"
	"testing"
)

func TestRunReturnsConfigErrors(t *testing.T) {
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "0s")

	err := run()
	if err == nil || !strings.Contains(err.Error(), "HTTP_SHUTDOWN_TIMEOUT") {
		t.Errorf("expected a config error, got %v", err)
	}
}
