package main

import (
	"strings"
	"testing"

	"kafka-console/internal/models"
)

func TestTestCluster(t *testing.T) {
	c := testCluster(7)

	if c.ID != "test-cluster-7" || c.Namespace != "kafka" {
		t.Errorf("unexpected cluster %s/%s", c.Namespace, c.ID)
	}
	if len(c.Listeners) != 4 {
		t.Fatalf("expected 4 listeners, got %d", len(c.Listeners))
	}
	for _, l := range c.Listeners {
		if !models.KafkaListenerType(l.Type()).IsKnown() {
			t.Errorf("listener type %q is not a known type", l.Type())
		}
		if l.BootstrapServers() == "" {
			t.Errorf("listener %v has no bootstrap servers", l)
		}
	}
}

func TestRunReturnsConfigErrors(t *testing.T) {
	t.Setenv("KAFKA_DIAL_TIMEOUT", "0s")

	err := run(1)
	if err == nil || !strings.Contains(err.Error(), "KAFKA_DIAL_TIMEOUT") {
		t.Errorf("expected a config error, got %v", err)
	}
}
