package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"kafka-console/internal/models"
)

const catalogYAML = `
clusters:
  - id: my-cluster
    name: My Cluster
    namespace: kafka
    listeners:
      - type: internal
        bootstrapServers: my-cluster-kafka-bootstrap.kafka:9092
        authType: none
      - type: not-a-strimzi-type
        bootstrapServers: my-cluster.example.com:443
        authType: scram-sha-512
  - id: bare
`

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(catalogYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	catalog, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	want := []models.KafkaCluster{
		{
			ID:        "my-cluster",
			Name:      "My Cluster",
			Namespace: "kafka",
			Listeners: []models.KafkaListener{
				models.NewKafkaListener("internal", "my-cluster-kafka-bootstrap.kafka:9092", "none"),
				models.NewKafkaListener("not-a-strimzi-type", "my-cluster.example.com:443", "scram-sha-512"),
			},
			UpdatedAt: now,
		},
		{
			ID:        "bare",
			Name:      "bare",
			Listeners: []models.KafkaListener{},
			UpdatedAt: now,
		},
	}

	if diff := cmp.Diff(want, catalog.ToClusters(now)); diff != "" {
		t.Errorf("clusters mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestParseCatalogErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"malformed", "clusters: [", "decode"},
		{"missing id", "clusters:\n  - name: nameless\n", "#0"},
		{"duplicate id", "clusters:\n  - id: a\n  - id: a\n", "duplicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.data))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseCatalogEmpty(t *testing.T) {
	catalog, err := ParseCatalog([]byte(""))
	if err != nil {
		t.Fatalf("ParseCatalog: %v", err)
	}
	if got := catalog.ToClusters(time.Now()); len(got) != 0 {
		t.Errorf("expected no clusters, got %d", len(got))
	}
}
