package config

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/validator.v2"
	"gopkg.in/yaml.v3"

	"kafka-console/internal/models"
)

// Catalog is the static list of clusters registered at startup.
//
// Example:
//
//	clusters:
//	  - id: my-cluster
//	    name: my-cluster
//	    namespace: kafka
//	    listeners:
//	      - type: internal
//	        bootstrapServers: my-cluster-kafka-bootstrap.kafka:9092
//	        authType: none
type Catalog struct {
	Clusters []CatalogCluster `yaml:"clusters"`
}

type CatalogCluster struct {
	ID        string            `yaml:"id" validate:"nonzero"`
	Name      string            `yaml:"name"`
	Namespace string            `yaml:"namespace"`
	Listeners []CatalogListener `yaml:"listeners"`
}

// Listener values are taken as-is, the type is not checked against the known kinds.
type CatalogListener struct {
	Type             string `yaml:"type"`
	BootstrapServers string `yaml:"bootstrapServers"`
	AuthType         string `yaml:"authType"`
}

// LoadCatalog reads and validates a catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	log.WithField("file", path).Info("Loading cluster catalog")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read catalog file: %w", err)
	}

	return ParseCatalog(data)
}

// ParseCatalog decodes catalog YAML and validates every cluster.
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("cannot decode catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(catalog.Clusters))
	for i, c := range catalog.Clusters {
		if err := validator.Validate(c); err != nil {
			return nil, fmt.Errorf("catalog cluster #%d: %w", i, err)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("catalog cluster #%d: duplicate id %q", i, c.ID)
		}
		seen[c.ID] = struct{}{}
	}

	return &catalog, nil
}

// ToClusters converts the catalog entries into cluster models stamped with now.
func (c *Catalog) ToClusters(now time.Time) []models.KafkaCluster {
	clusters := make([]models.KafkaCluster, 0, len(c.Clusters))
	for _, entry := range c.Clusters {
		listeners := make([]models.KafkaListener, 0, len(entry.Listeners))
		for _, l := range entry.Listeners {
			listeners = append(listeners, models.NewKafkaListener(l.Type, l.BootstrapServers, l.AuthType))
		}

		name := entry.Name
		if name == "" {
			name = entry.ID
		}

		clusters = append(clusters, models.KafkaCluster{
			ID:        entry.ID,
			Name:      name,
			Namespace: entry.Namespace,
			Listeners: listeners,
			UpdatedAt: now,
		})
	}
	return clusters
}
