package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestKafkaClusterJSON(t *testing.T) {
	updated := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	in := KafkaCluster{
		ID:        "my-cluster",
		Name:      "My Cluster",
		Namespace: "kafka",
		Listeners: []KafkaListener{
			NewKafkaListener("internal", "my-cluster-kafka-bootstrap.kafka:9092", "none"),
			NewKafkaListener("route", "my-cluster.apps:443", "scram-sha-512"),
		},
		UpdatedAt: updated,
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out KafkaCluster
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("cluster mismatch (-want +got):\n%s", diff)
	}
}

func TestNewClusterResource(t *testing.T) {
	controller := &Node{ID: 1, Host: "b1", Port: 9092}
	c := &KafkaCluster{
		ID:             "c1",
		Name:           "one",
		Namespace:      "ns",
		Listeners:      []KafkaListener{NewKafkaListener("internal", "b1:9092", "none")},
		Nodes:          []Node{{ID: 1, Host: "b1", Port: 9092}},
		Controller:     controller,
		KafkaClusterID: "abc",
	}

	want := ClusterResource{
		ID:   "c1",
		Type: "kafkas",
		Attributes: ClusterAttributes{
			Name:       "one",
			Namespace:  "ns",
			ClusterID:  "abc",
			Listeners:  c.Listeners,
			Nodes:      c.Nodes,
			Controller: controller,
		},
	}

	if diff := cmp.Diff(want, NewClusterResource(c)); diff != "" {
		t.Errorf("resource mismatch (-want +got):\n%s", diff)
	}
}

func TestNewClusterResourceEmptyCollections(t *testing.T) {
	data, err := json.Marshal(ClusterResponse{Data: NewClusterResource(&KafkaCluster{ID: "c1", Name: "one"})})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"data":{"id":"c1","type":"kafkas","attributes":{"name":"one","listeners":[],"nodes":[]}}}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}
