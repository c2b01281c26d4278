package models

import "time"

// Node is a broker reported by cluster metadata.
type Node struct {
	ID   int    `json:"id"`
	Host string `json:"host"`
	Port int    `json:"port"`
	Rack string `json:"rack,omitempty"`
}

// KafkaCluster is a registered cluster and the listeners clients may use to reach it.
type KafkaCluster struct {
	ID             string          `json:"id" validate:"nonzero"`
	Name           string          `json:"name"`
	Namespace      string          `json:"namespace,omitempty"`
	Listeners      []KafkaListener `json:"listeners" validate:"-"`
	Nodes          []Node          `json:"nodes,omitempty"`
	Controller     *Node           `json:"controller,omitempty"`
	KafkaClusterID string          `json:"clusterId,omitempty"`
	UpdatedAt      time.Time       `json:"updatedAt" validate:"-"`
}

// ClusterMetadata is what a live cluster reports about itself.
type ClusterMetadata struct {
	ClusterID  string  `json:"clusterId"`
	Controller *Node   `json:"controller,omitempty"`
	Nodes      []Node  `json:"nodes"`
	Topics     []Topic `json:"topics,omitempty"`
}

// ClusterAttributes is the attribute block of a cluster resource.
type ClusterAttributes struct {
	Name       string          `json:"name"`
	Namespace  string          `json:"namespace,omitempty"`
	ClusterID  string          `json:"clusterId,omitempty"`
	Listeners  []KafkaListener `json:"listeners"`
	Nodes      []Node          `json:"nodes"`
	Controller *Node           `json:"controller,omitempty"`
}

// ClusterResource is a cluster in resource form: id, type and attributes.
type ClusterResource struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	Attributes ClusterAttributes `json:"attributes"`
}

// ClusterResponse wraps a single cluster resource.
type ClusterResponse struct {
	Data ClusterResource `json:"data"`
}

// ClusterListResponse wraps a list of cluster resources.
type ClusterListResponse struct {
	Data []ClusterResource `json:"data"`
}

// ListenerListResponse wraps the listeners of one cluster.
type ListenerListResponse struct {
	Data []KafkaListener `json:"data"`
}

const ClusterResourceType = "kafkas"

// NewClusterResource converts a cluster into its resource form.
func NewClusterResource(c *KafkaCluster) ClusterResource {
	listeners := c.Listeners
	if listeners == nil {
		listeners = []KafkaListener{}
	}
	nodes := c.Nodes
	if nodes == nil {
		nodes = []Node{}
	}
	return ClusterResource{
		ID:   c.ID,
		Type: ClusterResourceType,
		Attributes: ClusterAttributes{
			Name:       c.Name,
			Namespace:  c.Namespace,
			ClusterID:  c.KafkaClusterID,
			Listeners:  listeners,
			Nodes:      nodes,
			Controller: c.Controller,
		},
	}
}
