package models

import (
	"sort"
	"strings"
)

// TopicStatus summarizes the replication state of all partitions of a topic.
type TopicStatus string

const (
	TopicFullyReplicated  TopicStatus = "FullyReplicated"
	TopicUnderReplicated  TopicStatus = "UnderReplicated"
	TopicPartiallyOffline TopicStatus = "PartiallyOffline"
	TopicOffline          TopicStatus = "Offline"
)

// PartitionStatus is the replication state of a single partition.
type PartitionStatus string

const (
	PartitionFullyReplicated PartitionStatus = "FullyReplicated"
	PartitionUnderReplicated PartitionStatus = "UnderReplicated"
	PartitionOffline         PartitionStatus = "Offline"
)

const TopicResourceType = "topics"

// Replica is one assigned replica of a partition.
type Replica struct {
	NodeID int  `json:"nodeId"`
	InSync bool `json:"inSync"`
}

type Partition struct {
	Partition       int             `json:"partition"`
	Status          PartitionStatus `json:"status"`
	LeaderID        *int            `json:"leaderId,omitempty"`
	PreferredLeader bool            `json:"preferredLeader"`
	Replicas        []Replica       `json:"replicas"`
}

// NewPartition derives the status and preferred-leader flag. A nil leader means
// the partition has no live leader. The first assigned replica is the preferred leader.
func NewPartition(id int, leaderID *int, replicas []Replica) Partition {
	if replicas == nil {
		replicas = []Replica{}
	}

	p := Partition{
		Partition: id,
		Status:    PartitionFullyReplicated,
		LeaderID:  leaderID,
		Replicas:  replicas,
	}

	switch {
	case leaderID == nil:
		p.Status = PartitionOffline
	default:
		for _, r := range replicas {
			if !r.InSync {
				p.Status = PartitionUnderReplicated
				break
			}
		}
	}

	p.PreferredLeader = leaderID != nil && len(replicas) > 0 && replicas[0].NodeID == *leaderID
	return p
}

type Topic struct {
	Name       string      `json:"name"`
	Internal   bool        `json:"internal"`
	Status     TopicStatus `json:"status"`
	Partitions []Partition `json:"partitions"`
}

// NewTopic sorts the partitions by id and rolls their states up into the topic status.
func NewTopic(name string, internal bool, partitions []Partition) Topic {
	if partitions == nil {
		partitions = []Partition{}
	}
	sort.Slice(partitions, func(i, j int) bool {
		return partitions[i].Partition < partitions[j].Partition
	})

	return Topic{
		Name:       name,
		Internal:   internal,
		Status:     topicStatus(partitions),
		Partitions: partitions,
	}
}

func topicStatus(partitions []Partition) TopicStatus {
	if len(partitions) == 0 {
		return TopicOffline
	}

	offline, under := 0, 0
	for _, p := range partitions {
		switch p.Status {
		case PartitionOffline:
			offline++
		case PartitionUnderReplicated:
			under++
		}
	}

	switch {
	case offline == len(partitions):
		return TopicOffline
	case offline > 0:
		return TopicPartiallyOffline
	case under > 0:
		return TopicUnderReplicated
	default:
		return TopicFullyReplicated
	}
}

// Hidden reports whether the topic is internal to Kafka. By convention those
// are flagged by the broker or prefixed with "__".
func (t Topic) Hidden() bool {
	return t.Internal || strings.HasPrefix(t.Name, "__")
}

// FindTopic returns the topic with the given name.
func FindTopic(topics []Topic, name string) (Topic, bool) {
	for _, t := range topics {
		if t.Name == name {
			return t, true
		}
	}
	return Topic{}, false
}

type TopicAttributes struct {
	Name          string      `json:"name"`
	Internal      bool        `json:"internal"`
	Status        TopicStatus `json:"status"`
	NumPartitions int         `json:"numPartitions"`
	Partitions    []Partition `json:"partitions,omitempty"`
}

type TopicResource struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Attributes TopicAttributes `json:"attributes"`
}

type TopicResponse struct {
	Data TopicResource `json:"data"`
}

type TopicListResponse struct {
	Data []TopicResource `json:"data"`
}

type PartitionListResponse struct {
	Data []Partition `json:"data"`
}

// NewTopicResource converts a topic. Brokers report no topic ids on older metadata
// versions, so the name doubles as the id. Partitions are included only when withPartitions is set.
func NewTopicResource(t Topic, withPartitions bool) TopicResource {
	attrs := TopicAttributes{
		Name:          t.Name,
		Internal:      t.Internal,
		Status:        t.Status,
		NumPartitions: len(t.Partitions),
	}
	if withPartitions {
		attrs.Partitions = t.Partitions
		if attrs.Partitions == nil {
			attrs.Partitions = []Partition{}
		}
	}

	return TopicResource{
		ID:         t.Name,
		Type:       TopicResourceType,
		Attributes: attrs,
	}
}
