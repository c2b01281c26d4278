package models

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func intPtr(i int) *int { return &i }

func TestNewPartition(t *testing.T) {
	tests := []struct {
		name          string
		leader        *int
		replicas      []Replica
		wantStatus    PartitionStatus
		wantPreferred bool
	}{
		{
			name:          "all replicas in sync on the preferred leader",
			leader:        intPtr(1),
			replicas:      []Replica{{NodeID: 1, InSync: true}, {NodeID: 2, InSync: true}},
			wantStatus:    PartitionFullyReplicated,
			wantPreferred: true,
		},
		{
			name:       "follower lagging",
			leader:     intPtr(2),
			replicas:   []Replica{{NodeID: 1, InSync: false}, {NodeID: 2, InSync: true}},
			wantStatus: PartitionUnderReplicated,
		},
		{
			name:       "no leader",
			replicas:   []Replica{{NodeID: 1, InSync: true}},
			wantStatus: PartitionOffline,
		},
		{
			name:       "no replicas",
			leader:     intPtr(0),
			wantStatus: PartitionFullyReplicated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPartition(3, tt.leader, tt.replicas)

			if p.Partition != 3 {
				t.Errorf("partition = %d", p.Partition)
			}
			if p.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", p.Status, tt.wantStatus)
			}
			if p.PreferredLeader != tt.wantPreferred {
				t.Errorf("preferredLeader = %v, want %v", p.PreferredLeader, tt.wantPreferred)
			}
			if p.Replicas == nil {
				t.Error("replicas should never be nil")
			}
		})
	}
}

func TestNewTopicStatus(t *testing.T) {
	full := NewPartition(0, intPtr(1), []Replica{{NodeID: 1, InSync: true}})
	under := NewPartition(1, intPtr(1), []Replica{{NodeID: 1, InSync: true}, {NodeID: 2}})
	offline := NewPartition(2, nil, []Replica{{NodeID: 3}})

	tests := []struct {
		name       string
		partitions []Partition
		want       TopicStatus
	}{
		{"fully replicated", []Partition{full, full}, TopicFullyReplicated},
		{"under replicated", []Partition{full, under}, TopicUnderReplicated},
		{"partially offline", []Partition{under, offline}, TopicPartiallyOffline},
		{"offline", []Partition{offline}, TopicOffline},
		{"no partitions", nil, TopicOffline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewTopic("t", false, tt.partitions).Status; got != tt.want {
				t.Errorf("status = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNewTopicSortsPartitions(t *testing.T) {
	topic := NewTopic("t", false, []Partition{
		NewPartition(2, intPtr(0), nil),
		NewPartition(0, intPtr(0), nil),
		NewPartition(1, intPtr(0), nil),
	})

	var ids []int
	for _, p := range topic.Partitions {
		ids = append(ids, p.Partition)
	}
	if diff := cmp.Diff([]int{0, 1, 2}, ids); diff != "" {
		t.Errorf("partition order mismatch (-want +got):\n%s", diff)
	}
}

func TestTopicHidden(t *testing.T) {
	tests := []struct {
		topic Topic
		want  bool
	}{
		{Topic{Name: "orders"}, false},
		{Topic{Name: "__consumer_offsets"}, true},
		{Topic{Name: "_schemas"}, false},
		{Topic{Name: "metrics", Internal: true}, true},
	}

	for _, tt := range tests {
		if got := tt.topic.Hidden(); got != tt.want {
			t.Errorf("%s hidden = %v, want %v", tt.topic.Name, got, tt.want)
		}
	}
}

func TestFindTopic(t *testing.T) {
	topics := []Topic{{Name: "a"}, {Name: "b"}}

	if got, ok := FindTopic(topics, "b"); !ok || got.Name != "b" {
		t.Errorf("FindTopic(b) = %v, %v", got, ok)
	}
	if _, ok := FindTopic(topics, "c"); ok {
		t.Error("FindTopic(c) should miss")
	}
}

func TestNewTopicResource(t *testing.T) {
	topic := NewTopic("orders", false, []Partition{
		NewPartition(0, intPtr(1), []Replica{{NodeID: 1, InSync: true}}),
	})

	summary, err := json.Marshal(NewTopicResource(topic, false))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":"orders","type":"topics","attributes":{"name":"orders","internal":false,"status":"FullyReplicated","numPartitions":1}}`
	if string(summary) != want {
		t.Errorf("got %s, want %s", summary, want)
	}

	detail := NewTopicResource(topic, true)
	if diff := cmp.Diff(topic.Partitions, detail.Attributes.Partitions); diff != "" {
		t.Errorf("partitions mismatch (-want +got):\n%s", diff)
	}
}
