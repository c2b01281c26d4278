package database

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"kafka-console/internal/models"
	"kafka-console/internal/ports"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeExecutor struct {
	sql  string
	args []any
	tag  pgconn.CommandTag
	err  error
}

func (f *fakeExecutor) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.sql = sql
	f.args = args
	return f.tag, f.err
}

// fakeRow scans a fixed set of column values.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r.values[i].(string)
		case *[]byte:
			*p = r.values[i].([]byte)
		case *time.Time:
			*p = r.values[i].(time.Time)
		default:
			return errors.New("unexpected scan target")
		}
	}
	return nil
}

type fakeQuerier struct {
	row fakeRow
}

func (q fakeQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	return q.row
}

func TestSaveClusterStoresListenersAsJSON(t *testing.T) {
	exec := &fakeExecutor{tag: pgconn.NewCommandTag("INSERT 0 1")}
	updated := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	cluster := &models.KafkaCluster{
		ID:        "c1",
		Name:      "one",
		Namespace: "kafka",
		Listeners: []models.KafkaListener{
			models.NewKafkaListener("tls", "broker1:9093,broker2:9093", "SCRAM-SHA-512"),
		},
		UpdatedAt: updated,
	}

	if err := saveCluster(context.Background(), exec, cluster); err != nil {
		t.Fatalf("saveCluster: %v", err)
	}

	if len(exec.args) != 6 {
		t.Fatalf("expected 6 args, got %d", len(exec.args))
	}
	want := `[{"type":"tls","bootstrapServers":"broker1:9093,broker2:9093","authType":"SCRAM-SHA-512"}]`
	if got := string(exec.args[3].([]byte)); got != want {
		t.Errorf("listeners column = %s, want %s", got, want)
	}
	if exec.args[5].(time.Time) != updated {
		t.Errorf("updated_at = %v", exec.args[5])
	}
}

func TestSaveClusterDefaults(t *testing.T) {
	exec := &fakeExecutor{}

	if err := saveCluster(context.Background(), exec, &models.KafkaCluster{ID: "c1"}); err != nil {
		t.Fatalf("saveCluster: %v", err)
	}

	if got := string(exec.args[3].([]byte)); got != "[]" {
		t.Errorf("listeners column = %s, want []", got)
	}
	if exec.args[5].(time.Time).IsZero() {
		t.Error("updated_at should default to now")
	}
}

func TestSaveClusterError(t *testing.T) {
	boom := errors.New("boom")
	exec := &fakeExecutor{err: boom}

	err := saveCluster(context.Background(), exec, &models.KafkaCluster{ID: "c1"})
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped error, got %v", err)
	}
}

func TestGetCluster(t *testing.T) {
	updated := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	listeners, _ := json.Marshal([]models.KafkaListener{
		models.NewKafkaListener("internal", "b1:9092", "none"),
	})

	q := fakeQuerier{row: fakeRow{values: []any{"c1", "one", "kafka", listeners, "abc", updated}}}

	got, err := getCluster(context.Background(), q, "c1")
	if err != nil {
		t.Fatalf("getCluster: %v", err)
	}

	want := &models.KafkaCluster{
		ID:             "c1",
		Name:           "one",
		Namespace:      "kafka",
		Listeners:      []models.KafkaListener{models.NewKafkaListener("internal", "b1:9092", "none")},
		KafkaClusterID: "abc",
		UpdatedAt:      updated,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cluster mismatch (-want +got):\n%s", diff)
	}
}

func TestGetClusterNotFound(t *testing.T) {
	q := fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}

	_, err := getCluster(context.Background(), q, "missing")
	if !errors.Is(err, ports.ErrClusterNotFound) {
		t.Errorf("expected ErrClusterNotFound, got %v", err)
	}
}

func TestGetClusterBadListenerJSON(t *testing.T) {
	q := fakeQuerier{row: fakeRow{values: []any{"c1", "one", "", []byte(`{`), "", time.Now()}}}

	if _, err := getCluster(context.Background(), q, "c1"); err == nil {
		t.Fatal("expected an error for corrupt listeners")
	}
}

func TestDeleteCluster(t *testing.T) {
	exec := &fakeExecutor{tag: pgconn.NewCommandTag("DELETE 1")}
	if err := deleteCluster(context.Background(), exec, "c1"); err != nil {
		t.Fatalf("deleteCluster: %v", err)
	}

	exec = &fakeExecutor{tag: pgconn.NewCommandTag("DELETE 0")}
	if err := deleteCluster(context.Background(), exec, "c1"); !errors.Is(err, ports.ErrClusterNotFound) {
		t.Errorf("expected ErrClusterNotFound, got %v", err)
	}
}

func TestUnmarshalListenersEmpty(t *testing.T) {
	got, err := unmarshalListeners(nil)
	if err != nil {
		t.Fatalf("unmarshalListeners: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected an empty slice, got %#v", got)
	}
}

// fakeRows serves fixed rows through the pgx.Rows interface.
type fakeRows struct {
	rows    []fakeRow
	next    int
	err     error
	closed  bool
	current fakeRow
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return r.current.values, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.next >= len(r.rows) {
		return false
	}
	r.current = r.rows[r.next]
	r.next++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return r.current.Scan(dest...)
}

type fakeRowsQuerier struct {
	sql  string
	rows *fakeRows
	err  error
}

func (q *fakeRowsQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.sql = sql
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func clusterRow(id, name string, listeners ...models.KafkaListener) fakeRow {
	data, _ := json.Marshal(listeners)
	return fakeRow{values: []any{id, name, "kafka", data, "", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}}
}

func TestGetAllClusters(t *testing.T) {
	internal := models.NewKafkaListener("internal", "a:9092", "none")
	route := models.NewKafkaListener("route", "b.apps:443", "scram-sha-512")

	rows := &fakeRows{rows: []fakeRow{
		clusterRow("a", "alpha", internal),
		clusterRow("b", "beta", internal, route),
	}}
	q := &fakeRowsQuerier{rows: rows}

	got, err := getAllClusters(context.Background(), q)
	if err != nil {
		t.Fatalf("getAllClusters: %v", err)
	}

	updated := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	want := []models.KafkaCluster{
		{ID: "a", Name: "alpha", Namespace: "kafka", Listeners: []models.KafkaListener{internal}, UpdatedAt: updated},
		{ID: "b", Name: "beta", Namespace: "kafka", Listeners: []models.KafkaListener{internal, route}, UpdatedAt: updated},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("clusters mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(q.sql, "ORDER BY name, id") {
		t.Errorf("query is not ordered by name: %s", q.sql)
	}
	if !rows.closed {
		t.Error("rows were not closed")
	}
}

func TestGetAllClustersEmpty(t *testing.T) {
	got, err := getAllClusters(context.Background(), &fakeRowsQuerier{rows: &fakeRows{}})
	if err != nil {
		t.Fatalf("getAllClusters: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no clusters, got %d", len(got))
	}
}

func TestGetAllClustersErrors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name string
		q    *fakeRowsQuerier
	}{
		{"query fails", &fakeRowsQuerier{err: boom}},
		{"scan fails", &fakeRowsQuerier{rows: &fakeRows{rows: []fakeRow{{err: boom}}}}},
		{"iteration fails", &fakeRowsQuerier{rows: &fakeRows{err: boom}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := getAllClusters(context.Background(), tt.q)
			if !errors.Is(err, boom) {
				t.Errorf("expected wrapped error, got %v", err)
			}
			if tt.q.rows != nil && !tt.q.rows.closed {
				t.Error("rows were not closed")
			}
		})
	}
}

func TestGetAllClustersCorruptListeners(t *testing.T) {
	rows := &fakeRows{rows: []fakeRow{
		{values: []any{"a", "alpha", "", []byte(`[{"type":1}]`), "", time.Now()}},
	}}

	if _, err := getAllClusters(context.Background(), &fakeRowsQuerier{rows: rows}); err == nil {
		t.Fatal("expected an error for corrupt listeners")
	}
}
