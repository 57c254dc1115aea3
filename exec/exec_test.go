package exec

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDB struct {
	execTag  pgconn.CommandTag
	execErr  error
	rows     pgx.Rows
	queryErr error

	gotSQL  string
	gotArgs []any
}

func (s *stubDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	s.gotSQL = sql
	s.gotArgs = args
	return s.execTag, s.execErr
}

func (s *stubDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	s.gotSQL = sql
	s.gotArgs = args
	return s.rows, s.queryErr
}

func (s *stubDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	s.gotSQL = sql
	s.gotArgs = args
	return nil
}

// fakeRows serves canned single-column rows to pgx.CollectRows.
type fakeRows struct {
	values []any
	idx    int
	closed bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx <= len(r.values)
}

func (r *fakeRows) Scan(dest ...any) error {
	if len(dest) != 1 {
		return fmt.Errorf("expected 1 destination, got %d", len(dest))
	}
	switch d := dest[0].(type) {
	case *int64:
		*d = r.values[r.idx-1].(int64)
	case *string:
		*d = r.values[r.idx-1].(string)
	default:
		return fmt.Errorf("unsupported destination %T", dest[0])
	}
	return nil
}

func TestUnit(t *testing.T) {
	db := &stubDB{execTag: pgconn.NewCommandTag("DELETE 2")}

	err := Unit(context.Background(), db, "DELETE FROM t WHERE id = $1", int64(7))
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM t WHERE id = $1", db.gotSQL)
	assert.Equal(t, []any{int64(7)}, db.gotArgs)
}

func TestRowsAffected(t *testing.T) {
	db := &stubDB{execTag: pgconn.NewCommandTag("UPDATE 3")}

	n, err := RowsAffected(context.Background(), db, "UPDATE t SET x = $1", "v")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestRowsAffected_Error(t *testing.T) {
	db := &stubDB{execErr: errors.New("boom")}

	_, err := RowsAffected(context.Background(), db, "UPDATE t SET x = $1", "v")
	assert.Error(t, err)
}

func TestColumn(t *testing.T) {
	rows := &fakeRows{values: []any{"a", "b", "c"}}
	db := &stubDB{rows: rows}

	got, err := Column[string](context.Background(), db, "SELECT name FROM t")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.True(t, rows.closed)
}

func TestColumn_QueryError(t *testing.T) {
	db := &stubDB{queryErr: errors.New("no connection")}

	_, err := Column[int64](context.Background(), db, "SELECT id FROM t")
	assert.Error(t, err)
}

func TestCollect(t *testing.T) {
	rows := &fakeRows{values: []any{int64(1), int64(2)}}
	db := &stubDB{rows: rows}

	type pair struct{ ID int64 }
	got, err := Collect(context.Background(), db, "SELECT id FROM t", func(row pgx.CollectableRow) (pair, error) {
		var p pair
		err := row.Scan(&p.ID)
		return p, err
	})
	require.NoError(t, err)
	assert.Equal(t, []pair{{ID: 1}, {ID: 2}}, got)
}
