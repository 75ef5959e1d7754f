package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeRows yields no rows and reports a deferred iteration error, the way
// pgx surfaces a connection failure mid-stream.
type fakeRows struct {
	err error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return false }
func (r *fakeRows) Scan(dest ...any) error                       { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

type fakeDB struct {
	rows pgx.Rows
}

func (db *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return db.rows, nil
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (db *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (db *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (db *fakeDB) Ping(ctx context.Context) error            { return nil }
func (db *fakeDB) Close()                                    {}

func TestFindAll_SurfacesIterationError(t *testing.T) {
	connErr := errors.New("connection reset")
	repo := NewBookingRepository(&fakeDB{rows: &fakeRows{err: connErr}}, zap.NewNop())

	bookings, err := repo.FindAll(context.Background())

	assert.Nil(t, bookings)
	assert.ErrorIs(t, err, connErr)
}

func TestFindByUserEmail_SurfacesIterationError(t *testing.T) {
	connErr := errors.New("connection reset")
	repo := NewBookingRepository(&fakeDB{rows: &fakeRows{err: connErr}}, zap.NewNop())

	bookings, err := repo.FindByUserEmail(context.Background(), "rahim@example.com")

	assert.Nil(t, bookings)
	assert.ErrorIs(t, err, connErr)
}
