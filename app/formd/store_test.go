package formd_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmydush/businessos/app/formd"
)

type execCall struct {
	sql  string
	args []any
}

type fakeQuerier struct {
	calls []execCall
	err   error
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.calls = append(q.calls, execCall{sql: sql, args: args})
	if q.err != nil {
		return pgconn.CommandTag{}, q.err
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (q *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (q *fakeQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

func newSubmission(form, uniqueKey string) *formd.Submission {
	return &formd.Submission{
		ID:        uuid.New(),
		Form:      form,
		Payload:   map[string]any{"email": "jane@shop.rw"},
		UniqueKey: uniqueKey,
		CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestPGStoreCreate(t *testing.T) {
	t.Parallel()

	t.Run("insert arguments", func(t *testing.T) {
		q := &fakeQuerier{}
		sub := newSubmission("registration", "jane@shop.rw")
		require.NoError(t, formd.NewPGStore(q).Create(context.Background(), sub))

		require.Len(t, q.calls, 1)
		args := q.calls[0].args
		require.Len(t, args, 6)
		assert.Equal(t, sub.ID, args[0])
		assert.Equal(t, "registration", args[1])
		assert.JSONEq(t, `{"email":"jane@shop.rw"}`, string(args[2].([]byte)))
		assert.JSONEq(t, `[]`, string(args[3].([]byte)))
		require.NotNil(t, args[4])
		assert.Equal(t, "jane@shop.rw", *args[4].(*string))
	})

	t.Run("empty unique key is NULL", func(t *testing.T) {
		q := &fakeQuerier{}
		require.NoError(t, formd.NewPGStore(q).Create(context.Background(), newSubmission("customer", "")))
		assert.Nil(t, q.calls[0].args[4].(*string))
	})

	t.Run("unique violation", func(t *testing.T) {
		q := &fakeQuerier{err: &pgconn.PgError{Code: "23505", ConstraintName: "submissions_form_unique_key_idx"}}
		err := formd.NewPGStore(q).Create(context.Background(), newSubmission("registration", "jane@shop.rw"))
		assert.ErrorIs(t, err, formd.ErrDuplicate)
		assert.Contains(t, err.Error(), "submissions_form_unique_key_idx")
	})

	t.Run("other failures", func(t *testing.T) {
		q := &fakeQuerier{err: errors.New("connection reset")}
		err := formd.NewPGStore(q).Create(context.Background(), newSubmission("customer", ""))
		assert.ErrorIs(t, err, formd.ErrStoreFailed)
	})

	t.Run("unencodable payload", func(t *testing.T) {
		q := &fakeQuerier{}
		sub := newSubmission("customer", "")
		sub.Payload["bad"] = make(chan int)
		err := formd.NewPGStore(q).Create(context.Background(), sub)
		assert.ErrorIs(t, err, formd.ErrStoreFailed)
		var jerr *json.UnsupportedTypeError
		assert.ErrorAs(t, err, &jerr)
		assert.Empty(t, q.calls)
	})
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	store := formd.NewMemoryStore()
	ctx := context.Background()

	first := newSubmission("registration", "jane@shop.rw")
	require.NoError(t, store.Create(ctx, first))
	assert.ErrorIs(t, store.Create(ctx, newSubmission("registration", "jane@shop.rw")), formd.ErrDuplicate)

	// uniqueness is scoped per form
	require.NoError(t, store.Create(ctx, newSubmission("customer", "jane@shop.rw")))
	require.NoError(t, store.Create(ctx, newSubmission("customer", "")))
	require.NoError(t, store.Create(ctx, newSubmission("customer", "")))
	assert.Equal(t, 4, store.Len())

	first.Payload["email"] = "changed@shop.rw"
	got, ok := store.Get(first.ID)
	require.True(t, ok)
	assert.Equal(t, "jane@shop.rw", got.Payload["email"], "stored copy is isolated from the caller")

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, store.Create(canceled, newSubmission("customer", "")), context.Canceled)
}

func TestMigrationsEmbedded(t *testing.T) {
	t.Parallel()

	data, err := formd.Migrations.ReadFile(formd.MigrationsDir + "/00001_create_submissions.sql")
	require.NoError(t, err)
	assert.Contains(t, string(data), "-- +goose Up")
	assert.Contains(t, string(data), "submissions_form_unique_key_idx")
}
