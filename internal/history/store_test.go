package history

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	k, err := ParseKind("dates")
	require.NoError(t, err)
	assert.Equal(t, KindDate, k)

	k, err = ParseKind("Gift")
	require.NoError(t, err)
	assert.Equal(t, KindGift, k)

	_, err = ParseKind("pets")
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func newRedisStore(t *testing.T, keep int) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, keep), mr
}

func TestRedisStoreNewestFirstAndTrimmed(t *testing.T) {
	store, mr := newRedisStore(t, 3)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		require.NoError(t, store.Record(ctx, "c1", KindDate, fmt.Sprintf("d%d", i)))
	}

	ids, err := store.Recent(ctx, "c1", KindDate, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"d5", "d4", "d3"}, ids)

	list, err := mr.List("history:c1:date")
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestRedisStoreSeparatesCouplesAndKinds(t *testing.T) {
	store, _ := newRedisStore(t, DefaultLookback)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, "c1", KindDate, "d1"))
	require.NoError(t, store.Record(ctx, "c1", KindGift, "g1"))
	require.NoError(t, store.Record(ctx, "c2", KindDate, "d2"))

	ids, err := store.Recent(ctx, "c1", KindDate, DefaultLookback)
	require.NoError(t, err)
	assert.Equal(t, []string{"d1"}, ids)

	ids, err = store.Recent(ctx, "c3", KindDate, DefaultLookback)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRedisStoreRecentLimit(t *testing.T) {
	store, _ := newRedisStore(t, DefaultLookback)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, store.Record(ctx, "c1", KindGift, fmt.Sprintf("g%d", i)))
	}

	ids, err := store.Recent(ctx, "c1", KindGift, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"g3", "g2"}, ids)

	ids, err = store.Recent(ctx, "c1", KindGift, 0)
	require.NoError(t, err)
	assert.Nil(t, ids)
}

func TestPostgresStore(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgresStore(sqlx.NewDb(db, "postgres"))
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO completions").
		WithArgs("c1", "date", "d1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, store.Record(ctx, "c1", KindDate, "d1"))

	mock.ExpectQuery("SELECT item_id FROM completions").
		WithArgs("c1", "date", 14).
		WillReturnRows(sqlmock.NewRows([]string{"item_id"}).AddRow("d2").AddRow("d1"))
	ids, err := store.Recent(ctx, "c1", KindDate, 14)
	require.NoError(t, err)
	assert.Equal(t, []string{"d2", "d1"}, ids)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreWrapsErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgresStore(sqlx.NewDb(db, "postgres"))
	mock.ExpectExec("INSERT INTO completions").WillReturnError(errors.New("connection reset"))

	err = store.Record(context.Background(), "c1", KindGift, "g1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(2)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, "c1", KindDate, "a"))
	require.NoError(t, store.Record(ctx, "c1", KindDate, "b"))
	require.NoError(t, store.Record(ctx, "c1", KindDate, "c"))

	ids, err := store.Recent(ctx, "c1", KindDate, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, ids)

	ids, err = store.Recent(ctx, "c1", KindDate, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, ids)

	ids[0] = "mutated"
	again, _ := store.Recent(ctx, "c1", KindDate, 1)
	assert.Equal(t, []string{"c"}, again)
}
