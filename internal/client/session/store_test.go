package session

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/jwtconsole/internal/client/models"
	"github.com/dmitrijs2005/jwtconsole/internal/client/storage"
	"github.com/dmitrijs2005/jwtconsole/internal/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func alice() *models.Session {
	return &models.Session{Token: "t1", Type: "Bearer", Username: "alice", Email: "alice@example.com", Role: "USER"}
}

func TestNewStore_EmptyStorage(t *testing.T) {
	ctx := context.Background()
	st := NewStore(ctx, openDB(t), logging.NewNopLogger())

	assert.Nil(t, st.Current())
	assert.False(t, st.IsAuthenticated(ctx))
}

func TestSet_PersistsBothKeys(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	st := NewStore(ctx, db, logging.NewNopLogger())

	require.NoError(t, st.Set(ctx, alice()))

	token, err := db.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "t1", string(token))

	raw, err := db.Get(ctx, CurrentUserKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"t1","type":"Bearer","username":"alice","email":"alice@example.com","role":"USER"}`, string(raw))

	if diff := cmp.Diff(alice(), st.Current()); diff != "" {
		t.Fatalf("current mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, st.IsAuthenticated(ctx))
}

func TestNewStore_RestoresPersistedSession(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "s.db")

	db, err := storage.Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, NewStore(ctx, db, logging.NewNopLogger()).Set(ctx, alice()))
	require.NoError(t, db.Close())

	db, err = storage.Open(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	st := NewStore(ctx, db, logging.NewNopLogger())
	require.NotNil(t, st.Current())
	assert.Equal(t, "alice", st.Current().Username)
	assert.True(t, st.IsAuthenticated(ctx))
}

func TestNewStore_CorruptRecordIsIgnored(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	require.NoError(t, db.Set(ctx, CurrentUserKey, []byte("{not json")))

	st := NewStore(ctx, db, logging.NewNopLogger())
	assert.Nil(t, st.Current())
}

func TestIsAuthenticated_ReadsDurableTokenOnly(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	require.NoError(t, db.Set(ctx, TokenKey, []byte("t9")))

	st := NewStore(ctx, db, logging.NewNopLogger())
	assert.Nil(t, st.Current())
	assert.True(t, st.IsAuthenticated(ctx))

	require.NoError(t, db.Set(ctx, TokenKey, []byte{}))
	assert.False(t, st.IsAuthenticated(ctx))
}

func TestClear_RemovesEverything(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	st := NewStore(ctx, db, logging.NewNopLogger())
	require.NoError(t, st.Set(ctx, alice()))

	require.NoError(t, st.Clear(ctx))

	assert.Nil(t, st.Current())
	assert.False(t, st.IsAuthenticated(ctx))
	keys, err := db.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestToken(t *testing.T) {
	ctx := context.Background()
	st := NewStore(ctx, openDB(t), logging.NewNopLogger())

	tok, typ, err := st.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
	assert.Empty(t, typ)

	sess := alice()
	sess.Type = ""
	require.NoError(t, st.Set(ctx, sess))

	tok, typ, err = st.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", tok)
	assert.Equal(t, "Bearer", typ)
}

func recv(t *testing.T, ch <-chan *models.Session) *models.Session {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(time.Second):
		t.Fatal("no value observed")
		return nil
	}
}

func TestObserve_ReplaysCurrentThenChanges(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st := NewStore(ctx, openDB(t), logging.NewNopLogger())
	ch := st.Observe(ctx)

	assert.Nil(t, recv(t, ch))

	require.NoError(t, st.Set(ctx, alice()))
	got := recv(t, ch)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Username)

	require.NoError(t, st.Clear(ctx))
	assert.Nil(t, recv(t, ch))
}

func TestObserve_SlowReaderSeesLatest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st := NewStore(ctx, openDB(t), logging.NewNopLogger())
	ch := st.Observe(ctx)

	first := alice()
	second := alice()
	second.Username = "bob"
	require.NoError(t, st.Set(ctx, first))
	require.NoError(t, st.Set(ctx, second))

	got := recv(t, ch)
	require.NotNil(t, got)
	assert.Equal(t, "bob", got.Username)
}

func TestObserve_MultipleSubscribers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st := NewStore(ctx, openDB(t), logging.NewNopLogger())
	a := st.Observe(ctx)
	b := st.Observe(ctx)
	recv(t, a)
	recv(t, b)

	require.NoError(t, st.Set(ctx, alice()))
	assert.Equal(t, "alice", recv(t, a).Username)
	assert.Equal(t, "alice", recv(t, b).Username)
}

func TestObserve_ClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	st := NewStore(context.Background(), openDB(t), logging.NewNopLogger())
	ch := st.Observe(ctx)
	recv(t, ch)

	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}
}

// failingBackend wraps a real DB and fails every transaction.
type failingBackend struct {
	*storage.DB
	err error
}

func (f *failingBackend) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return nil, f.err
}

func TestClear_StorageFailureStillClearsMemory(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db := openDB(t)
	st := NewStore(ctx, db, logging.NewNopLogger())
	require.NoError(t, st.Set(ctx, alice()))

	boom := errors.New("disk gone")
	st.backend = &failingBackend{DB: db, err: boom}
	ch := st.Observe(ctx)
	recv(t, ch)

	err := st.Clear(ctx)
	require.ErrorIs(t, err, boom)
	assert.Nil(t, st.Current())
	assert.Nil(t, recv(t, ch))
}

func TestSet_StorageFailureKeepsPreviousValue(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	boom := errors.New("disk gone")
	st := NewStore(ctx, &failingBackend{DB: db, err: boom}, logging.NewNopLogger())

	err := st.Set(ctx, alice())
	require.ErrorIs(t, err, boom)
	assert.Nil(t, st.Current())
}

func TestSetNil_Clears(t *testing.T) {
	ctx := context.Background()
	st := NewStore(ctx, openDB(t), logging.NewNopLogger())
	require.NoError(t, st.Set(ctx, alice()))

	require.NoError(t, st.Set(ctx, nil))
	assert.Nil(t, st.Current())
	assert.False(t, st.IsAuthenticated(ctx))
}
