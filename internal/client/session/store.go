package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/jwtconsole/internal/client/models"
	"github.com/dmitrijs2005/jwtconsole/internal/client/storage"
	"github.com/dmitrijs2005/jwtconsole/internal/dbx"
	"github.com/dmitrijs2005/jwtconsole/internal/logging"
)

// Durable storage keys.
const (
	TokenKey       = "jwt_token"
	CurrentUserKey = "current_user"
)

// Backend is the durable side of the store: a key/value repository that can
// also open transactions, e.g. *storage.DB.
type Backend interface {
	storage.Repository
	dbx.TxBeginner
}

// Store is the single source of truth for "who is logged in".
type Store struct {
	backend Backend
	logger  logging.Logger

	mu        sync.Mutex
	current   *models.Session
	observers map[int]chan *models.Session
	nextID    int
}

// NewStore loads the persisted session, if any. A missing or unreadable
// record leaves the store empty.
func NewStore(ctx context.Context, backend Backend, logger logging.Logger) *Store {
	s := &Store{
		backend:   backend,
		logger:    logger,
		observers: make(map[int]chan *models.Session),
	}
	s.current = s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) *models.Session {
	raw, err := s.backend.Get(ctx, CurrentUserKey)
	if err != nil {
		s.logger.Warn(ctx, "cannot read stored session", "error", err)
		return nil
	}
	if len(raw) == 0 {
		return nil
	}

	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		s.logger.Warn(ctx, "stored session is not valid json", "error", err)
		return nil
	}
	return &sess
}

// Current returns the latest session or nil.
func (s *Store) Current() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Observe returns a channel that first yields the current value and then
// every subsequent change. Each subscriber keeps only the newest pending
// value, so a slow reader never blocks the store. The channel is closed once
// ctx is done.
func (s *Store) Observe(ctx context.Context) <-chan *models.Session {
	ch := make(chan *models.Session, 1)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = ch
	ch <- s.current
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.observers, id)
		close(ch)
		s.mu.Unlock()
	}()

	return ch
}

// Set persists sess and makes it current.
func (s *Store) Set(ctx context.Context, sess *models.Session) error {
	if sess == nil {
		return s.Clear(ctx)
	}

	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	err = dbx.WithTx(ctx, s.backend, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, TokenKey, []byte(sess.Token)); err != nil {
			return err
		}
		return repo.Set(ctx, CurrentUserKey, raw)
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.publish(sess)
	return nil
}

// Clear removes the session from memory and from durable storage. Observers
// are notified and the in-memory value is dropped even when the storage
// write fails; that failure is returned.
func (s *Store) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.backend, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, TokenKey); err != nil {
			return err
		}
		return repo.Delete(ctx, CurrentUserKey)
	})

	s.publish(nil)

	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether a non-empty token is present in durable
// storage, regardless of the in-memory value.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	token, err := s.backend.Get(ctx, TokenKey)
	if err != nil {
		s.logger.Debug(ctx, "token lookup failed", "error", err)
		return false
	}
	return len(token) > 0
}

// Token returns the stored token and its type for request authorization.
// Both are empty when nobody is logged in; the type falls back to Bearer.
func (s *Store) Token(ctx context.Context) (string, string, error) {
	token, err := s.backend.Get(ctx, TokenKey)
	if err != nil {
		return "", "", err
	}
	if len(token) == 0 {
		return "", "", nil
	}

	return string(token), s.Current().TokenType(), nil
}

func (s *Store) publish(sess *models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = sess
	for _, ch := range s.observers {
		// drop the stale pending value, keep the newest
		select {
		case <-ch:
		default:
		}
		ch <- sess
	}
}
