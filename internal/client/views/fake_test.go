package views

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/jwtconsole/internal/client/models"
)

type fakeAuth struct {
	LoginRet    *models.Session
	LoginErr    error
	RegisterRet *models.MessageResponse
	RegisterErr error
	LogoutErr   error

	LoginCalls    int
	RegisterCalls int
	LogoutCalls   int
	LastRegister  models.RegisterRequest
	current       *models.Session
}

func (f *fakeAuth) Login(_ context.Context, creds models.Credentials) (*models.Session, error) {
	f.LoginCalls++
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	f.current = f.LoginRet
	return f.LoginRet, nil
}

func (f *fakeAuth) Register(_ context.Context, req models.RegisterRequest) (*models.MessageResponse, error) {
	f.RegisterCalls++
	f.LastRegister = req
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.LogoutCalls++
	f.current = nil
	return f.LogoutErr
}

func (f *fakeAuth) IsAuthenticated(context.Context) bool { return f.current != nil }
func (f *fakeAuth) Current() *models.Session           { return f.current }

type fakeUsers struct {
	ListRet   []models.User
	ListErr   error
	GetRet    *models.User
	GetErr    error
	UpdateErr error
	DeleteErr error

	ListCalls   int
	GetCalls    int
	UpdateCalls int
	DeleteCalls int
	LastID      int64
	LastUpdate  models.UserUpdate
}

func (f *fakeUsers) List(context.Context) ([]models.User, error) {
	f.ListCalls++
	return f.ListRet, f.ListErr
}

func (f *fakeUsers) Get(_ context.Context, id int64) (*models.User, error) {
	f.GetCalls++
	f.LastID = id
	return f.GetRet, f.GetErr
}

func (f *fakeUsers) Update(_ context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	f.UpdateCalls++
	f.LastID = id
	f.LastUpdate = upd
	if f.UpdateErr != nil {
		return nil, f.UpdateErr
	}
	return &models.User{ID: id}, nil
}

func (f *fakeUsers) Delete(_ context.Context, id int64) (*models.MessageResponse, error) {
	f.DeleteCalls++
	f.LastID = id
	if f.DeleteErr != nil {
		return nil, f.DeleteErr
	}
	return &models.MessageResponse{Message: "User deleted successfully"}, nil
}

type fakeNav struct {
	mu     sync.Mutex
	routes []Route
}

func (f *fakeNav) Navigate(r Route) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes = append(f.routes, r)
}

func (f *fakeNav) Routes() []Route {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Route(nil), f.routes...)
}

type fakeConfirm struct {
	answer    bool
	questions []string
}

func (f *fakeConfirm) Confirm(_ context.Context, q string) bool {
	f.questions = append(f.questions, q)
	return f.answer
}

type fakeTimer struct {
	d       time.Duration
	fn      func()
	stopped bool
}

func (f *fakeTimer) Stop() bool {
	was := !f.stopped
	f.stopped = true
	return was
}

type fakeClock struct {
	timers []*fakeTimer
}

// installFakeClock replaces afterFunc for the duration of the test.
func installFakeClock(t *testing.T) *fakeClock {
	t.Helper()
	c := &fakeClock{}
	orig := afterFunc
	afterFunc = func(d time.Duration, fn func()) Timer {
		ft := &fakeTimer{d: d, fn: fn}
		c.timers = append(c.timers, ft)
		return ft
	}
	t.Cleanup(func() { afterFunc = orig })
	return c
}

// fire runs every timer that has not been stopped.
func (c *fakeClock) fire() {
	for _, ft := range c.timers {
		if !ft.stopped {
			ft.stopped = true
			ft.fn()
		}
	}
}
