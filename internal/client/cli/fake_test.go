package cli

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/jwtconsole/internal/client/client"
	"github.com/dmitrijs2005/jwtconsole/internal/client/models"
)

// fakeAPI implements client.Client over an in-memory user table.
type fakeAPI struct {
	mu sync.Mutex

	users    map[int64]models.User
	password string
	loginErr error

	calls      []string
	lastCreds  models.Credentials
	lastReg    models.RegisterRequest
	lastUpdate models.UserUpdate
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		password: "secret",
		users: map[int64]models.User{
			1: {ID: 1, Username: "alice", Email: "alice@example.com", Role: "ADMIN", Enabled: true},
			2: {ID: 2, Username: "bob", Email: "bob@example.com", Role: "USER", Enabled: true},
		},
	}
}

func (f *fakeAPI) called(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) Login(_ context.Context, creds models.Credentials) (*models.Session, error) {
	f.called("login")
	f.lastCreds = creds
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	if creds.Password != f.password {
		return nil, &client.APIError{Status: 400}
	}
	return &models.Session{Token: "t1", Type: "Bearer", Username: creds.Username, Email: creds.Username + "@example.com", Role: "ADMIN"}, nil
}

func (f *fakeAPI) Register(_ context.Context, req models.RegisterRequest) (*models.MessageResponse, error) {
	f.called("register")
	f.lastReg = req
	if req.Username == "alice" {
		return nil, &client.APIError{Status: 400, Message: "Username already exists"}
	}
	return &models.MessageResponse{Message: "User registered successfully"}, nil
}

func (f *fakeAPI) ListUsers(context.Context) ([]models.User, error) {
	f.called("list")
	out := make([]models.User, 0, len(f.users))
	for id := int64(1); id <= 10; id++ {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeAPI) GetUser(_ context.Context, id int64) (*models.User, error) {
	f.called("get")
	u, ok := f.users[id]
	if !ok {
		return nil, client.ErrNotFound
	}
	return &u, nil
}

func (f *fakeAPI) UpdateUser(_ context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	f.called("update")
	f.lastUpdate = upd
	u, ok := f.users[id]
	if !ok {
		return nil, client.ErrNotFound
	}
	if upd.Username != nil {
		u.Username = *upd.Username
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	if upd.Enabled != nil {
		u.Enabled = *upd.Enabled
	}
	f.users[id] = u
	return &u, nil
}

func (f *fakeAPI) DeleteUser(_ context.Context, id int64) (*models.MessageResponse, error) {
	f.called("delete")
	if _, ok := f.users[id]; !ok {
		return nil, client.ErrNotFound
	}
	delete(f.users, id)
	return &models.MessageResponse{Message: "User deleted successfully"}, nil
}

// fakeExec is an execIface stub for the REPL tests.
type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) isLoggedIn(context.Context) bool { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) List(context.Context) error { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Show(_ context.Context, arg string) error {
	f.calls = append(f.calls, "show")
	f.args = append(f.args, arg)
	return nil
}
func (f *fakeExec) Edit(_ context.Context, arg string) error {
	f.calls = append(f.calls, "edit")
	f.args = append(f.args, arg)
	return nil
}
func (f *fakeExec) Delete(_ context.Context, arg string) error {
	f.calls = append(f.calls, "delete")
	f.args = append(f.args, arg)
	return nil
}
func (f *fakeExec) Whoami(context.Context) error { f.calls = append(f.calls, "whoami"); return nil }
func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
