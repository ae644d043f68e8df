package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationData_ConfirmPasswordNeverSerialised(t *testing.T) {
	r := RegistrationData{Username: "bob", Password: "a", Email: "b@x.org", ConfirmPassword: "a"}

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "confirm")

	b, err = json.Marshal(r.Request())
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"bob","password":"a","email":"b@x.org"}`, string(b))
}

func TestRegistrationData_PasswordsMatch(t *testing.T) {
	assert.True(t, RegistrationData{Password: "x", ConfirmPassword: "x"}.PasswordsMatch())
	assert.False(t, RegistrationData{Password: "a", ConfirmPassword: "b"}.PasswordsMatch())
}

func TestSession_TokenTypeDefaultsToBearer(t *testing.T) {
	var nilSession *Session
	assert.Equal(t, "Bearer", nilSession.TokenType())
	assert.Equal(t, "Bearer", (&Session{}).TokenType())
	assert.Equal(t, "Token", (&Session{Type: "Token"}).TokenType())
}

func TestSession_Claims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	raw, err := tok.SignedString([]byte("whatever-the-server-uses"))
	require.NoError(t, err)

	c, err := (&Session{Token: raw}).Claims()
	require.NoError(t, err)
	assert.Equal(t, "alice", c.Subject)
	assert.True(t, c.ExpiresAt.Equal(exp))
	assert.True(t, c.IssuedAt.IsZero())
}

func TestSession_ClaimsErrors(t *testing.T) {
	_, err := (&Session{}).Claims()
	require.ErrorIs(t, err, ErrNoToken)

	_, err = (&Session{Token: "t1"}).Claims()
	require.Error(t, err)
}

func TestUserUpdate_OmitsUnsetFields(t *testing.T) {
	role := "ADMIN"
	b, err := json.Marshal(UserUpdate{Role: &role})
	require.NoError(t, err)
	assert.JSONEq(t, `{"role":"ADMIN"}`, string(b))

	assert.True(t, UserUpdate{}.IsEmpty())
	assert.False(t, UserUpdate{Role: &role}.IsEmpty())
}

func TestUserUpdateFrom_CopiesEditableFields(t *testing.T) {
	u := User{ID: 7, Username: "carol", Email: "c@x.org", Role: "USER", Enabled: false}
	upd := UserUpdateFrom(u)

	require.NotNil(t, upd.Username)
	assert.Equal(t, "carol", *upd.Username)
	assert.Equal(t, "c@x.org", *upd.Email)
	assert.Equal(t, "USER", *upd.Role)
	require.NotNil(t, upd.Enabled)
	assert.False(t, *upd.Enabled)
	assert.Nil(t, upd.Password)

	*upd.Username = "changed"
	assert.Equal(t, "carol", u.Username)
}

func TestParseUserID(t *testing.T) {
	id, err := ParseUserID("42")
	require.NoError(t, err)
	assert.EqualValues(t, 42, id)

	for _, bad := range []string{"", "abc", "0", "-3"} {
		_, err := ParseUserID(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestUser_String(t *testing.T) {
	assert.Equal(t, "1\talice\ta@x.org\tADMIN\tenabled", User{ID: 1, Username: "alice", Email: "a@x.org", Role: "ADMIN", Enabled: true}.String())
	assert.Contains(t, User{ID: 2}.String(), "disabled")
}
