package cli

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dmitrijs2005/olilab/internal/client/client"
	"github.com/dmitrijs2005/olilab/internal/client/models"
	"github.com/dmitrijs2005/olilab/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alice() *models.SecureUser {
	return &models.SecureUser{Profile: models.Profile{
		ID: "u3", Username: "alice", FullName: "Alice Reyes", Email: "alice@school.edu",
		Role: "teacher", Status: models.UserStatusApproved,
	}}
}

func TestLogin_Success(t *testing.T) {
	lines := capturePrint(t)
	stubInputs(t, "alice", []byte("secret"))

	sess := &fakeSession{loginAs: alice()}
	a := newTestApp(sess, &fakeSettings{}, &fakeInventory{}, "")

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, "alice", sess.gotIdentifier)
	assert.Equal(t, "secret", sess.gotPassword)
	assert.Contains(t, *lines, "Welcome, Alice Reyes!")
}

func TestLogin_WipesPassword(t *testing.T) {
	capturePrint(t)
	pw := []byte("secret")
	stubInputs(t, "alice", pw)

	a := newTestApp(&fakeSession{loginAs: alice()}, &fakeSettings{}, &fakeInventory{}, "")
	require.NoError(t, a.Login(context.Background()))

	assert.Equal(t, make([]byte, len(pw)), pw)
}

func TestLogin_RejectedReturnsAPIError(t *testing.T) {
	capturePrint(t)
	stubInputs(t, "bob@school.edu", []byte("wrong"))

	apiErr := &client.APIError{StatusCode: 403, Message: "Your account has been denied"}
	sess := &fakeSession{loginErr: apiErr}
	a := newTestApp(sess, &fakeSettings{}, &fakeInventory{}, "")

	err := a.Login(context.Background())
	assert.Same(t, apiErr, err)
	assert.Equal(t, "Your account has been denied", err.Error())
	assert.False(t, a.isLoggedIn())
}

func TestLogin_AlreadyLoggedIn(t *testing.T) {
	sess := &fakeSession{snap: session.Snapshot{CurrentUser: alice(), IsAuthenticated: true}}
	a := newTestApp(sess, &fakeSettings{}, &fakeInventory{}, "")

	err := a.Login(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyLoggedIn)
	assert.Empty(t, sess.gotIdentifier)
}

func TestLogin_InputError(t *testing.T) {
	capturePrint(t)
	stubInputs(t, "alice", nil)
	getPassword = func(_ io.Writer) ([]byte, error) { return nil, errors.New("no tty") }

	sess := &fakeSession{}
	a := newTestApp(sess, &fakeSettings{}, &fakeInventory{}, "")

	assert.EqualError(t, a.Login(context.Background()), "no tty")
	assert.Empty(t, sess.gotIdentifier)
}

func TestLogout(t *testing.T) {
	capturePrint(t)
	sess := &fakeSession{snap: session.Snapshot{CurrentUser: alice(), IsAuthenticated: true}}
	a := newTestApp(sess, &fakeSettings{}, &fakeInventory{}, "")

	require.NoError(t, a.Logout(context.Background()))
	assert.Equal(t, 1, sess.logouts)
	assert.False(t, a.isLoggedIn())
}

func TestWhoAmI(t *testing.T) {
	lines := capturePrint(t)

	a := newTestApp(&fakeSession{snap: session.Snapshot{IsLoading: true}}, &fakeSettings{}, &fakeInventory{}, "")
	require.NoError(t, a.WhoAmI(context.Background()))

	u := alice()
	u.IsAdmin = true
	a = newTestApp(&fakeSession{snap: session.Snapshot{CurrentUser: u, IsAuthenticated: true}}, &fakeSettings{}, &fakeInventory{}, "")
	require.NoError(t, a.WhoAmI(context.Background()))

	assert.Equal(t, []string{
		"Not logged in (booting)",
		"Alice Reyes <alice@school.edu> id=u3 role=teacher, admin status=APPROVED",
	}, *lines)
}

func TestGetStatus(t *testing.T) {
	a := newTestApp(&fakeSession{}, &fakeSettings{}, &fakeInventory{}, "")
	assert.Equal(t, "unauthenticated", a.getStatus())

	a.session = &fakeSession{snap: session.Snapshot{CurrentUser: alice(), IsAuthenticated: true}}
	assert.Equal(t, "alice", a.getStatus())
}
