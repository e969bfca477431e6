package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/olilab/internal/client/models"
	"github.com/dmitrijs2005/olilab/internal/client/session"
)

func stubInputs(t *testing.T, text string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return text, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeSession struct {
	snap     session.Snapshot
	loginErr error
	loginAs  *models.SecureUser

	gotIdentifier string
	gotPassword   string
	logouts       int
}

func (f *fakeSession) Snapshot() session.Snapshot { return f.snap }
func (f *fakeSession) Login(_ context.Context, identifier string, password []byte) error {
	f.gotIdentifier, f.gotPassword = identifier, string(password)
	if f.loginErr != nil {
		return f.loginErr
	}
	f.snap = session.Snapshot{CurrentUser: f.loginAs, IsAuthenticated: true}
	return nil
}
func (f *fakeSession) Logout(context.Context) {
	f.logouts++
	f.snap = session.Snapshot{}
}

type fakeSettings struct {
	current models.Settings
	patches []models.SettingsPatch
}

func (f *fakeSettings) Settings() models.Settings { return f.current }
func (f *fakeSettings) Update(_ context.Context, p models.SettingsPatch) models.Settings {
	f.patches = append(f.patches, p)
	f.current = f.current.Merge(p)
	return f.current
}

type fakeInventory struct {
	users      []models.User
	refreshErr error
	refreshes  int
	runs       chan time.Duration
}

func (f *fakeInventory) Refresh(context.Context) error {
	f.refreshes++
	return f.refreshErr
}
func (f *fakeInventory) Users() []models.User { return f.users }
func (f *fakeInventory) Run(ctx context.Context, interval time.Duration) {
	if f.runs != nil {
		f.runs <- interval
	}
	<-ctx.Done()
}

func newTestApp(sess *fakeSession, st *fakeSettings, inv *fakeInventory, input string) *App {
	a := NewApp(sess, st, inv, 0, nil)
	a.reader = bufio.NewReader(strings.NewReader(input))
	a.out = io.Discard
	return a
}
