package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/olilab/internal/client/models"
	"github.com/dmitrijs2005/olilab/internal/client/session"
	"github.com/dmitrijs2005/olilab/internal/logging"
)

// sessionIface is the part of session.Manager the CLI drives.
type sessionIface interface {
	Snapshot() session.Snapshot
	Login(ctx context.Context, identifier string, password []byte) error
	Logout(ctx context.Context)
}

// settingsIface is the part of settings.Manager the CLI drives.
type settingsIface interface {
	Settings() models.Settings
	Update(ctx context.Context, patch models.SettingsPatch) models.Settings
}

// inventoryIface is the part of inventory.Source the CLI drives.
type inventoryIface interface {
	Refresh(ctx context.Context) error
	Users() []models.User
	Run(ctx context.Context, interval time.Duration)
}

type App struct {
	session   sessionIface
	settings  settingsIface
	inventory inventoryIface
	log       logging.Logger

	refreshInterval time.Duration
	reader          *bufio.Reader
	out             io.Writer
}

func NewApp(sess sessionIface, st settingsIface, inv inventoryIface, refreshInterval time.Duration, log logging.Logger) *App {
	if log == nil {
		log = logging.Nop()
	}
	return &App{
		session:         sess,
		settings:        st,
		inventory:       inv,
		log:             log.With("component", "cli"),
		refreshInterval: refreshInterval,
		reader:          bufio.NewReader(os.Stdin),
		out:             os.Stdout,
	}
}

// Run loads the user collection, starts the background refresh and blocks
// in the REPL until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.inventory.Refresh(ctx); err != nil {
		printlnFn("Could not load users:", err)
	}

	if a.refreshInterval > 0 {
		go a.inventory.Run(ctx, a.refreshInterval)
	}

	printlnFn(a.settings.Settings().Title + " (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().IsAuthenticated
}

func (a *App) getStatus() string {
	snap := a.session.Snapshot()
	if snap.CurrentUser != nil {
		return snap.CurrentUser.Username
	}
	return snap.Phase().String()
}
