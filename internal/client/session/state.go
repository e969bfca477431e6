package session

import "github.com/dmitrijs2005/olilab/internal/client/models"

// Phase is the lifecycle position of the session.
type Phase int

const (
	// PhaseBooting lasts until the first user collection arrives.
	PhaseBooting Phase = iota
	PhaseUnauthenticated
	PhaseAuthenticated
)

func (p Phase) String() string {
	switch p {
	case PhaseBooting:
		return "booting"
	case PhaseUnauthenticated:
		return "unauthenticated"
	case PhaseAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of the session state handed to readers and
// observers.
type Snapshot struct {
	CurrentUser     *models.SecureUser
	IsAuthenticated bool
	IsLoading       bool
}

func (s Snapshot) Phase() Phase {
	switch {
	case s.CurrentUser != nil:
		return PhaseAuthenticated
	case s.IsLoading:
		return PhaseBooting
	default:
		return PhaseUnauthenticated
	}
}
