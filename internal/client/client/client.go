package client

import (
	"context"

	"github.com/dmitrijs2005/olilab/internal/client/models"
)

// Client is the remote OliLab API as seen by the session layer.
type Client interface {
	// Login verifies credentials and approval status on the server and
	// returns the secret-free user. Failures carry a display-ready message.
	Login(ctx context.Context, identifier string, password []byte) (*models.SecureUser, error)
	// FetchUsers returns the current user collection.
	FetchUsers(ctx context.Context) ([]models.User, error)
}
