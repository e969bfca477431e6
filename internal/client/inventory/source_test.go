package inventory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/olilab/internal/client/models"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	mu    sync.Mutex
	users []models.User
	err   error
	calls int
	done  chan struct{}
}

func (f *fakeFetcher) FetchUsers(context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.done != nil {
		select {
		case f.done <- struct{}{}:
		default:
		}
	}
	return f.users, f.err
}

func user(id string, status models.UserStatus) models.User {
	return models.User{Profile: models.Profile{ID: id, Status: status}}
}

func TestRefresh_ReplacesCollectionAndNotifiesInOrder(t *testing.T) {
	f := &fakeFetcher{users: []models.User{user("u1", models.UserStatusApproved)}}
	s := New(f, nil, nil)

	var order []string
	s.OnChange(func(_ context.Context, users []models.User) {
		order = append(order, "first")
		require.Len(t, users, 1)
	})
	s.OnChange(func(context.Context, []models.User) { order = append(order, "second") })

	require.NoError(t, s.Refresh(context.Background()))

	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, "u1", s.Users()[0].ID)
}

func TestRefresh_ErrorKeepsPreviousCollection(t *testing.T) {
	f := &fakeFetcher{users: []models.User{user("u1", models.UserStatusApproved)}}
	s := New(f, nil, nil)
	require.NoError(t, s.Refresh(context.Background()))

	notified := 0
	s.OnChange(func(context.Context, []models.User) { notified++ })

	f.err = errors.New("server unavailable")
	require.Error(t, s.Refresh(context.Background()))

	assert.Equal(t, 0, notified)
	assert.Len(t, s.Users(), 1)
}

func TestOnChange_Unsubscribe(t *testing.T) {
	s := New(&fakeFetcher{}, nil, nil)

	var a, b int
	unsubA := s.OnChange(func(context.Context, []models.User) { a++ })
	s.OnChange(func(context.Context, []models.User) { b++ })

	s.Publish(context.Background(), nil)
	unsubA()
	unsubA()
	s.Publish(context.Background(), nil)

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestUsers_ReturnsCopy(t *testing.T) {
	s := New(&fakeFetcher{}, nil, nil)
	s.Publish(context.Background(), []models.User{user("u1", models.UserStatusApproved)})

	got := s.Users()
	got[0].ID = "mutated"

	assert.Equal(t, "u1", s.Users()[0].ID)
}

func TestRun_RefreshesOnEveryTick(t *testing.T) {
	clock := clockwork.NewFakeClock()
	f := &fakeFetcher{done: make(chan struct{}, 1)}
	s := New(f, clock, nil)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		s.Run(ctx, time.Minute)
		close(stopped)
	}()

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer waitCancel()
	require.NoError(t, clock.BlockUntilContext(waitCtx, 1))

	for i := 0; i < 2; i++ {
		clock.Advance(time.Minute)
		select {
		case <-f.done:
		case <-time.After(5 * time.Second):
			t.Fatalf("refresh %d did not happen", i+1)
		}
	}

	cancel()
	<-stopped

	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Equal(t, 2, f.calls)
}
