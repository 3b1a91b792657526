// Package identity resolves the scope token that partitions all
// user-owned data. Every schedule and stats operation is scoped to the
// user ID the active provider yields; an empty ID means no user is
// signed in and mutations must be refused.
package identity

import (
	"context"
	"fmt"
	"sync"

	sharedDomain "github.com/felixgeelhaar/sangam/internal/shared/domain"
)

// Provider yields the scope token for the current user.
type Provider interface {
	// CurrentUserID returns the active user's scope token. It returns
	// ErrAuthRequired when no user is signed in.
	CurrentUserID(ctx context.Context) (sharedDomain.UserID, error)
}

// Watcher streams auth-state changes. An empty scope token on the
// channel means the user signed out.
type Watcher interface {
	Watch(ctx context.Context) <-chan sharedDomain.UserID
}

// StaticProvider holds a fixed scope token, for single-user CLI use
// and tests. The token may be swapped at runtime to model sign-in and
// sign-out.
type StaticProvider struct {
	mu       sync.RWMutex
	userID   sharedDomain.UserID
	watchers []chan sharedDomain.UserID
}

// NewStaticProvider creates a provider with the given scope token.
// An empty token is allowed and models the signed-out state.
func NewStaticProvider(userID string) *StaticProvider {
	return &StaticProvider{userID: sharedDomain.NewUserID(userID)}
}

// CurrentUserID returns the held scope token.
func (p *StaticProvider) CurrentUserID(ctx context.Context) (sharedDomain.UserID, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.userID.IsEmpty() {
		return sharedDomain.UserID{}, fmt.Errorf("%w: no user signed in", sharedDomain.ErrAuthRequired)
	}
	return p.userID, nil
}

// SignIn replaces the held scope token and notifies watchers.
func (p *StaticProvider) SignIn(userID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.userID = sharedDomain.NewUserID(userID)
	p.notifyLocked()
}

// SignOut clears the held scope token and notifies watchers.
func (p *StaticProvider) SignOut() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.userID = sharedDomain.UserID{}
	p.notifyLocked()
}

// Watch streams auth-state changes until the context is cancelled.
// Watchers that do not keep up miss intermediate states, never block
// the provider.
func (p *StaticProvider) Watch(ctx context.Context) <-chan sharedDomain.UserID {
	ch := make(chan sharedDomain.UserID, 1)

	p.mu.Lock()
	p.watchers = append(p.watchers, ch)
	p.mu.Unlock()

	go func() {
		<-ctx.Done()
		p.mu.Lock()
		for i, w := range p.watchers {
			if w == ch {
				p.watchers = append(p.watchers[:i], p.watchers[i+1:]...)
				break
			}
		}
		p.mu.Unlock()
		close(ch)
	}()
	return ch
}

func (p *StaticProvider) notifyLocked() {
	for _, w := range p.watchers {
		select {
		case w <- p.userID:
		default:
		}
	}
}
