package identity

import (
	"context"
	"fmt"
	"sync"
	"time"

	sharedDomain "github.com/felixgeelhaar/sangam/internal/shared/domain"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// OAuthProvider resolves the scope token by exchanging client
// credentials with an OAuth token endpoint. The configured client ID
// doubles as the scope token once the exchange succeeds, so data stays
// partitioned per credential.
type OAuthProvider struct {
	config *clientcredentials.Config

	mu          sync.Mutex
	tokenSource oauth2.TokenSource
	verified    time.Time
}

// reverifyInterval bounds how long a credential check is trusted
// before the token endpoint is consulted again.
const reverifyInterval = 5 * time.Minute

// NewOAuthProvider creates a provider backed by the client-credentials
// grant.
func NewOAuthProvider(tokenURL, clientID, clientSecret string, scopes []string) (*OAuthProvider, error) {
	if tokenURL == "" || clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("%w: oauth configuration is incomplete", sharedDomain.ErrValidation)
	}

	return &OAuthProvider{
		config: &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
			Scopes:       scopes,
		},
	}, nil
}

// CurrentUserID verifies the credentials against the token endpoint
// and returns the client ID as scope token.
func (p *OAuthProvider) CurrentUserID(ctx context.Context) (sharedDomain.UserID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.tokenSource == nil || time.Since(p.verified) > reverifyInterval {
		source := p.config.TokenSource(ctx)
		if _, err := source.Token(); err != nil {
			return sharedDomain.UserID{}, fmt.Errorf("%w: %v", sharedDomain.ErrAuthRequired, err)
		}
		p.tokenSource = source
		p.verified = time.Now()
	}

	return sharedDomain.NewUserID(p.config.ClientID), nil
}

// TokenSource exposes the verified token source for outbound calls.
// It is nil until CurrentUserID has succeeded once.
func (p *OAuthProvider) TokenSource() oauth2.TokenSource {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tokenSource
}
