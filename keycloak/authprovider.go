package keycloak

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"
)

const (
	// reconnectInterval is how long an HTTP client is kept before it is torn
	// down and rebuilt, so stale pooled connections never outlive it.
	reconnectInterval = 15 * time.Minute

	// refreshMargin is subtracted from the expires_in the server reports, so
	// a token is refreshed before it actually expires.
	refreshMargin = time.Minute

	// defaultExpiresIn is assumed when the token response omits expires_in.
	defaultExpiresIn = 300 * time.Second

	connectionTimeout = 10 * time.Second
	maxIdleConns      = 50
	maxConnsPerHost   = 20
)

// AuthProvider fetches and caches a client-credentials access token for
// service-to-service calls against Keycloak. The token and the underlying
// HTTP client are shared and refreshed behind a mutex, so a single provider
// can be used from any number of goroutines.
type AuthProvider struct {
	config Config
	logger hclog.Logger
	now    func() time.Time

	mu             sync.Mutex
	client         *resty.Client
	accessToken    string
	tokenExpiresAt time.Time
	lastInitAt     time.Time
}

// NewAuthProvider builds a provider and fetches the initial token, so a
// misconfigured Keycloak connection fails at startup rather than on the
// first request.
func NewAuthProvider(ctx context.Context, config Config, logger hclog.Logger) (*AuthProvider, error) {
	if logger == nil {
		logger = hclog.Default()
	}

	p := &AuthProvider{
		config: config,
		logger: logger,
		now:    time.Now,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ensureLocked(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

// AdminToken returns a currently valid access token, refreshing or
// reinitializing first when needed.
func (p *AuthProvider) AdminToken(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureLocked(ctx); err != nil {
		return "", err
	}
	return p.accessToken, nil
}

// AdminTokenHeader returns the token formatted as an Authorization header
// value.
func (p *AuthProvider) AdminTokenHeader(ctx context.Context) (string, error) {
	token, err := p.AdminToken(ctx)
	if err != nil {
		return "", err
	}
	return BearerPrefix + token, nil
}

// Client returns the shared HTTP client, reinitializing it first when needed.
func (p *AuthProvider) Client(ctx context.Context) (*resty.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureLocked(ctx); err != nil {
		return nil, err
	}
	return p.client, nil
}

// Close tears down the HTTP client and drops the cached token. The provider
// stays usable; the next access rebuilds both.
func (p *AuthProvider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		p.client.GetClient().CloseIdleConnections()
	}
	p.client = nil
	p.accessToken = ""
	p.tokenExpiresAt = time.Time{}
}

// ensureLocked brings client and token up to date. Callers must hold p.mu.
func (p *AuthProvider) ensureLocked(ctx context.Context) error {
	now := p.now()

	if p.client == nil || now.Sub(p.lastInitAt) > reconnectInterval {
		p.initClientLocked(now)
	}

	if p.accessToken == "" || !now.Before(p.tokenExpiresAt) {
		return p.refreshTokenLocked(ctx, now)
	}
	return nil
}

func (p *AuthProvider) initClientLocked(now time.Time) {
	if p.client != nil {
		p.logger.Debug("recycling keycloak HTTP client")
		p.client.GetClient().CloseIdleConnections()
	}

	transport := &http.Transport{
		MaxIdleConns:    maxIdleConns,
		MaxConnsPerHost: maxConnsPerHost,
	}
	p.client = resty.NewWithClient(&http.Client{Transport: transport}).
		SetTimeout(connectionTimeout)
	p.lastInitAt = now
	p.accessToken = ""
	p.tokenExpiresAt = time.Time{}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (p *AuthProvider) refreshTokenLocked(ctx context.Context, now time.Time) error {
	if p.config.ServerURL == "" || p.config.Realm == "" {
		return fmt.Errorf("keycloak server URL and realm must be configured")
	}

	clientID, clientSecret := p.config.adminCredentials()
	tokenURL := fmt.Sprintf("%s/realms/%s/protocol/openid-connect/token", p.config.ServerURL, p.config.Realm)

	var token tokenResponse
	res, err := p.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "client_credentials",
			"client_id":     clientID,
			"client_secret": clientSecret,
		}).
		SetResult(&token).
		Post(tokenURL)
	if err != nil {
		return fmt.Errorf("requesting keycloak token: %w", err)
	}
	if res.IsError() {
		return fmt.Errorf("keycloak token endpoint returned %s", res.Status())
	}
	if token.AccessToken == "" {
		return fmt.Errorf("keycloak token response contains no access_token")
	}

	expiresIn := defaultExpiresIn
	if token.ExpiresIn > 0 {
		expiresIn = time.Duration(token.ExpiresIn) * time.Second
	}

	p.accessToken = token.AccessToken
	p.tokenExpiresAt = now.Add(expiresIn - refreshMargin)
	p.logger.Debug("fetched keycloak token", "client_id", clientID, "expires_in", expiresIn)
	return nil
}
