// Package keycloak bundles the Keycloak plumbing shared by the Phoenix
// services: configuration, the [Service] admin API wrapper, the cached
// [AuthProvider] and unverified token decoding into a [User].
package keycloak

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Nerzal/gocloak/v13"
)

type WellKnownOpenidConfiguration struct {
	Issuer  string `json:"issuer"`
	JwksUri string `json:"jwks_uri"`
}

// Types, that the [Service] returns.
// Defined in terms of gocloak types as a compromise between decoupling and practicality.
type (
	JWT                      gocloak.JWT
	Client                   gocloak.Client
	GetClientsParams         gocloak.GetClientsParams
	CredentialRepresentation gocloak.CredentialRepresentation
	UserInfo                 gocloak.UserInfo
)

// Service describes the subset of keycloak functionality the Phoenix
// services rely on.
type Service interface {
	// Defining the methods in the style of [gocloak.GoCloak].
	LoginClient(ctx context.Context, clientID string, clientSecret string, realm string) (*JWT, error)
	GetClients(ctx context.Context, token string, realm string, params GetClientsParams) ([]*Client, error)
	GetClientSecret(ctx context.Context, token string, realm string, clientID string) (*CredentialRepresentation, error)
	GetUserInfo(ctx context.Context, token string, realm string) (*UserInfo, error)
	GetWellKnownOpenidConfiguration(ctx context.Context, realm string) (*WellKnownOpenidConfiguration, error)
}

// ServiceFactoryFunc is a kind of function that creates new [Service] instances.
type ServiceFactoryFunc func(ctx context.Context, config Config) (Service, error)

// NewGocloakService is compatible with [ServiceFactoryFunc] and creates a [Service]
// instance by wrapping [gocloak.NewClient].
func NewGocloakService(ctx context.Context, config Config) (Service, error) {
	if config.ServerURL == "" {
		return nil, fmt.Errorf("keycloak server URL is not configured")
	}

	return &GocloakService{
		serverURL:     config.ServerURL,
		gocloakClient: gocloak.NewClient(config.ServerURL),
	}, nil
}

// GocloakService implements [Service] through the [gocloak] package.
type GocloakService struct {
	serverURL     string
	gocloakClient *gocloak.GoCloak
}

func (g *GocloakService) LoginClient(ctx context.Context, clientID string, clientSecret string, realm string) (*JWT, error) {
	jwt, err := g.gocloakClient.LoginClient(ctx, clientID, clientSecret, realm)
	return (*JWT)(jwt), err
}

func (g *GocloakService) GetClients(ctx context.Context, token string, realm string, params GetClientsParams) ([]*Client, error) {
	goCloakClients, err := g.gocloakClient.GetClients(ctx, token, realm, gocloak.GetClientsParams(params))
	if err != nil {
		return nil, err
	}

	clients := make([]*Client, len(goCloakClients))
	for i, client := range goCloakClients {
		clients[i] = (*Client)(client)
	}

	return clients, nil
}

func (g *GocloakService) GetClientSecret(ctx context.Context, token string, realm string, clientID string) (*CredentialRepresentation, error) {
	credentials, err := g.gocloakClient.GetClientSecret(ctx, token, realm, clientID)
	return (*CredentialRepresentation)(credentials), err
}

func (g *GocloakService) GetUserInfo(ctx context.Context, token string, realm string) (*UserInfo, error) {
	info, err := g.gocloakClient.GetUserInfo(ctx, token, realm)
	return (*UserInfo)(info), err
}

func (g *GocloakService) GetWellKnownOpenidConfiguration(ctx context.Context, realm string) (*WellKnownOpenidConfiguration, error) {
	res, err := http.Get(fmt.Sprintf("%s/realms/%s/.well-known/openid-configuration", g.serverURL, realm))
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	config := &WellKnownOpenidConfiguration{}
	if err := json.NewDecoder(res.Body).Decode(config); err != nil {
		return nil, err
	}
	return config, nil
}
