package keycloak_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phoenix-platform/sucrim/keycloak"
)

func strPtr(s string) *string { return &s }

func TestLookupClientSecret(t *testing.T) {
	config := keycloak.Config{
		AdminClientID:     "admin",
		AdminClientSecret: "admin-secret",
		Realm:             "phoenix",
	}

	service := &keycloak.MockedService{}
	service.On("LoginClient", mock.Anything, "admin", "admin-secret", "phoenix").
		Return(&keycloak.JWT{AccessToken: "token-123"}, nil)
	service.On("GetClients", mock.Anything, "token-123", "phoenix", mock.MatchedBy(func(params keycloak.GetClientsParams) bool {
		return params.ClientID != nil && *params.ClientID == "phoenix-web"
	})).Return([]*keycloak.Client{{ID: strPtr("uuid-1"), ClientID: strPtr("phoenix-web")}}, nil)
	service.On("GetClientSecret", mock.Anything, "token-123", "phoenix", "uuid-1").
		Return(&keycloak.CredentialRepresentation{Value: strPtr("s3cret")}, nil)

	secret, err := keycloak.LookupClientSecret(context.Background(), service, config, "phoenix-web")
	require.NoError(t, err)
	require.Equal(t, "s3cret", secret)
	service.AssertExpectations(t)
}

func TestLookupClientSecretUsesRegularCredentialsAsFallback(t *testing.T) {
	config := keycloak.Config{ClientID: "api", ClientSecret: "s1", Realm: "phoenix"}

	service := &keycloak.MockedService{}
	service.On("LoginClient", mock.Anything, "api", "s1", "phoenix").
		Return(nil, fmt.Errorf("login failed"))

	_, err := keycloak.LookupClientSecret(context.Background(), service, config, "phoenix-web")
	require.ErrorContains(t, err, "login failed")
	service.AssertExpectations(t)
}

func TestLookupClientSecretAmbiguousClient(t *testing.T) {
	config := keycloak.Config{AdminClientID: "admin", AdminClientSecret: "s", Realm: "phoenix"}

	service := &keycloak.MockedService{}
	service.On("LoginClient", mock.Anything, "admin", "s", "phoenix").
		Return(&keycloak.JWT{AccessToken: "t"}, nil)
	service.On("GetClients", mock.Anything, "t", "phoenix", mock.Anything).
		Return([]*keycloak.Client{}, nil)

	_, err := keycloak.LookupClientSecret(context.Background(), service, config, "missing")
	require.ErrorContains(t, err, "found 0 clients for missing")
}

func TestLookupClientSecretMissingClientID(t *testing.T) {
	service := &keycloak.MockedService{}
	_, err := keycloak.LookupClientSecret(context.Background(), service, keycloak.Config{}, "")
	require.ErrorContains(t, err, "missing clientID")
}

func TestLookupClientSecretNoSecretValue(t *testing.T) {
	config := keycloak.Config{AdminClientID: "admin", AdminClientSecret: "s", Realm: "phoenix"}

	service := &keycloak.MockedService{}
	service.On("LoginClient", mock.Anything, "admin", "s", "phoenix").
		Return(&keycloak.JWT{AccessToken: "t"}, nil)
	service.On("GetClients", mock.Anything, "t", "phoenix", mock.Anything).
		Return([]*keycloak.Client{{ID: strPtr("uuid-1")}}, nil)
	service.On("GetClientSecret", mock.Anything, "t", "phoenix", "uuid-1").
		Return(&keycloak.CredentialRepresentation{}, nil)

	_, err := keycloak.LookupClientSecret(context.Background(), service, config, "phoenix-web")
	require.ErrorContains(t, err, "has no secret")
}
