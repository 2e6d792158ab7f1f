package keycloak

import (
	"context"
	"fmt"
)

// LookupClientSecret resolves the client secret of the client with the given
// clientID through the Keycloak admin API, logging in with the admin
// credentials of config first.
func LookupClientSecret(ctx context.Context, service Service, config Config, clientID string) (string, error) {
	if clientID == "" {
		return "", fmt.Errorf("missing clientID")
	}

	adminID, adminSecret := config.adminCredentials()
	token, err := service.LoginClient(ctx, adminID, adminSecret, config.Realm)
	if err != nil {
		return "", err
	}

	clients, err := service.GetClients(ctx, token.AccessToken, config.Realm, GetClientsParams{
		ClientID: &clientID,
	})
	if err != nil {
		return "", err
	}
	if len(clients) != 1 {
		return "", fmt.Errorf("found %d clients for %s", len(clients), clientID)
	}

	creds, err := service.GetClientSecret(ctx, token.AccessToken, config.Realm, *clients[0].ID)
	if err != nil {
		return "", err
	}
	if creds.Value == nil {
		return "", fmt.Errorf("client %s has no secret", clientID)
	}

	return *creds.Value, nil
}
