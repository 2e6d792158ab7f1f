package keycloak

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// NewMockedServiceFactoryFunc creates a new [ServiceFactoryFunc] that always returns service.
func NewMockedServiceFactoryFunc(service Service) ServiceFactoryFunc {
	return func(ctx context.Context, config Config) (Service, error) {
		return service, nil
	}
}

// MockedService implements [Service] by delegating function
// calls to [MockedService.Mock].
type MockedService struct {
	mock.Mock
}

func (m *MockedService) LoginClient(ctx context.Context, clientID string, clientSecret string, realm string) (*JWT, error) {
	args := m.Called(ctx, clientID, clientSecret, realm)
	var t *JWT = nil
	if args.Get(0) != nil {
		t = args.Get(0).(*JWT)
	}
	return t, args.Error(1)
}

func (m *MockedService) GetClients(ctx context.Context, token string, realm string, params GetClientsParams) ([]*Client, error) {
	args := m.Called(ctx, token, realm, params)
	var clients []*Client
	if args.Get(0) != nil {
		clients = args.Get(0).([]*Client)
	}
	return clients, args.Error(1)
}

func (m *MockedService) GetClientSecret(ctx context.Context, token string, realm string, clientID string) (*CredentialRepresentation, error) {
	args := m.Called(ctx, token, realm, clientID)
	var credentials *CredentialRepresentation
	if args.Get(0) != nil {
		credentials = args.Get(0).(*CredentialRepresentation)
	}
	return credentials, args.Error(1)
}

func (m *MockedService) GetUserInfo(ctx context.Context, token string, realm string) (*UserInfo, error) {
	args := m.Called(ctx, token, realm)
	var info *UserInfo
	if args.Get(0) != nil {
		info = args.Get(0).(*UserInfo)
	}
	return info, args.Error(1)
}

func (m *MockedService) GetWellKnownOpenidConfiguration(ctx context.Context, realm string) (*WellKnownOpenidConfiguration, error) {
	args := m.Called(ctx, realm)
	var config *WellKnownOpenidConfiguration
	if args.Get(0) != nil {
		config = args.Get(0).(*WellKnownOpenidConfiguration)
	}
	return config, args.Error(1)
}
