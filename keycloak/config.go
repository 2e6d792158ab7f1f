package keycloak

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvServerURL         = "KC_SERVER_URL"
	EnvClientID          = "KC_CLIENT_ID"
	EnvClientSecret      = "KC_CLIENT_SECRET"
	EnvAdminClientID     = "KC_ADMIN_CLIENT_ID"
	EnvAdminClientSecret = "KC_ADMIN_CLIENT_SECRET"
	EnvRealm             = "KC_REALM"
	EnvCallbackURI       = "KC_CALLBACK_URI"
)

// Config carries the Keycloak connection settings. Every field is optional;
// an empty string means the corresponding variable was not set. Construct it
// once at process start and pass it to the components that need it.
type Config struct {
	ServerURL         string
	ClientID          string
	ClientSecret      string
	AdminClientID     string
	AdminClientSecret string
	Realm             string
	CallbackURI       string
}

// ConfigFromEnv reads the KC_* environment variables into a Config.
func ConfigFromEnv() Config {
	return Config{
		ServerURL:         os.Getenv(EnvServerURL),
		ClientID:          os.Getenv(EnvClientID),
		ClientSecret:      os.Getenv(EnvClientSecret),
		AdminClientID:     os.Getenv(EnvAdminClientID),
		AdminClientSecret: os.Getenv(EnvAdminClientSecret),
		Realm:             os.Getenv(EnvRealm),
		CallbackURI:       os.Getenv(EnvCallbackURI),
	}
}

// ConfigFromDotEnv loads the given .env files (default ".env") into the
// process environment and then reads the configuration like ConfigFromEnv.
// Variables already present in the environment win over file contents.
func ConfigFromDotEnv(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		return Config{}, err
	}
	return ConfigFromEnv(), nil
}

// adminCredentials returns the credential pair for admin operations,
// preferring the dedicated admin client and falling back to the regular one.
func (c Config) adminCredentials() (clientID, clientSecret string) {
	clientID, clientSecret = c.AdminClientID, c.AdminClientSecret
	if clientID == "" {
		clientID = c.ClientID
	}
	if clientSecret == "" {
		clientSecret = c.ClientSecret
	}
	return clientID, clientSecret
}
