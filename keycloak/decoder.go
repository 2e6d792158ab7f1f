package keycloak

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/mapstructure"

	"github.com/phoenix-platform/sucrim/apierror"
	jwtutil "github.com/phoenix-platform/sucrim/util/jwt"
)

// BearerPrefix is the scheme prefix stripped from Authorization header
// values and prepended by [AuthProvider.AdminTokenHeader].
const BearerPrefix = "Bearer "

const decodeProcess = "token_decode"

type roleClaim struct {
	Roles []string `mapstructure:"roles"`
}

// DecodeUnverified extracts the claims of a Keycloak access token into a
// [User]. The token may carry the "Bearer " prefix.
//
// The signature and the expiry are NOT verified: this is claims extraction
// for tokens the gateway has already authenticated, never an authentication
// proof on its own. Absent or wrongly-shaped claims degrade to empty values
// with a warning; only a malformed token is rejected with an unauthorized
// error.
func DecodeUnverified(token string, logger hclog.Logger) (*User, error) {
	if logger == nil {
		logger = hclog.Default()
	}

	if strings.TrimSpace(token) == "" {
		logger.Error("token is null or empty")
		return nil, apierror.Unauthorized("Token is null or empty").WithProcess(decodeProcess)
	}

	raw := strings.TrimPrefix(token, BearerPrefix)
	if _, _, _, err := jwtutil.Split(raw); err != nil {
		logger.Error("invalid JWT format", "error", err)
		return nil, apierror.Unauthorized("Invalid JWT format").WithProcess(decodeProcess)
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		logger.Error("failed to decode JWT token", "error", err)
		return nil, apierror.Unauthorized("Failed to decode JWT token").WithProcess(decodeProcess)
	}

	return userFromClaims(claims, logger), nil
}

// userFromClaims maps each claim independently so one bad claim never spoils
// the rest of the token.
func userFromClaims(claims jwt.MapClaims, logger hclog.Logger) *User {
	user := &User{
		Username:      claimString(claims, "preferred_username", logger),
		ID:            claimString(claims, "sid", logger),
		TenantID:      claimString(claims, "tenantId", logger),
		Email:         claimString(claims, "email", logger),
		FirstName:     claimString(claims, "given_name", logger),
		LastName:      claimString(claims, "family_name", logger),
		Realm:         extractRealm(claims, logger),
		ClientID:      claimString(claims, "azp", logger),
		Roles:         extractRoles(claims, logger),
		EmailVerified: claimBool(claims, "email_verified", logger),
	}

	logger.Debug("decoded JWT token", "username", user.Username)
	return user
}

// claimString reads a single claim, weakly coercing scalars to string.
func claimString(claims jwt.MapClaims, name string, logger hclog.Logger) string {
	value, ok := claims[name]
	if !ok {
		logger.Warn("claim not found in token, falling back to empty value", "claim", name)
		return ""
	}

	var s string
	if err := mapstructure.WeakDecode(value, &s); err != nil {
		logger.Warn("claim has an unexpected shape, falling back to empty value", "claim", name, "error", err)
		return ""
	}
	return s
}

func claimBool(claims jwt.MapClaims, name string, logger hclog.Logger) *bool {
	value, ok := claims[name]
	if !ok {
		logger.Warn("claim not found in token, falling back to empty value", "claim", name)
		return nil
	}

	var b bool
	if err := mapstructure.WeakDecode(value, &b); err != nil {
		logger.Warn("claim has an unexpected shape, falling back to empty value", "claim", name, "error", err)
		return nil
	}
	return &b
}

// optionalString is claimString without the warnings, for claims that are
// only one of several sources.
func optionalString(claims jwt.MapClaims, name string) (string, bool) {
	value, ok := claims[name]
	if !ok {
		return "", false
	}

	var s string
	if err := mapstructure.WeakDecode(value, &s); err != nil {
		return "", false
	}
	return s, true
}

// extractRealm prefers the /realms/<name>/ segment of the issuer URL and
// falls back to a literal realm claim.
func extractRealm(claims jwt.MapClaims, logger hclog.Logger) string {
	if issuer, ok := optionalString(claims, "iss"); ok {
		if _, after, found := strings.Cut(issuer, "/realms/"); found {
			if realm, _, _ := strings.Cut(after, "/"); realm != "" {
				return realm
			}
		}
	}

	if realm, ok := optionalString(claims, "realm"); ok {
		return realm
	}

	logger.Warn("realm not found in token, neither in iss nor in realm claim")
	return ""
}

// extractRoles unions the realm roles with the roles of every client under
// resource_access. Duplicates are kept.
func extractRoles(claims jwt.MapClaims, logger hclog.Logger) []string {
	roles := []string{}

	if value, ok := claims["realm_access"]; !ok {
		logger.Warn("claim realm_access not found in token, no realm roles extracted")
	} else {
		var access roleClaim
		if err := mapstructure.WeakDecode(value, &access); err != nil {
			logger.Warn("claim realm_access has an unexpected shape, no realm roles extracted", "error", err)
		} else {
			roles = append(roles, access.Roles...)
		}
	}

	if value, ok := claims["resource_access"]; !ok {
		logger.Warn("claim resource_access not found in token, no client roles extracted")
	} else {
		var access map[string]roleClaim
		if err := mapstructure.WeakDecode(value, &access); err != nil {
			logger.Warn("claim resource_access has an unexpected shape, no client roles extracted", "error", err)
		} else {
			for _, client := range access {
				roles = append(roles, client.Roles...)
			}
		}
	}

	if len(roles) == 0 {
		logger.Warn("no roles found in token")
	}
	return roles
}
