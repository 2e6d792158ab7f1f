package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hashicorp/go-hclog"
	"github.com/labstack/echo/v4"

	"github.com/phoenix-platform/sucrim/keycloak"
	jwtutil "github.com/phoenix-platform/sucrim/util/jwt"
)

// userContextKey is where KeycloakAuth stores the decoded user on the
// request context.
const userContextKey = "sucrim.user"

type authOptions struct {
	logger    hclog.Logger
	freshness *time.Duration
}

type AuthOption func(*authOptions)

// WithAuthLogger routes the middleware's claim warnings to logger instead of
// the default one.
func WithAuthLogger(logger hclog.Logger) AuthOption {
	return func(o *authOptions) { o.logger = logger }
}

// WithFreshness additionally rejects tokens whose exp claim lies within
// delta from now. Decoding alone never checks expiry.
func WithFreshness(delta time.Duration) AuthOption {
	return func(o *authOptions) { o.freshness = &delta }
}

// KeycloakAuth decodes the Authorization header into a [keycloak.User] and
// stores it on the request context for [UserFromContext]. The token's
// signature is not verified here; that is the gateway's job.
func KeycloakAuth(opts ...AuthOption) echo.MiddlewareFunc {
	options := authOptions{logger: hclog.Default()}
	for _, opt := range opts {
		opt(&options)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)

			user, err := keycloak.DecodeUnverified(header, options.logger)
			if err != nil {
				return err
			}

			if options.freshness != nil {
				raw := strings.TrimPrefix(header, keycloak.BearerPrefix)
				if !jwtutil.IsValidIn(raw, *options.freshness) {
					return fmt.Errorf("access token not valid long enough: %w", jwt.ErrTokenExpired)
				}
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// UserFromContext returns the user stored by [KeycloakAuth], or false when
// the middleware did not run for this request.
func UserFromContext(c echo.Context) (*keycloak.User, bool) {
	user, ok := c.Get(userContextKey).(*keycloak.User)
	return user, ok
}
