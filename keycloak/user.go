package keycloak

// User is the identity extracted from a Keycloak access token. Every field
// is independently optional (empty when the backing claim is absent), except
// Roles which is always non-nil. EmailVerified stays nil when the claim is
// missing to keep "unknown" distinct from "not verified".
type User struct {
	Username      string
	ID            string
	TenantID      string
	Email         string
	FirstName     string
	LastName      string
	Realm         string
	ClientID      string
	Roles         []string
	EmailVerified *bool
}
