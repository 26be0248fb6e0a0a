package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claim keys used by the catalog backend. The role and name claims carry
// the WS-* namespaced URIs emitted by its token issuer.
const (
	roleClaimKey = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
	nameClaimKey = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"

	// expiresAtClaimKey is the RFC 3339 fallback some backend builds emit
	// instead of the standard numeric exp claim.
	expiresAtClaimKey = "expiresAt"
)

// ErrMalformed is returned when a token cannot be decoded: wrong segment
// count, invalid base64url payload, or a payload that is not a JSON object.
var ErrMalformed = errors.New("malformed token")

// Claims is the normalized view of a decoded token payload.
type Claims struct {
	// Roles is the de-duplicated role set, empty when the role claim is
	// absent. Order follows first appearance in the claim and carries no
	// meaning.
	Roles []string

	// DisplayName is the name claim value, empty when absent.
	DisplayName string

	// Expiry is the token expiry instant. The zero value means the token
	// carried no recognizable expiry claim; Expired treats that as already
	// expired.
	Expiry time.Time
}

// Expired reports whether the claims are expired at the given instant.
// A missing expiry fails closed: a token without one is always expired.
func (c *Claims) Expired(at time.Time) bool {
	if c == nil || c.Expiry.IsZero() {
		return true
	}
	return !c.Expiry.After(at)
}

// HasAnyRole reports whether the role set intersects candidates.
func (c *Claims) HasAnyRole(candidates ...string) bool {
	if c == nil || len(c.Roles) == 0 {
		return false
	}
	for _, have := range c.Roles {
		for _, want := range candidates {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Decode parses the payload segment of a three-segment token and extracts
// the normalized claims. The signature segment is ignored.
//
// Decode never panics. Any structural problem (fewer than three segments,
// payload that is not base64url, payload that is not JSON) returns an
// error wrapping [ErrMalformed], and callers must treat that the same as
// "no usable claims".
func Decode(raw string) (*Claims, error) {
	payload := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	claims := &Claims{
		Roles:       extractRoles(payload[roleClaimKey]),
		DisplayName: extractString(payload[nameClaimKey]),
		Expiry:      extractExpiry(payload),
	}
	return claims, nil
}

// extractRoles normalizes the role claim: absent yields nil, a single
// string yields a singleton, an array yields its string members with
// duplicates removed in first-seen order.
func extractRoles(claim any) []string {
	switch v := claim.(type) {
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []any:
		var roles []string
		seen := make(map[string]struct{}, len(v))
		for _, item := range v {
			role, ok := item.(string)
			if !ok || role == "" {
				continue
			}
			if _, dup := seen[role]; dup {
				continue
			}
			seen[role] = struct{}{}
			roles = append(roles, role)
		}
		return roles
	default:
		return nil
	}
}

func extractString(claim any) string {
	s, _ := claim.(string)
	return s
}

// extractExpiry prefers the standard numeric exp claim (seconds since
// epoch) over the string expiresAt fallback. Neither present, or neither
// parseable, yields the zero time.
func extractExpiry(payload jwt.MapClaims) time.Time {
	if exp, err := payload.GetExpirationTime(); err == nil && exp != nil {
		return exp.Time
	}
	if raw, ok := payload[expiresAtClaimKey].(string); ok {
		if at, err := time.Parse(time.RFC3339, raw); err == nil {
			return at
		}
	}
	return time.Time{}
}
