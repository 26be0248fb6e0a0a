package token

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"
)

// buildToken assembles a three-segment token around the given payload
// claims. The signature segment is garbage; Decode must not care.
func buildToken(t *testing.T, payload map[string]any) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	return header + "." + base64.RawURLEncoding.EncodeToString(body) + ".sig"
}

func TestDecodeRoles(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		want    []string
	}{
		{
			name:    "string role claim yields singleton",
			payload: map[string]any{roleClaimKey: "Admin"},
			want:    []string{"Admin"},
		},
		{
			name:    "array role claim yields set verbatim",
			payload: map[string]any{roleClaimKey: []string{"Admin", "Editor"}},
			want:    []string{"Admin", "Editor"},
		},
		{
			name:    "array role claim is de-duplicated",
			payload: map[string]any{roleClaimKey: []string{"User", "Admin", "User"}},
			want:    []string{"User", "Admin"},
		},
		{
			name:    "missing role claim yields empty set",
			payload: map[string]any{nameClaimKey: "admin"},
			want:    nil,
		},
		{
			name:    "empty string role yields empty set",
			payload: map[string]any{roleClaimKey: ""},
			want:    nil,
		},
		{
			name:    "non-string array members are skipped",
			payload: map[string]any{roleClaimKey: []any{"Admin", 42, nil}},
			want:    []string{"Admin"},
		},
		{
			name:    "numeric role claim yields empty set",
			payload: map[string]any{roleClaimKey: 7},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := Decode(buildToken(t, tt.payload))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !reflect.DeepEqual(claims.Roles, tt.want) {
				t.Fatalf("Roles = %v, want %v", claims.Roles, tt.want)
			}
		})
	}
}

func TestDecodeDisplayName(t *testing.T) {
	claims, err := Decode(buildToken(t, map[string]any{
		roleClaimKey: "Admin",
		nameClaimKey: "admin",
	}))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if claims.DisplayName != "admin" {
		t.Fatalf("DisplayName = %q, want %q", claims.DisplayName, "admin")
	}
}

func TestDecodeExpiry(t *testing.T) {
	now := time.Now().Truncate(time.Second)

	t.Run("numeric exp wins", func(t *testing.T) {
		claims, err := Decode(buildToken(t, map[string]any{
			"exp":             now.Add(time.Hour).Unix(),
			expiresAtClaimKey: now.Add(-time.Hour).Format(time.RFC3339),
		}))
		if err != nil {
			t.Fatal(err)
		}
		if !claims.Expiry.Equal(now.Add(time.Hour)) {
			t.Fatalf("Expiry = %v, want %v", claims.Expiry, now.Add(time.Hour))
		}
	})

	t.Run("expiresAt fallback", func(t *testing.T) {
		claims, err := Decode(buildToken(t, map[string]any{
			expiresAtClaimKey: now.Add(30 * time.Minute).Format(time.RFC3339),
		}))
		if err != nil {
			t.Fatal(err)
		}
		if !claims.Expiry.Equal(now.Add(30 * time.Minute)) {
			t.Fatalf("Expiry = %v", claims.Expiry)
		}
	})

	t.Run("no expiry claim fails closed", func(t *testing.T) {
		claims, err := Decode(buildToken(t, map[string]any{roleClaimKey: "Admin"}))
		if err != nil {
			t.Fatal(err)
		}
		if !claims.Expiry.IsZero() {
			t.Fatalf("Expiry = %v, want zero", claims.Expiry)
		}
		if !claims.Expired(now) {
			t.Fatal("token without expiry must report expired")
		}
	})

	t.Run("unparseable expiresAt fails closed", func(t *testing.T) {
		claims, err := Decode(buildToken(t, map[string]any{expiresAtClaimKey: "not-a-date"}))
		if err != nil {
			t.Fatal(err)
		}
		if !claims.Expired(now) {
			t.Fatal("unparseable expiry must report expired")
		}
	})
}

func TestClaimsExpired(t *testing.T) {
	now := time.Now()

	past := &Claims{Expiry: now.Add(-time.Minute)}
	if !past.Expired(now) {
		t.Fatal("past expiry must be expired")
	}

	future := &Claims{Expiry: now.Add(time.Minute)}
	if future.Expired(now) {
		t.Fatal("future expiry must not be expired")
	}

	var nilClaims *Claims
	if !nilClaims.Expired(now) {
		t.Fatal("nil claims must be expired")
	}
}

func TestClaimsHasAnyRole(t *testing.T) {
	claims := &Claims{Roles: []string{"Editor", "User"}}

	if !claims.HasAnyRole("Admin", "Editor") {
		t.Fatal("intersecting candidates must match")
	}
	if claims.HasAnyRole("Admin") {
		t.Fatal("disjoint candidates must not match")
	}
	if (&Claims{}).HasAnyRole("Admin") {
		t.Fatal("empty role set never matches")
	}
	if claims.HasAnyRole() {
		t.Fatal("no candidates never matches")
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty string", ""},
		{"no segments", "notatoken"},
		{"two segments", "abc.def"},
		{"four segments", "a.b.c.d"},
		{"payload not base64", "eyJhbGciOiJIUzI1NiJ9.!!!not-base64!!!.sig"},
		{"payload not JSON", "eyJhbGciOiJIUzI1NiJ9." + base64.RawURLEncoding.EncodeToString([]byte("plain text")) + ".sig"},
		{"payload is JSON array", "eyJhbGciOiJIUzI1NiJ9." + base64.RawURLEncoding.EncodeToString([]byte(`["a"]`)) + ".sig"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := Decode(tt.raw)
			if err == nil {
				t.Fatalf("Decode(%q) succeeded, want error", tt.raw)
			}
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("error %v does not wrap ErrMalformed", err)
			}
			if claims != nil {
				t.Fatal("claims must be nil on decode failure")
			}
		})
	}
}
