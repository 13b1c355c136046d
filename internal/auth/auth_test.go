package auth_test

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"tiendita/internal/api"
	"tiendita/internal/auth"
	"tiendita/internal/domain"
	"tiendita/internal/localstore"
)

func token(t *testing.T, claims auth.Claims) string {
	t.Helper()
	b, err := json.Marshal(claims)
	if err != nil {
		t.Fatal(err)
	}
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	return header + "." + base64.RawURLEncoding.EncodeToString(b) + ".firma"
}

func TestDecodeClaims(t *testing.T) {
	tok := token(t, auth.Claims{Email: "ana@tienda.gt", Role: "58D4CF0B-89BE-4630-A34A-6144C9E086FE"})

	got, err := auth.DecodeClaims(tok)
	if err != nil {
		t.Fatal(err)
	}
	if got.Email != "ana@tienda.gt" {
		t.Fatalf("want email, got %+v", got)
	}
	if domain.ResolveRole(got.Role) != domain.RoleCustomer {
		t.Fatalf("role token must resolve to customer, got %v", got.Role)
	}
}

func TestDecodeClaimsPaddedSegment(t *testing.T) {
	// Some issuers pad the payload segment; trailing = must not break it.
	b, _ := json.Marshal(auth.Claims{Email: "x@y.z", Role: "r"})
	tok := "h." + base64.URLEncoding.EncodeToString(b) + ".s"

	got, err := auth.DecodeClaims(tok)
	if err != nil {
		t.Fatal(err)
	}
	if got.Email != "x@y.z" {
		t.Fatalf("padded payload lost: %+v", got)
	}
}

func TestDecodeClaimsMalformed(t *testing.T) {
	for _, tok := range []string{
		"",
		"solo-un-segmento",
		"dos.segmentos",
		"a.%%%.c",
		"a." + base64.RawURLEncoding.EncodeToString([]byte("{not json")) + ".c",
	} {
		_, err := auth.DecodeClaims(tok)
		var decErr *api.DecodeError
		if !errors.As(err, &decErr) {
			t.Errorf("token %q: want DecodeError, got %v", tok, err)
		}
	}
}

func TestIdentityRoundTrip(t *testing.T) {
	store, err := localstore.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	m := &auth.Manager{Store: store}
	sid := "sess-1"

	if _, ok := m.Identity(sid); ok {
		t.Fatal("no token stored, identity must be absent")
	}

	tok := token(t, auth.Claims{Email: "ana@tienda.gt", Role: "D75D5E20-A13A-45CC-81C1-64A46C0B482A"})
	if err := m.SaveToken(sid, tok); err != nil {
		t.Fatal(err)
	}

	id, ok := m.Identity(sid)
	if !ok {
		t.Fatal("identity must be readable after SaveToken")
	}
	if id.Email != "ana@tienda.gt" || id.Role != domain.RoleSeller {
		t.Fatalf("bad identity: %+v", id)
	}

	got, ok := m.Tokens(sid).Token()
	if !ok || got != tok {
		t.Fatalf("token source must yield the stored token, got %q", got)
	}
}

func TestIdentityUnknownRoleStillResolves(t *testing.T) {
	store, err := localstore.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	m := &auth.Manager{Store: store}
	sid := "sess-1"

	_ = m.SaveToken(sid, token(t, auth.Claims{Email: "x@y.z", Role: "rol-inexistente"}))

	id, ok := m.Identity(sid)
	if !ok {
		t.Fatal("unknown role is not a decode failure")
	}
	if id.Role != domain.RoleUnknown {
		t.Fatalf("want RoleUnknown, got %v", id.Role)
	}
}
