package validate_test

import (
	"strings"
	"testing"

	"tiendita/internal/validate"
)

func TestEmail(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"ana@tienda.gt", true},
		{"  ana@tienda.gt  ", true},
		{"sin-arroba", false},
		{"a@b", false},
		{"", false},
		{strings.Repeat("a", 45) + "@tienda.gt", false}, // over 50 chars
	}
	for _, c := range cases {
		if _, ok := validate.Email(c.in); ok != c.ok {
			t.Errorf("Email(%q) = %v, want %v", c.in, ok, c.ok)
		}
	}
}

func TestPassword(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"Secreto1@", true},
		{"Corto1@", false},       // under 8
		{"secreto1@", false},     // no upper case
		{"Secretooo@", false},    // no digit
		{"Secreto12", false},     // no special
		{"Secreto1#", false},     // # outside the allowed set
		{"Secreto1@ ", false},    // space outside the allowed set
		{"MUYSEGURA1@", true},    // lower case not required
	}
	for _, c := range cases {
		if got := validate.Password(c.in); got != c.ok {
			t.Errorf("Password(%q) = %v, want %v", c.in, got, c.ok)
		}
	}
}

func TestPhone(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"12345678", true},
		{"1234-5678", true},
		{"123456789", false},
		{"", false},
		{"sin digitos", false},
	}
	for _, c := range cases {
		if got := validate.Phone(c.in); got != c.ok {
			t.Errorf("Phone(%q) = %v, want %v", c.in, got, c.ok)
		}
	}
}

func TestAdult(t *testing.T) {
	if !validate.Adult("1990-06-15") {
		t.Error("a 1990 birth date is an adult")
	}
	if validate.Adult("2020-06-15") {
		t.Error("a 2020 birth date is not an adult")
	}
	if validate.Adult("no-es-fecha") {
		t.Error("garbage never validates")
	}
}

func TestID(t *testing.T) {
	if _, ok := validate.ID("6EB91343-C1DD-4FE0-AD42-FD479D5575F2"); !ok {
		t.Error("uuid-shaped ids must pass")
	}
	for _, bad := range []string{"", "../etc/passwd", "id con espacios", strings.Repeat("a", 65)} {
		if _, ok := validate.ID(bad); ok {
			t.Errorf("ID(%q) must fail", bad)
		}
	}
}
