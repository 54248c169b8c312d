package handlers

import "testing"

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"foo@example.com", "foo@example.com"},
		{"Foo@Example.COM", "foo@example.com"},
		{"  foo@example.com  ", "foo@example.com"},
		{"\tFoo@Example.com\n", "foo@example.com"},
	}

	for _, tc := range cases {
		if got := normalizeEmail(tc.in); got != tc.want {
			t.Errorf("normalizeEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
