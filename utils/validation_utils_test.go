package utils

import "testing"

func TestIsValidName(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"Al", true},
		{"A", false},
		{"  B  ", false},
		{"  Bo ", true},
		{"", false},
		{"Marianne", true},
	}

	for _, c := range cases {
		if got := IsValidName(c.in); got != c.want {
			t.Fatalf("IsValidName(%q) = %v; want %v", c.in, got, c.want)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"+1 555 010 9999", true},
		{"5550100", true},
		{"(020) 7946-0958", false}, // leading parenthesis not accepted
		{"020 7946-0958", true},
		{"12345", false},
		{"not-a-phone", false},
		{"", false},
	}

	for _, c := range cases {
		if got := IsValidPhone(c.in); got != c.want {
			t.Fatalf("IsValidPhone(%q) = %v; want %v", c.in, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"user@example.com", true},
		{"user@localhost", false},
		{"@example.com", false},
		{"user@", false},
		{"plainaddress", false},
	}

	for _, c := range cases {
		if got := IsValidEmail(c.in); got != c.want {
			t.Fatalf("IsValidEmail(%q) = %v; want %v", c.in, got, c.want)
		}
	}
}
