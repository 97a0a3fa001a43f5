package validators

import "testing"

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"912 345 678", "912345678"},
		{"+351 912-345-678", "+351912345678"},
		{"(91) 2345-678", "912345678"},
		{"9+12345678", "912345678"}, // '+' só vale no início
	}

	for _, tc := range cases {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsPhoneValid(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"912345678", true},
		{"+351912345678", true},
		{"1234567", true},
		{"123456", false},          // curto demais
		{"1234567890123456", false}, // longo demais
		{"", false},
	}

	for _, tc := range cases {
		if got := IsPhoneValid(tc.in); got != tc.want {
			t.Errorf("IsPhoneValid(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
