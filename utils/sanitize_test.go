package utils

import "testing"

func TestSanitizeStripsMarkup(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain name", "plain name"},
		{"<script>alert(1)</script>hello", "hello"},
		{"<b>bold</b>", "bold"},
		{"고구마", "고구마"},
		{"Tom & Jerry", "Tom & Jerry"},
		{"1 < 2", "1 < 2"},
	}
	for _, tc := range cases {
		if got := Sanitize(tc.in); got != tc.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
