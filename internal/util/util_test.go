package util

import (
	"testing"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple", input: "Acme", expected: "acme"},
		{name: "spaces", input: "Best Buy Deals", expected: "best-buy-deals"},
		{name: "punctuation run", input: "Joe's  Deals & Co.", expected: "joe-s-deals-co"},
		{name: "leading and trailing", input: "  --Shop 24/7--  ", expected: "shop-24-7"},
		{name: "non ascii collapsed", input: "Café Müller", expected: "caf-m-ller"},
		{name: "only symbols", input: "!!!", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Slugify(tt.input); got != tt.expected {
				t.Fatalf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSHA256Hex(t *testing.T) {
	t.Parallel()

	const want = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := SHA256Hex(""); got != want {
		t.Fatalf("SHA256Hex(\"\") = %s, want %s", got, want)
	}
	if SHA256Hex("a") == SHA256Hex("b") {
		t.Fatal("distinct inputs must hash differently")
	}
}

func TestClampPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page, size int
		offset     int
		limit      int
	}{
		{name: "defaults", page: 0, size: 0, offset: 0, limit: 20},
		{name: "second page", page: 2, size: 10, offset: 10, limit: 10},
		{name: "capped", page: 3, size: 500, offset: 200, limit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			offset, limit := ClampPage(tt.page, tt.size, 20, 100)
			if offset != tt.offset || limit != tt.limit {
				t.Fatalf("ClampPage(%d, %d) = (%d, %d), want (%d, %d)", tt.page, tt.size, offset, limit, tt.offset, tt.limit)
			}
		})
	}
}
