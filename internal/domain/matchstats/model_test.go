package matchstats

import "testing"

func TestPassAccuracy(t *testing.T) {
	if got := PassAccuracy(0, 0); got != 0 {
		t.Fatalf("zero attempts should be 0, got %v", got)
	}
	if got := PassAccuracy(7, 10); got != 70.0 {
		t.Fatalf("7/10 should be 70.0, got %v", got)
	}
	if got := PassAccuracy(5, 0); got != 0 {
		t.Fatalf("0 attempts should be 0 regardless of completions, got %v", got)
	}
	// Malformed source data is passed through unclamped.
	if got := PassAccuracy(10, 7); got <= 100 {
		t.Fatalf("completed > attempted should exceed 100, got %v", got)
	}
}

func TestParseDuplicatePolicy(t *testing.T) {
	cases := map[string]DuplicatePolicy{
		"":        PolicySkip,
		"skip":    PolicySkip,
		"SKIP":    PolicySkip,
		"error":   PolicyError,
		"replace": PolicyReplace,
	}
	for raw, want := range cases {
		got, err := ParseDuplicatePolicy(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse %q: got %s want %s", raw, got, want)
		}
	}

	if _, err := ParseDuplicatePolicy("upsert"); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}
