package registry

import "testing"

func TestConstantsMatch(t *testing.T) {
	for _, c := range Constants() {
		t.Run(c.Key, func(t *testing.T) {
			if c.Actual != c.Expected {
				t.Errorf("%s: got %d, want %d", c.Name, c.Actual, c.Expected)
			}
		})
	}
}

func TestConstantsOrder(t *testing.T) {
	// The emission order is part of the contract: parsers index the enum
	// line by position, so the order must hold regardless of the values.
	want := []string{"ok", "init", "inval", "rt", "notinit", "halt", "run"}
	consts := Constants()
	if len(consts) != len(want) {
		t.Fatalf("got %d constants, want %d", len(consts), len(want))
	}
	for i, key := range want {
		if consts[i].Key != key {
			t.Errorf("position %d: got %q, want %q", i, consts[i].Key, key)
		}
	}
}

func TestVerifyConstantsClean(t *testing.T) {
	if errs := VerifyConstants(); len(errs) != 0 {
		t.Errorf("unexpected mismatches: %v", errs)
	}
}

func TestConstantValues(t *testing.T) {
	tests := []struct {
		key  string
		want int32
	}{
		{"ok", 0},
		{"init", 1},
		{"inval", 2},
		{"rt", 3},
		{"notinit", 4},
		{"halt", 0},
		{"run", 2},
	}
	byKey := map[string]Constant{}
	for _, c := range Constants() {
		byKey[c.Key] = c
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			c, ok := byKey[tc.key]
			if !ok {
				t.Fatalf("constant %q missing from registry", tc.key)
			}
			if c.Actual != tc.want {
				t.Errorf("got %d, want %d", c.Actual, tc.want)
			}
		})
	}
}
