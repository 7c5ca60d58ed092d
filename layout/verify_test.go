package layout

import (
	"errors"
	"testing"

	probeerr "github.com/wippyai/abi-probe/errors"
)

func descriptor(t *testing.T, name string) Descriptor {
	t.Helper()
	for _, d := range Descriptors() {
		if d.Name == name {
			return d
		}
	}
	t.Fatalf("no descriptor named %q", name)
	return Descriptor{}
}

func TestVerifyAllDescriptorsPass(t *testing.T) {
	for _, d := range Descriptors() {
		t.Run(d.Name, func(t *testing.T) {
			m, errs := Verify(d)
			for _, err := range errs {
				t.Errorf("unexpected mismatch: %v", err)
			}
			if d.Size != 0 && m.Size != d.Size {
				t.Errorf("measured size: got %d, want %d", m.Size, d.Size)
			}
		})
	}
}

func TestVerifyFixedSizes(t *testing.T) {
	want := map[string]uint32{
		"version":    64,
		"traffic":    24,
		"memory":     16,
		"log":        536,
		"connection": 592,
	}
	for name, size := range want {
		t.Run(name, func(t *testing.T) {
			m, errs := Verify(descriptor(t, name))
			if len(errs) != 0 {
				t.Fatalf("mismatches: %v", errs)
			}
			if m.Size != size {
				t.Errorf("size: got %d, want %d", m.Size, size)
			}
		})
	}
}

func TestCheckDriftedSize(t *testing.T) {
	// A platform whose padding rules grew LogEntry to 544 must be caught,
	// and the failure must name the entity with both sizes.
	d := descriptor(t, "log")
	m, err := Measure(d.Name, d.Mirror)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	m.Size = 544

	errs := Check(d, m)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	var pe *probeerr.Error
	if !errors.As(errs[0], &pe) {
		t.Fatalf("error type: %T", errs[0])
	}
	if pe.Kind != probeerr.KindSizeMismatch || pe.Entity != "log" {
		t.Errorf("got %v", pe)
	}
	if pe.Expected != uint32(536) || pe.Actual != uint32(544) {
		t.Errorf("expected/actual: got %v/%v", pe.Expected, pe.Actual)
	}

	// The other entities must still verify clean: collect-all means one
	// drifted entity never hides the state of the rest.
	for _, other := range Descriptors() {
		if other.Name == "log" {
			continue
		}
		if _, errs := Verify(other); len(errs) != 0 {
			t.Errorf("%s: unexpected mismatches %v", other.Name, errs)
		}
	}
}

func TestCheckDriftedOffsets(t *testing.T) {
	// Swapping two field offsets keeps the total size intact; the offset
	// checks must still catch it. Aggregate size equality alone proves
	// nothing about field order.
	d := descriptor(t, "traffic")
	m, err := Measure(d.Name, d.Mirror)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	m.FieldOffs[1], m.FieldOffs[2] = m.FieldOffs[2], m.FieldOffs[1]

	errs := Check(d, m)
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), errs)
	}
	for _, err := range errs {
		if !errors.Is(err, &probeerr.Error{Phase: probeerr.PhaseLayout, Kind: probeerr.KindOffsetMismatch}) {
			t.Errorf("got %v, want offset_mismatch", err)
		}
	}
}

func TestCheckCollectsEverything(t *testing.T) {
	// Wrong size and wrong offsets in one pass: all of it must surface.
	d := descriptor(t, "memory")
	m := Measured{Size: 24, FieldOffs: []uint32{0, 16}}

	errs := Check(d, m)
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), errs)
	}
}

func TestCheckFieldCountDrift(t *testing.T) {
	d := descriptor(t, "memory")
	m := Measured{Size: 16, FieldOffs: []uint32{0}}

	errs := Check(d, m)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if !errors.Is(errs[0], &probeerr.Error{Phase: probeerr.PhaseLayout, Kind: probeerr.KindFieldCount}) {
		t.Errorf("got %v, want field_count", errs[0])
	}
}

func TestMeasureRejectsNonStruct(t *testing.T) {
	tests := []struct {
		name   string
		mirror any
	}{
		{"nil", nil},
		{"int", 42},
		{"pointer", &struct{}{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Measure("bogus", tc.mirror)
			if !errors.Is(err, &probeerr.Error{Phase: probeerr.PhaseLayout, Kind: probeerr.KindNotStruct}) {
				t.Errorf("got %v, want not_struct", err)
			}
		})
	}
}

func TestMeasureIsDeterministic(t *testing.T) {
	d := descriptor(t, "connection")
	a, err := Measure(d.Name, d.Mirror)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	b, err := Measure(d.Name, d.Mirror)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if a.Size != b.Size {
		t.Errorf("sizes differ: %d vs %d", a.Size, b.Size)
	}
	for i := range a.FieldOffs {
		if a.FieldOffs[i] != b.FieldOffs[i] {
			t.Errorf("offset %d differs: %d vs %d", i, a.FieldOffs[i], b.FieldOffs[i])
		}
	}
}
