package layout

import "github.com/wippyai/abi-probe/errors"

// Check compares a measured layout against a descriptor. It collects every
// mismatch rather than stopping at the first, so one run names every
// drifted field. A nil return means the layouts agree.
func Check(d Descriptor, m Measured) []error {
	info, err := Calculate(d.Name, d.Fields)
	if err != nil {
		return []error{err}
	}

	var errs []error

	// The declared contract size must agree with the field list it claims
	// to describe; a disagreement is a descriptor bug, not drift.
	expected := info.Size
	if d.Size != 0 {
		if d.Size != info.Size {
			errs = append(errs, errors.New(errors.PhaseLayout, errors.KindBadDescriptor).
				Entity(d.Name).
				Expected(d.Size).
				Actual(info.Size).
				Detail("declared size disagrees with field list").
				Build())
		}
		expected = d.Size
	}

	if m.Size != expected {
		errs = append(errs, errors.SizeMismatch(d.Name, expected, m.Size))
	}

	if len(m.FieldOffs) != len(d.Fields) {
		errs = append(errs, errors.FieldCount(d.Name, len(d.Fields), len(m.FieldOffs)))
		return errs
	}

	for i, f := range d.Fields {
		if m.FieldOffs[i] != info.FieldOffs[i] {
			errs = append(errs, errors.OffsetMismatch(d.Name, f.Name, info.FieldOffs[i], m.FieldOffs[i]))
		}
	}

	return errs
}

// Verify measures the descriptor's mirror and checks it. The measurement
// is returned even when checks fail so the report can show actual values.
func Verify(d Descriptor) (Measured, []error) {
	m, err := Measure(d.Name, d.Mirror)
	if err != nil {
		return Measured{}, []error{err}
	}
	return m, Check(d, m)
}
