package layout

import (
	"reflect"

	"github.com/wippyai/abi-probe/errors"
)

// Measured is the layout the Go compiler actually produced for a mirror.
type Measured struct {
	Size      uint32
	FieldOffs []uint32
}

// Measure reads the mirror struct's compiled size and field offsets.
// Measurement is deterministic for a given binary and has no side effects.
func Measure(entity string, mirror any) (Measured, error) {
	if mirror == nil {
		return Measured{}, errors.NotStruct(entity, "nil")
	}
	t := reflect.TypeOf(mirror)
	if t.Kind() != reflect.Struct {
		return Measured{}, errors.NotStruct(entity, t.String())
	}

	m := Measured{
		Size:      uint32(t.Size()),
		FieldOffs: make([]uint32, t.NumField()),
	}
	for i := 0; i < t.NumField(); i++ {
		m.FieldOffs[i] = uint32(t.Field(i).Offset)
	}
	return m, nil
}
