package layout

import (
	"github.com/wippyai/abi-probe/errors"
	"github.com/wippyai/abi-probe/layout/internal/abi"
)

// Info is the layout a field sequence must produce under the C ABI.
type Info struct {
	Size      uint32
	Align     uint32
	FieldOffs []uint32
}

// Calculate derives the expected layout for a declared field sequence:
// align each field to its natural alignment, accumulate, then round the
// total up to the widest alignment seen.
func Calculate(entity string, fields []Field) (Info, error) {
	if len(fields) == 0 {
		return Info{}, errors.BadDescriptor(entity, "empty field list")
	}

	fieldOffs := make([]uint32, 0, len(fields))
	maxAlign := uint32(1)
	offset := uint32(0)

	for _, field := range fields {
		align := field.Kind.Align()
		size := field.Kind.Size()
		if size == 0 {
			return Info{}, errors.BadDescriptor(entity, "field "+field.Name+" has invalid kind")
		}

		count := field.Count
		if count == 0 {
			count = 1
		}
		total, ok := abi.SafeMulU32(size, count)
		if !ok {
			return Info{}, errors.BadDescriptor(entity, "field "+field.Name+" overflows")
		}

		offset = abi.AlignTo(offset, align)
		fieldOffs = append(fieldOffs, offset)

		if align > maxAlign {
			maxAlign = align
		}

		offset, ok = abi.SafeAddU32(offset, total)
		if !ok {
			return Info{}, errors.BadDescriptor(entity, "field "+field.Name+" overflows")
		}
	}

	return Info{
		Size:      abi.AlignTo(offset, maxAlign),
		Align:     maxAlign,
		FieldOffs: fieldOffs,
	}, nil
}
