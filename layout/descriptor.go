package layout

import (
	"unsafe"

	"github.com/wippyai/abi-probe/ffi"
)

// Kind is the C type of one declared field.
type Kind uint8

const (
	U8 Kind = iota
	U16
	U32
	U64
	Ptr
)

// Size returns the field type's byte size on the current platform.
func (k Kind) Size() uint32 {
	switch k {
	case U8:
		return 1
	case U16:
		return 2
	case U32:
		return 4
	case U64:
		return 8
	case Ptr:
		return uint32(unsafe.Sizeof(uintptr(0)))
	default:
		return 0
	}
}

// Align returns the field type's natural alignment, which for every C
// scalar under test equals its size.
func (k Kind) Align() uint32 {
	return k.Size()
}

func (k Kind) String() string {
	switch k {
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	case Ptr:
		return "ptr"
	default:
		return "invalid"
	}
}

// Field declares one C field. Count > 1 declares a fixed array; zero and
// one both mean a scalar.
type Field struct {
	Name  string
	Kind  Kind
	Count uint32
}

// Descriptor is the compiled-in contract for one cross-boundary entity.
// Size is the contract total in bytes; zero means the total is platform
// derived (pointer-bearing entities) and only internal consistency is
// checked. Mirror is the Go struct whose compiled layout must match.
type Descriptor struct {
	Mirror any
	Name   string
	Key    string
	Size   uint32
	Fields []Field
}

// Descriptors returns the full descriptor set in report order. The table
// is the single source of truth for what the checker verifies; adding a
// cross-boundary entity means extending it, never inferring from the
// native side.
func Descriptors() []Descriptor {
	return []Descriptor{
		{
			Name: "version", Key: "ver", Size: 64, Mirror: ffi.VersionInfo{},
			Fields: []Field{
				{Name: "version", Kind: U8, Count: 64},
			},
		},
		{
			Name: "traffic", Key: "tx", Size: 24, Mirror: ffi.TrafficSample{},
			Fields: []Field{
				{Name: "timestamp_ms", Kind: U64},
				{Name: "up", Kind: U64},
				{Name: "down", Kind: U64},
			},
		},
		{
			Name: "memory", Key: "mem", Size: 16, Mirror: ffi.MemorySample{},
			Fields: []Field{
				{Name: "timestamp_ms", Kind: U64},
				{Name: "inuse", Kind: U64},
			},
		},
		{
			Name: "log", Key: "log", Size: 536, Mirror: ffi.LogEntry{},
			Fields: []Field{
				{Name: "timestamp_ms", Kind: U64},
				{Name: "level", Kind: U8, Count: 16},
				{Name: "payload", Kind: U8, Count: 512},
			},
		},
		{
			Name: "connection", Key: "conn", Size: 592, Mirror: ffi.Connection{},
			Fields: []Field{
				{Name: "id", Kind: U8, Count: 64},
				{Name: "metadata_host", Kind: U8, Count: 256},
				{Name: "metadata_dst_port", Kind: U16},
				{Name: "rule", Kind: U8, Count: 256},
				{Name: "start_time_ms", Kind: U64},
			},
		},
		{
			Name: "connection_list", Key: "list", Mirror: ffi.ConnectionList{},
			Fields: []Field{
				{Name: "connections", Kind: Ptr},
				{Name: "count", Kind: Ptr},
			},
		},
		{
			Name: "config_buffer", Key: "cfg", Mirror: ffi.ConfigBuffer{},
			Fields: []Field{
				{Name: "data", Kind: Ptr},
				{Name: "length", Kind: Ptr},
			},
		},
		{
			Name: "init_options", Key: "opt", Mirror: ffi.InitOptions{},
			Fields: []Field{
				{Name: "home_dir", Kind: Ptr},
				{Name: "config_file", Kind: Ptr},
				{Name: "external_controller", Kind: Ptr},
				{Name: "secret", Kind: Ptr},
				{Name: "log_level", Kind: U32},
			},
		},
	}
}
