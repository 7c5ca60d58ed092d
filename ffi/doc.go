// Package ffi declares the Go side of the native core's binary contract.
//
// Every type here mirrors, field for field, a struct the core passes across
// the language boundary. The mirrors carry no behavior beyond fixed-capacity
// buffer accessors; their only job is to compile to the exact layout the
// core's C declarations produce, which the layout package verifies.
//
// The package also declares the closed set of result and state constants the
// host relies on, the four callback signatures the core invokes, and the
// full core surface as the Core interface. Stub satisfies Core without a
// native library so the surface stays provably implementable.
package ffi
