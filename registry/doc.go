// Package registry holds the two closed registries of the binary contract
// that are not struct layouts: the named integer constants the host relies
// on, and the callback shapes the core invokes.
//
// The constant table is fixed and ordered; adding a cross-boundary constant
// means extending the table, never inferring it from the native side. The
// callback registry instantiates one dummy handler per callback kind with
// the exact boundary signature and proves two things: the handler's address
// is obtainable and non-null (linkage), and invoking it with a sample
// round-trips through the callback type (calling convention). Handlers do
// no real work; each only renders its sample into the writer passed as the
// borrowed context value.
package registry
