// Package layout holds the descriptor set for every cross-boundary entity
// and the verifier that compares each descriptor against the mirror struct
// the compiler actually produced.
//
// A Descriptor is pure data: the entity name, its contract size, and the
// ordered C field sequence. Calculate derives the expected per-field
// offsets and total size from that sequence under the platform C ABI rules
// (align each field to its natural alignment, accumulate, round the total
// up to the widest alignment). Measure reads the mirror's real size and
// offsets through reflection, and Check compares the two with collect-all
// semantics: every drifted field is reported, not just the first.
//
// Padding and alignment differences are real mismatches. Catching silent
// drift introduced by the compiler, the platform, or a reordered field is
// the entire point of the package.
package layout
