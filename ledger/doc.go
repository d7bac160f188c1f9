// Package ledger implements Ledger, an append-only, thread-safe,
// deterministically hashed log of blueprint forge proposals.
//
// A Ledger may be shared across multiple blueprint.Blueprint instances
// (spec §5): a single sync.Mutex guards the entry slice, the sequence
// counter, and the law version, and every exported method takes it, so
// concurrent forges on distinct blueprints sharing one ledger serialize
// only at the ledger boundary, never across blueprints.
//
// Append's content hash is a pure function of (the four control points'
// IEEE-754 bytes, the law version, the concatenated law names, the
// verdict tag, and the sequence index) — spec §4.7 is explicit that the
// hash function itself is not a cryptographic contract, only that one
// choice is used consistently; this package uses
// github.com/cespare/xxhash/v2 (already part of this module's dependency
// graph via prometheus/client_golang, and the "64-bit mixing hash" spec
// §9 calls out as the reference choice).
package ledger
