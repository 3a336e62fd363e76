// Package snapshot persists model sets.
//
// A snapshot is a plain data tree (Snapshot, Type, Member, Annotation,
// Value) that encodes as YAML, canonical CBOR or MessagePack. Every type
// carries the digest it had when written. Reading a snapshot replays it
// through an extract.Sink, seals each rebuilt type and compares the
// digests; any difference is a *model.ModelIntegrityError.
package snapshot
