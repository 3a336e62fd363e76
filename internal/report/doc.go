// Package report holds the outcome of comparing two model sets: one Record
// per changed type or member, each classified by change kind and severity
// with per-attribute details.
//
// Records are sorted deterministically (type name, change kind, member,
// first detail aspect) so two runs over the same inputs produce identical
// reports.
package report
