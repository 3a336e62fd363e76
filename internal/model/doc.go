// Package model provides the structural model of compiled types and its
// canonicalization contract.
//
// Every entity is created through a builder whose terminal Build step
// validates mandatory fields. A TypeInfo then accretes members through
// ordered Add* calls until Seal freezes it together with its members.
//
// Key types:
//   - TypeInfo: the aggregate root, identified by its qualified name
//   - FieldInfo, MethodInfo, ConstructorInfo, InnerClassRef: members
//   - AnnotationInfo and AnnotationValue: attached metadata
//   - Digest: SHA-256 over an entity's canonical content
//   - ModelSet: qualified name to sealed TypeInfo
package model
