// Package compare matches two model sets by identity and classifies every
// difference by its compatibility impact.
//
// Types are matched by qualified name, fields and inner classes by name,
// methods and constructors by (name, argument types). A built-in rule table
// assigns each change a default severity and the compatibility it breaks;
// a Policy sees the underlying facts (change kind, visibility, annotation)
// and may reclassify.
package compare
