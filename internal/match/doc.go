// Package match scores how alike two member names are and pairs removed
// members with added ones that look like renames.
//
// Key functions:
//   - NormalizeIdent: folds a Java identifier for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - NameSimilarity: best similarity over the plain and affix-stripped forms
//   - RankRenames / PairRenames: rank and pair rename candidates
package match
