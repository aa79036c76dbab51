// Package brik builds the sub-brick name → index mapping of an AFNI
// dataset from the text report printed by 3dinfo -verb.
//
// Each report line of the form
//
//	-- At sub-brick #11 'statmap_GLT_Fstat' datum type is short: ...
//
// contributes one entry (11, "statmap_GLT_Fstat"). Names must not contain
// whitespace. Names and indices are unique within one report; a repeat of
// either is rejected with [ErrDuplicateName] or [ErrDuplicateIndex] rather
// than overwriting the earlier entry.
//
// Files:
//   - index.go: Index type (bidirectional, uniqueness enforced on Add).
//   - parse.go: line pattern and Parse/ParseReader.
package brik
