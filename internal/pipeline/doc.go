// Package pipeline runs one lookup: obtain the report (probe), build the
// sub-brick index (brik), and write the result (display).
//
// A missing inspection command degrades to an empty report unless the
// config asks for strict behavior, so a plain run against an unusable
// setup prints nothing and succeeds. Duplicate sub-brick names or
// indices are always an error.
package pipeline
