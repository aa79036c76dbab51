// Package probe obtains the 3dinfo -verb report for a dataset. The
// inspection command runs once per dataset with stdout and stderr captured
// into separate buffers; [Report.Text] joins them for parsing. A report
// captured elsewhere can be read instead with [ReadReport].
//
// A non-zero exit from the inspection command is not an error here: its
// output (often just an error message) is still returned and simply yields
// no sub-bricks when parsed. Only a command that cannot be started, or a
// timeout, is reported as an error.
package probe
