package brik

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// reSubBrick matches the per-sub-brick header 3dinfo -verb prints, e.g.
// "-- At sub-brick #1 'cat2_conv_c1#0_Coef' datum type is float:".
var reSubBrick = regexp.MustCompile(`At sub-brick #(\d+) '(\S*)' datum`)

// Parse scans report line by line and builds an Index from every line
// matching the sub-brick header. Other lines, including any error text
// from the inspection tool, are ignored. A report with no matching lines
// yields an empty Index and no error.
func Parse(report string) (*Index, error) {
	x := NewIndex()
	for n, line := range strings.Split(report, "\n") {
		m := reSubBrick.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		index, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: sub-brick index %q: %w", n+1, m[1], err)
		}
		if err := x.Add(m[2], index); err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
	}
	return x, nil
}

// ParseReader reads r to EOF and parses it with [Parse].
func ParseReader(r io.Reader) (*Index, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	return Parse(string(b))
}
