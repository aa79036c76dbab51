package brik

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors returned by [Index.Add]. Either one means the report
// did not come from a well-formed dataset.
var (
	ErrDuplicateName  = errors.New("duplicate sub-brick name")
	ErrDuplicateIndex = errors.New("duplicate sub-brick index")
	ErrNegativeIndex  = errors.New("negative sub-brick index")
)

// SubBrick is one named, indexed volume within a dataset.
type SubBrick struct {
	Index int    `json:"index" yaml:"index"`
	Name  string `json:"name" yaml:"name"`
}

// Index maps sub-brick names to zero-based indices and back. The zero
// value is not usable; call [NewIndex].
type Index struct {
	byName  map[string]int
	byIndex map[int]string
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{
		byName:  make(map[string]int),
		byIndex: make(map[int]string),
	}
}

// Add inserts name → index. It fails without modifying the Index when the
// name or the index is already present.
func (x *Index) Add(name string, index int) error {
	if index < 0 {
		return fmt.Errorf("%w: #%d '%s'", ErrNegativeIndex, index, name)
	}
	if prev, ok := x.byName[name]; ok {
		return fmt.Errorf("%w: '%s' at #%d and #%d", ErrDuplicateName, name, prev, index)
	}
	if prev, ok := x.byIndex[index]; ok {
		return fmt.Errorf("%w: #%d is both '%s' and '%s'", ErrDuplicateIndex, index, prev, name)
	}
	x.byName[name] = index
	x.byIndex[index] = name
	return nil
}

// Lookup returns the index of name and whether it is present.
func (x *Index) Lookup(name string) (int, bool) {
	i, ok := x.byName[name]
	return i, ok
}

// HasName reports whether name is a key.
func (x *Index) HasName(name string) bool {
	_, ok := x.byName[name]
	return ok
}

// HasIndex reports whether index is a value.
func (x *Index) HasIndex(index int) bool {
	_, ok := x.byIndex[index]
	return ok
}

// Len returns the number of entries.
func (x *Index) Len() int { return len(x.byName) }

// SubBricks returns all entries ordered by ascending index.
func (x *Index) SubBricks() []SubBrick {
	out := make([]SubBrick, 0, len(x.byIndex))
	for i, name := range x.byIndex {
		out = append(out, SubBrick{Index: i, Name: name})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Index < out[b].Index })
	return out
}

// Names returns all names ordered by ascending index. Indices need not be
// contiguous, so a name's position in the slice is only its index when
// the dataset reports every sub-brick.
func (x *Index) Names() []string {
	sbs := x.SubBricks()
	names := make([]string, len(sbs))
	for i, sb := range sbs {
		names[i] = sb.Name
	}
	return names
}
