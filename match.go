package rematch

import (
	"github.com/dlclark/regexp2"
)

// Group is the text captured by one capturing group, or Absent if the
// group did not take part in the match. Absent is distinct from a group
// that matched the empty string.
type Group struct {
	value   string
	present bool
}

// Absent is the Group of a capturing group that didn't participate.
var Absent = Group{}

func Present(s string) Group {
	return Group{value: s, present: true}
}

// Value returns the captured text and whether the group participated.
func (g Group) Value() (string, bool) {
	return g.value, g.present
}

func (g Group) IsPresent() bool {
	return g.present
}

// AsString fails with ErrAbsentGroup for an absent group.
func (g Group) AsString() (string, error) {
	if !g.present {
		return "", ErrAbsentGroup
	}
	return g.value, nil
}

func (g Group) String() string {
	if !g.present {
		return "<absent>"
	}
	return g.value
}

// Groups lists the groups of one match, index 0 being the whole match.
type Groups []Group

var _ Sequence = Groups(nil)

// Get returns Absent for indices out of range so that hosts may probe
// groups speculatively.
func (gs Groups) Get(i int) (Value, error) {
	return gs.Group(i), nil
}

func (gs Groups) Group(i int) Group {
	if i < 0 || i >= len(gs) {
		return Absent
	}
	return gs[i]
}

func (gs Groups) Size() (int, error) {
	return len(gs), nil
}

// Match is one occurrence of a pattern in the input.
type Match struct {
	text   string
	index  int
	groups Groups
}

var _ Scalar = (*Match)(nil)

func newMatch(m *regexp2.Match) *Match {
	groups := m.Groups()
	gs := make(Groups, len(groups))
	for i := range groups {
		if len(groups[i].Captures) == 0 {
			gs[i] = Absent
		} else {
			gs[i] = Present(groups[i].String())
		}
	}
	return &Match{text: m.String(), index: m.Index, groups: gs}
}

// String returns the matched part of the input.
func (m *Match) String() string {
	return m.text
}

func (m *Match) AsString() (string, error) {
	return m.text, nil
}

// Index is the position of the match in the input, counted in runes.
func (m *Match) Index() int {
	return m.index
}

func (m *Match) Groups() Groups {
	return m.groups
}

func (m *Match) Group(i int) Group {
	return m.groups.Group(i)
}
