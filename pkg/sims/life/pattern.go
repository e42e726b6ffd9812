package life

import (
	"fmt"
	"sort"
	"strings"
)

// Pattern is a rectangular stamp of cell states, indexed [row][col].
type Pattern [][]bool

// Width returns the widest row of the pattern.
func (p Pattern) Width() int {
	w := 0
	for _, row := range p {
		w = max(w, len(row))
	}
	return w
}

// Height returns the number of rows.
func (p Pattern) Height() int { return len(p) }

// ParsePattern reads rows where '#', 'O', 'o' and '*' mark live cells and
// '.', '_' and ' ' mark dead ones.
func ParsePattern(rows []string) (Pattern, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("pattern has no rows")
	}
	p := make(Pattern, len(rows))
	for r, line := range rows {
		p[r] = make([]bool, len(line))
		for c, ch := range line {
			switch ch {
			case '#', 'O', 'o', '*':
				p[r][c] = true
			case '.', '_', ' ':
			default:
				return nil, fmt.Errorf("pattern row %d col %d: unexpected %q", r, c, ch)
			}
		}
	}
	return p, nil
}

var builtins = map[string][]string{
	"block":   {"##", "##"},
	"beehive": {".##.", "#..#", ".##."},
	"blinker": {"###"},
	"toad":    {".###", "###."},
	"beacon":  {"##..", "##..", "..##", "..##"},
	"glider":  {".#.", "..#", "###"},
	"lwss":    {".#..#", "#....", "#...#", "####."},
}

// Builtin returns a well-known pattern by name.
func Builtin(name string) (Pattern, bool) {
	rows, ok := builtins[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	p, err := ParsePattern(rows)
	if err != nil {
		return nil, false
	}
	return p, true
}

// BuiltinNames lists the known pattern names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
