package search

import (
	"fmt"
	"strings"
)

// Algorithm selects one of the four built-in strategies.
type Algorithm int

const (
	BFS Algorithm = iota
	DFS
	Dijkstra
	AStar
)

// Info describes an algorithm for menus and help output.
type Info struct {
	Algorithm              Algorithm
	ID                     string
	Name                   string
	Description            string
	TimeComplexity         string
	SpaceComplexity        string
	GuaranteesShortestPath bool
	Weighted               bool
}

var catalog = [...]Info{
	BFS: {
		Algorithm:              BFS,
		ID:                     "bfs",
		Name:                   "Breadth First Search",
		Description:            "Explores all neighbors at the current depth before moving deeper",
		TimeComplexity:         "O(V + E)",
		SpaceComplexity:        "O(V)",
		GuaranteesShortestPath: true,
	},
	DFS: {
		Algorithm:       DFS,
		ID:              "dfs",
		Name:            "Depth First Search",
		Description:     "Explores as far as possible along each branch before backtracking",
		TimeComplexity:  "O(V + E)",
		SpaceComplexity: "O(V)",
	},
	Dijkstra: {
		Algorithm:              Dijkstra,
		ID:                     "dijkstra",
		Name:                   "Dijkstra's Algorithm",
		Description:            "Settles cells in order of cumulative cost, honouring trap weights",
		TimeComplexity:         "O((V + E) log V)",
		SpaceComplexity:        "O(V)",
		GuaranteesShortestPath: true,
		Weighted:               true,
	},
	AStar: {
		Algorithm:              AStar,
		ID:                     "astar",
		Name:                   "A* Search",
		Description:            "Dijkstra guided by a Manhattan-distance estimate of the remaining cost",
		TimeComplexity:         "O((V + E) log V)",
		SpaceComplexity:        "O(V)",
		GuaranteesShortestPath: true,
		Weighted:               true,
	},
}

// Catalog returns the four algorithms in declaration order.
func Catalog() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog[:])

	return out
}

// Valid reports whether a is one of the four strategies.
func (a Algorithm) Valid() bool { return a >= BFS && a <= AStar }

// Info returns the catalog entry for a. Invalid values yield a zero Info.
func (a Algorithm) Info() Info {
	if !a.Valid() {
		return Info{}
	}

	return catalog[a]
}

// String returns the short ID ("bfs", "dfs", "dijkstra", "astar").
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return catalog[a].ID
}

// ParseAlgorithm maps an ID (case-insensitive) to its Algorithm.
// "a*" is accepted as an alias for "astar".
func ParseAlgorithm(s string) (Algorithm, error) {
	id := strings.ToLower(strings.TrimSpace(s))
	if id == "a*" {
		id = "astar"
	}
	for _, info := range catalog {
		if info.ID == id {
			return info.Algorithm, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so Algorithm can be
// read straight from YAML or flags.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}
