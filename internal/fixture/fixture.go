// SPDX-License-Identifier: MIT

// Package fixture loads the YAML graph fixtures shared by the engine tests.
//
// A fixture describes a small graph plus the answers every engine must agree
// on. Weights are written as plain numbers and converted to the weight type
// requested by the caller.
package fixture

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlath-paths/core"
	"github.com/katalvlaran/lvlath-paths/shortest"
)

//go:embed graphs/*.yaml
var graphs embed.FS

// ErrUnknownFixture is returned by Load for a name with no YAML file.
var ErrUnknownFixture = errors.New("fixture: unknown fixture")

// Edge is one edge line of a fixture.
type Edge struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// Pair is an expected all-pairs distance.
type Pair struct {
	From string  `yaml:"from"`
	To   string  `yaml:"to"`
	Cost float64 `yaml:"cost"`
}

// Fixture is the decoded form of graphs/<name>.yaml.
type Fixture struct {
	Name     string   `yaml:"name"`
	Directed bool     `yaml:"directed"`
	Nodes    []string `yaml:"nodes"` // isolated or extra nodes
	Edges    []Edge   `yaml:"edges"`

	// Source is the single-source query origin; Distances and Paths are the
	// expected answers from it (unreachable nodes are absent).
	Source    string              `yaml:"source"`
	Distances map[string]float64  `yaml:"distances"`
	Paths     map[string][]string `yaml:"paths"`

	// NonNegative is false when some edge weight is negative.
	NonNegative bool `yaml:"non_negative"`
	// NegativeCycle marks graphs Floyd-Warshall must reject.
	NegativeCycle bool `yaml:"negative_cycle"`
	// Pairs lists expected all-pairs distances (subset is fine).
	Pairs []Pair `yaml:"pairs"`
}

// Names lists every embedded fixture, sorted.
func Names() []string {
	entries, err := graphs.ReadDir("graphs")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)

	return names
}

// Load decodes the fixture called name.
func Load(name string) (Fixture, error) {
	raw, err := graphs.ReadFile(path.Join("graphs", name+".yaml"))
	if err != nil {
		return Fixture{}, fmt.Errorf("%w: %s", ErrUnknownFixture, name)
	}

	return Parse(name, raw)
}

// Parse decodes raw YAML in the fixture format. name is used when the
// document carries none.
func Parse(name string, raw []byte) (Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Fixture{}, fmt.Errorf("fixture: decode %s: %w", name, err)
	}
	if f.Name == "" {
		f.Name = name
	}

	return f, nil
}

// Build materialises f as a core.Graph. Parallel edges and loops are allowed
// so that fixtures can exercise them.
func Build[W shortest.Weight](f Fixture) (*core.Graph[W], error) {
	g := core.NewGraph[W](core.WithDirected(f.Directed), core.WithMultiEdges(), core.WithLoops())
	for _, id := range f.Nodes {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("fixture %s: %w", f.Name, err)
		}
	}
	for _, e := range f.Edges {
		if _, err := g.AddEdge(e.From, e.To, W(e.Weight)); err != nil {
			return nil, fmt.Errorf("fixture %s: edge %s→%s: %w", f.Name, e.From, e.To, err)
		}
	}

	return g, nil
}

// Distances converts the expected distances to W.
func Distances[W shortest.Weight](f Fixture) map[string]W {
	out := make(map[string]W, len(f.Distances))
	for k, v := range f.Distances {
		out[k] = W(v)
	}

	return out
}
