// Package scenario loads simulation scenarios from YAML and builds the
// corresponding apocalypse.Simulation.
package scenario

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/apocalypse/apocalypse"
	"github.com/katalvlaran/apocalypse/grid"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Map glyphs.
const (
	GlyphEmpty    = '.'
	GlyphObstacle = '#'
	GlyphZombie   = 'Z'
	GlyphHuman    = 'H'
	GlyphBoth     = 'B' // a zombie and a human on the same cell
)

// Sentinel errors for scenario validation.
var (
	// ErrBadDimensions indicates a non-positive height or width.
	ErrBadDimensions = errors.New("scenario: height and width must be positive")
	// ErrMapShape indicates map rows of differing lengths.
	ErrMapShape = errors.New("scenario: all map rows must have the same length")
	// ErrUnknownGlyph indicates a map character outside the glyph set.
	ErrUnknownGlyph = errors.New("scenario: unknown map glyph")
	// ErrBadPoint indicates a coordinate that is not a [row, col] pair.
	ErrBadPoint = errors.New("scenario: point must be a [row, col] pair")
	// ErrBadSteps indicates a negative step count.
	ErrBadSteps = errors.New("scenario: steps must not be negative")
)

// Point is a [row, col] pair in YAML.
type Point struct {
	Row, Col int
}

// UnmarshalYAML decodes a two-element sequence.
func (p *Point) UnmarshalYAML(n *yaml.Node) error {
	var rc []int
	if err := n.Decode(&rc); err != nil {
		return fmt.Errorf("%w: line %d: %v", ErrBadPoint, n.Line, err)
	}
	if len(rc) != 2 {
		return fmt.Errorf("%w: line %d: got %d values", ErrBadPoint, n.Line, len(rc))
	}
	p.Row, p.Col = rc[0], rc[1]
	return nil
}

// MarshalYAML encodes p as a flow-style [row, col] sequence.
func (p Point) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []int{p.Row, p.Col} {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(v)})
	}
	return n, nil
}

// Cell converts p to a grid.Cell.
func (p Point) Cell() grid.Cell {
	return grid.Cell{Row: p.Row, Col: p.Col}
}

// Scenario describes a board and its initial population.
// When Map is set its dimensions take precedence over Height and Width, and
// map entities come before the explicit lists.
type Scenario struct {
	Height    int      `yaml:"height"`
	Width     int      `yaml:"width"`
	Seed      int64    `yaml:"seed"`
	Steps     int      `yaml:"steps"`
	Map       []string `yaml:"map,omitempty"`
	Obstacles []Point  `yaml:"obstacles"`
	Zombies   []Point  `yaml:"zombies"`
	Humans    []Point  `yaml:"humans"`
}

// Default returns the embedded default scenario.
func Default() (*Scenario, error) {
	s := &Scenario{}
	if err := yaml.Unmarshal(defaultsYAML, s); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	return s, nil
}

// Parse overlays data on the embedded defaults. Keys absent from data keep
// their default values, except that a document with a map drops the default
// obstacle and entity lists.
func Parse(data []byte) (*Scenario, error) {
	s, err := Default()
	if err != nil {
		return nil, err
	}
	var probe struct {
		Map []string `yaml:"map"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if len(probe.Map) > 0 {
		s.Obstacles, s.Zombies, s.Humans = nil, nil, nil
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads the scenario at path. An empty path yields the defaults.
func Load(path string) (*Scenario, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	return Parse(data)
}

// Validate checks dimensions, map glyphs, and that every point is on the board.
// It normalizes Height and Width from Map when one is present.
func (s *Scenario) Validate() error {
	if len(s.Map) > 0 {
		s.Height, s.Width = len(s.Map), len(s.Map[0])
		for r, line := range s.Map {
			if len(line) != s.Width {
				return fmt.Errorf("%w: row %d has %d cells, want %d", ErrMapShape, r, len(line), s.Width)
			}
			for c := 0; c < len(line); c++ {
				switch line[c] {
				case GlyphEmpty, GlyphObstacle, GlyphZombie, GlyphHuman, GlyphBoth:
				default:
					return fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownGlyph, line[c], r, c)
				}
			}
		}
	}
	if s.Height < 1 || s.Width < 1 {
		return fmt.Errorf("%w: got %d×%d", ErrBadDimensions, s.Height, s.Width)
	}
	if s.Steps < 0 {
		return fmt.Errorf("%w: %d", ErrBadSteps, s.Steps)
	}
	lists := []struct {
		name string
		pts  []Point
	}{
		{"obstacle", s.Obstacles},
		{"zombie", s.Zombies},
		{"human", s.Humans},
	}
	for _, l := range lists {
		for i, p := range l.pts {
			if p.Row < 0 || p.Row >= s.Height || p.Col < 0 || p.Col >= s.Width {
				return fmt.Errorf("scenario: %s %d: %w: (%d,%d) not in %d×%d",
					l.name, i, grid.ErrOutOfBounds, p.Row, p.Col, s.Height, s.Width)
			}
		}
	}
	return nil
}

// Cells returns the obstacle, zombie, and human cells in seeding order:
// map glyphs in row-major order first, then the explicit lists.
func (s *Scenario) Cells() (obstacles, zombies, humans []grid.Cell) {
	for r, line := range s.Map {
		for c := 0; c < len(line); c++ {
			cell := grid.Cell{Row: r, Col: c}
			switch line[c] {
			case GlyphObstacle:
				obstacles = append(obstacles, cell)
			case GlyphZombie:
				zombies = append(zombies, cell)
			case GlyphHuman:
				humans = append(humans, cell)
			case GlyphBoth:
				zombies = append(zombies, cell)
				humans = append(humans, cell)
			}
		}
	}
	for _, p := range s.Obstacles {
		obstacles = append(obstacles, p.Cell())
	}
	for _, p := range s.Zombies {
		zombies = append(zombies, p.Cell())
	}
	for _, p := range s.Humans {
		humans = append(humans, p.Cell())
	}
	return obstacles, zombies, humans
}

// Build validates s and constructs the Simulation it describes.
// Extra options are applied after the scenario's own, so they may override
// the seed.
func (s *Scenario) Build(extra ...apocalypse.Option) (*apocalypse.Simulation, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	obstacles, zombies, humans := s.Cells()
	opts := []apocalypse.Option{
		apocalypse.WithObstacles(obstacles),
		apocalypse.WithZombies(zombies),
		apocalypse.WithHumans(humans),
		apocalypse.WithSeed(s.Seed),
	}
	return apocalypse.New(s.Height, s.Width, append(opts, extra...)...)
}

// Write encodes s as YAML.
func (s *Scenario) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding scenario: %w", err)
	}
	return enc.Close()
}
