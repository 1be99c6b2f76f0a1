package gridfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/coin/multigrid"
	"gopkg.in/yaml.v3"
)

// Definition is the YAML form of a float64 grid.
type Definition struct {
	Extents []int     `yaml:"extents,omitempty"`
	Rank    int       `yaml:"rank,omitempty"`
	Extent  int       `yaml:"extent,omitempty"`
	Values  []float64 `yaml:"values,omitempty"`
	Fill    *Fill     `yaml:"fill,omitempty"`
	Hashed  bool      `yaml:"hashed,omitempty"`
	Lazy    bool      `yaml:"lazy,omitempty"`
}

// Fill describes an arithmetic progression in flat order: Start + i*Step.
type Fill struct {
	Start float64 `yaml:"start"`
	Step  float64 `yaml:"step"`
}

// Load decodes and validates a definition from r.
func Load(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDefinition
		}
		return nil, fmt.Errorf("gridfile: decode: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}

	return &def, nil
}

// Parse is Load over an in-memory document.
func Parse(data []byte) (*Definition, error) {
	return Load(bytes.NewReader(data))
}

// LoadFile reads the definition stored at path.
func LoadFile(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridfile: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Validate checks that exactly one shape form and at most one value source
// are present. Extent values themselves are checked by multigrid on Build.
func (d *Definition) Validate() error {
	explicit := len(d.Extents) > 0
	uniform := d.Rank != 0 || d.Extent != 0
	switch {
	case explicit && uniform:
		return ErrConflictingShape
	case !explicit && !uniform:
		return ErrNoShape
	}
	if len(d.Values) > 0 && d.Fill != nil {
		return ErrConflictingValues
	}

	return nil
}

// Shape resolves the definition to a validated multigrid.Shape.
func (d *Definition) Shape() (multigrid.Shape, error) {
	if err := d.Validate(); err != nil {
		return multigrid.Shape{}, err
	}
	if len(d.Extents) > 0 {
		return multigrid.NewShape(d.Extents...)
	}

	return multigrid.UniformShape(d.Rank, d.Extent)
}

// Options returns the multigrid options selected by the definition.
func (d *Definition) Options() []multigrid.Option {
	var opts []multigrid.Option
	if d.Hashed {
		opts = append(opts, multigrid.WithHashedLookup(nil))
	}
	if d.Lazy {
		opts = append(opts, multigrid.WithLazyCoordinates())
	}

	return opts
}

// Build creates the grid. Literal values must match the shape size
// (multigrid.ErrShapeMismatch otherwise); without values or fill the grid is
// zero-valued.
func (d *Definition) Build() (*multigrid.Grid[float64], error) {
	shape, err := d.Shape()
	if err != nil {
		return nil, err
	}
	if len(d.Values) > 0 {
		return multigrid.NewWithValues(shape.Extents(), d.Values, d.Options()...)
	}
	g, err := multigrid.NewFromShape[float64](shape, d.Options()...)
	if err != nil {
		return nil, err
	}
	if d.Fill != nil {
		start, step := d.Fill.Start, d.Fill.Step
		g.Apply(func(i int, _ float64) float64 { return start + float64(i)*step })
	}

	return g, nil
}
