// Package gridfile reads grid definitions from YAML.
//
// A definition names a shape, either explicitly or as a uniform rank and
// extent, and optionally the initial values:
//
//	# explicit extents, arithmetic fill value(i) = start + i*step
//	extents: [2, 2, 3, 5]
//	fill: {start: 0.5, step: 0.5}
//
//	# uniform shape with literal values in flat (row-major) order
//	rank: 2
//	extent: 2
//	values: [1, 2, 3, 4]
//	hashed: true
//
// Unknown keys are rejected so that typos surface as errors.
package gridfile
