package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/coin/gridfile"
	"github.com/katalvlaran/coin/internal/logging"
	"github.com/katalvlaran/coin/multigrid"
	"github.com/spf13/cobra"
)

// errShapeFlags is returned when --file is combined with inline shape flags.
var errShapeFlags = errors.New("--file cannot be combined with --extents, --rank, --extent or --fill-*")

// cliOptions holds every flag value of one command tree.
type cliOptions struct {
	logLevel string
	logJSON  bool

	file      string
	extents   []int
	rank      int
	extent    int
	fillStart float64
	fillStep  float64
	hashed    bool
	lazy      bool

	logger *slog.Logger
}

// newRootCmd wires the command tree. Each call returns independent flag state.
func newRootCmd() *cobra.Command {
	o := &cliOptions{}

	root := &cobra.Command{
		Use:           "multigrid",
		Short:         "Inspect dense multi-dimensional grids",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := logging.ParseLevel(o.logLevel)
			if err != nil {
				return err
			}
			o.logger = logging.New(logging.Config{
				Level:   lvl,
				JSON:    o.logJSON,
				Writer:  cmd.ErrOrStderr(),
				Service: "multigrid",
			})
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.BoolVar(&o.logJSON, "log-json", false, "emit logs as JSON")
	pf.StringVarP(&o.file, "file", "f", "", "YAML grid definition")
	pf.IntSliceVar(&o.extents, "extents", nil, "per-axis extents, e.g. 2,2,3,5")
	pf.IntVar(&o.rank, "rank", 0, "rank of a uniform grid (with --extent)")
	pf.IntVar(&o.extent, "extent", 0, "extent of every axis of a uniform grid (with --rank)")
	pf.Float64Var(&o.fillStart, "fill-start", 0, "value of index 0 for an arithmetic fill")
	pf.Float64Var(&o.fillStep, "fill-step", 0, "increment per flat index for an arithmetic fill")
	pf.BoolVar(&o.hashed, "hashed", false, "resolve coordinates through the hashed reverse table")
	pf.BoolVar(&o.lazy, "lazy", false, "decode coordinates on demand instead of precomputing them")

	root.AddCommand(
		&cobra.Command{
			Use:   "describe",
			Short: "Print values and the index/coordinate mapping",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				g, err := o.grid(cmd)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), g.Describe())
				return err
			},
		},
		&cobra.Command{
			Use:   "coord <index>",
			Short: "Print the coordinate of a flat index",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				g, err := o.grid(cmd)
				if err != nil {
					return err
				}
				idx, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("index %q: %w", args[0], err)
				}
				c, err := g.CoordinateOf(idx)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), c)
				return err
			},
		},
		&cobra.Command{
			Use:   "index <coord>",
			Short: "Print the flat index of a coordinate such as 1,0,2,3",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				g, err := o.grid(cmd)
				if err != nil {
					return err
				}
				c, err := parseCoord(args[0])
				if err != nil {
					return err
				}
				idx, err := g.IndexOf(c)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), idx)
				return err
			},
		},
		&cobra.Command{
			Use:   "get <index|coord>",
			Short: "Print the value at a flat index (43) or a coordinate (1,0,2,3)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				g, err := o.grid(cmd)
				if err != nil {
					return err
				}
				c, err := parseCoord(args[0])
				if err != nil {
					return err
				}
				var v float64
				if len(c) == 1 && g.Rank() > 1 {
					v, err = g.At(c[0])
				} else {
					v, err = g.AtCoord(c)
				}
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'g', -1, 64))
				return err
			},
		},
	)

	return root
}

// definition assembles a grid definition from --file or the inline flags.
func (o *cliOptions) definition(cmd *cobra.Command) (*gridfile.Definition, error) {
	flags := cmd.Flags()
	inline := flags.Changed("extents") || flags.Changed("rank") || flags.Changed("extent") ||
		flags.Changed("fill-start") || flags.Changed("fill-step")

	var def *gridfile.Definition
	if o.file != "" {
		if inline {
			return nil, errShapeFlags
		}
		d, err := gridfile.LoadFile(o.file)
		if err != nil {
			return nil, err
		}
		def = d
	} else {
		def = &gridfile.Definition{Extents: o.extents, Rank: o.rank, Extent: o.extent}
		if flags.Changed("fill-start") || flags.Changed("fill-step") {
			def.Fill = &gridfile.Fill{Start: o.fillStart, Step: o.fillStep}
		}
		if err := def.Validate(); err != nil {
			return nil, err
		}
	}
	def.Hashed = def.Hashed || o.hashed
	def.Lazy = def.Lazy || o.lazy

	return def, nil
}

// grid builds the grid for the current invocation and logs its shape.
func (o *cliOptions) grid(cmd *cobra.Command) (*multigrid.Grid[float64], error) {
	def, err := o.definition(cmd)
	if err != nil {
		return nil, err
	}
	g, err := def.Build()
	if err != nil {
		return nil, err
	}
	o.logger.Debug("grid built",
		"shape", g.Shape().String(),
		"size", g.Size(),
		"hashed", g.Hashed(),
		"source", sourceName(o.file))

	return g, nil
}

func sourceName(file string) string {
	if file == "" {
		return "flags"
	}
	return file
}

// parseCoord accepts "1,0,2,3", "1;0;2;3" or "{1;0;2;3}".
func parseCoord(s string) (multigrid.Coord, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' || r == ' ' })
	if len(parts) == 0 {
		return nil, fmt.Errorf("coordinate %q: no values", s)
	}
	c := make(multigrid.Coord, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("coordinate %q: %w", s, err)
		}
		c[i] = v
	}

	return c, nil
}
