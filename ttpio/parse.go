// SPDX-License-Identifier: MIT

// Package ttpio reads Travelling Thief Problem instances in the benchmark
// text format:
//
//	PROBLEM NAME:	test-example-n4
//	KNAPSACK DATA TYPE:	uncorrelated
//	DIMENSION:	4
//	NUMBER OF ITEMS:	3
//	CAPACITY OF KNAPSACK:	10
//	MIN SPEED:	0.1
//	MAX SPEED:	1
//	RENTING RATIO:	1.0
//	EDGE_WEIGHT_TYPE:	CEIL_2D
//	NODE_COORD_SECTION	(INDEX, X, Y):
//	1	1	1
//	...
//	ITEMS SECTION	(INDEX, PROFIT, WEIGHT, ASSIGNED NODE NUMBER):
//	1	10	5	2
//	...
//
// Header lines may appear in any order before the sections; unknown header
// keys are ignored. Node and item rows are whitespace separated. A line
// reading EOF ends the input.
//
// CEIL_2D instances get distances rounded up to the next integer, as the
// format defines. Some solver tooling ignores the edge weight type and scores
// with exact Euclidean distances; pass WithExactDistances to reproduce its
// numbers on the same file.
package ttpio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/ttp/matrix"
	"github.com/katalvlaran/ttp/ttp"
)

var (
	// ErrSyntax reports a malformed line; the wrapping error names the line.
	ErrSyntax = errors.New("ttpio: syntax error")

	// ErrMissingField reports a required header key or section that never appeared.
	ErrMissingField = errors.New("ttpio: missing field")
)

// Header keys and section markers.
const (
	keyName         = "PROBLEM NAME"
	keyDataType     = "KNAPSACK DATA TYPE"
	keyDimension    = "DIMENSION"
	keyItems        = "NUMBER OF ITEMS"
	keyCapacity     = "CAPACITY OF KNAPSACK"
	keyMinSpeed     = "MIN SPEED"
	keyMaxSpeed     = "MAX SPEED"
	keyRentingRatio = "RENTING RATIO"
	keyEdgeWeight   = "EDGE_WEIGHT_TYPE"

	sectionNodes = "NODE_COORD_SECTION"
	sectionItems = "ITEMS SECTION"

	// EdgeCeil2D selects distances rounded up to the next integer.
	EdgeCeil2D = "CEIL_2D"
)

// Problem is a parsed instance ready for evaluation.
type Problem struct {
	Instance  *ttp.Instance
	Coords    []matrix.Point // Coords[k] is city k+1
	Distances *matrix.Dense
}

// Evaluator builds a ttp.Evaluator over the parsed instance and distances.
func (p *Problem) Evaluator() (*ttp.Evaluator, error) {
	return ttp.NewEvaluator(p.Instance, p.Distances)
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string, opts ...Option) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ttpio: %w", err)
	}
	defer f.Close()

	p, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse reads one instance from r, validates it and builds its Euclidean
// distance matrix (rounded up when EDGE_WEIGHT_TYPE is CEIL_2D, unless
// WithExactDistances is given).
func Parse(r io.Reader, opts ...Option) (*Problem, error) {
	var (
		ps      = parser{header: make(map[string]string), opts: gatherOptions(opts...)}
		sc      = bufio.NewScanner(r)
		lineNo  int
		section string
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "EOF" {
			break
		}

		switch {
		case strings.HasPrefix(line, sectionNodes):
			if err := ps.begin(); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			section = sectionNodes
			continue
		case strings.HasPrefix(line, sectionItems):
			if err := ps.begin(); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			section = sectionItems
			continue
		}

		var err error
		switch section {
		case sectionNodes:
			err = ps.node(line)
		case sectionItems:
			err = ps.item(line)
		default:
			err = ps.headerLine(line)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ttpio: %w", err)
	}

	return ps.finish()
}

// parser accumulates state across lines.
type parser struct {
	header   map[string]string
	opts     Options
	started  bool
	inst     ttp.Instance
	numItems int
	coords   []matrix.Point
	seen     []bool
	nodes    int
}

func (ps *parser) headerLine(line string) error {
	key, val, ok := strings.Cut(line, ":")
	if !ok {
		return fmt.Errorf("header %q has no ':': %w", line, ErrSyntax)
	}
	ps.header[strings.TrimSpace(key)] = strings.TrimSpace(val)
	return nil
}

// begin converts the header into instance parameters the first time a
// section starts.
func (ps *parser) begin() error {
	if ps.started {
		return nil
	}
	ps.started = true

	var err error
	if ps.inst.Dimension, err = ps.intField(keyDimension); err != nil {
		return err
	}
	if ps.numItems, err = ps.intField(keyItems); err != nil {
		return err
	}
	if ps.inst.Capacity, err = ps.floatField(keyCapacity); err != nil {
		return err
	}
	if ps.inst.MinSpeed, err = ps.floatField(keyMinSpeed); err != nil {
		return err
	}
	if ps.inst.MaxSpeed, err = ps.floatField(keyMaxSpeed); err != nil {
		return err
	}
	if ps.inst.RentingRatio, err = ps.floatField(keyRentingRatio); err != nil {
		return err
	}
	ps.inst.Name = ps.header[keyName]
	ps.inst.KnapsackDataType = ps.header[keyDataType]
	ps.inst.EdgeWeightType = ps.header[keyEdgeWeight]

	if ps.inst.Dimension <= 0 {
		return fmt.Errorf("%s must be > 0 (got %d): %w", keyDimension, ps.inst.Dimension, ErrSyntax)
	}
	if ps.numItems < 0 {
		return fmt.Errorf("%s must be >= 0 (got %d): %w", keyItems, ps.numItems, ErrSyntax)
	}
	ps.coords = make([]matrix.Point, ps.inst.Dimension)
	ps.seen = make([]bool, ps.inst.Dimension)
	ps.inst.Items = make([]ttp.Item, 0, ps.numItems)
	return nil
}

func (ps *parser) intField(key string) (int, error) {
	s, ok := ps.header[key]
	if !ok {
		return 0, fmt.Errorf("%q: %w", key, ErrMissingField)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q=%q: %w", key, s, ErrSyntax)
	}
	return v, nil
}

func (ps *parser) floatField(key string) (float64, error) {
	s, ok := ps.header[key]
	if !ok {
		return 0, fmt.Errorf("%q: %w", key, ErrMissingField)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q=%q: %w", key, s, ErrSyntax)
	}
	return v, nil
}

// node parses "INDEX X Y".
func (ps *parser) node(line string) error {
	f := strings.Fields(line)
	if len(f) != 3 {
		return fmt.Errorf("node row %q: want 3 fields, got %d: %w", line, len(f), ErrSyntax)
	}
	idx, err := strconv.Atoi(f[0])
	if err != nil {
		return fmt.Errorf("node index %q: %w", f[0], ErrSyntax)
	}
	if idx < 1 || idx > ps.inst.Dimension {
		return fmt.Errorf("node index %d outside [1,%d]: %w", idx, ps.inst.Dimension, ErrSyntax)
	}
	if ps.seen[idx-1] {
		return fmt.Errorf("node %d listed twice: %w", idx, ErrSyntax)
	}
	x, errX := strconv.ParseFloat(f[1], 64)
	y, errY := strconv.ParseFloat(f[2], 64)
	if errX != nil || errY != nil {
		return fmt.Errorf("node %d coordinates %q %q: %w", idx, f[1], f[2], ErrSyntax)
	}
	ps.coords[idx-1] = matrix.Point{x, y}
	ps.seen[idx-1] = true
	ps.nodes++
	return nil
}

// item parses "INDEX PROFIT WEIGHT ASSIGNED_NODE".
func (ps *parser) item(line string) error {
	f := strings.Fields(line)
	if len(f) != 4 {
		return fmt.Errorf("item row %q: want 4 fields, got %d: %w", line, len(f), ErrSyntax)
	}
	idx, err := strconv.Atoi(f[0])
	if err != nil {
		return fmt.Errorf("item index %q: %w", f[0], ErrSyntax)
	}
	profit, errP := strconv.ParseFloat(f[1], 64)
	weight, errW := strconv.ParseFloat(f[2], 64)
	city, errC := strconv.Atoi(f[3])
	if errP != nil || errW != nil || errC != nil {
		return fmt.Errorf("item %d fields %q: %w", idx, f[1:], ErrSyntax)
	}
	ps.inst.Items = append(ps.inst.Items, ttp.Item{Index: idx, Profit: profit, Weight: weight, City: city})
	return nil
}

func (ps *parser) finish() (*Problem, error) {
	if !ps.started {
		return nil, fmt.Errorf("%q: %w", sectionNodes, ErrMissingField)
	}
	if ps.nodes != ps.inst.Dimension {
		return nil, fmt.Errorf("%d node rows, want %d: %w", ps.nodes, ps.inst.Dimension, ErrSyntax)
	}
	if len(ps.inst.Items) != ps.numItems {
		return nil, fmt.Errorf("%d item rows, want %d: %w", len(ps.inst.Items), ps.numItems, ErrSyntax)
	}

	inst := ps.inst
	if err := inst.Validate(); err != nil {
		return nil, fmt.Errorf("ttpio: %w", err)
	}

	var opts []matrix.Option
	if strings.EqualFold(inst.EdgeWeightType, EdgeCeil2D) && !ps.opts.exact {
		opts = append(opts, matrix.WithCeil())
	}
	dist, err := matrix.NewEuclidean(ps.coords, opts...)
	if err != nil {
		return nil, fmt.Errorf("ttpio: %w", err)
	}

	return &Problem{Instance: &inst, Coords: ps.coords, Distances: dist}, nil
}
