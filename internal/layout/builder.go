// Package layout turns a results matrix into a fully resolved
// critical-difference diagram description: axis ticks, per-algorithm stems
// and labels, and clique brackets, all in normalized coordinates. It does
// no rendering; a renderer consumes the DiagramLayout it produces.
package layout

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/ranklab/critdiff/internal/stats"
	"github.com/ranklab/critdiff/internal/utils/logger"
)

const labelPad = 0.01

// Builder computes diagram layouts for a fixed significance level, tie
// tolerance, and frame geometry. It holds no per-invocation state, so a
// single Builder is safe to use from concurrent goroutines.
type Builder struct {
	alpha        float64
	tieTolerance float64
	frame        Frame
}

type Option func(*Builder)

func WithAlpha(alpha float64) Option {
	return func(b *Builder) {
		b.alpha = alpha
	}
}

// WithTieTolerance sets the tolerance used to detect tied scores within a
// dataset column. The default is 0, exact equality.
func WithTieTolerance(tol float64) Option {
	return func(b *Builder) {
		b.tieTolerance = tol
	}
}

func WithFrame(f Frame) Option {
	return func(b *Builder) {
		b.frame = f
	}
}

func New(opts ...Option) *Builder {
	b := &Builder{
		alpha: 0.05,
		frame: DefaultFrame(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// BuildMatrix validates a raw 2-D slice and builds its layout. The slice
// must be non-empty and rectangular.
func (b *Builder) BuildMatrix(results [][]float64, names []string) (*DiagramLayout, error) {
	data, err := stats.MatrixFromRows(results)
	if err != nil {
		return nil, err
	}
	return b.Build(data, names)
}

// Build computes the diagram layout for a results matrix whose rows are
// algorithms and whose columns are datasets. If names is nil, placeholder
// names m_1..m_k are synthesized in row order; otherwise its length must
// match the row count. All validation happens before any numeric work.
func (b *Builder) Build(results *mat.Dense, names []string) (*DiagramLayout, error) {
	if results == nil {
		return nil, fmt.Errorf("%w: results matrix is nil", stats.ErrInvalidArgument)
	}
	numAlg, numDatasets := results.Dims()

	if names == nil {
		names = make([]string, numAlg)
		for i := range names {
			names[i] = fmt.Sprintf("m_%d", i+1)
		}
	} else if len(names) != numAlg {
		return nil, fmt.Errorf("%w: got %d algorithm names for %d algorithms", stats.ErrInvalidArgument, len(names), numAlg)
	}

	logger.Sugar().Debugw("building critical-difference layout",
		"alpha", b.alpha, "tieTolerance", b.tieTolerance, "algorithms", numAlg, "datasets", numDatasets)

	cd, err := stats.CriticalDifference(b.alpha, numAlg, numDatasets)
	if err != nil {
		return nil, err
	}

	ranks, err := stats.RanksWithTolerance(results, b.tieTolerance)
	if err != nil {
		return nil, err
	}
	avgRanks := stats.AverageRanks(ranks)

	// Sort algorithms by average rank, carrying names along.
	order := make([]int, numAlg)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, c int) bool {
		return avgRanks[order[a]] < avgRanks[order[c]]
	})
	sortedAvg := make([]float64, numAlg)
	sortedNames := make([]string, numAlg)
	for i, idx := range order {
		sortedAvg[i] = avgRanks[idx]
		sortedNames[i] = names[idx]
	}

	// Visible rank range sets the axis scale.
	lowest := int(math.Floor(floats.Min(sortedAvg)))
	highest := int(math.Ceil(floats.Max(sortedAvg)))
	if highest == lowest {
		return nil, fmt.Errorf("%w: all average ranks equal %v, nothing to plot", stats.ErrDegenerateRange, sortedAvg[0])
	}

	f := b.frame
	axisLen := f.Right - f.Left
	xAt := func(rank float64) float64 {
		return f.Left + axisLen*(rank-float64(lowest))/float64(highest-lowest)
	}

	axis := Axis{
		Y:           f.AxisY,
		XMin:        f.Left,
		XMax:        f.Right,
		LowestRank:  lowest,
		HighestRank: highest,
	}
	for xi := 0; xi <= highest-lowest; xi++ {
		axis.Ticks = append(axis.Ticks, Tick{
			X:     xAt(float64(lowest + xi)),
			Label: fmt.Sprintf("%d", lowest+xi),
			Major: true,
		})
		if xi < highest-lowest {
			axis.Ticks = append(axis.Ticks, Tick{X: xAt(float64(lowest+xi) + 0.5)})
		}
	}

	cdRule := CDRule{
		Y:      f.AxisY + f.CDRuleOffset,
		XMin:   f.Left,
		XMax:   xAt(float64(lowest) + cd),
		Label:  fmt.Sprintf("CD=%.3f", cd),
		LabelX: f.Left + 0.5*(axisLen*cd)/float64(highest-lowest),
	}

	// Split the sorted algorithms into two label columns; the left column
	// takes the ceiling half when the count is odd.
	split := (numAlg + 1) / 2
	stems := make([]AlgorithmStem, 0, numAlg)

	leftSpacing := 0.5 * (f.AxisY - f.Bottom) / float64(split+1)
	for i := 0; i < split; i++ {
		stems = append(stems, AlgorithmStem{
			Name:        sortedNames[i],
			AverageRank: sortedAvg[i],
			X:           xAt(sortedAvg[i]),
			Y:           f.Bottom + float64(split-1-i)*leftSpacing,
			LabelX:      f.Left - labelPad,
			Side:        SideLeft,
		})
	}
	rightSpacing := 0.5 * (f.AxisY - f.Bottom) / float64(numAlg-split+1)
	for i := split; i < numAlg; i++ {
		stems = append(stems, AlgorithmStem{
			Name:        sortedNames[i],
			AverageRank: sortedAvg[i],
			X:           xAt(sortedAvg[i]),
			Y:           f.Bottom + float64(i-split)*rightSpacing,
			LabelX:      f.Right + labelPad,
			Side:        SideRight,
		})
	}

	cliques := stats.GroupCliques(sortedAvg, cd)
	brackets := buildBrackets(cliques, f, xAt)

	return &DiagramLayout{
		Frame:              f,
		Axis:               axis,
		CDRule:             cdRule,
		CriticalDifference: cd,
		AverageRanks:       sortedAvg,
		Algorithms:         stems,
		Cliques:            cliques,
		Brackets:           brackets,
	}, nil
}

// buildBrackets places clique bars below the axis, split into a left and a
// right group. Each group's bars step monotonically further from the axis
// so overlapping brackets never collide; spacing denominators use the
// group size plus one, so an empty group never divides by zero.
func buildBrackets(cliques []stats.Clique, f Frame, xAt func(float64) float64) []CliqueBracket {
	if len(cliques) == 0 {
		return nil
	}

	split := (len(cliques) + 1) / 2
	brackets := make([]CliqueBracket, 0, len(cliques))

	place := func(group []stats.Clique, side Side) {
		spacing := 0.5 * (f.AxisY - f.Bottom) / float64(len(group)+1)
		for i, c := range group {
			brackets = append(brackets, CliqueBracket{
				XMin: xAt(c.Low - f.BracketOverhang),
				XMax: xAt(c.High + f.BracketOverhang),
				Y:    f.AxisY - float64(i+1)*spacing,
				Side: side,
			})
		}
	}
	place(cliques[:split], SideLeft)
	place(cliques[split:], SideRight)

	return brackets
}
