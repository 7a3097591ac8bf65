package layout

import "github.com/ranklab/critdiff/internal/stats"

// Side marks which half of the diagram a label or bracket belongs to.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Frame is the normalized geometry of the diagram inside a [0,1]x[0,1]
// canvas. All coordinates in a DiagramLayout are expressed in this frame.
type Frame struct {
	AxisY           float64 `json:"axis_y"`           // y of the main horizontal rank axis
	Bottom          float64 `json:"bottom"`           // y of the lowest label row
	Left            float64 `json:"left"`             // x of the left axis end
	Right           float64 `json:"right"`            // x of the right axis end
	CDRuleOffset    float64 `json:"cd_rule_offset"`   // y offset of the CD rule above the axis
	BracketOverhang float64 `json:"bracket_overhang"` // clique bracket extension, in rank units
}

// DefaultFrame returns the frame of the conventional critical-difference
// diagram.
func DefaultFrame() Frame {
	return Frame{
		AxisY:           0.65,
		Bottom:          0.1,
		Left:            0.15,
		Right:           0.85,
		CDRuleOffset:    0.2,
		BracketOverhang: 0.025,
	}
}

// Tick is one axis tick. Major ticks sit on integer ranks and carry a
// label; minor ticks sit on half-integer ranks.
type Tick struct {
	X     float64 `json:"x"`
	Label string  `json:"label,omitempty"`
	Major bool    `json:"major"`
}

// Axis is the main horizontal rank axis with its tick marks.
type Axis struct {
	Y           float64 `json:"y"`
	XMin        float64 `json:"x_min"`
	XMax        float64 `json:"x_max"`
	LowestRank  int     `json:"lowest_rank"`
	HighestRank int     `json:"highest_rank"`
	Ticks       []Tick  `json:"ticks"`
}

// CDRule is the reference bar showing the length of one critical
// difference on the rank axis.
type CDRule struct {
	Y      float64 `json:"y"`
	XMin   float64 `json:"x_min"`
	XMax   float64 `json:"x_max"`
	Label  string  `json:"label"`
	LabelX float64 `json:"label_x"`
}

// AlgorithmStem positions one algorithm: a vertical stem from the axis at
// the algorithm's average rank down to its label row, and the label anchor
// at the diagram margin.
type AlgorithmStem struct {
	Name        string  `json:"name"`
	AverageRank float64 `json:"average_rank"`
	X           float64 `json:"x"`       // stem x, the rank position
	Y           float64 `json:"y"`       // label row y; the stem spans [Y, axis]
	LabelX      float64 `json:"label_x"` // label anchor x at the margin
	Side        Side    `json:"side"`
}

// CliqueBracket is a horizontal bar below the axis spanning the algorithms
// of one clique.
type CliqueBracket struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	Y    float64 `json:"y"`
	Side Side    `json:"side"`
}

// DiagramLayout is a fully resolved, renderer-independent description of a
// critical-difference diagram. The critical difference and the sorted
// average ranks are exposed standalone so callers can produce text reports
// without rendering anything.
type DiagramLayout struct {
	Frame              Frame           `json:"frame"`
	Axis               Axis            `json:"axis"`
	CDRule             CDRule          `json:"cd_rule"`
	CriticalDifference float64         `json:"critical_difference"`
	AverageRanks       []float64       `json:"average_ranks"` // sorted ascending
	Algorithms         []AlgorithmStem `json:"algorithms"`    // sorted by average rank
	Cliques            []stats.Clique  `json:"cliques"`
	Brackets           []CliqueBracket `json:"brackets"`
}
