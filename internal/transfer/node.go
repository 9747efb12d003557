package transfer

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/ivlev/volscene/internal/event"
)

// NodeID identifies a node inside its Function. Zero means "no node".
type NodeID uint64

// Node is one control point of a transfer function: a density position
// mapped to an opacity and a color.
//
// The allowed range [MinX,MaxX]x[MinY,MaxY] is assigned by the owning
// Function whenever nodes are added, removed or moved.
type Node struct {
	id NodeID

	position float32
	opacity  float32
	color    color.RGBA

	deletable  bool
	allowMoveH bool
	allowMoveV bool

	minX, maxX float32
	minY, maxY float32

	Changed         event.Feed[*Node] // position or opacity
	PositionChanged event.Feed[*Node]
	OpacityChanged  event.Feed[*Node]
	ColorChanged    event.Feed[*Node]
	RangeChanged    event.Feed[*Node]
}

// NewNode creates a detached node. Non-deletable nodes cannot be moved horizontally.
func NewNode(position, opacity float32, c color.RGBA, deletable bool) *Node {
	return &Node{
		position:   position,
		opacity:    opacity,
		color:      c,
		deletable:  deletable,
		allowMoveH: deletable,
		allowMoveV: true,
		minX:       0,
		maxX:       255,
		minY:       0,
		maxY:       1,
	}
}

// ID returns the identifier assigned by the owning function, or 0
func (n *Node) ID() NodeID { return n.id }

func (n *Node) Position() float32 { return n.position }
func (n *Node) Opacity() float32 { return n.opacity }
func (n *Node) Color() color.RGBA { return n.color }
func (n *Node) Deletable() bool { return n.deletable }
func (n *Node) AllowMoveH() bool { return n.allowMoveH }
func (n *Node) AllowMoveV() bool { return n.allowMoveV }

func (n *Node) MinX() float32 { return n.minX }
func (n *Node) MaxX() float32 { return n.maxX }
func (n *Node) MinY() float32 { return n.minY }
func (n *Node) MaxY() float32 { return n.maxY }

// X and Y are the editor canvas aliases of position and opacity
func (n *Node) X() float32 { return n.Position() }
func (n *Node) SetX(x float32) { n.SetPosition(x) }
func (n *Node) Y() float32 { return n.Opacity() }
func (n *Node) SetY(y float32) { n.SetOpacity(y) }

// SetPosition stores position clamped to [MinX,MaxX]
func (n *Node) SetPosition(position float32) {
	n.position = math32.Min(n.maxX, math32.Max(position, n.minX))

	n.Changed.Emit(n)
	n.PositionChanged.Emit(n)
}

// SetOpacity stores opacity as given, even outside [MinY,MaxY].
// Out-of-range opacities are kept so that presets round-trip unchanged.
func (n *Node) SetOpacity(opacity float32) {
	n.opacity = opacity

	n.Changed.Emit(n)
	n.OpacityChanged.Emit(n)
}

// SetColor emits ColorChanged only; it is not a Changed edit
func (n *Node) SetColor(c color.RGBA) {
	n.color = c

	n.ColorChanged.Emit(n)
}

func (n *Node) SetAllowMoveH(allow bool) { n.allowMoveH = allow }
func (n *Node) SetAllowMoveV(allow bool) { n.allowMoveV = allow }

func (n *Node) SetMinX(v float32) {
	n.minX = v
	n.RangeChanged.Emit(n)
}

func (n *Node) SetMaxX(v float32) {
	n.maxX = v
	n.RangeChanged.Emit(n)
}

func (n *Node) SetMinY(v float32) {
	n.minY = v
	n.RangeChanged.Emit(n)
}

func (n *Node) SetMaxY(v float32) {
	n.maxY = v
	n.RangeChanged.Emit(n)
}

// InRange reports whether (x, y) lies inside the node's allowed range
func (n *Node) InRange(x, y float32) bool {
	return x >= n.minX && x <= n.maxX && y >= n.minY && y <= n.maxY
}

// RestrictToRange clamps (x, y) to the node's allowed range
func (n *Node) RestrictToRange(x, y float32) (float32, float32) {
	return math32.Min(n.maxX, math32.Max(x, n.minX)),
		math32.Min(n.maxY, math32.Max(y, n.minY))
}
