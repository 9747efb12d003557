package transfer

import (
	"slices"

	"github.com/ivlev/volscene/internal/event"
	"github.com/ivlev/volscene/internal/preset"
)

// Default density domain of 8-bit volumes
const (
	DefaultRangeMin float32 = 0
	DefaultRangeMax float32 = 255
)

// Histogram is the density histogram drawn behind the function. It is
// display data only and never influences the nodes.
type Histogram struct {
	Bins []int
	Max  int
}

// Function maps density to opacity and color through a list of nodes kept
// sorted by position.
//
// Nodes live in an arena keyed by NodeID; selection and neighbor lookups go
// through ids, so a removed node can never be reached again. The function is
// driven from the UI goroutine and is not safe for concurrent use.
type Function struct {
	preset.Header

	nodes    map[NodeID]*Node
	order    []NodeID // ascending by position
	subs     map[NodeID]event.Subscription
	nextID   NodeID
	selected NodeID

	rangeMin float32
	rangeMax float32
	span     float32

	histogram Histogram

	SelectionChanged event.Feed[NodeID]
	NodeAdded        event.Feed[NodeID]
	NodeRemoving     event.Feed[NodeID] // before the node is destroyed
	NodeRemoved      event.Feed[NodeID]
	FunctionChanged  event.Feed[struct{}]
}

// New creates an empty function over the 0..255 density domain
func New() *Function {
	return &Function{
		nodes:    make(map[NodeID]*Node),
		subs:     make(map[NodeID]event.Subscription),
		rangeMin: DefaultRangeMin,
		rangeMax: DefaultRangeMax,
		span:     DefaultRangeMax - DefaultRangeMin,
	}
}

func (f *Function) RangeMin() float32 { return f.rangeMin }
func (f *Function) RangeMax() float32 { return f.rangeMax }
func (f *Function) Range() float32 { return f.span }

// SetDomain changes the density domain and re-pins the node ranges.
// Existing nodes keep their positions; build the domain before the nodes.
// Empty or inverted domains are ignored.
func (f *Function) SetDomain(rangeMin, rangeMax float32) {
	if rangeMax <= rangeMin {
		return
	}
	f.rangeMin = rangeMin
	f.rangeMax = rangeMax
	f.span = rangeMax - rangeMin

	f.UpdateNodeRanges()
	f.FunctionChanged.Emit(struct{}{})
}

// Count returns the number of nodes
func (f *Function) Count() int {
	return len(f.order)
}

// Node returns the node with the given id, or nil
func (f *Function) Node(id NodeID) *Node {
	return f.nodes[id]
}

// NodeAt returns the node at index in position order, or nil
func (f *Function) NodeAt(index int) *Node {
	if index < 0 || index >= len(f.order) {
		return nil
	}
	return f.nodes[f.order[index]]
}

// Nodes returns the nodes in position order
func (f *Function) Nodes() []*Node {
	out := make([]*Node, len(f.order))
	for i, id := range f.order {
		out[i] = f.nodes[id]
	}
	return out
}

// IndexOf returns the position-order index of id, or -1
func (f *Function) IndexOf(id NodeID) int {
	if id == 0 {
		return -1
	}
	return slices.Index(f.order, id)
}

// AddNode takes ownership of n, inserts it in position order and returns its id
func (f *Function) AddNode(n *Node) NodeID {
	if n == nil {
		return 0
	}

	f.nextID++
	id := f.nextID
	n.id = id
	f.nodes[id] = n
	f.order = append(f.order, id)

	// Stable, so equal positions keep insertion order
	slices.SortStableFunc(f.order, func(a, b NodeID) int {
		pa, pb := f.nodes[a].position, f.nodes[b].position
		switch {
		case pa < pb:
			return -1
		case pa > pb:
			return 1
		default:
			return 0
		}
	})

	f.UpdateNodeRanges()

	f.NodeAdded.Emit(id)
	f.FunctionChanged.Emit(struct{}{})

	f.subs[id] = n.Changed.Subscribe(func(*Node) { f.onNodeChanged(id) })

	return id
}

// RemoveNode destroys the node with the given id. Unknown ids are ignored.
func (f *Function) RemoveNode(id NodeID) {
	n, ok := f.nodes[id]
	if !ok {
		return
	}

	f.NodeRemoving.Emit(id)

	n.Changed.Unsubscribe(f.subs[id])
	delete(f.subs, id)

	if i := slices.Index(f.order, id); i >= 0 {
		f.order = slices.Delete(f.order, i, i+1)
	}
	delete(f.nodes, id)
	n.id = 0
	if f.selected == id {
		f.selected = 0
	}

	f.UpdateNodeRanges()

	f.NodeRemoved.Emit(id)
	f.FunctionChanged.Emit(struct{}{})
}

// Clear removes every node
func (f *Function) Clear() {
	for len(f.order) > 0 {
		f.RemoveNode(f.order[len(f.order)-1])
	}
}

// UpdateNodeRanges pins the first node to 0 and the last node to the
// domain maximum; every other node may move between its two neighbors.
func (f *Function) UpdateNodeRanges() {
	last := len(f.order) - 1
	for i, id := range f.order {
		n := f.nodes[id]

		switch {
		case i == 0:
			n.SetMinX(0)
			n.SetMaxX(0)
		case i == last:
			n.SetMinX(f.rangeMax)
			n.SetMaxX(f.rangeMax)
		default:
			n.SetMinX(f.nodes[f.order[i-1]].position)
			n.SetMaxX(f.nodes[f.order[i+1]].position)
		}
	}
}

func (f *Function) onNodeChanged(NodeID) {
	f.UpdateNodeRanges()

	f.FunctionChanged.Emit(struct{}{})
}

// Selected returns the selected node id, or 0
func (f *Function) Selected() NodeID {
	return f.selected
}

// SelectedNode returns the selected node, or nil
func (f *Function) SelectedNode() *Node {
	return f.nodes[f.selected]
}

// SetSelectedNode selects id (0 clears) and always emits SelectionChanged
func (f *Function) SetSelectedNode(id NodeID) {
	f.selected = id
	f.SelectionChanged.Emit(id)
}

// SetSelectedNodeIndex selects by position-order index. The index is
// clamped to [0, Count()]; the one-past-the-end index selects no node.
// Nothing happens on an empty function.
func (f *Function) SetSelectedNodeIndex(index int) {
	if len(f.order) == 0 {
		return
	}

	newIndex := clamp(index, 0, len(f.order))

	if newIndex == len(f.order) {
		f.selected = 0
	} else {
		f.selected = f.order[newIndex]
	}

	f.SelectionChanged.Emit(f.selected)
}

func (f *Function) SelectPreviousNode() {
	f.selectRelative(-1)
}

func (f *Function) SelectNextNode() {
	f.selectRelative(1)
}

func (f *Function) selectRelative(step int) {
	if f.selected == 0 {
		return
	}

	index := f.IndexOf(f.selected)
	if index < 0 {
		return
	}

	f.SetSelectedNode(f.order[clamp(index+step, 0, len(f.order)-1)])
}

// NormalizedX returns the node position mapped from the domain to 0..1
func (f *Function) NormalizedX(id NodeID) float32 {
	n := f.nodes[id]
	if n == nil {
		return 0
	}
	return (n.position - f.rangeMin) / f.span
}

// SetNormalizedX moves the node to the domain position of v in 0..1
func (f *Function) SetNormalizedX(id NodeID, v float32) {
	if n := f.nodes[id]; n != nil {
		n.SetPosition(f.rangeMin + f.span*v)
	}
}

// NormalizedY returns the node opacity; opacity is already 0..1
func (f *Function) NormalizedY(id NodeID) float32 {
	n := f.nodes[id]
	if n == nil {
		return 0
	}
	return n.Opacity()
}

func (f *Function) SetNormalizedY(id NodeID, v float32) {
	if n := f.nodes[id]; n != nil {
		n.SetOpacity(v)
	}
}

// Histogram returns a copy of the display histogram
func (f *Function) Histogram() Histogram {
	return Histogram{Bins: slices.Clone(f.histogram.Bins), Max: f.histogram.Max}
}

// SetHistogram replaces the bins. Max only ever grows: it is raised to the
// largest bin but never lowered, so successive histograms share one scale.
func (f *Function) SetHistogram(bins []int) {
	for _, b := range bins {
		if b > f.histogram.Max {
			f.histogram.Max = b
		}
	}
	f.histogram.Bins = slices.Clone(bins)
}

func clamp(v, lo, hi int) int {
	return min(hi, max(lo, v))
}
