package lighting

import (
	"github.com/ivlev/volscene/internal/activity"
	"github.com/ivlev/volscene/internal/event"
	"github.com/ivlev/volscene/internal/light"
	"github.com/ivlev/volscene/internal/preset"
)

const logIcon = "light-bulb"

// Rig is the lighting preset edited in the lighting panel: an ordered list
// of lights, one background and the currently selected light.
//
// Changes of any light or of the background are forwarded as a single
// Changed event. The rig is not safe for concurrent use; it is driven from
// the UI goroutine.
type Rig struct {
	preset.Header

	lights     []*light.Light
	subs       []event.Subscription // parallel to lights
	selected   *light.Light
	background *light.Background
	logger     activity.Logger

	Changed          event.Feed[struct{}]
	SelectionChanged event.Feed[*light.Light]
}

// NewRig creates an empty rig logging through logger (nil discards)
func NewRig(logger activity.Logger) *Rig {
	if logger == nil {
		logger = activity.Discard{}
	}
	r := &Rig{
		background: light.NewBackground(),
		logger:     logger,
	}
	r.background.Changed.Subscribe(r.onBackgroundChanged)
	return r
}

// Lights returns the lights in display order. The slice is a copy; the
// lights are the rig's own.
func (r *Rig) Lights() []*light.Light {
	out := make([]*light.Light, len(r.lights))
	copy(out, r.lights)
	return out
}

// Count returns the number of lights
func (r *Rig) Count() int {
	return len(r.lights)
}

// Light returns the light at index or nil when out of range
func (r *Rig) Light(index int) *light.Light {
	if index < 0 || index >= len(r.lights) {
		return nil
	}
	return r.lights[index]
}

// IndexOf returns the index of the light held at l, or -1
func (r *Rig) IndexOf(l *light.Light) int {
	if l == nil {
		return -1
	}
	for i, m := range r.lights {
		if m == l {
			return i
		}
	}
	return -1
}

func (r *Rig) Background() *light.Background {
	return r.background
}

// AddLight appends a copy of l, selects the copy and returns it
func (r *Rig) AddLight(l *light.Light) *light.Light {
	if l == nil {
		return nil
	}
	added := r.append(l.Clone())

	r.SetSelectedLight(added)
	r.logger.Log("'"+added.Name()+"' added to the scene", logIcon)

	r.Changed.Emit(struct{}{})
	return added
}

// RemoveLight erases the first light whose data equals l. The selection is
// always cleared, whether or not it pointed at the removed light.
func (r *Rig) RemoveLight(l *light.Light) {
	if l == nil {
		return
	}

	r.logger.Log("'"+l.Name()+"' removed from the scene", logIcon)

	for i, m := range r.lights {
		if m == l || m.Equal(l) {
			r.erase(i)
			break
		}
	}

	r.SetSelectedLight(nil)

	r.Changed.Emit(struct{}{})
}

// RemoveLightAt removes the light at index; out of range is a no-op
func (r *Rig) RemoveLightAt(index int) {
	if index < 0 || index >= len(r.lights) {
		return
	}
	r.RemoveLight(r.lights[index])
}

// CopyLight adds a duplicate of l named "Copy of <name>"
func (r *Rig) CopyLight(l *light.Light) {
	if l == nil {
		return
	}

	dup := l.Clone()
	dup.SetName("Copy of " + l.Name())

	r.AddLight(dup)

	r.Changed.Emit(struct{}{})
}

func (r *Rig) CopySelectedLight() {
	r.CopyLight(r.selected)
}

// RenameLight renames the light at index. Empty names and bad indices are ignored.
func (r *Rig) RenameLight(index int, name string) {
	if index < 0 || index >= len(r.lights) || name == "" {
		return
	}

	r.logger.Log("'"+r.lights[index].Name()+"' renamed to '"+name+"'", logIcon)

	r.lights[index].SetName(name)

	r.Changed.Emit(struct{}{})
}

func (r *Rig) SelectedLight() *light.Light {
	return r.selected
}

// SetSelectedLight selects l (nil clears) and always emits SelectionChanged
func (r *Rig) SetSelectedLight(l *light.Light) {
	r.selected = l
	r.SelectionChanged.Emit(l)
}

// SetSelectedLightIndex selects by index, clamped to the list bounds.
// Selecting the light that is already selected does nothing.
func (r *Rig) SetSelectedLightIndex(index int) {
	if len(r.lights) == 0 {
		r.SetSelectedLight(nil)
		return
	}

	newIndex := clamp(index, 0, len(r.lights)-1)

	if r.selected != nil && r.IndexOf(r.selected) == newIndex {
		return
	}

	r.SetSelectedLight(r.lights[newIndex])
}

func (r *Rig) SelectPreviousLight() {
	r.selectRelative(-1)
}

func (r *Rig) SelectNextLight() {
	r.selectRelative(1)
}

func (r *Rig) selectRelative(step int) {
	if r.selected == nil {
		return
	}

	index := r.IndexOf(r.selected)
	if index < 0 {
		return
	}

	r.SetSelectedLight(r.lights[clamp(index+step, 0, len(r.lights)-1)])
}

// Assign replaces the whole state of r with a copy of other's and emits one
// Changed. The selection of r is cleared first. A nil rig is ignored.
func (r *Rig) Assign(other *Rig) {
	if other == nil {
		return
	}

	r.SetSelectedLight(nil)

	r.Changed.Block(true)

	r.Header = other.Header
	src := other.lights

	for i, l := range r.lights {
		l.PropertiesChanged.Unsubscribe(r.subs[i])
	}
	r.lights = make([]*light.Light, 0, len(src))
	r.subs = nil
	for _, l := range src {
		r.lights = append(r.lights, l.Clone())
	}

	r.Changed.Block(false)

	r.background.Changed.Block(true)
	r.background.CopyFrom(other.background)
	r.background.Changed.Block(false)

	r.Changed.Emit(struct{}{})

	for _, l := range r.lights {
		r.subs = append(r.subs, l.PropertiesChanged.Subscribe(r.onLightPropertiesChanged))
	}
}

// Clone returns an independent copy of the rig with no subscribers
func (r *Rig) Clone() *Rig {
	c := NewRig(r.logger)
	c.Assign(r)
	return c
}

func (r *Rig) onLightPropertiesChanged(*light.Light) {
	r.Changed.Emit(struct{}{})
}

func (r *Rig) onBackgroundChanged(*light.Background) {
	r.Changed.Emit(struct{}{})
}

// append stores l and subscribes to it without emitting anything
func (r *Rig) append(l *light.Light) *light.Light {
	r.lights = append(r.lights, l)
	r.subs = append(r.subs, l.PropertiesChanged.Subscribe(r.onLightPropertiesChanged))
	return l
}

func (r *Rig) erase(index int) {
	r.lights[index].PropertiesChanged.Unsubscribe(r.subs[index])
	r.lights = append(r.lights[:index], r.lights[index+1:]...)
	r.subs = append(r.subs[:index], r.subs[index+1:]...)
}

func clamp(v, lo, hi int) int {
	return min(hi, max(lo, v))
}
