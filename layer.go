package viewport

// layer is an ordered bucket of Drawables sharing one z position.
// Insertion order is paint order within the layer. Layers are owned
// exclusively by the engine's registry; they are created on the first
// add and removed when a remove empties them.
type layer struct {
	id    int
	items []Drawable
}

// render draws the layer's visible items in insertion order, skipping
// items whose bounds lie outside the view rectangle.
//
// antialiased is the surface's current antialiasing state. When the
// config enables antialiasing globally, the state is toggled only at
// item opt-out boundaries rather than per item, and the state after the
// last item is returned so the next layer continues from it instead of
// resetting.
func (l *layer) render(s Surface, cfg Config, view Rect, antialiased bool) bool {
	base := cfg.Base()
	for _, item := range l.items {
		if !item.Visible() {
			continue
		}
		// Unknown bounds count as always within the viewport.
		if b, ok := item.(Bounded); ok {
			if r, known := b.Bounds(); known && !view.Intersects(r) {
				continue
			}
		}
		if base.Antialias {
			allowed := true
			if a, ok := item.(AntialiasOptOut); ok {
				allowed = a.AllowAntialias()
			}
			if allowed != antialiased {
				antialiased = allowed
				s.SetAntialias(antialiased)
			}
		}
		item.Render(s, cfg)
	}
	return antialiased
}

// remove deletes the first occurrence of d and reports whether it was
// present.
func (l *layer) remove(d Drawable) bool {
	for i, item := range l.items {
		if item == d {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// searchLayers locates id in the ascending-sorted slice. It returns the
// index when found, or -(insertionPoint+1) when absent. Layer counts are
// small enough that linear search beats the bookkeeping of anything
// smarter.
func searchLayers(layers []*layer, id int) int {
	i := 0
	for ; i < len(layers); i++ {
		if layers[i].id == id {
			return i
		}
		if id < layers[i].id {
			break
		}
	}
	return -(i + 1)
}
