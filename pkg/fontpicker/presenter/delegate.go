package presenter

// Delegate receives picker notifications. Both callbacks are optional.
// The delegate does not own the widget.
type Delegate struct {
	// OnSelect is called when a row becomes selected. Deselecting a row
	// does not call it.
	OnSelect func(font string)
	// OnDismiss is called once, after the picker has fully left the screen,
	// with the font selected at the moment dismissal began. ok is false when
	// nothing was selected.
	OnDismiss func(font string, ok bool)
}

func (d Delegate) selected(font string) {
	if d.OnSelect != nil {
		d.OnSelect(font)
	}
}

func (d Delegate) dismissed(font string, ok bool) {
	if d.OnDismiss != nil {
		d.OnDismiss(font, ok)
	}
}
