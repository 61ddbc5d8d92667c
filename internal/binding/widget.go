package binding

// BasicWidget is a map-backed Widget for components that have no widget
// type of their own, and for tests.
type BasicWidget struct {
	inputs  map[FocusScope]InputMap
	actions ActionMap
}

// NewBasicWidget returns a widget with empty input and action tables.
func NewBasicWidget() *BasicWidget {
	return &BasicWidget{
		inputs:  make(map[FocusScope]InputMap),
		actions: make(ActionMap),
	}
}

// InputMap returns the widget's input map for the scope, creating it on
// first use.
func (w *BasicWidget) InputMap(scope FocusScope) InputMap {
	im, ok := w.inputs[scope]
	if !ok {
		im = make(InputMap)
		w.inputs[scope] = im
	}
	return im
}

// ActionMap returns the widget's action table.
func (w *BasicWidget) ActionMap() ActionMap {
	return w.actions
}
