package pane

import "encoding/json"

// ViewState is the restorable snapshot of a pane's viewport and caret.
// The widget treats it as an opaque blob; the schema belongs to this
// layer.
type ViewState struct {
	ScrollTop  int      `json:"scrollTop"`
	Position   Position `json:"position"`
	Selections []Range  `json:"selections"`
}

// SaveViewState captures the current scroll, caret and selections.
func (p *Pane) SaveViewState() ViewState {
	return ViewState{
		ScrollTop:  p.ScrollTop(),
		Position:   p.position,
		Selections: p.Selections(),
	}
}

// RestoreViewState re-applies a snapshot, clamping against the current
// content.
func (p *Pane) RestoreViewState(s ViewState) {
	p.SetScrollTop(s.ScrollTop)
	p.SetPosition(s.Position)
	if len(s.Selections) > 0 {
		p.SetSelections(s.Selections)
	}
}

// MarshalViewState encodes a snapshot for persistence.
func MarshalViewState(s ViewState) ([]byte, error) {
	return json.Marshal(s)
}

// UnmarshalViewState decodes a persisted snapshot.
func UnmarshalViewState(data []byte) (ViewState, error) {
	var s ViewState
	err := json.Unmarshal(data, &s)
	return s, err
}
