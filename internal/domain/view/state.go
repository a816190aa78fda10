package view

// State is the dashboard session carried between interactions. It is never mutated in place:
// transitions return a new value.
type State struct {
	Page       Page     `json:"page"`
	Palette    string   `json:"palette,omitempty"`
	Comparison []string `json:"comparison,omitempty"`
}

// Initial is the state of a fresh session.
func Initial(defaultPalette string) State {
	return State{Page: PageHome, Palette: defaultPalette}
}

// Navigate moves to page. Every page is reachable from every other page.
func Navigate(s State, page Page) State {
	next := s.clone()
	if page.Valid() {
		next.Page = page
	}
	return next
}

func WithPalette(s State, name string) State {
	next := s.clone()
	next.Palette = name
	return next
}

func WithComparison(s State, names []string) State {
	next := s.clone()
	next.Comparison = append([]string(nil), names...)
	return next
}

func (s State) clone() State {
	out := s
	if s.Comparison != nil {
		out.Comparison = append([]string(nil), s.Comparison...)
	}
	return out
}
