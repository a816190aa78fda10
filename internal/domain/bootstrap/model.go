package bootstrap

// Payload is the undecoded season snapshot. Elements and teams stay generic
// so a field dropped upstream can be reported by name.
type Payload struct {
	Elements     []map[string]any
	Teams        []map[string]any
	ElementTypes []map[string]any
}

// IsEmpty reports a payload with neither players nor teams, which is what a
// failed fetch degrades to.
func (p Payload) IsEmpty() bool {
	return len(p.Elements) == 0 && len(p.Teams) == 0
}
