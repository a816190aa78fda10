package palette

// Mapping assigns a colour to each team name.
type Mapping map[string]string

// Assign maps teams[i] to colors[i mod len(colors)]. teams must already be in first-seen order.
func Assign(teams []string, colors []string) Mapping {
	out := make(Mapping, len(teams))
	if len(colors) == 0 {
		return out
	}
	i := 0
	for _, name := range teams {
		if _, seen := out[name]; seen {
			continue
		}
		out[name] = colors[i%len(colors)]
		i++
	}
	return out
}

// FirstSeen returns distinct names in order of first appearance.
func FirstSeen(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// ColorOf returns the colour for team, or fallback when unmapped.
func (m Mapping) ColorOf(team, fallback string) string {
	if c, ok := m[team]; ok {
		return c
	}
	return fallback
}
