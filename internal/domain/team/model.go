package team

// Team is a Premier League club as listed by the bootstrap endpoint.
type Team struct {
	ID        int64
	Name      string
	ShortName string
}
