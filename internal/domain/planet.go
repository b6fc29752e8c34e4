package domain

// Planet is a mission destination. Planets carry no field predicates.
type Planet struct {
	ID                int64
	Name              string
	DistanceFromEarth int64
	NearestStar       string

	// Missions is only populated by loaders that expand the relationship.
	Missions []*Mission
}

// NewPlanet creates a Planet.
func NewPlanet(name string, distanceFromEarth int64, nearestStar string) *Planet {
	return &Planet{
		Name:              name,
		DistanceFromEarth: distanceFromEarth,
		NearestStar:       nearestStar,
	}
}
