package api

import "github.com/phrazzld/cosmic-api/internal/domain"

// Each response shape is produced by exactly one view function. Nested
// entities are rendered through the summary views, which never carry a
// missions list, so a scientist's missions never re-expand their scientist.

// ScientistSummary is a scientist without missions.
type ScientistSummary struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	FieldOfStudy string `json:"field_of_study"`
}

// PlanetSummary is a planet without missions.
type PlanetSummary struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	DistanceFromEarth int64  `json:"distance_from_earth"`
	NearestStar       string `json:"nearest_star"`
}

// ScientistMission is a mission nested under its scientist.
type ScientistMission struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	ScientistID int64          `json:"scientist_id"`
	PlanetID    int64          `json:"planet_id"`
	Planet      *PlanetSummary `json:"planet"`
}

// ScientistDetail is a scientist with its missions.
type ScientistDetail struct {
	ScientistSummary
	Missions []ScientistMission `json:"missions"`
}

// MissionCreated is a new mission with both parents.
type MissionCreated struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	ScientistID int64             `json:"scientist_id"`
	PlanetID    int64             `json:"planet_id"`
	Scientist   *ScientistSummary `json:"scientist"`
	Planet      *PlanetSummary    `json:"planet"`
}

// ScientistSummaryView renders s without missions.
func ScientistSummaryView(s *domain.Scientist) ScientistSummary {
	return ScientistSummary{
		ID:           s.ID,
		Name:         s.Name,
		FieldOfStudy: s.FieldOfStudy,
	}
}

// ScientistSummaryViews renders a list of scientists.
func ScientistSummaryViews(scientists []*domain.Scientist) []ScientistSummary {
	out := make([]ScientistSummary, 0, len(scientists))
	for _, s := range scientists {
		out = append(out, ScientistSummaryView(s))
	}
	return out
}

// PlanetSummaryView renders p without missions.
func PlanetSummaryView(p *domain.Planet) PlanetSummary {
	return PlanetSummary{
		ID:                p.ID,
		Name:              p.Name,
		DistanceFromEarth: p.DistanceFromEarth,
		NearestStar:       p.NearestStar,
	}
}

// PlanetSummaryViews renders a list of planets.
func PlanetSummaryViews(planets []*domain.Planet) []PlanetSummary {
	out := make([]PlanetSummary, 0, len(planets))
	for _, p := range planets {
		out = append(out, PlanetSummaryView(p))
	}
	return out
}

// ScientistDetailView renders s with its missions; each mission carries its
// planet but not its scientist.
func ScientistDetailView(s *domain.Scientist) ScientistDetail {
	missions := make([]ScientistMission, 0, len(s.Missions))
	for _, m := range s.Missions {
		missions = append(missions, ScientistMission{
			ID:          m.ID,
			Name:        m.Name,
			ScientistID: m.ScientistID,
			PlanetID:    m.PlanetID,
			Planet:      planetSummaryPtr(m.Planet),
		})
	}
	return ScientistDetail{
		ScientistSummary: ScientistSummaryView(s),
		Missions:         missions,
	}
}

// MissionCreatedView renders m with both parents summarized.
func MissionCreatedView(m *domain.Mission) MissionCreated {
	view := MissionCreated{
		ID:          m.ID,
		Name:        m.Name,
		ScientistID: m.ScientistID,
		PlanetID:    m.PlanetID,
		Planet:      planetSummaryPtr(m.Planet),
	}
	if m.Scientist != nil {
		summary := ScientistSummaryView(m.Scientist)
		view.Scientist = &summary
	}
	return view
}

func planetSummaryPtr(p *domain.Planet) *PlanetSummary {
	if p == nil {
		return nil
	}
	summary := PlanetSummaryView(p)
	return &summary
}
