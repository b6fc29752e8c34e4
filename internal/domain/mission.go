package domain

// Mission joins exactly one Scientist to exactly one Planet.
type Mission struct {
	ID          int64
	Name        string
	ScientistID int64
	PlanetID    int64

	// Scientist and Planet are set by loaders that join the parents.
	Scientist *Scientist
	Planet    *Planet
}

// NewMission creates a Mission after running every field predicate.
// Whether the referenced scientist and planet exist is checked by the store.
func NewMission(name string, scientistID, planetID int64) (*Mission, error) {
	m := &Mission{}
	if err := m.SetName(name); err != nil {
		return nil, err
	}
	if err := m.SetScientistID(scientistID); err != nil {
		return nil, err
	}
	if err := m.SetPlanetID(planetID); err != nil {
		return nil, err
	}
	return m, nil
}

// SetName assigns the mission name if it is non-empty.
func (m *Mission) SetName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	m.Name = name
	return nil
}

// SetScientistID assigns the scientist reference. Zero and negative IDs are rejected.
func (m *Mission) SetScientistID(id int64) error {
	if id <= 0 {
		return NewValidationError("scientist_id", ErrEmptyScientistID)
	}
	m.ScientistID = id
	return nil
}

// SetPlanetID assigns the planet reference. Zero and negative IDs are rejected.
func (m *Mission) SetPlanetID(id int64) error {
	if id <= 0 {
		return NewValidationError("planet_id", ErrEmptyPlanetID)
	}
	m.PlanetID = id
	return nil
}

// Validate re-checks the invariants of a mission built outside the constructor.
func (m *Mission) Validate() error {
	if err := validateName(m.Name); err != nil {
		return err
	}
	if m.ScientistID <= 0 {
		return NewValidationError("scientist_id", ErrEmptyScientistID)
	}
	if m.PlanetID <= 0 {
		return NewValidationError("planet_id", ErrEmptyPlanetID)
	}
	return nil
}
