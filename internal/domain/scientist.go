package domain

// Scientist is a researcher who can be assigned to missions.
// Name and FieldOfStudy are never empty once accepted.
type Scientist struct {
	ID           int64
	Name         string
	FieldOfStudy string

	// Missions is only populated by loaders that expand the relationship.
	Missions []*Mission
}

// ScientistPatch carries a partial update. Nil fields are left untouched.
type ScientistPatch struct {
	Name         *string
	FieldOfStudy *string
}

// NewScientist creates a Scientist after running every field predicate.
func NewScientist(name, fieldOfStudy string) (*Scientist, error) {
	s := &Scientist{}
	if err := s.SetName(name); err != nil {
		return nil, err
	}
	if err := s.SetFieldOfStudy(fieldOfStudy); err != nil {
		return nil, err
	}
	return s, nil
}

// SetName assigns the scientist's name if it is non-empty.
func (s *Scientist) SetName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	s.Name = name
	return nil
}

// SetFieldOfStudy assigns the scientist's field of study if it is non-empty.
func (s *Scientist) SetFieldOfStudy(fieldOfStudy string) error {
	if fieldOfStudy == "" {
		return NewValidationError("field_of_study", ErrEmptyFieldOfStudy)
	}
	s.FieldOfStudy = fieldOfStudy
	return nil
}

// Apply validates every field present in the patch and only then mutates
// the scientist, so a rejected patch leaves it unchanged.
func (s *Scientist) Apply(patch ScientistPatch) error {
	next := *s
	if patch.Name != nil {
		if err := next.SetName(*patch.Name); err != nil {
			return err
		}
	}
	if patch.FieldOfStudy != nil {
		if err := next.SetFieldOfStudy(*patch.FieldOfStudy); err != nil {
			return err
		}
	}
	*s = next
	return nil
}

// Validate re-checks the invariants of a scientist built outside the constructor.
func (s *Scientist) Validate() error {
	if err := validateName(s.Name); err != nil {
		return err
	}
	if s.FieldOfStudy == "" {
		return NewValidationError("field_of_study", ErrEmptyFieldOfStudy)
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return NewValidationError("name", ErrEmptyName)
	}
	return nil
}
