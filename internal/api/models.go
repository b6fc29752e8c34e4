package api

import (
	"bytes"
	"encoding/json"

	"github.com/phrazzld/cosmic-api/internal/domain"
)

// CreateScientistRequest defines the payload for POST /scientists.
type CreateScientistRequest struct {
	Name         string `json:"name"           validate:"required"`
	FieldOfStudy string `json:"field_of_study" validate:"required"`
}

// UpdateScientistRequest defines the payload for PATCH /scientists/{id}.
// Absent fields are left unchanged; present fields are checked by the
// domain setters so an unknown scientist is reported first.
type UpdateScientistRequest struct {
	Name         OptionalString `json:"name"`
	FieldOfStudy OptionalString `json:"field_of_study"`
}

// Patch converts the request to a domain patch.
func (r UpdateScientistRequest) Patch() domain.ScientistPatch {
	return domain.ScientistPatch{Name: r.Name.Ptr(), FieldOfStudy: r.FieldOfStudy.Ptr()}
}

// OptionalString is a string field that remembers whether it was present in
// the decoded body. A present null decodes as the empty string.
type OptionalString struct {
	Set   bool
	Value string
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = ""
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Ptr returns nil for an absent field.
func (o OptionalString) Ptr() *string {
	if !o.Set {
		return nil
	}
	v := o.Value
	return &v
}

// CreateMissionRequest defines the payload for POST /missions.
// Zero IDs are rejected by the required tag.
type CreateMissionRequest struct {
	Name        string `json:"name"         validate:"required"`
	ScientistID int64  `json:"scientist_id" validate:"required"`
	PlanetID    int64  `json:"planet_id"    validate:"required"`
}
