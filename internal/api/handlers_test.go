package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/cosmic-api/internal/domain"
	"github.com/phrazzld/cosmic-api/internal/mocks"
	"github.com/phrazzld/cosmic-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validationBody = `{"errors":["validation errors"]}`

func newTestRouter(
	scientists *mocks.MockScientistService,
	planets *mocks.MockPlanetService,
	missions *mocks.MockMissionService,
) http.Handler {
	r := chi.NewRouter()
	sh := NewScientistHandler(scientists, nil)
	r.Get("/scientists", sh.ListScientists)
	r.Post("/scientists", sh.CreateScientist)
	r.Get("/scientists/{id}", sh.GetScientist)
	r.Patch("/scientists/{id}", sh.UpdateScientist)
	r.Delete("/scientists/{id}", sh.DeleteScientist)
	r.Get("/planets", NewPlanetHandler(planets, nil).ListPlanets)
	r.Post("/missions", NewMissionHandler(missions, nil).CreateMission)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestScientistHandler_List(t *testing.T) {
	svc := &mocks.MockScientistService{
		Scientists: []*domain.Scientist{
			{ID: 1, Name: "Ada", FieldOfStudy: "math", Missions: []*domain.Mission{{ID: 9}}},
			{ID: 2, Name: "Carl", FieldOfStudy: "astronomy"},
		},
	}
	rr := do(t, newTestRouter(svc, &mocks.MockPlanetService{}, &mocks.MockMissionService{}),
		http.MethodGet, "/scientists", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[
		{"id":1,"name":"Ada","field_of_study":"math"},
		{"id":2,"name":"Carl","field_of_study":"astronomy"}
	]`, rr.Body.String())
}

func TestScientistHandler_ListEmpty(t *testing.T) {
	svc := &mocks.MockScientistService{Scientists: []*domain.Scientist{}}
	rr := do(t, newTestRouter(svc, &mocks.MockPlanetService{}, &mocks.MockMissionService{}),
		http.MethodGet, "/scientists", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestScientistHandler_Create(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		serviceErr  error
		wantStatus  int
		wantBody    string
		wantReached bool
	}{
		{
			name:        "created",
			body:        `{"name":"Ada","field_of_study":"math"}`,
			wantStatus:  http.StatusCreated,
			wantBody:    `{"id":7,"name":"Ada","field_of_study":"math"}`,
			wantReached: true,
		},
		{
			name:       "missing field",
			body:       `{"name":"Ada"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   validationBody,
		},
		{
			name:       "empty name",
			body:       `{"name":"","field_of_study":"math"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   validationBody,
		},
		{
			name:       "malformed json",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   validationBody,
		},
		{
			name:        "domain rejection",
			body:        `{"name":"Ada","field_of_study":"math"}`,
			serviceErr:  domain.NewValidationError("name", domain.ErrEmptyName),
			wantStatus:  http.StatusBadRequest,
			wantBody:    validationBody,
			wantReached: true,
		},
		{
			name:        "store failure",
			body:        `{"name":"Ada","field_of_study":"math"}`,
			serviceErr:  errors.New("database is locked at /var/lib/app.db"),
			wantStatus:  http.StatusInternalServerError,
			wantBody:    `{"error":"An unexpected error occurred"}`,
			wantReached: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mocks.MockScientistService{
				CreateScientistFn: func(_ context.Context, name, field string) (*domain.Scientist, error) {
					if tc.serviceErr != nil {
						return nil, tc.serviceErr
					}
					return &domain.Scientist{ID: 7, Name: name, FieldOfStudy: field}, nil
				},
			}
			rr := do(t, newTestRouter(svc, &mocks.MockPlanetService{}, &mocks.MockMissionService{}),
				http.MethodPost, "/scientists", tc.body)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.JSONEq(t, tc.wantBody, rr.Body.String())
			assert.Equal(t, tc.wantReached, svc.Calls("CreateScientist") == 1)
			assert.NotContains(t, rr.Body.String(), "/var/lib")
		})
	}
}

func TestScientistHandler_Get(t *testing.T) {
	planet := &domain.Planet{ID: 3, Name: "Mars", DistanceFromEarth: 225, NearestStar: "Sol"}
	svc := &mocks.MockScientistService{
		GetScientistFn: func(_ context.Context, id int64) (*domain.Scientist, error) {
			if id != 1 {
				return nil, store.ErrScientistNotFound
			}
			return &domain.Scientist{
				ID: 1, Name: "Ada", FieldOfStudy: "math",
				Missions: []*domain.Mission{
					{ID: 5, Name: "Ares", ScientistID: 1, PlanetID: 3, Planet: planet},
				},
			}, nil
		},
	}
	h := newTestRouter(svc, &mocks.MockPlanetService{}, &mocks.MockMissionService{})

	rr := do(t, h, http.MethodGet, "/scientists/1", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"id":1,"name":"Ada","field_of_study":"math",
		"missions":[{
			"id":5,"name":"Ares","scientist_id":1,"planet_id":3,
			"planet":{"id":3,"name":"Mars","distance_from_earth":225,"nearest_star":"Sol"}
		}]
	}`, rr.Body.String())

	rr = do(t, h, http.MethodGet, "/scientists/2", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Scientist not found"}`, rr.Body.String())
}

func TestScientistHandler_NonIntegerIDIsNotFound(t *testing.T) {
	svc := &mocks.MockScientistService{}
	h := newTestRouter(svc, &mocks.MockPlanetService{}, &mocks.MockMissionService{})

	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			rr := do(t, h, method, "/scientists/abc", `{"name":"x"}`)
			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.JSONEq(t, `{"error":"Scientist not found"}`, rr.Body.String())
		})
	}
	assert.Zero(t, svc.Calls("GetScientist")+svc.Calls("UpdateScientist")+svc.Calls("DeleteScientist"))
}

func TestScientistHandler_Update(t *testing.T) {
	var gotPatch domain.ScientistPatch
	svc := &mocks.MockScientistService{
		UpdateScientistFn: func(_ context.Context, id int64, patch domain.ScientistPatch) (*domain.Scientist, error) {
			if id != 1 {
				return nil, store.ErrScientistNotFound
			}
			gotPatch = patch
			s := &domain.Scientist{ID: 1, Name: "Ada", FieldOfStudy: "math"}
			if err := s.Apply(patch); err != nil {
				return nil, err
			}
			return s, nil
		},
		Scientist: &domain.Scientist{ID: 1},
	}
	h := newTestRouter(svc, &mocks.MockPlanetService{}, &mocks.MockMissionService{})

	rr := do(t, h, http.MethodPatch, "/scientists/1", `{"field_of_study":"logic"}`)
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.JSONEq(t, `{"id":1,"name":"Ada","field_of_study":"logic"}`, rr.Body.String())
	assert.Nil(t, gotPatch.Name)
	require.NotNil(t, gotPatch.FieldOfStudy)

	rr = do(t, h, http.MethodPatch, "/scientists/1", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, validationBody, rr.Body.String())

	rr = do(t, h, http.MethodPatch, "/scientists/2", `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Scientist not found"}`, rr.Body.String())
}

func TestScientistHandler_UpdateMalformedBody(t *testing.T) {
	svc := &mocks.MockScientistService{
		ScientistExistsFn: func(_ context.Context, id int64) error {
			if id != 1 {
				return store.ErrScientistNotFound
			}
			return nil
		},
	}
	h := newTestRouter(svc, &mocks.MockPlanetService{}, &mocks.MockMissionService{})

	rr := do(t, h, http.MethodPatch, "/scientists/1", `not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, validationBody, rr.Body.String())

	rr = do(t, h, http.MethodPatch, "/scientists/2", `not json`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Zero(t, svc.Calls("UpdateScientist"))
	assert.Zero(t, svc.Calls("GetScientist"))
	assert.Equal(t, 2, svc.Calls("ScientistExists"))
}

func TestScientistHandler_UpdateNullFields(t *testing.T) {
	var gotPatch domain.ScientistPatch
	svc := &mocks.MockScientistService{
		UpdateScientistFn: func(_ context.Context, _ int64, patch domain.ScientistPatch) (*domain.Scientist, error) {
			gotPatch = patch
			s := &domain.Scientist{ID: 1, Name: "Ada", FieldOfStudy: "math"}
			if err := s.Apply(patch); err != nil {
				return nil, err
			}
			return s, nil
		},
	}
	h := newTestRouter(svc, &mocks.MockPlanetService{}, &mocks.MockMissionService{})

	tests := []struct {
		name string
		body string
	}{
		{name: "null name", body: `{"name":null}`},
		{name: "null field with valid name", body: `{"field_of_study":null,"name":"Bob"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := do(t, h, http.MethodPatch, "/scientists/1", tc.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, validationBody, rr.Body.String())
		})
	}

	do(t, h, http.MethodPatch, "/scientists/1", `{"name":null}`)
	require.NotNil(t, gotPatch.Name)
	assert.Empty(t, *gotPatch.Name)
	assert.Nil(t, gotPatch.FieldOfStudy)
}

func TestScientistHandler_Delete(t *testing.T) {
	svc := &mocks.MockScientistService{
		DeleteScientistFn: func(_ context.Context, id int64) error {
			if id != 1 {
				return store.ErrScientistNotFound
			}
			return nil
		},
	}
	h := newTestRouter(svc, &mocks.MockPlanetService{}, &mocks.MockMissionService{})

	rr := do(t, h, http.MethodDelete, "/scientists/1", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = do(t, h, http.MethodDelete, "/scientists/2", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Scientist not found"}`, rr.Body.String())
}

func TestPlanetHandler_List(t *testing.T) {
	planets := &mocks.MockPlanetService{
		Planets: []*domain.Planet{
			{ID: 1, Name: "TauCeti E", DistanceFromEarth: 1234567, NearestStar: "TauCeti",
				Missions: []*domain.Mission{{ID: 1}}},
		},
	}
	rr := do(t, newTestRouter(&mocks.MockScientistService{}, planets, &mocks.MockMissionService{}),
		http.MethodGet, "/planets", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`[{"id":1,"name":"TauCeti E","distance_from_earth":1234567,"nearest_star":"TauCeti"}]`,
		rr.Body.String())
}

func TestMissionHandler_Create(t *testing.T) {
	created := &domain.Mission{
		ID: 4, Name: "Project Nova", ScientistID: 1, PlanetID: 2,
		Scientist: &domain.Scientist{ID: 1, Name: "Ada", FieldOfStudy: "math"},
		Planet:    &domain.Planet{ID: 2, Name: "Io", DistanceFromEarth: 628, NearestStar: "Sol"},
	}

	tests := []struct {
		name        string
		body        string
		serviceErr  error
		wantStatus  int
		wantBody    string
		wantReached bool
	}{
		{
			name:       "created",
			body:       `{"name":"Project Nova","scientist_id":1,"planet_id":2}`,
			wantStatus: http.StatusCreated,
			wantBody: `{
				"id":4,"name":"Project Nova","scientist_id":1,"planet_id":2,
				"scientist":{"id":1,"name":"Ada","field_of_study":"math"},
				"planet":{"id":2,"name":"Io","distance_from_earth":628,"nearest_star":"Sol"}
			}`,
			wantReached: true,
		},
		{"missing name", `{"scientist_id":1,"planet_id":2}`, nil, http.StatusBadRequest, validationBody, false},
		{"zero scientist", `{"name":"x","scientist_id":0,"planet_id":2}`, nil, http.StatusBadRequest, validationBody, false},
		{"missing planet", `{"name":"x","scientist_id":1}`, nil, http.StatusBadRequest, validationBody, false},
		{"wrong type", `{"name":"x","scientist_id":"one","planet_id":2}`, nil, http.StatusBadRequest, validationBody, false},
		{
			name:        "unknown scientist",
			body:        `{"name":"x","scientist_id":99,"planet_id":2}`,
			serviceErr:  store.ErrUnknownScientist,
			wantStatus:  http.StatusBadRequest,
			wantBody:    validationBody,
			wantReached: true,
		},
		{
			name:        "unknown planet",
			body:        `{"name":"x","scientist_id":1,"planet_id":99}`,
			serviceErr:  store.ErrUnknownPlanet,
			wantStatus:  http.StatusBadRequest,
			wantBody:    validationBody,
			wantReached: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			missions := &mocks.MockMissionService{Mission: created, Err: tc.serviceErr}
			if tc.serviceErr != nil {
				missions.Mission = nil
			}
			rr := do(t, newTestRouter(&mocks.MockScientistService{}, &mocks.MockPlanetService{}, missions),
				http.MethodPost, "/missions", tc.body)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.JSONEq(t, tc.wantBody, rr.Body.String())
			assert.Equal(t, tc.wantReached, missions.CreateCalls() == 1)
		})
	}
}

func TestMissionHandler_NestedScientistHasNoMissions(t *testing.T) {
	missions := &mocks.MockMissionService{
		Mission: &domain.Mission{
			ID: 1, Name: "Loop", ScientistID: 1, PlanetID: 1,
			Scientist: &domain.Scientist{ID: 1, Name: "A", FieldOfStudy: "B",
				Missions: []*domain.Mission{{ID: 1, Name: "Loop"}}},
			Planet: &domain.Planet{ID: 1, Missions: []*domain.Mission{{ID: 1}}},
		},
	}
	rr := do(t, newTestRouter(&mocks.MockScientistService{}, &mocks.MockPlanetService{}, missions),
		http.MethodPost, "/missions", `{"name":"Loop","scientist_id":1,"planet_id":1}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var body struct {
		Scientist map[string]any `json:"scientist"`
		Planet    map[string]any `json:"planet"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.NotContains(t, body.Scientist, "missions")
	assert.NotContains(t, body.Planet, "missions")
}
