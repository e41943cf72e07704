package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pipetrack/pipetrack/internal/entity"
	"github.com/pipetrack/pipetrack/internal/infra/http/handlers"
	"github.com/pipetrack/pipetrack/internal/infra/http/middleware"
	"github.com/pipetrack/pipetrack/internal/infra/session"
	"github.com/pipetrack/pipetrack/internal/usecase"
)

// newJobsRouter wires the jobs routes exactly like cmd/api does, with the
// session middleware in front.
func newJobsRouter(jobs *MockJobRepository, customers *MockCustomerRepository, pipelines *MockPipelineRepository, sessions *session.Store) http.Handler {
	listUC := usecase.NewListJobsUseCase(jobs, customers, pipelines)
	createUC := usecase.NewCreateJobUseCase(jobs, customers, pipelines, nil)
	h := handlers.NewJobHandler(listUC, createUC)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(sessions))
		r.Get("/api/jobs", h.HandleList)
		r.Post("/api/jobs", h.HandleCreate)
	})
	return r
}

func TestListJobsIsScopedToSessionUser(t *testing.T) {
	jobs := new(MockJobRepository)
	customers := new(MockCustomerRepository)
	pipelines := new(MockPipelineRepository)
	sessions := session.NewStore()
	router := newJobsRouter(jobs, customers, pipelines, sessions)

	jobs.On("ListByOwner", mock.Anything, "alice").Return([]entity.Job{
		{ID: "job-a", Title: "Alice's job", CustomerID: "cust-a", PipelineID: "pipe-a", Status: entity.StatusActive},
	}, nil)
	jobs.On("ListByOwner", mock.Anything, "bob").Return([]entity.Job{
		{ID: "job-b", Title: "Bob's job", CustomerID: "cust-b", PipelineID: "pipe-b", Status: entity.StatusActive},
	}, nil)
	customers.On("NamesByIDs", mock.Anything, mock.Anything, mock.Anything).Return(map[string]string{}, nil)
	pipelines.On("NamesByIDs", mock.Anything, mock.Anything, mock.Anything).Return(map[string]string{}, nil)

	fetch := func(token string) []usecase.JobView {
		req := httptest.NewRequest("GET", "/api/jobs", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var views []usecase.JobView
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&views))
		return views
	}

	aliceViews := fetch(sessions.Issue("alice"))
	bobViews := fetch(sessions.Issue("bob"))

	assert.Len(t, aliceViews, 1)
	assert.Equal(t, "job-a", aliceViews[0].ID)
	assert.Len(t, bobViews, 1)
	assert.Equal(t, "job-b", bobViews[0].ID)
}

func TestListJobsWithoutSession(t *testing.T) {
	router := newJobsRouter(new(MockJobRepository), new(MockCustomerRepository), new(MockPipelineRepository), session.NewStore())

	req := httptest.NewRequest("GET", "/api/jobs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateJobReturns201(t *testing.T) {
	jobs := new(MockJobRepository)
	customers := new(MockCustomerRepository)
	pipelines := new(MockPipelineRepository)
	sessions := session.NewStore()
	router := newJobsRouter(jobs, customers, pipelines, sessions)

	customers.On("NamesByIDs", mock.Anything, "alice", []string{"cust-1"}).
		Return(map[string]string{"cust-1": "Acme Corp"}, nil)
	pipelines.On("NamesByIDs", mock.Anything, "alice", []string{"pipe-1"}).
		Return(map[string]string{"pipe-1": "Web Development"}, nil)
	jobs.On("Create", mock.Anything, mock.Anything).Return(nil)

	body, _ := json.Marshal(usecase.CreateJobInput{
		Title:       "Corporate website redesign",
		CustomerID:  "cust-1",
		PipelineID:  "pipe-1",
		CurrentStep: "Design",
		DueDate:     "2026-09-10",
	})
	req := httptest.NewRequest("POST", "/api/jobs", bytes.NewReader(body))
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sessions.Issue("alice")})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response usecase.CreateJobOutput
	json.NewDecoder(w.Body).Decode(&response)
	assert.True(t, response.Success)
	assert.NotEmpty(t, response.JobID)
}

func TestCreateJobValidationFailureReturns400(t *testing.T) {
	jobs := new(MockJobRepository)
	sessions := session.NewStore()
	router := newJobsRouter(jobs, new(MockCustomerRepository), new(MockPipelineRepository), sessions)

	body, _ := json.Marshal(usecase.CreateJobInput{CustomerID: "cust-1", PipelineID: "pipe-1"})
	req := httptest.NewRequest("POST", "/api/jobs", bytes.NewReader(body))
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sessions.Issue("alice")})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResponse map[string]string
	json.NewDecoder(w.Body).Decode(&errResponse)
	assert.Contains(t, errResponse["error"], "title")
	jobs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
