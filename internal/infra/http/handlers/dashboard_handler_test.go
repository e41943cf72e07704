package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pipetrack/pipetrack/internal/infra/http/handlers"
	"github.com/pipetrack/pipetrack/internal/usecase"
)

func TestDashboardStatsPayload(t *testing.T) {
	jobs := new(MockJobRepository)
	customers := new(MockCustomerRepository)
	pipelines := new(MockPipelineRepository)
	h := handlers.NewDashboardHandler(usecase.NewDashboardUseCase(jobs, customers, pipelines))

	jobs.On("CountActiveByOwner", mock.Anything, mock.Anything).Return(4, nil)
	customers.On("CountByOwner", mock.Anything, mock.Anything).Return(3, nil)
	pipelines.On("CountByOwner", mock.Anything, mock.Anything).Return(2, nil)
	jobs.On("CountActiveDueBetween", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(1, nil)

	req := httptest.NewRequest("GET", "/api/dashboard/stats", nil).WithContext(context.Background())
	w := httptest.NewRecorder()

	h.HandleGetStats(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"activeJobs":4,"totalCustomers":3,"totalPipelines":2,"jobsDueThisWeek":1}`,
		w.Body.String(),
	)
}

func TestDashboardStatsStorageFailure(t *testing.T) {
	jobs := new(MockJobRepository)
	customers := new(MockCustomerRepository)
	pipelines := new(MockPipelineRepository)
	h := handlers.NewDashboardHandler(usecase.NewDashboardUseCase(jobs, customers, pipelines))

	jobs.On("CountActiveByOwner", mock.Anything, mock.Anything).Return(0, assert.AnError)
	customers.On("CountByOwner", mock.Anything, mock.Anything).Return(0, nil)
	pipelines.On("CountByOwner", mock.Anything, mock.Anything).Return(0, nil)
	jobs.On("CountActiveDueBetween", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(0, nil)

	req := httptest.NewRequest("GET", "/api/dashboard/stats", nil)
	w := httptest.NewRecorder()

	h.HandleGetStats(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// The storage detail must never leak to the client.
	var errResponse map[string]string
	json.NewDecoder(w.Body).Decode(&errResponse)
	assert.Equal(t, "internal server error", errResponse["error"])
}
