package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pipetrack/pipetrack/internal/infra/http/middleware"
	"github.com/pipetrack/pipetrack/internal/usecase"
)

type JobHandler struct {
	ListUC   *usecase.ListJobsUseCase
	CreateUC *usecase.CreateJobUseCase
}

func NewJobHandler(listUC *usecase.ListJobsUseCase, createUC *usecase.CreateJobUseCase) *JobHandler {
	return &JobHandler{
		ListUC:   listUC,
		CreateUC: createUC,
	}
}

// HandleList (GET /api/jobs) returns the owner's jobs enriched with customer
// and pipeline names, newest first.
func (h *JobHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.ListUC.Execute(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, jobs)
}

// HandleCreate (POST /api/jobs)
func (h *JobHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateJobInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	output, err := h.CreateUC.Execute(r.Context(), middleware.UserID(r.Context()), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordCreated("job")
	writeJSON(w, http.StatusCreated, output)
}
