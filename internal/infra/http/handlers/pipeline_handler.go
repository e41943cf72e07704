package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pipetrack/pipetrack/internal/infra/http/middleware"
	"github.com/pipetrack/pipetrack/internal/usecase"
)

type PipelineHandler struct {
	ListUC   *usecase.ListPipelinesUseCase
	CreateUC *usecase.CreatePipelineUseCase
}

func NewPipelineHandler(listUC *usecase.ListPipelinesUseCase, createUC *usecase.CreatePipelineUseCase) *PipelineHandler {
	return &PipelineHandler{
		ListUC:   listUC,
		CreateUC: createUC,
	}
}

// HandleList (GET /api/pipelines) returns the owner's pipelines with active
// job counts.
func (h *PipelineHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	pipelines, err := h.ListUC.Execute(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pipelines)
}

// HandleCreate (POST /api/pipelines)
func (h *PipelineHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreatePipelineInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	output, err := h.CreateUC.Execute(r.Context(), middleware.UserID(r.Context()), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordCreated("pipeline")
	writeJSON(w, http.StatusCreated, output)
}
