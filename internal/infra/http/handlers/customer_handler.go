package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pipetrack/pipetrack/internal/infra/http/middleware"
	"github.com/pipetrack/pipetrack/internal/usecase"
)

type CustomerHandler struct {
	ListUC   *usecase.ListCustomersUseCase
	CreateUC *usecase.CreateCustomerUseCase
}

func NewCustomerHandler(listUC *usecase.ListCustomersUseCase, createUC *usecase.CreateCustomerUseCase) *CustomerHandler {
	return &CustomerHandler{
		ListUC:   listUC,
		CreateUC: createUC,
	}
}

// HandleList (GET /api/customers) returns the owner's customers with their
// active/total job counts.
func (h *CustomerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	customers, err := h.ListUC.Execute(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, customers)
}

// HandleCreate (POST /api/customers)
func (h *CustomerHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateCustomerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	output, err := h.CreateUC.Execute(r.Context(), middleware.UserID(r.Context()), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordCreated("customer")
	writeJSON(w, http.StatusCreated, output)
}
