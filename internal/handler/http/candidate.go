package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nishan-khiva/HRMS-project/internal/domain/candidate"
	"github.com/nishan-khiva/HRMS-project/internal/handler/http/response"
	"github.com/nishan-khiva/HRMS-project/internal/pkg/pagination"
)

type CandidateHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByPosition(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	UploadResume(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	BulkDelete(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type candidateHandlerImpl struct {
	candidateService candidate.CandidateService
}

func NewCandidateHandler(candidateService candidate.CandidateService) CandidateHandler {
	return &candidateHandlerImpl{candidateService: candidateService}
}

// Create implements CandidateHandler.
func (h *candidateHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req candidate.CreateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.candidateService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Candidate created successfully", resp)
}

// List implements CandidateHandler.
func (h *candidateHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := candidate.CandidateFilter{Params: pagination.ParseParams(r, 10)}

	if v := r.URL.Query().Get("position"); v != "" {
		filter.Position = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("minExperience"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.MinExperience = &n
		}
	}
	if v := r.URL.Query().Get("search"); v != "" {
		filter.Search = &v
	}

	resp, err := h.candidateService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithPagination(w, resp.Candidates, resp.Meta)
}

// ListByPosition implements CandidateHandler.
func (h *candidateHandlerImpl) ListByPosition(w http.ResponseWriter, r *http.Request) {
	resp, err := h.candidateService.ListByPosition(r.Context(), chi.URLParam(r, "position"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Get implements CandidateHandler.
func (h *candidateHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.candidateService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements CandidateHandler.
func (h *candidateHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req candidate.UpdateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.candidateService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeStatusUpdateResult(w, "Candidate updated successfully", result)
}

// UpdateStatus implements CandidateHandler.
func (h *candidateHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req candidate.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.candidateService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeStatusUpdateResult(w, "Candidate status updated successfully", result)
}

func writeStatusUpdateResult(w http.ResponseWriter, message string, result candidate.StatusUpdateResult) {
	if result.ConversionWarning != "" {
		message = result.ConversionWarning
	}
	response.SuccessWithMessage(w, message, result)
}

// UploadResume implements CandidateHandler.
func (h *candidateHandlerImpl) UploadResume(w http.ResponseWriter, r *http.Request) {
	var req candidate.UploadResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.candidateService.UploadResume(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Resume uploaded successfully", resp)
}

// Delete implements CandidateHandler.
func (h *candidateHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.candidateService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Candidate deleted successfully", nil)
}

// BulkDelete implements CandidateHandler.
func (h *candidateHandlerImpl) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req candidate.BulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	deleted, err := h.candidateService.BulkDelete(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Candidates deleted successfully", map[string]int64{"deleted": deleted})
}

// Stats implements CandidateHandler.
func (h *candidateHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	resp, err := h.candidateService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
