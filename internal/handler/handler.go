package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/jkarlost/calculadora/internal/models"
	"github.com/jkarlost/calculadora/internal/service"
)

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Register handles the personal-data step of the intake form.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.svc.Register(req)
	if errors.Is(err, service.ErrUnderage) || errors.Is(err, service.ErrMissingFields) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		h.log.Errorf("Register failed: %v", err)
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"usuario": user,
		"token":   token,
	})
}

// Catalog returns the line-item catalog the form is rendered from.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Catalog())
}

// Analyze tabulates an intake submission and returns the analysis.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req models.IntakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	analysis, err := h.svc.Analyze(r.Context(), req)
	if err != nil {
		h.log.Errorf("Analyze failed: %v", err)
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

// Retirement computes the retirement projection for the session.
func (h *Handler) Retirement(w http.ResponseWriter, r *http.Request) {
	var req models.RetirementProjectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, h.svc.Retirement(req.Retirement, req.Finances))
}

// Plan requests the externally generated work plan. The response is always
// 200: planner failures degrade to fallback text, never to an error status.
func (h *Handler) Plan(w http.ResponseWriter, r *http.Request) {
	var req models.IntakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	plan := h.svc.Plan(r.Context(), req)
	writeJSON(w, http.StatusOK, map[string]string{"plan": plan})
}

// Report renders the PDF report and streams it back as a download.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	var req models.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	filename, pdfBytes, err := h.svc.BuildReport(r.Context(), req)
	if err != nil {
		h.log.Errorf("Report generation failed: %v", err)
		writeError(w, http.StatusInternalServerError, "report generation failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

// EmailReport renders the PDF report and emails it to the profile address.
func (h *Handler) EmailReport(w http.ResponseWriter, r *http.Request) {
	var req models.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.EmailReport(r.Context(), req); err != nil {
		h.log.Errorf("Report email failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to email report")
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "enviado"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
