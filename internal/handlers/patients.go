package handlers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"gcs-tracker/internal/models"
)

// --- Structs for Request Binding ---

type CreatePatientRequest struct {
	Name           string  `json:"name" binding:"required"`
	Age            *int    `json:"age"`
	Gender         *string `json:"gender" binding:"omitempty,oneof=male female other"`
	Department     *string `json:"department"`
	BedNumber      *string `json:"bed_number"`
	MedicalHistory *string `json:"medical_history"`
	Diagnosis      *string `json:"diagnosis"`
	AdmissionDate  string  `json:"admission_date"`
}

// --- Handler Functions ---

// ListPatients returns the directory ordered by name. An optional ?q= term
// filters by case-insensitive substring over name and detail text.
func (h *Handler) ListPatients(c *gin.Context) {
	var (
		patients []models.Patient
		err      error
	)
	if term := c.Query("q"); term != "" {
		patients, err = h.dir.Search(c.Request.Context(), term)
	} else {
		patients, err = h.dir.List(c.Request.Context())
	}
	if err != nil {
		h.respondError(c, err, "Failed to list patients")
		return
	}

	// Name ordering is a presentation choice; the directory itself keeps
	// insertion order.
	sort.SliceStable(patients, func(i, j int) bool {
		return strings.ToLower(patients[i].Name) < strings.ToLower(patients[j].Name)
	})
	c.JSON(http.StatusOK, patients)
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newPatient := models.Patient{
		Name:           req.Name,
		Age:            req.Age,
		Gender:         req.Gender,
		Department:     req.Department,
		BedNumber:      req.BedNumber,
		MedicalHistory: req.MedicalHistory,
		Diagnosis:      req.Diagnosis,
		AdmissionDate:  req.AdmissionDate,
	}

	created, err := h.dir.Add(c.Request.Context(), newPatient)
	if err != nil {
		h.respondError(c, err, "Failed to insert patient")
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *Handler) GetPatient(c *gin.Context) {
	id, ok := patientIDParam(c)
	if !ok {
		return
	}

	patient, err := h.dir.FindByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Patient not found")
		return
	}
	c.JSON(http.StatusOK, patient)
}

// UpdatePatient merges the supplied fields over the stored record. The id in
// the path is authoritative; ids in the body are ignored.
func (h *Handler) UpdatePatient(c *gin.Context) {
	id, ok := patientIDParam(c)
	if !ok {
		return
	}

	var upd models.PatientUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.dir.Update(c.Request.Context(), id, upd)
	if err != nil {
		h.respondError(c, err, "Failed to update patient")
		return
	}
	c.JSON(http.StatusOK, updated)
}
