package feedback

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hardware-advisor/internal/shared/server/respond"
)

// Handler exposes the feedback HTTP endpoint.
type Handler struct {
	Service *Service
}

// RegisterRoutes registers feedback routes on the group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/feedback", h.submit)
}

type submitRequest struct {
	UserText         string  `json:"user_text"`
	PredictedLabel   string  `json:"predicted_label"`
	Confidence       float64 `json:"confidence"`
	UserCorrectLabel string  `json:"user_correct_label"`
	Source           string  `json:"source"`
}

type submitResponse struct {
	Success       bool `json:"success"`
	FeedbackCount int  `json:"feedback_count"`
}

func (h *Handler) submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "request body must be valid JSON", nil)
		return
	}

	count, err := h.Service.Submit(c.Request.Context(), SubmitInput{
		UserText:         req.UserText,
		PredictedLabel:   req.PredictedLabel,
		Confidence:       req.Confidence,
		UserCorrectLabel: req.UserCorrectLabel,
		Source:           req.Source,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "invalid_request", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "could not save feedback", nil)
		return
	}

	respond.OK(c, submitResponse{Success: true, FeedbackCount: count})
}
