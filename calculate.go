package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lg/bmi-tracker/internal/health"
)

// calculate runs one Calculate action for the session: validate, compute,
// persist, then replace the session result. A validation error returns
// before anything is stored. A persistence error is logged and reflected in
// Saved=false; the computation itself still succeeds.
func (h *Handler) calculate(c *gin.Context, sid string, req calculateRequest) (*sessionResult, error) {
	in, err := req.toInput()
	if err != nil {
		return nil, err
	}
	comp, err := h.calc.Calculate(in)
	if err != nil {
		return nil, err
	}

	res := &sessionResult{Computation: comp}
	rec, err := h.store.Insert(c.Request.Context(), comp.WeightKG, comp.HeightM, comp.BMI, comp.Category)
	if err != nil {
		h.logger.Error("bmi record not saved", zap.Error(err))
	} else {
		res.Saved = true
		res.RecordID = rec.ID
	}

	h.sessions.put(sid, res)
	return res, nil
}

// postCalculate handles POST /api/calculate.
// Body: { "unit", "name", "age", "gender", "weight", "height" }.
func (h *Handler) postCalculate(c *gin.Context) {
	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.calculate(c, sessionID(c), req)
	if err != nil {
		h.respondCalculateError(c, err)
		return
	}

	c.JSON(http.StatusOK, calculateResponse{Computation: res.Computation, Saved: res.Saved, RecordID: res.RecordID})
}

// postCalculateForm handles the HTML form post to /calculate and re-renders
// the page with either the result or an inline error.
func (h *Handler) postCalculateForm(c *gin.Context) {
	sid := sessionID(c)
	var req calculateRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderIndex(c, http.StatusBadRequest, sid, req, "Please enter valid values!")
		return
	}

	if _, err := h.calculate(c, sid, req); err != nil {
		var ve *health.ValidationError
		if errors.As(err, &ve) {
			h.renderIndex(c, http.StatusBadRequest, sid, req, "Please enter valid values! ("+ve.Error()+")")
			return
		}
		h.logger.Error("calculate failed", zap.Error(err))
		h.renderIndex(c, http.StatusInternalServerError, sid, req, "Something went wrong, please try again.")
		return
	}

	h.renderIndex(c, http.StatusOK, sid, req, "")
}

func (h *Handler) respondCalculateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, health.ErrInvalidInput), errors.Is(err, health.ErrInvalidMeasurement):
		apiError(c, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("calculate failed", zap.Error(err))
		apiError(c, http.StatusInternalServerError, "failed to calculate")
	}
}
