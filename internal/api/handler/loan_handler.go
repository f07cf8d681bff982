package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"fincalc-engine/internal/api/handler/dto"
	"fincalc-engine/internal/domain/loan"
	"fincalc-engine/internal/pkg/apperrors"
)

type LoanHandler struct {
	service       loan.CalculationService
	percentPlaces int
	logger        *slog.Logger
}

func NewLoanHandler(s loan.CalculationService, percentPlaces int, l *slog.Logger) *LoanHandler {
	if percentPlaces <= 0 {
		percentPlaces = 2
	}
	return &LoanHandler{
		service:       s,
		percentPlaces: percentPlaces,
		logger:        l.With("component", "LoanHandler"),
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("no request body")
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":{"message":"Internal server error"}}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondError(w http.ResponseWriter, err error) {
	status, message, field := http.StatusInternalServerError, "An unexpected error occurred.", ""
	var validationError *apperrors.ValidationError
	var appErr *apperrors.AppError

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status, message = http.StatusNotFound, "Resource not found."
	case errors.Is(err, apperrors.ErrInvalidArgument), errors.Is(err, apperrors.ErrValidation):
		status, message = http.StatusBadRequest, err.Error()
	case errors.As(err, &validationError):
		status, message, field = http.StatusBadRequest, validationError.Message, validationError.Field
	case errors.As(err, &appErr):
		message = appErr.Error()
	default:
		slog.Default().Error("Unhandled internal error", "error", err)
	}

	resp := dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Message: message,
			Field:   field,
		},
	}
	respondJSON(w, status, resp)
}

// ValidateParameters checks loan parameters against every bound.
//
// @Summary Validate loan parameters
// @Description Checks the supplied loan parameters against all bounds and returns every violation in one pass. A valid result has an empty errors list.
// @Tags Loans
// @Accept json
// @Produce json
// @Param request body dto.LoanParametersRequest true "Loan parameters"
// @Success 200 {object} dto.ValidationResponse "Validation outcome"
// @Failure 400 {object} dto.ErrorResponse "Malformed request payload"
// @Router /loans/validate [post]
// @Security BearerAuth
func (h *LoanHandler) ValidateParameters(w http.ResponseWriter, r *http.Request) {
	var req dto.LoanParametersRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	params, err := req.ToParameters()
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	result := h.service.Validate(r.Context(), params)
	respondJSON(w, http.StatusOK, dto.NewValidationResponse(result))
}

// CalculatePayment derives the monthly payment for a loan.
//
// @Summary Calculate monthly payment
// @Description Computes the monthly payment that amortizes the loan amount over the term at the given annual rate. A zero rate produces a straight-line split.
// @Tags Loans
// @Accept json
// @Produce json
// @Param request body dto.PaymentRequest true "Payment calculation request"
// @Success 200 {object} dto.PaymentResponse "Monthly payment"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload"
// @Router /loans/payment [post]
// @Security BearerAuth
func (h *LoanHandler) CalculatePayment(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	payment, err := h.service.MonthlyPayment(r.Context(), req.LoanAmount, req.AnnualRate, req.TermMonths)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewPaymentResponse(payment))
}

// GenerateSchedule produces a full amortization schedule.
//
// @Summary Generate amortization schedule
// @Description Walks the loan period by period and returns a balance-consistent schedule. The realized schedule may be shorter than the nominal term when rounding pays the loan off early.
// @Tags Loans
// @Accept json
// @Produce json
// @Param request body dto.LoanParametersRequest true "Loan parameters"
// @Success 200 {object} dto.ScheduleResponse "Amortization schedule"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or parameter bounds"
// @Router /loans/schedule [post]
// @Security BearerAuth
func (h *LoanHandler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var req dto.LoanParametersRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	params, err := req.ToParameters()
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	schedule, err := h.service.GenerateSchedule(r.Context(), params)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewScheduleResponse(schedule, h.percentPlaces))
}

// SolveAPR recovers the implied annual rate from a payment stream.
//
// @Summary Solve annual percentage rate
// @Description Recovers the implied annual rate from a known term, amount financed and payment via bounded bisection. The solver always returns a rate; the ten-cent residual tolerance is not guaranteed to have been met.
// @Tags Loans
// @Accept json
// @Produce json
// @Param request body dto.APRRequest true "APR solve request"
// @Success 200 {object} dto.APRResponse "Solved rate"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload"
// @Router /loans/apr [post]
// @Security BearerAuth
func (h *LoanHandler) SolveAPR(w http.ResponseWriter, r *http.Request) {
	var req dto.APRRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	rate, err := h.service.SolveAPR(r.Context(), loan.APRQuery{
		TermMonths:    req.TermMonths,
		LoanAmount:    req.LoanAmount,
		Payment:       req.Payment,
		DeferredDays:  req.DeferredDays,
		OddDaysAmount: req.OddDaysAmount,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewAPRResponse(rate, h.percentPlaces))
}
