package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"fincalc-engine/internal/api/handler/dto"
	"fincalc-engine/internal/domain/property"
	"fincalc-engine/internal/pkg/apperrors"
)

type PropertyHandler struct {
	service property.ScoringService
	logger  *slog.Logger
}

func NewPropertyHandler(s property.ScoringService, l *slog.Logger) *PropertyHandler {
	return &PropertyHandler{
		service: s,
		logger:  l.With("component", "PropertyHandler"),
	}
}

// Score rates a property's investment quality.
//
// @Summary Score a property
// @Description Rates the property on a 0-100 scale from its valuation, tax lien burden and ownership flags.
// @Tags Properties
// @Accept json
// @Produce json
// @Param request body dto.PropertyRequest true "Property attributes"
// @Success 200 {object} dto.ScoreResponse "Investment score"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload"
// @Router /properties/score [post]
// @Security BearerAuth
func (h *PropertyHandler) Score(w http.ResponseWriter, r *http.Request) {
	prop, ok := h.decodeProperty(w, r)
	if !ok {
		return
	}

	score := h.service.Score(r.Context(), prop)
	respondJSON(w, http.StatusOK, dto.ScoreResponse{Score: score})
}

// CheckEligibility returns the eligibility verdict for a property.
//
// @Summary Check property eligibility
// @Description Checks every eligibility rule and returns the verdict together with every failed rule.
// @Tags Properties
// @Accept json
// @Produce json
// @Param request body dto.PropertyRequest true "Property attributes"
// @Success 200 {object} dto.EligibilityResponse "Eligibility verdict with reasons"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload"
// @Router /properties/eligibility [post]
// @Security BearerAuth
func (h *PropertyHandler) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	prop, ok := h.decodeProperty(w, r)
	if !ok {
		return
	}

	result := h.service.CheckEligibility(r.Context(), prop)
	respondJSON(w, http.StatusOK, dto.NewEligibilityResponse(result))
}

// Distance returns the great-circle distance between two points.
//
// @Summary Distance between two coordinates
// @Description Returns the Haversine distance in miles between (lat1,lng1) and (lat2,lng2).
// @Tags Properties
// @Produce json
// @Param lat1 query number true "First latitude"
// @Param lng1 query number true "First longitude"
// @Param lat2 query number true "Second latitude"
// @Param lng2 query number true "Second longitude"
// @Success 200 {object} dto.DistanceResponse "Distance in miles"
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed coordinates"
// @Router /properties/distance [get]
// @Security BearerAuth
func (h *PropertyHandler) Distance(w http.ResponseWriter, r *http.Request) {
	coords := make([]float64, 0, 4)
	for _, name := range []string{"lat1", "lng1", "lat2", "lng2"} {
		raw := r.URL.Query().Get(name)
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(w, fmt.Errorf("%w: query parameter %s is missing or not a number", apperrors.ErrInvalidArgument, name))
			return
		}
		coords = append(coords, value)
	}

	miles := h.service.Distance(r.Context(), coords[0], coords[1], coords[2], coords[3])
	respondJSON(w, http.StatusOK, dto.DistanceResponse{Miles: miles})
}

func (h *PropertyHandler) decodeProperty(w http.ResponseWriter, r *http.Request) (*property.Property, bool) {
	var req dto.PropertyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return nil, false
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return nil, false
	}
	return req.ToProperty(), true
}
