package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"cannadex/internal/delivery/http/response"
	"cannadex/internal/domain/entity"
	"cannadex/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StrainHandler holds dependencies for strain catalog handlers.
type StrainHandler struct {
	uc     usecase.StrainUsecase
	logger *slog.Logger
}

// NewStrainHandler is the constructor for StrainHandler, injected by Fx.
func NewStrainHandler(uc usecase.StrainUsecase, logger *slog.Logger) *StrainHandler {
	return &StrainHandler{
		uc:     uc,
		logger: logger,
	}
}

type createStrainRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Race        string   `json:"race" validate:"required"`
	Description string   `json:"description"`
	Effects     []string `json:"effects"`
	Flavors     []string `json:"flavors"`
}

type updateStrainRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=100"`
	Race        *string  `json:"race"`
	Description *string  `json:"description"`
	Effects     []string `json:"effects"`
	Flavors     []string `json:"flavors"`
}

type strainResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Race        string    `json:"race"`
	Description string    `json:"description"`
	Effects     []string  `json:"effects"`
	Flavors     []string  `json:"flavors"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type strainListResponse struct {
	Strains []strainResponse `json:"strains"`
	Total   int64            `json:"total"`
}

func toStrainResponse(strain *entity.Strain) strainResponse {
	return strainResponse{
		ID:          strain.ID,
		Name:        strain.Name,
		Race:        string(strain.Race),
		Description: strain.Description,
		Effects:     strain.Effects,
		Flavors:     strain.Flavors,
		CreatedAt:   strain.CreatedAt,
		UpdatedAt:   strain.UpdatedAt,
	}
}

// parsePagination reads limit/offset query parameters, tolerating absence.
func parsePagination(c echo.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	offset, _ = strconv.Atoi(c.QueryParam("offset"))

	return limit, offset
}

// parseIDParam parses the :id path parameter as a UUID.
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// ListStrains returns a page of the strain catalog.
func (h *StrainHandler) ListStrains(c echo.Context) error {
	limit, offset := parsePagination(c)

	output, err := h.uc.ListStrains(c.Request().Context(), &usecase.ListStrainsInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	strains := make([]strainResponse, 0, len(output.Strains))
	for _, strain := range output.Strains {
		strains = append(strains, toStrainResponse(strain))
	}

	return response.Success(c, http.StatusOK, strainListResponse{
		Strains: strains,
		Total:   output.Total,
	}, "")
}

// GetStrain returns a single strain.
func (h *StrainHandler) GetStrain(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid strain ID")
	}

	strain, err := h.uc.GetStrain(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStrainResponse(strain), "")
}

// CreateStrain adds a strain to the catalog.
func (h *StrainHandler) CreateStrain(c echo.Context) error {
	var req createStrainRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid strain input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid strain input")
	}

	strain, err := h.uc.CreateStrain(c.Request().Context(), &usecase.CreateStrainInput{
		Name:        req.Name,
		Race:        req.Race,
		Description: req.Description,
		Effects:     req.Effects,
		Flavors:     req.Flavors,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toStrainResponse(strain), "Strain created successfully")
}

// UpdateStrain applies a partial update to a strain.
func (h *StrainHandler) UpdateStrain(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid strain ID")
	}

	var req updateStrainRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid strain input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid strain input")
	}

	strain, err := h.uc.UpdateStrain(c.Request().Context(), id, &usecase.UpdateStrainInput{
		Name:        req.Name,
		Race:        req.Race,
		Description: req.Description,
		Effects:     req.Effects,
		Flavors:     req.Flavors,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStrainResponse(strain), "Strain updated successfully")
}

// DeleteStrain removes a strain from the catalog.
func (h *StrainHandler) DeleteStrain(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid strain ID")
	}

	if err := h.uc.DeleteStrain(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Strain deleted successfully")
}
