// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "bizdir/internal/delivery/context"
	"bizdir/internal/delivery/http/response"
	"bizdir/internal/domain/authz"
	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// callerFrom extracts the caller identity the auth middleware stored on the
// request. Routes without the middleware yield the anonymous caller.
func callerFrom(c echo.Context) authz.Caller {
	return deliverycontext.GetCaller(c.Request().Context())
}

// pathID parses the named path parameter as a numeric ID. A malformed value
// surfaces as a validation error for the error middleware to render, so the
// handler stops before reaching the usecase.
func pathID(c echo.Context, name string) (entity.ID, error) {
	id, err := entity.ParseID(c.Param(name))
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("invalid " + name + " in path")
	}

	return id, nil
}

// BusinessHandler holds dependencies for business-related handlers.
type BusinessHandler struct {
	uc     usecase.BusinessUsecase
	logger *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(uc usecase.BusinessUsecase, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles listing every business for the admin dashboard.
func (h *BusinessHandler) List(c echo.Context) error {
	businesses, err := h.uc.ListBusinesses(c.Request().Context(), callerFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses, "")
}

// Get handles fetching a single business by ID.
func (h *BusinessHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	business, err := h.uc.GetBusiness(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "")
}

// TopRated handles the home page's best-rated listings block.
func (h *BusinessHandler) TopRated(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_LIMIT", "Invalid limit query parameter")
		}
		limit = parsed
	}

	businesses, err := h.uc.GetTopRated(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses, "")
}

// ByCategory handles listing approved businesses in a category.
func (h *BusinessHandler) ByCategory(c echo.Context) error {
	categoryID, err := pathID(c, "categoryId")
	if err != nil {
		return err
	}

	businesses, err := h.uc.GetByCategory(c.Request().Context(), categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses, "")
}

// Search handles name search over approved businesses.
func (h *BusinessHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return response.BadRequest(c, "MISSING_QUERY", "Query parameter 'q' is required")
	}

	businesses, err := h.uc.SearchByName(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses, "")
}

// FilterByRating handles filtering approved businesses by minimum rating.
func (h *BusinessHandler) FilterByRating(c echo.Context) error {
	minRating, err := strconv.ParseFloat(c.QueryParam("min"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_RATING", "Query parameter 'min' must be a number")
	}

	businesses, err := h.uc.FilterByRating(c.Request().Context(), minRating)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses, "")
}

// Mine handles the owner dashboard listing.
func (h *BusinessHandler) Mine(c echo.Context) error {
	businesses, err := h.uc.GetMyBusinesses(c.Request().Context(), callerFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses, "")
}

// GetForEdit handles fetching a listing's edit form payload for its owner.
func (h *BusinessHandler) GetForEdit(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	business, err := h.uc.GetBusinessForEdit(c.Request().Context(), callerFrom(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "")
}

// Pending handles the admin moderation queue listing.
func (h *BusinessHandler) Pending(c echo.Context) error {
	businesses, err := h.uc.GetPendingBusinesses(c.Request().Context(), callerFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses, "")
}

// Create handles registering a new business listing.
func (h *BusinessHandler) Create(c echo.Context) error {
	var input usecase.CreateBusinessInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	business, err := h.uc.CreateBusiness(c.Request().Context(), callerFrom(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, business, "Business submitted for approval")
}

// Update handles editing a business listing.
func (h *BusinessHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateBusinessInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}

	business, err := h.uc.UpdateBusiness(c.Request().Context(), callerFrom(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business updated")
}

// Delete handles removing a business listing.
func (h *BusinessHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteBusiness(c.Request().Context(), callerFrom(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Business deleted")
}

// ApproveAll handles the bulk approval of every pending listing.
func (h *BusinessHandler) ApproveAll(c echo.Context) error {
	output, err := h.uc.ApproveAllPending(c.Request().Context(), callerFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, output.Message)
}

// ShareQR handles rendering the QR code image that links to a listing.
func (h *BusinessHandler) ShareQR(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.uc.GenerateShareQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
