package handler

import (
	"log/slog"
	"net/http"

	"bizdir/internal/delivery/http/response"
	"bizdir/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler holds dependencies for favorite-related handlers.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		uc:     uc,
		logger: logger,
	}
}

// Mine handles listing the caller's favorites.
func (h *FavoriteHandler) Mine(c echo.Context) error {
	favorites, err := h.uc.GetMyFavorites(c.Request().Context(), callerFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favorites, "")
}

// Add handles bookmarking a business. Repeating the call is a no-op.
func (h *FavoriteHandler) Add(c echo.Context) error {
	businessID, err := pathID(c, "businessId")
	if err != nil {
		return err
	}

	output, err := h.uc.AddFavorite(c.Request().Context(), callerFrom(c), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	status := http.StatusOK
	message := "Business already in favorites"
	if output.Created {
		status = http.StatusCreated
		message = "Business added to favorites"
	}

	return response.Success(c, status, output, message)
}

// Remove handles deleting a bookmark.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	businessID, err := pathID(c, "businessId")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveFavorite(c.Request().Context(), callerFrom(c), businessID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Business removed from favorites")
}
