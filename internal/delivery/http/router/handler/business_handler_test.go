package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	mockUC "bizdir/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type businessHandlerFixture struct {
	handler *BusinessHandler
	uc      *mockUC.MockBusinessUsecase
}

func newBusinessHandlerFixture(t *testing.T) businessHandlerFixture {
	uc := mockUC.NewMockBusinessUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return businessHandlerFixture{
		handler: NewBusinessHandler(uc, logger),
		uc:      uc,
	}
}

func newPathContext(method, target, name, value string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(name)
	c.SetParamValues(value)

	return c, rec
}

func TestBusinessHandler_Get_MalformedIDStopsBeforeUsecase(t *testing.T) {
	// The strict mock carries no expectations, so any usecase call fails
	// the test.
	fx := newBusinessHandlerFixture(t)
	c, rec := newPathContext(http.MethodGet, "/businesses/abc", "id", "abc")

	err := fx.handler.Get(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.False(t, c.Response().Committed)
	assert.Zero(t, rec.Body.Len())
}

func TestBusinessHandler_Update_MalformedIDStopsBeforeUsecase(t *testing.T) {
	fx := newBusinessHandlerFixture(t)
	c, rec := newPathContext(http.MethodPut, "/owner/businesses/abc", "id", "abc")

	err := fx.handler.Update(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Zero(t, rec.Body.Len())
}

func TestBusinessHandler_Delete_MalformedIDStopsBeforeUsecase(t *testing.T) {
	fx := newBusinessHandlerFixture(t)
	c, rec := newPathContext(http.MethodDelete, "/owner/businesses/abc", "id", "abc")

	err := fx.handler.Delete(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Zero(t, rec.Body.Len())
}

func TestBusinessHandler_Get_Success(t *testing.T) {
	fx := newBusinessHandlerFixture(t)
	c, rec := newPathContext(http.MethodGet, "/businesses/42", "id", "42")

	fx.uc.EXPECT().
		GetBusiness(c.Request().Context(), entity.ID(42)).
		Return(&entity.Business{ID: 42, Name: "Corner Cafe", Status: entity.StatusApproved}, nil)

	err := fx.handler.Get(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Corner Cafe")
}
