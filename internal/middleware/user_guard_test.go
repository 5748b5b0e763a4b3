package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"shoppyglobe/internal/domain/model"
	"shoppyglobe/internal/repository"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func runGuard(userID interface{}, repo repository.UserRepository) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set(CtxUserIDKey, userID)
	}

	_ = UserGuard(repo)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	return rec
}

func TestUserGuard_UserExists(t *testing.T) {
	userRepo := new(UserRepoMock)
	userRepo.On("FindByID", mock.Anything, int64(42)).Return(&model.User{ID: 42}, nil)

	rec := runGuard(int64(42), userRepo)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// 退会済みユーザーの古いトークンは401
func TestUserGuard_UserDeleted(t *testing.T) {
	userRepo := new(UserRepoMock)
	userRepo.On("FindByID", mock.Anything, int64(42)).
		Return((*model.User)(nil), repository.ErrUserNotFound)

	rec := runGuard(int64(42), userRepo)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"User not found for this token"}`, rec.Body.String())
}

func TestUserGuard_MissingUserID(t *testing.T) {
	rec := runGuard(nil, new(UserRepoMock))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Not authorized, invalid token"}`, rec.Body.String())
}
