package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/migge/supershopcart/internal/config"
	"github.com/migge/supershopcart/internal/models"
	"github.com/migge/supershopcart/internal/service"
	"github.com/migge/supershopcart/internal/storage"
	"github.com/migge/supershopcart/mocks"
)

type testEnv struct {
	handler http.Handler
	svc     *service.Service
	st      *mocks.MockStorage
	vf      *mocks.MockVerifier
}

func newTestEnv(t *testing.T, mutate func(*config.AuthConfig), opts Options) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	st := mocks.NewMockStorage(ctrl)
	vf := mocks.NewMockVerifier(ctrl)

	cfg := config.AuthConfig{
		JWTSecret:       "router-test-secret",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
		Issuer:          "supershopcart",
		Audience:        []string{"supershopcart-app"},
	}
	if mutate != nil {
		mutate(&cfg)
	}

	svc := service.New(st, vf, cfg)

	return &testEnv{
		handler: NewRouter(svc, opts),
		svc:     svc,
		st:      st,
		vf:      vf,
	}
}

func doJSON(t *testing.T, h http.Handler, method, target, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

type errBody struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
	} `json:"error"`
}

func decodeErr(t *testing.T, rr *httptest.ResponseRecorder) errBody {
	t.Helper()
	var out errBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

// Собранный роутер несёт весь стек middleware: ответ получает X-Request-Id,
// а идентификатор, заданный клиентом, попадает и в конверт ошибки.
func TestRouter_MiddlewareStackApplied(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, Options{Timeout: time.Second})

	rr := doJSON(t, env.handler, http.MethodGet, "/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Len(t, rr.Header().Get("X-Request-Id"), 32)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("X-Request-Id", "fixed-id-1")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, "fixed-id-1", rec.Header().Get("X-Request-Id"))
	require.Equal(t, "fixed-id-1", decodeErr(t, rec).Error.RequestID)
}

func TestRouter_RegisterThenMe(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, Options{})

	var saved *models.Shopper
	env.st.EXPECT().ShopperByEmail(gomock.Any(), "user@example.com").Return(nil, storage.ErrNotFound)
	env.st.EXPECT().SaveShopper(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sh *models.Shopper) error {
			saved = sh
			return nil
		})
	env.st.EXPECT().SaveRefreshToken(gomock.Any(), gomock.Any()).Return(nil)

	rr := doJSON(t, env.handler, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "user@example.com",
		"password": "Abcdef1!",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var auth struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		Shopper      struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"shopper"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &auth))
	require.NotEmpty(t, auth.AccessToken)
	require.NotEmpty(t, auth.RefreshToken)
	require.Equal(t, "user@example.com", auth.Shopper.Email)

	env.st.EXPECT().ShopperByID(gomock.Any(), saved.ID).Return(saved, nil)

	rr = doJSON(t, env.handler, http.MethodGet, "/me", auth.AccessToken, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var me struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &me))
	require.Equal(t, "user@example.com", me.Email)
}

func TestRouter_MeWithoutToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, Options{})

	rr := doJSON(t, env.handler, http.MethodGet, "/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Equal(t, "unauthenticated", decodeErr(t, rr).Error.Code)
}

func TestRouter_MeWithGarbageToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, Options{})

	rr := doJSON(t, env.handler, http.MethodGet, "/me", "garbage-token", nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouter_RegisterValidation(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, Options{})

	rr := doJSON(t, env.handler, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "not-an-email",
		"password": "Abcdef1!",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid_argument", decodeErr(t, rr).Error.Code)

	rr = doJSON(t, env.handler, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "user@example.com",
		"password": "weak",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	// Неизвестное поле режется строгим декодером.
	rr = doJSON(t, env.handler, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "user@example.com",
		"password": "Abcdef1!",
		"extra":    "nope",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRouter_LoginWrongPassword(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, Options{})

	env.st.EXPECT().ShopperByEmail(gomock.Any(), "user@example.com").
		Return(nil, storage.ErrNotFound)

	rr := doJSON(t, env.handler, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "user@example.com",
		"password": "Wrong1!pass",
	})
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Equal(t, "unauthenticated", decodeErr(t, rr).Error.Code)
}

func TestRouter_RefreshReplay(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, Options{})

	env.st.EXPECT().RefreshTokenByHash(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)

	rr := doJSON(t, env.handler, http.MethodPost, "/auth/refresh", "", map[string]string{
		"refresh_token": "already-rotated",
	})
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouter_DevLoginRouteDisabledByDefault(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, Options{})

	rr := doJSON(t, env.handler, http.MethodPost, "/auth/dev/login", "", map[string]string{
		"email": "dev@example.com",
	})
	// Роут не зарегистрирован вовсе.
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_DevLoginEnabled(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, func(cfg *config.AuthConfig) {
		cfg.UnsafeDevLogin = true
	}, Options{EnableDevLogin: true})

	env.st.EXPECT().ShopperByEmail(gomock.Any(), "dev@example.com").Return(nil, storage.ErrNotFound)
	env.st.EXPECT().SaveShopper(gomock.Any(), gomock.Any()).Return(nil)
	env.st.EXPECT().SaveRefreshToken(gomock.Any(), gomock.Any()).Return(nil)

	rr := doJSON(t, env.handler, http.MethodPost, "/auth/dev/login", "", map[string]string{
		"email": "dev@example.com",
	})
	require.Equal(t, http.StatusOK, rr.Code)
}

// seedPrincipal регистрирует шоппера через /auth/register и возвращает
// его access-токен и документ.
func seedPrincipal(t *testing.T, env *testEnv, email string) (string, *models.Shopper) {
	t.Helper()

	var saved *models.Shopper
	env.st.EXPECT().ShopperByEmail(gomock.Any(), email).Return(nil, storage.ErrNotFound)
	env.st.EXPECT().SaveShopper(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sh *models.Shopper) error {
			saved = sh
			return nil
		})
	env.st.EXPECT().SaveRefreshToken(gomock.Any(), gomock.Any()).Return(nil)

	rr := doJSON(t, env.handler, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    email,
		"password": "Abcdef1!",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var auth struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &auth))

	// Ворота аутентификации резолвят принципала на каждом запросе.
	env.st.EXPECT().ShopperByID(gomock.Any(), saved.ID).Return(saved, nil).AnyTimes()

	return auth.AccessToken, saved
}

func TestRouter_CartForbiddenAndNotFound(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, Options{})
	token, _ := seedPrincipal(t, env, "user@example.com")

	foreign := &models.Cart{
		ID:         "cart-1",
		ShopperIDs: []string{"someone-else"},
		CreatedBy:  "someone-else",
		State:      models.CartStateActive,
	}

	env.st.EXPECT().CartByID(gomock.Any(), "cart-1").Return(foreign, nil)
	rr := doJSON(t, env.handler, http.MethodGet, "/carts/cart-1", token, nil)
	require.Equal(t, http.StatusForbidden, rr.Code)
	require.Equal(t, "permission_denied", decodeErr(t, rr).Error.Code)

	env.st.EXPECT().CartByID(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)
	rr = doJSON(t, env.handler, http.MethodGet, "/carts/missing", token, nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_CreateCart(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, Options{})
	token, shopper := seedPrincipal(t, env, "user@example.com")

	env.st.EXPECT().SaveCart(gomock.Any(), gomock.Any()).Return(nil)
	env.st.EXPECT().UpdateShopper(gomock.Any(), gomock.Any()).Return(nil)

	rr := doJSON(t, env.handler, http.MethodPost, "/carts", token, map[string]any{
		"name": "weekly",
		"items": []map[string]any{
			{"designation": "milk", "quantity": 2},
		},
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var cart struct {
		ID        string `json:"id"`
		CreatedBy string `json:"created_by"`
		State     string `json:"state"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cart))
	require.NotEmpty(t, cart.ID)
	require.Equal(t, shopper.ID, cart.CreatedBy)
	require.Equal(t, "ACTIVE", cart.State)
}

func TestRouter_CreateCart_BadItem(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, Options{})
	token, _ := seedPrincipal(t, env, "user@example.com")

	rr := doJSON(t, env.handler, http.MethodPost, "/carts", token, map[string]any{
		"name": "weekly",
		"items": []map[string]any{
			{"designation": "", "quantity": 0},
		},
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRouter_ShareCart_TargetNotFound(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, Options{})
	token, shopper := seedPrincipal(t, env, "user@example.com")

	own := &models.Cart{
		ID:         "cart-1",
		ShopperIDs: []string{shopper.ID},
		CreatedBy:  shopper.ID,
		State:      models.CartStateActive,
	}

	env.st.EXPECT().CartByID(gomock.Any(), "cart-1").Return(own, nil)
	env.st.EXPECT().ShopperByEmail(gomock.Any(), "ghost@example.com").Return(nil, storage.ErrNotFound)

	rr := doJSON(t, env.handler, http.MethodPost, "/carts/cart-1/share", token, map[string]string{
		"email":      "ghost@example.com",
		"permission": "VIEW",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid_argument", decodeErr(t, rr).Error.Code)
}

func TestRouter_LogoutAll(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, Options{})
	token, shopper := seedPrincipal(t, env, "user@example.com")

	env.st.EXPECT().DeleteRefreshTokensByShopper(gomock.Any(), shopper.ID).Return(int64(2), nil)

	rr := doJSON(t, env.handler, http.MethodPost, "/auth/logout_all", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var out struct {
		SessionsRevoked int64 `json:"sessions_revoked"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Equal(t, int64(2), out.SessionsRevoked)
}
