package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/migge/supershopcart/internal/models"
	"github.com/migge/supershopcart/internal/service"
	"github.com/migge/supershopcart/internal/transport/http/httperr"
	"github.com/migge/supershopcart/internal/transport/http/middleware"
)

// Handlers агрегирует зависимости (сервисный слой).
type Handlers struct {
	Service *service.Service
}

func New(s *service.Service) *Handlers {
	return &Handlers{Service: s}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через httperr.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// principal достаёт аутентифицированного шоппера из контекста;
// при отсутствии пишет 401 и возвращает ok=false.
func principal(w http.ResponseWriter, r *http.Request) (*middleware.Principal, bool) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		httperr.WriteError(w, r, httperr.ErrUnauthenticated)
		return nil, false
	}
	return p, true
}

// shopperResponse — представление шоппера наружу. PasswordHash не сериализуется
// уже на уровне модели, но наружу отдаём явный DTO.
type shopperResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Provider  string    `json:"provider"`
	CartIDs   []string  `json:"cart_ids"`
	CreatedAt time.Time `json:"created_at"`
}

func shopperToResponse(s *models.Shopper) shopperResponse {
	cartIDs := s.CartIDs
	if cartIDs == nil {
		cartIDs = []string{}
	}

	return shopperResponse{
		ID:        s.ID,
		Email:     s.Email,
		Name:      s.Name,
		Provider:  s.Provider,
		CartIDs:   cartIDs,
		CreatedAt: s.CreatedAt,
	}
}

// authResponse — ответ всех login/refresh эндпоинтов: пара токенов + шоппер.
type authResponse struct {
	AccessToken     string          `json:"access_token"`
	RefreshToken    string          `json:"refresh_token"`
	AccessExpiresAt time.Time       `json:"access_expires_at"`
	Shopper         shopperResponse `json:"shopper"`
}

func authToResponse(pair *models.TokenPair, shopper *models.Shopper) authResponse {
	return authResponse{
		AccessToken:     pair.AccessToken,
		RefreshToken:    pair.RefreshToken,
		AccessExpiresAt: pair.AccessExpiresAt,
		Shopper:         shopperToResponse(shopper),
	}
}

// itemResponse / cartResponse — представление корзины наружу.
type itemResponse struct {
	Designation string `json:"designation"`
	Quantity    int    `json:"quantity"`
	Purchased   bool   `json:"purchased"`
}

type permissionResponse struct {
	ShopperID  string `json:"shopper_id"`
	Permission string `json:"permission"`
}

type cartResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Items       []itemResponse       `json:"items"`
	ShopperIDs  []string             `json:"shopper_ids"`
	Permissions []permissionResponse `json:"permissions"`
	CreatedBy   string               `json:"created_by"`
	State       string               `json:"state"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	CompletedAt *time.Time           `json:"completed_at,omitempty"`
}

func cartToResponse(c *models.Cart) cartResponse {
	items := make([]itemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, itemResponse{
			Designation: it.Designation,
			Quantity:    it.Quantity,
			Purchased:   it.Purchased,
		})
	}

	perms := make([]permissionResponse, 0, len(c.SharePermissions))
	for _, p := range c.SharePermissions {
		perms = append(perms, permissionResponse{
			ShopperID:  p.ShopperID,
			Permission: string(p.Permission),
		})
	}

	shopperIDs := c.ShopperIDs
	if shopperIDs == nil {
		shopperIDs = []string{}
	}

	return cartResponse{
		ID:          c.ID,
		Name:        c.Name,
		Items:       items,
		ShopperIDs:  shopperIDs,
		Permissions: perms,
		CreatedBy:   c.CreatedBy,
		State:       string(c.State),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		CompletedAt: c.CompletedAt,
	}
}
