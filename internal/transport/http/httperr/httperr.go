// httperr стандартизирует ответы об ошибках HTTP-слоя.
// На вход — ошибка сервисного слоя (сентинелы из пакета service),
// на выход — корректный HTTP-статус и краткое безопасное message
// без утечки внутренних деталей.
//
// Маппинг:
//   - валидационные ошибки (email/пароль/уровень доступа/target) -> 400;
//   - ошибки аутентификации (токены, credentials, identity) -> 401;
//   - нехватка уровня доступа -> 403;
//   - отсутствующие корзина/позиция/шоппер -> 404;
//   - конфликт email -> 409;
//   - всё прочее (инфраструктура) -> 500/internal.
package httperr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/migge/supershopcart/internal/service"
)

// APIError — единый формат ошибки для клиента.
// Code — короткий стабильный код для машиночитаемой обработки.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку сервисного слоя в HTTP-статус и унифицированный
// ответ. err == nil — это программная ошибка вызова: возвращаем 500/internal,
// чтобы не отдать "200 OK" с телом ошибки и не замаскировать баг.
func ToHTTP(err error) (int, ErrorResponse) {
	status, code, msg := classify(err)

	return status, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров: пишет статус/тело,
// добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// ErrBadRequest — локальная ошибка парсинга запроса (битый JSON и т.п.).
var ErrBadRequest = errors.New("bad request")

// ErrUnauthenticated — у запроса нет принципала, а эндпоинт его требует.
var ErrUnauthenticated = errors.New("unauthenticated")

func classify(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "internal", "internal error"

	case errors.Is(err, ErrBadRequest),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrEmptyPassword),
		errors.Is(err, service.ErrInvalidPermission),
		errors.Is(err, service.ErrTargetNotFound),
		errors.Is(err, service.ErrCannotShareWithSelf):
		return http.StatusBadRequest, "invalid_argument", safeMessage(err)

	case errors.Is(err, ErrUnauthenticated),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrIdentityRejected),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrTokenExpired),
		errors.Is(err, service.ErrTokenNotFound),
		errors.Is(err, service.ErrDevLoginDisabled):
		return http.StatusUnauthorized, "unauthenticated", "unauthenticated"

	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, "permission_denied", "permission denied"

	case errors.Is(err, service.ErrCartNotFound),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrShopperNotFound):
		return http.StatusNotFound, "not_found", "not found"

	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict, "already_exists", "email already taken"

	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}

// safeMessage отдаёт текст сентинела без обёрток "op: ...".
func safeMessage(err error) string {
	for _, sentinel := range []error{
		ErrBadRequest,
		service.ErrInvalidEmail,
		service.ErrWeakPassword,
		service.ErrEmptyPassword,
		service.ErrInvalidPermission,
		service.ErrTargetNotFound,
		service.ErrCannotShareWithSelf,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}

	return "invalid argument"
}
