package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/migge/supershopcart/internal/models"
	"github.com/migge/supershopcart/internal/pkg/log"
	"github.com/migge/supershopcart/internal/pkg/redact"
	"github.com/migge/supershopcart/internal/storage"
)

// CreateCart создаёт корзину: создатель — владелец с неявным ADMIN,
// id корзины привязывается к его списку.
func (s *Service) CreateCart(ctx context.Context, creatorID, name string, items []models.GroceryItem) (*models.Cart, error) {
	const op = "service.carts.CreateCart"

	creator, err := s.storage.ShopperByID(ctx, creatorID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrShopperNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	cart := &models.Cart{
		ID:               uuid.NewString(),
		Name:             name,
		Items:            append([]models.GroceryItem{}, items...),
		ShopperIDs:       []string{creatorID},
		SharePermissions: []models.SharePermissionEntry{},
		CreatedBy:        creatorID,
		State:            models.CartStateActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.storage.SaveCart(ctx, cart); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	creator.AddCart(cart.ID)
	creator.UpdatedAt = now
	if err := s.storage.UpdateShopper(ctx, creator); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("cart_created",
		slog.String("op", op),
		slog.String("cart_id", cart.ID),
		slog.String("shopper_id", creatorID),
	)

	return cart, nil
}

// CartByID возвращает корзину; нужен уровень VIEW.
func (s *Service) CartByID(ctx context.Context, cartID, shopperID string) (*models.Cart, error) {
	const op = "service.carts.CartByID"

	cart, err := s.loadCart(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !cart.CanView(shopperID) {
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	return cart, nil
}

// CartsForShopper возвращает все корзины, где шоппер — участник.
func (s *Service) CartsForShopper(ctx context.Context, shopperID string) ([]models.Cart, error) {
	const op = "service.carts.CartsForShopper"

	carts, err := s.storage.CartsByShopper(ctx, shopperID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return carts, nil
}

// AddItem добавляет позицию в корзину; нужен уровень EDIT.
func (s *Service) AddItem(ctx context.Context, cartID, actorID string, item models.GroceryItem) (*models.Cart, error) {
	const op = "service.carts.AddItem"

	cart, err := s.loadCart(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !cart.CanEdit(actorID) {
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	cart.Items = append(cart.Items, item)
	cart.RefreshState()
	cart.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateCart(ctx, cart); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return cart, nil
}

// MarkItemPurchased отмечает позицию купленной/некупленной; нужен EDIT.
func (s *Service) MarkItemPurchased(ctx context.Context, cartID, actorID string, itemIndex int, purchased bool) (*models.Cart, error) {
	const op = "service.carts.MarkItemPurchased"

	cart, err := s.loadCart(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !cart.CanEdit(actorID) {
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	if itemIndex < 0 || itemIndex >= len(cart.Items) {
		return nil, fmt.Errorf("%s: %w", op, ErrItemNotFound)
	}

	cart.Items[itemIndex].Purchased = purchased
	cart.RefreshState()
	cart.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateCart(ctx, cart); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return cart, nil
}

// CompleteTrip завершает поход за покупками; нужен EDIT.
func (s *Service) CompleteTrip(ctx context.Context, cartID, actorID string) (*models.Cart, error) {
	const op = "service.carts.CompleteTrip"

	cart, err := s.loadCart(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !cart.CanEdit(actorID) {
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	now := time.Now().UTC()
	cart.Complete(now)
	cart.UpdatedAt = now

	if err := s.storage.UpdateCart(ctx, cart); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("cart_completed",
		slog.String("op", op),
		slog.String("cart_id", cartID),
		slog.String("shopper_id", actorID),
	)

	return cart, nil
}

// DeleteCart удаляет корзину; только создатель или ADMIN.
// Ссылки на корзину убираются из документов всех участников; сбой на одном
// участнике логируется и не прерывает остальных.
func (s *Service) DeleteCart(ctx context.Context, cartID, actorID string) error {
	const op = "service.carts.DeleteCart"

	lg := log.From(ctx)

	cart, err := s.loadCart(ctx, cartID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !cart.CanDelete(actorID) {
		return fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	if err := s.storage.DeleteCart(ctx, cartID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, shopperID := range cart.ShopperIDs {
		if err := s.detachCartFromShopper(ctx, shopperID, cartID); err != nil {
			lg.Warn("cart_detach_failed",
				slog.String("op", op),
				slog.String("cart_id", cartID),
				slog.String("shopper_id", shopperID),
				slog.String("err", err.Error()),
			)
		}
	}

	lg.Info("cart_deleted",
		slog.String("op", op),
		slog.String("cart_id", cartID),
		slog.String("shopper_id", actorID),
	)

	return nil
}

// ShareCart выдаёт target-шопперу уровень доступа к корзине.
// Правила: инициатор должен держать ADMIN; target ищется по email;
// шарить владельцу самому себе нельзя; повторный шаринг заменяет уровень,
// а не добавляет вторую запись.
func (s *Service) ShareCart(ctx context.Context, cartID, actorID, targetEmail string, permission models.SharePermission) error {
	const op = "service.carts.ShareCart"

	if !permission.Valid() {
		return fmt.Errorf("%s: %w", op, ErrInvalidPermission)
	}

	cart, err := s.loadCart(ctx, cartID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cart.PermissionOf(actorID) != models.PermissionAdmin {
		return fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	targetEmail, err = validateEmail(targetEmail)
	if err != nil {
		return fmt.Errorf("%s: %w", op, ErrTargetNotFound)
	}

	target, err := s.storage.ShopperByEmail(ctx, targetEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrTargetNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if target.ID == cart.CreatedBy {
		return fmt.Errorf("%s: %w", op, ErrCannotShareWithSelf)
	}

	now := time.Now().UTC()

	cart.AddOrUpdatePermission(target.ID, permission)
	cart.AddShopper(target.ID)
	cart.UpdatedAt = now

	if err := s.storage.UpdateCart(ctx, cart); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !target.HasCart(cartID) {
		target.AddCart(cartID)
		target.UpdatedAt = now
		if err := s.storage.UpdateShopper(ctx, target); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	log.From(ctx).Info("cart_shared",
		slog.String("op", op),
		slog.String("cart_id", cartID),
		slog.String("target_email", redact.Email(targetEmail)),
		slog.String("permission", string(permission)),
	)

	return nil
}

// UnshareCart отзывает доступ шоппера к корзине; нужен ADMIN у инициатора.
// Отзыв несуществующего доступа — успех-no-op.
func (s *Service) UnshareCart(ctx context.Context, cartID, actorID, targetShopperID string) error {
	const op = "service.carts.UnshareCart"

	cart, err := s.loadCart(ctx, cartID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cart.PermissionOf(actorID) != models.PermissionAdmin {
		return fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	removed := cart.RemovePermission(targetShopperID)
	cart.RemoveShopper(targetShopperID)
	cart.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateCart(ctx, cart); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.detachCartFromShopper(ctx, targetShopperID, cartID); err != nil {
		log.From(ctx).Warn("cart_detach_failed",
			slog.String("op", op),
			slog.String("cart_id", cartID),
			slog.String("shopper_id", targetShopperID),
			slog.String("err", err.Error()),
		)
	}

	if removed {
		log.From(ctx).Info("cart_unshared",
			slog.String("op", op),
			slog.String("cart_id", cartID),
			slog.String("target_id", targetShopperID),
		)
	}

	return nil
}

// loadCart — чтение корзины с маппингом storage.ErrNotFound.
func (s *Service) loadCart(ctx context.Context, cartID string) (*models.Cart, error) {
	cart, err := s.storage.CartByID(ctx, cartID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrCartNotFound
		}

		return nil, err
	}

	return cart, nil
}

// detachCartFromShopper убирает id корзины из документа шоппера.
// Отсутствие шоппера — не ошибка (аккаунт могли удалить).
func (s *Service) detachCartFromShopper(ctx context.Context, shopperID, cartID string) error {
	shopper, err := s.storage.ShopperByID(ctx, shopperID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}

		return err
	}

	if !shopper.HasCart(cartID) {
		return nil
	}

	shopper.RemoveCart(cartID)
	shopper.UpdatedAt = time.Now().UTC()

	return s.storage.UpdateShopper(ctx, shopper)
}
