package models

import "time"

// CartState — состояние корзины в жизненном цикле покупки.
type CartState string

const (
	// CartStateActive — корзина наполняется, есть некупленные позиции.
	CartStateActive CartState = "ACTIVE"
	// CartStateShopping — все позиции отмечены купленными, но поход
	// ещё не завершён явно.
	CartStateShopping CartState = "SHOPPING"
	// CartStateCompleted — поход завершён шоппером вручную.
	CartStateCompleted CartState = "COMPLETED"
)

// GroceryItem — позиция списка покупок.
type GroceryItem struct {
	Designation string `bson:"designation" json:"designation"`
	Quantity    int    `bson:"quantity" json:"quantity"`
	Purchased   bool   `bson:"purchased" json:"purchased"`
}

// Cart — корзина покупок, расшариваемая между шопперами.
//
// CreatedBy — создатель корзины; он неявно владеет уровнем ADMIN и никогда
// не фигурирует в SharePermissions отдельной записью. ShopperIDs — все
// участники (создатель + те, кому корзина расшарена).
type Cart struct {
	ID               string                 `bson:"_id" json:"id"`
	Name             string                 `bson:"name" json:"name"`
	Items            []GroceryItem          `bson:"items" json:"items"`
	ShopperIDs       []string               `bson:"shopper_ids" json:"shopper_ids"`
	SharePermissions []SharePermissionEntry `bson:"share_permissions" json:"share_permissions"`
	CreatedBy        string                 `bson:"created_by" json:"created_by"`
	State            CartState              `bson:"state" json:"state"`
	CreatedAt        time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time              `bson:"updated_at" json:"updated_at"`
	CompletedAt      *time.Time             `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

// PermissionOf возвращает уровень доступа шоппера к корзине.
// Создатель всегда ADMIN, независимо от списка записей; для остальных —
// явная запись либо NONE.
func (c *Cart) PermissionOf(shopperID string) SharePermission {
	if shopperID == c.CreatedBy {
		return PermissionAdmin
	}

	for _, entry := range c.SharePermissions {
		if entry.ShopperID == shopperID {
			return entry.Permission
		}
	}

	return PermissionNone
}

// CanView — permission >= VIEW.
func (c *Cart) CanView(shopperID string) bool {
	return c.PermissionOf(shopperID).AtLeast(PermissionView)
}

// CanEdit — permission >= EDIT (EDIT и ADMIN проходят).
func (c *Cart) CanEdit(shopperID string) bool {
	return c.PermissionOf(shopperID).AtLeast(PermissionEdit)
}

// CanDelete — только создатель либо ADMIN.
func (c *Cart) CanDelete(shopperID string) bool {
	return c.PermissionOf(shopperID) == PermissionAdmin
}

// AddOrUpdatePermission выставляет уровень доступа шоппера.
// Существующая запись заменяется, дубликаты не накапливаются.
func (c *Cart) AddOrUpdatePermission(shopperID string, permission SharePermission) {
	for i := range c.SharePermissions {
		if c.SharePermissions[i].ShopperID == shopperID {
			c.SharePermissions[i].Permission = permission
			return
		}
	}

	c.SharePermissions = append(c.SharePermissions, SharePermissionEntry{
		ShopperID:  shopperID,
		Permission: permission,
	})
}

// RemovePermission удаляет запись о доступе шоппера.
// Возвращает true, если запись существовала; отсутствие записи — no-op.
func (c *Cart) RemovePermission(shopperID string) bool {
	for i := range c.SharePermissions {
		if c.SharePermissions[i].ShopperID == shopperID {
			c.SharePermissions = append(c.SharePermissions[:i], c.SharePermissions[i+1:]...)
			return true
		}
	}

	return false
}

// HasShopper сообщает, числится ли шоппер участником корзины.
func (c *Cart) HasShopper(shopperID string) bool {
	for _, id := range c.ShopperIDs {
		if id == shopperID {
			return true
		}
	}

	return false
}

// AddShopper добавляет участника (идемпотентно).
func (c *Cart) AddShopper(shopperID string) {
	if !c.HasShopper(shopperID) {
		c.ShopperIDs = append(c.ShopperIDs, shopperID)
	}
}

// RemoveShopper убирает участника из списка.
func (c *Cart) RemoveShopper(shopperID string) {
	for i, id := range c.ShopperIDs {
		if id == shopperID {
			c.ShopperIDs = append(c.ShopperIDs[:i], c.ShopperIDs[i+1:]...)
			return
		}
	}
}

// RefreshState пересчитывает состояние по позициям: все куплены — SHOPPING,
// появились некупленные — обратно ACTIVE. COMPLETED выставляется только
// явным действием (Complete), автоматом корзина туда не переходит.
func (c *Cart) RefreshState() {
	if c.State == CartStateCompleted {
		return
	}

	if len(c.Items) == 0 {
		c.State = CartStateActive
		return
	}

	allPurchased := true
	for _, item := range c.Items {
		if !item.Purchased {
			allPurchased = false
			break
		}
	}

	if allPurchased {
		c.State = CartStateShopping
	} else {
		c.State = CartStateActive
	}
}

// Complete завершает поход за покупками.
func (c *Cart) Complete(now time.Time) {
	c.State = CartStateCompleted
	c.CompletedAt = &now
}
