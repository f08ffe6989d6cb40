package models

// SharePermission — уровень доступа шоппера к чужой корзине.
// Уровни образуют линейный порядок: NONE < VIEW < EDIT < ADMIN.
type SharePermission string

const (
	// PermissionNone — явного доступа нет (записи в корзине отсутствует).
	PermissionNone SharePermission = ""
	// PermissionView — только просмотр корзины.
	PermissionView SharePermission = "VIEW"
	// PermissionEdit — добавление/отметка/удаление позиций.
	PermissionEdit SharePermission = "EDIT"
	// PermissionAdmin — полный доступ: шаринг, отзыв доступа, удаление корзины.
	PermissionAdmin SharePermission = "ADMIN"
)

// rank возвращает позицию уровня в линейном порядке.
// Неизвестные значения трактуются как NONE.
func (p SharePermission) rank() int {
	switch p {
	case PermissionView:
		return 1
	case PermissionEdit:
		return 2
	case PermissionAdmin:
		return 3
	default:
		return 0
	}
}

// AtLeast сообщает, покрывает ли уровень p требуемый уровень required.
func (p SharePermission) AtLeast(required SharePermission) bool {
	return p.rank() >= required.rank()
}

// Valid проверяет, что значение — один из трёх назначаемых уровней.
// PermissionNone назначить нельзя: отсутствие доступа выражается удалением записи.
func (p SharePermission) Valid() bool {
	return p == PermissionView || p == PermissionEdit || p == PermissionAdmin
}

// SharePermissionEntry — запись о доступе конкретного шоппера к корзине.
// Для пары (корзина, шоппер) существует не более одной записи.
type SharePermissionEntry struct {
	ShopperID  string          `bson:"shopper_id" json:"shopper_id"`
	Permission SharePermission `bson:"permission" json:"permission"`
}
