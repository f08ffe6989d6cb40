// redact — хелперы для безопасного логирования чувствительных значений.
// Токены и пароли в логи не попадают никогда; email маскируется частично,
// чтобы записи оставались пригодными для отладки.
package redact

import "strings"

// Email маскирует локальную часть адреса: "shopper@example.com" -> "sh***@example.com".
func Email(s string) string {
	parts := strings.Split(s, "@")
	if len(parts) != 2 {
		return "***"
	}

	local, domain := parts[0], parts[1]
	if len(local) > 2 {
		local = local[:2] + "***"
	} else {
		local = "***"
	}

	return local + "@" + domain
}

// Token — плейсхолдер вместо любого access/refresh/identity токена.
func Token() string { return "[REDACTED_TOKEN]" }
