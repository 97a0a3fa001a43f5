package validators

import "strings"

// NormalizePhone reduz o telefone a dígitos (prefixo + opcional)
func NormalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsPhoneValid aceita números nacionais e E.164 curtos (7 a 15 dígitos)
func IsPhoneValid(phone string) bool {
	normalized := strings.TrimPrefix(NormalizePhone(phone), "+")
	if len(normalized) < 7 || len(normalized) > 15 {
		return false
	}
	for _, r := range normalized {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
