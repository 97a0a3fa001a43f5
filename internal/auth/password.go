package auth

import "golang.org/x/crypto/bcrypt"

// Senhas nunca transitam nem ficam em claro: hash salgado no cadastro,
// comparação em tempo constante no login.

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
