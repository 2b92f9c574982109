package utils

import "golang.org/x/crypto/bcrypt"

// HashLoginCode hashes an employee login code with bcrypt
func HashLoginCode(code string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckLoginCode compares a login code against its bcrypt hash
func CheckLoginCode(code, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}
