package auth

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor used for stored password hashes
const BcryptCost = 12

var (
	dummyOnce sync.Once
	dummyHash []byte
)

// dummyPasswordHash is compared against when no account matches a login
// identifier. It carries BcryptCost so both failure paths cost the same.
func dummyPasswordHash() []byte {
	dummyOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("alumnet-dummy-password"), BcryptCost)
	})
	return dummyHash
}

// HashPasswordWithCost hashes a password with an explicit bcrypt cost
func HashPasswordWithCost(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword reports whether password matches hashedPassword
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// SimulatePasswordCheck burns one comparison for an unknown identifier
func SimulatePasswordCheck(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyPasswordHash(), []byte(password))
}
