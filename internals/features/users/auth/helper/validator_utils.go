package helper

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validasi Email (regex simple)
var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// ValidateRegister: validasi minimal di luar validator struct (dipakai seeder juga)
func ValidateRegister(userName, email, password string) error {
	if len(strings.TrimSpace(userName)) < 3 {
		return errors.New("user_name minimal 3 karakter")
	}
	if !IsValidEmail(email) {
		return errors.New("format email tidak valid")
	}
	if len(password) < 8 {
		return errors.New("password minimal 8 karakter")
	}
	return nil
}

// ValidateResetPassword: dipakai password_service
func ValidateResetPassword(email, newPassword string) error {
	if !IsValidEmail(email) {
		return errors.New("format email tidak valid")
	}
	if len(newPassword) < 8 {
		return errors.New("password minimal 8 karakter")
	}
	return nil
}
