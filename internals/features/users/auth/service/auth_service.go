// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"skripsiku_backend/internals/configs"
	"skripsiku_backend/internals/constants"
	authHelper "skripsiku_backend/internals/features/users/auth/helper"
	authRepo "skripsiku_backend/internals/features/users/auth/repository"
	userModel "skripsiku_backend/internals/features/users/user/model"
	helpers "skripsiku_backend/internals/helpers"
)

/* ==========================
   REGISTER
   POST /api/auth/register
========================== */

type RegisterInput struct {
	UserName      string  `json:"user_name" validate:"required,min=3,max=50"`
	FullName      string  `json:"full_name" validate:"required,min=3,max=100"`
	Email         string  `json:"email" validate:"required,email"`
	Password      string  `json:"password" validate:"required,min=8"`
	StudentNumber *string `json:"student_number,omitempty" validate:"omitempty,min=5,max=20"`
	FacultyID     *string `json:"faculty_id,omitempty" validate:"omitempty,uuid4"`
	MajorID       *string `json:"major_id,omitempty" validate:"omitempty,uuid4"`
}

func Register(db *gorm.DB, c *fiber.Ctx, in RegisterInput) error {
	if err := authHelper.ValidateRegister(in.UserName, in.Email, in.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	// email/user_name harus unik
	if _, err := authRepo.FindUserByEmailOrUsername(db, in.Email); err == nil {
		return helpers.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}
	if _, err := authRepo.FindUserByEmailOrUsername(db, in.UserName); err == nil {
		return helpers.JsonError(c, fiber.StatusConflict, "Username sudah dipakai")
	}

	hashed, err := authHelper.HashPassword(in.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	user := userModel.UserModel{
		UserName:      strings.TrimSpace(in.UserName),
		FullName:      strings.TrimSpace(in.FullName),
		Email:         strings.ToLower(strings.TrimSpace(in.Email)),
		Password:      hashed,
		Role:          constants.RoleStudent, // registrasi publik selalu mahasiswa
		StudentNumber: in.StudentNumber,
	}
	user.SetDefaultValues()
	if in.FacultyID != nil {
		if id, err := parseUUIDPtr(*in.FacultyID); err == nil {
			user.FacultyID = id
		}
	}
	if in.MajorID != nil {
		if id, err := parseUUIDPtr(*in.MajorID); err == nil {
			user.MajorID = id
		}
	}

	if err := authRepo.CreateUser(db, &user); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	user.Password = ""
	return helpers.JsonCreated(c, "Registrasi berhasil", user)
}

/* ==========================
   LOGIN
   POST /api/auth/login
========================== */

type LoginInput struct {
	Identifier string `json:"identifier" validate:"required"` // email atau user_name
	Password   string `json:"password" validate:"required"`
}

func Login(db *gorm.DB, c *fiber.Ctx, in LoginInput) error {
	user, err := authRepo.FindUserByEmailOrUsername(db, strings.TrimSpace(in.Identifier))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Email/username atau password salah")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	if err := authHelper.CheckPasswordHash(user.Password, in.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email/username atau password salah")
	}

	pair, err := issueTokens(db, c, *user)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	user.Password = ""
	return helpers.JsonOK(c, "Login berhasil", fiber.Map{
		"user":   user,
		"tokens": pair,
	})
}

/* ==========================
   LOGIN GOOGLE
   POST /api/auth/login-google
========================== */

type LoginGoogleInput struct {
	IDToken string `json:"id_token" validate:"required"`
}

func LoginGoogle(db *gorm.DB, c *fiber.Ctx, in LoginGoogleInput) error {
	clientID := strings.TrimSpace(configs.GoogleClientID)
	if clientID == "" {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "GOOGLE_CLIENT_ID belum diset")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(in.IDToken, []string{clientID}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "ID token Google tidak valid")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(in.IDToken)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Gagal decode ID token Google")
	}

	// cari by google_id dulu, fallback by email
	user, err := authRepo.FindUserByGoogleID(db, claimSet.Sub)
	if err != nil {
		user, err = authRepo.FindUserByEmail(db, strings.ToLower(claimSet.Email))
		if err != nil {
			return helpers.JsonError(c, fiber.StatusNotFound, "Akun belum terdaftar. Silakan registrasi terlebih dahulu.")
		}
		// tautkan google_id ke akun lama
		if user.GoogleID == nil {
			sub := claimSet.Sub
			if err := db.Model(user).Update("google_id", sub).Error; err != nil {
				log.Printf("[auth] gagal menautkan google_id: %v", err)
			}
			user.GoogleID = &sub
		}
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	pair, err := issueTokens(db, c, *user)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	user.Password = ""
	return helpers.JsonOK(c, "Login Google berhasil", fiber.Map{
		"user":   user,
		"tokens": pair,
	})
}

/* ==========================
   LOGOUT
   POST /api/auth/logout
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	// blacklist access token yang sedang dipakai
	auth := strings.TrimSpace(c.Get("Authorization"))
	fields := strings.Fields(auth)
	if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		token := fields[1]
		expiredAt := time.Now().Add(accessTTLDefault)
		// pakai exp asli token kalau bisa dibaca
		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(configs.JWTSecret), nil
		}); err == nil {
			if exp, ok := claims["exp"].(float64); ok {
				expiredAt = time.Unix(int64(exp), 0)
			}
		}
		if err := authRepo.BlacklistToken(db, token, expiredAt); err != nil {
			log.Printf("[logout] gagal blacklist token: %v", err)
		}
	}

	// cabut semua refresh token user
	if userID, err := helpers.GetUserIDFromToken(c); err == nil {
		if err := authRepo.RevokeAllRefreshTokens(db, userID); err != nil {
			log.Printf("[logout] gagal revoke refresh token: %v", err)
		}
	}

	// hapus cookie refresh
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})

	return helpers.JsonOK(c, "Logout berhasil", nil)
}
