package handlers

import (
	"database/sql"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	intconfig "carrental-backend/internal/config"
)

var (
	jwtMu     sync.RWMutex
	jwtSecret = []byte("super-secret-key-change-me")
)

// SetJWTSecret installs the signing key from configuration. Call before the
// router starts serving.
func SetJWTSecret(secret string) {
	jwtMu.Lock()
	defer jwtMu.Unlock()
	jwtSecret = []byte(secret)
}

func signingKey() []byte {
	jwtMu.RLock()
	defer jwtMu.RUnlock()
	return jwtSecret
}

// AuthUser is the staff account payload returned by login/register.
type AuthUser struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	var (
		user         AuthUser
		passwordHash string
	)
	err := intconfig.DB.QueryRow(`
		SELECT id, name, username, email, password_hash, role
		FROM users
		WHERE username = ? OR email = ?
	`, req.Username, req.Username).Scan(
		&user.ID, &user.Name, &user.Username, &user.Email, &passwordHash, &user.Role,
	)
	if err == sql.ErrNoRows {
		RespondError(c, http.StatusUnauthorized, "invalid username or password", nil)
		return
	}
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load user", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		RespondError(c, http.StatusUnauthorized, "invalid username or password", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString(signingKey())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to sign token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tokenString, "user": user})
}

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Username) == "" || len(req.Password) < 8 {
		RespondError(c, http.StatusBadRequest, "username and a password of at least 8 characters are required", nil)
		return
	}

	var exists int
	err := intconfig.DB.QueryRow(`
		SELECT COUNT(*) FROM users WHERE username = ? OR email = ?
	`, req.Username, req.Email).Scan(&exists)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to check existing users", err)
		return
	}
	if exists > 0 {
		RespondError(c, http.StatusConflict, "username or email already registered", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO users (name, username, email, password_hash, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, 'staff', NOW(), NOW())
	`, req.Name, req.Username, req.Email, string(hash))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create user", err)
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{"user": AuthUser{
		ID:       id,
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Role:     "staff",
	}})
}
