package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/arnavshah/capacity-planner-api/pkg/config"
	"github.com/arnavshah/capacity-planner-api/pkg/database"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenTTL is how long an admin token stays valid
const TokenTTL = 24 * time.Hour

var jwtAlgorithm = jwt.SigningMethodHS256

// ErrInvalidKey is returned for malformed or forged API keys
var ErrInvalidKey = errors.New("invalid api key")

// Claims represents the JWT claims
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Authenticator signs and verifies admin tokens and API keys
type Authenticator struct {
	jwtSecret    []byte
	masterSecret []byte
	bcryptCost   int
	now          func() time.Time
}

// New creates an Authenticator from the service config
func New(cfg *config.Config) *Authenticator {
	return &Authenticator{
		jwtSecret:    []byte(cfg.JWTSecret),
		masterSecret: []byte(cfg.APIMasterSecret),
		bcryptCost:   14,
		now:          time.Now,
	}
}

// WithBcryptCost overrides the hashing cost; tests use bcrypt.MinCost
func (a *Authenticator) WithBcryptCost(cost int) *Authenticator {
	a.bcryptCost = cost
	return a
}

// HashPassword hashes a password using bcrypt
func (a *Authenticator) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with its hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// CreateToken creates a new JWT token for a user
func (a *Authenticator) CreateToken(username string) (string, error) {
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(a.now()),
			ExpiresAt: jwt.NewNumericDate(a.now().Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwtAlgorithm, claims)
	return token.SignedString(a.jwtSecret)
}

// VerifyToken verifies a JWT token
func (a *Authenticator) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwtAlgorithm {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return a.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// GenerateKey creates a signed API key of the form userID.hex(hmac)
func (a *Authenticator) GenerateKey(userID string) string {
	return userID + "." + a.sign(userID)
}

// VerifyKey validates an HMAC-signed API key and returns its user id
func (a *Authenticator) VerifyKey(key string) (string, error) {
	userID, providedSignature, ok := strings.Cut(key, ".")
	if !ok || userID == "" || strings.Contains(providedSignature, ".") {
		return "", fmt.Errorf("%w: bad format", ErrInvalidKey)
	}

	// constant-time comparison
	if !hmac.Equal([]byte(providedSignature), []byte(a.sign(userID))) {
		return "", fmt.Errorf("%w: bad signature", ErrInvalidKey)
	}

	return userID, nil
}

func (a *Authenticator) sign(userID string) string {
	h := hmac.New(sha256.New, a.masterSecret)
	h.Write([]byte(userID))
	return hex.EncodeToString(h.Sum(nil))
}

// KeyPreview masks a key for listing, e.g. "tea...9f2c"
func KeyPreview(key string) string {
	if len(key) > 8 {
		return key[:3] + "..." + key[len(key)-4:]
	}
	return "****"
}

// EnsureAdminExists creates the configured admin if no admin exists yet
func (a *Authenticator) EnsureAdminExists(db *gorm.DB, username, password string) error {
	var count int64
	if err := db.Model(&database.MasterUser{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := a.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	user := database.MasterUser{
		Username:     username,
		PasswordHash: hash,
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	log.Printf("auth: default admin user created username=%s", username)
	return nil
}
