package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// AccessTokenExpiry is the duration for which access tokens are valid.
	AccessTokenExpiry = 15 * time.Minute
	// RefreshTokenExpiry is the duration for which refresh tokens are valid.
	RefreshTokenExpiry = 7 * 24 * time.Hour
)

// Token types carried in the typ claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	errUnexpectedSigningMethod = errors.New("unexpected signing method")
	errInvalidToken            = errors.New("invalid token")
	errMissingTokenID          = errors.New("token ID not found")

	// ErrWrongTokenType is returned when a token is used outside its purpose,
	// such as a refresh token presented as a bearer token.
	ErrWrongTokenType = errors.New("wrong token type")
)

// Claims are the JWT claims issued to dashboard admins.
type Claims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	Type    string `json:"typ"`
	jwt.RegisteredClaims
}

// JWTService handles JWT token generation and validation.
type JWTService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Secret returns the signing key, for wiring the echo JWT middleware.
func (s *JWTService) Secret() []byte {
	return s.secret
}

// GenerateAccessToken generates a new access token for the admin.
func (s *JWTService) GenerateAccessToken(adminID, email string) (string, error) {
	return s.sign(s.claims(TokenTypeAccess, adminID, email, uuid.NewString(), AccessTokenExpiry))
}

// GenerateRefreshToken generates a new refresh token for the admin.
// The refresh token ID is returned separately for storage in Redis.
func (s *JWTService) GenerateRefreshToken(adminID, email string) (tokenID string, token string, err error) {
	tokenID = uuid.NewString()
	token, err = s.sign(s.claims(TokenTypeRefresh, adminID, email, tokenID, RefreshTokenExpiry))
	return tokenID, token, err
}

func (s *JWTService) claims(typ, adminID, email, tokenID string, ttl time.Duration) *Claims {
	now := s.now()
	return &Claims{
		AdminID: adminID,
		Email:   email,
		Type:    typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   adminID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
}

func (s *JWTService) sign(claims *Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ValidateToken validates a JWT token and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedSigningMethod
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errInvalidToken
	}
	return claims, nil
}

// ValidateRefreshToken validates a token and requires it to be a refresh token.
func (s *JWTService) ValidateRefreshToken(tokenString string) (*Claims, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Type != TokenTypeRefresh {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}

// ExtractTokenID extracts the token ID (JTI) from a refresh token.
func (s *JWTService) ExtractTokenID(tokenString string) (string, error) {
	claims, err := s.ValidateRefreshToken(tokenString)
	if err != nil {
		return "", err
	}
	if claims.ID == "" {
		return "", errMissingTokenID
	}
	return claims.ID, nil
}
