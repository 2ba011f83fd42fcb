package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dtroode/carechain-server/internal/model"
)

// Claims represents JWT claims with the token type.
//
// Identity tokens carry the caller in Subject. Trustee consent tokens carry
// the trustee in Subject and the patient it consents to in Audience.
type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"typ"`
}

// JWT issues and verifies identity and trustee consent tokens signed with HMAC.
type JWT struct {
	secretKey   string
	identityTTL time.Duration
	consentTTL  time.Duration
}

const (
	defaultIdentityTTL = 15 * time.Minute
	defaultConsentTTL  = 10 * time.Minute
	typeIdentity       = "identity"
	typeConsent        = "trustee_consent"
)

var ErrInvalidToken = errors.New("invalid token")

// Option configures JWT.
type Option func(*JWT)

// WithIdentityTTL sets the lifetime of issued identity tokens.
func WithIdentityTTL(ttl time.Duration) Option {
	return func(j *JWT) { j.identityTTL = ttl }
}

// WithConsentTTL sets the lifetime of issued trustee consent tokens.
func WithConsentTTL(ttl time.Duration) Option {
	return func(j *JWT) { j.consentTTL = ttl }
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string, opts ...Option) *JWT {
	j := &JWT{
		secretKey:   secretKey,
		identityTTL: defaultIdentityTTL,
		consentTTL:  defaultConsentTTL,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// GenerateIdentityToken creates a short-lived token asserting identity.
func (j *JWT) GenerateIdentityToken(identity model.Identity) (string, error) {
	if identity.IsZero() {
		return "", fmt.Errorf("%w: empty identity", ErrInvalidToken)
	}
	return j.sign(Claims{
		RegisteredClaims: j.registered(identity, j.identityTTL),
		TokenType:        typeIdentity,
	})
}

// ParseIdentityToken validates the token and returns the identity it asserts.
func (j *JWT) ParseIdentityToken(tokenString string) (model.Identity, error) {
	claims, err := j.parse(tokenString, typeIdentity)
	if err != nil {
		return "", fmt.Errorf("failed to parse identity token: %w", err)
	}
	return model.Identity(claims.Subject), nil
}

// GenerateTrusteeConsent creates a token in which trustee agrees to act as a
// proxy of patient.
func (j *JWT) GenerateTrusteeConsent(trustee, patient model.Identity) (string, error) {
	if trustee.IsZero() || patient.IsZero() {
		return "", fmt.Errorf("%w: empty identity", ErrInvalidToken)
	}
	registered := j.registered(trustee, j.consentTTL)
	registered.Audience = jwt.ClaimStrings{patient.String()}
	return j.sign(Claims{
		RegisteredClaims: registered,
		TokenType:        typeConsent,
	})
}

// ParseTrusteeConsent validates a consent token and returns its parties.
func (j *JWT) ParseTrusteeConsent(tokenString string) (model.Identity, model.Identity, error) {
	claims, err := j.parse(tokenString, typeConsent)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse trustee consent: %w", err)
	}
	if len(claims.Audience) != 1 {
		return "", "", fmt.Errorf("%w: consent must name exactly one patient", ErrInvalidToken)
	}
	return model.Identity(claims.Subject), model.Identity(claims.Audience[0]), nil
}

func (j *JWT) registered(subject model.Identity, ttl time.Duration) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		Subject:   subject.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (j *JWT) sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", claims.TokenType, err)
	}

	return tokenString, nil
}

func (j *JWT) parse(tokenString, wantType string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != wantType {
		return nil, fmt.Errorf("%w: token type mismatch: %s", ErrInvalidToken, claims.TokenType)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}
	return claims, nil
}
