package middleware

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/carechain-server/internal/logger"
	"github.com/dtroode/carechain-server/internal/model"
)

// IdentityParser resolves the caller identity from bearer tokens.
type IdentityParser interface {
	ParseIdentityToken(token string) (model.Identity, error)
}

var (
	errMissingToken = errors.New("missing authorization token")
	errInvalidToken = errors.New("invalid authorization token")
)

// Authenticate validates bearer tokens and injects the caller identity into context.
type Authenticate struct {
	identityParser IdentityParser
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(identityParser IdentityParser, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{identityParser: identityParser, contextManager: contextManager, logger: logger}
}

// AuthFunc parses Authorization header, validates token and returns a context with the caller.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	var tokenString string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if authHeaders := md.Get("authorization"); len(authHeaders) > 0 {
			tokenString = strings.TrimPrefix(authHeaders[0], "Bearer ")
		}
	}

	caller, authErr := m.authenticate(tokenString)
	if authErr != nil {
		return nil, status.Error(codes.Unauthenticated, authErr.Error())
	}

	return m.contextManager.SetCallerToContext(ctx, caller), nil
}

func (m *Authenticate) authenticate(tokenString string) (model.Identity, error) {
	if tokenString == "" {
		return "", errMissingToken
	}

	caller, err := m.identityParser.ParseIdentityToken(tokenString)
	if err != nil {
		m.logger.Debug("Authenticate: token rejected", "error", err.Error())
		return "", errInvalidToken
	}

	if caller.IsZero() {
		return "", errInvalidToken
	}

	return caller, nil
}
