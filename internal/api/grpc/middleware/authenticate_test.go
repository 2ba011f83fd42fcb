package middleware

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/carechain-server/internal/mocks"
	"github.com/dtroode/carechain-server/internal/model"
	"github.com/dtroode/carechain-server/internal/testutil"
)

type ctxKey struct{}

func TestAuthenticate_AuthFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		mdAuthHeader string
		parsedCaller model.Identity
		parseErr     error
		wantGRPCCode codes.Code
		expectParse  bool
		expectSetCtx bool
	}{
		{
			name:         "missing authorization header",
			wantGRPCCode: codes.Unauthenticated,
		},
		{
			name:         "empty bearer",
			mdAuthHeader: "Bearer ",
			wantGRPCCode: codes.Unauthenticated,
		},
		{
			name:         "invalid token",
			mdAuthHeader: "Bearer invalid",
			parseErr:     errors.New("signature is invalid"),
			wantGRPCCode: codes.Unauthenticated,
			expectParse:  true,
		},
		{
			name:         "blank identity from token",
			mdAuthHeader: "Bearer token",
			parsedCaller: " ",
			wantGRPCCode: codes.Unauthenticated,
			expectParse:  true,
		},
		{
			name:         "valid token",
			mdAuthHeader: "Bearer token",
			parsedCaller: "0xpatient",
			wantGRPCCode: codes.OK,
			expectParse:  true,
			expectSetCtx: true,
		},
		{
			name:         "valid token without bearer prefix",
			mdAuthHeader: "token",
			parsedCaller: "0xpatient",
			wantGRPCCode: codes.OK,
			expectParse:  true,
			expectSetCtx: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cm := mocks.NewContextManager(t)
			parser := mocks.NewIdentityParser(t)

			if tt.expectParse {
				parser.On("ParseIdentityToken", strings.TrimPrefix(tt.mdAuthHeader, "Bearer ")).Return(tt.parsedCaller, tt.parseErr)
			}
			withCaller := context.WithValue(context.Background(), ctxKey{}, tt.parsedCaller)
			if tt.expectSetCtx {
				cm.On("SetCallerToContext", mock.Anything, tt.parsedCaller).Return(withCaller)
			}

			ctx := context.Background()
			if tt.mdAuthHeader != "" {
				ctx = metadata.NewIncomingContext(ctx, metadata.Pairs("authorization", tt.mdAuthHeader))
			}

			m := NewAuthenticate(parser, cm, testutil.MakeNoopLogger())
			gotCtx, err := m.AuthFunc(ctx)

			if tt.wantGRPCCode == codes.OK {
				require.NoError(t, err)
				assert.Equal(t, tt.parsedCaller, gotCtx.Value(ctxKey{}))
				return
			}

			require.Error(t, err)
			assert.Nil(t, gotCtx)
			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantGRPCCode, st.Code())
		})
	}
}
