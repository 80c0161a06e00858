package server

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestNewAuthenticator(t *testing.T) {
	_, err := NewAuthenticator("", "memorizer")
	assert.Error(t, err)

	auth, err := NewAuthenticator(testSecret, "")
	require.NoError(t, err)
	assert.NotNil(t, auth)
}

func TestAuthenticator_Authenticate(t *testing.T) {
	valid := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    "memorizer",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	tests := []struct {
		name    string
		issuer  string
		header  func(t *testing.T) string
		want    uuid.UUID
		wantErr bool
	}{
		{
			name:   "valid token",
			issuer: "memorizer",
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), valid)
			},
			want: userID,
		},
		{
			name: "any issuer when none is configured",
			header: func(t *testing.T) string {
				claims := valid
				claims.Issuer = "someone-else"
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
			want: userID,
		},
		{
			name:    "missing header",
			header:  func(t *testing.T) string { return "" },
			wantErr: true,
		},
		{
			name:    "not a bearer token",
			header:  func(t *testing.T) string { return "Basic dXNlcjpwYXNz" },
			wantErr: true,
		},
		{
			name: "wrong secret",
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), valid)
			},
			wantErr: true,
		},
		{
			name: "other signing method",
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, jwt.SigningMethodHS512, []byte(testSecret), valid)
			},
			wantErr: true,
		},
		{
			name:   "wrong issuer",
			issuer: "memorizer",
			header: func(t *testing.T) string {
				claims := valid
				claims.Issuer = "someone-else"
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
			wantErr: true,
		},
		{
			name: "expired",
			header: func(t *testing.T) string {
				claims := valid
				claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
			wantErr: true,
		},
		{
			name: "subject is not a user id",
			header: func(t *testing.T) string {
				claims := valid
				claims.Subject = "alice"
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			auth, err := NewAuthenticator(testSecret, tt.issuer)
			require.NoError(t, err)

			got, err := auth.Authenticate(tt.header(t))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
