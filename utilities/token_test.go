package utilities

import (
	"context"
	"testing"
	"time"

	"lines-api/models"

	"github.com/golang-jwt/jwt/v5"
)

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	return s
}

func TestJWTVerifierAuthenticate(t *testing.T) {
	v, err := NewJWTVerifier("s3cr3t")
	if err != nil {
		t.Fatal(err)
	}
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name    string
		token   string
		want    models.Identity
		wantErr bool
	}{
		{
			name:  "subject and username",
			token: sign(t, jwt.SigningMethodHS256, []byte("s3cr3t"), jwt.MapClaims{"sub": "u-1", "username": "alice", "exp": exp}),
			want:  models.Identity{UID: "u-1", Username: "alice"},
		},
		{
			name:  "numeric user_id falls back to username",
			token: sign(t, jwt.SigningMethodHS256, []byte("s3cr3t"), jwt.MapClaims{"user_id": 42, "exp": exp}),
			want:  models.Identity{UID: "42", Username: "42"},
		},
		{
			name:    "wrong secret",
			token:   sign(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"sub": "u-1", "exp": exp}),
			wantErr: true,
		},
		{
			name:    "expired",
			token:   sign(t, jwt.SigningMethodHS256, []byte("s3cr3t"), jwt.MapClaims{"sub": "u-1", "exp": time.Now().Add(-time.Minute).Unix()}),
			wantErr: true,
		},
		{
			name:    "no expiry",
			token:   sign(t, jwt.SigningMethodHS256, []byte("s3cr3t"), jwt.MapClaims{"sub": "u-1"}),
			wantErr: true,
		},
		{
			name:    "other algorithm",
			token:   sign(t, jwt.SigningMethodHS512, []byte("s3cr3t"), jwt.MapClaims{"sub": "u-1", "exp": exp}),
			wantErr: true,
		},
		{
			name:    "no subject",
			token:   sign(t, jwt.SigningMethodHS256, []byte("s3cr3t"), jwt.MapClaims{"username": "alice", "exp": exp}),
			wantErr: true,
		},
		{
			name:    "garbage",
			token:   "not-a-token",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Authenticate(context.Background(), tt.token)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Authenticate succeeded with %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Authenticate: %v", err)
			}
			if got != tt.want {
				t.Errorf("identity = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewJWTVerifierRequiresSecret(t *testing.T) {
	if _, err := NewJWTVerifier(""); err == nil {
		t.Fatal("NewJWTVerifier accepted an empty secret")
	}
}
