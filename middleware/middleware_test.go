package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vypar/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

func signToken(t *testing.T, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString(globals.JwtSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return "Bearer " + s
}

func TestAuthenticateRejectsBadTokens(t *testing.T) {
	handle := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Error("handler reached without a valid token")
	})

	for _, header := range []string{"", "Bearer", "Token abcdefgh", "Bearer not-a-jwt"} {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/orders/mine", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}
		handle(w, r, nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, w.Code)
		}
	}
}

func TestValidateJWTRoundTrip(t *testing.T) {
	claims := &Claims{
		Username: "mira",
		UserID:   "u1",
		Role:     []string{"admin"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	got, err := ValidateJWT(signToken(t, claims))
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if got.UserID != "u1" || got.Username != "mira" {
		t.Fatalf("claims = %+v", got)
	}
	if len(got.Role) != 1 || got.Role[0] != "admin" {
		t.Fatalf("roles = %v", got.Role)
	}
}

func TestValidateJWTRejectsExpired(t *testing.T) {
	claims := &Claims{
		UserID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	if _, err := ValidateJWT(signToken(t, claims)); err == nil {
		t.Fatal("expired token accepted")
	}
}
