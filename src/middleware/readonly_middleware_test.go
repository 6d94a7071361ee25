package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signTestToken(t *testing.T, secret string, superAdmin bool) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":     int64(1),
		"username":    "tester",
		"name":        "Tester",
		"super_admin": superAdmin,
		"exp":         time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

func serveReadOnly(readOnly bool, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler := ReadOnlyMiddleware(readOnly)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	handler.ServeHTTP(rec, r)
	return rec
}

func TestReadOnlyMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "readonly-test-secret")
	adminToken := signTestToken(t, "readonly-test-secret", true)
	memberToken := signTestToken(t, "readonly-test-secret", false)

	tests := []struct {
		name       string
		readOnly   bool
		method     string
		path       string
		token      string
		wantStatus int
	}{
		{"disabled passes writes through", false, http.MethodPost, "/api/expenses", "", http.StatusOK},
		{"reads allowed", true, http.MethodGet, "/api/expenses", "", http.StatusOK},
		{"login allowed", true, http.MethodPost, "/api/login", "", http.StatusOK},
		{"register allowed", true, http.MethodPost, "/api/register", "", http.StatusOK},
		{"writes blocked", true, http.MethodPost, "/api/expenses", "", http.StatusForbidden},
		{"deletes blocked", true, http.MethodDelete, "/api/expenses/x", "", http.StatusForbidden},
		{"member token still blocked", true, http.MethodPost, "/api/expenses", memberToken, http.StatusForbidden},
		{"super admin bypasses", true, http.MethodPost, "/api/expenses", adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				r.Header.Set("Authorization", "Bearer "+tt.token)
			}
			if got := serveReadOnly(tt.readOnly, r); got.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", got.Code, tt.wantStatus)
			}
		})
	}
}
