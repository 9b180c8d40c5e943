package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fnadeau-1/wrestle-swap/app/common/consts/biz"
	"github.com/fnadeau-1/wrestle-swap/app/common/util"

	"github.com/golang-jwt/jwt/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, subject string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func runMiddleware(req *http.Request) (userId string, called bool, rec *httptest.ResponseRecorder) {
	rec = httptest.NewRecorder()
	handler := NewAuthMiddleware(testSecret).Handle(func(w http.ResponseWriter, r *http.Request) {
		called = true
		userId, _ = util.UserIdFromCtx(r.Context())
	})
	handler(rec, req)
	return userId, called, rec
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user-42", time.Hour))

	userId, called, _ := runMiddleware(req)
	if !called {
		t.Fatal("handler not reached with a valid token")
	}
	if userId != "user-42" {
		t.Errorf("user id = %q, want user-42", userId)
	}
}

func TestAuthMiddleware_CookieToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: biz.ACCESSTOKEN, Value: signToken(t, "user-7", time.Hour)})

	userId, called, _ := runMiddleware(req)
	if !called || userId != "user-7" {
		t.Errorf("called = %v user = %q", called, userId)
	}
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, called, rec := runMiddleware(req)
	if called {
		t.Error("handler reached without a token")
	}
	if rec.Code == http.StatusOK {
		t.Errorf("status = %d, want an error status", rec.Code)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user-42", -time.Hour))

	_, called, _ := runMiddleware(req)
	if called {
		t.Error("handler reached with an expired token")
	}
}

func TestAuthMiddleware_WrongSignature(t *testing.T) {
	claims := jwt.RegisteredClaims{Subject: "user-42", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	_, called, _ := runMiddleware(req)
	if called {
		t.Error("handler reached with a forged token")
	}
}
