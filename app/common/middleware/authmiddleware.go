package middleware

import (
	"net/http"
	"strings"

	"github.com/fnadeau-1/wrestle-swap/app/common/consts/biz"
	"github.com/fnadeau-1/wrestle-swap/app/common/consts/errno"
	"github.com/fnadeau-1/wrestle-swap/app/common/util"

	"github.com/golang-jwt/jwt/v4"
	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/x/errors"
)

// AuthMiddleware validates the access token minted by the identity provider
// and injects the subject user id into the request context.
type AuthMiddleware struct {
	secret []byte
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{
		secret: []byte(secret),
	}
}

func (m *AuthMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken := ""
		if cookie, err := r.Cookie(biz.ACCESSTOKEN); err == nil {
			accessToken = cookie.Value
		} else if auth := r.Header.Get("Authorization"); auth != "" {
			accessToken = strings.TrimPrefix(auth, "Bearer ")
		} else if headerToken := r.Header.Get(biz.ACCESSTOKEN); headerToken != "" {
			accessToken = headerToken
		}

		if accessToken == "" {
			httpx.Error(w, errors.New(int(errno.TokenEmpty), "token is null"))
			return
		}

		claims := jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(accessToken, &claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return m.secret, nil
		})
		if err != nil || !token.Valid {
			code := errno.TokenInvalid
			if err != nil && strings.Contains(err.Error(), jwt.ErrTokenExpired.Error()) {
				code = errno.TokenExpired
			}
			httpx.Error(w, errors.New(int(code), "invalid access token"))
			return
		}
		if claims.Subject == "" {
			httpx.Error(w, errors.New(int(errno.TokenInvalid), "token has no subject"))
			return
		}

		util.InjectUserId2Ctx(r, claims.Subject)
		next(w, r)
	}
}
