package util

import (
	"context"
	"net/http"

	"github.com/fnadeau-1/wrestle-swap/app/common/consts/biz"
	"github.com/fnadeau-1/wrestle-swap/app/common/consts/errno"

	"github.com/zeromicro/x/errors"
)

func UserIdFromCtx(ctx context.Context) (string, error) {
	if ctx == nil {
		return "", errors.New(int(errno.TokenEmpty), "missing context")
	}

	if val, ok := ctx.Value(biz.USER_KEY).(string); ok && val != "" {
		return val, nil
	}

	return "", errors.New(int(errno.TokenEmpty), "unauthorized")
}

func InjectUserId2Ctx(r *http.Request, userId string) {
	ctx := context.WithValue(r.Context(), biz.USER_KEY, userId)
	*r = *r.WithContext(ctx)
}
