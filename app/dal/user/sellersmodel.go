package user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ SellersModel = (*customSellersModel)(nil)

type (
	// SellersModel is an interface to be customized, add more methods here,
	// and implement the added methods in customSellersModel.
	SellersModel interface {
		sellersModel
		SaveAccountMapping(ctx context.Context, userId, email, accountId string) error
	}

	customSellersModel struct {
		*defaultSellersModel
	}
)

// NewSellersModel returns a model for the database table.
func NewSellersModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) SellersModel {
	return &customSellersModel{
		defaultSellersModel: newSellersModel(conn, c, opts...),
	}
}

// SaveAccountMapping records the user's connected account id, creating the
// seller row on first onboarding. The onboarding manager is the only writer
// of `stripe_account_id`.
func (m *customSellersModel) SaveAccountMapping(ctx context.Context, userId, email, accountId string) error {
	sellersUserIdKey := fmt.Sprintf("%s%v", cacheSellersUserIdPrefix, userId)
	query := fmt.Sprintf("insert into %s (%s) values (?, ?, ?) on duplicate key update `email` = values(`email`), `stripe_account_id` = values(`stripe_account_id`)", m.table, sellersRowsExpectAutoSet)
	_, err := m.ExecCtx(ctx, func(ctx context.Context, conn sqlx.SqlConn) (sql.Result, error) {
		return conn.ExecCtx(ctx, query, userId, email, sql.NullString{String: accountId, Valid: accountId != ""})
	}, sellersUserIdKey)
	return err
}
