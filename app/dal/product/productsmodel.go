package product

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ ProductsModel = (*customProductsModel)(nil)

type (
	// ProductsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customProductsModel.
	ProductsModel interface {
		productsModel
		FindStaleSoldIds(ctx context.Context, soldBeforeMs int64, limit int) ([]int64, error)
		DeleteBatch(ctx context.Context, ids []int64) error
		MarkUnsold(ctx context.Context, id int64) error
	}

	customProductsModel struct {
		*defaultProductsModel
	}
)

// NewProductsModel returns a model for the database table.
func NewProductsModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) ProductsModel {
	return &customProductsModel{
		defaultProductsModel: newProductsModel(conn, c, opts...),
	}
}

// FindStaleSoldIds lists ids of listings sold at or before soldBeforeMs,
// oldest first, capped at limit.
func (m *customProductsModel) FindStaleSoldIds(ctx context.Context, soldBeforeMs int64, limit int) ([]int64, error) {
	query := fmt.Sprintf("select `id` from %s where `sold` = 1 and `sold_at` <= ? order by `sold_at`, `id` limit ?", m.table)
	var ids []int64
	if err := m.QueryRowsNoCacheCtx(ctx, &ids, query, soldBeforeMs, limit); err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteBatch removes the given listings in a single statement so each batch
// commits as one unit.
func (m *customProductsModel) DeleteBatch(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	keys := make([]string, 0, len(ids))
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, fmt.Sprintf("%s%v", cacheProductsIdPrefix, id))
		args = append(args, id)
	}

	query := fmt.Sprintf("delete from %s where `id` in (%s)", m.table, placeholders(len(ids)))
	_, err := m.ExecCtx(ctx, func(ctx context.Context, conn sqlx.SqlConn) (sql.Result, error) {
		return conn.ExecCtx(ctx, query, args...)
	}, keys...)
	return err
}

// MarkUnsold puts a cancelled listing back on the market and clears its sale
// metadata.
func (m *customProductsModel) MarkUnsold(ctx context.Context, id int64) error {
	productsIdKey := fmt.Sprintf("%s%v", cacheProductsIdPrefix, id)
	query := fmt.Sprintf("update %s set `sold` = 0, `sold_at` = null, `buyer_id` = null where `id` = ?", m.table)
	result, err := m.ExecCtx(ctx, func(ctx context.Context, conn sqlx.SqlConn) (sql.Result, error) {
		return conn.ExecCtx(ctx, query, id)
	}, productsIdKey)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}

	var builder strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			builder.WriteByte(',')
		}
		builder.WriteByte('?')
	}
	return builder.String()
}
