// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"os"

	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/config"
	"github.com/fnadeau-1/wrestle-swap/app/client/shippo"
	stripeclient "github.com/fnadeau-1/wrestle-swap/app/client/stripe"
	"github.com/fnadeau-1/wrestle-swap/app/common/middleware"
	"github.com/fnadeau-1/wrestle-swap/app/common/snowflake"
	"github.com/fnadeau-1/wrestle-swap/app/dal/messaging"
	productdal "github.com/fnadeau-1/wrestle-swap/app/dal/product"
	userdal "github.com/fnadeau-1/wrestle-swap/app/dal/user"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/rest"
)

type ServiceContext struct {
	Config config.Config

	AuthMiddleware rest.Middleware

	DB       sqlx.SqlConn
	Sellers  userdal.SellersModel
	Products productdal.ProductsModel
	Messages messaging.Store

	// Collaborator clients, nil when the matching secret is absent. Logic
	// reports a configuration error instead of calling through a nil client.
	Stripe stripeclient.Client
	Shippo shippo.Client

	AsynqClient *asynq.Client
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	db := sqlx.NewMysql(c.MysqlConf.DataSource)
	rds := redis.MustNewRedis(c.RedisConf)

	stripeKey := c.StripeConf.SecretKey
	if stripeKey == "" {
		stripeKey = os.Getenv("STRIPE_SECRET_KEY")
	}
	var stripeCli stripeclient.Client
	if stripeKey != "" {
		stripeCli = stripeclient.New(stripeKey)
	} else {
		logx.Error("stripe secret key is not configured, payment endpoints will refuse requests")
	}

	shippoToken := c.ShippoConf.ApiToken
	if shippoToken == "" {
		shippoToken = os.Getenv("SHIPPO_API_KEY")
	}
	var shippoCli shippo.Client
	if shippoToken != "" {
		opts := []shippo.Option{}
		if c.ShippoConf.BaseUrl != "" {
			opts = append(opts, shippo.WithBaseURL(c.ShippoConf.BaseUrl))
		}
		shippoCli = shippo.New(shippoToken, opts...)
	} else {
		logx.Error("shippo api token is not configured, shipping endpoints will refuse requests")
	}

	authSecret := c.AuthConf.AccessSecret
	if authSecret == "" {
		authSecret = os.Getenv("JWT_ACCESS_SECRET")
	}

	asynqAddr := c.AsynqConf.Addr
	if asynqAddr == "" {
		asynqAddr = c.RedisConf.Host
	}
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: asynqAddr})

	if c.SnowflakeNode > 0 {
		if err := snowflake.SetNodeID(c.SnowflakeNode); err != nil {
			logx.Errorf("failed to set snowflake node id: %v", err)
		}
	}

	return &ServiceContext{
		Config:         c,
		AuthMiddleware: middleware.NewAuthMiddleware(authSecret).Handle,
		DB:             db,
		Sellers:        userdal.NewSellersModel(db, c.CacheConf),
		Products:       productdal.NewProductsModel(db, c.CacheConf),
		Messages:       messaging.NewStore(rds),
		Stripe:         stripeCli,
		Shippo:         shippoCli,
		AsynqClient:    asynqClient,
	}
}
