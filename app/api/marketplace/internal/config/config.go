// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	MysqlConf sqlx.SqlConf
	CacheConf cache.CacheConf
	RedisConf redis.RedisConf

	AsynqConf       AsynqRedisConf
	AsynqServerConf AsynqServerConf

	KafkaConf KafkaConf

	// Secrets fall back to the environment when left empty here; the
	// deployment injects them, they are never committed.
	StripeConf StripeConf
	ShippoConf ShippoConf
	AuthConf   AuthConf

	LogConf logx.LogConf

	SnowflakeNode int64 `json:",optional"`
}

type AsynqRedisConf struct {
	Addr string `json:",optional"`
}

type AsynqServerConf struct {
	Concurrency int            `json:",optional"`
	Queues      map[string]int `json:",optional"`

	ReaperCron string `json:",default=0 4 * * *"`
	SweepCron  string `json:",default=0 5 * * *"`
}

type KafkaConf struct {
	Broker       []string `json:",optional"`
	OrderTopic   string   `json:",optional"`
	PaymentTopic string   `json:",optional"`
}

type StripeConf struct {
	SecretKey string `json:",optional"`
}

type ShippoConf struct {
	ApiToken string `json:",optional"`
	BaseUrl  string `json:",optional"`
}

type AuthConf struct {
	AccessSecret string `json:",optional"`
}
