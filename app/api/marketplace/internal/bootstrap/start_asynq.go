package bootstrap

import (
	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/mq"
	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/svc"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
)

// StartAsynq runs the background worker plus the cron entries for the
// listing reaper and the conversation sweep; returns a stop func.
func StartAsynq(sc *svc.ServiceContext) func() {
	addr := sc.Config.AsynqConf.Addr
	if addr == "" {
		addr = sc.Config.RedisConf.Host
	}
	redisOpt := asynq.RedisClientOpt{Addr: addr}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: sc.Config.AsynqServerConf.Concurrency,
		Queues:      sc.Config.AsynqServerConf.Queues,
	})
	mux := mq.NewAsynqMux(sc)
	go func() {
		if err := srv.Run(mux); err != nil {
			panic(err)
		}
	}()

	scheduler := asynq.NewScheduler(redisOpt, nil)
	register := func(cronspec, task string) {
		if _, err := scheduler.Register(cronspec, asynq.NewTask(task, nil)); err != nil {
			logx.Errorf("register %s schedule failed: %v", task, err)
		}
	}
	register(sc.Config.AsynqServerConf.ReaperCron, mq.TaskReapSoldListings)
	register(sc.Config.AsynqServerConf.SweepCron, mq.TaskSweepConversations)
	go func() {
		if err := scheduler.Run(); err != nil {
			panic(err)
		}
	}()

	return func() {
		scheduler.Shutdown()
		srv.Shutdown()
	}
}
