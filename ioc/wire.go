//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/jobboard/internal/application"
	"github.com/ecodeclub/jobboard/internal/bff"
	"github.com/ecodeclub/jobboard/internal/dashboard"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		user.InitModule,
		job.InitModule,
		application.InitModule,
		bff.InitModule,
		dashboard.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		wire.FieldsOf(new(*job.Module), "Hdl"),
		wire.FieldsOf(new(*application.Module), "Hdl"),
		wire.FieldsOf(new(*bff.Module), "Hdl"),
		wire.FieldsOf(new(*dashboard.Module), "Hdl"),
		InitSession,
		initGinxServer)
	return new(App), nil
}
