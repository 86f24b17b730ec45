//go:build wireinject

package bff

import (
	"github.com/ecodeclub/jobboard/internal/application"
	"github.com/ecodeclub/jobboard/internal/bff/internal/web"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/user"
	"github.com/google/wire"
)

func InitModule(jobModule *job.Module,
	appModule *application.Module,
	userModule *user.Module) (*Module, error) {
	wire.Build(
		web.NewHandler,
		wire.FieldsOf(new(*job.Module), "Svc"),
		wire.FieldsOf(new(*application.Module), "Svc"),
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
