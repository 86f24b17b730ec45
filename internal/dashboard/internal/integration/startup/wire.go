//go:build wireinject

package startup

import (
	"github.com/ecodeclub/jobboard/internal/application"
	"github.com/ecodeclub/jobboard/internal/dashboard"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/user"
	"github.com/google/wire"
)

func InitModule(jobModule *job.Module,
	appModule *application.Module,
	userModule *user.Module) (*dashboard.Module, error) {
	wire.Build(dashboard.InitModule)
	return new(dashboard.Module), nil
}
