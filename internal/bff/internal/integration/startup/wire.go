//go:build wireinject

package startup

import (
	"github.com/ecodeclub/jobboard/internal/application"
	"github.com/ecodeclub/jobboard/internal/bff"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/user"
	"github.com/google/wire"
)

func InitModule(jobModule *job.Module,
	appModule *application.Module,
	userModule *user.Module) (*bff.Module, error) {
	wire.Build(bff.InitModule)
	return new(bff.Module), nil
}
