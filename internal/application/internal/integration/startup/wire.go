//go:build wireinject

package startup

import (
	"github.com/ecodeclub/jobboard/internal/application"
	"github.com/ecodeclub/jobboard/internal/job"
	testioc "github.com/ecodeclub/jobboard/internal/test/ioc"
	"github.com/ecodeclub/jobboard/internal/user"
	"github.com/google/wire"
)

func InitModule(jobModule *job.Module, userModule *user.Module) (*application.Module, error) {
	wire.Build(
		testioc.InitDB,
		application.InitModule,
	)
	return new(application.Module), nil
}
