//go:build wireinject

package startup

import (
	"github.com/ecodeclub/jobboard/internal/job"
	testioc "github.com/ecodeclub/jobboard/internal/test/ioc"
	"github.com/ecodeclub/jobboard/internal/user"
	"github.com/google/wire"
)

func InitModule(userModule *user.Module) (*job.Module, error) {
	wire.Build(
		testioc.InitDB,
		job.InitModule,
	)
	return new(job.Module), nil
}
