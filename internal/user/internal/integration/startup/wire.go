//go:build wireinject

package startup

import (
	testioc "github.com/ecodeclub/jobboard/internal/test/ioc"
	"github.com/ecodeclub/jobboard/internal/user"
	"github.com/google/wire"
)

func InitModule() (*user.Module, error) {
	wire.Build(
		testioc.InitDB,
		testioc.InitCache,
		user.InitModule,
	)
	return new(user.Module), nil
}
