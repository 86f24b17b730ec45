// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package application

import (
	"github.com/ecodeclub/jobboard/internal/application/internal/repository"
	"github.com/ecodeclub/jobboard/internal/application/internal/service"
	"github.com/ecodeclub/jobboard/internal/application/internal/web"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/user"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	jobModule *job.Module, userModule *user.Module) (*Module, error) {
	wire.Build(
		initDAO,
		repository.NewApplicationRepository,
		service.NewService,
		web.NewHandler,
		wire.FieldsOf(new(*job.Module), "Svc"),
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
