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

package job

import (
	"github.com/ecodeclub/jobboard/internal/job/internal/domain"
	"github.com/ecodeclub/jobboard/internal/job/internal/service"
	"github.com/ecodeclub/jobboard/internal/job/internal/web"
)

type Handler = web.Handler
type Job = domain.Job
type JobType = domain.JobType
type Filter = domain.Filter

const (
	JobTypeFullTime   = domain.JobTypeFullTime
	JobTypePartTime   = domain.JobTypePartTime
	JobTypeContract   = domain.JobTypeContract
	JobTypeInternship = domain.JobTypeInternship
	JobTypeFreelance  = domain.JobTypeFreelance
	JobTypeRemote     = domain.JobTypeRemote
)

// Service 给 bff、application、dashboard 这些模块用
type Service = service.Service

var (
	ErrJobNotFound = service.ErrJobNotFound
	ErrInvalidJob  = service.ErrInvalidJob
)

type Module struct {
	Hdl *Handler
	Svc Service
}
