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

package service

import (
	"context"

	"github.com/ecodeclub/jobboard/internal/application"
	"github.com/ecodeclub/jobboard/internal/dashboard/internal/domain"
	"github.com/ecodeclub/jobboard/internal/job"
	"golang.org/x/sync/errgroup"
)

type Service interface {
	// Stats 个人面板的四个统计值。四个数各自独立查询，
	// 之间没有事务，并发写入时轻微不一致是预期内的
	Stats(ctx context.Context, uid int64) (domain.Stats, error)
}

type service struct {
	jobSvc job.Service
	appSvc application.Service
}

func NewService(jobSvc job.Service, appSvc application.Service) Service {
	return &service{
		jobSvc: jobSvc,
		appSvc: appSvc,
	}
}

func (s *service) Stats(ctx context.Context, uid int64) (domain.Stats, error) {
	var (
		eg  errgroup.Group
		res domain.Stats
	)
	eg.Go(func() error {
		var err error
		res.JobsPosted, err = s.jobSvc.CountByUid(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		res.ApplicationsCount, err = s.appSvc.CountByUid(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		res.ApplicationsByStatus, err = s.appSvc.StatusCountByUid(ctx, uid)
		return err
	})
	eg.Go(func() error {
		// 我发布的岗位收到的投递：先拿岗位 id，再在投递表上计数
		ids, err := s.jobSvc.IdsByUid(ctx, uid)
		if err != nil {
			return err
		}
		res.ApplicationsReceived, err = s.appSvc.CountTotalByJobIds(ctx, ids)
		return err
	})
	err := eg.Wait()
	return res, err
}
