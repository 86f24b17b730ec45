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

	"github.com/ecodeclub/jobboard/internal/application/internal/domain"
	"github.com/ecodeclub/jobboard/internal/application/internal/repository"
	"github.com/ecodeclub/jobboard/internal/job"
)

var (
	ErrDuplicateApplication = repository.ErrDuplicateApplication
	ErrJobNotFound          = job.ErrJobNotFound
)

type Service interface {
	// Apply 投递岗位。岗位不存在返回 ErrJobNotFound，
	// 重复投递返回 ErrDuplicateApplication
	Apply(ctx context.Context, uid, jobId int64) (domain.Application, error)
	// ListByUid 我的投递，最新的在前
	ListByUid(ctx context.Context, uid int64) ([]domain.Application, error)
	HasApplied(ctx context.Context, uid, jobId int64) (bool, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	// CountByJobIds 岗位 id => 收到的投递数，没有投递的岗位不在 map 里
	CountByJobIds(ctx context.Context, jobIds []int64) (map[int64]int64, error)
	CountTotalByJobIds(ctx context.Context, jobIds []int64) (int64, error)
	// StatusCountByUid 状态 => 计数，计数为零的状态不在 map 里
	StatusCountByUid(ctx context.Context, uid int64) (map[string]int64, error)
}

type service struct {
	repo   repository.ApplicationRepository
	jobSvc job.Service
}

func NewService(repo repository.ApplicationRepository, jobSvc job.Service) Service {
	return &service{
		repo:   repo,
		jobSvc: jobSvc,
	}
}

func (s *service) Apply(ctx context.Context, uid, jobId int64) (domain.Application, error) {
	_, err := s.jobSvc.Detail(ctx, jobId)
	if err != nil {
		// 有可能是 ErrJobNotFound
		return domain.Application{}, err
	}
	applied, err := s.repo.HasApplied(ctx, jobId, uid)
	if err != nil {
		return domain.Application{}, err
	}
	if applied {
		return domain.Application{}, ErrDuplicateApplication
	}
	// 并发投递的时候，先检查再插入依旧可能撞唯一索引，
	// 这时候数据库会替我们裁决，输家拿到的还是同一个错误
	_, err = s.repo.Create(ctx, domain.Application{
		JobId:  jobId,
		Uid:    uid,
		Status: domain.StatusPending,
	})
	if err != nil {
		return domain.Application{}, err
	}
	return s.repo.FindByJobUid(ctx, jobId, uid)
}

func (s *service) ListByUid(ctx context.Context, uid int64) ([]domain.Application, error) {
	return s.repo.ListByUid(ctx, uid)
}

func (s *service) HasApplied(ctx context.Context, uid, jobId int64) (bool, error) {
	return s.repo.HasApplied(ctx, jobId, uid)
}

func (s *service) CountByUid(ctx context.Context, uid int64) (int64, error) {
	return s.repo.CountByUid(ctx, uid)
}

func (s *service) CountByJobIds(ctx context.Context, jobIds []int64) (map[int64]int64, error) {
	if len(jobIds) == 0 {
		return map[int64]int64{}, nil
	}
	return s.repo.CountByJobIds(ctx, jobIds)
}

func (s *service) CountTotalByJobIds(ctx context.Context, jobIds []int64) (int64, error) {
	if len(jobIds) == 0 {
		return 0, nil
	}
	return s.repo.CountTotalByJobIds(ctx, jobIds)
}

func (s *service) StatusCountByUid(ctx context.Context, uid int64) (map[string]int64, error) {
	return s.repo.StatusCountByUid(ctx, uid)
}
