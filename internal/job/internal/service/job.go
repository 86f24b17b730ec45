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
	"errors"

	"github.com/ecodeclub/jobboard/internal/job/internal/domain"
	"github.com/ecodeclub/jobboard/internal/job/internal/repository"
	"github.com/ecodeclub/jobboard/internal/job/internal/repository/dao"
)

var (
	// ErrJobNotFound 岗位不存在
	ErrJobNotFound = errors.New("岗位不存在")
	// ErrInvalidJob 必填字段缺失
	ErrInvalidJob = errors.New("岗位信息不完整")
)

type Service interface {
	// Create 发布岗位，必填字段为空会返回 ErrInvalidJob
	Create(ctx context.Context, j domain.Job) (int64, error)
	// List 全量过滤查询，最新的在前
	List(ctx context.Context, f domain.Filter) ([]domain.Job, error)
	// Detail 不存在返回 ErrJobNotFound
	Detail(ctx context.Context, id int64) (domain.Job, error)
	GetByIds(ctx context.Context, ids []int64) ([]domain.Job, error)
	ListByUid(ctx context.Context, uid int64) ([]domain.Job, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	IdsByUid(ctx context.Context, uid int64) ([]int64, error)
}

type service struct {
	repo repository.JobRepository
}

func NewService(repo repository.JobRepository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) Create(ctx context.Context, j domain.Job) (int64, error) {
	if j.Title == "" || j.Description == "" || j.Company == "" ||
		j.Location == "" || j.Type == "" {
		return 0, ErrInvalidJob
	}
	return s.repo.Create(ctx, j)
}

func (s *service) List(ctx context.Context, f domain.Filter) ([]domain.Job, error) {
	return s.repo.List(ctx, f)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Job, error) {
	j, err := s.repo.FindById(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Job{}, ErrJobNotFound
	}
	return j, err
}

func (s *service) GetByIds(ctx context.Context, ids []int64) ([]domain.Job, error) {
	return s.repo.FindByIds(ctx, ids)
}

func (s *service) ListByUid(ctx context.Context, uid int64) ([]domain.Job, error) {
	return s.repo.ListByUid(ctx, uid)
}

func (s *service) CountByUid(ctx context.Context, uid int64) (int64, error) {
	return s.repo.CountByUid(ctx, uid)
}

func (s *service) IdsByUid(ctx context.Context, uid int64) ([]int64, error) {
	return s.repo.IdsByUid(ctx, uid)
}
