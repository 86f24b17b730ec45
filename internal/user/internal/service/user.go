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

	"github.com/ecodeclub/jobboard/internal/user/internal/domain"
	"github.com/ecodeclub/jobboard/internal/user/internal/repository"
)

type UserService interface {
	// Profile 登录用户查看个人信息
	Profile(ctx context.Context, id int64) (domain.User, error)
	// FindByIds 批量取公开信息，给岗位、投递的发布人拼接用
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo: repo,
	}
}

func (s *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	return s.repo.FindById(ctx, id)
}

func (s *userService) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	return s.repo.FindByIds(ctx, ids)
}
