package repository

import (
	"context"

	"github.com/ecodeclub/jobboard/internal/user/internal/domain"
	"github.com/ecodeclub/jobboard/internal/user/internal/repository/cache"
	"github.com/ecodeclub/jobboard/internal/user/internal/repository/dao"
)

type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
}

// CachedUserRepository 使用了缓存的 repository 实现
type CachedUserRepository struct {
	dao   dao.UserDAO
	cache cache.UserCache
}

func NewCachedUserRepository(d dao.UserDAO,
	c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:   d,
		cache: c,
	}
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.domainToEntity(u))
}

func (ur *CachedUserRepository) FindById(ctx context.Context,
	id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, err
	}
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = ur.entityToDomain(ue)
	// 回写缓存失败不影响读
	_ = ur.cache.Set(ctx, u)
	return u, nil
}

func (ur *CachedUserRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	us, err := ur.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make([]domain.User, 0, len(us))
	for _, ue := range us {
		res = append(res, ur.entityToDomain(ue))
	}
	return res, nil
}

func (ur *CachedUserRepository) domainToEntity(u domain.User) dao.User {
	return dao.User{
		Id:       u.Id,
		Nickname: u.Nickname,
		Email:    u.Email,
		Avatar:   u.Avatar,
	}
}

func (ur *CachedUserRepository) entityToDomain(ue dao.User) domain.User {
	return domain.User{
		Id:       ue.Id,
		Nickname: ue.Nickname,
		Email:    ue.Email,
		Avatar:   ue.Avatar,
	}
}
