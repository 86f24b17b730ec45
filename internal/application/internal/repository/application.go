package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/jobboard/internal/application/internal/domain"
	"github.com/ecodeclub/jobboard/internal/application/internal/repository/dao"
)

var ErrDuplicateApplication = dao.ErrDuplicateApplication

type ApplicationRepository interface {
	Create(ctx context.Context, app domain.Application) (int64, error)
	FindByJobUid(ctx context.Context, jobId, uid int64) (domain.Application, error)
	// HasApplied O(1) 的唯一索引探测
	HasApplied(ctx context.Context, jobId, uid int64) (bool, error)
	ListByUid(ctx context.Context, uid int64) ([]domain.Application, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	CountByJobIds(ctx context.Context, jobIds []int64) (map[int64]int64, error)
	CountTotalByJobIds(ctx context.Context, jobIds []int64) (int64, error)
	StatusCountByUid(ctx context.Context, uid int64) (map[string]int64, error)
}

type applicationRepository struct {
	dao dao.ApplicationDAO
}

func NewApplicationRepository(appDao dao.ApplicationDAO) ApplicationRepository {
	return &applicationRepository{
		dao: appDao,
	}
}

func (r *applicationRepository) Create(ctx context.Context, app domain.Application) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(app))
}

func (r *applicationRepository) FindByJobUid(ctx context.Context, jobId, uid int64) (domain.Application, error) {
	app, err := r.dao.FindByJobUid(ctx, jobId, uid)
	return r.toDomain(app), err
}

func (r *applicationRepository) HasApplied(ctx context.Context, jobId, uid int64) (bool, error) {
	_, err := r.dao.FindByJobUid(ctx, jobId, uid)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *applicationRepository) ListByUid(ctx context.Context, uid int64) ([]domain.Application, error) {
	apps, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	ans := make([]domain.Application, 0, len(apps))
	for _, app := range apps {
		ans = append(ans, r.toDomain(app))
	}
	return ans, nil
}

func (r *applicationRepository) CountByUid(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountByUid(ctx, uid)
}

func (r *applicationRepository) CountByJobIds(ctx context.Context, jobIds []int64) (map[int64]int64, error) {
	cnts, err := r.dao.CountByJobIds(ctx, jobIds)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]int64, len(cnts))
	for _, cnt := range cnts {
		res[cnt.JobId] = cnt.Cnt
	}
	return res, nil
}

func (r *applicationRepository) CountTotalByJobIds(ctx context.Context, jobIds []int64) (int64, error) {
	return r.dao.CountTotalByJobIds(ctx, jobIds)
}

func (r *applicationRepository) StatusCountByUid(ctx context.Context, uid int64) (map[string]int64, error) {
	cnts, err := r.dao.CountByStatus(ctx, uid)
	if err != nil {
		return nil, err
	}
	res := make(map[string]int64, len(cnts))
	for _, cnt := range cnts {
		res[cnt.Status] = cnt.Cnt
	}
	return res, nil
}

func (r *applicationRepository) toDomain(app dao.Application) domain.Application {
	return domain.Application{
		Id:     app.Id,
		JobId:  app.JobId,
		Uid:    app.Uid,
		Status: domain.Status(app.Status),
		Ctime:  time.UnixMilli(app.Ctime),
		Utime:  time.UnixMilli(app.Utime),
	}
}

func (r *applicationRepository) toEntity(app domain.Application) dao.Application {
	return dao.Application{
		Id:     app.Id,
		JobId:  app.JobId,
		Uid:    app.Uid,
		Status: string(app.Status),
		Ctime:  app.Ctime.UnixMilli(),
		Utime:  app.Utime.UnixMilli(),
	}
}
