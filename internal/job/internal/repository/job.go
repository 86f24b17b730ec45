package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/jobboard/internal/job/internal/domain"
	"github.com/ecodeclub/jobboard/internal/job/internal/repository/dao"
)

type JobRepository interface {
	Create(ctx context.Context, j domain.Job) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Job, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.Job, error)
	List(ctx context.Context, f domain.Filter) ([]domain.Job, error)
	ListByUid(ctx context.Context, uid int64) ([]domain.Job, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	IdsByUid(ctx context.Context, uid int64) ([]int64, error)
}

type jobRepository struct {
	dao dao.JobDAO
}

func NewJobRepository(jobDao dao.JobDAO) JobRepository {
	return &jobRepository{
		dao: jobDao,
	}
}

func (r *jobRepository) Create(ctx context.Context, j domain.Job) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(j))
}

func (r *jobRepository) FindById(ctx context.Context, id int64) (domain.Job, error) {
	j, err := r.dao.FindById(ctx, id)
	return r.toDomain(j), err
}

func (r *jobRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.Job, error) {
	js, err := r.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return r.toDomains(js), nil
}

func (r *jobRepository) List(ctx context.Context, f domain.Filter) ([]domain.Job, error) {
	js, err := r.dao.Find(ctx, string(f.Type), f.Location, f.Keyword)
	if err != nil {
		return nil, err
	}
	return r.toDomains(js), nil
}

func (r *jobRepository) ListByUid(ctx context.Context, uid int64) ([]domain.Job, error) {
	js, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	return r.toDomains(js), nil
}

func (r *jobRepository) CountByUid(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountByUid(ctx, uid)
}

func (r *jobRepository) IdsByUid(ctx context.Context, uid int64) ([]int64, error) {
	return r.dao.IdsByUid(ctx, uid)
}

func (r *jobRepository) toDomains(js []dao.Job) []domain.Job {
	ans := make([]domain.Job, 0, len(js))
	for _, j := range js {
		ans = append(ans, r.toDomain(j))
	}
	return ans
}

func (r *jobRepository) toDomain(j dao.Job) domain.Job {
	return domain.Job{
		Id:          j.Id,
		Title:       j.Title,
		Description: j.Description,
		Company:     j.Company,
		Location:    j.Location,
		Type:        domain.JobType(j.Type),
		Salary:      j.Salary,
		Uid:         j.Uid,
		Ctime:       time.UnixMilli(j.Ctime),
		Utime:       time.UnixMilli(j.Utime),
	}
}

func (r *jobRepository) toEntity(j domain.Job) dao.Job {
	return dao.Job{
		Id:          j.Id,
		Title:       j.Title,
		Description: j.Description,
		Company:     j.Company,
		Location:    j.Location,
		Type:        string(j.Type),
		Salary:      j.Salary,
		Uid:         j.Uid,
		Ctime:       j.Ctime.UnixMilli(),
		Utime:       j.Utime.UnixMilli(),
	}
}
