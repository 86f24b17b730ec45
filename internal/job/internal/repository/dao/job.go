package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// ErrRecordNotFound 岗位没找到
var ErrRecordNotFound = gorm.ErrRecordNotFound

type JobDAO interface {
	Insert(ctx context.Context, j Job) (int64, error)
	FindById(ctx context.Context, id int64) (Job, error)
	FindByIds(ctx context.Context, ids []int64) ([]Job, error)
	// Find 按条件过滤，全量返回，不分页
	Find(ctx context.Context, typ string, location string, keyword string) ([]Job, error)
	FindByUid(ctx context.Context, uid int64) ([]Job, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	IdsByUid(ctx context.Context, uid int64) ([]int64, error)
}

type GORMJobDAO struct {
	db *egorm.Component
}

func NewGORMJobDAO(db *egorm.Component) JobDAO {
	return &GORMJobDAO{
		db: db,
	}
}

func (d *GORMJobDAO) Insert(ctx context.Context, j Job) (int64, error) {
	now := time.Now().UnixMilli()
	j.Ctime = now
	j.Utime = now
	err := d.db.WithContext(ctx).Create(&j).Error
	return j.Id, err
}

func (d *GORMJobDAO) FindById(ctx context.Context, id int64) (Job, error) {
	var j Job
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&j).Error
	return j, err
}

func (d *GORMJobDAO) FindByIds(ctx context.Context, ids []int64) ([]Job, error) {
	var js []Job
	err := d.db.WithContext(ctx).Find(&js, "id IN ?", ids).Error
	return js, err
}

func (d *GORMJobDAO) Find(ctx context.Context, typ string, location string, keyword string) ([]Job, error) {
	builder := d.db.WithContext(ctx).Model(&Job{})
	if typ != "" {
		builder = builder.Where("type = ?", typ)
	}
	if location != "" {
		// 列用的是 CI collation，LIKE 天然不区分大小写
		builder = builder.Where("location LIKE ?", "%"+location+"%")
	}
	if keyword != "" {
		pattern := "%" + keyword + "%"
		builder = builder.Where("title LIKE ? OR description LIKE ? OR company LIKE ?",
			pattern, pattern, pattern)
	}
	var js []Job
	err := builder.Order("id DESC").Find(&js).Error
	return js, err
}

func (d *GORMJobDAO) FindByUid(ctx context.Context, uid int64) ([]Job, error) {
	var js []Job
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").Find(&js).Error
	return js, err
}

func (d *GORMJobDAO) CountByUid(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Job{}).
		Where("uid = ?", uid).Count(&count).Error
	return count, err
}

func (d *GORMJobDAO) IdsByUid(ctx context.Context, uid int64) ([]int64, error) {
	var ids []int64
	err := d.db.WithContext(ctx).Model(&Job{}).
		Select("id").Where("uid = ?", uid).Scan(&ids).Error
	return ids, err
}

type Job struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Title       string `gorm:"type:varchar(256);not null"`
	Description string `gorm:"type:text;not null"`
	Company     string `gorm:"type:varchar(256);not null"`
	Location    string `gorm:"type:varchar(256);not null"`
	Type        string `gorm:"type:varchar(32);not null;index:idx_type"`
	Salary      string `gorm:"type:varchar(128)"`
	// Uid 发布人
	Uid int64 `gorm:"not null;index:idx_uid"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Job{})
}
