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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	// ErrRecordNotFound 投递记录没找到
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrDuplicateApplication 同一个人对同一个岗位只能投一次，
	// 靠 (job_id, uid) 上的唯一索引兜底
	ErrDuplicateApplication = errors.New("重复投递")
)

type ApplicationDAO interface {
	Insert(ctx context.Context, app Application) (int64, error)
	// FindByJobUid 走 (job_id, uid) 唯一索引的点查
	FindByJobUid(ctx context.Context, jobId, uid int64) (Application, error)
	FindByUid(ctx context.Context, uid int64) ([]Application, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	// CountByJobIds 按岗位分组计数
	CountByJobIds(ctx context.Context, jobIds []int64) ([]JobCnt, error)
	CountTotalByJobIds(ctx context.Context, jobIds []int64) (int64, error)
	// CountByStatus 投递人的各状态计数，没有投递的状态不会出现
	CountByStatus(ctx context.Context, uid int64) ([]StatusCnt, error)
}

type GORMApplicationDAO struct {
	db *egorm.Component
}

func NewGORMApplicationDAO(db *egorm.Component) ApplicationDAO {
	return &GORMApplicationDAO{
		db: db,
	}
}

func (d *GORMApplicationDAO) Insert(ctx context.Context, app Application) (int64, error) {
	now := time.Now().UnixMilli()
	app.Ctime = now
	app.Utime = now
	if app.Status == "" {
		app.Status = "pending"
	}
	err := d.db.WithContext(ctx).Create(&app).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicateApplication
		}
	}
	return app.Id, err
}

func (d *GORMApplicationDAO) FindByJobUid(ctx context.Context, jobId, uid int64) (Application, error) {
	var app Application
	err := d.db.WithContext(ctx).
		Where("job_id = ? AND uid = ?", jobId, uid).
		First(&app).Error
	return app, err
}

func (d *GORMApplicationDAO) FindByUid(ctx context.Context, uid int64) ([]Application, error) {
	var apps []Application
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").Find(&apps).Error
	return apps, err
}

func (d *GORMApplicationDAO) CountByUid(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Application{}).
		Where("uid = ?", uid).Count(&count).Error
	return count, err
}

func (d *GORMApplicationDAO) CountByJobIds(ctx context.Context, jobIds []int64) ([]JobCnt, error) {
	var res []JobCnt
	err := d.db.WithContext(ctx).Model(&Application{}).
		Select("job_id, COUNT(id) AS cnt").
		Where("job_id IN ?", jobIds).
		Group("job_id").Scan(&res).Error
	return res, err
}

func (d *GORMApplicationDAO) CountTotalByJobIds(ctx context.Context, jobIds []int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Application{}).
		Where("job_id IN ?", jobIds).Count(&count).Error
	return count, err
}

func (d *GORMApplicationDAO) CountByStatus(ctx context.Context, uid int64) ([]StatusCnt, error) {
	var res []StatusCnt
	err := d.db.WithContext(ctx).Model(&Application{}).
		Select("status, COUNT(id) AS cnt").
		Where("uid = ?", uid).
		Group("status").Scan(&res).Error
	return res, err
}

type Application struct {
	Id    int64 `gorm:"primaryKey,autoIncrement"`
	JobId int64 `gorm:"not null;uniqueIndex:uk_job_uid"`
	// Uid 投递人
	Uid    int64  `gorm:"not null;uniqueIndex:uk_job_uid;index:idx_uid"`
	Status string `gorm:"type:varchar(32);not null;default:'pending'"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}

type JobCnt struct {
	JobId int64
	Cnt   int64
}

type StatusCnt struct {
	Status string
	Cnt    int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Application{})
}
