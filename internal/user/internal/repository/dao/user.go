package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDataNotFound 通用的数据没找到
var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrUserDuplicate 邮箱冲突
var ErrUserDuplicate = errors.New("用户已经存在")

type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	FindById(ctx context.Context, id int64) (User, error)
	FindByIds(ctx context.Context, ids []int64) ([]User, error)
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrUserDuplicate
		}
	}
	return u.Id, err
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) FindByIds(ctx context.Context, ids []int64) ([]User, error) {
	var us []User
	err := ud.db.WithContext(ctx).Find(&us, "id IN ?", ids).Error
	return us, err
}

// User 用户的生命周期由登录侧负责，这边只读取公开信息
type User struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Nickname string `gorm:"type:varchar(128)"`
	Email    string `gorm:"type:varchar(256);unique"`
	Avatar   string
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}
