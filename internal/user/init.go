package user

import (
	"sync"

	"github.com/ecodeclub/jobboard/internal/user/internal/repository/dao"
	"github.com/ego-component/egorm"
)

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.UserDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMUserDAO(db)
}
