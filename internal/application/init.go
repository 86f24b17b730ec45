package application

import (
	"sync"

	"github.com/ecodeclub/jobboard/internal/application/internal/repository/dao"
	"github.com/ego-component/egorm"
)

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.ApplicationDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMApplicationDAO(db)
}
