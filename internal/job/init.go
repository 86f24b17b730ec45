package job

import (
	"sync"

	"github.com/ecodeclub/jobboard/internal/job/internal/repository/dao"
	"github.com/ego-component/egorm"
)

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.JobDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMJobDAO(db)
}
