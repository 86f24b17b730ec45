package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/application"
	"github.com/ecodeclub/jobboard/internal/bff"
	"github.com/ecodeclub/jobboard/internal/dashboard"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	bffHdl *bff.Handler,
	userHdl *user.Handler,
	jobHdl *job.Handler,
	appHdl *application.Handler,
	dashHdl *dashboard.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 岗位列表和详情不用登录
	bffHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	jobHdl.PrivateRoutes(res.Engine)
	appHdl.PrivateRoutes(res.Engine)
	dashHdl.PrivateRoutes(res.Engine)
	return res
}
