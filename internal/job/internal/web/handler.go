package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/job/internal/service"
	"github.com/ecodeclub/jobboard/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc     service.Service
	userSvc user.UserService
	logger  *elog.Component
}

func NewHandler(svc service.Service, userSvc user.UserService) *Handler {
	return &Handler{
		svc:     svc,
		userSvc: userSvc,
		logger:  elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	jobs := server.Group("/jobs")
	jobs.POST("/create", ginx.BS[SaveJobReq](h.Create))
}

func (h *Handler) Create(ctx *ginx.Context, req SaveJobReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	j := req.toDomain()
	j.Uid = uid
	id, err := h.svc.Create(ctx, j)
	if errors.Is(err, service.ErrInvalidJob) {
		return invalidInputResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	created, err := h.svc.Detail(ctx, id)
	if err != nil {
		return systemErrorResult, err
	}
	poster, err := h.userSvc.Profile(ctx, uid)
	if err != nil {
		// 发布已经成功了，拼不出发布人信息只记日志
		h.logger.Error("查询发布人信息失败",
			elog.Int64("uid", uid),
			elog.FieldErr(err))
	}
	return ginx.Result{
		Data: newJob(created, poster),
	}, nil
}
