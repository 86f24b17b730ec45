package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/application/internal/domain"
	"github.com/ecodeclub/jobboard/internal/application/internal/service"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc     service.Service
	jobSvc  job.Service
	userSvc user.UserService
	logger  *elog.Component
}

func NewHandler(svc service.Service, jobSvc job.Service, userSvc user.UserService) *Handler {
	return &Handler{
		svc:     svc,
		jobSvc:  jobSvc,
		userSvc: userSvc,
		logger:  elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	apps := server.Group("/applications")
	apps.POST("/apply", ginx.BS[ApplyReq](h.Apply))
	apps.POST("/list", ginx.S(h.List))
}

func (h *Handler) Apply(ctx *ginx.Context, req ApplyReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	app, err := h.svc.Apply(ctx, uid, req.Jid)
	if errors.Is(err, service.ErrJobNotFound) {
		return jobNotFoundResult, nil
	}
	if errors.Is(err, service.ErrDuplicateApplication) {
		return duplicateResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	j, poster, err := h.jobWithPoster(ctx, app.JobId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newApplication(app, j, poster),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	apps, err := h.svc.ListByUid(ctx, uid)
	if err != nil {
		return systemErrorResult, err
	}
	jobs := map[int64]job.Job{}
	posters := map[int64]user.User{}
	if len(apps) > 0 {
		jobIds := slice.Map(apps, func(idx int, src domain.Application) int64 {
			return src.JobId
		})
		js, err := h.jobSvc.GetByIds(ctx, jobIds)
		if err != nil {
			return systemErrorResult, err
		}
		jobs = slice.ToMap(js, func(element job.Job) int64 {
			return element.Id
		})
		uids := slice.Map(js, func(idx int, src job.Job) int64 {
			return src.Uid
		})
		us, err := h.userSvc.FindByIds(ctx, uids)
		if err != nil {
			return systemErrorResult, err
		}
		posters = slice.ToMap(us, func(element user.User) int64 {
			return element.Id
		})
	}
	return ginx.Result{
		Data: ApplicationList{
			Applications: slice.Map(apps, func(idx int, src domain.Application) Application {
				j := jobs[src.JobId]
				return newApplication(src, j, posters[j.Uid])
			}),
		},
	}, nil
}

func (h *Handler) jobWithPoster(ctx *ginx.Context, jobId int64) (job.Job, user.User, error) {
	j, err := h.jobSvc.Detail(ctx, jobId)
	if err != nil {
		return job.Job{}, user.User{}, err
	}
	poster, err := h.userSvc.Profile(ctx, j.Uid)
	if err != nil {
		// 岗位还在，发布人信息拼不出来只记日志
		h.logger.Error("查询发布人信息失败",
			elog.Int64("uid", j.Uid),
			elog.FieldErr(err))
	}
	return j, poster, nil
}
