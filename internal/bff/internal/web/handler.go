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

package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/application"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

type Handler struct {
	jobSvc  job.Service
	appSvc  application.Service
	userSvc user.UserService
	logger  *elog.Component
}

func NewHandler(jobSvc job.Service,
	appSvc application.Service,
	userSvc user.UserService) *Handler {
	return &Handler{
		jobSvc:  jobSvc,
		appSvc:  appSvc,
		userSvc: userSvc,
		logger:  elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	jobs := server.Group("/jobs")
	jobs.POST("/list", ginx.B[ListJobsReq](h.List))
	jobs.POST("/detail", ginx.B[JobIdReq](h.Detail))
}

func (h *Handler) List(ctx *ginx.Context, req ListJobsReq) (ginx.Result, error) {
	js, err := h.jobSvc.List(ctx, job.Filter{
		Type:     job.JobType(req.Type),
		Location: req.Location,
		Keyword:  req.Keyword,
	})
	if err != nil {
		return systemErrorResult, err
	}
	counts := map[int64]int64{}
	posters := map[int64]user.User{}
	if len(js) > 0 {
		ids := slice.Map(js, func(idx int, src job.Job) int64 {
			return src.Id
		})
		var err1 error
		counts, err1 = h.appSvc.CountByJobIds(ctx, ids)
		// 投递数拼不出来不影响列表
		if err1 != nil {
			h.logger.Error("查询岗位投递数失败",
				elog.Any("ids", ids),
				elog.FieldErr(err1))
			counts = map[int64]int64{}
		}
		uids := slice.Map(js, func(idx int, src job.Job) int64 {
			return src.Uid
		})
		us, err1 := h.userSvc.FindByIds(ctx, uids)
		if err1 != nil {
			return systemErrorResult, err1
		}
		posters = slice.ToMap(us, func(element user.User) int64 {
			return element.Id
		})
	}
	return ginx.Result{
		Data: JobList{
			Jobs: slice.Map(js, func(idx int, src job.Job) Job {
				return newJob(src, posters[src.Uid], counts[src.Id], false)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req JobIdReq) (ginx.Result, error) {
	detail, err := h.jobSvc.Detail(ctx, req.Jid)
	if errors.Is(err, job.ErrJobNotFound) {
		return jobNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	var (
		eg         errgroup.Group
		poster     user.User
		count      int64
		hasApplied bool
	)
	eg.Go(func() error {
		var er error
		poster, er = h.userSvc.Profile(ctx, detail.Uid)
		return er
	})
	eg.Go(func() error {
		counts, er := h.appSvc.CountByJobIds(ctx, []int64{detail.Id})
		count = counts[detail.Id]
		return er
	})
	// 没登录的访客也能看详情，这时候 hasApplied 恒为 false
	if sess, er := session.Get(ctx); er == nil {
		uid := sess.Claims().Uid
		eg.Go(func() error {
			var er1 error
			hasApplied, er1 = h.appSvc.HasApplied(ctx, uid, detail.Id)
			return er1
		})
	}
	if err = eg.Wait(); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newJob(detail, poster, count, hasApplied),
	}, nil
}
