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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/application"
	"github.com/ecodeclub/jobboard/internal/dashboard/internal/service"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc     service.Service
	jobSvc  job.Service
	appSvc  application.Service
	userSvc user.UserService
	logger  *elog.Component
}

func NewHandler(svc service.Service,
	jobSvc job.Service,
	appSvc application.Service,
	userSvc user.UserService) *Handler {
	return &Handler{
		svc:     svc,
		jobSvc:  jobSvc,
		appSvc:  appSvc,
		userSvc: userSvc,
		logger:  elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/dashboard")
	g.GET("/stats", ginx.S(h.Stats))
	g.POST("/jobs", ginx.S(h.MyJobs))
}

func (h *Handler) Stats(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	stats, err := h.svc.Stats(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newStats(stats),
	}, nil
}

func (h *Handler) MyJobs(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	js, err := h.jobSvc.ListByUid(ctx, uid)
	if err != nil {
		return systemErrorResult, err
	}
	counts := map[int64]int64{}
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
	}
	// 都是自己发布的岗位，发布者就是自己
	me, err := h.userSvc.Profile(ctx, uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: JobList{
			Jobs: slice.Map(js, func(idx int, src job.Job) Job {
				return newJob(src, me, counts[src.Id])
			}),
		},
	}, nil
}
