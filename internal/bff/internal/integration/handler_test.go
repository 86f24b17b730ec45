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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/application"
	"github.com/ecodeclub/jobboard/internal/bff/internal/errs"
	"github.com/ecodeclub/jobboard/internal/bff/internal/integration/startup"
	"github.com/ecodeclub/jobboard/internal/bff/internal/web"
	"github.com/ecodeclub/jobboard/internal/job"
	"github.com/ecodeclub/jobboard/internal/test"
	testioc "github.com/ecodeclub/jobboard/internal/test/ioc"
	"github.com/ecodeclub/jobboard/internal/user"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	uid       = int64(2091)
	posterUid = int64(2092)
)

type HandlerTestSuite struct {
	suite.Suite
	// server 带登录态，anonServer 是没登录的访客
	server     *egin.Component
	anonServer *egin.Component
	db         *egorm.Component
	jobSvc     job.Service
	appSvc     application.Service
}

func (s *HandlerTestSuite) SetupSuite() {
	db := testioc.InitDB()
	userModule, err := user.InitModule(db, testioc.InitCache())
	require.NoError(s.T(), err)
	jobModule, err := job.InitModule(db, userModule)
	require.NoError(s.T(), err)
	appModule, err := application.InitModule(db, jobModule, userModule)
	require.NoError(s.T(), err)
	module, err := startup.InitModule(jobModule, appModule, userModule)
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	module.Hdl.PublicRoutes(server.Engine)
	s.server = server
	anonServer := egin.Load("server").Build()
	module.Hdl.PublicRoutes(anonServer.Engine)
	s.anonServer = anonServer
	s.db = db
	s.jobSvc = jobModule.Svc
	s.appSvc = appModule.Svc
	for _, u := range [][]any{
		{uid, "求职者", "seeker2@example.com"},
		{posterUid, "老板", "boss2@example.com"},
	} {
		err = s.db.Exec("INSERT INTO `users`(`id`,`nickname`,`email`,`avatar`,`ctime`,`utime`) VALUES (?,?,?,'',123,123)",
			u...).Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) TearDownSuite() {
	for _, table := range []string{"applications", "jobs", "users"} {
		err := s.db.Exec("DROP TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{"applications", "jobs"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) createJob(j job.Job) int64 {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	j.Uid = posterUid
	id, err := s.jobSvc.Create(ctx, j)
	require.NoError(s.T(), err)
	return id
}

func (s *HandlerTestSuite) seedJobs() []int64 {
	return []int64{
		s.createJob(job.Job{
			Title:       "Go 研发工程师",
			Description: "写 Go 的",
			Company:     "极客时间",
			Location:    "北京",
			Type:        job.JobTypeFullTime,
			Salary:      "30k-50k",
		}),
		s.createJob(job.Job{
			Title:       "前端工程师",
			Description: "写页面的",
			Company:     "字节",
			Location:    "上海",
			Type:        job.JobTypePartTime,
		}),
		s.createJob(job.Job{
			Title:       "布道师",
			Description: "到处讲 Go",
			Company:     "极客时间",
			Location:    "上海",
			Type:        job.JobTypeFullTime,
		}),
	}
}

func (s *HandlerTestSuite) TestList() {
	ids := s.seedJobs()
	testCases := []struct {
		name    string
		req     web.ListJobsReq
		wantIds []int64
	}{
		{
			name: "不带条件全量返回",
			req:  web.ListJobsReq{},
			// 新的在前面
			wantIds: []int64{ids[2], ids[1], ids[0]},
		},
		{
			name:    "按类型过滤",
			req:     web.ListJobsReq{Type: "part-time"},
			wantIds: []int64{ids[1]},
		},
		{
			name:    "按地点模糊匹配",
			req:     web.ListJobsReq{Location: "上海"},
			wantIds: []int64{ids[2], ids[1]},
		},
		{
			name: "关键字搜标题和描述",
			req:  web.ListJobsReq{Keyword: "Go"},
			// 标题和描述里带 Go 的都要出来
			wantIds: []int64{ids[2], ids[0]},
		},
		{
			name:    "关键字搜公司",
			req:     web.ListJobsReq{Keyword: "字节"},
			wantIds: []int64{ids[1]},
		},
		{
			name:    "条件叠加",
			req:     web.ListJobsReq{Type: "full-time", Location: "上海"},
			wantIds: []int64{ids[2]},
		},
		{
			name:    "条件叠加之后没匹配",
			req:     web.ListJobsReq{Type: "part-time", Location: "北京"},
			wantIds: []int64{},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/jobs/list", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.JobList]()
			s.anonServer.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			jobs := recorder.MustScan().Data.Jobs
			actual := slice.Map(jobs, func(idx int, src web.Job) int64 {
				return src.Id
			})
			assert.Equal(t, tc.wantIds, actual)
			for _, j := range jobs {
				assert.Equal(t, "老板", j.Poster.Nickname)
				assert.False(t, j.HasApplied)
			}
		})
	}
}

func (s *HandlerTestSuite) TestDetail() {
	ids := s.seedJobs()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := s.appSvc.Apply(ctx, uid, ids[0])
	require.NoError(s.T(), err)

	testCases := []struct {
		name           string
		server         *egin.Component
		jid            int64
		wantBiz        int
		wantApplied    bool
		wantBizApplied int64
	}{
		{
			name:           "已投递",
			server:         s.server,
			jid:            ids[0],
			wantApplied:    true,
			wantBizApplied: 1,
		},
		{
			name:   "未投递",
			server: s.server,
			jid:    ids[1],
		},
		{
			name:   "没登录的访客",
			server: s.anonServer,
			jid:    ids[0],
			// 有人投过，但访客看不到自己的投递状态
			wantBizApplied: 1,
		},
		{
			name:    "岗位不存在",
			server:  s.server,
			jid:     999,
			wantBiz: errs.JobNotFound.Code,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/jobs/detail", iox.NewJSONReader(web.JobIdReq{Jid: tc.jid}))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Job]()
			tc.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantBiz, res.Code)
			if res.Code == 0 {
				assert.Equal(t, tc.jid, res.Data.Id)
				assert.Equal(t, tc.wantApplied, res.Data.HasApplied)
				assert.Equal(t, tc.wantBizApplied, res.Data.Applications)
				assert.Equal(t, "老板", res.Data.Poster.Nickname)
				assert.NotEmpty(t, res.Data.Description)
			}
		})
	}
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
