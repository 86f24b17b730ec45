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
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/application/internal/errs"
	"github.com/ecodeclub/jobboard/internal/application/internal/integration/startup"
	"github.com/ecodeclub/jobboard/internal/application/internal/repository/dao"
	"github.com/ecodeclub/jobboard/internal/application/internal/web"
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
	uid       = int64(2081)
	posterUid = int64(2082)
)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.ApplicationDAO
	jobSvc job.Service
}

func (s *HandlerTestSuite) SetupSuite() {
	db := testioc.InitDB()
	userModule, err := user.InitModule(db, testioc.InitCache())
	require.NoError(s.T(), err)
	jobModule, err := job.InitModule(db, userModule)
	require.NoError(s.T(), err)
	module, err := startup.InitModule(jobModule, userModule)
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = db
	s.dao = dao.NewGORMApplicationDAO(db)
	s.jobSvc = jobModule.Svc
	for _, u := range [][]any{
		{uid, "求职者", "seeker@example.com"},
		{posterUid, "老板", "boss@example.com"},
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

func (s *HandlerTestSuite) createJob(title string) int64 {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	id, err := s.jobSvc.Create(ctx, job.Job{
		Title:       title,
		Description: "写 Go 的",
		Company:     "极客时间",
		Location:    "北京",
		Type:        job.JobTypeFullTime,
		Salary:      "30k-50k",
		Uid:         posterUid,
	})
	require.NoError(s.T(), err)
	return id
}

func (s *HandlerTestSuite) TestApply() {
	testCases := []struct {
		name     string
		before   func(t *testing.T) int64
		after    func(t *testing.T, jid int64)
		wantCode int
		wantBiz  int
	}{
		{
			name: "投递成功",
			before: func(t *testing.T) int64 {
				return s.createJob("Go 研发工程师")
			},
			after: func(t *testing.T, jid int64) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				app, err := s.dao.FindByJobUid(ctx, jid, uid)
				require.NoError(t, err)
				assert.True(t, app.Ctime > 0)
				assert.Equal(t, "pending", app.Status)
			},
			wantCode: 200,
		},
		{
			name: "重复投递",
			before: func(t *testing.T) int64 {
				jid := s.createJob("Go 研发工程师")
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				_, err := s.dao.Insert(ctx, dao.Application{
					JobId: jid,
					Uid:   uid,
				})
				require.NoError(t, err)
				return jid
			},
			after: func(t *testing.T, jid int64) {
				var cnt int64
				err := s.db.Model(&dao.Application{}).
					Where("job_id = ? AND uid = ?", jid, uid).Count(&cnt).Error
				require.NoError(t, err)
				assert.Equal(t, int64(1), cnt)
			},
			wantCode: 200,
			wantBiz:  errs.DuplicateApplication.Code,
		},
		{
			name: "岗位不存在",
			before: func(t *testing.T) int64 {
				return 999
			},
			after: func(t *testing.T, jid int64) {
				var cnt int64
				err := s.db.Model(&dao.Application{}).Count(&cnt).Error
				require.NoError(t, err)
				assert.Equal(t, int64(0), cnt)
			},
			wantCode: 200,
			wantBiz:  errs.JobNotFound.Code,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			jid := tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/applications/apply", iox.NewJSONReader(web.ApplyReq{Jid: jid}))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Application]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantBiz, res.Code)
			if res.Code == 0 {
				assert.True(t, res.Data.Id > 0)
				assert.Equal(t, jid, res.Data.JobId)
				assert.Equal(t, "pending", res.Data.Status)
				assert.Equal(t, "老板", res.Data.Job.Poster.Nickname)
			}
			tc.after(t, jid)
			for _, table := range []string{"applications", "jobs"} {
				err = s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
				require.NoError(t, err)
			}
		})
	}
}

// 并发投同一个岗位，唯一索引兜底，最多只能成一条
func (s *HandlerTestSuite) TestApplyConcurrent() {
	jid := s.createJob("Go 研发工程师")
	const n = 10
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			req, err := http.NewRequest(http.MethodPost,
				"/applications/apply", iox.NewJSONReader(web.ApplyReq{Jid: jid}))
			require.NoError(s.T(), err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.Application]()
			s.server.ServeHTTP(recorder, req)
		}()
	}
	wg.Wait()
	var cnt int64
	err := s.db.Model(&dao.Application{}).
		Where("job_id = ? AND uid = ?", jid, uid).Count(&cnt).Error
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), cnt)
}

func (s *HandlerTestSuite) TestList() {
	jid1 := s.createJob("Go 研发工程师")
	jid2 := s.createJob("前端工程师")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := s.dao.Insert(ctx, dao.Application{JobId: jid1, Uid: uid})
	require.NoError(s.T(), err)
	_, err = s.dao.Insert(ctx, dao.Application{JobId: jid2, Uid: uid})
	require.NoError(s.T(), err)

	req, err := http.NewRequest(http.MethodPost, "/applications/list", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.ApplicationList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	apps := recorder.MustScan().Data.Applications
	require.Len(s.T(), apps, 2)
	// 新的在前面
	assert.Equal(s.T(), jid2, apps[0].JobId)
	assert.Equal(s.T(), "前端工程师", apps[0].Job.Title)
	assert.Equal(s.T(), jid1, apps[1].JobId)
	assert.Equal(s.T(), "老板", apps[1].Job.Poster.Nickname)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
