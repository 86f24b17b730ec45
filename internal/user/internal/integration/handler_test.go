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

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/test"
	testioc "github.com/ecodeclub/jobboard/internal/test/ioc"
	"github.com/ecodeclub/jobboard/internal/user/internal/integration/startup"
	"github.com/ecodeclub/jobboard/internal/user/internal/repository/dao"
	"github.com/ecodeclub/jobboard/internal/user/internal/web"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(2061)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.UserDAO
}

func (s *HandlerTestSuite) SetupSuite() {
	module, err := startup.InitModule()
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
	s.db = testioc.InitDB()
	s.dao = dao.NewGORMUserDAO(s.db)
}

func (s *HandlerTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `users`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `users`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestProfile() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := s.dao.Insert(ctx, dao.User{
		Id:       uid,
		Nickname: "小王",
		Email:    "xiaowang@example.com",
		Avatar:   "https://example.com/avatar.png",
	})
	require.NoError(s.T(), err)

	req, err := http.NewRequest(http.MethodGet, "/users/profile", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), web.Profile{
		Nickname: "小王",
		Email:    "xiaowang@example.com",
		Avatar:   "https://example.com/avatar.png",
	}, recorder.MustScan().Data)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
