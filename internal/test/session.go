package test

import (
	"errors"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
)

// 初始化一下 session
func init() {
	session.SetDefaultProvider(&SessionProvider{})
}

type SessionProvider struct {
}

func (s *SessionProvider) NewSession(ctx *gctx.Context, uid int64, jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	return nil, nil
}

func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	// 没塞 session 就当没登录
	val, ok := ctx.Get("_session")
	if !ok {
		return nil, errors.New("未登录")
	}
	return val.(session.Session), nil
}

func (s *SessionProvider) Destroy(ctx *gctx.Context) error {
	return nil
}

func (s *SessionProvider) UpdateClaims(ctx *gctx.Context, claims session.Claims) error {
	return nil
}

func (s *SessionProvider) RenewAccessToken(ctx *gctx.Context) error {
	return nil
}
