package bff

import (
	"github.com/ecodeclub/jobboard/internal/bff/internal/web"
)

type Handler = web.Handler

type Module struct {
	Hdl *Handler
}
