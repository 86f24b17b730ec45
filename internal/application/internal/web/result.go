package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobboard/internal/application/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	jobNotFoundResult = ginx.Result{
		Code: errs.JobNotFound.Code,
		Msg:  errs.JobNotFound.Msg,
	}
	duplicateResult = ginx.Result{
		Code: errs.DuplicateApplication.Code,
		Msg:  errs.DuplicateApplication.Msg,
	}
)
