package errs

var (
	SystemError = ErrorCode{Code: 505001, Msg: "系统错误"}
	JobNotFound = ErrorCode{Code: 505002, Msg: "岗位不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
