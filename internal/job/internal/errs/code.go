package errs

var (
	SystemError  = ErrorCode{Code: 502001, Msg: "系统错误"}
	InvalidInput = ErrorCode{Code: 502002, Msg: "缺少必填字段"}
	JobNotFound  = ErrorCode{Code: 502003, Msg: "岗位不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
