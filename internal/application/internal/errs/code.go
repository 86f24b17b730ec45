package errs

var (
	SystemError          = ErrorCode{Code: 503001, Msg: "系统错误"}
	JobNotFound          = ErrorCode{Code: 503002, Msg: "岗位不存在"}
	DuplicateApplication = ErrorCode{Code: 503003, Msg: "你已经投递过这个岗位了"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
