package main

import (
	"context"

	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/ecodeclub/jobboard/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
)

// export EGO_DEBUG=true
// go run main.go --config=config/local.yaml
func main() {
	egoApp := ego.New()
	tp := ioc.InitZipkinTracer()
	defer func(tp *trace.TracerProvider) {
		err := tp.Shutdown(context.Background())
		if err != nil {
			elog.Error("Shutdown zipkinTracer", elog.FieldErr(err))
		}
	}(tp)
	app, err := ioc.InitApp()
	if err != nil {
		panic(err)
	}
	err = egoApp.Invoker().
		Serve(app.Web).
		Run()
	if err != nil {
		elog.DefaultLogger.Error("App运行错误", elog.FieldErr(err))
	}
}
