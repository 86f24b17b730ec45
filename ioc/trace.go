package ioc

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

// InitZipkinTracer 初始化 zipkin tracer
func InitZipkinTracer() *trace.TracerProvider {
	res, err := newResource()
	if err != nil {
		elog.Panic("init resource failed", elog.FieldErr(err))
	}
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	tp, err := newTracerProvider(res)
	if err != nil {
		elog.Panic("init tracer provider failed", elog.FieldErr(err))
	}
	otel.SetTracerProvider(tp)
	return tp
}

func newResource() (*resource.Resource, error) {
	serviceName := econf.GetString("trace.zipkin.serviceName")
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion("v0.0.1"),
		),
	)
}

func newTracerProvider(res *resource.Resource) (*trace.TracerProvider, error) {
	exporter, err := zipkin.New(econf.GetString("trace.zipkin.endpoint"))
	if err != nil {
		return nil, err
	}
	return trace.NewTracerProvider(
		trace.WithBatcher(exporter, trace.WithBatchTimeout(time.Second)),
		trace.WithResource(res),
	), nil
}
