package database

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const instrumentationName = "internal/pkg/database/tracing"

// GormTracingPlugin 给所有 GORM 操作挂上 OpenTelemetry span
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	if err := db.Callback().Query().Before("gorm:query").
		Register("tracing:before_query", p.before("SELECT")); err != nil {
		return err
	}
	if err := db.Callback().Query().After("gorm:query").
		Register("tracing:after_query", p.after); err != nil {
		return err
	}
	if err := db.Callback().Create().Before("gorm:create").
		Register("tracing:before_create", p.before("INSERT")); err != nil {
		return err
	}
	if err := db.Callback().Create().After("gorm:create").
		Register("tracing:after_create", p.after); err != nil {
		return err
	}
	if err := db.Callback().Update().Before("gorm:update").
		Register("tracing:before_update", p.before("UPDATE")); err != nil {
		return err
	}
	if err := db.Callback().Update().After("gorm:update").
		Register("tracing:after_update", p.after); err != nil {
		return err
	}
	if err := db.Callback().Delete().Before("gorm:delete").
		Register("tracing:before_delete", p.before("DELETE")); err != nil {
		return err
	}
	if err := db.Callback().Delete().After("gorm:delete").
		Register("tracing:after_delete", p.after); err != nil {
		return err
	}
	if err := db.Callback().Raw().Before("gorm:raw").
		Register("tracing:before_raw", p.before("RAW")); err != nil {
		return err
	}
	return db.Callback().Raw().After("gorm:raw").
		Register("tracing:after_raw", p.after)
}

func (p *GormTracingPlugin) before(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		ctx, span := p.tracer.Start(db.Statement.Context,
			fmt.Sprintf("%s %s", db.Statement.Table, op),
			trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.Set("tracing:span", span)
	}
}

func (p *GormTracingPlugin) after(db *gorm.DB) {
	val, ok := db.Get("tracing:span")
	if !ok {
		return
	}
	span, ok := val.(trace.Span)
	if !ok {
		return
	}
	defer span.End()
	attrs := []attribute.KeyValue{
		attribute.String("db.system", "mysql"),
		attribute.String("db.table", db.Statement.Table),
	}
	if stmt := db.Statement.SQL.String(); stmt != "" {
		attrs = append(attrs, attribute.String("db.statement", stmt))
	}
	if db.Statement.RowsAffected > 0 {
		attrs = append(attrs, attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	}
	span.SetAttributes(attrs...)
	// 没查到不算错误
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, db.Error.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
