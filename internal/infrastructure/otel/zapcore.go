package otel

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel/log"
	"go.uber.org/zap/zapcore"
)

// attributeKeys renames client log fields to OpenTelemetry semantic keys.
var attributeKeys = map[string]string{
	"operation":   "rpc.method",
	"region":      "cloud.region",
	"endpoint":    "server.address",
	"status_code": "http.response.status_code",
	"request_id":  "aws.request_id",
	"body_size":   "http.request.body.size",
	"error_kind":  "error.type",
}

// ZapCore is a zapcore.Core that emits entries as OpenTelemetry log records
type ZapCore struct {
	zapcore.LevelEnabler
	provider *Provider
	logger   log.Logger
	fields   []zapcore.Field
}

// NewZapCore creates a ZapCore that exports through provider
func NewZapCore(provider *Provider, level zapcore.LevelEnabler) *ZapCore {
	return &ZapCore{
		LevelEnabler: level,
		provider:     provider,
		logger:       provider.Logger(),
	}
}

// With implements zapcore.Core
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	newFields := make([]zapcore.Field, len(c.fields)+len(fields))
	copy(newFields, c.fields)
	copy(newFields[len(c.fields):], fields)

	return &ZapCore{
		LevelEnabler: c.LevelEnabler,
		provider:     c.provider,
		logger:       c.logger,
		fields:       newFields,
	}
}

// Check implements zapcore.Core
func (c *ZapCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

// Write implements zapcore.Core
func (c *ZapCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	c.logger.Emit(context.Background(), c.record(entry, fields))
	return nil
}

func (c *ZapCore) record(entry zapcore.Entry, fields []zapcore.Field) log.Record {
	var record log.Record
	record.SetTimestamp(entry.Time)
	record.SetObservedTimestamp(time.Now())
	record.SetSeverity(severity(entry.Level))
	record.SetSeverityText(entry.Level.CapitalString())
	record.SetBody(log.StringValue(entry.Message))

	attrs := make([]log.KeyValue, 0, len(c.fields)+len(fields)+3)
	if entry.Caller.Defined {
		attrs = append(attrs,
			log.String("code.filepath", entry.Caller.TrimmedPath()),
			log.String("code.function", entry.Caller.Function),
		)
	}
	if entry.LoggerName != "" {
		attrs = append(attrs, log.String("logger", entry.LoggerName))
	}
	if entry.Stack != "" {
		attrs = append(attrs, log.String("exception.stacktrace", entry.Stack))
	}

	for _, f := range c.fields {
		if kv := keyValue(f); kv.Key != "" {
			attrs = append(attrs, kv)
		}
	}
	for _, f := range fields {
		if kv := keyValue(f); kv.Key != "" {
			attrs = append(attrs, kv)
		}
	}

	record.AddAttributes(attrs...)
	return record
}

// Sync implements zapcore.Core
func (c *ZapCore) Sync() error {
	if c.provider == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.provider.ForceFlush(ctx)
}

func severity(level zapcore.Level) log.Severity {
	switch level {
	case zapcore.DebugLevel:
		return log.SeverityDebug
	case zapcore.InfoLevel:
		return log.SeverityInfo
	case zapcore.WarnLevel:
		return log.SeverityWarn
	case zapcore.ErrorLevel, zapcore.DPanicLevel:
		return log.SeverityError
	case zapcore.PanicLevel, zapcore.FatalLevel:
		return log.SeverityFatal
	default:
		return log.SeverityInfo
	}
}

func attributeKey(key string) string {
	if k, ok := attributeKeys[key]; ok {
		return k
	}
	return key
}

func keyValue(field zapcore.Field) log.KeyValue {
	key := attributeKey(field.Key)

	switch field.Type {
	case zapcore.BoolType:
		return log.Bool(key, field.Integer == 1)

	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type,
		zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type:
		return log.Int64(key, field.Integer)

	// zap stores float bits in Integer
	case zapcore.Float64Type:
		return log.Float64(key, math.Float64frombits(uint64(field.Integer)))
	case zapcore.Float32Type:
		return log.Float64(key, float64(math.Float32frombits(uint32(field.Integer))))

	case zapcore.StringType:
		return log.String(key, field.String)

	case zapcore.DurationType:
		return log.String(key, time.Duration(field.Integer).String())

	case zapcore.TimeType:
		t := time.Unix(0, field.Integer)
		if loc, ok := field.Interface.(*time.Location); ok {
			t = t.In(loc)
		}
		return log.String(key, t.Format(time.RFC3339Nano))

	case zapcore.TimeFullType:
		if t, ok := field.Interface.(time.Time); ok {
			return log.String(key, t.Format(time.RFC3339Nano))
		}

	case zapcore.ErrorType:
		if err, ok := field.Interface.(error); ok {
			return log.String(key, err.Error())
		}

	case zapcore.StringerType:
		if s, ok := field.Interface.(fmt.Stringer); ok {
			return log.String(key, s.String())
		}

	case zapcore.BinaryType:
		if b, ok := field.Interface.([]byte); ok {
			return log.Bytes(key, b)
		}

	case zapcore.ByteStringType:
		if b, ok := field.Interface.([]byte); ok {
			return log.String(key, string(b))
		}

	case zapcore.SkipType, zapcore.NamespaceType:

	default:
		if field.Interface != nil {
			return log.String(key, fmt.Sprintf("%v", field.Interface))
		}
	}
	return log.KeyValue{}
}

// NewCombinedCore tees entries to localCore and to OTEL
func NewCombinedCore(localCore zapcore.Core, provider *Provider, level zapcore.LevelEnabler) zapcore.Core {
	return zapcore.NewTee(localCore, NewZapCore(provider, level))
}

var _ zapcore.Core = (*ZapCore)(nil)
