// Package protocol implements the awsJson1.1 wire format spoken by the service.
package protocol

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"

	"github.com/bravo68web/codecommit/pkg/errors"
)

const (
	// ContentType is sent on every request.
	ContentType = "application/x-amz-json-1.1"
	// TargetPrefix qualifies operation names in the X-Amz-Target header.
	TargetPrefix = "CodeCommit_20150413"
	// SigningName is the service name used for request signing.
	SigningName = "codecommit"

	HeaderTarget    = "X-Amz-Target"
	HeaderErrorType = "X-Amzn-ErrorType"
	HeaderRequestID = "X-Amzn-RequestId"
)

// Target returns the X-Amz-Target value for operation.
func Target(operation string) string {
	return TargetPrefix + "." + operation
}

// OperationFromTarget is the inverse of Target. ok is false when target does
// not carry the service prefix.
func OperationFromTarget(target string) (operation string, ok bool) {
	prefix, op, found := strings.Cut(target, ".")
	if !found || prefix != TargetPrefix || op == "" {
		return "", false
	}
	return op, true
}

// API is the json-iterator configuration used for every payload. Field names
// are case-sensitive because error bodies use both "message" and "Message".
var API = func() jsoniter.API {
	api := jsoniter.Config{
		EscapeHTML:             false,
		SortMapKeys:            true,
		CaseSensitive:          true,
		ValidateJsonRawMessage: true,
	}.Froze()
	api.RegisterExtension(&epochSecondsExtension{})
	return api
}()

// Marshal encodes v as a request payload. A nil v encodes as an empty object.
func Marshal(v any) ([]byte, error) {
	if v == nil {
		return []byte("{}"), nil
	}
	data, err := API.Marshal(v)
	if err != nil {
		return nil, errors.WrapClass(errors.ErrSerialization, err, "encode payload")
	}
	return data, nil
}

// Unmarshal decodes a response payload into v. Unknown fields are ignored and
// an empty payload leaves v untouched.
func Unmarshal(data []byte, v any) error {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	if err := API.Unmarshal(data, v); err != nil {
		return errors.WrapClass(errors.ErrSerialization, err, "decode payload")
	}
	return nil
}

var (
	timeType    = reflect.TypeFor[time.Time]()
	timePtrType = reflect.TypeFor[*time.Time]()
)

// epochSecondsExtension encodes time.Time and *time.Time as epoch seconds.
// The pointer form must be claimed here, otherwise json.Marshaler on
// *time.Time wins and writes RFC 3339.
type epochSecondsExtension struct {
	jsoniter.DummyExtension
}

func (e *epochSecondsExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	switch typ.Type1() {
	case timeType:
		return epochSecondsCodec{}
	case timePtrType:
		return epochSecondsPtrEncoder{}
	}
	return nil
}

func (e *epochSecondsExtension) CreateDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	if typ.Type1() == timeType {
		return epochSecondsCodec{}
	}
	return nil
}

type epochSecondsCodec struct{}

func (epochSecondsCodec) IsEmpty(ptr unsafe.Pointer) bool {
	return (*time.Time)(ptr).IsZero()
}

func (epochSecondsCodec) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	t := *(*time.Time)(ptr)
	if t.Nanosecond() == 0 {
		stream.WriteInt64(t.Unix())
		return
	}
	stream.WriteRaw(strconv.FormatFloat(float64(t.UnixNano())/1e9, 'f', -1, 64))
}

type epochSecondsPtrEncoder struct{}

func (epochSecondsPtrEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return *(**time.Time)(ptr) == nil
}

func (epochSecondsPtrEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	t := *(**time.Time)(ptr)
	if t == nil {
		stream.WriteNil()
		return
	}
	epochSecondsCodec{}.Encode(unsafe.Pointer(t), stream)
}

func (epochSecondsCodec) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
	case jsoniter.NumberValue:
		t, err := ParseEpochSeconds(string(iter.ReadNumber()))
		if err != nil {
			iter.ReportError("decode timestamp", err.Error())
			return
		}
		*(*time.Time)(ptr) = t
	case jsoniter.StringValue:
		// some services quote timestamps; accept either form
		s := iter.ReadString()
		if t, err := ParseEpochSeconds(s); err == nil {
			*(*time.Time)(ptr) = t
			return
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			iter.ReportError("decode timestamp", err.Error())
			return
		}
		*(*time.Time)(ptr) = t
	default:
		iter.ReportError("decode timestamp", "expected epoch seconds")
		iter.Skip()
	}
}

// ParseEpochSeconds parses a decimal number of seconds since the epoch.
// Fractional seconds are kept to nanosecond precision.
func ParseEpochSeconds(s string) (time.Time, error) {
	if strings.ContainsAny(s, "eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return time.Time{}, err
		}
		sec, frac := math.Modf(f)
		return time.Unix(int64(sec), int64(math.Round(frac*1e9))).UTC(), nil
	}

	whole, frac, _ := strings.Cut(s, ".")
	sec, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	var nsec int64
	if frac != "" {
		if len(frac) > 9 {
			frac = frac[:9]
		}
		frac += strings.Repeat("0", 9-len(frac))
		if nsec, err = strconv.ParseInt(frac, 10, 64); err != nil {
			return time.Time{}, err
		}
		if strings.HasPrefix(whole, "-") {
			nsec = -nsec
		}
	}
	return time.Unix(sec, nsec).UTC(), nil
}
