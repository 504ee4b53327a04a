package protocol

import (
	"net/http"
	"strings"

	"github.com/bravo68web/codecommit/pkg/codecommit/types"
)

type errorEnvelope struct {
	Type         string `json:"__type,omitempty"`
	Code         string `json:"code,omitempty"`
	Message      string `json:"message,omitempty"`
	MessageUpper string `json:"Message,omitempty"`
}

// DecodeError turns a non-2xx response into a ServiceError. The
// discriminator is taken from the X-Amzn-ErrorType header, then the __type
// and code body fields. A body that cannot be read yields a ServiceFault
// carrying the HTTP status text.
func DecodeError(status int, header http.Header, body []byte) *types.ServiceError {
	var env errorEnvelope
	parsed := len(strings.TrimSpace(string(body))) > 0 && API.Unmarshal(body, &env) == nil

	discriminator := header.Get(HeaderErrorType)
	if discriminator == "" {
		discriminator = env.Type
	}
	if discriminator == "" {
		discriminator = env.Code
	}

	message := env.Message
	if message == "" {
		message = env.MessageUpper
	}
	if !parsed && message == "" {
		message = http.StatusText(status)
	}

	return types.DecodeServiceError(discriminator, message)
}

// EncodeError builds an error body in the form the service sends.
func EncodeError(discriminator, message string) []byte {
	data, _ := API.Marshal(errorEnvelope{Type: discriminator, Message: message})
	return data
}
