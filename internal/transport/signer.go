package transport

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"

	"github.com/bravo68web/codecommit/internal/protocol"
	"github.com/bravo68web/codecommit/pkg/errors"
)

// signingRoundTripper signs each request with SigV4 before handing it to base.
type signingRoundTripper struct {
	base        http.RoundTripper
	signer      *v4.Signer
	credentials aws.CredentialsProvider
	region      string
	now         func() time.Time
}

func newSigningRoundTripper(base http.RoundTripper, creds aws.CredentialsProvider, region string) *signingRoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &signingRoundTripper{
		base:        base,
		signer:      v4.NewSigner(),
		credentials: aws.NewCredentialsCache(creds),
		region:      region,
		now:         time.Now,
	}
}

func (s *signingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	creds, err := s.credentials.Retrieve(ctx)
	if err != nil {
		return nil, errors.WrapClass(errors.ErrCredentials, err, "retrieve credentials")
	}

	payload, err := readBody(req)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(payload)

	signed := req.Clone(ctx)
	signed.Body = io.NopCloser(bytes.NewReader(payload))
	signed.ContentLength = int64(len(payload))
	signed.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(payload)), nil
	}

	err = s.signer.SignHTTP(ctx, creds, signed, hex.EncodeToString(sum[:]), protocol.SigningName, s.region, s.now().UTC())
	if err != nil {
		return nil, errors.WrapClass(errors.ErrCredentials, err, "sign request")
	}

	return s.base.RoundTrip(signed)
}

// readBody returns the request payload without consuming req.Body when a
// GetBody func is available.
func readBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	if req.GetBody != nil {
		rc, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	defer req.Body.Close()
	return io.ReadAll(req.Body)
}
