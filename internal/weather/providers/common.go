package providers

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/i474232898/weather-widget/internal/weather"
)

var errNoHTTPClient = errors.New("http client not configured")

// payloadValidator reports field paths using the JSON names of the provider payload.
var payloadValidator = newPayloadValidator()

func newPayloadValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validatePayload checks the decoded payload against its struct tags and
// turns the first violation into a MalformedResponseError.
func validatePayload(payload interface{}) error {
	err := payloadValidator.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		ns := verrs[0].Namespace()
		// Drop the root struct name: "owmPayload.main.temp" -> "main.temp".
		if i := strings.Index(ns, "."); i >= 0 {
			ns = ns[i+1:]
		}
		return &weather.MalformedResponseError{Field: ns, Err: err}
	}
	return &weather.MalformedResponseError{Err: err}
}

// doRequest executes exactly one HTTP request. Transport failures are
// classified into weather.TimeoutError or weather.NetworkError; the status
// code is left to the caller.
func doRequest(ctx context.Context, client *http.Client, buildRequest func() (*http.Request, error)) (*http.Response, error) {
	if client == nil {
		return nil, errNoHTTPClient
	}

	req, err := buildRequest()
	if err != nil {
		return nil, err
	}

	// Ensure the request obeys context cancellation.
	req = req.WithContext(ctx)

	resp, err := client.Do(req)
	if err != nil {
		return nil, classifyTransportError(req.URL.Host, err)
	}
	return resp, nil
}

func classifyTransportError(host string, err error) error {
	// url.Error carries the full request URL, which includes the API key.
	cause := err
	var uerr *url.Error
	if errors.As(err, &uerr) {
		cause = uerr.Err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &weather.TimeoutError{Host: host, Err: cause}
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return &weather.TimeoutError{Host: host, Err: cause}
	}
	return &weather.NetworkError{Host: host, Err: cause}
}
