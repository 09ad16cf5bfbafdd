// Package gateway lets Lambda-style handlers run behind a plain echo server,
// standing in for API Gateway during local development.
package gateway

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HandlerFunc matches the signature handed to lambda.Start.
type HandlerFunc func(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayProxyResponse, error)

const requestIDHeader = echo.HeaderXRequestID

// Wrap adapts fn into an echo handler. Path parameters are taken from the
// echo route, multi-valued query parameters keep their first value.
func Wrap(routeKey string, fn HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := NewRequest(c, routeKey)

		resp, err := fn(c.Request().Context(), req)
		if err != nil {
			return err
		}
		return WriteResponse(c, resp)
	}
}

func NewRequest(c echo.Context, routeKey string) events.APIGatewayV2HTTPRequest {
	r := c.Request()

	pathParams := make(map[string]string, len(c.ParamNames()))
	for _, name := range c.ParamNames() {
		pathParams[name] = c.Param(name)
	}

	var query map[string]string
	if values := r.URL.Query(); len(values) > 0 {
		query = make(map[string]string, len(values))
		for k, v := range values {
			if len(v) > 0 {
				query[k] = v[0]
			}
		}
	}

	headers := make(map[string]string, len(r.Header))
	for k, v := range r.Header {
		headers[strings.ToLower(k)] = strings.Join(v, ",")
	}

	requestID := r.Header.Get(requestIDHeader)
	if requestID == "" {
		requestID = c.Response().Header().Get(requestIDHeader)
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}

	now := time.Now().UTC()
	return events.APIGatewayV2HTTPRequest{
		Version:               "2.0",
		RouteKey:              routeKey,
		RawPath:               r.URL.Path,
		RawQueryString:        r.URL.RawQuery,
		Headers:               headers,
		QueryStringParameters: query,
		PathParameters:        pathParams,
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			RouteKey:  routeKey,
			RequestID: requestID,
			Stage:     "$default",
			Time:      now.Format("02/Jan/2006:15:04:05 -0700"),
			TimeEpoch: now.UnixMilli(),
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
				Method:    r.Method,
				Path:      r.URL.Path,
				Protocol:  r.Proto,
				SourceIP:  c.RealIP(),
				UserAgent: r.UserAgent(),
			},
		},
	}
}

func WriteResponse(c echo.Context, resp events.APIGatewayProxyResponse) error {
	h := c.Response().Header()
	for k, v := range resp.Headers {
		h.Set(k, v)
	}
	for k, vs := range resp.MultiValueHeaders {
		for _, v := range vs {
			h.Add(k, v)
		}
	}

	status := resp.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	c.Response().WriteHeader(status)
	_, err := c.Response().Write([]byte(resp.Body))
	return err
}
