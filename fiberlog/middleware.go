// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package fiberlog

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mia-platform/polylog"
)

const (
	forwardedHostHeaderKey = "x-forwarded-host"
	forwardedForHeaderKey  = "x-forwarded-for"
	requestIDHeaderName    = "x-request-id"
	requestIDKey           = "reqId"

	IncomingRequestMessage  = "incoming request"
	RequestCompletedMessage = "request completed"
)

// http is the struct of the log formatter.
type http struct {
	Request  *request  `json:"request,omitempty"`
	Response *response `json:"response,omitempty"`
}

type userAgent struct {
	Original string `json:"original,omitempty"`
}

// request contains the items of request info log.
type request struct {
	Method    string    `json:"method,omitempty"`
	UserAgent userAgent `json:"userAgent"`
}

type responseBody struct {
	Bytes int `json:"bytes,omitempty"`
}

// response contains the items of response info log.
type response struct {
	StatusCode int          `json:"statusCode,omitempty"`
	Body       responseBody `json:"body"`
}

// host has the host information.
type host struct {
	Hostname      string `json:"hostname,omitempty"`
	ForwardedHost string `json:"forwardedHost,omitempty"`
	IP            string `json:"ip,omitempty"`
}

// url info
type url struct {
	Path string `json:"path,omitempty"`
}

func removePort(host string) string {
	return strings.Split(host, ":")[0]
}

// requestID returns the id sent by the client or a new random one.
func requestID(c *fiber.Ctx) string {
	if id := c.Get(requestIDHeaderName); id != "" {
		return id
	}
	return uuid.NewString()
}

// Middleware logs every request through the logger that registry binds to
// the name resolved from name. Requests whose path starts with one of
// excludedPrefix are not logged. Handlers retrieve the request logger with
// FromCtx.
func Middleware(registry *polylog.Registry, name any, excludedPrefix []string) fiber.Handler {
	loggerName := polylog.ResolveName(name)

	return func(c *fiber.Ctx) error {
		path := string(c.Request().URI().RequestURI())
		for _, prefix := range excludedPrefix {
			if strings.HasPrefix(path, prefix) {
				return c.Next()
			}
		}

		start := time.Now()
		log := withArgs(registry.ActiveProvider().Logger(loggerName), requestIDKey, requestID(c))
		c.SetUserContext(polylog.WithContext(c.UserContext(), log))

		log.Trace(IncomingRequestMessage,
			"http", http{
				Request: &request{
					Method:    c.Method(),
					UserAgent: userAgent{Original: c.Get(fiber.HeaderUserAgent)},
				},
			},
			"url", url{Path: path},
			"host", host{
				ForwardedHost: c.Get(forwardedHostHeaderKey),
				Hostname:      removePort(string(c.Request().Host())),
				IP:            c.Get(forwardedForHeaderKey),
			},
		)

		err := c.Next()

		statusCode := c.Response().StatusCode()
		bodySize := len(c.Response().Body())
		if fiberErr, ok := err.(*fiber.Error); ok {
			statusCode = fiberErr.Code
			bodySize = len(fiberErr.Error())
		} else if length, convErr := strconv.Atoi(c.GetRespHeader(fiber.HeaderContentLength)); convErr == nil {
			bodySize = length
		}

		log.Info(RequestCompletedMessage,
			"http", http{
				Request: &request{
					Method:    c.Method(),
					UserAgent: userAgent{Original: c.Get(fiber.HeaderUserAgent)},
				},
				Response: &response{
					StatusCode: statusCode,
					Body:       responseBody{Bytes: bodySize},
				},
			},
			"url", url{Path: path},
			"responseTime", float64(time.Since(start).Milliseconds()),
		)

		return err
	}
}

// FromCtx returns the logger stored by Middleware, or a NullLogger.
func FromCtx(c *fiber.Ctx) polylog.Logger {
	return polylog.FromContext(c.UserContext())
}

// argsLogger prepends fixed key/value pairs to every message.
type argsLogger struct {
	polylog.Logger
	args []interface{}
}

func withArgs(logger polylog.Logger, args ...interface{}) polylog.Logger {
	return &argsLogger{Logger: logger, args: args}
}

func (l *argsLogger) with(args []interface{}) []interface{} {
	return append(append(make([]interface{}, 0, len(l.args)+len(args)), l.args...), args...)
}

func (l *argsLogger) Trace(msg string, args ...interface{}) { l.Logger.Trace(msg, l.with(args)...) }
func (l *argsLogger) Debug(msg string, args ...interface{}) { l.Logger.Debug(msg, l.with(args)...) }
func (l *argsLogger) Info(msg string, args ...interface{})  { l.Logger.Info(msg, l.with(args)...) }
func (l *argsLogger) Warn(msg string, args ...interface{})  { l.Logger.Warn(msg, l.with(args)...) }
func (l *argsLogger) Error(msg string, args ...interface{}) { l.Logger.Error(msg, l.with(args)...) }
