package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/ascentware/invoicing/model"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type appError struct {
	Code   string // stable internal code for ops/support
	Status int    // matching HTTP status
	Err    error  // original error, never sent to the client
	Public string // safe text for users (optional)
}

func (e *appError) Error() string { return fmt.Sprintf("%s: %v", e.Code, e.Err) }
func (e *appError) Unwrap() error { return e.Err }

func ErrNotFound(err error) *appError {
	return &appError{Code: "NOT_FOUND", Status: http.StatusNotFound, Err: err}
}
func ErrInvalid(err error, public string) *appError {
	return &appError{Code: "INVALID_INPUT", Status: http.StatusBadRequest, Err: err, Public: public}
}
func ErrInternal(err error) *appError {
	return &appError{Code: "INTERNAL", Status: http.StatusInternalServerError, Err: err}
}

func httpStatusToCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "INVALID_INPUT"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusConflict:
		return "CONFLICT"
	default:
		return "INTERNAL"
	}
}

type controller struct {
	model *model.Store
}

// requestLogger returns the request-scoped logger, falling back to the
// process logger.
func requestLogger(c echo.Context, fallback *slog.Logger) *slog.Logger {
	if l, ok := c.Get("logger").(*slog.Logger); ok && l != nil {
		return l
	}
	return fallback
}

// NewController wires the routes and runs the HTTP server.
func NewController(store *model.Store) error {
	// Prod: JSON, Info+; Dev: text, Debug.
	var logger *slog.Logger
	if store.Config.Mode == "development" {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	ctrl := &controller{model: store}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.BodyLimit("20M"))
	e.Use(middleware.RequestID())
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll:   false,
		DisablePrintStack: true,
	}))

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			req := c.Request()
			res := c.Response()
			rid := res.Header().Get(echo.HeaderXRequestID)

			reqLogger := logger.With(
				"request_id", rid,
			).WithGroup("http").With(
				"method", req.Method,
				"path", req.URL.Path,
				"remote_ip", c.RealIP(),
			)
			c.Set("logger", reqLogger)

			err := next(c)

			latency := time.Since(start)
			attrs := []any{
				"status", res.Status,
				"latency_ms", float64(latency.Microseconds()) / 1000.0,
			}
			switch {
			case res.Status >= 500:
				reqLogger.Error("http_request", attrs...)
			case res.Status >= 400:
				reqLogger.Warn("http_request", attrs...)
			default:
				reqLogger.Info("http_request", attrs...)
			}
			return err
		}
	})

	// Log everything internally, hand only safe payloads to the client.
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		l := requestLogger(c, logger)

		var ae *appError
		var he *echo.HTTPError
		switch {
		case errors.As(err, &ae):
			// already ours
		case errors.As(err, &he):
			public := ""
			if he.Code >= 400 && he.Code < 500 {
				public = fmt.Sprint(he.Message)
			}
			ae = &appError{
				Code:   httpStatusToCode(he.Code),
				Status: he.Code,
				Err:    fmt.Errorf("%v", he.Message),
				Public: public,
			}
		case errors.Is(err, echo.ErrNotFound):
			ae = ErrNotFound(err)
		case errors.Is(err, echo.ErrMethodNotAllowed):
			ae = &appError{Code: "METHOD_NOT_ALLOWED", Status: http.StatusMethodNotAllowed, Err: err}
		default:
			ae = ErrInternal(err)
		}

		l.Error("request_error", "status", ae.Status, "code", ae.Code, "error", ae.Err)

		if c.Response().Committed {
			return
		}
		msg := ae.Public
		if msg == "" {
			msg = http.StatusText(ae.Status)
		}
		_ = c.JSON(ae.Status, apiError(ae.Code, msg))
	}

	ctrl.apiInit(e)

	logger.Info("starting server", "port", store.Config.Port, "mode", store.Config.Mode)
	return e.Start(fmt.Sprintf(":%d", store.Config.Port))
}
