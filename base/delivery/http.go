package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/xionmarket/domain"
	"github.com/x-xyz/xionmarket/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// ErrorBody is the data of a failed response built from an error.
type ErrorBody struct {
	Message  string `json:"message"`
	Kind     string `json:"kind"`
	Step     string `json:"step,omitempty"`
	Guidance string `json:"guidance,omitempty"`
}

// StatusOf maps an error kind onto an http status.
func StatusOf(err error, fallback int) int {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, query.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrWrongType):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNetwork):
		return http.StatusBadGateway
	}
	return fallback
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = StatusOf(err, status)
		body := ErrorBody{
			Message: err.Error(),
			Kind:    domain.KindName(err),
		}
		var stepErr *domain.StepError
		if errors.As(err, &stepErr) {
			body.Step = string(stepErr.Step)
			body.Guidance = stepErr.Guidance
		}
		data = body
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
