package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/golang/glog"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/heapath/rest/service"
)

// ErrResponse is the JSON body of every error reply.
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

// ErrService renders a service error with the status its code maps to.
// Internal errors are logged and their cause is not echoed to the client.
func ErrService(err error) render.Renderer {
	status := getStatusCode(err)
	var statusText string
	switch status {
	case http.StatusNotFound:
		statusText = "Resource not found."
	case http.StatusBadRequest:
		statusText = "Bad request."
	case http.StatusUnprocessableEntity:
		statusText = "Unprocessable request."
	default:
		glog.Errorf("rest: %v", err)
		return &ErrResponse{
			Err:            err,
			HTTPStatusCode: http.StatusInternalServerError,
			StatusText:     "Internal server error.",
		}
	}

	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: status,
		StatusText:     statusText,
		ErrorText:      err.Error(),
	}
}

func getStatusCode(err error) int {
	var serr *service.Error
	if !errors.As(err, &serr) {
		return http.StatusInternalServerError
	}
	switch serr.Code() {
	case service.ErrNotFound:
		return http.StatusNotFound
	case service.ErrBadParamInput:
		return http.StatusBadRequest
	case service.ErrUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, fmt.Errorf("%s", e.Translate(trans)))
	}
	return errs
}
