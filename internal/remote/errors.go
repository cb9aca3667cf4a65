package remote

import (
	"encoding/json"
	"fmt"
	"net/http"

	"resty.dev/v3"

	"github.com/futureuniv/campusfeed/domain"
)

// apiError is the union of the error bodies the backend's surfaces return.
type apiError struct {
	Message     string `json:"message"`
	Msg         string `json:"msg"`
	Description string `json:"error_description"`
}

func (e apiError) text() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Msg != "":
		return e.Msg
	case e.Description != "":
		return e.Description
	default:
		return "no error detail"
	}
}

// fail maps a failed call onto the domain error taxonomy. Transport errors
// and server rejections are deliberately collapsed into ErrRemoteRejected;
// there is no distinct retry path for either.
func fail(op string, res *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrRemoteRejected, err)
	}

	switch res.StatusCode() {
	case http.StatusNotFound, http.StatusNotAcceptable:
		return domain.ErrNotFound
	case http.StatusUnauthorized:
		return domain.ErrUnauthenticated
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusConflict:
		return domain.ErrConflict
	}

	var body apiError
	_ = json.Unmarshal(res.Bytes(), &body)
	return fmt.Errorf("%s: %w: %s", op, domain.ErrRemoteRejected, body.text())
}
