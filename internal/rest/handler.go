package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/futureuniv/campusfeed/domain"
	"github.com/futureuniv/campusfeed/internal/rest/middleware"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// identityFrom returns the viewer identity the auth middleware parsed, or
// the anonymous identity.
func identityFrom(c *gin.Context) domain.Identity {
	if v, ok := c.Get(middleware.IdentityKey); ok {
		if ident, ok := v.(domain.Identity); ok {
			return ident
		}
	}
	return domain.Identity{}
}

// viewSession picks the key a page view lives under: an explicit session
// header when the page supplies one, otherwise the signed-in identity,
// otherwise the caller address. The address fallback means anonymous
// viewers behind one NAT share a read-only view; pages that care send
// X-View-Session.
func viewSession(c *gin.Context, ident domain.Identity) string {
	if sid := c.GetHeader("X-View-Session"); sid != "" {
		return sid
	}
	if !ident.IsAnonymous() {
		return ident.ID
	}
	return c.ClientIP()
}

// getStatusCode will get the status code of the given domain error
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch {
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrRemoteRejected):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
