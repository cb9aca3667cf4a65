package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exists")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrForbidden will throw if the action is not allowed for the caller
	ErrForbidden = errors.New("you are not allowed to do this action")
	// ErrUnauthenticated will throw if an identity-scoped action is attempted
	// without a signed-in user; refused locally, no remote call is made
	ErrUnauthenticated = errors.New("you must be logged in to do this action")
	// ErrRemoteRejected will throw if the remote store rejects a call;
	// transport failures are treated identically, there is no retry path
	ErrRemoteRejected = errors.New("the remote store rejected the request")
	// ErrCacheMiss will throw if the requested item is not in the cache
	ErrCacheMiss = errors.New("requested item is not cached")
)
