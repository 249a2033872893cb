package server

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dhananjaysingh10/P2P-D-X/internal/backend"
	"github.com/dhananjaysingh10/P2P-D-X/misc"
)

// abortBackendErr maps the backend client's error taxonomy onto response
// codes. Mutation failures keep the upstream status so the backend's own
// message reaches the caller verbatim; everything transport-shaped is a 502.
func abortBackendErr(c *gin.Context, err error) {
	switch e := err.(type) {
	case *backend.MutationError:
		code := e.Status
		if code < 400 {
			code = 502
		}
		misc.AbortWithErr(c, code, e)
	case *backend.FetchError, *backend.NetworkError:
		misc.AbortWithErr(c, 502, err)
	default:
		if errors.Is(err, backend.ErrNotFound) {
			misc.AbortWithErr(c, 404, err)
			return
		}
		misc.AbortWithErr(c, 500, err)
	}
}

func paramId(c *gin.Context) (int64, bool) {
	id, err := misc.ParseId(c.Params.ByName("id"))
	if err != nil {
		misc.AbortWithErr(c, 400, err)
		return 0, false
	}
	return id, true
}
