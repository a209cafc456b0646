package form

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MultipartSlack covers form overhead on top of a file limit.
const MultipartSlack = 1 << 20

// ErrTooLarge is returned by File when the request body exceeds its cap.
var ErrTooLarge = errors.New("request body too large")

// File reads the upload named field with the request body capped at
// maxBytes+MultipartSlack. A declared length over the cap is refused before
// any of the body is read. maxBytes <= 0 disables the cap.
func File(c *gin.Context, field string, maxBytes int64) (*multipart.FileHeader, error) {
	if maxBytes > 0 {
		limit := maxBytes + MultipartSlack
		if c.Request.ContentLength > limit {
			return nil, ErrTooLarge
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	}
	fh, err := c.FormFile(field)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return nil, ErrTooLarge
		}
		return nil, err
	}
	return fh, nil
}

// Size renders n bytes in the largest whole binary unit, e.g. 512KB or 5MB.
// Sizes that do not divide evenly keep one decimal.
func Size(n int64) string {
	units := []string{"B", "KB", "MB", "GB"}
	v, i := float64(n), 0
	for v >= 1024 && i < len(units)-1 {
		v /= 1024
		i++
	}
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d%s", int64(v), units[i])
	}
	return fmt.Sprintf("%.1f%s", v, units[i])
}
