package middleware

import (
	"bytes"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"bookie/utils"
)

// CaptureBody buffers the request body up front so error responses can echo
// it. The read is time-bounded: a slow or absent body must never block error
// rendering, so after the timeout the body is treated as empty.
func CaptureBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		var data []byte
		if c.Request.Body != nil {
			done := make(chan []byte, 1)
			go func() {
				b, err := io.ReadAll(c.Request.Body)
				if err != nil {
					b = nil
				}
				done <- b
			}()
			select {
			case b := <-done:
				data = b
			case <-time.After(utils.BodyReadTimeout):
				data = nil
			}
		}

		c.Set(utils.RawBodyKey, data)
		c.Request.Body = io.NopCloser(bytes.NewReader(data))
		c.Next()
	}
}
