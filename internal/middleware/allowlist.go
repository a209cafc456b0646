package middleware

import (
	"net/netip"

	"github.com/dailyexamresult/admin/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// AllowPeers answers 404 unless the connecting peer falls inside one of
// prefixes. Forwarded headers are ignored.
func AllowPeers(prefixes []netip.Prefix) gin.HandlerFunc {
	return func(c *gin.Context) {
		addr, err := netip.ParseAddr(c.RemoteIP())
		if err == nil {
			addr = addr.Unmap()
			for _, p := range prefixes {
				if p.Contains(addr) {
					c.Next()
					return
				}
			}
		}
		response.NotFound(c)
	}
}
