package http

import "github.com/gin-gonic/gin"

// processCredentialsReq binds email/password. An unreadable body counts as missing credentials.
func (h *handler) processCredentialsReq(c *gin.Context) credentialsReq {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return credentialsReq{}
	}
	return req
}
