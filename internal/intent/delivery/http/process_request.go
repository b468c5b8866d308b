package http

import (
	"github.com/gin-gonic/gin"

	"github.com/fsarta/synapse/internal/intent"
)

// processParseReq binds the parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processDispatchReq binds the body and validates it as an Intent.
func (h *handler) processDispatchReq(c *gin.Context) (intent.Intent, error) {
	var req dispatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return intent.Intent{}, err
	}
	return intent.Validate(intent.Candidate(req))
}
