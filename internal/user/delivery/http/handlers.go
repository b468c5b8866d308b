package http

import (
	"github.com/gin-gonic/gin"

	"github.com/fsarta/synapse/internal/model"
	"github.com/fsarta/synapse/pkg/response"
)

// Register godoc
// @Summary     Register a new account
// @Description Creates a free-tier account and returns a session token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body credentialsReq true "Email and password"
// @Success     200 {object} authResp
// @Failure     400 {object} response.Resp "Email and password required / User already exists"
// @Failure     500 {object} response.Resp "Registration failed"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()
	req := h.processCredentialsReq(c)

	out, err := h.uc.Register(ctx, req.toRegisterInput())
	if err != nil {
		status, msg := h.mapError(err, MessageRegistrationFailed)
		if status >= 500 {
			h.l.Errorf(ctx, "uc.Register: %v", err)
		}
		response.Error(c, status, msg)
		return
	}

	response.OK(c, newAuthResp(out))
}

// Login godoc
// @Summary     Sign in
// @Description Exchanges email and password for a session token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body credentialsReq true "Email and password"
// @Success     200 {object} authResp
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Failure     500 {object} response.Resp "Login failed"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	req := h.processCredentialsReq(c)

	out, err := h.uc.Login(ctx, req.toLoginInput())
	if err != nil {
		status, msg := h.mapError(err, MessageLoginFailed)
		if status >= 500 {
			h.l.Errorf(ctx, "uc.Login: %v", err)
		}
		response.Error(c, status, msg)
		return
	}

	response.OK(c, newAuthResp(out))
}

// Stats godoc
// @Summary     Usage statistics
// @Description Returns today's action count and the subscription tier of the caller.
// @Tags        User
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} statsResp
// @Failure     401 {object} response.Resp "No token / Invalid token"
// @Failure     500 {object} response.Resp "Failed to fetch stats"
// @Router      /api/v1/user/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	s, err := h.uc.Stats(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: user=%s: %v", sc.UserID, err)
		response.InternalError(c, MessageStatsFailed)
		return
	}

	response.OK(c, newStatsResp(s))
}
