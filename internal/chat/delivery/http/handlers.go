package http

import (
	"github.com/gin-gonic/gin"

	"seo-management-agent/pkg/response"
)

// historyLimit caps the number of turns returned by History.
const historyLimit = 50

// Chat godoc
// @Summary     Send a chat message
// @Description Routes the message to an SEO specialist and returns its report. Omit session_id to start a new session.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	reply, err := h.orc.Process(ctx, req.SessionID, req.Message)
	if err != nil {
		h.l.Errorf(ctx, "orc.Process: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, h.newChatResp(reply))
}

// History godoc
// @Summary     Get session history
// @Description Returns the recorded conversation turns for a session.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id} [GET]
func (h *handler) History(c *gin.Context) {
	id := c.Param("id")
	if !h.orc.SessionExists(id) {
		response.NotFound(c, "session not found")
		return
	}

	response.OK(c, h.newHistoryResp(id, h.orc.History(id, historyLimit)))
}

// QuickActions godoc
// @Summary     List quick actions
// @Description Returns the welcome message and the canned commands the assistant understands.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Success     200 {object} quickActionsResp
// @Router      /api/v1/chat/quick-actions [GET]
func (h *handler) QuickActions(c *gin.Context) {
	response.OK(c, h.newQuickActionsResp())
}
