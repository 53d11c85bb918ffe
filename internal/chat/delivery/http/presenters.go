package http

import (
	"seo-management-agent/internal/model"
	"seo-management-agent/internal/orchestrator"
)

// --- Request DTOs ---

type chatReq struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required,min=1,max=2000"`
}

func (r chatReq) validate() error { return nil }

// --- Response DTOs ---

type chatResp struct {
	SessionID  string `json:"session_id"`
	Specialist string `json:"specialist,omitempty"`
	Reply      string `json:"reply"`
	NewSession bool   `json:"new_session"`
	Welcome    string `json:"welcome,omitempty"`
}

func (h *handler) newChatResp(reply orchestrator.Reply) chatResp {
	resp := chatResp{
		SessionID:  reply.SessionID,
		Specialist: string(reply.Specialist),
		Reply:      reply.Text,
		NewSession: reply.NewSession,
	}
	if reply.NewSession {
		resp.Welcome = orchestrator.WelcomeMessage
	}
	return resp
}

type turnResp struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type historyResp struct {
	SessionID string     `json:"session_id"`
	Turns     []turnResp `json:"turns"`
}

func (h *handler) newHistoryResp(sessionID string, turns []model.Turn) historyResp {
	out := make([]turnResp, len(turns))
	for i, t := range turns {
		out[i] = turnResp{Role: string(t.Role), Text: t.Text}
	}
	return historyResp{SessionID: sessionID, Turns: out}
}

type quickActionsResp struct {
	Welcome string   `json:"welcome"`
	Actions []string `json:"actions"`
}

func (h *handler) newQuickActionsResp() quickActionsResp {
	return quickActionsResp{
		Welcome: orchestrator.WelcomeMessage,
		Actions: orchestrator.QuickActions,
	}
}
