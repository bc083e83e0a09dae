package http

import (
	"insurance-advisor/internal/advisor"
	"insurance-advisor/internal/model"
)

// --- Request DTOs ---

type chatReq struct {
	Message string         `json:"message" binding:"required,min=1,max=4000"`
	Session *model.Session `json:"session"`
}

func (r chatReq) validate() error { return nil }

func (r chatReq) toInput() advisor.ConverseInput {
	input := advisor.ConverseInput{Text: r.Message}
	if r.Session != nil {
		input.Session = *r.Session
	}
	return input
}

// --- Response DTOs ---

type chatResp struct {
	Reply   string             `json:"reply"`
	Session model.Session      `json:"session"`
	Hints   model.DisplayHints `json:"hints"`
}

func (h *handler) newChatResp(out advisor.ConverseOutput) chatResp {
	return chatResp{
		Reply:   out.Reply,
		Session: out.Session,
		Hints:   out.Hints,
	}
}
