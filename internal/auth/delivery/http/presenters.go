package http

import (
	"day-to-day/internal/auth"
	"day-to-day/internal/model"
)

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password"`
}

func (req loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}
}

type userResp struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		UID:         u.UID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
	}
}

type sessionResp struct {
	User  userResp `json:"user"`
	Token string   `json:"token"`
}

func (h *handler) newSessionResp(out auth.SessionOutput) sessionResp {
	return sessionResp{
		User:  newUserResp(out.User),
		Token: out.Token,
	}
}
