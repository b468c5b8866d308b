package http

import "github.com/fsarta/synapse/internal/user"

// --- Request DTOs ---

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r credentialsReq) toRegisterInput() user.RegisterInput {
	return user.RegisterInput{Email: r.Email, Password: r.Password}
}

func (r credentialsReq) toLoginInput() user.LoginInput {
	return user.LoginInput{Email: r.Email, Password: r.Password}
}

// --- Response DTOs ---

type userResp struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	SubscriptionTier string `json:"subscription_tier"`
}

type authResp struct {
	Token string   `json:"token"`
	User  userResp `json:"user"`
}

func newAuthResp(out user.AuthOutput) authResp {
	return authResp{
		Token: out.Token,
		User: userResp{
			ID:               out.User.ID,
			Email:            out.User.Email,
			SubscriptionTier: out.User.Tier,
		},
	}
}

type statsResp struct {
	DailyActionsUsed int    `json:"daily_actions_used"`
	SubscriptionTier string `json:"subscription_tier"`
}

func newStatsResp(s user.Stats) statsResp {
	return statsResp{DailyActionsUsed: s.DailyActionsUsed, SubscriptionTier: s.SubscriptionTier}
}
