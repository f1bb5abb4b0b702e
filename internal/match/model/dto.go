package model

// RequestCreateRequest asks the counterpart team to confirm a new fixture.
type RequestCreateRequest struct {
	OpponentEmail string `json:"opponent_email" binding:"required,email"`
	HomeTeamID    uint   `json:"home_team_id" binding:"required"`
	AwayTeamID    uint   `json:"away_team_id" binding:"required"`
	FieldID       uint   `json:"field_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
}

// RequestUpdateRequest asks the counterpart team to confirm a reschedule.
type RequestUpdateRequest struct {
	OpponentEmail string `json:"opponent_email" binding:"required,email"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	Reason        string `json:"reason" binding:"required"`
}

// RequestDeleteRequest asks the counterpart team to confirm a cancellation.
type RequestDeleteRequest struct {
	OpponentEmail string `json:"opponent_email" binding:"required,email"`
	Reason        string `json:"reason" binding:"required"`
}

// ConfirmCreateRequest redeems a create token and books the fixture.
type ConfirmCreateRequest struct {
	Token      string `json:"token" form:"token" binding:"required"`
	HomeTeamID uint   `json:"home_team_id" form:"home_team_id" binding:"required"`
	AwayTeamID uint   `json:"away_team_id" form:"away_team_id" binding:"required"`
	FieldID    uint   `json:"field_id" form:"field_id" binding:"required"`
	Date       string `json:"date" form:"date" binding:"required"`
	Time       string `json:"time" form:"time" binding:"required"`
}

// ConfirmUpdateRequest redeems an update token and reschedules the match.
type ConfirmUpdateRequest struct {
	Token string `json:"token" form:"token" binding:"required"`
	Date  string `json:"date" form:"date" binding:"required"`
	Time  string `json:"time" form:"time" binding:"required"`
}

// ConfirmDeleteRequest redeems a delete token and cancels the match.
type ConfirmDeleteRequest struct {
	Token string `json:"token" form:"token" binding:"required"`
}
