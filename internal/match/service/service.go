// Package service provides business logic for the match lifecycle.
//
// Every mutation of a match row happens in a confirm operation: a request
// operation only mints an action token and hands a confirmation link to
// the counterpart team's mailbox. The counterpart redeems the token, the
// slot is re-checked, and only then is the match created, rescheduled or
// cancelled.
package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/clubsports/matchday/internal/cache"
	matchModel "github.com/clubsports/matchday/internal/match/model"
	"github.com/clubsports/matchday/internal/match/repository"
	"github.com/clubsports/matchday/internal/notifier"
	teamModel "github.com/clubsports/matchday/internal/team/model"
	teamRepository "github.com/clubsports/matchday/internal/team/repository"
	"github.com/clubsports/matchday/pkg/token"
)

// Service defines the interface for match lifecycle operations.
type Service interface {
	// RequestCreate mails the counterpart a confirmation link for a new
	// fixture. No match row is created.
	RequestCreate(ctx context.Context, userID uint, req *matchModel.RequestCreateRequest) error

	// ConfirmCreate redeems a create token and books the fixture.
	ConfirmCreate(ctx context.Context, req *matchModel.ConfirmCreateRequest) (*matchModel.Match, error)

	// RequestUpdate mails the counterpart a confirmation link for a reschedule.
	RequestUpdate(ctx context.Context, userID, matchID uint, req *matchModel.RequestUpdateRequest) error

	// ConfirmUpdate redeems an update token and moves the match.
	ConfirmUpdate(ctx context.Context, matchID uint, req *matchModel.ConfirmUpdateRequest) error

	// RequestDelete mails the counterpart a confirmation link for a cancellation.
	RequestDelete(ctx context.Context, userID, matchID uint, req *matchModel.RequestDeleteRequest) error

	// ConfirmDelete redeems a delete token, cancels the match and removes
	// its recorded results.
	ConfirmDelete(ctx context.Context, matchID uint, req *matchModel.ConfirmDeleteRequest) error

	// VerifyNoConflict fails with ErrSlotTaken if a non-deleted match
	// already occupies (date, time).
	VerifyNoConflict(ctx context.Context, date, timeOfDay string) error

	// GetMatch returns a match by id.
	GetMatch(ctx context.Context, matchID uint) (*matchModel.Match, error)

	// TeamSchedule returns all fixtures a team plays in.
	TeamSchedule(ctx context.Context, teamID uint) ([]matchModel.Match, error)

	// MatchOver loads the match and fails with ErrMatchNotOver unless the
	// current time is strictly after the scheduled kickoff.
	MatchOver(ctx context.Context, matchID uint) (*matchModel.Match, error)
}

type service struct {
	repo     repository.Repository
	teamRepo teamRepository.Repository
	db       *gorm.DB
	issuer   *token.Issuer
	nonces   cache.Client
	mailer   notifier.Notifier
	baseURL  string
	logger   *zap.SugaredLogger
	now      func() time.Time
}

// New creates a new match service instance.
func New(
	repo repository.Repository,
	teamRepo teamRepository.Repository,
	db *gorm.DB,
	issuer *token.Issuer,
	nonces cache.Client,
	mailer notifier.Notifier,
	baseURL string,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:     repo,
		teamRepo: teamRepo,
		db:       db,
		issuer:   issuer,
		nonces:   nonces,
		mailer:   mailer,
		baseURL:  baseURL,
		logger:   logger,
		now:      time.Now,
	}
}

// VerifyNoConflict fails with ErrSlotTaken if the slot is occupied.
func (s *service) VerifyNoConflict(ctx context.Context, date, timeOfDay string) error {
	taken, err := s.repo.ExistsAtSlot(ctx, date, timeOfDay)
	if err != nil {
		return err
	}
	if taken {
		return matchModel.ErrSlotTaken
	}
	return nil
}

// RequestCreate mails the counterpart a confirmation link for a new fixture.
func (s *service) RequestCreate(ctx context.Context, userID uint, req *matchModel.RequestCreateRequest) error {
	if err := matchModel.ValidateSchedule(req.Date, req.Time); err != nil {
		return err
	}

	if _, err := s.requestingTeam(ctx, userID, req.HomeTeamID, req.AwayTeamID); err != nil {
		return err
	}

	// Fail fast on an occupied slot; the confirm path re-checks anyway.
	if err := s.VerifyNoConflict(ctx, req.Date, req.Time); err != nil {
		return err
	}

	actionToken, err := s.issuer.Issue(userID, token.ActionCreate, 0)
	if err != nil {
		return err
	}

	confirmURL := s.confirmURL("/matches/confirm", url.Values{
		"token":        {actionToken},
		"home_team_id": {fmt.Sprintf("%d", req.HomeTeamID)},
		"away_team_id": {fmt.Sprintf("%d", req.AwayTeamID)},
		"field_id":     {fmt.Sprintf("%d", req.FieldID)},
		"date":         {req.Date},
		"time":         {req.Time},
	})

	subject := "Match request: please confirm the fixture"
	body := fmt.Sprintf(
		"<p>A match has been proposed for <b>%s %s</b> (field %d).</p>"+
			"<p><a href=%q>Confirm the fixture</a></p>",
		req.Date, req.Time, req.FieldID, confirmURL,
	)

	// A failed send leaves no state behind: the request never mutates.
	if err := s.mailer.Send(ctx, req.OpponentEmail, subject, body); err != nil {
		s.logger.Errorw("failed to deliver create confirmation", "error", err)
		return err
	}
	return nil
}

// ConfirmCreate redeems a create token and books the fixture.
func (s *service) ConfirmCreate(ctx context.Context, req *matchModel.ConfirmCreateRequest) (*matchModel.Match, error) {
	requesterID, jti, err := s.issuer.Verify(req.Token, token.ActionCreate, 0)
	if err != nil {
		return nil, err
	}
	if err := s.burnNonce(ctx, jti, req.Token); err != nil {
		return nil, err
	}

	if err := matchModel.ValidateSchedule(req.Date, req.Time); err != nil {
		return nil, err
	}

	requestingTeam, err := s.requestingTeam(ctx, requesterID, req.HomeTeamID, req.AwayTeamID)
	if err != nil {
		return nil, err
	}

	if err := s.VerifyNoConflict(ctx, req.Date, req.Time); err != nil {
		return nil, err
	}

	match := &matchModel.Match{
		RequestingTeamID: requestingTeam.ID,
		HomeTeamID:       req.HomeTeamID,
		AwayTeamID:       req.AwayTeamID,
		FieldID:          req.FieldID,
		MatchDate:        req.Date,
		MatchTime:        req.Time,
	}
	if err := s.repo.Create(ctx, match); err != nil {
		return nil, err
	}

	s.logger.Infow("match booked",
		"match_id", match.ID,
		"date", match.MatchDate,
		"time", match.MatchTime,
		"requesting_team", match.RequestingTeamID,
	)
	return match, nil
}

// RequestUpdate mails the counterpart a confirmation link for a reschedule.
func (s *service) RequestUpdate(ctx context.Context, userID, matchID uint, req *matchModel.RequestUpdateRequest) error {
	if err := matchModel.ValidateSchedule(req.Date, req.Time); err != nil {
		return err
	}

	// The existing match is read-only at request time.
	match, err := s.repo.GetByID(ctx, matchID)
	if err != nil {
		return err
	}

	if _, err := s.requestingTeam(ctx, userID, match.HomeTeamID, match.AwayTeamID); err != nil {
		return err
	}

	actionToken, err := s.issuer.Issue(userID, token.ActionUpdate, matchID)
	if err != nil {
		return err
	}

	confirmURL := s.confirmURL(fmt.Sprintf("/matches/%d/confirm-update", matchID), url.Values{
		"token": {actionToken},
		"date":  {req.Date},
		"time":  {req.Time},
	})

	subject := "Match reschedule: please confirm the new time"
	body := fmt.Sprintf(
		"<p>The fixture on <b>%s %s</b> is requested to move to <b>%s %s</b>.</p>"+
			"<p>Reason: %s</p>"+
			"<p><a href=%q>Confirm the new schedule</a></p>",
		match.MatchDate, match.MatchTime, req.Date, req.Time, req.Reason, confirmURL,
	)

	if err := s.mailer.Send(ctx, req.OpponentEmail, subject, body); err != nil {
		s.logger.Errorw("failed to deliver update confirmation", "match_id", matchID, "error", err)
		return err
	}
	return nil
}

// ConfirmUpdate redeems an update token and moves the match.
func (s *service) ConfirmUpdate(ctx context.Context, matchID uint, req *matchModel.ConfirmUpdateRequest) error {
	_, jti, err := s.issuer.Verify(req.Token, token.ActionUpdate, matchID)
	if err != nil {
		return err
	}
	if err := s.burnNonce(ctx, jti, req.Token); err != nil {
		return err
	}

	if err := matchModel.ValidateSchedule(req.Date, req.Time); err != nil {
		return err
	}

	match, err := s.repo.GetByID(ctx, matchID)
	if err != nil {
		return err
	}

	// Re-verify availability unless the schedule is unchanged.
	if match.MatchDate != req.Date || match.MatchTime != req.Time {
		if err := s.VerifyNoConflict(ctx, req.Date, req.Time); err != nil {
			return err
		}
	}

	if err := s.repo.UpdateSchedule(ctx, matchID, req.Date, req.Time); err != nil {
		return err
	}

	s.logger.Infow("match rescheduled", "match_id", matchID, "date", req.Date, "time", req.Time)
	return nil
}

// RequestDelete mails the counterpart a confirmation link for a cancellation.
func (s *service) RequestDelete(ctx context.Context, userID, matchID uint, req *matchModel.RequestDeleteRequest) error {
	match, err := s.repo.GetByID(ctx, matchID)
	if err != nil {
		return err
	}

	if _, err := s.requestingTeam(ctx, userID, match.HomeTeamID, match.AwayTeamID); err != nil {
		return err
	}

	actionToken, err := s.issuer.Issue(userID, token.ActionDelete, matchID)
	if err != nil {
		return err
	}

	confirmURL := s.confirmURL(fmt.Sprintf("/matches/%d/confirm-delete", matchID), url.Values{
		"token": {actionToken},
	})

	subject := "Match cancellation: please confirm"
	body := fmt.Sprintf(
		"<p>The fixture on <b>%s %s</b> is requested to be cancelled.</p>"+
			"<p>Reason: %s</p>"+
			"<p><a href=%q>Confirm the cancellation</a></p>",
		match.MatchDate, match.MatchTime, req.Reason, confirmURL,
	)

	if err := s.mailer.Send(ctx, req.OpponentEmail, subject, body); err != nil {
		s.logger.Errorw("failed to deliver delete confirmation", "match_id", matchID, "error", err)
		return err
	}
	return nil
}

// ConfirmDelete redeems a delete token, cancels the match and removes its
// recorded results in one transaction.
func (s *service) ConfirmDelete(ctx context.Context, matchID uint, req *matchModel.ConfirmDeleteRequest) error {
	_, jti, err := s.issuer.Verify(req.Token, token.ActionDelete, matchID)
	if err != nil {
		return err
	}
	if err := s.burnNonce(ctx, jti, req.Token); err != nil {
		return err
	}

	if _, err := s.repo.GetByID(ctx, matchID); err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)
		if err := txRepo.DeleteResults(ctx, matchID); err != nil {
			return err
		}
		return txRepo.SoftDelete(ctx, matchID)
	})
	if err != nil {
		return err
	}

	s.logger.Infow("match cancelled", "match_id", matchID)
	return nil
}

// GetMatch returns a match by id.
func (s *service) GetMatch(ctx context.Context, matchID uint) (*matchModel.Match, error) {
	return s.repo.GetByID(ctx, matchID)
}

// TeamSchedule returns all fixtures a team plays in.
func (s *service) TeamSchedule(ctx context.Context, teamID uint) ([]matchModel.Match, error) {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.repo.ListByTeam(ctx, teamID)
}

// MatchOver loads the match and checks the kickoff has passed.
func (s *service) MatchOver(ctx context.Context, matchID uint) (*matchModel.Match, error) {
	match, err := s.repo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	over, err := match.Over(s.now())
	if err != nil {
		return nil, matchModel.ErrInvalidSchedule
	}
	if !over {
		return nil, matchModel.ErrMatchNotOver
	}
	return match, nil
}

// requestingTeam verifies the user created one of the two participating
// teams and returns that team.
func (s *service) requestingTeam(ctx context.Context, userID, homeTeamID, awayTeamID uint) (*teamModel.Team, error) {
	teams, err := s.teamRepo.TeamsByCreator(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range teams {
		if teams[i].ID == homeTeamID || teams[i].ID == awayTeamID {
			return &teams[i], nil
		}
	}
	return nil, matchModel.ErrNotParticipant
}

// burnNonce marks a token id as redeemed for the token's residual
// lifetime. A token whose id is already present was redeemed before.
// Cache unavailability falls back to expiry-only replay protection.
func (s *service) burnNonce(ctx context.Context, jti, raw string) error {
	if s.nonces == nil {
		return nil
	}
	set, err := s.nonces.SetNX(ctx, "token:used:"+jti, "1", s.issuer.RemainingTTL(raw))
	if err != nil {
		s.logger.Warnw("nonce store unavailable, relying on token expiry", "error", err)
		return nil
	}
	if !set {
		return matchModel.ErrTokenUsed
	}
	return nil
}

func (s *service) confirmURL(path string, query url.Values) string {
	return fmt.Sprintf("%s%s?%s", s.baseURL, path, query.Encode())
}
