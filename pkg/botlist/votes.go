package botlist

import (
	"context"
	"fmt"
	"time"

	"github.com/PancyStudios/PancyListGo/pkg/models"
	"github.com/PancyStudios/PancyListGo/pkg/webhook"
)

// VoteCooldown is the minimum wait between two votes by the same user
const VoteCooldown = 12 * time.Hour

// CastVote records a vote on an approved listing. A voter holds at most one
// ledger entry; a still-active entry rejects the vote with the remaining wait.
func (s *Service) CastVote(ctx context.Context, actor *Identity, botID string) error {
	if actor == nil {
		return ErrNotAuthorized
	}

	bot, err := s.bots.FindByID(ctx, botID)
	if err != nil {
		return &TransportError{Op: "find bot", Err: err}
	}
	if bot == nil {
		return &NotFoundError{Resource: "Bot"}
	}
	if bot.State != models.BotStateApproved {
		return ErrNotApproved
	}

	now := s.now()
	for _, vote := range bot.Votes {
		if vote.UserID == actor.ID && vote.Expires > now.UnixMilli() {
			return &CooldownError{Remaining: time.Duration(vote.Expires-now.UnixMilli()) * time.Millisecond}
		}
	}

	// Drop any stale entry for this voter before appending the fresh one.
	kept := bot.Votes[:0]
	for _, vote := range bot.Votes {
		if vote.UserID != actor.ID {
			kept = append(kept, vote)
		}
	}
	bot.Votes = append(kept, models.Vote{
		UserID:  actor.ID,
		Expires: now.Add(VoteCooldown).UnixMilli(),
	})

	if err := s.bots.Save(ctx, bot); err != nil {
		return &TransportError{Op: "save bot", Err: err}
	}

	s.emit(s.newEvent(EventVote, bot.ID, actor.ID, ""))

	msg := webhook.Message{
		Content:  fmt.Sprintf("<@%s> ha votado por <@%s>", actor.ID, bot.ID),
		Mentions: []string{"users"},
	}
	if err := s.notify.Send(ctx, msg); err != nil {
		return &TransportError{Op: "vote notification", Err: err}
	}
	return nil
}

// ActiveVotes counts the ledger entries that have not expired yet
func ActiveVotes(bot *models.Bot, now time.Time) int {
	count := 0
	for _, vote := range bot.Votes {
		if vote.Expires > now.UnixMilli() {
			count++
		}
	}
	return count
}

// CompactVotes removes expired ledger entries in place and reports whether
// anything was removed. It never adds entries, so running it twice is a no-op.
func CompactVotes(bot *models.Bot, now time.Time) bool {
	kept := bot.Votes[:0]
	for _, vote := range bot.Votes {
		if vote.Expires > now.UnixMilli() {
			kept = append(kept, vote)
		}
	}
	changed := len(kept) != len(bot.Votes)
	bot.Votes = kept
	return changed
}
