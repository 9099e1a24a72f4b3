package botlist

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PancyStudios/PancyListGo/pkg/config"
	"github.com/PancyStudios/PancyListGo/pkg/models"
	"github.com/PancyStudios/PancyListGo/pkg/webhook"
)

// ModerationAction is a staff decision on a pending listing
type ModerationAction string

const (
	ActionApprove ModerationAction = "approve"
	ActionDeny    ModerationAction = "deny"
)

const maxCoOwners = 5

// Submit validates a candidate listing and stores it as pending.
// The candidate keeps the caller-supplied profile fields; state, owner and
// timestamps are always set here.
func (s *Service) Submit(ctx context.Context, actor *Identity, candidate *models.Bot) (*models.Bot, error) {
	if actor == nil {
		return nil, ErrNotAuthorized
	}

	// Defaults are resolved before validation so the co-owner check sees the
	// effective owner.
	if candidate.OwnerID == "" {
		candidate.OwnerID = actor.ID
	}
	if candidate.Tag == "" {
		candidate.Tag = candidate.Username + "#" + candidate.Discriminator
	}

	if err := validateCandidate(candidate); err != nil {
		return nil, err
	}

	existing, err := s.bots.FindByID(ctx, candidate.ID)
	if err != nil {
		return nil, &TransportError{Op: "find bot", Err: err}
	}
	if existing != nil {
		return nil, &ValidationError{Field: "id", Message: "Bot with this ID already exists"}
	}

	candidate.State = models.BotStatePending
	candidate.CreatedAt = s.now().UnixMilli()
	candidate.URL = "/bots/" + candidate.ID
	candidate.Votes = nil
	candidate.Reviews = nil

	if err := s.bots.Insert(ctx, candidate); err != nil {
		return nil, &TransportError{Op: "create bot", Err: err}
	}

	s.emit(s.newEvent(EventSubmission, candidate.ID, actor.ID, ""))

	msg := webhook.Message{
		Content:  fmt.Sprintf("<@&%s> Nuevo bot: `%s`", config.Get().AdminRoleID, candidate.Tag),
		Mentions: []string{"roles"},
		Embeds: []webhook.Embed{{
			Color: 0x5C4AFF,
			Author: &webhook.Author{
				Name:    candidate.Tag,
				IconURL: candidate.AvatarURL,
				URL:     candidate.InviteURL,
			},
			Description: candidate.ShortDescription,
			Fields: []webhook.Field{{
				Name:  "Owners",
				Value: ownersField(candidate),
			}},
			Timestamp: webhook.NowTimestamp(),
		}},
	}
	if err := s.notify.Send(ctx, msg); err != nil {
		// Listing already stored; the caller learns delivery failed.
		return candidate, &TransportError{Op: "submission notification", Err: err}
	}

	return candidate, nil
}

// Moderate applies a staff decision. The notification is sent first and the
// state change is only persisted once delivery succeeded, keeping moderation
// atomic with its notification.
func (s *Service) Moderate(ctx context.Context, actor *Identity, id string, action ModerationAction, reason string) error {
	if actor == nil || !actor.Staff {
		return ErrNotAuthorized
	}

	if action != ActionApprove && action != ActionDeny {
		return &ValidationError{Field: "action", Message: "Action must be approve or deny"}
	}
	if strings.TrimSpace(reason) == "" {
		return &ValidationError{Field: "reason", Message: "A reason is required"}
	}

	bot, err := s.bots.FindByID(ctx, id)
	if err != nil {
		return &TransportError{Op: "find bot", Err: err}
	}
	if bot == nil {
		return &NotFoundError{Resource: "Bot"}
	}

	outcome := "aprobado"
	color := 0x00FF00
	state := models.BotStateApproved
	if action == ActionDeny {
		outcome = "denegado"
		color = 0xFF0000
		state = models.BotStateRejected
	}

	msg := webhook.Message{
		Content:  fmt.Sprintf("<@%s> Bot %s", bot.OwnerID, outcome),
		Mentions: []string{"users"},
		Embeds: []webhook.Embed{{
			Title:       "Razón",
			Description: reason,
			Color:       color,
			Author: &webhook.Author{
				Name:    bot.Tag,
				IconURL: bot.AvatarURL,
			},
			Fields: []webhook.Field{{
				Name:  "Moderador",
				Value: fmt.Sprintf("<@%s>", actor.ID),
			}},
			Timestamp: webhook.NowTimestamp(),
		}},
	}
	if err := s.notify.Send(ctx, msg); err != nil {
		return &TransportError{Op: "moderation notification", Err: err}
	}

	bot.State = state
	if err := s.bots.Save(ctx, bot); err != nil {
		return &TransportError{Op: "save bot", Err: err}
	}

	s.emit(s.newEvent(EventModeration, bot.ID, actor.ID, string(action)))
	return nil
}

// Resubmit puts a listing back into the review queue. Owner only; no reason
// required and the prior state does not matter.
func (s *Service) Resubmit(ctx context.Context, actor *Identity, id string) error {
	if actor == nil {
		return ErrNotAuthorized
	}

	bot, err := s.bots.FindByID(ctx, id)
	if err != nil {
		return &TransportError{Op: "find bot", Err: err}
	}
	if bot == nil {
		return &NotFoundError{Resource: "Bot"}
	}
	if bot.OwnerID != actor.ID {
		return ErrNotAuthorized
	}

	bot.State = models.BotStatePending
	if err := s.bots.Save(ctx, bot); err != nil {
		return &TransportError{Op: "save bot", Err: err}
	}

	s.emit(s.newEvent(EventResubmission, bot.ID, actor.ID, ""))

	msg := webhook.Message{
		Content:  fmt.Sprintf("<@&%s> Bot re-enviado para aprobación", config.Get().AdminRoleID),
		Mentions: []string{"roles"},
		Embeds: []webhook.Embed{{
			Color: 0x5C4AFF,
			Author: &webhook.Author{
				Name:    bot.Tag,
				IconURL: bot.AvatarURL,
				URL:     bot.InviteURL,
			},
			Description: bot.ShortDescription,
			Fields: []webhook.Field{{
				Name:  "Owners",
				Value: ownersField(bot),
			}},
			Timestamp: webhook.NowTimestamp(),
		}},
	}
	if err := s.notify.Send(ctx, msg); err != nil {
		return &TransportError{Op: "resubmission notification", Err: err}
	}
	return nil
}

// Delete permanently removes a listing. Owner only; there is no tombstone.
func (s *Service) Delete(ctx context.Context, actor *Identity, id string) error {
	if actor == nil {
		return ErrNotAuthorized
	}

	bot, err := s.bots.FindByID(ctx, id)
	if err != nil {
		return &TransportError{Op: "find bot", Err: err}
	}
	if bot == nil {
		return &NotFoundError{Resource: "Bot"}
	}
	if bot.OwnerID != actor.ID {
		return ErrNotAuthorized
	}

	if err := s.bots.Delete(ctx, id); err != nil {
		return &TransportError{Op: "delete bot", Err: err}
	}

	s.emit(s.newEvent(EventDeletion, bot.ID, actor.ID, ""))

	msg := webhook.Message{
		Content:  fmt.Sprintf("<@%s> Bot eliminado", bot.OwnerID),
		Mentions: []string{"users"},
		Embeds: []webhook.Embed{{
			Color: 0x222222,
			Author: &webhook.Author{
				Name:    bot.Tag + " ha sido eliminado",
				IconURL: bot.AvatarURL,
			},
		}},
	}
	if err := s.notify.Send(ctx, msg); err != nil {
		return &TransportError{Op: "deletion notification", Err: err}
	}
	return nil
}

// Get returns a single listing, applying the visibility rule and lazily
// pruning expired votes. A prune that fails to write back is logged by the
// store layer and otherwise ignored; the read itself still succeeds.
func (s *Service) Get(ctx context.Context, actor *Identity, id string) (*models.Bot, error) {
	bot, err := s.bots.FindByID(ctx, id)
	if err != nil {
		return nil, &TransportError{Op: "find bot", Err: err}
	}
	if bot == nil || !s.visible(bot, actor) {
		return nil, &NotFoundError{Resource: "Bot"}
	}

	if CompactVotes(bot, s.now()) {
		// Best-effort cleanup; a failed write-back never fails the read.
		_ = s.bots.Save(ctx, bot)
	}

	return bot, nil
}

// List returns every listing visible to the actor, with expired votes
// filtered from the returned documents (not written back).
func (s *Service) List(ctx context.Context, actor *Identity) ([]*models.Bot, error) {
	bots, err := s.bots.All(ctx)
	if err != nil {
		return nil, &TransportError{Op: "list bots", Err: err}
	}

	now := s.now()
	visible := make([]*models.Bot, 0, len(bots))
	for _, bot := range bots {
		if !s.visible(bot, actor) {
			continue
		}
		CompactVotes(bot, now)
		visible = append(visible, bot)
	}
	return visible, nil
}

// BotsByUser returns the listings a user owns or co-owns. Anyone sees the
// approved ones; the user themselves and staff also see pending and rejected.
func (s *Service) BotsByUser(ctx context.Context, actor *Identity, userID string) ([]*models.Bot, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, &TransportError{Op: "find user", Err: err}
	}
	if user == nil {
		return nil, &NotFoundError{Resource: "User"}
	}

	owned, err := s.bots.ByOwner(ctx, userID)
	if err != nil {
		return nil, &TransportError{Op: "list bots", Err: err}
	}
	coOwned, err := s.bots.ByCoOwner(ctx, userID)
	if err != nil {
		return nil, &TransportError{Op: "list bots", Err: err}
	}

	all := append(coOwned, owned...)
	showAll := actor != nil && (actor.ID == userID || actor.Staff)

	result := make([]*models.Bot, 0, len(all))
	for _, bot := range all {
		if showAll || bot.State == models.BotStateApproved {
			result = append(result, bot)
		}
	}
	return result, nil
}

// visible applies the read visibility rule: approved listings are public,
// everything else only shows to the owner, co-owners and staff.
func (s *Service) visible(bot *models.Bot, actor *Identity) bool {
	if bot.State == models.BotStateApproved {
		return true
	}
	if actor == nil {
		return false
	}
	return actor.Staff || bot.OwnerID == actor.ID || bot.IsCoOwner(actor.ID)
}

// validateCandidate checks the submission invariants in declaration order and
// reports the first failing field.
func validateCandidate(bot *models.Bot) error {
	if bot.ID == "" {
		return &ValidationError{Field: "id", Message: "Bot ID is required"}
	}
	if bot.InviteURL == "" {
		return &ValidationError{Field: "inviteURL", Message: "Invite URL is required"}
	}
	if bot.Username == "" {
		return &ValidationError{Field: "username", Message: "Username is required"}
	}
	// Length limits count characters, not bytes, so accented text measures
	// the same as plain ASCII.
	if utf8.RuneCountInString(bot.ShortDescription) < 25 {
		return &ValidationError{Field: "shortDescription", Message: "Short description must be at least 25 characters"}
	}
	if utf8.RuneCountInString(bot.LongDescription) < 150 {
		return &ValidationError{Field: "longDescription", Message: "Long description must be at least 150 characters"}
	}
	if !hasValidTag(bot.Tags) {
		return &ValidationError{Field: "tags", Message: "You must specify at least one valid tag"}
	}
	if bot.Prefix == "" || utf8.RuneCountInString(bot.Prefix) > 10 {
		return &ValidationError{Field: "prefix", Message: "Specify a valid prefix (max 10 characters)"}
	}
	if len(bot.CoOwners) > maxCoOwners {
		return &ValidationError{Field: "coOwners", Message: "A bot can have at most 5 co-owners"}
	}
	for _, co := range bot.CoOwners {
		if co.ID == bot.OwnerID {
			return &ValidationError{Field: "coOwners", Message: "The owner cannot be listed as a co-owner"}
		}
	}
	return nil
}

func hasValidTag(tags []string) bool {
	for _, tag := range tags {
		if config.IsValidTag(tag) {
			return true
		}
	}
	return false
}

// ownersField renders the owner and co-owner mention list for embeds
func ownersField(bot *models.Bot) string {
	ids := append([]string{bot.OwnerID}, coOwnerIDs(bot)...)
	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		lines = append(lines, fmt.Sprintf("<@%s> (%s)", id, id))
	}
	return strings.Join(lines, "\n")
}

func coOwnerIDs(bot *models.Bot) []string {
	ids := make([]string, 0, len(bot.CoOwners))
	for _, co := range bot.CoOwners {
		ids = append(ids, co.ID)
	}
	return ids
}
