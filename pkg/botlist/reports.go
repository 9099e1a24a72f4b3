package botlist

import (
	"context"
	"fmt"

	"github.com/PancyStudios/PancyListGo/pkg/models"
	"github.com/PancyStudios/PancyListGo/pkg/webhook"
)

const maxReportReason = 4000

// Report forwards an abuse report on an approved listing to the report
// channel. Reports are not persisted.
func (s *Service) Report(ctx context.Context, actor *Identity, botID, topic, reason string) error {
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

	if len(reason) > maxReportReason {
		reason = reason[:maxReportReason]
	}

	msg := webhook.Message{
		Content:  fmt.Sprintf("<@%s> ha reportado a <@%s>", actor.ID, bot.ID),
		Mentions: []string{"users"},
		Embeds: []webhook.Embed{{
			Title:       topic,
			Description: reason,
		}},
	}
	if err := s.reports.Send(ctx, msg); err != nil {
		return &TransportError{Op: "report notification", Err: err}
	}
	return nil
}
