package botlist

import (
	"context"
	"fmt"

	"github.com/PancyStudios/PancyListGo/pkg/models"
	"github.com/PancyStudios/PancyListGo/pkg/webhook"
)

// SubmitReview appends a star review to a listing. One review per author;
// editing is not supported, a duplicate attempt is rejected outright.
func (s *Service) SubmitReview(ctx context.Context, actor *Identity, botID string, stars int, text string) error {
	if actor == nil {
		return ErrNotAuthorized
	}
	if stars < 1 || stars > 5 {
		return &ValidationError{Field: "stars", Message: "Stars must be between 1 and 5"}
	}

	bot, err := s.bots.FindByID(ctx, botID)
	if err != nil {
		return &TransportError{Op: "find bot", Err: err}
	}
	if bot == nil {
		return &NotFoundError{Resource: "Bot"}
	}

	for _, review := range bot.Reviews {
		if review.UserID == actor.ID {
			return ErrDuplicateReview
		}
	}

	bot.Reviews = append(bot.Reviews, models.Review{
		UserID:    actor.ID,
		Avatar:    actor.Avatar,
		Tag:       actor.Tag(),
		Content:   text,
		Stars:     stars,
		Timestamp: s.now().UnixMilli(),
	})

	if err := s.bots.Save(ctx, bot); err != nil {
		return &TransportError{Op: "save bot", Err: err}
	}

	s.emit(s.newEvent(EventReview, bot.ID, actor.ID, ""))

	msg := webhook.Message{
		Content:  fmt.Sprintf("<@%s> Nuevo comentario", bot.ID),
		Mentions: []string{"users"},
		Embeds: []webhook.Embed{{
			Color: 0x5E5EFF,
			Author: &webhook.Author{
				Name:    bot.Tag,
				IconURL: bot.AvatarURL,
			},
			Description: text,
			Fields: []webhook.Field{
				{Name: "Usuario", Value: fmt.Sprintf("<@%s>", actor.ID)},
				{Name: "Estrellas", Value: fmt.Sprintf("%d estrellas", stars)},
			},
			Timestamp: webhook.NowTimestamp(),
		}},
	}
	if err := s.notify.Send(ctx, msg); err != nil {
		return &TransportError{Op: "review notification", Err: err}
	}
	return nil
}

// AverageStars computes the arithmetic mean of all review ratings at read
// time. Zero when there are no reviews.
func AverageStars(bot *models.Bot) float64 {
	if len(bot.Reviews) == 0 {
		return 0
	}
	sum := 0
	for _, review := range bot.Reviews {
		sum += review.Stars
	}
	return float64(sum) / float64(len(bot.Reviews))
}

// StarDistribution counts reviews per star value; index 0 holds one-star
// reviews. Out-of-range historical values are ignored.
func StarDistribution(bot *models.Bot) [5]int {
	var dist [5]int
	for _, review := range bot.Reviews {
		if review.Stars >= 1 && review.Stars <= 5 {
			dist[review.Stars-1]++
		}
	}
	return dist
}
