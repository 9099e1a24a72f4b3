// Package botlist implements the core of the bot directory: listing
// lifecycle and moderation, the voting and review ledgers, search and user
// bans. Handlers stay thin; every rule lives here and returns typed errors.
package botlist

import (
	"context"
	"time"

	"github.com/PancyStudios/PancyListGo/pkg/models"
	"github.com/PancyStudios/PancyListGo/pkg/webhook"
)

// Identity is the authenticated caller as supplied by the identity provider.
// A nil *Identity means an anonymous request.
type Identity struct {
	ID            string
	Username      string
	Discriminator string
	Avatar        string
	Staff         bool
}

// Tag returns the classic "username#discriminator" form
func (i *Identity) Tag() string {
	return i.Username + "#" + i.Discriminator
}

// BotStore persists bot listings
type BotStore interface {
	FindByID(ctx context.Context, id string) (*models.Bot, error)
	All(ctx context.Context) ([]*models.Bot, error)
	ByOwner(ctx context.Context, ownerID string) ([]*models.Bot, error)
	ByCoOwner(ctx context.Context, userID string) ([]*models.Bot, error)
	Insert(ctx context.Context, bot *models.Bot) error
	Save(ctx context.Context, bot *models.Bot) error
	Delete(ctx context.Context, id string) error
}

// UserStore persists user profiles
type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	All(ctx context.Context) ([]*models.User, error)
	Upsert(ctx context.Context, user *models.User) error
}

// BanStore persists user bans
type BanStore interface {
	FindByID(ctx context.Context, id string) (*models.Ban, error)
	All(ctx context.Context) ([]*models.Ban, error)
	Save(ctx context.Context, ban *models.Ban) error
	Delete(ctx context.Context, id string) error
}

// Notifier delivers a structured message to an operational channel
type Notifier interface {
	Send(ctx context.Context, msg webhook.Message) error
}

// EventPublisher receives directory events best-effort (MQTT, websocket feed)
type EventPublisher interface {
	Publish(event Event)
}

// UserDirectory resolves current Discord profile data for a user id
type UserDirectory interface {
	FetchUser(ctx context.Context, id string) (*models.BanRosterEntry, error)
}

// BanEnforcer applies bans on the community guild
type BanEnforcer interface {
	GuildBan(ctx context.Context, userID, reason string) error
	GuildUnban(ctx context.Context, userID string) error
}

// Service is the bot directory core
type Service struct {
	bots      BotStore
	users     UserStore
	bans      BanStore
	notify    Notifier
	reports   Notifier
	events    EventPublisher
	directory UserDirectory
	enforcer  BanEnforcer
	now       func() time.Time
}

// Options carries the collaborators for a Service. Notify is required for
// moderation to complete; the rest may be left nil and the matching features
// degrade (events are skipped, ban enforcement is skipped).
type Options struct {
	Bots      BotStore
	Users     UserStore
	Bans      BanStore
	Notify    Notifier
	Reports   Notifier
	Events    EventPublisher
	Directory UserDirectory
	Enforcer  BanEnforcer
	Now       func() time.Time
}

// NewService creates the directory core
func NewService(opts Options) *Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		bots:      opts.Bots,
		users:     opts.Users,
		bans:      opts.Bans,
		notify:    opts.Notify,
		reports:   opts.Reports,
		events:    opts.Events,
		directory: opts.Directory,
		enforcer:  opts.Enforcer,
		now:       now,
	}
}

// emit publishes a directory event if a publisher is wired
func (s *Service) emit(event Event) {
	if s.events != nil {
		s.events.Publish(event)
	}
}
