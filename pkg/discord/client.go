// Package discord provides the REST-side Discord integration for the list:
// resolving OAuth bearer tokens to profiles, looking up users and applying
// guild bans. No gateway connection is opened.
package discord

import (
	"context"
	"sync"

	"github.com/PancyStudios/PancyListGo/pkg/botlist"
	"github.com/PancyStudios/PancyListGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// Client wraps a bot-token REST session plus the community guild id
type Client struct {
	session *discordgo.Session
	guildID string
}

var (
	client     *Client
	clientOnce sync.Once
)

// Init initializes the global Discord client
func Init(botToken, guildID string) (*Client, error) {
	var err error
	clientOnce.Do(func() {
		client, err = NewClient(botToken, guildID)
	})
	return client, err
}

// Get returns the global Discord client
func Get() *Client {
	return client
}

// NewClient creates a REST-only client authenticated with the bot token
func NewClient(botToken, guildID string) (*Client, error) {
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, err
	}
	return &Client{session: session, guildID: guildID}, nil
}

// ResolveToken exchanges an OAuth bearer token for the user's profile
func (c *Client) ResolveToken(ctx context.Context, token string) (*discordgo.User, error) {
	userSession, err := discordgo.New("Bearer " + token)
	if err != nil {
		return nil, err
	}
	return userSession.User("@me", discordgo.WithContext(ctx))
}

// FetchUser resolves the current profile of a user id via the bot token
func (c *Client) FetchUser(ctx context.Context, id string) (*models.BanRosterEntry, error) {
	user, err := c.session.User(id, discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	return &models.BanRosterEntry{
		ID:            user.ID,
		Username:      user.Username,
		Discriminator: user.Discriminator,
		Avatar:        user.AvatarURL("2048"),
	}, nil
}

// GuildBan bans the user from the community guild
func (c *Client) GuildBan(ctx context.Context, userID, reason string) error {
	if c.guildID == "" {
		return nil
	}
	return c.session.GuildBanCreateWithReason(c.guildID, userID, reason, 0, discordgo.WithContext(ctx))
}

// GuildUnban lifts the user's guild ban
func (c *Client) GuildUnban(ctx context.Context, userID string) error {
	if c.guildID == "" {
		return nil
	}
	return c.session.GuildBanDelete(c.guildID, userID, discordgo.WithContext(ctx))
}

// interface checks
var (
	_ botlist.UserDirectory = (*Client)(nil)
	_ botlist.BanEnforcer   = (*Client)(nil)
)
