package database

import (
	"context"

	"github.com/PancyStudios/PancyListGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

// BotStore persists bot listings in the "bot" collection
type BotStore struct {
	col *Collection[models.Bot]
}

// NewBotStore creates the bot listing store
func NewBotStore(db *Database) *BotStore {
	return &BotStore{col: NewCollection[models.Bot]("bot", db)}
}

// FindByID returns the listing with the given bot id, or (nil, nil) if absent
func (s *BotStore) FindByID(ctx context.Context, id string) (*models.Bot, error) {
	return s.col.FindOne(ctx, bson.M{"id": id})
}

// All returns every listing
func (s *BotStore) All(ctx context.Context) ([]*models.Bot, error) {
	return s.col.Find(ctx, bson.M{})
}

// ByOwner returns listings owned by the given user
func (s *BotStore) ByOwner(ctx context.Context, ownerID string) ([]*models.Bot, error) {
	return s.col.Find(ctx, bson.M{"ownerId": ownerID})
}

// ByCoOwner returns listings where the given user is a co-owner
func (s *BotStore) ByCoOwner(ctx context.Context, userID string) ([]*models.Bot, error) {
	return s.col.Find(ctx, bson.M{"coOwners.id": userID})
}

// Insert creates a new listing
func (s *BotStore) Insert(ctx context.Context, bot *models.Bot) error {
	return s.col.Insert(ctx, bot)
}

// Save writes back a mutated listing
func (s *BotStore) Save(ctx context.Context, bot *models.Bot) error {
	return s.col.Save(ctx, bson.M{"id": bot.ID}, bot)
}

// Delete permanently removes a listing
func (s *BotStore) Delete(ctx context.Context, id string) error {
	return s.col.Delete(ctx, bson.M{"id": id})
}

// UserStore persists user profiles in the "user" collection
type UserStore struct {
	col *Collection[models.User]
}

// NewUserStore creates the user profile store
func NewUserStore(db *Database) *UserStore {
	return &UserStore{col: NewCollection[models.User]("user", db)}
}

// FindByID returns the user with the given id, or (nil, nil) if absent
func (s *UserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	return s.col.FindOne(ctx, bson.M{"id": id})
}

// All returns every known user
func (s *UserStore) All(ctx context.Context) ([]*models.User, error) {
	return s.col.Find(ctx, bson.M{})
}

// Upsert mirrors the profile supplied by the identity provider
func (s *UserStore) Upsert(ctx context.Context, user *models.User) error {
	return s.col.Save(ctx, bson.M{"id": user.ID}, user)
}

// BanStore persists bans in the "bans" collection
type BanStore struct {
	col *Collection[models.Ban]
}

// NewBanStore creates the ban store
func NewBanStore(db *Database) *BanStore {
	return &BanStore{col: NewCollection[models.Ban]("bans", db)}
}

// FindByID returns the ban record for a user id, or (nil, nil) if absent
func (s *BanStore) FindByID(ctx context.Context, id string) (*models.Ban, error) {
	return s.col.FindOne(ctx, bson.M{"id": id})
}

// All returns every ban record
func (s *BanStore) All(ctx context.Context) ([]*models.Ban, error) {
	return s.col.Find(ctx, bson.M{})
}

// Save creates or updates a ban record
func (s *BanStore) Save(ctx context.Context, ban *models.Ban) error {
	return s.col.Save(ctx, bson.M{"id": ban.ID}, ban)
}

// Delete removes a ban record (unban)
func (s *BanStore) Delete(ctx context.Context, id string) error {
	return s.col.Delete(ctx, bson.M{"id": id})
}
