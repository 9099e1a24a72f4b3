package models

// BotState represents the moderation state of a listing
type BotState string

const (
	BotStatePending  BotState = "pending"
	BotStateApproved BotState = "approved"
	BotStateRejected BotState = "rejected"
)

// Vote represents a single vote with its expiry (unix milliseconds)
type Vote struct {
	UserID  string `bson:"userId" json:"userId"`
	Expires int64  `bson:"expires" json:"expires"`
}

// Review represents a user review with a star rating
type Review struct {
	UserID    string `bson:"userId" json:"userId"`
	Avatar    string `bson:"avatar" json:"avatar"`
	Tag       string `bson:"tag" json:"tag"`
	Content   string `bson:"content" json:"content"`
	Stars     int    `bson:"stars" json:"stars"`
	Timestamp int64  `bson:"timestamp" json:"timestamp"`
}

// CoOwner represents a co-owner reference on a listing
type CoOwner struct {
	ID        string `bson:"id" json:"id"`
	Tag       string `bson:"tag" json:"tag"`
	AvatarURL string `bson:"avatarURL" json:"avatarURL"`
}

// Bot representa el documento completo en la colección "bot"
type Bot struct {
	ID               string    `bson:"id" json:"id"`
	Username         string    `bson:"username" json:"username"`
	Discriminator    string    `bson:"discriminator" json:"discriminator"`
	Tag              string    `bson:"tag" json:"tag"`
	AvatarURL        string    `bson:"avatarURL" json:"avatarURL"`
	GuildCount       int       `bson:"guildCount" json:"guildCount"`
	ShortDescription string    `bson:"shortDescription" json:"shortDescription"`
	LongDescription  string    `bson:"longDescription" json:"longDescription"`
	OwnerID          string    `bson:"ownerId" json:"ownerId"`
	CoOwners         []CoOwner `bson:"coOwners" json:"coOwners"`
	Verified         bool      `bson:"verified" json:"verified"`
	Tags             []string  `bson:"tags" json:"tags"`
	InviteURL        string    `bson:"inviteURL" json:"inviteURL"`
	SupportServer    string    `bson:"supportServer,omitempty" json:"supportServer,omitempty"`
	WebsiteURL       string    `bson:"websiteURL,omitempty" json:"websiteURL,omitempty"`
	GithubURL        string    `bson:"githubURL,omitempty" json:"githubURL,omitempty"`
	Votes            []Vote    `bson:"votes" json:"votes"`
	Reviews          []Review  `bson:"comments" json:"comments"`
	Prefix           string    `bson:"prefix" json:"prefix"`
	State            BotState  `bson:"state" json:"state"`
	URL              string    `bson:"url" json:"url"`
	CreatedAt        int64     `bson:"createdAt" json:"createdAt"`
}

// IsCoOwner reports whether the given user is listed as a co-owner
func (b *Bot) IsCoOwner(userID string) bool {
	for _, co := range b.CoOwners {
		if co.ID == userID {
			return true
		}
	}
	return false
}
