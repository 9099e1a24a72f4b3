package models

// User represents a Discord user profile mirrored on each login
type User struct {
	ID            string   `bson:"id" json:"id"`
	Username      string   `bson:"username" json:"username"`
	Discriminator string   `bson:"discriminator" json:"discriminator"`
	Avatar        string   `bson:"avatar" json:"avatar"`
	Banner        string   `bson:"banner,omitempty" json:"banner,omitempty"`
	AccentColor   int      `bson:"accentColor,omitempty" json:"accentColor,omitempty"`
	Email         string   `bson:"email,omitempty" json:"-"`
	Flags         int      `bson:"flags" json:"flags"`
	Locale        string   `bson:"locale,omitempty" json:"locale,omitempty"`
	MFAEnabled    bool     `bson:"mfaEnabled" json:"mfaEnabled"`
	Verified      bool     `bson:"verified" json:"verified"`
	PremiumType   int      `bson:"premiumType,omitempty" json:"premiumType,omitempty"`
	PublicFlags   int      `bson:"publicFlags" json:"publicFlags"`
	Bots          []string `bson:"bots" json:"bots"`
	Biography     string   `bson:"biography,omitempty" json:"biography,omitempty"`
}

// DisplayTag returns the classic "username#discriminator" form
func (u *User) DisplayTag() string {
	return u.Username + "#" + u.Discriminator
}
