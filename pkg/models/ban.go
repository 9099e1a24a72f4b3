package models

// Ban representa una entrada en la colección "bans"
type Ban struct {
	ID     string `bson:"id" json:"id"`
	Banned bool   `bson:"banned" json:"banned"`
}

// BanRosterEntry is a ban hydrated with the user's current Discord profile
type BanRosterEntry struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	Avatar        string `json:"avatar"`
}
