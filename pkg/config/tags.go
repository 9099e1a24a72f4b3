package config

// Tags is the fixed tag vocabulary for listings. Submissions must carry at
// least one tag from this list; anything else is ignored by the matcher.
var Tags = []string{
	"Moderación",
	"Música",
	"Diversión",
	"Economía",
	"Utilidad",
	"Anime",
	"Juegos",
	"Niveles",
	"Logs",
	"Roleplay",
	"Soporte",
	"Web Dashboard",
}

// IsValidTag reports whether the tag belongs to the configured vocabulary
func IsValidTag(tag string) bool {
	for _, t := range Tags {
		if t == tag {
			return true
		}
	}
	return false
}
