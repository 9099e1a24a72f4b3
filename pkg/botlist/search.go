package botlist

import (
	"context"
	"strings"
	"unicode"

	"github.com/PancyStudios/PancyListGo/pkg/config"
	"github.com/PancyStudios/PancyListGo/pkg/models"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SearchResult is one match in a result group
type SearchResult struct {
	Name   string `json:"name"`
	Href   string `json:"href"`
	Avatar string `json:"avatar,omitempty"`
	Votes  int    `json:"votes,omitempty"`
}

// SearchResults groups matches in their presentation order
type SearchResults struct {
	Bots     []SearchResult `json:"bots"`
	Users    []SearchResult `json:"users"`
	Tags     []SearchResult `json:"tags"`
	Commands []SearchResult `json:"commands"`
}

const maxUserResults = 5

// accent marks are removed after NFD decomposition, so "Moderación" and
// "moderacion" compare equal
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normalizes a string for matching: accents stripped, lowercased
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Search runs an accent-insensitive substring match over listings, users,
// the tag vocabulary and the command list. Results are computed per request
// from the live collections; nothing is indexed ahead of time.
func (s *Service) Search(ctx context.Context, actor *Identity, query string) (*SearchResults, error) {
	results := &SearchResults{
		Bots:     []SearchResult{},
		Users:    []SearchResult{},
		Tags:     []SearchResult{},
		Commands: []SearchResult{},
	}
	needle := Fold(query)

	for _, tag := range config.Tags {
		if strings.Contains(Fold(tag), needle) {
			results.Tags = append(results.Tags, SearchResult{
				Name: tag,
				Href: "/tag/" + tag,
			})
		}
	}

	users, err := s.users.All(ctx)
	if err != nil {
		return nil, &TransportError{Op: "list users", Err: err}
	}
	for _, user := range users {
		if len(results.Users) >= maxUserResults {
			break
		}
		display := "@" + user.DisplayTag()
		if strings.Contains(Fold(display), needle) {
			results.Users = append(results.Users, SearchResult{
				Name:   display,
				Href:   "/u/" + user.ID,
				Avatar: AvatarURL(user.ID, user.Avatar),
			})
		}
	}

	if actor != nil {
		for _, cmd := range []SearchResult{{Name: "Agregar Bot", Href: "/new"}} {
			if strings.Contains(Fold(cmd.Name), needle) {
				results.Commands = append(results.Commands, cmd)
			}
		}
		if actor.Staff {
			results.Commands = append(results.Commands, SearchResult{
				Name: "Administrador",
				Href: "/admin",
			})
		}
	}

	bots, err := s.bots.All(ctx)
	if err != nil {
		return nil, &TransportError{Op: "list bots", Err: err}
	}
	for _, bot := range bots {
		if !searchVisible(bot, actor) {
			continue
		}
		if strings.Contains(Fold(bot.Tag), needle) || bot.ID == query || anyTagMatches(bot.Tags, needle) {
			results.Bots = append(results.Bots, SearchResult{
				Name:   bot.Tag,
				Href:   "/bots/" + bot.ID,
				Avatar: bot.AvatarURL,
				Votes:  len(bot.Votes),
			})
		}
	}

	return results, nil
}

// searchVisible is stricter than the read rule: unapproved listings only
// match for their owner.
func searchVisible(bot *models.Bot, actor *Identity) bool {
	return bot.State == models.BotStateApproved || (actor != nil && bot.OwnerID == actor.ID)
}

func anyTagMatches(tags []string, needle string) bool {
	for _, tag := range tags {
		if strings.Contains(Fold(tag), needle) {
			return true
		}
	}
	return false
}

// AvatarURL normalizes a stored avatar value into a CDN URL. Values that are
// already absolute are kept as-is; animated hashes get the gif extension.
func AvatarURL(userID, avatar string) string {
	if strings.HasPrefix(avatar, "https://cdn.discordapp.com") {
		return avatar
	}
	ext := "png"
	if strings.HasPrefix(avatar, "a_") {
		ext = "gif"
	}
	return "https://cdn.discordapp.com/avatars/" + userID + "/" + avatar + "." + ext + "?size=2048"
}
