package web

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/PancyStudios/PancyListGo/pkg/botlist"
	"github.com/PancyStudios/PancyListGo/pkg/config"
	"github.com/PancyStudios/PancyListGo/pkg/logger"
	"github.com/PancyStudios/PancyListGo/pkg/models"
	"github.com/bwmarrin/discordgo"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// IdentityResolver exchanges an OAuth bearer token for a Discord profile
type IdentityResolver interface {
	ResolveToken(ctx context.Context, token string) (*discordgo.User, error)
}

// authMiddleware resolves the caller's identity from the Authorization
// header. Requests without a token proceed anonymously; invalid tokens and
// banned users are refused.
func authMiddleware(resolver IdentityResolver, svc *botlist.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Next()
			return
		}

		profile, err := resolver.ResolveToken(c.Request.Context(), token)
		if err != nil {
			respondError(c, http.StatusForbidden, "Invalid session")
			c.Abort()
			return
		}

		banned, err := svc.IsBanned(c.Request.Context(), profile.ID)
		if err != nil {
			respondServiceError(c, err)
			c.Abort()
			return
		}
		if banned {
			respondError(c, http.StatusForbidden, "You are banned from this site")
			c.Abort()
			return
		}

		avatar := normalizeAvatar(profile)
		staff := config.Get().IsStaff(profile.ID)

		user := &models.User{
			ID:            profile.ID,
			Username:      profile.Username,
			Discriminator: profile.Discriminator,
			Avatar:        avatar,
			Email:         profile.Email,
			Flags:         int(profile.Flags),
			Locale:        profile.Locale,
			MFAEnabled:    profile.MFAEnabled,
			Verified:      staff,
			PremiumType:   int(profile.PremiumType),
			PublicFlags:   int(profile.PublicFlags),
		}
		if err := svc.RegisterLogin(c.Request.Context(), user); err != nil {
			// The profile mirror is not worth failing the request over.
			logger.Warn(fmt.Sprintf("Could not mirror profile %s: %v", profile.ID, err), "Auth")
		}

		c.Set(identityKey, &botlist.Identity{
			ID:            profile.ID,
			Username:      profile.Username,
			Discriminator: profile.Discriminator,
			Avatar:        avatar,
			Staff:         staff,
		})
		c.Next()
	}
}

// identity returns the resolved caller, or nil for anonymous requests
func identity(c *gin.Context) *botlist.Identity {
	if v, exists := c.Get(identityKey); exists {
		return v.(*botlist.Identity)
	}
	return nil
}

// bearerToken extracts the token from an "Authorization: Bearer x" header
func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

// normalizeAvatar mirrors Discord's CDN rules: users without an avatar get
// the default avatar derived from their discriminator, animated hashes get
// the gif extension.
func normalizeAvatar(profile *discordgo.User) string {
	if profile.Avatar == "" {
		n, _ := strconv.Atoi(profile.Discriminator)
		return fmt.Sprintf("https://cdn.discordapp.com/embed/avatars/%d.png", n%5)
	}
	format := "png"
	if strings.HasPrefix(profile.Avatar, "a_") {
		format = "gif"
	}
	return fmt.Sprintf("https://cdn.discordapp.com/avatars/%s/%s.%s?size=4096", profile.ID, profile.Avatar, format)
}
