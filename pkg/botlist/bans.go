package botlist

import (
	"context"
	"fmt"

	"github.com/PancyStudios/PancyListGo/pkg/logger"
	"github.com/PancyStudios/PancyListGo/pkg/models"
)

// BanUser bans a user from the list and, when an enforcer is wired, from the
// community guild as well. Staff only. The ban record is persisted before
// enforcement, so a failed guild call leaves the list ban in place.
func (s *Service) BanUser(ctx context.Context, actor *Identity, userID string) error {
	if actor == nil || !actor.Staff {
		return ErrNotAuthorized
	}

	existing, err := s.bans.FindByID(ctx, userID)
	if err != nil {
		return &TransportError{Op: "find ban", Err: err}
	}
	if existing != nil && existing.Banned {
		return ErrAlreadyBanned
	}

	if err := s.bans.Save(ctx, &models.Ban{ID: userID, Banned: true}); err != nil {
		return &TransportError{Op: "save ban", Err: err}
	}

	if s.enforcer != nil {
		reason := fmt.Sprintf("Baneado por %s en la web.", actor.Tag())
		if err := s.enforcer.GuildBan(ctx, userID, reason); err != nil {
			return &TransportError{Op: "guild ban", Err: err}
		}
	}
	return nil
}

// UnbanUser lifts a list ban and the matching guild ban. Staff only.
func (s *Service) UnbanUser(ctx context.Context, actor *Identity, userID string) error {
	if actor == nil || !actor.Staff {
		return ErrNotAuthorized
	}

	existing, err := s.bans.FindByID(ctx, userID)
	if err != nil {
		return &TransportError{Op: "find ban", Err: err}
	}
	if existing == nil || !existing.Banned {
		return ErrNotBanned
	}

	if err := s.bans.Delete(ctx, userID); err != nil {
		return &TransportError{Op: "delete ban", Err: err}
	}

	if s.enforcer != nil {
		if err := s.enforcer.GuildUnban(ctx, userID); err != nil {
			return &TransportError{Op: "guild unban", Err: err}
		}
	}
	return nil
}

// IsBanned reports whether the user currently has an active ban
func (s *Service) IsBanned(ctx context.Context, userID string) (bool, error) {
	ban, err := s.bans.FindByID(ctx, userID)
	if err != nil {
		return false, &TransportError{Op: "find ban", Err: err}
	}
	return ban != nil && ban.Banned, nil
}

// BanRoster returns all bans hydrated with current Discord profile data.
// Staff only. Users that cannot be resolved are skipped, not errors.
func (s *Service) BanRoster(ctx context.Context, actor *Identity) ([]models.BanRosterEntry, error) {
	if actor == nil || !actor.Staff {
		return nil, ErrNotAuthorized
	}

	bans, err := s.bans.All(ctx)
	if err != nil {
		return nil, &TransportError{Op: "list bans", Err: err}
	}

	roster := make([]models.BanRosterEntry, 0, len(bans))
	for _, ban := range bans {
		if s.directory == nil {
			roster = append(roster, models.BanRosterEntry{ID: ban.ID})
			continue
		}
		entry, err := s.directory.FetchUser(ctx, ban.ID)
		if err != nil {
			logger.Warn(fmt.Sprintf("Could not resolve banned user %s: %v", ban.ID, err), "Bans")
			continue
		}
		roster = append(roster, *entry)
	}
	return roster, nil
}
