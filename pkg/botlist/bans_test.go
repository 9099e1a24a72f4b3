package botlist

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/PancyStudios/PancyListGo/pkg/models"
)

func newBanEnv() (*testEnv, *fakeEnforcer, *fakeDirectory) {
	env := newTestEnv()
	enforcer := &fakeEnforcer{}
	directory := &fakeDirectory{users: map[string]models.BanRosterEntry{}}
	env.svc.enforcer = enforcer
	env.svc.directory = directory
	return env, enforcer, directory
}

func TestBanUser(t *testing.T) {
	env, enforcer, _ := newBanEnv()

	if err := env.svc.BanUser(context.Background(), staffIdentity("mod1"), "target1"); err != nil {
		t.Fatalf("BanUser failed: %v", err)
	}

	banned, err := env.svc.IsBanned(context.Background(), "target1")
	if err != nil || !banned {
		t.Errorf("expected target1 banned, got %v %v", banned, err)
	}
	if len(enforcer.banned) != 1 || enforcer.banned[0] != "target1" {
		t.Errorf("expected one guild ban, got %+v", enforcer.banned)
	}
}

func TestBanUserGuards(t *testing.T) {
	env, _, _ := newBanEnv()

	if err := env.svc.BanUser(context.Background(), userIdentity("rando"), "target1"); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("non-staff ban: expected ErrNotAuthorized, got %v", err)
	}

	env.bans.list = append(env.bans.list, &models.Ban{ID: "target1", Banned: true})
	if err := env.svc.BanUser(context.Background(), staffIdentity("mod1"), "target1"); !errors.Is(err, ErrAlreadyBanned) {
		t.Errorf("double ban: expected ErrAlreadyBanned, got %v", err)
	}
}

func TestBanUserEnforcementFailureKeepsListBan(t *testing.T) {
	env, enforcer, _ := newBanEnv()
	enforcer.err = errors.New("guild unavailable")

	err := env.svc.BanUser(context.Background(), staffIdentity("mod1"), "target1")

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	banned, _ := env.svc.IsBanned(context.Background(), "target1")
	if !banned {
		t.Error("list ban must remain after a failed guild call")
	}
}

func TestUnbanUser(t *testing.T) {
	env, enforcer, _ := newBanEnv()
	env.bans.list = append(env.bans.list, &models.Ban{ID: "target1", Banned: true})

	if err := env.svc.UnbanUser(context.Background(), staffIdentity("mod1"), "target1"); err != nil {
		t.Fatalf("UnbanUser failed: %v", err)
	}

	banned, _ := env.svc.IsBanned(context.Background(), "target1")
	if banned {
		t.Error("expected target1 unbanned")
	}
	if len(enforcer.unbanned) != 1 {
		t.Errorf("expected one guild unban, got %+v", enforcer.unbanned)
	}

	if err := env.svc.UnbanUser(context.Background(), staffIdentity("mod1"), "target1"); !errors.Is(err, ErrNotBanned) {
		t.Errorf("unban of clean user: expected ErrNotBanned, got %v", err)
	}
}

func TestBanRoster(t *testing.T) {
	env, _, directory := newBanEnv()
	env.bans.list = append(env.bans.list,
		&models.Ban{ID: "known", Banned: true},
		&models.Ban{ID: "gone", Banned: true},
	)
	directory.users["known"] = models.BanRosterEntry{
		ID:       "known",
		Username: "troll",
		Avatar:   "https://cdn.discordapp.com/avatars/known/x.png",
	}

	if _, err := env.svc.BanRoster(context.Background(), userIdentity("rando")); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("non-staff roster: expected ErrNotAuthorized, got %v", err)
	}

	roster, err := env.svc.BanRoster(context.Background(), staffIdentity("mod1"))
	if err != nil {
		t.Fatalf("BanRoster failed: %v", err)
	}
	if len(roster) != 1 || roster[0].Username != "troll" {
		t.Errorf("unresolvable users are skipped, got %+v", roster)
	}
}

func TestReport(t *testing.T) {
	env := newTestEnv()
	env.bots.list = append(env.bots.list, approvedBot("1000"))

	if err := env.svc.Report(context.Background(), nil, "1000", "spam", "spamming"); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("anonymous report: expected ErrNotAuthorized, got %v", err)
	}

	if err := env.svc.Report(context.Background(), userIdentity("u1"), "1000", "spam", "el bot hace spam"); err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	if len(env.reports.sent) != 1 {
		t.Fatalf("expected one report notification, got %d", len(env.reports.sent))
	}
	if !strings.Contains(env.reports.sent[0].Content, "ha reportado") {
		t.Errorf("unexpected report content %q", env.reports.sent[0].Content)
	}
	if len(env.notify.sent) != 0 {
		t.Errorf("reports must not use the submissions channel")
	}
}

func TestReportUnapproved(t *testing.T) {
	env := newTestEnv()
	pending := validCandidate("1000")
	pending.State = models.BotStatePending
	env.bots.list = append(env.bots.list, pending)

	if err := env.svc.Report(context.Background(), userIdentity("u1"), "1000", "spam", "x"); !errors.Is(err, ErrNotApproved) {
		t.Errorf("report on pending bot: expected ErrNotApproved, got %v", err)
	}
}

func TestReportClipsReason(t *testing.T) {
	env := newTestEnv()
	env.bots.list = append(env.bots.list, approvedBot("1000"))

	long := strings.Repeat("a", maxReportReason+500)
	if err := env.svc.Report(context.Background(), userIdentity("u1"), "1000", "spam", long); err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	got := env.reports.sent[0].Embeds[0].Description
	if len(got) != maxReportReason {
		t.Errorf("expected reason clipped to %d chars, got %d", maxReportReason, len(got))
	}
}
