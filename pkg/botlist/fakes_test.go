package botlist

import (
	"context"
	"errors"
	"time"

	"github.com/PancyStudios/PancyListGo/pkg/models"
	"github.com/PancyStudios/PancyListGo/pkg/webhook"
)

// fakeBots is an in-memory BotStore preserving insertion order
type fakeBots struct {
	list    []*models.Bot
	saves   int
	deletes int
	failOn  string // operation name that should fail: "find", "insert", "save", "delete"
}

var errStoreDown = errors.New("store down")

func (f *fakeBots) FindByID(_ context.Context, id string) (*models.Bot, error) {
	if f.failOn == "find" {
		return nil, errStoreDown
	}
	for _, bot := range f.list {
		if bot.ID == id {
			return bot, nil
		}
	}
	return nil, nil
}

func (f *fakeBots) All(_ context.Context) ([]*models.Bot, error) {
	if f.failOn == "find" {
		return nil, errStoreDown
	}
	return append([]*models.Bot(nil), f.list...), nil
}

func (f *fakeBots) ByOwner(_ context.Context, ownerID string) ([]*models.Bot, error) {
	var out []*models.Bot
	for _, bot := range f.list {
		if bot.OwnerID == ownerID {
			out = append(out, bot)
		}
	}
	return out, nil
}

func (f *fakeBots) ByCoOwner(_ context.Context, userID string) ([]*models.Bot, error) {
	var out []*models.Bot
	for _, bot := range f.list {
		if bot.IsCoOwner(userID) {
			out = append(out, bot)
		}
	}
	return out, nil
}

func (f *fakeBots) Insert(_ context.Context, bot *models.Bot) error {
	if f.failOn == "insert" {
		return errStoreDown
	}
	f.list = append(f.list, bot)
	return nil
}

func (f *fakeBots) Save(_ context.Context, bot *models.Bot) error {
	if f.failOn == "save" {
		return errStoreDown
	}
	f.saves++
	return nil
}

func (f *fakeBots) Delete(_ context.Context, id string) error {
	if f.failOn == "delete" {
		return errStoreDown
	}
	f.deletes++
	for i, bot := range f.list {
		if bot.ID == id {
			f.list = append(f.list[:i], f.list[i+1:]...)
			break
		}
	}
	return nil
}

// fakeUsers is an in-memory UserStore
type fakeUsers struct {
	list []*models.User
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	for _, user := range f.list {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) All(_ context.Context) ([]*models.User, error) {
	return append([]*models.User(nil), f.list...), nil
}

func (f *fakeUsers) Upsert(_ context.Context, user *models.User) error {
	for i, existing := range f.list {
		if existing.ID == user.ID {
			f.list[i] = user
			return nil
		}
	}
	f.list = append(f.list, user)
	return nil
}

// fakeBans is an in-memory BanStore
type fakeBans struct {
	list []*models.Ban
}

func (f *fakeBans) FindByID(_ context.Context, id string) (*models.Ban, error) {
	for _, ban := range f.list {
		if ban.ID == id {
			return ban, nil
		}
	}
	return nil, nil
}

func (f *fakeBans) All(_ context.Context) ([]*models.Ban, error) {
	return append([]*models.Ban(nil), f.list...), nil
}

func (f *fakeBans) Save(_ context.Context, ban *models.Ban) error {
	for i, existing := range f.list {
		if existing.ID == ban.ID {
			f.list[i] = ban
			return nil
		}
	}
	f.list = append(f.list, ban)
	return nil
}

func (f *fakeBans) Delete(_ context.Context, id string) error {
	for i, ban := range f.list {
		if ban.ID == id {
			f.list = append(f.list[:i], f.list[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeNotifier records messages, optionally failing every send
type fakeNotifier struct {
	sent []webhook.Message
	err  error
}

func (f *fakeNotifier) Send(_ context.Context, msg webhook.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

// fakeEvents records published events
type fakeEvents struct {
	events []Event
}

func (f *fakeEvents) Publish(event Event) {
	f.events = append(f.events, event)
}

// fakeDirectory resolves user ids from a fixed map
type fakeDirectory struct {
	users map[string]models.BanRosterEntry
}

func (f *fakeDirectory) FetchUser(_ context.Context, id string) (*models.BanRosterEntry, error) {
	if entry, ok := f.users[id]; ok {
		return &entry, nil
	}
	return nil, errors.New("unknown user")
}

// fakeEnforcer records guild ban calls
type fakeEnforcer struct {
	banned   []string
	unbanned []string
	err      error
}

func (f *fakeEnforcer) GuildBan(_ context.Context, userID, reason string) error {
	if f.err != nil {
		return f.err
	}
	f.banned = append(f.banned, userID)
	return nil
}

func (f *fakeEnforcer) GuildUnban(_ context.Context, userID string) error {
	if f.err != nil {
		return f.err
	}
	f.unbanned = append(f.unbanned, userID)
	return nil
}

// testEnv bundles a service with its fakes at a fixed clock
type testEnv struct {
	svc     *Service
	bots    *fakeBots
	users   *fakeUsers
	bans    *fakeBans
	notify  *fakeNotifier
	reports *fakeNotifier
	events  *fakeEvents
	now     time.Time
}

func newTestEnv() *testEnv {
	env := &testEnv{
		bots:    &fakeBots{},
		users:   &fakeUsers{},
		bans:    &fakeBans{},
		notify:  &fakeNotifier{},
		reports: &fakeNotifier{},
		events:  &fakeEvents{},
		now:     time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	env.svc = NewService(Options{
		Bots:    env.bots,
		Users:   env.users,
		Bans:    env.bans,
		Notify:  env.notify,
		Reports: env.reports,
		Events:  env.events,
		Now:     func() time.Time { return env.now },
	})
	return env
}

// validCandidate returns a submission that passes every invariant
func validCandidate(id string) *models.Bot {
	return &models.Bot{
		ID:               id,
		Username:         "TestBot",
		Discriminator:    "0001",
		InviteURL:        "https://discord.com/oauth2/authorize?client_id=" + id,
		ShortDescription: "A short description of at least 25 chars",
		LongDescription:  "A long description that needs to reach one hundred and fifty characters in order to pass validation, so it keeps going on and on about features and commands.",
		Tags:             []string{"Música"},
		Prefix:           "!",
		OwnerID:          "owner1",
	}
}

func staffIdentity(id string) *Identity {
	return &Identity{ID: id, Username: "staff", Discriminator: "0001", Staff: true}
}

func userIdentity(id string) *Identity {
	return &Identity{ID: id, Username: "user", Discriminator: "0002"}
}
