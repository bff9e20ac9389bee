package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/stadtwache/patrol/internal/client/api"
	"github.com/stadtwache/patrol/internal/client/config"
	"github.com/stadtwache/patrol/internal/client/localdb"
	"github.com/stadtwache/patrol/internal/client/repositories/credentials"
	"github.com/stadtwache/patrol/internal/client/repositories/messages"
	"github.com/stadtwache/patrol/internal/client/services"
	"github.com/stadtwache/patrol/internal/client/session"
	clientsync "github.com/stadtwache/patrol/internal/client/sync"
	"github.com/stadtwache/patrol/internal/common"
	"github.com/stadtwache/patrol/internal/logging"

	_ "modernc.org/sqlite"
)

// DefaultChannel is the channel the REPL shows until the user switches.
const DefaultChannel = "allgemein"

type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Manager
	poller  *clientsync.Poller

	incidents     *services.IncidentService
	team          *services.TeamService
	chat          *services.MessageService
	persons       *services.PersonService
	reports       *services.ReportService
	notifications *services.NotificationService

	reader  *bufio.Reader
	channel string
}

// NewApp wires the full client: local database, API client, session manager,
// sync poller, and the domain services on top of them.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	db, err := localdb.Init(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initializing local database: %w", err)
	}

	apiClient := api.New(c.APIBaseURL, c.HTTPTimeout, log)
	poller := clientsync.New(log)

	credStore := credentials.NewSQLiteRepository(db)
	sess := session.NewManager(apiClient, credStore, poller, c.RestoreMinWait, log)

	// The API client reads the current token from the session and hands
	// 401 recovery back to it.
	apiClient.Bind(sess, sess)

	msgCache := messages.NewSQLiteRepository(db)

	return &App{
		config:        c,
		log:           log,
		session:       sess,
		poller:        poller,
		incidents:     services.NewIncidentService(apiClient),
		team:          services.NewTeamService(apiClient, sess),
		chat:          services.NewMessageService(apiClient, msgCache, sess, log),
		persons:       services.NewPersonService(apiClient),
		reports:       services.NewReportService(apiClient),
		notifications: services.NewNotificationService(apiClient),
		reader:        bufio.NewReader(os.Stdin),
		channel:       DefaultChannel,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.StateAuthenticated
}

func (a *App) getStatus() string {
	cred := a.session.Current()
	if cred == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", cred.User.Username, cred.User.Status)
}

// startRefreshTasks registers the background polling tasks that keep the
// authenticated views fresh. Registering an existing name replaces the task,
// so calling this twice is harmless.
func (a *App) startRefreshTasks(ctx context.Context) {
	a.poller.Register(clientsync.Task{Name: "incidents", Interval: a.config.RefreshInterval, Fn: a.incidents.Refresh})
	a.poller.Register(clientsync.Task{Name: "team", Interval: a.config.RefreshInterval, Fn: a.team.Refresh})
	a.poller.Register(clientsync.Task{Name: "notifications", Interval: a.config.RefreshInterval, Fn: a.notifications.Refresh})
	a.poller.Register(clientsync.Task{Name: "persons", Interval: a.config.RefreshInterval, Fn: a.persons.Refresh})
	a.poller.Register(clientsync.Task{Name: "reports", Interval: a.config.RefreshInterval, Fn: a.reports.Refresh})
	a.poller.Register(clientsync.Task{Name: "private-chat", Interval: a.config.PrivateChatInterval, Fn: a.chat.RefreshPrivate})
	a.watchChannel(a.channel)
}

// watchChannel points the channel polling task at the given channel,
// replacing whatever channel it watched before.
func (a *App) watchChannel(channel string) {
	a.channel = channel
	a.poller.Register(clientsync.Task{
		Name:     "channel-chat",
		Interval: a.config.ChannelChatInterval,
		Fn: func(ctx context.Context) error {
			return a.chat.RefreshChannel(ctx, channel)
		},
	})
}

// Run restores a persisted session if one exists, then hands control to the
// REPL. It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	if cred := a.session.Restore(ctx); cred != nil {
		printlnFn(fmt.Sprintf("Welcome back, %s.", cred.User.Username))
		a.startRefreshTasks(ctx)
	}
	printlnFn("Stadtwache client (type 'help' for commands)")

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)

	a.poller.UnregisterAll()
}

func dutyStatuses() []string {
	return []string{
		common.StatusOnDuty,
		common.StatusBreak,
		common.StatusDeployment,
		common.StatusPatrol,
		common.StatusUnavailable,
	}
}
