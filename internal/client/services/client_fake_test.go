package services

import (
	"context"

	"github.com/stadtwache/patrol/internal/client/api"
	"github.com/stadtwache/patrol/internal/client/models"
)

// fakeClient implements api.Client for unit tests. Function fields override
// behavior per test; unset methods return zero values.
type fakeClient struct {
	LoginFn          func(ctx context.Context, email, password string) (api.LoginResponse, error)
	ListIncidentsFn  func(ctx context.Context) ([]models.Incident, error)
	CreateIncidentFn func(ctx context.Context, inc models.NewIncident) (models.Incident, error)

	UsersByStatusFn func(ctx context.Context) (map[string][]models.User, error)
	UpdateProfileFn func(ctx context.Context, upd models.UserUpdate) (models.User, error)

	PrivateMessagesFn func(ctx context.Context) ([]models.Message, error)
	ChannelMessagesFn func(ctx context.Context, channel string) ([]models.Message, error)
	SendMessageFn     func(ctx context.Context, msg models.NewMessage) (models.Message, error)

	NotificationsFn      func(ctx context.Context) ([]models.Notification, error)
	CreateNotificationFn func(ctx context.Context, n models.NewNotification) (models.Notification, error)

	PersonsFn     func(ctx context.Context) ([]models.Person, error)
	PersonStatsFn func(ctx context.Context) (models.PersonStats, error)

	ReportsFn      func(ctx context.Context) ([]models.Report, error)
	CreateReportFn func(ctx context.Context, r models.NewReport) (models.Report, error)
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) Login(ctx context.Context, email, password string) (api.LoginResponse, error) {
	if f.LoginFn != nil {
		return f.LoginFn(ctx, email, password)
	}
	return api.LoginResponse{}, nil
}

func (f *fakeClient) Register(ctx context.Context, req api.RegisterRequest) (models.User, error) {
	return models.User{}, nil
}

func (f *fakeClient) Me(ctx context.Context) (models.User, error) { return models.User{}, nil }

func (f *fakeClient) MeWithToken(ctx context.Context, token string) (models.User, error) {
	return models.User{}, nil
}

func (f *fakeClient) UpdateProfile(ctx context.Context, upd models.UserUpdate) (models.User, error) {
	if f.UpdateProfileFn != nil {
		return f.UpdateProfileFn(ctx, upd)
	}
	return models.User{}, nil
}

func (f *fakeClient) ListIncidents(ctx context.Context) ([]models.Incident, error) {
	if f.ListIncidentsFn != nil {
		return f.ListIncidentsFn(ctx)
	}
	return nil, nil
}

func (f *fakeClient) CreateIncident(ctx context.Context, inc models.NewIncident) (models.Incident, error) {
	if f.CreateIncidentFn != nil {
		return f.CreateIncidentFn(ctx, inc)
	}
	return models.Incident{}, nil
}

func (f *fakeClient) DeleteIncident(ctx context.Context, id string) error   { return nil }
func (f *fakeClient) AssignIncident(ctx context.Context, id string) error   { return nil }
func (f *fakeClient) CompleteIncident(ctx context.Context, id string) error { return nil }

func (f *fakeClient) UsersByStatus(ctx context.Context) (map[string][]models.User, error) {
	if f.UsersByStatusFn != nil {
		return f.UsersByStatusFn(ctx)
	}
	return nil, nil
}

func (f *fakeClient) UpdateUser(ctx context.Context, id string, upd models.UserUpdate) (models.User, error) {
	return models.User{}, nil
}

func (f *fakeClient) DeleteUser(ctx context.Context, id string) error { return nil }

func (f *fakeClient) PrivateMessages(ctx context.Context) ([]models.Message, error) {
	if f.PrivateMessagesFn != nil {
		return f.PrivateMessagesFn(ctx)
	}
	return nil, nil
}

func (f *fakeClient) ChannelMessages(ctx context.Context, channel string) ([]models.Message, error) {
	if f.ChannelMessagesFn != nil {
		return f.ChannelMessagesFn(ctx, channel)
	}
	return nil, nil
}

func (f *fakeClient) SendMessage(ctx context.Context, msg models.NewMessage) (models.Message, error) {
	if f.SendMessageFn != nil {
		return f.SendMessageFn(ctx, msg)
	}
	return models.Message{}, nil
}

func (f *fakeClient) DeleteMessage(ctx context.Context, id string) error { return nil }

func (f *fakeClient) Notifications(ctx context.Context) ([]models.Notification, error) {
	if f.NotificationsFn != nil {
		return f.NotificationsFn(ctx)
	}
	return nil, nil
}

func (f *fakeClient) CreateNotification(ctx context.Context, n models.NewNotification) (models.Notification, error) {
	if f.CreateNotificationFn != nil {
		return f.CreateNotificationFn(ctx, n)
	}
	return models.Notification{}, nil
}

func (f *fakeClient) MarkNotificationRead(ctx context.Context, id string) error { return nil }

func (f *fakeClient) Persons(ctx context.Context) ([]models.Person, error) {
	if f.PersonsFn != nil {
		return f.PersonsFn(ctx)
	}
	return nil, nil
}

func (f *fakeClient) CreatePerson(ctx context.Context, p models.Person) (models.Person, error) {
	return p, nil
}

func (f *fakeClient) UpdatePerson(ctx context.Context, id string, p models.Person) (models.Person, error) {
	return p, nil
}

func (f *fakeClient) DeletePerson(ctx context.Context, id string) error { return nil }

func (f *fakeClient) PersonStats(ctx context.Context) (models.PersonStats, error) {
	if f.PersonStatsFn != nil {
		return f.PersonStatsFn(ctx)
	}
	return models.PersonStats{}, nil
}

func (f *fakeClient) Reports(ctx context.Context) ([]models.Report, error) {
	if f.ReportsFn != nil {
		return f.ReportsFn(ctx)
	}
	return nil, nil
}

func (f *fakeClient) CreateReport(ctx context.Context, r models.NewReport) (models.Report, error) {
	if f.CreateReportFn != nil {
		return f.CreateReportFn(ctx, r)
	}
	return models.Report{}, nil
}

func (f *fakeClient) UpdateReport(ctx context.Context, id string, r models.NewReport) (models.Report, error) {
	return models.Report{}, nil
}

func (f *fakeClient) DeleteReport(ctx context.Context, id string) error { return nil }

// fakeIdentity satisfies identitySource.
type fakeIdentity struct {
	cred *models.Credential
}

func (f *fakeIdentity) Current() *models.Credential { return f.cred }

// nopCache satisfies messages cache without a database.
type nopCache struct{}

func (nopCache) Upsert(ctx context.Context, msgs []models.Message) error { return nil }
func (nopCache) Conversation(ctx context.Context, channel string) ([]models.Message, error) {
	return nil, nil
}
func (nopCache) Clear(ctx context.Context) error { return nil }
