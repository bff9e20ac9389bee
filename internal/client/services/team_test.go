package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stadtwache/patrol/internal/client/models"
)

type spySession struct {
	updates []models.UserUpdate
}

func (s *spySession) UpdateUser(ctx context.Context, upd models.UserUpdate) {
	s.updates = append(s.updates, upd)
}

func TestTeamRefresh_And_OnDutyCount(t *testing.T) {
	client := &fakeClient{
		UsersByStatusFn: func(ctx context.Context) (map[string][]models.User, error) {
			return map[string][]models.User{
				"Im Dienst": {{ID: "1"}, {ID: "2"}},
				"Pause":     {{ID: "3"}},
			}, nil
		},
	}
	s := NewTeamService(client, &spySession{})

	require.NoError(t, s.Refresh(context.Background()))
	require.Equal(t, 2, s.OnDutyCount())
	require.Len(t, s.Roster()["Pause"], 1)
}

func TestSetStatus_UpdatesBackendAndSession(t *testing.T) {
	var sent *models.UserUpdate
	client := &fakeClient{
		UpdateProfileFn: func(ctx context.Context, upd models.UserUpdate) (models.User, error) {
			sent = &upd
			return models.User{Status: *upd.Status}, nil
		},
	}
	session := &spySession{}
	s := NewTeamService(client, session)

	require.NoError(t, s.SetStatus(context.Background(), "Einsatz"))
	require.NotNil(t, sent)
	require.Equal(t, "Einsatz", *sent.Status)
	require.Len(t, session.updates, 1)
	require.Equal(t, "Einsatz", *session.updates[0].Status)
}
