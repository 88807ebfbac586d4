package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jhrahman/shiftmate/internal/domain"
	"github.com/jhrahman/shiftmate/mocks"
)

func TestSlack_Text(t *testing.T) {
	shifts := testShifts(t)
	s := NewSlackWebhook("", shifts, time.Second, 60)

	text := s.Text(testAssignment(shifts))

	assert.Contains(t, text, "*Weekly Roster: Jan 5 - Jan 9, 2026*")
	assert.Contains(t, text, "👤 *Jahidur Rahman* (`JH`)")
	assert.Contains(t, text, "👥 *Mahmudur Rahman Protic* (`PR`), *Alamin Abu Zaman* (`AL`)")
	assert.Contains(t, text, "• Oslo: 07:00 AM - 03:00 PM")
}

func TestSlack_NotifyWebhook(t *testing.T) {
	shifts := testShifts(t)

	var body map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	s := NewSlackWebhook(srv.URL, shifts, time.Second, 6000)
	err := s.Notify(context.Background(), testAssignment(shifts))
	require.NoError(t, err)
	assert.Contains(t, body["text"], "Jan 5 - Jan 9, 2026")
}

func TestSlack_NotifyWebhookFailure(t *testing.T) {
	shifts := testShifts(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	s := NewSlackWebhook(srv.URL, shifts, time.Second, 6000)
	err := s.Notify(context.Background(), testAssignment(shifts))
	assert.ErrorIs(t, err, domain.ErrNotificationFailed)
}

func TestSlack_NotifyChannel(t *testing.T) {
	shifts := testShifts(t)

	tests := []struct {
		name       string
		buildMocks func(m *mocks.MockSlackClient)
		wantErr    error
	}{
		{
			name: "Should post to channel",
			buildMocks: func(m *mocks.MockSlackClient) {
				m.EXPECT().
					PostMessageContext(gomock.Any(), "C123456789", gomock.Any()).
					Return("C123456789", "1700000000.000100", nil).Times(1)
			},
		},
		{
			name: "Should surface slack error",
			buildMocks: func(m *mocks.MockSlackClient) {
				m.EXPECT().
					PostMessageContext(gomock.Any(), "C123456789", gomock.Any()).
					Return("", "", errors.New("channel_not_found")).Times(1)
			},
			wantErr: domain.ErrNotificationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockSlackClient(ctrl)
			tt.buildMocks(client)

			s := NewSlackChannel(client, "C123456789", shifts, 6000)
			err := s.Notify(context.Background(), testAssignment(shifts))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSlack_NotConfigured(t *testing.T) {
	shifts := testShifts(t)
	s := NewSlackWebhook("", shifts, time.Second, 60)

	err := s.Notify(context.Background(), testAssignment(shifts))
	assert.ErrorIs(t, err, domain.ErrWebhookNotConfigured)
}
