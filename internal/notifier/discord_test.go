package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhrahman/shiftmate/internal/domain"
)

func TestDiscord_Notify(t *testing.T) {
	shifts := testShifts(t)
	a := testAssignment(shifts)

	tests := []struct {
		name      string
		status    int
		wantErr   error
		checkBody func(t *testing.T, p discordPayload)
	}{
		{
			name:   "Should post embed and accept 204",
			status: http.StatusNoContent,
			checkBody: func(t *testing.T, p discordPayload) {
				require.Len(t, p.Embeds, 1)
				embed := p.Embeds[0]
				assert.Contains(t, p.Content, "@everyone")
				assert.Equal(t, embedTitle, embed.Title)
				assert.Contains(t, embed.Description, "Jan 5 - Jan 9, 2026")
				assert.Contains(t, embed.Description, "Dhaka & Oslo")
				require.Len(t, embed.Fields, 3)
				assert.Contains(t, embed.Fields[0].Value, "**Jahidur Rahman** (`JH`)")
				assert.Contains(t, embed.Fields[0].Value, "Oslo: 03:00 AM - 11:00 AM")
				assert.Contains(t, embed.Fields[2].Value, "• **Mahmudur Rahman Protic** (`PR`)\n• **Alamin Abu Zaman** (`AL`)")
				assert.NotContains(t, embed.Fields[2].Value, "Jahidur")
			},
		},
		{
			name:   "Should accept 200",
			status: http.StatusOK,
		},
		{
			name:    "Should fail on 400",
			status:  http.StatusBadRequest,
			wantErr: domain.ErrNotificationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got discordPayload
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			d := NewDiscord(srv.URL, shifts, time.Second, 6000)
			err := d.Notify(context.Background(), a)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.checkBody != nil {
				tt.checkBody(t, got)
			}
		})
	}
}

func TestDiscord_NotConfigured(t *testing.T) {
	shifts := testShifts(t)
	d := NewDiscord("", shifts, time.Second, 60)

	err := d.Notify(context.Background(), testAssignment(shifts))
	assert.ErrorIs(t, err, domain.ErrWebhookNotConfigured)
}

func TestDiscord_BreakerOpensAfterFailures(t *testing.T) {
	shifts := testShifts(t)
	a := testAssignment(shifts)

	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	d := NewDiscord(srv.URL, shifts, time.Second, 6000)
	for i := 0; i < 3; i++ {
		err := d.Notify(context.Background(), a)
		assert.ErrorIs(t, err, domain.ErrNotificationFailed)
	}

	err := d.Notify(context.Background(), a)
	assert.True(t, errors.Is(err, gobreaker.ErrOpenState), "expected open breaker, got %v", err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}
