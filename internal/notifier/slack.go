package notifier

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/slack-go/slack"

	"github.com/jhrahman/shiftmate/internal/domain"
	"github.com/jhrahman/shiftmate/internal/domain/contract"
	"github.com/jhrahman/shiftmate/internal/domain/entity"
)

// Slack posts the roster either to an incoming webhook or, when a bot client
// and channel are set, through chat.postMessage.
type Slack struct {
	webhookURL string
	httpClient *http.Client
	client     contract.SlackClient
	channel    string
	shifts     Shifts
	guard      *guard
}

func NewSlackWebhook(url string, shifts Shifts, timeout time.Duration, perMinute int) *Slack {
	return &Slack{
		webhookURL: url,
		httpClient: &http.Client{Timeout: timeout},
		shifts:     shifts,
		guard:      newGuard("slack", perMinute),
	}
}

func NewSlackChannel(client contract.SlackClient, channel string, shifts Shifts, perMinute int) *Slack {
	return &Slack{
		client:  client,
		channel: channel,
		shifts:  shifts,
		guard:   newGuard("slack", perMinute),
	}
}

func (s *Slack) Name() string {
	return "slack"
}

func (s *Slack) Notify(ctx context.Context, a entity.Assignment) error {
	text := s.Text(a)

	switch {
	case s.client != nil && s.channel != "":
		return s.guard.do(ctx, func() error {
			_, _, err := s.client.PostMessageContext(ctx, s.channel, slack.MsgOptionText(text, false))
			if err != nil {
				return fmt.Errorf("%w: slack: %v", domain.ErrNotificationFailed, err)
			}
			return nil
		})

	case s.webhookURL != "":
		msg := &slack.WebhookMessage{Text: text}
		return s.guard.do(ctx, func() error {
			if err := slack.PostWebhookCustomHTTPContext(ctx, s.webhookURL, s.httpClient, msg); err != nil {
				return fmt.Errorf("%w: slack: %v", domain.ErrNotificationFailed, err)
			}
			return nil
		})

	default:
		return domain.ErrWebhookNotConfigured
	}
}

// Text renders the assignment as Slack mrkdwn.
func (s *Slack) Text(a entity.Assignment) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📅 *Weekly Roster: %s*\n\n", a.WeekRange())

	b.WriteString("☀️ *Morning shift*\n")
	for _, line := range s.shifts.Lines(a.WeekMonday, s.shifts.Morning) {
		b.WriteString("• " + line + "\n")
	}
	fmt.Fprintf(&b, "👤 *%s* (`%s`)\n\n", a.Morning.Name, a.Morning.ShortCode)

	b.WriteString("🌙 *Evening shift*\n")
	for _, line := range s.shifts.Lines(a.WeekMonday, s.shifts.Evening) {
		b.WriteString("• " + line + "\n")
	}
	names := make([]string, 0, len(a.Evening))
	for _, p := range a.Evening {
		names = append(names, fmt.Sprintf("*%s* (`%s`)", p.Name, p.ShortCode))
	}
	b.WriteString("👥 " + strings.Join(names, ", "))

	return b.String()
}
