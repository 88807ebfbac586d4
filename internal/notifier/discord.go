package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhrahman/shiftmate/internal/domain"
	"github.com/jhrahman/shiftmate/internal/domain/entity"
)

const (
	embedColor  = 0x3b82f6
	embedTitle  = "📅 Weekly Roster Schedule"
	footerText  = "ShiftMate • Automated Roster System"
	mention     = "@everyone 📢 **New Weekly Roster Available!**"
	blankMarker = "\u200B"
)

type discordPayload struct {
	Content string         `json:"content,omitempty"`
	Embeds  []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Color       int            `json:"color"`
	Fields      []discordField `json:"fields"`
	Footer      discordFooter  `json:"footer"`
	Timestamp   string         `json:"timestamp"`
}

type discordField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordFooter struct {
	Text string `json:"text"`
}

// Discord posts an embed to a Discord channel webhook.
type Discord struct {
	url    string
	client *http.Client
	shifts Shifts
	guard  *guard
	now    func() time.Time
}

func NewDiscord(url string, shifts Shifts, timeout time.Duration, perMinute int) *Discord {
	return &Discord{
		url:    url,
		client: &http.Client{Timeout: timeout},
		shifts: shifts,
		guard:  newGuard("discord", perMinute),
		now:    time.Now,
	}
}

func (d *Discord) Name() string {
	return "discord"
}

func (d *Discord) Notify(ctx context.Context, a entity.Assignment) error {
	if d.url == "" {
		return domain.ErrWebhookNotConfigured
	}

	body, err := json.Marshal(d.payload(a))
	if err != nil {
		return fmt.Errorf("failed to encode discord payload: %w", err)
	}

	return d.guard.do(ctx, func() error {
		return d.post(ctx, body)
	})
}

func (d *Discord) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: discord: %v", domain.ErrNotificationFailed, err)
	}
	defer resp.Body.Close()

	// discord answers 204 No Content on success
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: discord returned %d: %s", domain.ErrNotificationFailed, resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}

func (d *Discord) payload(a entity.Assignment) discordPayload {
	zones := []string{ZoneName(d.shifts.Location)}
	for _, z := range d.shifts.Display {
		zones = append(zones, ZoneName(z))
	}

	var evening strings.Builder
	for _, line := range d.shifts.Lines(a.WeekMonday, d.shifts.Evening) {
		evening.WriteString("⏰ " + line + "\n")
	}
	evening.WriteString("👤 **Assignees:**")
	for _, p := range a.Evening {
		evening.WriteString("\n• " + personLabel(p))
	}

	var morning strings.Builder
	for _, line := range d.shifts.Lines(a.WeekMonday, d.shifts.Morning) {
		morning.WriteString("⏰ " + line + "\n")
	}
	morning.WriteString("👤 **Assignee:** " + personLabel(a.Morning) + "\n" + blankMarker)

	return discordPayload{
		Content: mention,
		Embeds: []discordEmbed{{
			Title:       embedTitle,
			Description: fmt.Sprintf("**Week:** %s\n**Timezone:** %s\n%s", a.WeekRange(), strings.Join(zones, " & "), blankMarker),
			Color:       embedColor,
			Fields: []discordField{
				{Name: "☀️  MORNING SHIFT", Value: morning.String()},
				{Name: "━━━━━━━━━━━━━━━━━━━━━━━━━━", Value: blankMarker},
				{Name: "🌙  EVENING SHIFT", Value: evening.String()},
			},
			Footer:    discordFooter{Text: footerText},
			Timestamp: d.now().UTC().Format(time.RFC3339),
		}},
	}
}

func personLabel(p entity.Person) string {
	return fmt.Sprintf("**%s** (`%s`)", p.Name, p.ShortCode)
}
