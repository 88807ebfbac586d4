package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/jhrahman/shiftmate/internal/domain"
	"github.com/jhrahman/shiftmate/internal/domain/contract"
	"github.com/jhrahman/shiftmate/internal/domain/entity"
	"github.com/jhrahman/shiftmate/internal/domain/roster"
	slackcmd "github.com/jhrahman/shiftmate/internal/domain/slack"
)

const (
	defaultUpcomingWeeks = 4
	maxUpcomingWeeks     = 12
)

type SlackHandler struct {
	rosterService contract.RosterService
	signingSecret string
	log           *zap.Logger
}

func New(rosterService contract.RosterService, signingSecret string, log *zap.Logger) *SlackHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &SlackHandler{
		rosterService: rosterService,
		signingSecret: signingSecret,
		log:           log,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	h.log.Debug("Slash command",
		zap.String("user", s.UserName),
		zap.String("channel", s.ChannelName),
		zap.String("text", s.Text),
	)

	response := h.handleCommand(r.Context(), cmd)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdShow:
		return h.handleShow(ctx, argAt(cmd.Args, 0))
	case slackcmd.CmdNext:
		return h.handleShow(ctx, "+1")
	case slackcmd.CmdPrev:
		return h.handleShow(ctx, "-1")
	case slackcmd.CmdUpcoming:
		return h.handleUpcoming(ctx, argAt(cmd.Args, 0))
	case slackcmd.CmdTeam:
		return h.handleTeam()
	case slackcmd.CmdMorning:
		return h.handleMorning(ctx, cmd.Args)
	case slackcmd.CmdEvening:
		return h.handleEvening(ctx, cmd.Args)
	case slackcmd.CmdReset:
		return h.handleReset(ctx, argAt(cmd.Args, 0))
	case slackcmd.CmdNotify:
		return h.handleNotify(ctx, argAt(cmd.Args, 0))
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleShow(ctx context.Context, weekArg string) *slack.Msg {
	a, err := h.resolve(ctx, weekArg)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         h.formatAssignment(a),
	}
}

func (h *SlackHandler) handleUpcoming(ctx context.Context, countArg string) *slack.Msg {
	weeks := defaultUpcomingWeeks
	if countArg != "" {
		n, err := strconv.Atoi(countArg)
		if err != nil || n < 1 || n > maxUpcomingWeeks {
			return h.createErrorResponse(fmt.Sprintf("Week count must be between 1 and %d", maxUpcomingWeeks))
		}
		weeks = n
	}

	assignments, err := h.rosterService.Upcoming(ctx, weeks)
	if err != nil {
		return h.createErrorResponse("Failed to build upcoming roster")
	}

	var b strings.Builder
	b.WriteString("*Upcoming weeks:*\n")
	for _, a := range assignments {
		marker := ""
		if a.Overridden {
			marker = " ✏️"
		}
		fmt.Fprintf(&b, "• %s: ☀️ %s%s | 🌙 %s\n", a.WeekRange(), a.Morning.ShortCode, marker, shortCodes(a.Evening))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         strings.TrimRight(b.String(), "\n"),
	}
}

func (h *SlackHandler) handleTeam() *slack.Msg {
	var b strings.Builder
	b.WriteString("*Team (rotation order):*\n")
	for _, p := range h.rosterService.Team() {
		fmt.Fprintf(&b, "%d. %s (`%s`)\n", p.ID, p.Name, p.ShortCode)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         strings.TrimRight(b.String(), "\n"),
	}
}

func (h *SlackHandler) handleMorning(ctx context.Context, args []string) *slack.Msg {
	person, ok := h.rosterService.Team().Lookup(args[0])
	if !ok {
		return h.createErrorResponse(fmt.Sprintf("Unknown team member: %s", args[0]))
	}

	week, err := h.weekKey(argAt(args, 1))
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	if err := h.rosterService.SetMorning(ctx, week, person.ID); err != nil {
		return h.editErrorResponse(err)
	}

	return h.confirm(ctx, week, fmt.Sprintf("✅ *%s* takes the morning shift", person.Name))
}

func (h *SlackHandler) handleEvening(ctx context.Context, args []string) *slack.Msg {
	ids := make([]int, 0, 2)
	for _, ref := range args[:2] {
		person, ok := h.rosterService.Team().Lookup(ref)
		if !ok {
			return h.createErrorResponse(fmt.Sprintf("Unknown team member: %s", ref))
		}
		ids = append(ids, person.ID)
	}

	week, err := h.weekKey(argAt(args, 2))
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	if err := h.rosterService.SetEvening(ctx, week, ids); err != nil {
		return h.editErrorResponse(err)
	}

	return h.confirm(ctx, week, "✅ Evening shift updated")
}

func (h *SlackHandler) handleReset(ctx context.Context, weekArg string) *slack.Msg {
	week, err := h.weekKey(weekArg)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	if err := h.rosterService.ClearOverride(ctx, week); err != nil {
		return h.editErrorResponse(err)
	}

	return h.confirm(ctx, week, "↩️ Override cleared, back to rotation")
}

func (h *SlackHandler) handleNotify(ctx context.Context, weekArg string) *slack.Msg {
	if !h.rosterService.NotifiersConfigured() {
		return h.createErrorResponse("No webhook configured")
	}

	offset, err := h.offset(weekArg)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	a, err := h.rosterService.NotifyWeek(ctx, offset)
	if err != nil {
		h.log.Error("Slack triggered notification failed", zap.String("week", a.Week.String()), zap.Error(err))
		return h.createErrorResponse(fmt.Sprintf("Notification failed: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("📢 Roster for %s sent", a.WeekRange()),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) confirm(ctx context.Context, week entity.WeekKey, headline string) *slack.Msg {
	a, err := h.rosterService.WeekOf(ctx, week)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         headline + "\n\n" + h.formatAssignment(a),
	}
}

func (h *SlackHandler) resolve(ctx context.Context, weekArg string) (entity.Assignment, error) {
	ref, err := slackcmd.ParseWeekRef(weekArg)
	if err != nil {
		return entity.Assignment{}, err
	}
	if ref.Key != "" {
		return h.rosterService.WeekOf(ctx, ref.Key)
	}
	return h.rosterService.Week(ctx, ref.Offset), nil
}

func (h *SlackHandler) weekKey(weekArg string) (entity.WeekKey, error) {
	ref, err := slackcmd.ParseWeekRef(weekArg)
	if err != nil {
		return "", err
	}
	if ref.Key != "" {
		return ref.Key, nil
	}
	return h.rosterService.CurrentWeekKey(ref.Offset), nil
}

// offset turns a week argument into a distance from the current week.
func (h *SlackHandler) offset(weekArg string) (int, error) {
	ref, err := slackcmd.ParseWeekRef(weekArg)
	if err != nil {
		return 0, err
	}
	if ref.Key == "" {
		return ref.Offset, nil
	}

	current, err := roster.ParseWeekKey(h.rosterService.CurrentWeekKey(0), time.UTC)
	if err != nil {
		return 0, err
	}
	target, err := roster.ParseWeekKey(ref.Key, time.UTC)
	if err != nil {
		return 0, err
	}
	return roster.WeeksBetween(current, target), nil
}

func (h *SlackHandler) formatAssignment(a entity.Assignment) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*%s* (%s)", h.rosterService.Label(a.WeekMonday), a.WeekRange())
	if a.Overridden {
		b.WriteString(" ✏️ _manual override_")
	}
	fmt.Fprintf(&b, "\n☀️ Morning: *%s* (`%s`)", a.Morning.Name, a.Morning.ShortCode)

	names := make([]string, 0, len(a.Evening))
	for _, p := range a.Evening {
		names = append(names, fmt.Sprintf("*%s* (`%s`)", p.Name, p.ShortCode))
	}
	fmt.Fprintf(&b, "\n🌙 Evening: %s", strings.Join(names, ", "))

	return b.String()
}

func (h *SlackHandler) editErrorResponse(err error) *slack.Msg {
	if errors.Is(err, roster.ErrInvalidOverrideSelection) || errors.Is(err, roster.ErrInvalidWeekKey) {
		return h.createErrorResponse(err.Error())
	}
	if errors.Is(err, domain.ErrStorageUnavailable) {
		h.log.Error("Override edit failed", zap.Error(err))
		return h.createErrorResponse("Override storage is unavailable, nothing was saved")
	}
	return h.createErrorResponse(fmt.Sprintf("Failed to save override: %v", err))
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func shortCodes(people []entity.Person) string {
	codes := make([]string, 0, len(people))
	for _, p := range people {
		codes = append(codes, p.ShortCode)
	}
	return strings.Join(codes, ", ")
}
