package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/diegoclair/raid-bot/internal/domain"
	"github.com/diegoclair/raid-bot/internal/domain/command"
	"github.com/diegoclair/raid-bot/internal/domain/contract"
	"github.com/diegoclair/raid-bot/internal/domain/entity"
	"github.com/diegoclair/raid-bot/internal/render"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	slackClient   contract.SlackClient
	raidService   contract.RaidService
	signingSecret string
	logger        *slog.Logger
}

func New(log *slog.Logger, slackClient contract.SlackClient, raidService contract.RaidService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		slackClient:   slackClient,
		raidService:   raidService,
		signingSecret: signingSecret,
		logger:        log.With(slog.String("service", "slack")),
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

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := command.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	// Handle command
	response := h.handleCommand(r.Context(), cmd, &s)

	h.respond(w, response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *command.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	ch := entity.Channel{
		Platform: domain.PlatformSlack,
		TeamID:   slashCmd.TeamID,
		ID:       slashCmd.ChannelID,
	}
	user := entity.User{ID: slashCmd.UserID, DisplayName: slashCmd.UserName}

	switch cmd.Type {
	case command.CmdRaid:
		return h.handleCreate(ctx, cmd, ch, h.lookupUser(user))
	case command.CmdJoin:
		return h.handleUpdate(ctx, ch, user, "joined", func() (*entity.Raid, error) {
			return h.raidService.Join(ctx, ch, h.lookupUser(user), cmd.Args)
		})
	case command.CmdLeave:
		return h.handleUpdate(ctx, ch, user, "left", func() (*entity.Raid, error) {
			return h.raidService.Leave(ctx, ch, user, cmd.Args)
		})
	case command.CmdHere:
		return h.handleUpdate(ctx, ch, user, "arrived at", func() (*entity.Raid, error) {
			return h.raidService.Arrive(ctx, ch, user, cmd.Args)
		})
	case command.CmdStart:
		return h.handleUpdate(ctx, ch, user, "set the start time of", func() (*entity.Raid, error) {
			return h.raidService.SetStart(ctx, ch, user, cmd.Args)
		})
	case command.CmdEnd:
		return h.handleUpdate(ctx, ch, user, "set the end time of", func() (*entity.Raid, error) {
			return h.raidService.SetEnd(ctx, ch, user, cmd.Args)
		})
	case command.CmdLocation:
		return h.handleUpdate(ctx, ch, user, "set the location of", func() (*entity.Raid, error) {
			return h.raidService.SetLocation(ctx, ch, user, cmd.Args)
		})
	case command.CmdList:
		return h.handleList(ctx, ch)
	case command.CmdInfo:
		return h.handleInfo(ctx, cmd, ch, user)
	case command.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

// lookupUser fills in the display name shown on raid cards. The slash command
// only carries the legacy username.
func (h *SlackHandler) lookupUser(user entity.User) entity.User {
	info, err := h.slackClient.GetUserInfo(user.ID)
	if err != nil {
		h.logger.Warn("failed to get user info", slog.String("user", user.ID), slog.Any("error", err))
		return user
	}

	displayName := info.Profile.DisplayName
	if displayName == "" {
		displayName = info.Profile.RealName
	}
	if displayName == "" {
		displayName = info.Name
	}
	if displayName != "" {
		user.DisplayName = displayName
	}
	return user
}

func (h *SlackHandler) handleCreate(ctx context.Context, cmd *command.Command, ch entity.Channel, user entity.User) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please name the raid boss: `/raid raid mewtwo [end time]`")
	}

	raid, err := h.raidService.CreateRaid(ctx, ch, user, cmd.Args)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error creating raid: %v", err))
	}

	attachment := h.cardAttachment(ctx, ch, raid)

	// post the card as the bot so later commands can edit it in place
	channelID, timestamp, err := h.slackClient.PostMessage(ch.ID, slack.MsgOptionAttachments(attachment))
	if err != nil {
		h.logger.Warn("failed to post raid card", slog.String("raid", raid.ID), slog.Any("error", err))
		return &slack.Msg{
			ResponseType: slack.ResponseTypeInChannel,
			Text:         fmt.Sprintf("✅ <@%s> started raid `%s`", user.ID, raid.ID),
			Attachments:  []slack.Attachment{attachment},
		}
	}

	ref := entity.MessageRef{Platform: domain.PlatformSlack, ChannelID: channelID, MessageID: timestamp}
	if err := h.raidService.AttachMessage(ch, user, raid.ID, ref); err != nil {
		h.logger.Warn("failed to attach raid message", slog.String("raid", raid.ID), slog.Any("error", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Raid `%s` created", raid.ID),
	}
}

// handleUpdate runs a raid mutation and refreshes the posted card. Without a
// card to edit the updated raid is shown in the channel instead.
func (h *SlackHandler) handleUpdate(ctx context.Context, ch entity.Channel, user entity.User, verb string, update func() (*entity.Raid, error)) *slack.Msg {
	raid, err := update()
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("<@%s> %v", user.ID, err))
	}

	attachment := h.cardAttachment(ctx, ch, raid)
	text := fmt.Sprintf("✅ <@%s> %s `%s`", user.ID, verb, raid.ID)

	if raid.Message != nil && raid.Message.Platform == domain.PlatformSlack {
		_, _, _, err := h.slackClient.UpdateMessage(raid.Message.ChannelID, raid.Message.MessageID, slack.MsgOptionAttachments(attachment))
		if err == nil {
			return &slack.Msg{
				ResponseType: slack.ResponseTypeEphemeral,
				Text:         text,
			}
		}
		h.logger.Warn("failed to update raid card", slog.String("raid", raid.ID), slog.Any("error", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text,
		Attachments:  []slack.Attachment{attachment},
	}
}

func (h *SlackHandler) handleList(ctx context.Context, ch entity.Channel) *slack.Msg {
	raids := h.raidService.List(ctx, ch)

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         render.Summary(raids, render.SlackStyle),
	}
}

func (h *SlackHandler) handleInfo(ctx context.Context, cmd *command.Command, ch entity.Channel, user entity.User) *slack.Msg {
	raid, err := h.raidService.Info(ctx, ch, user, cmd.Args)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("<@%s> %v", user.ID, err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Attachments:  []slack.Attachment{h.cardAttachment(ctx, ch, raid)},
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         command.GetHelpText(render.SlackStyle.CommandPrefix),
	}
}

func (h *SlackHandler) cardAttachment(ctx context.Context, ch entity.Channel, raid *entity.Raid) slack.Attachment {
	card := render.Detail(raid, h.raidService.Factions(ctx, ch), render.SlackStyle)

	return slack.Attachment{
		Color:      fmt.Sprintf("#%06x", card.Color),
		Title:      card.Title,
		TitleLink:  card.URL,
		Text:       card.Description,
		ThumbURL:   card.ThumbnailURL,
		MarkdownIn: []string{"text"},
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	h.respond(w, h.createErrorResponse(message))
}

func (h *SlackHandler) respond(w http.ResponseWriter, response *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}
