// Package discord runs the raid commands as a Discord bot. Commands are
// plain channel messages starting with "!".
package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/raid-bot/internal/domain"
	"github.com/diegoclair/raid-bot/internal/domain/command"
	"github.com/diegoclair/raid-bot/internal/domain/contract"
	"github.com/diegoclair/raid-bot/internal/domain/entity"
	"github.com/diegoclair/raid-bot/internal/render"
)

// Discord limit for message content
const maxContentLength = 2000

// messenger is the part of *discordgo.Session the bot writes through.
type messenger interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditEmbed(channelID, messageID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type Bot struct {
	session   *discordgo.Session
	messenger messenger
	raids     contract.RaidService
	ctx       context.Context
	logger    *slog.Logger
}

func New(log *slog.Logger, token string, raids contract.RaidService) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	b := newBot(log, session, raids)
	b.session = session
	session.AddHandler(b.onMessageCreate)

	return b, nil
}

func newBot(log *slog.Logger, m messenger, raids contract.RaidService) *Bot {
	return &Bot{
		messenger: m,
		raids:     raids,
		ctx:       context.Background(),
		logger:    log.With(slog.String("service", "discord")),
	}
}

// FactionResolver returns a resolver backed by this bot's session.
func (b *Bot) FactionResolver() *FactionResolver {
	return NewFactionResolver(b.session)
}

// Run connects to the gateway and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	b.ctx = ctx

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}
	b.logger.Info("Discord bot connected")

	<-ctx.Done()

	if err := b.session.Close(); err != nil {
		return fmt.Errorf("failed to close discord session: %w", err)
	}
	b.logger.Info("Discord bot disconnected")
	return nil
}

func (b *Bot) onMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	b.handleMessage(b.ctx, m.Message)
}

func (b *Bot) handleMessage(ctx context.Context, m *discordgo.Message) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	text, ok := strings.CutPrefix(m.Content, render.DiscordStyle.CommandPrefix)
	if !ok {
		return
	}

	cmd, err := command.ParseCommand(text)
	if err != nil {
		// "!" is shared with other bots in most servers
		b.logger.Debug("ignoring message", slog.String("content", m.Content), slog.Any("error", err))
		return
	}

	ch := entity.Channel{Platform: domain.PlatformDiscord, TeamID: m.GuildID, ID: m.ChannelID}
	user := messageUser(m)

	switch cmd.Type {
	case command.CmdRaid:
		b.handleCreate(ctx, ch, user, cmd.Args)
	case command.CmdJoin:
		b.handleUpdate(ctx, ch, user, "joined", b.raids.Join, cmd.Args)
	case command.CmdLeave:
		b.handleUpdate(ctx, ch, user, "left", b.raids.Leave, cmd.Args)
	case command.CmdHere:
		b.handleUpdate(ctx, ch, user, "arrived at", b.raids.Arrive, cmd.Args)
	case command.CmdStart:
		b.handleUpdate(ctx, ch, user, "set the start time of", b.raids.SetStart, cmd.Args)
	case command.CmdEnd:
		b.handleUpdate(ctx, ch, user, "set the end time of", b.raids.SetEnd, cmd.Args)
	case command.CmdLocation:
		b.handleUpdate(ctx, ch, user, "set the location of", b.raids.SetLocation, cmd.Args)
	case command.CmdList:
		b.send(ch.ID, render.Summary(b.raids.List(ctx, ch), render.DiscordStyle))
	case command.CmdInfo:
		raid, err := b.raids.Info(ctx, ch, user, cmd.Args)
		if err != nil {
			b.sendError(ch.ID, user, err)
			return
		}
		b.sendEmbed(ch.ID, b.embed(ctx, ch, raid))
	case command.CmdHelp:
		b.send(ch.ID, command.GetHelpText(render.DiscordStyle.CommandPrefix))
	}
}

func messageUser(m *discordgo.Message) entity.User {
	user := entity.User{ID: m.Author.ID, DisplayName: m.Author.Username}
	if m.Author.GlobalName != "" {
		user.DisplayName = m.Author.GlobalName
	}
	if m.Member != nil {
		if m.Member.Nick != "" {
			user.DisplayName = m.Member.Nick
		}
		user.Roles = m.Member.Roles
	}
	return user
}

func (b *Bot) handleCreate(ctx context.Context, ch entity.Channel, user entity.User, args []string) {
	if len(args) == 0 {
		b.send(ch.ID, "❌ Please name the raid boss: `!raid mewtwo [end time]`")
		return
	}

	raid, err := b.raids.CreateRaid(ctx, ch, user, args)
	if err != nil {
		b.sendError(ch.ID, user, err)
		return
	}

	msg := b.sendEmbed(ch.ID, b.embed(ctx, ch, raid))
	if msg == nil {
		return
	}

	ref := entity.MessageRef{Platform: domain.PlatformDiscord, ChannelID: msg.ChannelID, MessageID: msg.ID}
	if err := b.raids.AttachMessage(ch, user, raid.ID, ref); err != nil {
		b.logger.Warn("failed to attach raid message", slog.String("raid", raid.ID), slog.Any("error", err))
	}
}

type raidUpdate func(ctx context.Context, ch entity.Channel, user entity.User, args []string) (*entity.Raid, error)

// handleUpdate edits the raid's card in place, or posts a new one when the
// card is gone.
func (b *Bot) handleUpdate(ctx context.Context, ch entity.Channel, user entity.User, verb string, update raidUpdate, args []string) {
	raid, err := update(ctx, ch, user, args)
	if err != nil {
		b.sendError(ch.ID, user, err)
		return
	}

	embed := b.embed(ctx, ch, raid)
	b.send(ch.ID, fmt.Sprintf("✅ %s %s `%s`", user.Mention(), verb, raid.ID))

	if raid.Message != nil && raid.Message.Platform == domain.PlatformDiscord {
		_, err := b.messenger.ChannelMessageEditEmbed(raid.Message.ChannelID, raid.Message.MessageID, embed)
		if err == nil {
			return
		}
		b.logger.Warn("failed to edit raid card", slog.String("raid", raid.ID), slog.Any("error", err))
	}

	if msg := b.sendEmbed(ch.ID, embed); msg != nil {
		ref := entity.MessageRef{Platform: domain.PlatformDiscord, ChannelID: msg.ChannelID, MessageID: msg.ID}
		if err := b.raids.AttachMessage(ch, user, raid.ID, ref); err != nil {
			b.logger.Warn("failed to attach raid message", slog.String("raid", raid.ID), slog.Any("error", err))
		}
	}
}

func (b *Bot) embed(ctx context.Context, ch entity.Channel, raid *entity.Raid) *discordgo.MessageEmbed {
	card := render.Detail(raid, b.raids.Factions(ctx, ch), render.DiscordStyle)

	return &discordgo.MessageEmbed{
		Title:       card.Title,
		Description: card.Description,
		URL:         card.URL,
		Color:       card.Color,
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: card.ThumbnailURL},
	}
}

func (b *Bot) send(channelID, content string) {
	if len(content) > maxContentLength {
		content = content[:maxContentLength-3] + "..."
	}

	if _, err := b.messenger.ChannelMessageSend(channelID, content); err != nil {
		b.logger.Error("failed to send message", slog.String("channel", channelID), slog.Any("error", err))
	}
}

func (b *Bot) sendError(channelID string, user entity.User, err error) {
	b.send(channelID, fmt.Sprintf("❌ %s %v", user.Mention(), err))
}

func (b *Bot) sendEmbed(channelID string, embed *discordgo.MessageEmbed) *discordgo.Message {
	msg, err := b.messenger.ChannelMessageSendEmbed(channelID, embed)
	if err != nil {
		b.logger.Error("failed to send raid card", slog.String("channel", channelID), slog.Any("error", err))
		return nil
	}
	return msg
}
