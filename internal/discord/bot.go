package discord

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/dmaas/DumpsterBot_Go/internal/command"
	"github.com/dmaas/DumpsterBot_Go/internal/logger"
)

// Bot bridges Discord messages into the command router and posts the
// replies back to the channel.
type Bot struct {
	Session *discordgo.Session
	Router  *command.Router

	channels map[string]bool // empty means all channels
	modRoles map[string]bool // role names treated as moderators
}

// Config holds the bot configuration
type Config struct {
	Token      string
	ChannelIDs []string
	ModRoles   []string
}

// New creates a new Discord bot
func New(cfg Config, router *command.Router) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	channels := make(map[string]bool, len(cfg.ChannelIDs))
	for _, id := range cfg.ChannelIDs {
		channels[id] = true
	}
	modRoles := make(map[string]bool, len(cfg.ModRoles))
	for _, name := range cfg.ModRoles {
		modRoles[name] = true
	}

	return &Bot{
		Session:  s,
		Router:   router,
		channels: channels,
		modRoles: modRoles,
	}, nil
}

// Start starts the bot
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.messageCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info("Discord bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() {
	b.Session.Close()
}

// Run runs the bot until a signal is received
func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", s.State.User.Username)
}

func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if len(b.channels) > 0 && !b.channels[m.ChannelID] {
		return
	}

	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	log := logger.FromContext(ctx)

	reply, err := b.Router.Handle(ctx, command.Message{
		Channel:  m.ChannelID,
		Username: m.Author.Username,
		Text:     m.Content,
		IsMod:    b.isMod(s, m),
	})
	if err != nil {
		log.Error("Failed to handle message", "username", m.Author.Username, "error", err)
		return
	}
	if reply == "" {
		return
	}

	if _, err := s.ChannelMessageSend(m.ChannelID, reply); err != nil {
		log.Error("Failed to send reply", "channel", m.ChannelID, "error", err)
	}
}

// isMod checks the author's guild roles against the configured mod
// role names.
func (b *Bot) isMod(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	if m.Member == nil || len(b.modRoles) == 0 {
		return false
	}
	for _, roleID := range m.Member.Roles {
		role, err := s.State.Role(m.GuildID, roleID)
		if err != nil {
			continue
		}
		if b.modRoles[role.Name] {
			return true
		}
	}
	return false
}
