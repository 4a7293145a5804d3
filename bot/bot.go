package bot

import (
	"fmt"

	"cosmolive/bot/common"
	"cosmolive/bot/features/live"
	"cosmolive/bot/features/notifications"
	"cosmolive/bot/features/settings"
	"cosmolive/directory"
	"cosmolive/events"
	"cosmolive/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token string
}

type Bot struct {
	config   Config
	session  *discordgo.Session
	commands []*discordgo.ApplicationCommand
	eventBus *events.Bus

	// Features
	live          *live.Feature
	notifications *notifications.Feature
	settings      *settings.Feature
}

// New connects to Discord and wires the live alert features onto the session
func New(config Config, dir *directory.Directory, guildSettingsService service.GuildSettingsService, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	// Interactions carry the member and its roles, so no privileged intents are needed
	dg.Identify.Intents = discordgo.IntentsGuilds

	platform := NewPlatform(dg)
	resolver := service.NewResourceResolver(platform, guildSettingsService)
	liveService := service.NewLiveAlertService(dir, resolver, guildSettingsService, platform, eventBus)

	bot := &Bot{
		config:        config,
		session:       dg,
		commands:      BuildCommands(dir),
		eventBus:      eventBus,
		live:          live.NewFeature(dir, liveService),
		notifications: notifications.NewFeature(liveService),
		settings:      settings.NewFeature(liveService),
	}

	subscribeAuditLog(eventBus)

	dg.AddHandler(bot.handleReady)
	dg.AddHandler(bot.handleGuildCreate)
	dg.AddHandler(bot.handleCommands)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	log.WithFields(log.Fields{
		"user":   r.User.String(),
		"guilds": len(r.Guilds),
	}).Info("Logged in to Discord")
}

// handleCommands routes slash commands to the owning feature
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	if i.GuildID == "" {
		common.RespondWithError(s, i, "This command can only be used in a server.")
		return
	}

	name := i.ApplicationCommandData().Name
	switch name {
	case notifications.CommandJoin, notifications.CommandLeave:
		b.notifications.HandleCommand(s, i)
	case settings.CommandSetupChannel:
		b.settings.HandleCommand(s, i)
	default:
		if b.live.Handles(name) {
			b.live.HandleCommand(s, i)
			return
		}
		log.WithField("command", name).Warn("Received unknown command")
	}
}

// handleGuildCreate registers the command set in every guild the bot is in.
// Discord sends GUILD_CREATE for each guild at startup and whenever the bot joins one.
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	if g.Unavailable {
		return
	}

	logger := log.WithFields(log.Fields{
		"guild_id":   g.ID,
		"guild_name": g.Name,
	})

	if err := b.registerGuildCommands(s, g.ID); err != nil {
		logger.WithError(err).Error("Error registering commands for guild")
		return
	}
	logger.Info("Registered commands for guild")
}

func (b *Bot) registerGuildCommands(s *discordgo.Session, guildID string) error {
	if s.State == nil || s.State.User == nil {
		return fmt.Errorf("session has no application user yet")
	}

	if _, err := s.ApplicationCommandBulkOverwrite(s.State.User.ID, guildID, b.commands); err != nil {
		return fmt.Errorf("failed to overwrite commands: %w", err)
	}
	return nil
}
