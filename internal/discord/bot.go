package discord

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/kangalioo/CourtJester/internal/apis"
	"github.com/kangalioo/CourtJester/internal/command"
	"github.com/kangalioo/CourtJester/internal/config"
	"github.com/kangalioo/CourtJester/internal/music/lavalink"
	"github.com/kangalioo/CourtJester/internal/music/player"
	"github.com/kangalioo/CourtJester/internal/music/resolver"
	"github.com/kangalioo/CourtJester/internal/music/voice"
	"github.com/kangalioo/CourtJester/internal/storage"
)

// Bot is the Discord front of the jester.
type Bot struct {
	dg      *discordgo.Session
	cfg     *config.Config
	storage *storage.Storage

	lava  *lavalink.Client
	music *player.Manager
	tenor *apis.Tenor
	jikan *apis.Jikan
}

// StartBot runs the Discord bot until ctx is cancelled.
func StartBot(ctx context.Context, cfg *config.Config, store *storage.Storage) error {
	b := &Bot{
		cfg:     cfg,
		storage: store,
		lava:    lavalink.New(cfg.LavalinkAddress, cfg.LavalinkPassword),
		jikan:   apis.NewJikan(),
	}
	if cfg.TenorToken != "" {
		b.tenor = apis.NewTenor(cfg.TenorToken)
	}
	if err := b.run(ctx); err != nil {
		return fmt.Errorf("bot run error: %w", err)
	}
	return nil
}

// run wires the session, the audio node and the player manager together.
func (b *Bot) run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg

	b.configureIntents()

	var spotify resolver.SpotifyLookup
	if b.cfg.SpotifyClientID != "" && b.cfg.SpotifyClientSecret != "" {
		authCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		client, err := resolver.NewSpotifyClient(authCtx, b.cfg.SpotifyClientID, b.cfg.SpotifyClientSecret)
		cancel()
		if err != nil {
			log.Println("[WARN] Spotify credentials rejected, share links will fall back to search:", err)
		} else {
			spotify = client
		}
	}

	sessions := voice.NewRegistry(&voiceTransport{dg: dg}, b.lava)
	b.music = player.NewManager(b.lava, sessions, resolver.New(spotify, b.lava), b.cfg.VoiceIdleTimeout)
	b.lava.SetHandler(b.music)

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onGuildCreate)
	dg.AddHandler(b.onInteractionCreate)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onMessageReactionAdd)
	dg.AddHandler(b.onVoiceServerUpdate)
	dg.AddHandler(b.onVoiceStateUpdate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	if err := b.lava.Connect(ctx, dg.State.User.ID); err != nil {
		return fmt.Errorf("failed to connect to audio node: %w", err)
	}
	defer b.lava.Close()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	return nil
}

func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentMessageContent
}

// onReady registers slash commands for every guild the bot already sits in.
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	for _, g := range r.Guilds {
		if err := b.registerCommands(g.ID); err != nil {
			log.Printf("[ERR] Error registering slash commands for guild %s: %v", g.ID, err)
		}
	}
	log.Printf("[INFO] ✅ Discord bot %v is running.", s.State.User.Username)
}

func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	log.Printf("[INFO] Bot added to guild: %s (%s)", g.Guild.ID, g.Guild.Name)
	if err := b.registerCommands(g.Guild.ID); err != nil {
		log.Printf("[ERR] Failed to register commands for new guild %s: %v", g.Guild.ID, err)
	}
}

// onInteractionCreate routes slash interactions into the command registry.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	cmdName := i.ApplicationCommandData().Name
	cmd, ok := command.Get(cmdName)
	if !ok {
		log.Printf("[WARN] Unknown command: %s", cmdName)
		return
	}

	ctx := &command.SlashContext{
		Session: s,
		Event:   i,
		Storage: b.storage,
		Music:   b.music,
		Tenor:   b.tenor,
		Jikan:   b.jikan,
	}
	if err := cmd.Run(ctx); err != nil {
		log.Println("[ERR] Error running slash command:", err)
	}
}
