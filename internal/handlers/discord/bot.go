package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/KirkDiggler/mixology/internal/models"
	"github.com/KirkDiggler/mixology/internal/services/bar"
	"github.com/KirkDiggler/mixology/internal/services/search"
	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot instance
type Bot struct {
	session       *discordgo.Session
	commands      map[string]CommandHandler
	commandIDs    map[string]string // Maps command name to command ID
	barService    bar.Service
	searchService search.Service
	config        *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Bar service owning patrons, pending actions and theme
	BarService bar.Service

	// Search service for recipes and suggestions
	SearchService search.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.BarService == nil {
		return nil, errors.New("bar service cannot be nil")
	}

	if cfg.SearchService == nil {
		return nil, errors.New("search service cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:       session,
		commands:      make(map[string]CommandHandler),
		commandIDs:    make(map[string]string),
		barService:    cfg.BarService,
		searchService: cfg.SearchService,
		config:        cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	// Register the mixology command
	mixologyCmd := NewMixologyCommand(b.barService, b.searchService)
	if err := b.RegisterCommand(mixologyCmd); err != nil {
		return fmt.Errorf("failed to register mixology command: %w", err)
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	// Remove all commands
	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		} else {
			log.Printf("Successfully deleted command %s (ID: %s)", cmdName, cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.appID()

	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	if b.config.GuildID != "" {
		log.Printf("Registering command %s for guild %s", cmd.GetName(), b.config.GuildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Printf("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

// appID falls back to the session user when no application ID is configured
func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		// Handle slash commands
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Printf("Error handling command %s: %v", i.ApplicationCommandData().Name, err)
			}
		}
	case discordgo.InteractionApplicationCommandAutocomplete:
		// Handle option autocomplete
		h, ok := b.commands[i.ApplicationCommandData().Name]
		if !ok {
			return
		}
		if ac, ok := h.(AutocompleteHandler); ok {
			if err := ac.Autocomplete(s, i); err != nil {
				log.Printf("Error handling autocomplete for %s: %v", i.ApplicationCommandData().Name, err)
			}
		}
	case discordgo.InteractionMessageComponent:
		// Handle buttons
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.Printf("Error handling component interaction: %v", err)
		}
	}
}

// handleComponentInteraction handles pending action buttons
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	actionID, accept, ok := parseActionCustomID(customID)
	if !ok {
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}

	return b.handleActionButton(s, i, actionID, accept)
}

// handleActionButton resolves a pending action and shows its follow-up, if any, after its delay
func (b *Bot) handleActionButton(s *discordgo.Session, i *discordgo.InteractionCreate, actionID string, accept bool) error {
	ctx := context.Background()

	output, err := b.barService.ResolveAction(ctx, &bar.ResolveActionInput{
		ActionID: actionID,
		Accept:   accept,
	})
	if err != nil {
		if errors.Is(err, bar.ErrActionNotFound) {
			return RespondWithEphemeralMessage(s, i, "This action has already been handled.")
		}
		log.Printf("Error resolving action: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to resolve action: %v", err))
	}

	// Removing a patron is the only resolution that changes state
	if accept && output.Resolved.OnAccept == models.ActionRemovePatron {
		if err := b.barService.Save(ctx); err != nil {
			log.Printf("Error saving state: %v", err)
		}
	}

	theme := models.ThemeLight
	if themeOutput, err := b.barService.GetTheme(ctx); err == nil {
		theme = themeOutput.Theme
	}

	// Replace the buttons with the outcome
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{renderResolved(output.Resolved, accept, theme)},
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to update action message: %w", err)
	}

	if output.FollowUp != nil {
		b.sendFollowUp(s, i.Interaction, output.FollowUp, theme)
	}

	return nil
}

// sendFollowUp posts action as a follow-up message once its delay has passed
func (b *Bot) sendFollowUp(s *discordgo.Session, interaction *discordgo.Interaction, action *models.PendingAction, theme models.Theme) {
	embed, buttons := renderAction(action, theme)

	time.AfterFunc(action.Delay, func() {
		_, err := s.FollowupMessageCreate(interaction, true, &discordgo.WebhookParams{
			Embeds: []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: buttons},
			},
		})
		if err != nil {
			log.Printf("Error sending follow-up %s: %v", action.Title, err)
		}
	})
}
