package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/KirkDiggler/mixology/internal/ledger"
	"github.com/KirkDiggler/mixology/internal/models"
	"github.com/KirkDiggler/mixology/internal/services/bar"
	"github.com/KirkDiggler/mixology/internal/services/search"
	"github.com/bwmarrin/discordgo"
)

// Option names shared between the command definition and its handlers
const (
	optionName     = "name"
	optionBodyMass = "body-mass"
	optionPatron   = "patron"
	optionCocktail = "cocktail"
	optionQuantity = "quantity"
)

// autocompleteTimeout keeps autocomplete answers inside Discord's response window
const autocompleteTimeout = 2500 * time.Millisecond

// MixologyCommand handles the /mixology command
type MixologyCommand struct {
	BaseCommand
	barService    bar.Service
	searchService search.Service
}

// NewMixologyCommand creates a new mixology command handler
func NewMixologyCommand(barService bar.Service, searchService search.Service) *MixologyCommand {
	minBodyMass := 1.0

	patronOption := &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         optionPatron,
		Description:  "Patron",
		Required:     true,
		Autocomplete: true,
	}
	bodyMassOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionNumber,
		Name:        optionBodyMass,
		Description: "Body mass in kg",
		Required:    true,
		MinValue:    &minBodyMass,
	}

	return &MixologyCommand{
		BaseCommand: BaseCommand{
			Name:        "mixology",
			Description: "Cocktail search and patron tracking",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "search",
					Description: "Search cocktails by name",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:         discordgo.ApplicationCommandOptionString,
							Name:         optionName,
							Description:  "Cocktail name",
							Required:     true,
							Autocomplete: true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "patron-add",
					Description: "Add a patron",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optionName,
							Description: "Patron name",
							Required:    true,
						},
						bodyMassOption,
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "patron-edit",
					Description: "Change a patron's name or body mass",
					Options: []*discordgo.ApplicationCommandOption{
						patronOption,
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optionName,
							Description: "New patron name",
							Required:    true,
						},
						bodyMassOption,
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "patron-remove",
					Description: "Remove a patron and their drinks",
					Options:     []*discordgo.ApplicationCommandOption{patronOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "patrons",
					Description: "Show every patron and their blood alcohol estimate",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "drink",
					Description: "Log drinks for a patron",
					Options: []*discordgo.ApplicationCommandOption{
						patronOption,
						{
							Type:         discordgo.ApplicationCommandOptionString,
							Name:         optionCocktail,
							Description:  "Cocktail name",
							Required:     true,
							Autocomplete: true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optionQuantity,
							Description: "How many (default 1)",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show drink statistics",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "theme",
					Description: "Toggle the light/dark theme",
				},
			},
		},
		barService:    barService,
		searchService: searchService,
	}
}

// Handle processes a Discord interaction for the mixology command
func (c *MixologyCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	options := optionMap(sub.Options)

	// Handle the appropriate subcommand
	var err error
	switch sub.Name {
	case "search":
		err = c.handleSearch(s, i, options)
	case "patron-add":
		err = c.handlePatronAdd(s, i, options)
	case "patron-edit":
		err = c.handlePatronEdit(s, i, options)
	case "patron-remove":
		err = c.handlePatronRemove(s, i, options)
	case "patrons":
		err = c.handlePatrons(s, i)
	case "drink":
		err = c.handleDrink(s, i, options)
	case "stats":
		err = c.handleStats(s, i)
	case "theme":
		err = c.handleTheme(s, i)
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

// Autocomplete answers autocomplete requests for cocktail and patron options
func (c *MixologyCommand) Autocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return RespondWithChoices(s, i, nil)
	}

	focused := focusedOption(data.Options[0].Options)
	if focused == nil {
		return RespondWithChoices(s, i, nil)
	}

	typed, _ := focused.Value.(string)

	ctx, cancel := context.WithTimeout(context.Background(), autocompleteTimeout)
	defer cancel()

	switch focused.Name {
	case optionPatron:
		output, err := c.barService.ListPatrons(ctx)
		if err != nil {
			log.Printf("Error listing patrons: %v", err)
			return RespondWithChoices(s, i, nil)
		}
		return RespondWithChoices(s, i, patronChoices(output.Patrons, typed))

	case optionName, optionCocktail:
		output, err := c.searchService.Suggest(ctx, &search.SuggestInput{
			SessionID: interactionUserID(i),
			Query:     typed,
		})
		if err != nil {
			// A newer keystroke from the same user owns the suggestion list now
			if !errors.Is(err, search.ErrSuperseded) {
				log.Printf("Error fetching suggestions: %v", err)
			}
			return RespondWithChoices(s, i, nil)
		}
		return RespondWithChoices(s, i, cocktailChoices(output.Suggestions.Names))
	}

	return RespondWithChoices(s, i, nil)
}

// handleSearch handles the search subcommand
func (c *MixologyCommand) handleSearch(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	query := stringOption(options, optionName)

	output, err := c.searchService.Search(ctx, &search.SearchInput{Query: query})
	if err != nil {
		log.Printf("Error searching cocktails: %v", err)
		return RespondWithError(s, i, "Failed to fetch cocktails. Please try again.")
	}

	return RespondWithEmbed(s, i, renderCocktails(query, output.Cocktails, c.theme(ctx)))
}

// handlePatronAdd handles the patron-add subcommand
func (c *MixologyCommand) handlePatronAdd(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	output, err := c.barService.AddPatron(ctx, &bar.AddPatronInput{
		Name:     stringOption(options, optionName),
		BodyMass: numberOption(options, optionBodyMass),
	})
	if err != nil {
		log.Printf("Error adding patron: %v", err)
		return RespondWithError(s, i, patronErrorMessage(err))
	}

	c.save(ctx)

	return RespondWithEmbed(s, i, renderPatron("Patron Added", output.Patron, c.theme(ctx)))
}

// handlePatronEdit handles the patron-edit subcommand
func (c *MixologyCommand) handlePatronEdit(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	output, err := c.barService.EditPatron(ctx, &bar.EditPatronInput{
		PatronID: stringOption(options, optionPatron),
		Name:     stringOption(options, optionName),
		BodyMass: numberOption(options, optionBodyMass),
	})
	if err != nil {
		log.Printf("Error editing patron: %v", err)
		return RespondWithError(s, i, patronErrorMessage(err))
	}

	c.save(ctx)

	return RespondWithEmbed(s, i, renderPatron("Patron Updated", output.Patron, c.theme(ctx)))
}

// handlePatronRemove handles the patron-remove subcommand; removal waits for the Remove button
func (c *MixologyCommand) handlePatronRemove(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	output, err := c.barService.RequestRemovePatron(ctx, &bar.RequestRemovePatronInput{
		PatronID: stringOption(options, optionPatron),
	})
	if err != nil {
		log.Printf("Error requesting patron removal: %v", err)
		return RespondWithError(s, i, patronErrorMessage(err))
	}

	embed, buttons := renderAction(output.Action, c.theme(ctx))
	return RespondWithEmbedAndButtons(s, i, embed, buttons)
}

// handlePatrons handles the patrons subcommand
func (c *MixologyCommand) handlePatrons(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	output, err := c.barService.ListPatrons(ctx)
	if err != nil {
		log.Printf("Error listing patrons: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to list patrons: %v", err))
	}

	return RespondWithEmbed(s, i, renderPatrons(output.Patrons, c.theme(ctx)))
}

// handleDrink handles the drink subcommand
func (c *MixologyCommand) handleDrink(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	// Resolve the typed or suggested name to a recipe
	found, err := c.searchService.FindCocktail(ctx, &search.FindCocktailInput{
		Name: stringOption(options, optionCocktail),
	})
	if err != nil {
		log.Printf("Error finding cocktail: %v", err)
		if errors.Is(err, search.ErrCocktailNotFound) {
			return RespondWithError(s, i, "No cocktail matches that name.")
		}
		return RespondWithError(s, i, "Failed to fetch cocktails. Please try again.")
	}

	output, err := c.barService.AddDrink(ctx, &bar.AddDrinkInput{
		PatronID: stringOption(options, optionPatron),
		Cocktail: found.Cocktail,
		Quantity: ledger.ParseQuantity(stringOption(options, optionQuantity)),
	})
	if err != nil {
		log.Printf("Error adding drink: %v", err)
		return RespondWithError(s, i, patronErrorMessage(err))
	}

	c.save(ctx)

	embed, buttons := renderAction(output.Action, c.theme(ctx))
	return RespondWithEmbedAndButtons(s, i, embed, buttons)
}

// handleStats handles the stats subcommand
func (c *MixologyCommand) handleStats(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	output, err := c.barService.GetStatistics(ctx)
	if err != nil {
		log.Printf("Error getting statistics: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to get statistics: %v", err))
	}

	return RespondWithEmbed(s, i, renderStatistics(output.Statistics, c.theme(ctx)))
}

// handleTheme handles the theme subcommand
func (c *MixologyCommand) handleTheme(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	output, err := c.barService.ToggleTheme(ctx)
	if err != nil {
		log.Printf("Error toggling theme: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to toggle theme: %v", err))
	}

	c.save(ctx)

	return RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "Theme",
		Description: fmt.Sprintf("Switched to %s mode.", output.Theme),
		Color:       themeColor(output.Theme),
	})
}

// theme returns the current theme, falling back to light
func (c *MixologyCommand) theme(ctx context.Context) models.Theme {
	output, err := c.barService.GetTheme(ctx)
	if err != nil {
		log.Printf("Error getting theme: %v", err)
		return models.ThemeLight
	}
	return output.Theme
}

// save persists state after a mutation; failures are logged, the mutation stands
func (c *MixologyCommand) save(ctx context.Context) {
	if err := c.barService.Save(ctx); err != nil {
		log.Printf("Error saving state: %v", err)
	}
}

// patronErrorMessage maps ledger failures to user-facing text
func patronErrorMessage(err error) string {
	switch {
	case errors.Is(err, ledger.ErrDuplicateName):
		return "A patron with this name already exists."
	case errors.Is(err, ledger.ErrMissingFields):
		return "Please fill in all fields."
	case errors.Is(err, ledger.ErrInvalidBodyMass):
		return "Body mass must be a positive number of kilograms."
	case errors.Is(err, ledger.ErrPatronNotFound):
		return "That patron no longer exists."
	default:
		return fmt.Sprintf("Something went wrong: %v", err)
	}
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, option := range options {
		m[option.Name] = option
	}
	return m
}

func focusedOption(options []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	for _, option := range options {
		if option.Focused {
			return option
		}
	}
	return nil
}

func stringOption(options map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	option, ok := options[name]
	if !ok {
		return ""
	}
	value, _ := option.Value.(string)
	return value
}

func numberOption(options map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) float64 {
	option, ok := options[name]
	if !ok {
		return 0
	}
	value, _ := option.Value.(float64)
	return value
}

// interactionUserID is the invoking user in guilds and DMs alike
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
