package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/mixology/internal/models"
	"github.com/KirkDiggler/mixology/internal/services/bar"
	"github.com/bwmarrin/discordgo"
)

// Embed colours
const (
	colorLight   = 0x38bdf8
	colorDark    = 0x1e293b
	colorWarning = 0xf59e0b
	colorError   = 0xff0000
)

const (
	// maxChoices is the most autocomplete choices Discord accepts
	maxChoices = 25

	// maxChoiceLength is the longest choice name Discord accepts
	maxChoiceLength = 100

	// maxCocktailFields caps how many recipes a search embed lists
	maxCocktailFields = 10

	actionPrefix = "action"
	confirmVerb  = "confirm"
	cancelVerb   = "cancel"
)

// themeColor is the embed colour for the theme
func themeColor(theme models.Theme) int {
	if theme == models.ThemeDark {
		return colorDark
	}
	return colorLight
}

// actionCustomID encodes a pending action resolution into a button custom id
func actionCustomID(accept bool, actionID string) string {
	verb := cancelVerb
	if accept {
		verb = confirmVerb
	}
	return strings.Join([]string{actionPrefix, verb, actionID}, ":")
}

// parseActionCustomID decodes a custom id produced by actionCustomID
func parseActionCustomID(customID string) (actionID string, accept bool, ok bool) {
	parts := strings.SplitN(customID, ":", 3)
	if len(parts) != 3 || parts[0] != actionPrefix || parts[2] == "" {
		return "", false, false
	}

	switch parts[1] {
	case confirmVerb:
		return parts[2], true, true
	case cancelVerb:
		return parts[2], false, true
	default:
		return "", false, false
	}
}

// renderAction renders a pending action as an embed with its buttons
func renderAction(action *models.PendingAction, theme models.Theme) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Title:       action.Title,
		Description: action.Message,
		Color:       themeColor(theme),
	}

	if action.Kind == models.ActionKindWarn {
		embed.Title = "⚠️ " + action.Title
		embed.Color = colorWarning
		return embed, []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "OK",
				Style:    discordgo.PrimaryButton,
				CustomID: actionCustomID(true, action.ID),
			},
		}
	}

	confirmLabel := "Confirm"
	confirmStyle := discordgo.SuccessButton
	if action.OnAccept == models.ActionRemovePatron {
		confirmLabel = "Remove"
		confirmStyle = discordgo.DangerButton
		if action.PatronName != "" {
			embed.Footer = &discordgo.MessageEmbedFooter{Text: action.PatronName}
		}
	}
	if action.OnAccept == models.ActionAcknowledgeDrink {
		embed.Title = "🍸 " + action.Title
	}

	return embed, []discordgo.MessageComponent{
		discordgo.Button{
			Label:    confirmLabel,
			Style:    confirmStyle,
			CustomID: actionCustomID(true, action.ID),
		},
		discordgo.Button{
			Label:    "Cancel",
			Style:    discordgo.SecondaryButton,
			CustomID: actionCustomID(false, action.ID),
		},
	}
}

// renderResolved renders an action once its buttons have been used
func renderResolved(action *models.PendingAction, accepted bool, theme models.Theme) *discordgo.MessageEmbed {
	status := "Cancelled"
	if accepted {
		status = "Confirmed"
	}
	if action.Kind == models.ActionKindWarn {
		status = "Acknowledged"
	}

	return &discordgo.MessageEmbed{
		Title:       action.Title,
		Description: action.Message,
		Color:       themeColor(theme),
		Footer:      &discordgo.MessageEmbedFooter{Text: status},
	}
}

// renderPatrons renders every patron with their current saturation
func renderPatrons(statuses []*bar.PatronStatus, theme models.Theme) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Patrons",
		Color: themeColor(theme),
	}

	if len(statuses) == 0 {
		embed.Description = "No patrons yet. Add one with `/mixology patron-add`."
		return embed
	}

	for _, status := range statuses {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   status.Patron.Name,
			Value:  patronSummary(status),
			Inline: true,
		})
	}

	return embed
}

// renderPatron renders a single patron under title
func renderPatron(title string, patron *models.Patron, theme models.Theme) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("**%s** (%.1f kg)", patron.Name, patron.BodyMass),
		Color:       themeColor(theme),
	}
}

func patronSummary(status *bar.PatronStatus) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Body mass: %.1f kg\n", status.Patron.BodyMass))
	sb.WriteString(fmt.Sprintf("Drinks: %d\n", len(status.Patron.Drinks)))
	sb.WriteString(fmt.Sprintf("BAC: %.3f%%", status.Saturation))
	if status.OverLimit {
		sb.WriteString(" ⚠️ over limit")
	}
	return sb.String()
}

// renderCocktails renders search results with their ingredient lists
func renderCocktails(query string, cocktails []*models.Cocktail, theme models.Theme) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Cocktails matching \"%s\"", query),
		Color: themeColor(theme),
	}

	if len(cocktails) == 0 {
		embed.Description = "No cocktails found."
		return embed
	}

	if len(cocktails) > maxCocktailFields {
		embed.Description = fmt.Sprintf("Showing %d of %d results.", maxCocktailFields, len(cocktails))
		cocktails = cocktails[:maxCocktailFields]
	}

	for _, cocktail := range cocktails {
		value := strings.Join(cocktail.IngredientList(), "\n")
		if value == "" {
			value = "No ingredients listed"
		}
		name := cocktail.Name
		if cocktail.Alcoholic != "" {
			name = fmt.Sprintf("%s (%s)", cocktail.Name, cocktail.Alcoholic)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   name,
			Value:  value,
			Inline: true,
		})
	}

	if first := cocktails[0]; first.Thumbnail != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: first.Thumbnail}
	}

	return embed
}

// renderStatistics renders served drink totals
func renderStatistics(stats *models.Statistics, theme models.Theme) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Statistics",
		Color: themeColor(theme),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Patrons",
				Value:  fmt.Sprintf("%d", stats.TotalPatrons),
				Inline: true,
			},
			{
				Name:   "Drinks Served",
				Value:  fmt.Sprintf("%d", stats.TotalDrinks),
				Inline: true,
			},
		},
	}

	if len(stats.Breakdown) > 0 {
		var lines []string
		for _, count := range stats.Breakdown {
			lines = append(lines, fmt.Sprintf("%s: %d", count.Name, count.Count))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "By Drink",
			Value: strings.Join(lines, "\n"),
		})
	}

	return embed
}

// cocktailChoices turns suggestion names into autocomplete choices
func cocktailChoices(names []string) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(names))
	seen := make(map[string]bool)
	for _, name := range names {
		if len(choices) == maxChoices {
			break
		}
		if name == "" || len(name) > maxChoiceLength || seen[name] {
			continue
		}
		seen[name] = true
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  name,
			Value: name,
		})
	}
	return choices
}

// patronChoices offers the patrons whose name contains typed, valued by patron id
func patronChoices(statuses []*bar.PatronStatus, typed string) []*discordgo.ApplicationCommandOptionChoice {
	typed = strings.ToLower(strings.TrimSpace(typed))

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(statuses))
	for _, status := range statuses {
		if len(choices) == maxChoices {
			break
		}
		if typed != "" && !strings.Contains(strings.ToLower(status.Patron.Name), typed) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  status.Patron.Name,
			Value: status.Patron.ID,
		})
	}
	return choices
}
