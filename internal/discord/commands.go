package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/kangalioo/CourtJester/internal/command"
)

// registerCommands syncs slash commands for a guild with Discord: deletes
// obsolete ones and creates whatever is missing.
func (b *Bot) registerCommands(guildID string) error {
	appID := b.dg.State.User.ID
	if appID == "" {
		user, err := b.dg.User("@me")
		if err != nil {
			return err
		}
		appID = user.ID
	}

	local := buildCommandDefinitions()
	localNames := make(map[string]struct{}, len(local))
	for _, def := range local {
		localNames[def.Name] = struct{}{}
	}

	remote, _ := b.dg.ApplicationCommands(appID, guildID)
	remoteNames := make(map[string]struct{}, len(remote))
	for _, rc := range remote {
		remoteNames[rc.Name] = struct{}{}
		if _, keep := localNames[rc.Name]; keep {
			continue
		}
		log.Printf("[INFO] [%s] Deleting obsolete command: %s", guildID, rc.Name)
		if err := b.dg.ApplicationCommandDelete(appID, guildID, rc.ID); err != nil {
			log.Printf("[ERR] [%s] Failed to delete %s: %v", guildID, rc.Name, err)
		}
	}

	for _, def := range local {
		if _, exists := remoteNames[def.Name]; exists {
			continue
		}
		if _, err := b.dg.ApplicationCommandCreate(appID, guildID, def); err != nil {
			log.Printf("[ERR] [%s] Can't create command %s: %v", guildID, def.Name, err)
		} else {
			log.Printf("[DONE] [%s] Command created: %s", guildID, def.Name)
		}
	}

	return nil
}

// buildCommandDefinitions collects slash definitions from the registry.
func buildCommandDefinitions() []*discordgo.ApplicationCommand {
	var defs []*discordgo.ApplicationCommand
	for _, cmd := range command.All() {
		slash, ok := cmd.(command.SlashProvider)
		if !ok {
			continue
		}
		if def := slash.SlashDefinition(); def != nil {
			if def.Type == 0 {
				def.Type = discordgo.ChatApplicationCommand
			}
			defs = append(defs, def)
		}
	}
	return defs
}
