package export

import (
	"fmt"
	"strings"

	"github.com/dpbr/dpbr-client/internal/client/models"
	"github.com/dpbr/dpbr-client/internal/common"
)

// Card is the renderable content of one export.
type Card struct {
	Title    string
	Subtitle string
	Lines    []string
	ImageURL string
}

// SettlementCard builds the card of a settlement. owner may be nil.
func SettlementCard(s models.Settlement, owner *models.Character) Card {
	sub := s.AcquiredAt
	if owner != nil {
		sub = fmt.Sprintf("%s · %s", owner.Nickname, s.AcquiredAt)
	}
	return Card{
		Title:    s.Title,
		Subtitle: sub,
		Lines:    nonEmpty(s.Description),
		ImageURL: s.ImageURL,
	}
}

// CharacterCard builds the roster card of a character.
func CharacterCard(c models.Character) Card {
	club := c.Club
	if club == "" {
		club = common.ClubName
	}
	return Card{
		Title:    c.Nickname,
		Subtitle: fmt.Sprintf("Lv.%d %s", c.Level, c.Job),
		Lines:    []string{c.Name, strings.TrimSpace(club + " · " + c.Server)},
		ImageURL: c.AvatarURL,
	}
}

func nonEmpty(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return []string{s}
}
