package cli

import (
	"context"
	"fmt"

	"github.com/dpbr/dpbr-client/internal/client/export"
)

// Export renders a character or settlement card and stores it through the
// configured sink.
func (a *App) Export(ctx context.Context, kind, id string) error {
	var (
		card export.Card
		base string
	)

	switch kind {
	case "character":
		c := a.lookupCharacter(ctx, id)
		if c == nil {
			fmt.Fprintf(a.out, "Character %s not found.\n", id)
			return nil
		}
		card, base = export.CharacterCard(*c), c.Nickname

	case "settlement":
		s := a.lookupSettlement(ctx, id)
		if s == nil {
			fmt.Fprintf(a.out, "Settlement %s not found.\n", id)
			return nil
		}
		card, base = export.SettlementCard(*s, a.lookupCharacter(ctx, s.CharacterID)), s.Title

	default:
		return fmt.Errorf("unknown export kind %q", kind)
	}

	loc, err := a.exporter.Export(ctx, card, base)
	if err != nil {
		return a.fail(ctx, "export", err)
	}
	fmt.Fprintln(a.out, "Saved", loc)
	return nil
}
