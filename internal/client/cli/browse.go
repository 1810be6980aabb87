package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dpbr/dpbr-client/internal/client/models"
)

// Characters prints the roster. sample shows the built-in placeholder
// roster without calling the backend.
func (a *App) Characters(ctx context.Context, sample bool) error {
	var (
		list []models.Character
		err  error
	)
	if sample {
		list = models.PlaceholderCharacters()
	} else {
		list, err = a.reader.Characters(ctx)
		if err != nil {
			return a.fail(ctx, "characters", err)
		}
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No characters.")
		return nil
	}
	printCharacters(a.out, list)
	return nil
}

func (a *App) Character(ctx context.Context, id string) error {
	c := a.lookupCharacter(ctx, id)
	if c == nil {
		fmt.Fprintf(a.out, "Character %s not found.\n", id)
		return nil
	}
	printCharacters(a.out, []models.Character{*c})
	return nil
}

func (a *App) Settlements(ctx context.Context, characterID string) error {
	var (
		list []models.Settlement
		err  error
	)
	if _, ok := models.PlaceholderCharacter(characterID); ok {
		list = models.PlaceholderSettlements(characterID)
	} else {
		list, err = a.reader.SettlementsByCharacter(ctx, characterID)
		if err != nil {
			return a.fail(ctx, "settlements", err)
		}
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No settlements.")
		return nil
	}
	printSettlements(a.out, list)
	return nil
}

func (a *App) Settlement(ctx context.Context, id string) error {
	s := a.lookupSettlement(ctx, id)
	if s == nil {
		fmt.Fprintf(a.out, "Settlement %s not found.\n", id)
		return nil
	}
	fmt.Fprintf(a.out, "%s\n%s\n\n%s\n", s.Title, s.AcquiredAt, s.Description)
	return nil
}

func (a *App) Notices(ctx context.Context) error {
	n, err := a.reader.Notices(ctx)
	if err != nil {
		return a.fail(ctx, "notices", err)
	}
	b, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return a.fail(ctx, "notices", err)
	}
	fmt.Fprintln(a.out, string(b))
	return nil
}

// lookupCharacter resolves placeholder ids ("char-3") locally and
// everything else through the backend.
func (a *App) lookupCharacter(ctx context.Context, id string) *models.Character {
	if c, ok := models.PlaceholderCharacter(id); ok {
		return &c
	}
	return a.reader.CharacterByID(ctx, id)
}

func (a *App) lookupSettlement(ctx context.Context, id string) *models.Settlement {
	if s, ok := models.PlaceholderSettlement(id); ok {
		return &s
	}
	return a.reader.SettlementByID(ctx, id)
}

func printCharacters(w io.Writer, list []models.Character) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNICKNAME\tNAME\tLEVEL\tJOB\tSERVER")
	for _, c := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n", c.ID, c.Nickname, c.Name, c.Level, c.Job, c.Server)
	}
	_ = tw.Flush()
}

func printSettlements(w io.Writer, list []models.Settlement) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tTITLE")
	for _, s := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.ID, s.AcquiredAt, s.Title)
	}
	_ = tw.Flush()
}
