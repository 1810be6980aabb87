package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dpbr/dpbr-client/internal/client/models"
)

var getMultiline = GetMultiline

func (a *App) Comments(ctx context.Context, page, limit int) error {
	list, err := a.reader.Comments(ctx, page, limit)
	if err != nil {
		return a.fail(ctx, "comments", err)
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No comments.")
		return nil
	}
	for _, c := range list {
		printComment(a.out, c)
	}
	return nil
}

// Comment posts to the guestbook. Anonymous authors are asked for a
// nickname.
func (a *App) Comment(ctx context.Context) error {
	content, err := getMultiline(a.in, "Enter comment", a.out)
	if err != nil {
		return err
	}
	if content == "" {
		fmt.Fprintln(a.out, "Empty comment, nothing posted.")
		return nil
	}

	var nickname string
	if !a.isLoggedIn() {
		nickname, err = getSimpleText(a.in, "Enter nickname", a.out)
		if err != nil {
			return err
		}
	}

	c, err := a.reader.CreateComment(ctx, content, nickname)
	if err != nil {
		return a.fail(ctx, "comment", err)
	}
	printComment(a.out, *c)
	return nil
}

func (a *App) DeleteComment(ctx context.Context, id string) error {
	if err := a.reader.DeleteComment(ctx, id); err != nil {
		return a.fail(ctx, "delete comment", err)
	}
	fmt.Fprintf(a.out, "Comment %s deleted.\n", id)
	return nil
}

func printComment(w io.Writer, c models.Comment) {
	mine := ""
	if c.IsMine {
		mine = " *"
	}
	fmt.Fprintf(w, "#%s %s%s  %s\n", c.ID, c.Author, mine, c.CreatedAt)
	for _, line := range strings.Split(c.Content, "\n") {
		fmt.Fprintf(w, "    %s\n", line)
	}
}
