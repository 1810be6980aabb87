package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Login(ctx context.Context) error
	KakaoURL(ctx context.Context) error
	Kakao(ctx context.Context, code string) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Characters(ctx context.Context, sample bool) error
	Character(ctx context.Context, id string) error
	Settlements(ctx context.Context, characterID string) error
	Settlement(ctx context.Context, id string) error
	Comments(ctx context.Context, page, limit int) error
	Comment(ctx context.Context) error
	DeleteComment(ctx context.Context, id string) error
	Notices(ctx context.Context) error
	Export(ctx context.Context, kind, id string) error
}

const (
	helpAnonymous = "Available commands: login, kakao-url, kakao <code>, signup, characters [--sample], character <id>, " +
		"settlements <characterId>, settlement <id>, comments [page] [limit], comment, notices, export <character|settlement> <id>, exit"
	helpSignedIn = "Available commands: whoami, logout, characters [--sample], character <id>, settlements <characterId>, " +
		"settlement <id>, comments [page] [limit], comment, delcomment <id>, notices, export <character|settlement> <id>, exit"
)

// runREPL reads commands from scanner and dispatches them to a until EOF
// or "exit"/"quit". Handler errors are not fatal: handlers report their own
// failures and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("dpbr%s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpAnonymous)
			}

		case "login":
			_ = a.Login(ctx)

		case "kakao-url":
			_ = a.KakaoURL(ctx)

		case "kakao":
			if len(args) == 0 {
				printlnFn("Usage: kakao <code>")
				continue
			}
			_ = a.Kakao(ctx, args[0])

		case "signup":
			_ = a.Signup(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "characters", "c":
			_ = a.Characters(ctx, len(args) > 0 && args[0] == "--sample")

		case "character":
			if len(args) == 0 {
				printlnFn("Usage: character <id>")
				continue
			}
			_ = a.Character(ctx, args[0])

		case "settlements":
			if len(args) == 0 {
				printlnFn("Usage: settlements <characterId>")
				continue
			}
			_ = a.Settlements(ctx, args[0])

		case "settlement":
			if len(args) == 0 {
				printlnFn("Usage: settlement <id>")
				continue
			}
			_ = a.Settlement(ctx, args[0])

		case "comments":
			page, limit, ok := pageArgs(args)
			if !ok {
				printlnFn("Usage: comments [page] [limit]")
				continue
			}
			_ = a.Comments(ctx, page, limit)

		case "comment":
			_ = a.Comment(ctx)

		case "delcomment":
			if len(args) == 0 {
				printlnFn("Usage: delcomment <id>")
				continue
			}
			_ = a.DeleteComment(ctx, args[0])

		case "notices":
			_ = a.Notices(ctx)

		case "export":
			if len(args) < 2 || (args[0] != "character" && args[0] != "settlement") {
				printlnFn("Usage: export <character|settlement> <id>")
				continue
			}
			_ = a.Export(ctx, args[0], args[1])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// pageArgs parses the optional page and limit. Zero means "use the
// default".
func pageArgs(args []string) (page, limit int, ok bool) {
	nums := make([]int, 2)
	for i, s := range args {
		if i >= len(nums) {
			return 0, 0, false
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return 0, 0, false
		}
		nums[i] = n
	}
	return nums[0], nums[1], true
}
