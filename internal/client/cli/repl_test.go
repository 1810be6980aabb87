package cli

import (
	"bufio"
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) record(s string) error { f.calls = append(f.calls, s); return nil }

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) KakaoURL(ctx context.Context) error           { return f.record("kakao-url") }
func (f *fakeExec) Kakao(ctx context.Context, code string) error { return f.record("kakao " + code) }
func (f *fakeExec) Signup(ctx context.Context) error             { return f.record("signup") }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) WhoAmI(ctx context.Context) error { return f.record("whoami") }
func (f *fakeExec) Characters(ctx context.Context, sample bool) error {
	if sample {
		return f.record("characters sample")
	}
	return f.record("characters")
}
func (f *fakeExec) Character(ctx context.Context, id string) error {
	return f.record("character " + id)
}
func (f *fakeExec) Settlements(ctx context.Context, id string) error {
	return f.record("settlements " + id)
}
func (f *fakeExec) Settlement(ctx context.Context, id string) error {
	return f.record("settlement " + id)
}
func (f *fakeExec) Comments(ctx context.Context, page, limit int) error {
	return f.record("comments " + strconv.Itoa(page) + " " + strconv.Itoa(limit))
}
func (f *fakeExec) Comment(ctx context.Context) error { return f.record("comment") }
func (f *fakeExec) DeleteComment(ctx context.Context, id string) error {
	return f.record("delcomment " + id)
}
func (f *fakeExec) Notices(ctx context.Context) error { return f.record("notices") }
func (f *fakeExec) Export(ctx context.Context, kind, id string) error {
	return f.record("export " + kind + " " + id)
}

func silence(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		printed = append(printed, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &printed
}

func TestRunREPL_Dispatch(t *testing.T) {
	silence(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"whoami",
		"characters",
		"characters --sample",
		"character 7",
		"settlements char-1",
		"settlement 3",
		"comments",
		"comments 2 5",
		"comment",
		"delcomment 9",
		"notices",
		"export settlement msg-1",
		"kakao-url",
		"kakao abc",
		"signup",
		"logout",
		"exit",
		"whoami",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	assert.Equal(t, []string{
		"login",
		"whoami",
		"characters",
		"characters sample",
		"character 7",
		"settlements char-1",
		"settlement 3",
		"comments 0 0",
		"comments 2 5",
		"comment",
		"delcomment 9",
		"notices",
		"export settlement msg-1",
		"kakao-url",
		"kakao abc",
		"signup",
		"logout",
	}, exec.calls)
}

func TestRunREPL_UsageMessages(t *testing.T) {
	printed := silence(t)

	input := strings.NewReader("character\nsettlements\nsettlement\nkakao\ndelcomment\nexport\nexport avatar 1\ncomments x\ncomments 1 2 3\nfoobar\nquit\n")
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "(a)" }, bufio.NewScanner(input))

	assert.Empty(t, exec.calls)

	out := strings.Join(*printed, "\n")
	assert.Contains(t, out, "Usage: character <id>")
	assert.Contains(t, out, "Usage: settlements <characterId>")
	assert.Contains(t, out, "Usage: kakao <code>")
	assert.Contains(t, out, "Usage: export <character|settlement> <id>")
	assert.Contains(t, out, "Usage: comments [page] [limit]")
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Contains(t, out, "dpbr(a)> ")
	assert.Contains(t, out, "Bye!")
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	printed := silence(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "" }, bufio.NewScanner(strings.NewReader("help\n")))
	assert.Contains(t, *printed, helpAnonymous)

	*printed = nil
	runREPL(context.Background(), &fakeExec{loggedIn: true}, func() string { return "" }, bufio.NewScanner(strings.NewReader("help\n")))
	assert.Contains(t, *printed, helpSignedIn)
}

func TestPageArgs(t *testing.T) {
	tests := []struct {
		args        []string
		page, limit int
		ok          bool
	}{
		{nil, 0, 0, true},
		{[]string{"3"}, 3, 0, true},
		{[]string{"3", "10"}, 3, 10, true},
		{[]string{"0"}, 0, 0, false},
		{[]string{"a"}, 0, 0, false},
		{[]string{"1", "2", "3"}, 0, 0, false},
	}
	for _, tt := range tests {
		page, limit, ok := pageArgs(tt.args)
		assert.Equal(t, tt.ok, ok, "%v", tt.args)
		assert.Equal(t, tt.page, page, "%v", tt.args)
		assert.Equal(t, tt.limit, limit, "%v", tt.args)
	}
}
