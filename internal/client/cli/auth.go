package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dpbr/dpbr-client/internal/client/client"
	"github.com/dpbr/dpbr-client/internal/client/oauth"
	"github.com/dpbr/dpbr-client/internal/client/services"
	"github.com/dpbr/dpbr-client/internal/common"
)

// getSimpleText, getTextWithDefault, getSecret and getConfirm are
// indirections used to facilitate testing.
var (
	getSimpleText      = GetSimpleText
	getTextWithDefault = GetTextWithDefault
	getSecret          = GetSecret
	getConfirm         = GetConfirm
)

// Login asks for the name (defaulting to the remembered one) and the
// student id, which is read without echo and wiped afterwards.
func (a *App) Login(ctx context.Context) error {
	name, err := getTextWithDefault(a.in, "Enter name", a.auth.SavedName(ctx), a.out)
	if err != nil {
		return err
	}

	sid, err := getSecret("Enter student ID", a.out)
	if err != nil {
		return err
	}
	defer common.WipeBytes(sid)

	save, err := getConfirm(a.in, "Remember name?", a.out)
	if err != nil {
		return err
	}

	err = a.auth.Login(ctx, services.Credentials{
		Name:      name,
		StudentID: strings.TrimSpace(string(sid)),
		SaveName:  save,
	})
	if err != nil {
		return a.fail(ctx, "login", err)
	}
	return nil
}

// KakaoURL prints the authorize URL. The code Kakao redirects back with is
// passed to "kakao <code>".
func (a *App) KakaoURL(ctx context.Context) error {
	u, _, err := oauth.KakaoAuthURL(a.config)
	if err != nil {
		return a.fail(ctx, "kakao url", err)
	}
	fmt.Fprintln(a.out, "Open this URL and pass the returned code to 'kakao <code>':")
	fmt.Fprintln(a.out, u)
	return nil
}

func (a *App) Kakao(ctx context.Context, code string) error {
	res, err := a.auth.KakaoLogin(ctx, code)
	if err != nil {
		return a.fail(ctx, "kakao login", err)
	}
	if res.IsNewUser {
		fmt.Fprintln(a.out, "No account yet. Run 'signup' to finish registration.")
	}
	return nil
}

// Signup completes a Kakao registration started by "kakao <code>".
func (a *App) Signup(ctx context.Context) error {
	if a.auth.Snapshot().RegisterToken == "" {
		return a.fail(ctx, "signup", common.ErrNoRegisterToken)
	}

	sid, err := getSimpleText(a.in, "Enter student ID", a.out)
	if err != nil {
		return err
	}
	nick, err := getSimpleText(a.in, "Enter nickname", a.out)
	if err != nil {
		return err
	}
	if sid == "" || nick == "" {
		fmt.Fprintln(a.out, "Student ID and nickname are required.")
		return nil
	}

	if err := a.auth.KakaoRegister(ctx, sid, nick); err != nil {
		return a.fail(ctx, "signup", err)
	}
	return nil
}

// Logout always succeeds locally.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	s := a.auth.Snapshot()
	if !s.IsAuthenticated || s.User == nil {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s (student ID %s, user #%d)\n", s.User.Name, s.User.StudentID, s.User.ID)
	return nil
}

// fail logs err and prints a short message. It returns err.
func (a *App) fail(ctx context.Context, op string, err error) error {
	a.log.Error(ctx, op+" failed", "err", err)
	fmt.Fprintln(a.out, "error:", userMessage(err))
	return err
}

func userMessage(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, common.ErrLoginRequired):
		return "please log in first"
	case errors.Is(err, common.ErrNoRegisterToken):
		return "run 'kakao <code>' first"
	}
	return err.Error()
}
