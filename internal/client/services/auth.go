// Package services contains application services for the dpbr client.
// This file defines the auth session store: login (name/student id and the
// Kakao handshake), signup, verification of a stored session, logout, and
// an observer list delivering every session change.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dpbr/dpbr-client/internal/client/client"
	"github.com/dpbr/dpbr-client/internal/client/models"
	"github.com/dpbr/dpbr-client/internal/client/storage"
	"github.com/dpbr/dpbr-client/internal/client/token"
	"github.com/dpbr/dpbr-client/internal/common"
	"github.com/dpbr/dpbr-client/internal/logging"
)

// ErrNoToken is returned when a login or signup response carries no token.
var ErrNoToken = errors.New("response carries no access token")

// Credentials is the name/student-id login form.
type Credentials struct {
	Name      string
	StudentID string
	// SaveName remembers Name for the next login form.
	SaveName bool
}

// KakaoResult tells the caller whether signup must follow.
type KakaoResult struct {
	IsNewUser     bool
	RegisterToken string
	User          *models.User
}

// AuthService is the observable auth session.
//
// Contract:
//   - Subscribe: the callback receives the current session at once and
//     then every change, until the returned function is called.
//   - Login, KakaoLogin, KakaoRegister: on success token and user are
//     stored together; on failure nothing is stored and the error is
//     returned.
//   - CheckAuth: reconcile the stored session with the backend at start-up.
//   - Logout: never fails; local state is cleared even when the backend
//     call does not go through.
//
// Two concurrent logins are not serialized: the last one to finish wins.
// Callers are expected to hold back while Snapshot().IsLoading is set.
type AuthService interface {
	Subscribe(fn func(models.Session)) (unsubscribe func())
	Snapshot() models.Session

	Login(ctx context.Context, cred Credentials) error
	KakaoLogin(ctx context.Context, code string) (KakaoResult, error)
	KakaoRegister(ctx context.Context, studentID, nickname string) error
	CheckAuth(ctx context.Context)
	Logout(ctx context.Context)

	SetRegisterToken(ctx context.Context, registerToken string)
	SavedName(ctx context.Context) string
	SaveName(ctx context.Context, name string)

	// AccessToken makes the service a gateway.TokenSource.
	AccessToken(ctx context.Context) string
}

type AuthOption func(*authService)

// WithDebugToken trusts tok together with a cached user without asking the
// backend. An empty tok disables the bypass. The expiry check is skipped
// for tok on purpose; a diagnostic token need not be a decodable JWT.
func WithDebugToken(tok string) AuthOption {
	return func(a *authService) { a.debugToken = tok }
}

// WithAuthClock replaces time.Now for token expiry checks.
func WithAuthClock(now func() time.Time) AuthOption {
	return func(a *authService) {
		a.now = now
		a.tokens.now = now
	}
}

type authService struct {
	client client.Client
	store  storage.Storage
	tokens *StoredToken
	log    logging.Logger

	debugToken string
	now        func() time.Time

	mu     sync.Mutex
	state  models.Session
	subs   map[int]func(models.Session)
	nextID int
}

// NewAuthService rebuilds the session from storage. Nothing is verified
// until CheckAuth runs.
func NewAuthService(c client.Client, st storage.Storage, log logging.Logger, opts ...AuthOption) AuthService {
	if log == nil {
		log = logging.Discard()
	}
	a := &authService{
		client: c,
		store:  st,
		tokens: NewStoredToken(st),
		log:    log.With("component", "auth"),
		now:    time.Now,
		subs:   make(map[int]func(models.Session)),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.state = a.loadInitial(context.Background())
	return a
}

func (a *authService) loadInitial(ctx context.Context) models.Session {
	tok, _ := a.store.Get(ctx, storage.SlotToken)
	user := a.cachedUser(ctx)
	rt, _ := a.store.Get(ctx, storage.SlotRegisterToken)

	return models.Session{
		IsAuthenticated: tok != "" && user != nil,
		User:            user,
		RegisterToken:   rt,
	}
}

// cachedUser decodes the auth_user slot. Garbage counts as absent.
func (a *authService) cachedUser(ctx context.Context) *models.User {
	raw, ok := a.store.Get(ctx, storage.SlotUser)
	if !ok || raw == "" {
		return nil
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		a.log.Warn(ctx, "cached user is unreadable", "err", err)
		return nil
	}
	return &u
}

func (a *authService) Subscribe(fn func(models.Session)) func() {
	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.subs[id] = fn
	current := copySession(a.state)
	a.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			a.mu.Lock()
			delete(a.subs, id)
			a.mu.Unlock()
		})
	}
}

func (a *authService) Snapshot() models.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return copySession(a.state)
}

// update mutates the state under the lock and notifies subscribers outside
// of it.
func (a *authService) update(mutate func(*models.Session)) {
	a.mu.Lock()
	mutate(&a.state)
	snapshot := copySession(a.state)
	subs := make([]func(models.Session), 0, len(a.subs))
	for _, fn := range a.subs {
		subs = append(subs, fn)
	}
	a.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

func (a *authService) setLoading(loading bool) {
	a.update(func(s *models.Session) { s.IsLoading = loading })
}

// setAuthData stores token, user and register token as one unit and
// publishes the matching session. Empty values remove their slot. extra is
// merged into the same write.
func (a *authService) setAuthData(ctx context.Context, tok string, user *models.User, registerToken string, extra map[storage.Slot]string) {
	changes := storage.Changes{Set: map[storage.Slot]string{}}
	for k, v := range extra {
		changes.Set[k] = v
	}

	if tok != "" {
		changes.Set[storage.SlotToken] = tok
	} else {
		changes.Remove = append(changes.Remove, storage.SlotToken)
	}

	if user != nil {
		b, err := json.Marshal(user)
		if err != nil {
			a.log.Error(ctx, "failed to encode user", "err", err)
			user = nil
			changes.Remove = append(changes.Remove, storage.SlotUser)
		} else {
			changes.Set[storage.SlotUser] = string(b)
		}
	} else {
		changes.Remove = append(changes.Remove, storage.SlotUser)
	}

	if registerToken != "" {
		changes.Set[storage.SlotRegisterToken] = registerToken
	} else {
		changes.Remove = append(changes.Remove, storage.SlotRegisterToken)
	}

	a.store.Update(ctx, changes)

	a.update(func(s *models.Session) {
		*s = models.Session{
			IsAuthenticated: tok != "" && user != nil,
			User:            user,
			RegisterToken:   registerToken,
		}
	})
}

func (a *authService) Login(ctx context.Context, cred Credentials) error {
	a.setLoading(true)

	resp, err := a.client.Login(ctx, cred.Name, cred.StudentID)
	if err != nil {
		a.setLoading(false)
		return fmt.Errorf("login: %w", err)
	}

	tok := resp.Bearer()
	if tok == "" {
		a.setLoading(false)
		return fmt.Errorf("login: %w", ErrNoToken)
	}

	user := a.userFrom(resp.User, tok, cred.Name, cred.StudentID)

	var extra map[storage.Slot]string
	if cred.SaveName {
		extra = map[storage.Slot]string{storage.SlotSavedName: user.Name}
	}
	a.setAuthData(ctx, tok, &user, "", extra)

	a.log.Info(ctx, "logged in", "user_id", user.ID)
	return nil
}

// userFrom prefers the user in the response and falls back on token claims.
func (a *authService) userFrom(dto *client.UserDTO, tok, fallbackName, fallbackStudentID string) models.User {
	if dto != nil {
		u := dto.ToModel()
		if u.Name == "" {
			u.Name = fallbackName
		}
		if u.StudentID == "" {
			u.StudentID = fallbackStudentID
		}
		return u
	}
	return token.ToUser(tok, fallbackName, fallbackStudentID)
}

func (a *authService) KakaoLogin(ctx context.Context, code string) (KakaoResult, error) {
	a.setLoading(true)

	resp, err := a.client.KakaoLogin(ctx, code)
	if err != nil {
		a.setLoading(false)
		return KakaoResult{}, fmt.Errorf("kakao login: %w", err)
	}

	if resp.IsNewUser {
		if resp.RegisterToken == "" {
			a.setLoading(false)
			return KakaoResult{}, fmt.Errorf("kakao login: %w", common.ErrNoRegisterToken)
		}
		a.SetRegisterToken(ctx, resp.RegisterToken)
		return KakaoResult{IsNewUser: true, RegisterToken: resp.RegisterToken}, nil
	}

	tok := resp.Bearer()
	if tok == "" {
		a.setLoading(false)
		return KakaoResult{}, fmt.Errorf("kakao login: %w", ErrNoToken)
	}

	user := a.userFrom(resp.User, tok, "", "")
	a.setAuthData(ctx, tok, &user, "", nil)
	return KakaoResult{User: &user}, nil
}

func (a *authService) KakaoRegister(ctx context.Context, studentID, nickname string) error {
	rt := a.Snapshot().RegisterToken
	if rt == "" {
		rt, _ = a.store.Get(ctx, storage.SlotRegisterToken)
	}
	if rt == "" {
		return common.ErrNoRegisterToken
	}

	a.setLoading(true)

	resp, err := a.client.KakaoRegister(ctx, client.KakaoRegisterRequest{
		RegisterToken: rt,
		StudentID:     studentID,
		Nickname:      nickname,
	})
	if err != nil {
		a.setLoading(false)
		return fmt.Errorf("kakao register: %w", err)
	}

	tok := resp.Bearer()
	if tok == "" {
		a.setLoading(false)
		return fmt.Errorf("kakao register: %w", ErrNoToken)
	}

	user := a.userFrom(resp.User, tok, nickname, studentID)
	a.setAuthData(ctx, tok, &user, "", nil)

	a.log.Info(ctx, "signed up", "user_id", user.ID)
	return nil
}

func (a *authService) CheckAuth(ctx context.Context) {
	tok, _ := a.store.Get(ctx, storage.SlotToken)
	if tok == "" {
		a.setAuthData(ctx, "", nil, "", nil)
		return
	}

	if a.debugToken != "" && tok == a.debugToken {
		if user := a.cachedUser(ctx); user != nil {
			a.log.Debug(ctx, "debug token accepted without verification")
			a.setAuthData(ctx, tok, user, "", nil)
			return
		}
	}

	if !token.Usable(tok, a.now()) {
		a.log.Info(ctx, "stored token expired or unreadable, signing out")
		a.clearLocal(ctx)
		return
	}

	a.setLoading(true)

	dto, err := a.client.Me(ctx)
	if err != nil {
		a.log.Warn(ctx, "session verification failed", "err", err)
		a.Logout(ctx)
		return
	}

	user := dto.ToModel()
	a.setAuthData(ctx, tok, &user, "", nil)
}

func (a *authService) Logout(ctx context.Context) {
	if err := a.client.Logout(ctx); err != nil {
		a.log.Warn(ctx, "remote logout failed, clearing local session anyway", "err", err)
	}
	a.clearLocal(ctx)
}

func (a *authService) clearLocal(ctx context.Context) {
	a.store.Update(ctx, storage.Changes{Remove: storage.AllSlots})
	a.update(func(s *models.Session) { *s = models.Anonymous() })
}

func (a *authService) SetRegisterToken(ctx context.Context, registerToken string) {
	if registerToken != "" {
		a.store.Set(ctx, storage.SlotRegisterToken, registerToken)
	} else {
		a.store.Remove(ctx, storage.SlotRegisterToken)
	}
	a.update(func(s *models.Session) {
		s.RegisterToken = registerToken
		s.IsLoading = false
	})
}

func (a *authService) SavedName(ctx context.Context) string {
	name, _ := a.store.Get(ctx, storage.SlotSavedName)
	return name
}

func (a *authService) SaveName(ctx context.Context, name string) {
	a.store.Set(ctx, storage.SlotSavedName, name)
}

func (a *authService) AccessToken(ctx context.Context) string {
	return a.tokens.AccessToken(ctx)
}

func copySession(s models.Session) models.Session {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}
