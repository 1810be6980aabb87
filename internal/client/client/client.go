package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dpbr/dpbr-client/internal/client/gateway"
)

type Client interface {
	Login(ctx context.Context, username, password string) (*TokenResponse, error)
	KakaoLogin(ctx context.Context, code string) (*KakaoLoginResponse, error)
	KakaoRegister(ctx context.Context, req KakaoRegisterRequest) (*TokenResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*UserDTO, error)

	Characters(ctx context.Context) ([]CharacterDTO, error)
	Character(ctx context.Context, id string) (*CharacterDTO, error)
	CharacterSettlements(ctx context.Context, characterID string) ([]SettlementDTO, error)
	Settlement(ctx context.Context, id string) (*SettlementDTO, error)

	Comments(ctx context.Context, page, limit int) ([]CommentDTO, error)
	CreateComment(ctx context.Context, req CreateCommentRequest) (*CommentDTO, error)
	DeleteComment(ctx context.Context, id string) error

	Notices(ctx context.Context) (map[string]any, error)
}

// HTTPClient implements Client over a gateway.
type HTTPClient struct {
	gw *gateway.Gateway
}

func NewHTTPClient(gw *gateway.Gateway) *HTTPClient {
	return &HTTPClient{gw: gw}
}

var _ Client = (*HTTPClient)(nil)

func call[T any](ctx context.Context, gw *gateway.Gateway, req gateway.Request) (*T, error) {
	resp := gateway.Call[T](ctx, gw, req)
	if !resp.Success {
		return nil, &APIError{Status: resp.Status, Message: resp.Message}
	}
	return resp.Data, nil
}

// callOne is call for endpoints whose success must carry a body.
func callOne[T any](ctx context.Context, gw *gateway.Gateway, req gateway.Request, what string) (*T, error) {
	v, err := call[T](ctx, gw, req)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("%s: %w", what, ErrEmptyResponse)
	}
	return v, nil
}

// callList treats an empty body as an empty list.
func callList[T any](ctx context.Context, gw *gateway.Gateway, req gateway.Request) ([]T, error) {
	v, err := call[[]T](ctx, gw, req)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return []T{}, nil
	}
	return *v, nil
}

// Login posts the form-encoded credentials. The backend reads the display
// name as username and the student id as password.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	return callOne[TokenResponse](ctx, c.gw, gateway.Request{
		Method:    http.MethodPost,
		Endpoint:  "/users/login",
		Form:      url.Values{"username": {username}, "password": {password}},
		Anonymous: true,
	}, "login")
}

func (c *HTTPClient) KakaoLogin(ctx context.Context, code string) (*KakaoLoginResponse, error) {
	return callOne[KakaoLoginResponse](ctx, c.gw, gateway.Request{
		Method:    http.MethodPost,
		Endpoint:  "/users/auth/kakao/login",
		Query:     url.Values{"code": {code}},
		Anonymous: true,
	}, "kakao login")
}

func (c *HTTPClient) KakaoRegister(ctx context.Context, req KakaoRegisterRequest) (*TokenResponse, error) {
	return callOne[TokenResponse](ctx, c.gw, gateway.Request{
		Method:    http.MethodPost,
		Endpoint:  "/users/auth/kakao/register",
		Body:      req,
		Anonymous: true,
	}, "kakao register")
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	_, err := call[json.RawMessage](ctx, c.gw, gateway.Request{Method: http.MethodPost, Endpoint: "/users/logout"})
	return err
}

func (c *HTTPClient) Me(ctx context.Context) (*UserDTO, error) {
	me, err := callOne[meResponse](ctx, c.gw, gateway.Request{Endpoint: "/users/me"}, "me")
	if err != nil {
		return nil, err
	}
	if me.User != nil {
		return me.User, nil
	}
	return &me.UserDTO, nil
}

func (c *HTTPClient) Characters(ctx context.Context) ([]CharacterDTO, error) {
	return callList[CharacterDTO](ctx, c.gw, gateway.Request{Endpoint: "/characters"})
}

func (c *HTTPClient) Character(ctx context.Context, id string) (*CharacterDTO, error) {
	return callOne[CharacterDTO](ctx, c.gw, gateway.Request{
		Endpoint: "/characters/" + url.PathEscape(id),
	}, "character "+id)
}

func (c *HTTPClient) CharacterSettlements(ctx context.Context, characterID string) ([]SettlementDTO, error) {
	return callList[SettlementDTO](ctx, c.gw, gateway.Request{
		Endpoint: "/characters/" + url.PathEscape(characterID) + "/settlements",
	})
}

func (c *HTTPClient) Settlement(ctx context.Context, id string) (*SettlementDTO, error) {
	return callOne[SettlementDTO](ctx, c.gw, gateway.Request{
		Endpoint: "/settlements/" + url.PathEscape(id),
	}, "settlement "+id)
}

func (c *HTTPClient) Comments(ctx context.Context, page, limit int) ([]CommentDTO, error) {
	return callList[CommentDTO](ctx, c.gw, gateway.Request{
		Endpoint: "/comments",
		Query: url.Values{
			"page":  {strconv.Itoa(page)},
			"limit": {strconv.Itoa(limit)},
		},
	})
}

func (c *HTTPClient) CreateComment(ctx context.Context, req CreateCommentRequest) (*CommentDTO, error) {
	return callOne[CommentDTO](ctx, c.gw, gateway.Request{
		Method:   http.MethodPost,
		Endpoint: "/comments",
		Body:     req,
	}, "create comment")
}

func (c *HTTPClient) DeleteComment(ctx context.Context, id string) error {
	_, err := call[json.RawMessage](ctx, c.gw, gateway.Request{
		Method:   http.MethodDelete,
		Endpoint: "/comments/" + url.PathEscape(id),
	})
	return err
}

func (c *HTTPClient) Notices(ctx context.Context) (map[string]any, error) {
	n, err := call[map[string]any](ctx, c.gw, gateway.Request{Endpoint: "/system/notices"})
	if err != nil {
		return nil, err
	}
	if n == nil {
		return map[string]any{}, nil
	}
	return *n, nil
}
