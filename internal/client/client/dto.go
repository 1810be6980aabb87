package client

import "github.com/dpbr/dpbr-client/internal/client/models"

// UserDTO is the backend user. Older revisions send nickname instead of name.
type UserDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Nickname  string `json:"nickname,omitempty"`
	StudentID string `json:"student_id"`
}

func (u UserDTO) ToModel() models.User {
	name := u.Name
	if name == "" {
		name = u.Nickname
	}
	return models.User{ID: u.ID, Name: name, StudentID: u.StudentID}
}

// TokenResponse is returned by login and signup. Older revisions call the
// token field "token"; user is optional.
type TokenResponse struct {
	AccessToken string   `json:"access_token,omitempty"`
	Token       string   `json:"token,omitempty"`
	TokenType   string   `json:"token_type,omitempty"`
	User        *UserDTO `json:"user,omitempty"`
}

// Bearer returns whichever token field is populated.
func (t TokenResponse) Bearer() string {
	if t.AccessToken != "" {
		return t.AccessToken
	}
	return t.Token
}

// KakaoLoginResponse either asks for signup (IsNewUser with a
// RegisterToken) or carries a regular token response.
type KakaoLoginResponse struct {
	IsNewUser     bool   `json:"is_new_user"`
	RegisterToken string `json:"register_token,omitempty"`
	TokenResponse
}

type KakaoRegisterRequest struct {
	RegisterToken string `json:"register_token"`
	StudentID     string `json:"student_id"`
	Nickname      string `json:"nickname"`
}

// meResponse accepts both a bare user and {"user": {...}}.
type meResponse struct {
	UserDTO
	User *UserDTO `json:"user,omitempty"`
}

type CharacterDTO struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	DetailTxt *string `json:"detail_txt"`
	Level     int     `json:"level"`
	Job       string  `json:"job"`
	Server    string  `json:"server"`
	AvatarURL *string `json:"avatar_url"`
}

type SettlementDTO struct {
	ID          int64   `json:"id"`
	CharacterID int64   `json:"character_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	ImgURL      *string `json:"img_url"`
	AcquiredAt  string  `json:"acquired_at"`
}

type CommentDTO struct {
	ID        int64  `json:"id"`
	UserID    *int64 `json:"user_id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	IsMine    *bool  `json:"is_mine,omitempty"`
}

// CreateCommentRequest omits nickname for signed-in authors.
type CreateCommentRequest struct {
	Content  string `json:"content"`
	Nickname string `json:"nickname,omitempty"`
}
