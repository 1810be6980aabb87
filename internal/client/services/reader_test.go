package services

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dpbr/dpbr-client/internal/client/client"
	"github.com/dpbr/dpbr-client/internal/client/models"
	"github.com/dpbr/dpbr-client/internal/common"
	"github.com/dpbr/dpbr-client/internal/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedTokens string

func (f fixedTokens) AccessToken(context.Context) string { return string(f) }

func strPtr(s string) *string { return &s }

var seoul = time.FixedZone("KST", 9*60*60)

func TestMapCharacter(t *testing.T) {
	got := MapCharacter(client.CharacterDTO{ID: 1, Name: "A", Level: 10, Job: "X", Server: "S"})
	assert.Empty(t, cmp.Diff(models.Character{
		ID: "1", Name: "A", Nickname: "A", AvatarURL: "/default-avatar.png",
		Level: 10, Job: "X", Club: "단풍바람", Server: "S",
	}, got))

	got = MapCharacter(client.CharacterDTO{ID: 2, Name: "B", DetailTxt: strPtr("비"), AvatarURL: strPtr("https://img/b.png")})
	assert.Equal(t, "비", got.Nickname)
	assert.Equal(t, "https://img/b.png", got.AvatarURL)

	got = MapCharacter(client.CharacterDTO{ID: 3, Name: "C", DetailTxt: strPtr(""), AvatarURL: strPtr("")})
	assert.Equal(t, "C", got.Nickname)
	assert.Equal(t, "/default-avatar.png", got.AvatarURL)
}

func TestMapSettlement(t *testing.T) {
	got := MapSettlement(client.SettlementDTO{ID: 4, CharacterID: 1, Title: "t", AcquiredAt: "2026-08-30"})
	assert.Empty(t, cmp.Diff(models.Settlement{
		ID: "4", CharacterID: "1", Title: "t", Description: "", ImageURL: "/default-avatar.png", AcquiredAt: "2026-08-30",
	}, got))
}

func TestFormatCommentTime(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2026-01-22T14:11:00Z", "26. 01. 22. 23:11"},
		{"2026-01-22T23:11:00+09:00", "26. 01. 22. 23:11"},
		{"2026-01-22T23:11:00.123456", "26. 01. 22. 23:11"},
		{"2026-01-22 23:11:00", "26. 01. 22. 23:11"},
		{"yesterday", "yesterday"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCommentTime(tt.in, seoul), tt.in)
	}
}

func TestMapComment(t *testing.T) {
	uid := int64(101)
	mine := true
	got := MapComment(client.CommentDTO{ID: 1, UserID: &uid, Author: "단풍사랑", Content: "hi", CreatedAt: "2026-01-22T14:11:00Z", IsMine: &mine}, seoul)
	assert.Equal(t, "1", got.ID)
	assert.Equal(t, &uid, got.UserID)
	assert.Equal(t, "/default-avatar.png", got.AuthorAvatar)
	assert.Equal(t, "26. 01. 22. 23:11", got.CreatedAt)
	assert.True(t, got.IsMine)

	got = MapComment(client.CommentDTO{ID: 2}, seoul)
	assert.False(t, got.IsMine)
	assert.Nil(t, got.UserID)
}

func TestReader_ListErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	r := NewReaderService(&fakeClient{CharactersErr: boom, CommentsErr: boom}, nil, logging.Discard(), seoul)

	_, err := r.Characters(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = r.Comments(context.Background(), 1, 20)
	assert.ErrorIs(t, err, boom)
}

func TestReader_GetByIDFailureIsNotFound(t *testing.T) {
	fc := &fakeClient{
		CharacterErr:  &client.APIError{Status: 404, Message: "API Error: 404 Not Found"},
		SettlementErr: &client.APIError{Message: "request timed out, please try again"},
	}
	r := NewReaderService(fc, nil, logging.Discard(), seoul)

	assert.Nil(t, r.CharacterByID(context.Background(), "1"))
	assert.Nil(t, r.SettlementByID(context.Background(), "1"))

	fc.CharacterErr = nil
	fc.CharacterResp = &client.CharacterDTO{ID: 1, Name: "A"}
	c := r.CharacterByID(context.Background(), "1")
	require.NotNil(t, c)
	assert.Equal(t, "A", c.Nickname)
}

func TestReader_LookupLogLevel(t *testing.T) {
	var buf bytes.Buffer
	fc := &fakeClient{
		CharacterErr:  &client.APIError{Status: 404, Message: "API Error: 404 Not Found"},
		SettlementErr: &client.APIError{Status: 500, Message: "API Error: 500 Internal Server Error"},
	}
	r := NewReaderService(fc, nil, logging.NewTextSlogLogger(&buf, "debug"), seoul)

	assert.Nil(t, r.CharacterByID(context.Background(), "7"))
	assert.Contains(t, buf.String(), "level=DEBUG msg=\"character not found\"")

	buf.Reset()
	assert.Nil(t, r.SettlementByID(context.Background(), "7"))
	assert.Contains(t, buf.String(), "level=WARN msg=\"failed to fetch settlement\"")
}

func TestReader_CommentsDefaults(t *testing.T) {
	fc := &fakeClient{CommentsResp: []client.CommentDTO{{ID: 1}}}
	r := NewReaderService(fc, nil, nil, nil)

	list, err := r.Comments(context.Background(), 0, -1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, DefaultCommentsPage, fc.LastPage)
	assert.Equal(t, DefaultCommentsLimit, fc.LastLimit)
}

func TestReader_CreateCommentNickname(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{CreateResp: &client.CommentDTO{ID: 5, Author: "손님"}}

	_, err := NewReaderService(fc, fixedTokens(""), nil, seoul).CreateComment(ctx, "hello", "손님")
	require.NoError(t, err)
	assert.Equal(t, client.CreateCommentRequest{Content: "hello", Nickname: "손님"}, fc.LastCreateReq)

	created, err := NewReaderService(fc, fixedTokens("tok"), nil, seoul).CreateComment(ctx, "hello", "손님")
	require.NoError(t, err)
	assert.Equal(t, client.CreateCommentRequest{Content: "hello"}, fc.LastCreateReq)
	assert.Equal(t, "5", created.ID)
}

func TestReader_DeleteCommentRequiresLogin(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{}

	err := NewReaderService(fc, fixedTokens(""), nil, seoul).DeleteComment(ctx, "5")
	assert.ErrorIs(t, err, common.ErrLoginRequired)
	assert.Empty(t, fc.LastDeletedID)

	require.NoError(t, NewReaderService(fc, fixedTokens("tok"), nil, seoul).DeleteComment(ctx, "5"))
	assert.Equal(t, "5", fc.LastDeletedID)
}

func TestReader_Notices(t *testing.T) {
	fc := &fakeClient{NoticesResp: map[string]any{"banner": "hi"}}
	n, err := NewReaderService(fc, nil, nil, nil).Notices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hi", n["banner"])
}
