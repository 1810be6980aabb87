package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/dpbr/dpbr-client/internal/client/client"
	"github.com/dpbr/dpbr-client/internal/client/gateway"
	"github.com/dpbr/dpbr-client/internal/client/models"
	"github.com/dpbr/dpbr-client/internal/common"
	"github.com/dpbr/dpbr-client/internal/logging"
)

const (
	DefaultCommentsPage  = 1
	DefaultCommentsLimit = 20

	// commentTimeLayout renders like "26. 01. 22. 23:11".
	commentTimeLayout = "06. 01. 02. 15:04"
)

// ReaderService maps backend shapes onto view models.
//
// List calls return gateway failures unchanged. Get-by-id calls log the
// failure and report "not found" as nil.
type ReaderService interface {
	Characters(ctx context.Context) ([]models.Character, error)
	CharacterByID(ctx context.Context, id string) *models.Character
	SettlementsByCharacter(ctx context.Context, characterID string) ([]models.Settlement, error)
	SettlementByID(ctx context.Context, id string) *models.Settlement
	Comments(ctx context.Context, page, limit int) ([]models.Comment, error)
	CreateComment(ctx context.Context, content, nickname string) (*models.Comment, error)
	DeleteComment(ctx context.Context, id string) error
	Notices(ctx context.Context) (map[string]any, error)
}

type readerService struct {
	client client.Client
	tokens gateway.TokenSource
	log    logging.Logger
	loc    *time.Location
}

// NewReaderService builds a ReaderService. tokens decides whether the
// caller is signed in; loc renders comment timestamps (nil means UTC).
func NewReaderService(c client.Client, tokens gateway.TokenSource, log logging.Logger, loc *time.Location) ReaderService {
	if log == nil {
		log = logging.Discard()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &readerService{client: c, tokens: tokens, log: log.With("component", "reader"), loc: loc}
}

func (r *readerService) Characters(ctx context.Context) ([]models.Character, error) {
	dtos, err := r.client.Characters(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Character, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, MapCharacter(d))
	}
	return out, nil
}

func (r *readerService) CharacterByID(ctx context.Context, id string) *models.Character {
	d, err := r.client.Character(ctx, id)
	if err != nil {
		r.logLookup(ctx, "character", id, err)
		return nil
	}
	c := MapCharacter(*d)
	return &c
}

// logLookup records a failed get-by-id. A plain 404 is routine.
func (r *readerService) logLookup(ctx context.Context, kind, id string, err error) {
	if errors.Is(err, common.ErrNotFound) {
		r.log.Debug(ctx, kind+" not found", "id", id)
		return
	}
	r.log.Warn(ctx, "failed to fetch "+kind, "id", id, "err", err)
}

func (r *readerService) SettlementsByCharacter(ctx context.Context, characterID string) ([]models.Settlement, error) {
	dtos, err := r.client.CharacterSettlements(ctx, characterID)
	if err != nil {
		return nil, err
	}
	out := make([]models.Settlement, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, MapSettlement(d))
	}
	return out, nil
}

func (r *readerService) SettlementByID(ctx context.Context, id string) *models.Settlement {
	d, err := r.client.Settlement(ctx, id)
	if err != nil {
		r.logLookup(ctx, "settlement", id, err)
		return nil
	}
	s := MapSettlement(*d)
	return &s
}

func (r *readerService) Comments(ctx context.Context, page, limit int) ([]models.Comment, error) {
	if page <= 0 {
		page = DefaultCommentsPage
	}
	if limit <= 0 {
		limit = DefaultCommentsLimit
	}

	dtos, err := r.client.Comments(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	out := make([]models.Comment, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, MapComment(d, r.loc))
	}
	return out, nil
}

// CreateComment posts content. nickname is sent only by anonymous authors;
// signed-in authors are named by the backend.
func (r *readerService) CreateComment(ctx context.Context, content, nickname string) (*models.Comment, error) {
	req := client.CreateCommentRequest{Content: content}
	if !r.signedIn(ctx) {
		req.Nickname = nickname
	}

	d, err := r.client.CreateComment(ctx, req)
	if err != nil {
		return nil, err
	}
	c := MapComment(*d, r.loc)
	return &c, nil
}

func (r *readerService) DeleteComment(ctx context.Context, id string) error {
	if !r.signedIn(ctx) {
		return common.ErrLoginRequired
	}
	return r.client.DeleteComment(ctx, id)
}

func (r *readerService) Notices(ctx context.Context) (map[string]any, error) {
	return r.client.Notices(ctx)
}

func (r *readerService) signedIn(ctx context.Context) bool {
	return r.tokens != nil && r.tokens.AccessToken(ctx) != ""
}

// MapCharacter applies the roster display defaults: detail_txt is the
// nickname, missing avatars use the default image.
func MapCharacter(d client.CharacterDTO) models.Character {
	nickname := d.Name
	if d.DetailTxt != nil && *d.DetailTxt != "" {
		nickname = *d.DetailTxt
	}
	return models.Character{
		ID:        strconv.FormatInt(d.ID, 10),
		Name:      d.Name,
		Nickname:  nickname,
		AvatarURL: orDefault(d.AvatarURL, common.DefaultAvatarPath),
		Level:     d.Level,
		Job:       d.Job,
		Club:      common.ClubName,
		Server:    d.Server,
	}
}

func MapSettlement(d client.SettlementDTO) models.Settlement {
	return models.Settlement{
		ID:          strconv.FormatInt(d.ID, 10),
		CharacterID: strconv.FormatInt(d.CharacterID, 10),
		Title:       d.Title,
		Description: orDefault(d.Description, ""),
		ImageURL:    orDefault(d.ImgURL, common.DefaultAvatarPath),
		AcquiredAt:  d.AcquiredAt,
	}
}

func MapComment(d client.CommentDTO, loc *time.Location) models.Comment {
	return models.Comment{
		ID:           strconv.FormatInt(d.ID, 10),
		UserID:       d.UserID,
		Author:       d.Author,
		AuthorAvatar: common.DefaultAvatarPath,
		Content:      d.Content,
		CreatedAt:    FormatCommentTime(d.CreatedAt, loc),
		IsMine:       d.IsMine != nil && *d.IsMine,
	}
}

// naiveLayouts carry no offset; they are read as wall time in the display
// zone.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
}

// FormatCommentTime renders an ISO timestamp as "yy. MM. dd. HH:mm" in loc.
// Unparseable input is returned as is.
func FormatCommentTime(raw string, loc *time.Location) string {
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.In(loc).Format(commentTimeLayout)
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t.Format(commentTimeLayout)
		}
	}
	return raw
}

func orDefault(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}
