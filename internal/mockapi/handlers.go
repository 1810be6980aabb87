package mockapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dpbr/dpbr-client/internal/client/client"
	"github.com/dpbr/dpbr-client/internal/client/models"
	"github.com/gin-gonic/gin"
)

const maxCommentLimit = 100

func characterDTO(c models.Character) client.CharacterDTO {
	id, _ := models.PlaceholderNumber(c.ID)
	nickname := c.Nickname
	avatar := c.AvatarURL
	return client.CharacterDTO{
		ID:        id,
		Name:      c.Name,
		DetailTxt: &nickname,
		Level:     c.Level,
		Job:       c.Job,
		Server:    c.Server,
		AvatarURL: &avatar,
	}
}

func settlementDTO(st models.Settlement) client.SettlementDTO {
	id, _ := models.PlaceholderNumber(st.ID)
	charID, _ := models.PlaceholderNumber(st.CharacterID)
	desc := st.Description
	img := st.ImageURL
	return client.SettlementDTO{
		ID:          id,
		CharacterID: charID,
		Title:       st.Title,
		Description: &desc,
		ImgURL:      &img,
		AcquiredAt:  st.AcquiredAt,
	}
}

// placeholderID turns a wire id back into the placeholder key.
func placeholderID(prefix, raw string) (string, bool) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return "", false
	}
	return prefix + strconv.FormatInt(n, 10), true
}

func (s *Server) characters(c *gin.Context) {
	chars := models.PlaceholderCharacters()
	out := make([]client.CharacterDTO, 0, len(chars))
	for _, ch := range chars {
		out = append(out, characterDTO(ch))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) character(c *gin.Context) {
	id, ok := placeholderID("char-", c.Param("id"))
	if !ok {
		detail(c, http.StatusUnprocessableEntity, "id must be a positive integer")
		return
	}
	ch, ok := models.PlaceholderCharacter(id)
	if !ok {
		detail(c, http.StatusNotFound, "Character not found")
		return
	}
	c.JSON(http.StatusOK, characterDTO(ch))
}

func (s *Server) characterSettlements(c *gin.Context) {
	id, ok := placeholderID("char-", c.Param("id"))
	if !ok {
		detail(c, http.StatusUnprocessableEntity, "id must be a positive integer")
		return
	}
	if _, ok := models.PlaceholderCharacter(id); !ok {
		detail(c, http.StatusNotFound, "Character not found")
		return
	}

	items := models.PlaceholderSettlements(id)
	out := make([]client.SettlementDTO, 0, len(items))
	for _, st := range items {
		out = append(out, settlementDTO(st))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) settlement(c *gin.Context) {
	id, ok := placeholderID("msg-", c.Param("id"))
	if !ok {
		detail(c, http.StatusUnprocessableEntity, "id must be a positive integer")
		return
	}
	st, ok := models.PlaceholderSettlement(id)
	if !ok {
		detail(c, http.StatusNotFound, "Settlement not found")
		return
	}
	c.JSON(http.StatusOK, settlementDTO(st))
}

func queryInt(c *gin.Context, key string, def int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// listComments pages the guestbook, newest first. is_mine is set only for
// signed-in callers.
func (s *Server) listComments(c *gin.Context) {
	page, ok := queryInt(c, "page", 1)
	if !ok {
		detail(c, http.StatusUnprocessableEntity, "page must be a positive integer")
		return
	}
	limit, ok := queryInt(c, "limit", 20)
	if !ok || limit > maxCommentLimit {
		detail(c, http.StatusUnprocessableEntity, "limit must be between 1 and 100")
		return
	}

	s.mu.Lock()
	all := append([]client.CommentDTO(nil), s.comments...)
	s.mu.Unlock()

	start := (page - 1) * limit
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	out := all[start:end]

	if u, ok := currentUser(c); ok {
		for i := range out {
			mine := out[i].UserID != nil && *out[i].UserID == u.ID
			out[i].IsMine = &mine
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createComment(c *gin.Context) {
	var req client.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		detail(c, http.StatusUnprocessableEntity, "content is required")
		return
	}

	dto := client.CommentDTO{Content: content, CreatedAt: s.now().UTC().Format("2006-01-02T15:04:05Z")}
	if u, ok := currentUser(c); ok {
		id := u.ID
		dto.UserID = &id
		dto.Author = u.Name
		mine := true
		dto.IsMine = &mine
	} else {
		dto.Author = strings.TrimSpace(req.Nickname)
		if dto.Author == "" {
			detail(c, http.StatusUnprocessableEntity, "nickname is required for anonymous comments")
			return
		}
	}

	s.mu.Lock()
	dto.ID = s.nextTalk
	s.nextTalk++
	stored := dto
	stored.IsMine = nil
	s.comments = append([]client.CommentDTO{stored}, s.comments...)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, dto)
}

func (s *Server) deleteComment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		detail(c, http.StatusUnprocessableEntity, "id must be an integer")
		return
	}
	u, _ := currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, cm := range s.comments {
		if cm.ID != id {
			continue
		}
		if cm.UserID == nil || *cm.UserID != u.ID {
			detail(c, http.StatusForbidden, "You can only delete your own comments")
			return
		}
		s.comments = append(s.comments[:i], s.comments[i+1:]...)
		c.Status(http.StatusNoContent)
		return
	}
	detail(c, http.StatusNotFound, "Comment not found")
}

func (s *Server) notices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"notices": []gin.H{
			{"id": 1, "title": "단풍바람 13기 메생결산 오픈", "pinned": true},
		},
		"maintenance": false,
	})
}
