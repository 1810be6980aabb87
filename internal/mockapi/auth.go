package mockapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dpbr/dpbr-client/internal/client/client"
	"github.com/dpbr/dpbr-client/internal/common"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const userKey = "user"

func (s *Server) issueToken(u client.UserDTO) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":        strconv.FormatInt(u.ID, 10),
		"id":         u.ID,
		"name":       u.Name,
		"student_id": u.StudentID,
		"iat":        now.Unix(),
		"exp":        now.Add(s.cfg.TokenTTL).Unix(),
		"jti":        uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.Secret)
}

func (s *Server) parseToken(raw string) (client.UserDTO, error) {
	tok, err := jwt.Parse(raw, func(*jwt.Token) (any, error) { return s.cfg.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return client.UserDTO{}, fmt.Errorf("%w: %w", common.ErrTokenExpired, err)
	}
	if err != nil {
		return client.UserDTO{}, err
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return client.UserDTO{}, common.ErrInvalidToken
	}

	s.mu.Lock()
	_, revoked := s.loggedOut[raw]
	s.mu.Unlock()
	if revoked {
		return client.UserDTO{}, common.ErrInvalidToken
	}

	id, _ := claims["id"].(float64)
	name, _ := claims["name"].(string)
	studentID, _ := claims["student_id"].(string)
	return client.UserDTO{ID: int64(id), Name: name, StudentID: studentID}, nil
}

func bearer(c *gin.Context) string {
	h := c.GetHeader(common.AuthorizationHeaderName)
	if !strings.HasPrefix(h, common.BearerScheme) {
		return ""
	}
	return strings.TrimPrefix(h, common.BearerScheme)
}

// optionalAuth attaches the user when a valid bearer is present and lets
// anonymous requests through.
func (s *Server) optionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := bearer(c); raw != "" {
			if u, err := s.parseToken(raw); err == nil {
				c.Set(userKey, u)
			}
		}
		c.Next()
	}
}

func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearer(c)
		if raw == "" {
			detail(c, http.StatusUnauthorized, "Not authenticated")
			return
		}
		u, err := s.parseToken(raw)
		if err != nil {
			msg := "Could not validate credentials"
			if errors.Is(err, common.ErrTokenExpired) {
				msg = "Token has expired"
			}
			detail(c, http.StatusUnauthorized, msg)
			return
		}
		c.Set(userKey, u)
		c.Next()
	}
}

func currentUser(c *gin.Context) (client.UserDTO, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return client.UserDTO{}, false
	}
	u, ok := v.(client.UserDTO)
	return u, ok
}

// userFor returns the account of studentID, creating it on first use.
func (s *Server) userFor(studentID, name string) client.UserDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.users[studentID]; ok {
		return u
	}
	u := client.UserDTO{ID: s.nextUser, Name: name, StudentID: studentID}
	s.nextUser++
	s.users[studentID] = u
	return u
}

func (s *Server) tokenResponse(c *gin.Context, u client.UserDTO) {
	tok, err := s.issueToken(u)
	if err != nil {
		s.log.Error(c.Request.Context(), "sign token", "err", err)
		detail(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, client.TokenResponse{AccessToken: tok, TokenType: "bearer", User: &u})
}

// login takes the OAuth2 password form: username is the display name and
// password the student id.
func (s *Server) login(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("username"))
	studentID := strings.TrimSpace(c.PostForm("password"))
	if name == "" || studentID == "" {
		detail(c, http.StatusUnauthorized, "Incorrect username or password")
		return
	}

	u := s.userFor(studentID, name)
	if u.Name != name {
		detail(c, http.StatusUnauthorized, "Incorrect username or password")
		return
	}
	s.tokenResponse(c, u)
}

func (s *Server) kakaoLogin(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		detail(c, http.StatusBadRequest, "code is required")
		return
	}

	if strings.HasPrefix(code, "new") {
		rt, err := common.RandomHex(16)
		if err != nil {
			detail(c, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		s.mu.Lock()
		s.pending[rt] = code
		s.mu.Unlock()
		c.JSON(http.StatusOK, client.KakaoLoginResponse{IsNewUser: true, RegisterToken: rt})
		return
	}

	u := s.userFor("kakao:"+code, fmt.Sprintf("kakao-%s", code))
	tok, err := s.issueToken(u)
	if err != nil {
		detail(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, client.KakaoLoginResponse{
		TokenResponse: client.TokenResponse{AccessToken: tok, TokenType: "bearer", User: &u},
	})
}

func (s *Server) kakaoRegister(c *gin.Context) {
	var req client.KakaoRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if req.StudentID == "" || req.Nickname == "" {
		detail(c, http.StatusUnprocessableEntity, "student_id and nickname are required")
		return
	}

	s.mu.Lock()
	_, ok := s.pending[req.RegisterToken]
	delete(s.pending, req.RegisterToken)
	s.mu.Unlock()
	if !ok {
		detail(c, http.StatusBadRequest, "Invalid or expired register token")
		return
	}

	s.tokenResponse(c, s.userFor(req.StudentID, req.Nickname))
}

func (s *Server) logout(c *gin.Context) {
	s.mu.Lock()
	s.loggedOut[bearer(c)] = struct{}{}
	s.mu.Unlock()
	c.Status(http.StatusNoContent)
}

func (s *Server) me(c *gin.Context) {
	u, _ := currentUser(c)
	c.JSON(http.StatusOK, u)
}
