// Package token decodes bearer tokens on the client side.
//
// Nothing here verifies a signature: the backend is the authority and the
// client only reads the payload to decide whether a stored token is still
// worth sending and to fill in user details the login response left out.
package token

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dpbr/dpbr-client/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
)

var parser = jwt.NewParser(jwt.WithPaddingAllowed())

// Decode returns the payload claims of raw. The header and signature are
// ignored. ok is false for anything that is not three dot-separated
// segments with a base64url JSON object in the middle.
func Decode(raw string) (claims jwt.MapClaims, ok bool) {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return nil, false
	}

	payload, err := parser.DecodeSegment(parts[1])
	if err != nil {
		return nil, false
	}

	if err := json.Unmarshal(payload, &claims); err != nil || claims == nil {
		return nil, false
	}
	return claims, true
}

// IsExpired reports whether raw carries an exp claim earlier than now.
// A token without exp never expires. An undecodable token counts as expired.
func IsExpired(raw string, now time.Time) bool {
	claims, ok := Decode(raw)
	if !ok {
		return true
	}
	return expired(claims, now)
}

// Usable reports whether raw decodes and has not expired.
func Usable(raw string, now time.Time) bool {
	claims, ok := Decode(raw)
	return ok && !expired(claims, now)
}

// expired compares in milliseconds; exp may carry a fraction of a second.
func expired(claims jwt.MapClaims, now time.Time) bool {
	exp, ok := claims["exp"].(float64)
	if !ok || math.IsNaN(exp) {
		return false
	}
	return exp*1000 < float64(now.UnixMilli())
}

// ToUser builds a user from the claims of raw. Each field falls back on its
// own: id to 0, name to fallbackName, student id to fallbackStudentID.
func ToUser(raw, fallbackName, fallbackStudentID string) models.User {
	u := models.User{Name: fallbackName, StudentID: fallbackStudentID}

	claims, ok := Decode(raw)
	if !ok {
		return u
	}

	if id, ok := numericClaim(claims["id"]); ok {
		u.ID = id
	} else if id, ok := numericClaim(claims["sub"]); ok {
		u.ID = id
	}

	for _, key := range []string{"name", "nickname", "username"} {
		if s, ok := claims[key].(string); ok {
			u.Name = s
			break
		}
	}

	if s, ok := claims["student_id"].(string); ok {
		u.StudentID = s
	}
	return u
}

func numericClaim(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) || n >= math.MaxInt64 || n < math.MinInt64 {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}
