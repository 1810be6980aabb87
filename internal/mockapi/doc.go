// Package mockapi is a development backend that serves the placeholder
// roster, settlements and guestbook over the same REST surface as the real
// dpbr API.
//
// Everything lives in memory. Any non-empty username/password pair logs in;
// the issued bearer tokens are HS256 JWTs carrying id, name, student_id and
// exp, so the client's token codec sees realistic claims. Kakao codes
// starting with "new" take the signup path and return a register token.
//
// Errors are answered FastAPI style, {"detail": "..."}.
package mockapi
