// Package cli is the interactive dpbr client.
//
// It wires configuration, auth storage, the API gateway and the session and
// read services into a small REPL. The prompt shows who is signed in; the
// session is reconciled with the backend once at start-up (CheckAuth).
//
// Commands:
//   - login / logout / whoami
//   - kakao-url, kakao <code>, signup (Kakao social login and registration)
//   - characters [--sample], character <id>
//   - settlements <characterId>, settlement <id>
//   - comments [page] [limit], comment, delcomment <id>
//   - notices
//   - export character|settlement <id>
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
