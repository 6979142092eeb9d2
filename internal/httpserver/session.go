package httpserver

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// sessionCookieTTL bounds the cookie itself; idle game state is dropped
// much earlier by the store sweeper.
const sessionCookieTTL = 180 * 24 * time.Hour

// session returns the caller's session ID, creating a new session (and
// adding its Set-Cookie to hdr) when the cookie is missing, invalid, or
// points at a session the store no longer has.
func (s *Server) session(r *http.Request, hdr http.Header) (string, error) {
	if id, err := s.sessionFromCookie(r); err == nil {
		if _, err := s.store.Get(r.Context(), id); err == nil {
			return id, nil
		}
	}

	id := uuid.NewString()
	if err := s.store.Save(r.Context(), id, s.machine.Initial()); err != nil {
		return "", err
	}
	tok, exp, err := s.signSession(id)
	if err != nil {
		return "", err
	}
	hdr.Add("Set-Cookie", s.sessionCookie(tok, exp).String())
	log.Debug().Str("session", id).Msg("new session")
	return id, nil
}

// signSession creates an HS256 JWT whose ID claim is the session ID.
func (s *Server) signSession(id string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(sessionCookieTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString(s.opts.Secret)
	return ss, exp, err
}

// sessionFromCookie verifies the session cookie and returns its session ID.
func (s *Server) sessionFromCookie(r *http.Request) (string, error) {
	c, err := r.Cookie(s.opts.CookieName)
	if err != nil {
		return "", err
	}
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(c.Value, claims, func(t *jwt.Token) (interface{}, error) {
		return s.opts.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", errors.New("invalid session token")
	}
	if claims.ID == "" {
		return "", errors.New("session token has no id")
	}
	return claims.ID, nil
}

// sessionCookie builds the session cookie with appropriate security attributes.
func (s *Server) sessionCookie(token string, exp time.Time) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if s.opts.SecureCookies {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	return &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.SecureCookies,
		SameSite: sameSite,
		Expires:  exp,
	}
}

// checkOrigin accepts WebSocket upgrades from the configured client origin
// or from the page this server itself served.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || origin == s.opts.ClientOrigin {
		return true
	}
	u, err := url.Parse(origin)
	return err == nil && strings.EqualFold(u.Host, r.Host)
}
