package web

import (
	"net/http"
	"strings"
)

type loginPageData struct {
	Error string
}

func (s *Server) loginPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, "login.html", loginPageData{})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	ok, err := s.auth.Login(r.Context(), username, password)
	if err != nil {
		s.logger.Error().Err(err).Msg("login check failed")
		s.render(w, "login.html", loginPageData{Error: "Login is temporarily unavailable, try again"})
		return
	}
	if !ok {
		s.render(w, "login.html", loginPageData{Error: "Wrong username or password"})
		return
	}

	token := s.sessions.Start(username)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	s.logger.Info().Str("username", username).Msg("logged in")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		s.sessions.End(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:   sessionCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
