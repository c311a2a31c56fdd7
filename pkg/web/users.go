package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/qazaqnlp/qural/pkg/storage"
)

type usersPageData struct {
	Username string
	IsAdmin  bool
	Accounts []string
	Error    string
	Success  string
}

func (s *Server) usersPage(w http.ResponseWriter, r *http.Request, username string) {
	s.renderUsers(w, r, username, "", "")
}

func (s *Server) userCreate(w http.ResponseWriter, r *http.Request, username string) {
	if !s.isAdmin(username) {
		s.renderUsers(w, r, username, "You do not have access to user management", "")
		return
	}

	newUser := strings.TrimSpace(r.FormValue("username"))
	newPass := r.FormValue("password")
	if newUser == "" || newPass == "" {
		s.renderUsers(w, r, username, "Fill in both username and password", "")
		return
	}

	err := s.auth.CreateAccount(r.Context(), newUser, newPass)
	if errors.Is(err, storage.ErrDuplicateUser) {
		s.renderUsers(w, r, username, "A user with that name already exists", "")
		return
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("account creation failed")
		s.renderUsers(w, r, username, "Creating the account failed, try again", "")
		return
	}

	s.renderUsers(w, r, username, "", "User "+newUser+" created")
}

func (s *Server) userPassword(w http.ResponseWriter, r *http.Request, username string) {
	if !s.isAdmin(username) {
		s.renderUsers(w, r, username, "You do not have access to user management", "")
		return
	}

	target := r.FormValue("username")
	newPass := r.FormValue("password")
	if newPass == "" {
		s.renderUsers(w, r, username, "Enter the new password", "")
		return
	}

	if err := s.auth.ChangePassword(r.Context(), target, newPass); err != nil {
		s.logger.Error().Err(err).Msg("password change failed")
		s.renderUsers(w, r, username, "Changing the password failed, try again", "")
		return
	}

	s.renderUsers(w, r, username, "", "Password for "+target+" updated")
}

func (s *Server) renderUsers(w http.ResponseWriter, r *http.Request, username, errMsg, success string) {
	data := usersPageData{
		Username: username,
		IsAdmin:  s.isAdmin(username),
		Error:    errMsg,
		Success:  success,
	}

	if data.IsAdmin {
		accounts, err := s.auth.ListAccounts(r.Context())
		if err != nil {
			s.logger.Error().Err(err).Msg("listing accounts failed")
			if data.Error == "" {
				data.Error = "Could not read the account list"
			}
		}
		data.Accounts = accounts
	} else if data.Error == "" {
		data.Error = "You do not have access to user management"
	}

	s.render(w, "users.html", data)
}
