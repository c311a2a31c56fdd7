package tools

import (
	"github.com/qazaqnlp/qural/pkg/server"
)

type Tool interface {
	Register(srv *server.Server) error
}
