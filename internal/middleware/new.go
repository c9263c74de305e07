package middleware

import (
	"parts-support-chat/config"
	"parts-support-chat/pkg/log"
)

type Middleware struct {
	l   log.Logger
	cfg *config.Config
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:   l,
		cfg: cfg,
	}
}
