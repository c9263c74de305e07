package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "parts-support-chat/internal/chat/delivery/http"
	chatUC "parts-support-chat/internal/chat/usecase"
	"parts-support-chat/internal/middleware"
)

// setupChatDomain initializes the chat domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.l, deps...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := chatUC.New(srv.l, srv.llm, srv.store)

	h := chatHTTP.New(srv.l, uc)

	// Registers POST /api/v1/chat
	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
