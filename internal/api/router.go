package api

import (
	"fmt"
	"net/http"

	_ "github.com/arjunm-dev/cipherpost/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/arjunm-dev/cipherpost/internal/api/handlers"
	"github.com/arjunm-dev/cipherpost/internal/api/middleware"
	"github.com/arjunm-dev/cipherpost/internal/apperror"
	"github.com/arjunm-dev/cipherpost/internal/config"
	"github.com/arjunm-dev/cipherpost/internal/crypto"
	"github.com/arjunm-dev/cipherpost/internal/repositories"
	"github.com/arjunm-dev/cipherpost/internal/utils"
	"github.com/rs/cors"
)

func SetupRouter(repos *repositories.Repositories, cryptoSvc *crypto.Service) http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(config.Envs.CorsConfig)

	userHandler := handlers.NewUserHandler(repos.Users)
	messageHandler := handlers.NewMessageHandler(repos.Messages)
	payloadHandler := handlers.NewPayloadHandler(cryptoSvc)

	mainMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	userMux := http.NewServeMux()
	userMux.HandleFunc("/register", userHandler.Register)
	userMux.HandleFunc("/{username}", userHandler.GetPublicKey)
	userMux.HandleFunc("/", routeNotFound)

	messageMux := http.NewServeMux()
	messageMux.HandleFunc("/send", messageHandler.Send)
	messageMux.HandleFunc("/{username}", messageHandler.GetMessages)
	messageMux.HandleFunc("/", routeNotFound)

	payloadMux := http.NewServeMux()
	payloadMux.HandleFunc("/encrypt", payloadHandler.Encrypt)
	payloadMux.HandleFunc("/decrypt", payloadHandler.Decrypt)
	payloadMux.HandleFunc("/", routeNotFound)

	mainMux.Handle("/user/", http.StripPrefix("/user", userMux))
	mainMux.Handle("/message/", http.StripPrefix("/message", messageMux))
	mainMux.Handle("/payload/", http.StripPrefix("/payload", payloadMux))
	mainMux.HandleFunc("/", routeNotFound)

	handler := c.Handler(mainMux)
	handler = middleware.Logger(handler)
	return handler
}

func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	utils.ErrorResponse(w, apperror.NotFound("Route not found"))
}
