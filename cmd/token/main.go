// cmd/token/main.go - sinh access token cho môi trường dev
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"crowdfund-backoffice/internal/config"
	"crowdfund-backoffice/pkg/jwt"
	"crowdfund-backoffice/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	logger.Init("development", "warn")

	userFlag := flag.String("user", "", "user id (uuid), rỗng = sinh mới")
	email := flag.String("email", "dev@backoffice.dev", "email claim")
	role := flag.String("role", jwt.RoleCreator, "creator | admin")
	flag.Parse()

	if *role != jwt.RoleCreator && *role != jwt.RoleAdmin {
		log.Fatal().Str("role", *role).Msg("role must be creator or admin")
	}

	userID := uuid.New()
	if *userFlag != "" {
		parsed, err := uuid.Parse(*userFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid user id")
		}
		userID = parsed
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	tokens := jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)
	token, err := tokens.GenerateAccessToken(userID, *email, *role)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to sign token")
	}

	fmt.Fprintf(os.Stderr, "user_id=%s role=%s\n", userID, *role)
	fmt.Println(token)
}
