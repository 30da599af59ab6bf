// Command issue-token mints an access token for local development and operations.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	charityv1 "github.com/simaogato/charityflow-backend/internal/adapter/grpc/charity/v1"
	"github.com/simaogato/charityflow-backend/internal/auth"
	"github.com/simaogato/charityflow-backend/internal/config"
)

func main() {
	userFlag := flag.String("user", "", "user UUID (random when empty)")
	superuser := flag.Bool("superuser", false, "grant administrative access")
	verify := flag.Bool("verify", false, "call ListMyDonations on the gRPC server with the new token")
	addr := flag.String("addr", "", "gRPC server address (GRPC_ADDR when empty)")
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	userID := uuid.New()
	if *userFlag != "" {
		userID, err = uuid.Parse(*userFlag)
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid user id")
		}
	}

	authenticator, err := auth.NewAuthenticator(cfg.JWTSecret, cfg.JWTTokenTTL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure authentication")
	}

	token, err := authenticator.Issue(auth.Principal{UserID: userID, Superuser: *superuser})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to issue token")
	}

	fmt.Println(token)

	if *verify {
		target := *addr
		if target == "" {
			target = cfg.GRPCAddr
		}
		if err := verifyToken(target, token); err != nil {
			logger.Fatal().Err(err).Str("addr", target).Msg("token rejected")
		}
		logger.Info().Str("addr", target).Str("user_id", userID.String()).Msg("token accepted")
	}
}

// verifyToken makes an authenticated call that any valid user may perform
func verifyToken(target, token string) error {
	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := charityv1.NewCharityServiceClient(conn)
	_, err = client.ListMyDonations(charityv1.WithToken(ctx, token), &charityv1.ListMyDonationsRequest{})
	return err
}
