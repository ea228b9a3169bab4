package main

import (
	"fmt"
	"time"

	"library-admin/internal/domain/user"
	"library-admin/internal/pkg/config"
	"library-admin/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an administrator bearer token",
		Long: "Administrators are not stored in the database. This command signs a token\n" +
			"with JWT_SECRET that the API accepts on every /api/admin route.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var jwtCfg config.JWTConfig
			if err := envconfig.Process("", &jwtCfg); err != nil {
				return fmt.Errorf("failed to process jwt env config: %w", err)
			}

			id := uuid.New()
			if subject != "" {
				parsed, err := uuid.Parse(subject)
				if err != nil {
					return fmt.Errorf("invalid --subject: %w", err)
				}
				id = parsed
			}

			token, err := mintAdminToken(jwtCfg, id, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "admin id to embed (random when empty)")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to JWT_DURATION)")
	return cmd
}

func mintAdminToken(cfg config.JWTConfig, id uuid.UUID, ttl time.Duration) (string, error) {
	duration, err := time.ParseDuration(cfg.Duration)
	if err != nil {
		return "", fmt.Errorf("invalid JWT_DURATION: %w", err)
	}
	if ttl <= 0 {
		ttl = duration
	}
	svc := jwt.NewService(cfg.Secret, duration, cfg.Issuer)
	return svc.GenerateTokenWithTTL(id, user.RoleAdmin, ttl)
}
