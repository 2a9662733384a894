package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/picking-scanner-api/pkg/jwt"
)

// newTokenCmd emite un JWT firmado con JWT_SECRET para probar la API en desarrollo.
func newTokenCmd(a *app) *cobra.Command {
	var id jwt.Identity
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Genera un token Bearer de desarrollo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.App.Env == "production" {
				return fmt.Errorf("token: no disponible en production")
			}
			tok, err := jwt.Generate(a.cfg.JWT.Secret, a.cfg.JWT.Issuer, id, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&id.UserID, "user", "00000000-0000-0000-0000-000000000001", "ID del usuario")
	cmd.Flags().StringVar(&id.CompanyID, "company", "", "ID de la empresa")
	cmd.Flags().StringVar(&id.Role, "role", jwt.RoleBodeguero, "rol (admin, bodeguero, vendedor)")
	cmd.Flags().DurationVar(&ttl, "ttl", 8*time.Hour, "vigencia del token")
	_ = cmd.MarkFlagRequired("company")
	return cmd
}

func contextWithTimeout(cmd *cobra.Command, d time.Duration) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, d)
}
