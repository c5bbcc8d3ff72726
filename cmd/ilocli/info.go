package main

import (
	"context"

	"ilo_monitor/internal/service"

	"github.com/spf13/cobra"
)

func newInfoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Read controller and host inventory",
	}

	queries := []struct {
		use   string
		short string
		read  func(context.Context, *service.InventoryService) (any, error)
	}{
		{"firmware", "Firmware version and license", func(ctx context.Context, s *service.InventoryService) (any, error) {
			return s.Firmware(ctx)
		}},
		{"health", "Embedded health: temperatures, fans, power supplies", func(ctx context.Context, s *service.InventoryService) (any, error) {
			return s.Health(ctx)
		}},
		{"network", "Controller network settings", func(ctx context.Context, s *service.InventoryService) (any, error) {
			return s.Network(ctx)
		}},
		{"name", "Host name as reported by the controller", func(ctx context.Context, s *service.InventoryService) (any, error) {
			name, err := s.ServerName(ctx)
			return map[string]string{"name": name}, err
		}},
	}

	for _, q := range queries {
		q := q
		cmd.AddCommand(&cobra.Command{
			Use:   q.use,
			Short: q.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				ctrl, err := a.controller()
				if err != nil {
					return err
				}
				v, err := q.read(cmd.Context(), service.NewInventoryService(ctrl))
				if err != nil {
					return err
				}
				return a.print(cmd.OutOrStdout(), v)
			},
		})
	}
	return cmd
}

func newEventLogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eventlog",
		Short: "Print today's controller events (or the best available subset)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, err := a.controller()
			if err != nil {
				return err
			}
			res, err := service.NewControllerLogService(ctrl).Events(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), res)
		},
	}
}
