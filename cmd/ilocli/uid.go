package main

import (
	"ilo_monitor/internal/service"

	"github.com/spf13/cobra"
)

func newUIDCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uid",
		Short: "Read or toggle the unit identification LED",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print the LED state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, err := a.controller()
			if err != nil {
				return err
			}
			st, err := service.NewLightService(ctrl, nil, a.logger()).UIDStatus(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), map[string]string{"uid": string(st)})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Flip the LED and wait for the controller to confirm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, err := a.controller()
			if err != nil {
				return err
			}
			res, err := service.NewLightService(ctrl, nil, a.logger()).ToggleUID(cmd.Context(), 0)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), res)
		},
	})
	return cmd
}
