package main

import (
	"ilo_monitor/internal/service"

	"github.com/spf13/cobra"
)

var powerActionHelp = map[service.PowerAction]string{
	service.ActionOn:       "Power the host on",
	service.ActionOff:      "Request a graceful power off",
	service.ActionPress:    "Momentarily press the power button",
	service.ActionReset:    "Hard reset the host",
	service.ActionWarmBoot: "Warm boot the host",
	service.ActionColdBoot: "Cold boot the host",
	service.ActionForceOff: "Hold the power button until the host turns off",
}

func newPowerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "power",
		Short: "Read host power or send a power action",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print host power state and request latency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, err := a.controller()
			if err != nil {
				return err
			}
			st, err := service.NewPowerService(ctrl, nil, a.logger()).Status(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), st)
		},
	})

	for _, action := range []service.PowerAction{
		service.ActionOn, service.ActionOff, service.ActionPress, service.ActionReset,
		service.ActionWarmBoot, service.ActionColdBoot, service.ActionForceOff,
	} {
		cmd.AddCommand(newPowerActionCmd(a, action))
	}
	return cmd
}

func newPowerActionCmd(a *app, action service.PowerAction) *cobra.Command {
	var wait bool
	cmd := &cobra.Command{
		Use:   string(action),
		Short: powerActionHelp[action],
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, err := a.controller()
			if err != nil {
				return err
			}
			res, err := service.NewPowerService(ctrl, nil, a.logger()).Execute(cmd.Context(), service.PowerRequest{
				Action: action,
				Wait:   wait,
			})
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().BoolVarP(&wait, "wait", "w", false, "poll until the host reaches the target state (on, off, forceoff)")
	return cmd
}

func newResetControllerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ilo-reset",
		Short: "Restart the iLO management controller (the host keeps running)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, err := a.controller()
			if err != nil {
				return err
			}
			if err := service.NewPowerService(ctrl, nil, a.logger()).ResetController(cmd.Context(), 0); err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), map[string]string{"status": "sent", "host": ctrl.Address()})
		},
	}
}
