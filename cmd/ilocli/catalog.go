package main

import (
	"ilo_monitor/internal/ribcl"

	"github.com/spf13/cobra"
)

type catalogEntry struct {
	ID      ribcl.CommandID   `json:"id" yaml:"id"`
	Section ribcl.Section     `json:"section" yaml:"section"`
	Mode    ribcl.Mode        `json:"mode" yaml:"mode"`
	Tag     string            `json:"tag" yaml:"tag"`
	Attrs   map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Flag    string            `json:"flag,omitempty" yaml:"flag,omitempty"`
	Marker  string            `json:"marker,omitempty" yaml:"marker,omitempty"`
}

func newCatalogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the RIBCL commands this tool can send",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmds := ribcl.Catalog()
			out := make([]catalogEntry, 0, len(cmds))
			for _, c := range cmds {
				e := catalogEntry{ID: c.ID, Section: c.Section, Mode: c.Mode, Tag: c.Tag, Flag: c.Flag, Marker: c.Marker}
				if len(c.Attrs) > 0 {
					e.Attrs = make(map[string]string, len(c.Attrs))
					for _, at := range c.Attrs {
						e.Attrs[at.Key] = at.Value
					}
				}
				out = append(out, e)
			}
			return a.print(cmd.OutOrStdout(), out)
		},
	}
}
