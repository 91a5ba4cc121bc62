package main

import (
	"io"
	"sort"
	"strings"

	"github.com/fvbommel/sortorder"
	"github.com/spf13/cobra"

	"github.com/a1s/w1s/internal/config"
	"github.com/a1s/w1s/internal/graphql"
)

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the endpoint profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.InitLocs(); err != nil {
				return err
			}
			settings, err := graphql.NewProfileManager(config.AppEndpointsFile)
			if err != nil {
				return err
			}
			active, _ := settings.CurrentProfileName()
			if config.IsStringSet(w1sFlags.Profile) {
				active = *w1sFlags.Profile
			}

			return printProfiles(cmd.OutOrStdout(), settings, active)
		},
	}
}

func printProfiles(w io.Writer, settings graphql.ProfileSettings, active string) error {
	tw := newPlainWriter(w)
	tw.SetHeader([]string{"", "NAME", "ENDPOINT", "TIMEOUT", "HEADERS"})

	for _, name := range settings.ProfileNames() {
		p, err := settings.GetProfile(name)
		if err != nil {
			return err
		}
		var mark string
		if name == active {
			mark = "*"
		}
		endpoint, timeout := p.Endpoint, "-"
		if endpoint == "" {
			endpoint = "-"
		}
		if p.Timeout > 0 {
			timeout = p.Timeout.String()
		}
		hh := make([]string, 0, len(p.Headers))
		for k := range p.Headers {
			hh = append(hh, k)
		}
		tw.Append([]string{mark, name, endpoint, timeout, headerNames(hh)})
	}
	tw.Render()

	return nil
}

func headerNames(hh []string) string {
	if len(hh) == 0 {
		return "-"
	}
	sort.Sort(sortorder.Natural(hh))
	return strings.Join(hh, ",")
}
