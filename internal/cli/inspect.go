package cli

import (
	"fmt"
	"mail-train-service/internal/adapters/netfile"
	"mail-train-service/internal/services"
	"strings"

	"github.com/spf13/cobra"
)

func newInspectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <network-file>",
		Short: "Describe a network and its connected components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := netfile.LoadFile(args[0])
			if err != nil {
				return err
			}
			state, err := sc.Build()
			if err != nil {
				return err
			}
			opts.log.Debugw("network loaded", "file", args[0], "stations", len(sc.Stations))

			out := cmd.OutOrStdout()
			n := state.Network
			fmt.Fprintf(out, "network %s (%s)\n", sc.Name, services.Fingerprint(state))
			fmt.Fprintf(out, "stations: %s\n", strings.Join(sc.Stations, ","))
			for _, l := range n.Links() {
				fmt.Fprintf(out, "link %s: %s-%s %d\n", l.Name, n.StationName(l.From), n.StationName(l.To), l.TravelTime)
			}
			for _, t := range state.Trains {
				fmt.Fprintf(out, "train %s: home %s, capacity %d\n", t.Name, n.StationName(t.Home), t.Capacity)
			}
			for _, p := range state.Pending {
				fmt.Fprintf(out, "delivery %s: %s->%s weight %d\n", p.Name, n.StationName(p.PickUp), n.StationName(p.DropOff), p.Weight)
			}

			rep := services.AnalyzeConnectivity(state)
			for i, c := range rep.Components {
				fmt.Fprintf(out, "component %d: %s\n", i+1, strings.Join(c, ","))
			}
			if len(rep.Stranded) > 0 {
				fmt.Fprintf(out, "stranded: %s\n", strings.Join(rep.Stranded, ","))
			}
			return nil
		},
	}
}
