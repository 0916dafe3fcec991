package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"sort"
	"strings"

	"github.com/phil-mansfield/netcross/io"
	"github.com/phil-mansfield/netcross/network"
)

type FileGroup struct {
	log, prof *os.File
}

func (fg *FileGroup) Close() {
	if fg.prof != nil {
		pprof.StopCPUProfile()
		if err := fg.prof.Close(); err != nil { log.Fatal(err.Error()) }
		fg.prof = nil
	}

	if fg.log != nil {
		log.SetOutput(os.Stderr)
		if err := fg.log.Close(); err != nil { log.Fatal(err.Error()) }
		fg.log = nil
	}
}

// Check is the outcome of one link pair. Proposed links are gone from the
// network by the time a Check is reported, so they are stored by their
// nodes.
type Check struct {
	Name string
	LinkA, LinkB int // 0-indexed, LinkA is unused for proposals
	From, To int // 0-indexed nodes of a proposed link
	Cross bool
	Proposal bool
}

func (c *Check) String() string {
	verb := "do not cross"
	if c.Cross { verb = "cross" }
	if c.Proposal {
		return fmt.Sprintf("%s: proposed link and link %d %s",
			c.Name, c.LinkB + 1, verb)
	}
	return fmt.Sprintf("%s: links %d and %d %s",
		c.Name, c.LinkA + 1, c.LinkB + 1, verb)
}

func main() {
	var (
		crossings string
		exampleConfig string
	)
	vars := map[string]*string {
		"Crossings": &crossings,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&crossings, "Crossings", "",
		"Configuration file for [Crossings] mode.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the " +
			"specified type to stdout. The only accepted argument is " +
			"'Crossings'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil { log.Fatal(err.Error()) }

	switch modeName {
	case "Crossings":
		con, pairs, props, err := io.ReadCrossingsConfig(crossings)
		if err != nil { log.Fatal(err.Error()) }

		fg, err := setupFiles(con)
		if err != nil { log.Fatal(err.Error()) }
		defer fg.Close()

		checks, net, err := crossingsMain(con, pairs, props)
		if err != nil { log.Fatal(err.Error()) }
		for i := range checks {
			fmt.Println(checks[i].String())
		}

		if con.IsPlotted() {
			plotChecks(net, checks, con.PlotFile)
		}
	case "ExampleConfig":
		switch exampleConfig {
		case "Crossings":
			fmt.Println(io.ExampleCrossingsFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only " +
					"recognized argument is 'Crossings'.",
			)
		}
	default:
		panic("Impossible")
	}
}

// getModeName returns the name of the single mode flag which was set.
func getModeName(vars map[string]*string) (string, error) {
	set := []string{}
	for name, val := range vars {
		if *val != "" { set = append(set, name) }
	}
	sort.Strings(set)

	switch len(set) {
	case 0:
		names := make([]string, 0, len(vars))
		for name := range vars { names = append(names, "-" + name) }
		sort.Strings(names)
		return "", fmt.Errorf(
			"No mode was given. Set one of %s.", strings.Join(names, ", "),
		)
	case 1:
		return set[0], nil
	default:
		return "", fmt.Errorf(
			"Modes %s were all set, but only one can be run at a time.",
			strings.Join(set, ", "),
		)
	}
}

func setupFiles(con *io.CrossingsConfig) (*FileGroup, error) {
	fg := &FileGroup{}

	if con.LogFile != "" {
		f, err := os.Create(con.LogFile)
		if err != nil { return nil, err }
		log.SetOutput(f)
		fg.log = f
	}

	if con.ProfileFile != "" {
		f, err := os.Create(con.ProfileFile)
		if err != nil {
			fg.Close()
			return nil, err
		}
		if err = pprof.StartCPUProfile(f); err != nil {
			f.Close()
			fg.Close()
			return nil, err
		}
		fg.prof = f
	}

	return fg, nil
}

// crossingsMain loads the network described by con and runs every pair and
// proposal against it, one link pair at a time.
func crossingsMain(
	con *io.CrossingsConfig, pairs []io.PairConfig, props []io.ProposalConfig,
) ([]Check, *network.Network, error) {
	net, err := network.Read(con.NodeFile, con.LinkFile)
	if err != nil { return nil, nil, err }
	reg := network.NewRegistry()
	reg.Assign(net)

	lat, lon := net.Center()
	log.Printf(
		"Read %d nodes and %d links centered on (%.5f, %.5f).",
		len(net.Nodes), len(net.Links), lat, lon,
	)

	checks := []Check{}
	for _, pair := range pairs {
		a, b := pair.LinkA - 1, pair.LinkB - 1
		cross, err := net.Crosses(a, b)
		if err != nil {
			return nil, nil, fmt.Errorf("Pair '%s': %s", pair.Name, err.Error())
		}
		checks = append(checks, Check{
			Name: pair.Name, LinkA: a, LinkB: b, Cross: cross,
		})
	}

	// Proposals are added one at a time and removed again, so they never
	// see each other. A proposal between two nodes which are already linked
	// is checked as the existing link and leaves the network unchanged.
	base := len(net.Links)
	for _, prop := range props {
		from, to := prop.From - 1, prop.To - 1
		id, exists := net.FindLink(from, to)
		if !exists {
			id, err = net.AddLink(
				from, to, prop.Capacity, prop.FreeFlowTravelTime,
			)
			if err != nil {
				return nil, nil, fmt.Errorf("Proposal '%s': %s", prop.Name, err.Error())
			}
			reg.Assign(net)
		}

		against := prop.Against - 1
		if against >= base {
			return nil, nil, fmt.Errorf(
				"Proposal '%s': Link %d does not exist in a network with " +
					"%d links.", prop.Name, prop.Against, base,
			)
		}
		cross, err := net.Crosses(id, against)
		if err != nil {
			return nil, nil, fmt.Errorf("Proposal '%s': %s", prop.Name, err.Error())
		}
		checks = append(checks, Check{
			Name: prop.Name, LinkB: against, From: from, To: to,
			Cross: cross, Proposal: true,
		})

		if !exists {
			if err = net.RemoveLastLink(); err != nil { return nil, nil, err }
		} else {
			log.Printf("Proposal '%s' duplicates link %d.", prop.Name, id + 1)
		}
	}

	return checks, net, nil
}
