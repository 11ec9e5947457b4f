package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/santhosh-kumar-karthikeyan/graph-ops/bfs"
	"github.com/santhosh-kumar-karthikeyan/graph-ops/core"
	"github.com/santhosh-kumar-karthikeyan/graph-ops/dfs"
	"github.com/santhosh-kumar-karthikeyan/graph-ops/internal/render"
	"github.com/santhosh-kumar-karthikeyan/graph-ops/ucs"
)

// Usage lines printed when a command gets the wrong number of words.
const (
	usageAddNode    = "Usage: add_node NODE [NEIGHBOR:COST ...]"
	usageRemoveNode = "Usage: remove_node NODE"
	usageAddEdge    = "Usage: add_edge NODE1 NODE2 [COST] (default cost: 0)"
	usageRemoveEdge = "Usage: remove_edge NODE1 NODE2"
	usageBFS        = "Usage: bfs start target"
	usageDFS        = "Usage: dfs start target"
	usageUCS        = "Usage: ucs start target"

	msgBadCost = "Cost must be an integer"
	msgSaved   = "Graph saved."
	msgLoaded  = "Graph loaded."
)

// Algorithm names used as metric labels.
const (
	algoBFS = "bfs"
	algoDFS = "dfs"
	algoUCS = "ucs"
)

func (s *Shell) newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:               "graph",
		Short:             "Graph shell",
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	root.SetOut(s.out)
	root.SetErr(s.out)

	root.AddCommand(
		s.command("add_node NODE [NEIGHBOR:COST ...]", "Add a node, optionally linked to neighbors", s.runAddNode),
		s.command("remove_node NODE", "Remove a node and all its edges", s.runRemoveNode),
		s.command("add_edge NODE1 NODE2 [COST]", "Add an edge with optional cost (default cost: 0)", s.runAddEdge),
		s.command("remove_edge NODE1 NODE2", "Remove an edge", s.runRemoveEdge),
		s.command("display [NODE]", "Display the graph or a node", s.runDisplay),
		s.command("save", "Save the current graph to disk", s.runSave),
		s.command("load", "Load the graph from disk", s.runLoad),
		s.command("bfs START TARGET", "Search for target node in breadth first fashion", s.runBFS),
		s.command("dfs START TARGET", "Search for target node in depth first manner", s.runDFS),
		s.command("ucs START TARGET", "Search for the cheapest path using uniform cost search", s.runUCS),
		s.command("stats", "Show node, edge and isolated node counts", s.runStats),
		s.command("exit", "Save the graph and exit the shell", s.runExit),
	)
	root.SetHelpCommand(&cobra.Command{
		Use:     "help [COMMAND]",
		Aliases: []string{"?"},
		Short:   "List commands or show the usage of one",
		RunE:    s.runHelp,
	})
	root.InitDefaultHelpCmd()

	return root
}

// command builds a leaf command that receives its words verbatim, so a
// negative cost such as -3 is not taken for a flag.
func (s *Shell) command(use, short string, run func(args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		DisableFlagParsing: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(args)
		},
	}
}

func (s *Shell) runAddNode(args []string) error {
	if len(args) == 0 {
		s.println(usageAddNode)
		return nil
	}

	label := args[0]
	neighbors := make([]core.Neighbor, 0, len(args)-1)
	for _, word := range args[1:] {
		nb, ok := parseNeighbor(word)
		if !ok {
			s.println(msgBadCost)
			return nil
		}
		neighbors = append(neighbors, nb)
	}

	err := s.graph.AddNode(label, neighbors...)
	s.mutated(core.OpAddNode, err)
	if err != nil {
		s.println(render.Message(err, "", ""))
		return nil
	}
	s.println(render.NodeAdded(label))

	return nil
}

// parseNeighbor reads NEIGHBOR or NEIGHBOR:COST; a missing cost is 0.
func parseNeighbor(word string) (core.Neighbor, bool) {
	label, costStr, hasCost := strings.Cut(word, ":")
	if !hasCost {
		return core.Neighbor{Label: label}, true
	}
	cost, err := strconv.ParseInt(costStr, 10, 64)
	if err != nil {
		return core.Neighbor{}, false
	}

	return core.Neighbor{Label: label, Cost: cost}, true
}

func (s *Shell) runRemoveNode(args []string) error {
	if len(args) == 0 {
		s.println(usageRemoveNode)
		return nil
	}

	label := args[0]
	err := s.graph.RemoveNode(label)
	s.mutated(core.OpRemoveNode, err)
	if err != nil {
		s.println(render.Message(err, "", ""))
		return nil
	}
	s.println(render.NodeRemoved(label))

	return nil
}

func (s *Shell) runAddEdge(args []string) error {
	var cost int64
	switch len(args) {
	case 2:
	case 3:
		c, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			s.println(msgBadCost)
			return nil
		}
		cost = c
	default:
		s.println(usageAddEdge)
		return nil
	}

	start, end := args[0], args[1]
	change, err := s.graph.AddEdge(start, end, cost)
	s.mutated(core.OpAddEdge, err)
	if err != nil {
		s.println(render.Message(err, "", ""))
		return nil
	}
	s.println(render.EdgeChange(change, start, end, cost))

	return nil
}

func (s *Shell) runRemoveEdge(args []string) error {
	if len(args) != 2 {
		s.println(usageRemoveEdge)
		return nil
	}

	start, end := args[0], args[1]
	err := s.graph.RemoveEdge(start, end)
	s.mutated(core.OpRemoveEdge, err)
	if err != nil {
		s.println(render.Message(err, "", ""))
		return nil
	}
	s.println(render.EdgeRemoved(start, end))

	return nil
}

func (s *Shell) runDisplay(args []string) error {
	if len(args) == 0 {
		s.println(render.Graph(s.graph))
		return nil
	}
	s.println(render.Node(s.graph, args[0]))

	return nil
}

func (s *Shell) runSave(_ []string) error {
	if err := s.store.Save(s.graph); err != nil {
		return err
	}
	s.println(msgSaved)

	return nil
}

func (s *Shell) runLoad(_ []string) error {
	if _, err := s.store.Load(s.graph); err != nil {
		return err
	}
	s.metrics.Observe(s.graph)
	s.println(msgLoaded)

	return nil
}

func (s *Shell) runBFS(args []string) error {
	if len(args) != 2 {
		s.println(usageBFS)
		return nil
	}

	start, target := args[0], args[1]
	res, err := bfs.BFS(s.graph, start, target, bfs.WithContext(s.ctx), bfs.WithTrace(s.trace))
	if err != nil {
		s.metrics.Search(algoBFS, false, 0, err)
		return s.searchFailed(err, start, target)
	}
	s.metrics.Search(algoBFS, res.Found, len(res.Path), nil)
	if s.trace {
		s.println(render.BFSTrace(res, target))
	}
	s.println(render.BFS(res, target))

	return nil
}

func (s *Shell) runDFS(args []string) error {
	if len(args) != 2 {
		s.println(usageDFS)
		return nil
	}

	start, target := args[0], args[1]
	res, err := dfs.DFS(s.graph, start, target, dfs.WithContext(s.ctx), dfs.WithTrace(s.trace))
	if err != nil {
		s.metrics.Search(algoDFS, false, 0, err)
		return s.searchFailed(err, start, target)
	}
	s.metrics.Search(algoDFS, res.Found, len(res.Order), nil)
	if s.trace {
		s.println(render.DFSTrace(res, target))
	}
	s.println(render.DFS(res, target))

	return nil
}

func (s *Shell) runUCS(args []string) error {
	if len(args) != 2 {
		s.println(usageUCS)
		return nil
	}

	start, target := args[0], args[1]
	expanded := 0
	res, err := ucs.UCS(s.graph, start, target,
		ucs.WithContext(s.ctx),
		ucs.WithTrace(s.trace),
		ucs.WithOnExpand(func(string, int64) error {
			expanded++
			return nil
		}),
	)
	if err != nil {
		s.metrics.Search(algoUCS, false, 0, err)
		return s.searchFailed(err, start, target)
	}
	s.metrics.Search(algoUCS, res.Found, expanded, nil)
	if s.trace {
		s.println(render.UCSTrace(res, target))
	}
	s.println(render.UCS(res, target))

	return nil
}

// searchFailed prints the text for a rejected search. Cancellation is
// returned instead.
func (s *Shell) searchFailed(err error, start, target string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	s.println(render.Message(err, start, target))

	return nil
}

func (s *Shell) runStats(_ []string) error {
	st := s.graph.Stats()
	fmt.Fprintf(s.out, "Nodes: %d, Edges: %d, Isolated: %d\n", st.NodeCount, st.EdgeCount, st.IsolatedCount)

	return nil
}

func (s *Shell) runExit(_ []string) error {
	s.exited = true
	if !s.autosave {
		return nil
	}
	if err := s.store.Save(s.graph); err != nil {
		return err
	}
	s.println(msgSaved)

	return nil
}

func (s *Shell) runHelp(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		cmd, _, err := s.root.Find(args)
		if err != nil || cmd == s.root {
			s.println("*** No help on " + args[0])
			return nil
		}
		s.println(cmd.Short)
		s.println("Usage: " + cmd.Use)

		return nil
	}

	cmds := s.root.Commands()
	rows := make([][]string, 0, len(cmds))
	for _, c := range cmds {
		rows = append(rows, []string{c.Use, c.Short})
	}
	s.println("Documented commands (type help <command>):")
	s.println(render.Table([]string{"Command", "Description"}, rows))

	return nil
}

// mutated records a mutation attempt and refreshes the size gauges.
func (s *Shell) mutated(op string, err error) {
	s.metrics.Mutation(op, err)
	if err != nil {
		s.logger.Debug().Err(err).Str("op", op).Msg("mutation rejected")
		return
	}
	s.metrics.Observe(s.graph)
}
