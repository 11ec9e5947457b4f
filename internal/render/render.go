// Package render formats graphs, search results and traces as terminal text.
package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/maruel/natural"

	"github.com/santhosh-kumar-karthikeyan/graph-ops/bfs"
	"github.com/santhosh-kumar-karthikeyan/graph-ops/core"
	"github.com/santhosh-kumar-karthikeyan/graph-ops/dfs"
	"github.com/santhosh-kumar-karthikeyan/graph-ops/ucs"
)

const pathSep = " -> "

// Node renders one node and its neighbors: "A -> B(3), C(5)".
func Node(g *core.Graph, label string) string {
	nbs, err := g.Neighbors(label)
	if err != nil {
		return fmt.Sprintf("%s doesn't exist", label)
	}
	if len(nbs) == 0 {
		return fmt.Sprintf("%s doesn't have any neighbours", label)
	}

	return label + pathSep + neighborList(nbs)
}

func neighborList(nbs []core.Neighbor) string {
	parts := make([]string, len(nbs))
	for i, nb := range nbs {
		parts[i] = fmt.Sprintf("%s(%d)", nb.Label, nb.Cost)
	}

	return strings.Join(parts, ", ")
}

// Graph renders the whole graph in three sections: the adjacency of every
// connected node, a table with each edge once, and the isolated nodes.
func Graph(g *core.Graph) string {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return "No nodes to display"
	}

	var (
		b        strings.Builder
		isolated []string
		rows     [][]string
		seen     = make(map[[2]string]bool)
	)
	b.WriteString("Graph structure:\n")
	for _, u := range nodes {
		nbs, err := g.Neighbors(u)
		if err != nil || len(nbs) == 0 {
			isolated = append(isolated, u)
			continue
		}
		fmt.Fprintf(&b, "  %s%s%s\n", u, pathSep, neighborList(nbs))
		for _, nb := range nbs {
			if seen[[2]string{nb.Label, u}] {
				continue
			}
			seen[[2]string{u, nb.Label}] = true
			rows = append(rows, []string{u + " - " + nb.Label, fmt.Sprint(nb.Cost)})
		}
	}

	b.WriteString("Edge weights:\n")
	if len(rows) == 0 {
		b.WriteString("  none\n")
	} else {
		b.WriteString(Table([]string{"Edge", "Cost"}, rows))
		b.WriteString("\n")
	}

	b.WriteString("Isolated nodes: ")
	if len(isolated) == 0 {
		b.WriteString("none")
	} else {
		sort.Sort(natural.StringSlice(isolated))
		b.WriteString(strings.Join(isolated, ", "))
	}

	return b.String()
}

// Table renders rows under headers with a rounded border.
func Table(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		Render()
}

// Trace renders a titled trace table.
func Trace(title string, headers []string, rows [][]string) string {
	return title + "\n" + Table(headers, rows)
}

func list(labels []string) string {
	return "[" + strings.Join(labels, ", ") + "]"
}

// BFSTrace renders the fringe/explored table of a BFS run.
func BFSTrace(res *bfs.Result, target string) string {
	rows := make([][]string, len(res.Trace))
	for i, s := range res.Trace {
		rows[i] = []string{list(s.Fringe), list(s.Explored)}
	}

	return Trace("BFS for target "+target, []string{"Fringe", "Explored"}, rows)
}

// DFSTrace renders the path/explored table of a DFS run.
func DFSTrace(res *dfs.Result, target string) string {
	rows := make([][]string, len(res.Trace))
	for i, s := range res.Trace {
		rows[i] = []string{list(s.Path), list(s.Explored)}
	}

	return Trace("DFS for target "+target, []string{"Path", "Explored"}, rows)
}

// UCSTrace renders the queue/explored table of a UCS run.
func UCSTrace(res *ucs.Result, target string) string {
	rows := make([][]string, len(res.Trace))
	for i, s := range res.Trace {
		entries := make([]string, len(s.Queue))
		for j, it := range s.Queue {
			entries[j] = fmt.Sprintf("%s(%d)", it.Label, it.Cost)
		}
		rows[i] = []string{list(entries), list(s.Explored)}
	}

	return Trace("UCS for target "+target, []string{"Queue", "Explored"}, rows)
}

// BFS renders a BFS outcome: the explored order or "X can't be reached".
func BFS(res *bfs.Result, target string) string {
	if !res.Found {
		return fmt.Sprintf("%s can't be reached", target)
	}

	return strings.Join(res.Path, pathSep)
}

// DFS renders a DFS outcome: the root-to-target chain or "X is unreachable".
// Backtracked branches are not printed; res.Order holds every entered node.
func DFS(res *dfs.Result, target string) string {
	if !res.Found {
		return fmt.Sprintf("%s is unreachable", target)
	}

	return strings.Join(res.Path, pathSep)
}

// UCS renders a UCS outcome: "Path: A -> B, Total cost: N" or "X is unreachable".
func UCS(res *ucs.Result, target string) string {
	if !res.Found {
		return fmt.Sprintf("%s is unreachable", target)
	}

	return fmt.Sprintf("Path: %s, Total cost: %d", strings.Join(res.Path, pathSep), res.Cost)
}

// NodeAdded confirms AddNode.
func NodeAdded(label string) string { return label + " added to the graph." }

// NodeRemoved confirms RemoveNode.
func NodeRemoved(label string) string { return label + " removed from the graph" }

// EdgeChange confirms AddEdge, distinguishing a new edge from an update.
func EdgeChange(change core.EdgeChange, start, end string, cost int64) string {
	if change == core.EdgeUpdated {
		return fmt.Sprintf("Edge between %s and %s updated with cost %d", start, end, cost)
	}

	return fmt.Sprintf("Edge added between %s and %s with cost %d", start, end, cost)
}

// EdgeRemoved confirms RemoveEdge.
func EdgeRemoved(start, end string) string {
	return fmt.Sprintf("Edge between %s and %s removed.", start, end)
}

// Message turns an error from core or a search package into the text shown
// to the user. start and target name the search endpoints, if any.
func Message(err error, start, target string) string {
	var ne *core.NodeError
	if errors.As(err, &ne) {
		switch {
		case errors.Is(err, core.ErrNodeAlreadyExists):
			return ne.Label + " already exists"
		case errors.Is(err, core.ErrNodeNotFound):
			return fmt.Sprintf("Node %s not found.", ne.Label)
		case errors.Is(err, core.ErrSameStartAndEnd):
			return "Start node is same as end node: " + ne.Label
		case errors.Is(err, core.ErrStartNodeMissing), errors.Is(err, core.ErrEndNodeMissing):
			return ne.Label + " doesn't exist"
		case errors.Is(err, core.ErrEmptyLabel):
			return "Node name must not be empty"
		}
	}

	switch {
	case errors.Is(err, bfs.ErrStartVertexNotFound),
		errors.Is(err, dfs.ErrStartVertexNotFound),
		errors.Is(err, ucs.ErrStartVertexNotFound):
		return fmt.Sprintf("Start node %s doesn't exist", start)
	case errors.Is(err, ucs.ErrTargetVertexNotFound):
		return fmt.Sprintf("Target node %s doesn't exist", target)
	}

	return err.Error()
}
