package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/heapath/bfs"
	"github.com/katalvlaran/heapath/binheap"
	"github.com/katalvlaran/heapath/core"
	"github.com/katalvlaran/heapath/dfs"
	"github.com/katalvlaran/heapath/dijkstra"
	"github.com/katalvlaran/heapath/graphio"
)

func runSolve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	file := fs.String("f", "", "fixture file (.yaml, .yml or .json); the built-in sample when empty")
	source := fs.String("source", "", "source vertex; the first vertex when empty")
	target := fs.String("target", "", "print only the path to this vertex")
	if err := fs.Parse(args); err != nil {
		return err
	}

	doc := graphio.Sample()
	if *file != "" {
		var err error
		if doc, err = graphio.LoadFile(*file); err != nil {
			return err
		}
	}
	g, err := doc.Graph()
	if err != nil {
		return err
	}
	if *source == "" {
		*source = g.VertexNames()[0]
	}

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(*source))
	if err != nil {
		return err
	}

	if *target != "" {
		return printPath(os.Stdout, res, *target)
	}
	printMatrix(os.Stdout, g)
	fmt.Println()
	printList(os.Stdout, g)
	fmt.Println()
	hops, err := bfs.BFS(g, *source)
	if err != nil {
		return err
	}
	tree, err := dfs.DFS(g, *source, dfs.WithFullTraversal())
	if err != nil {
		return err
	}
	printTable(os.Stdout, res, hops, tree)

	return nil
}

func printPath(w io.Writer, res *dijkstra.Result, target string) error {
	path, err := res.PathTo(target)
	if err != nil {
		return err
	}
	if path == nil {
		fmt.Fprintf(w, "%s is unreachable from %s\n", target, res.Source)
		return nil
	}
	fmt.Fprintf(w, "%s (distance %s)\n", strings.Join(path, " -> "), formatWeight(res.Distance(target)))

	return nil
}

func printMatrix(w io.Writer, g *core.Graph) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	names := g.VertexNames()
	fmt.Fprint(tw, "\t")
	for _, n := range names {
		fmt.Fprintf(tw, "%s\t", n)
	}
	fmt.Fprintln(tw)
	for i, row := range g.AdjacencyMatrix() {
		fmt.Fprintf(tw, "%s\t", names[i])
		for _, wt := range row {
			fmt.Fprintf(tw, "%s\t", formatWeight(wt))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

func printList(w io.Writer, g *core.Graph) {
	list := g.AdjacencyList()
	for _, n := range g.VertexNames() {
		parts := make([]string, len(list[n]))
		for i, nb := range list[n] {
			parts[i] = fmt.Sprintf("(%s, %s)", nb.To, formatWeight(nb.Weight))
		}
		fmt.Fprintf(w, "%s: [%s]\n", n, strings.Join(parts, ", "))
	}
}

// printTable writes the Dijkstra table with the BFS hop count and the DFS
// discovery/finish ticks of each vertex alongside its weighted distance.
func printTable(w io.Writer, res *dijkstra.Result, hops *bfs.BFSResult, tree *dfs.DFSResult) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VERTEX\tDISTANCE\tHOPS\tDISC/FIN\tPARENT\tSTATE\tPATH")
	for _, row := range res.Table() {
		parent := row.Parent
		if parent == "" {
			parent = "-"
		}
		hop := "-"
		if d, ok := hops.Depth[row.Vertex]; ok {
			hop = strconv.Itoa(d)
		}
		ticks := "-"
		if d, f, ok := tree.Interval(row.Vertex); ok {
			ticks = fmt.Sprintf("%d/%d", d, f)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Vertex, formatWeight(row.Distance), hop, ticks, parent, row.State, strings.Join(row.Path, " -> "))
	}
	tw.Flush()
}

func formatWeight(f float64) string {
	if math.IsInf(f, 1) {
		return "inf"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func runSort(args []string) error {
	fs := flag.NewFlagSet("sort", flag.ContinueOnError)
	desc := fs.Bool("desc", false, "sort in descending order")
	if err := fs.Parse(args); err != nil {
		return err
	}

	values := make([]float64, 0, fs.NArg())
	for _, a := range fs.Args() {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", a)
		}
		values = append(values, v)
	}

	var sorted []float64
	if *desc {
		sorted = binheap.SortDescending(values)
	} else {
		sorted = binheap.SortAscending(values)
	}
	out := make([]string, len(sorted))
	for i, v := range sorted {
		out[i] = formatWeight(v)
	}
	fmt.Println(strings.Join(out, " "))

	return nil
}

func runSample(args []string) error {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "print JSON instead of YAML")
	if err := fs.Parse(args); err != nil {
		return err
	}
	f := graphio.YAML
	if *asJSON {
		f = graphio.JSON
	}

	return graphio.Encode(os.Stdout, graphio.Sample(), f)
}
