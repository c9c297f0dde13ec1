package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"arbor/pkg/config"
	"arbor/pkg/listing"
	"arbor/pkg/progress"
	"arbor/pkg/render"
	"arbor/pkg/tree"
)

func main() {
	if len(os.Args) < 3 {
		printUsage()
		os.Exit(1)
	}

	operation := os.Args[1]
	switch operation {
	case "structure":
		if err := handleStructure(); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "time":
		if err := handleTime(); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "scan":
		if err := handleScan(); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "config":
		if err := handleConfig(); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	default:
		fmt.Println("Invalid operation:", operation)
		printUsage()
		os.Exit(1)
	}
}

// printUsage prints the command-line usage information
func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  ./arbor structure listing... [-c config.ini]")
	fmt.Println("  ./arbor time listing... [-c config.ini]")
	fmt.Println("  ./arbor scan directory [listing]")
	fmt.Println("  ./arbor config get section.key")
	fmt.Println("  ./arbor config set section.key value")
}

// splitArgs separates listing paths from the optional -c config flag
func splitArgs(args []string) ([]string, string, error) {
	var listings []string
	configPath := config.DefaultFile
	for i := 0; i < len(args); i++ {
		if args[i] == "-c" {
			if i+1 >= len(args) {
				return nil, "", fmt.Errorf("flag -c needs a config path")
			}
			configPath = args[i+1]
			i++
			continue
		}
		listings = append(listings, args[i])
	}
	if len(listings) == 0 {
		return nil, "", fmt.Errorf("no listings given")
	}
	return listings, configPath, nil
}

// handleStructure builds and renders a tree for every listing
func handleStructure() error {
	listings, configPath, err := splitArgs(os.Args[2:])
	if err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	strat, err := cfg.Strategy()
	if err != nil {
		return err
	}

	if cfg.Progress {
		progress.Init()
		defer progress.Stop()
	}
	if len(listings) > 1 {
		fmt.Printf("Building %d listings on %d CPU cores\n", len(listings), runtime.NumCPU())
	}

	// Each listing builds into its own buffer; results print in argument
	// order once every build is done.
	outputs := make([]bytes.Buffer, len(listings))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range listings {
		i, path := i, path
		g.Go(func() error {
			return buildOne(&outputs[i], path, strat, cfg)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i := range outputs {
		os.Stdout.Write(outputs[i].Bytes())
	}
	return nil
}

// buildOne reads one listing and renders its tree into out
func buildOne(out *bytes.Buffer, path string, strat tree.Strategy, cfg *config.Config) error {
	r, err := listing.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	records, err := r.ReadAll()
	if err != nil {
		return err
	}
	entries := listing.TreeEntries(records)

	roots, err := buildForest(entries, strat, cfg)
	if err != nil {
		return fmt.Errorf("build %s: %w", path, err)
	}

	mode := strat.String() + " strategy"
	if cfg.Indexed {
		mode = "indexed"
	}
	fmt.Fprintf(out, "%s (%s)\n", path, mode)
	if err := render.Tree(out, roots); err != nil {
		return err
	}
	if cfg.Stats {
		fmt.Fprintln(out, render.Collect(roots))
	}
	fmt.Fprintln(out)
	return nil
}

// buildForest runs the configured builder over the entries
func buildForest(entries []tree.Entry, strat tree.Strategy, cfg *config.Config) ([]*tree.Node, error) {
	if cfg.Indexed {
		b := &tree.IndexedBuilder{RequireDeclaredAncestors: cfg.RequireDeclared}
		root, err := b.Build(entries)
		if err != nil {
			return nil, err
		}
		return root.Children(), nil
	}
	b := &tree.Builder{Strategy: strat}
	return b.Build(entries)
}

// handleTime reports phase timings for every listing
func handleTime() error {
	listings, configPath, err := splitArgs(os.Args[2:])
	if err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	strat, err := cfg.Strategy()
	if err != nil {
		return err
	}

	// Timings run sequentially so the phases never share the CPU.
	for _, path := range listings {
		if err := timeOne(path, strat, cfg); err != nil {
			return err
		}
	}
	return nil
}

// timeOne measures the read, sort and structure phases of one build
func timeOne(path string, strat tree.Strategy, cfg *config.Config) error {
	watch := progress.NewStopwatch()

	r, err := listing.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()
	records, err := r.ReadAll()
	if err != nil {
		return err
	}
	entries := listing.TreeEntries(records)
	watch.Mark("read")

	tree.SortByPath(entries)
	watch.Mark("sort")

	var roots []*tree.Node
	if cfg.Indexed {
		b := &tree.IndexedBuilder{RequireDeclaredAncestors: cfg.RequireDeclared}
		root, err := b.BuildSorted(entries)
		if err != nil {
			return fmt.Errorf("build %s: %w", path, err)
		}
		roots = root.Children()
	} else {
		b := &tree.Builder{Strategy: strat}
		roots, err = b.BuildSorted(entries)
		if err != nil {
			return fmt.Errorf("build %s: %w", path, err)
		}
	}
	watch.Mark("structure")

	fmt.Printf("%s: %d entries\n", path, len(entries))
	watch.Report(os.Stdout)
	fmt.Println(render.Collect(roots))
	return nil
}

// handleScan writes a listing that mirrors a directory tree
func handleScan() error {
	if len(os.Args) != 3 && len(os.Args) != 4 {
		fmt.Println("Usage: ./arbor scan directory [listing]")
		os.Exit(1)
	}

	root := os.Args[2]
	output := scanOutputPath(root)

	records, err := listing.Scan(root)
	if err != nil {
		return err
	}
	w, err := listing.Create(output)
	if err != nil {
		return err
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			w.Close()
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	fmt.Printf("Wrote %d entries to %s\n", len(records), output)
	return nil
}

// scanOutputPath determines the listing path for a scan
func scanOutputPath(root string) string {
	// If output is provided as an argument, use it
	if len(os.Args) == 4 {
		return os.Args[3]
	}

	// Otherwise, use the directory name + .jsonl extension
	autoName := filepath.Base(root) + ".jsonl"
	if _, err := os.Stat(autoName); os.IsNotExist(err) {
		return autoName
	}

	// Default fallback
	return "listing.jsonl"
}

// handleConfig reads or updates the settings file
func handleConfig() error {
	args := os.Args[2:]
	if len(args) < 2 {
		fmt.Println("Usage: ./arbor config get section.key | set section.key value")
		os.Exit(1)
	}

	switch args[0] {
	case "get":
		value, err := config.Get(config.DefaultFile, args[1])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	case "set":
		if len(args) != 3 {
			fmt.Println("Usage: ./arbor config set section.key value")
			os.Exit(1)
		}
		return config.Set(config.DefaultFile, args[1], args[2])
	}
	return fmt.Errorf("unknown config action %q", args[0])
}
