// Command clipat is a thin CLI wrapper around the library: it reads a
// help document, compiles it, matches the remaining arguments against
// it, and prints the resolved bindings — exercising Compile/Match
// exactly as any other caller would (spec.md §1's "out of scope" CLI
// collaborator).
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/arghelp/clipat"
	"github.com/arghelp/clipat/internal/assemble"
	"github.com/arghelp/clipat/internal/cache"
	"github.com/arghelp/clipat/internal/lexer"
)

func main() {
	var (
		docPath     string
		useCache    bool
		watch       string
		noColor     bool
		validate    bool
		showHelp    bool
		versionText string
	)

	rootCmd := &cobra.Command{
		Use:           "clipat [flags] -- [args...]",
		Short:         "Parse argv against a docopt-style help document",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			docBytes, err := os.ReadFile(docPath)
			if err != nil {
				return fmt.Errorf("read doc: %w", err)
			}
			doc := string(docBytes)

			if watch != "" {
				return runWatch(watch, args, showHelp, versionText, validate)
			}

			return runOnce(doc, args, useCache, showHelp, versionText, validate)
		},
	}

	rootCmd.Flags().StringVar(&docPath, "doc", "", "path to the help document (required)")
	rootCmd.Flags().BoolVar(&useCache, "cache", false, "cache the compiled pattern under the user cache directory")
	rootCmd.Flags().StringVar(&watch, "watch", "", "re-parse FILE and reprint bindings whenever it changes")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output (unused by the plain-text printer below)")
	rootCmd.Flags().BoolVar(&validate, "validate", false, "validate the result against the result JSON Schema before printing")
	rootCmd.Flags().BoolVar(&showHelp, "help-shortcut", true, "honor -h/--help inside the parsed argv: print doc and exit before matching")
	rootCmd.Flags().StringVar(&versionText, "version-shortcut", "", "version string to print when argv requests --version (shortcut disabled when empty)")
	_ = rootCmd.MarkFlagRequired("doc")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runOnce(doc string, args []string, useCache bool, help bool, version string, validate bool) error {
	pattern, err := compileWithCache(doc, useCache)
	if err != nil {
		return err
	}

	out, err := pattern.Extras(args, help, version, doc)
	if err != nil {
		return err
	}
	if out != "" {
		fmt.Println(out)
		return nil
	}

	result, err := pattern.Match(args)
	if err != nil {
		return err
	}

	return printResult(result, validate)
}

func compileWithCache(doc string, useCache bool) (*clipat.Pattern, error) {
	if !useCache {
		return clipat.Compile(doc)
	}
	dir, err := cache.Dir()
	if err != nil {
		return clipat.Compile(doc)
	}

	if graph, cat, ok, err := cache.Load(dir, doc); err == nil && ok {
		usage, err := lexer.ExtractUsage(doc)
		if err != nil {
			return nil, err
		}
		return clipat.FromCompiled(graph, cat, usage), nil
	}

	p, err := clipat.Compile(doc)
	if err != nil {
		return nil, err
	}
	if err := cache.Store(dir, doc, p.Graph(), p.CatalogSnapshot()); err != nil {
		fmt.Fprintln(os.Stderr, "cache: store failed:", err)
	}
	return p, nil
}

func runWatch(path string, args []string, help bool, version string, validate bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	reprint := func() {
		docBytes, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "watch: read:", err)
			return
		}
		result, out, err := clipat.Parse(string(docBytes), args, help, version)
		if err != nil {
			fmt.Fprintln(os.Stderr, "watch: parse:", err)
			return
		}
		if out != "" {
			fmt.Println(out)
			return
		}
		if err := printResult(result, validate); err != nil {
			fmt.Fprintln(os.Stderr, "watch: print:", err)
		}
	}

	reprint()
	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watch: add %s: %w", path, err)
	}

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				reprint()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, "watch:", err)
		}
	}
}

func printResult(result clipat.Result, validate bool) error {
	plain := assemble.ToInterfaceMap(result)

	if validate {
		if err := assemble.Validate(plain); err != nil {
			return fmt.Errorf("result failed schema validation: %w", err)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(plain)
}
