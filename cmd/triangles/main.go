package main

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/triangles3d/internal/config"
	"github.com/lukaszgryglicki/triangles3d/internal/scene"
)

func main() {
	scene.Debug = os.Getenv("DEBUG") != ""
	scene.UseLocks = os.Getenv("SKIP_LOCKS") == ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		cfgPath   string
		logLevel  string
		workers   int
		bvhStats  bool
		withPairs bool
	)
	cmd := &cobra.Command{
		Use:   "triangles [input]",
		Short: "print indices of intersecting triangles",
		Long: "reads N followed by N triangles of nine coordinates each (from a file or stdin)\n" +
			"and prints, one per line, the index of every triangle that intersects another",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if scene.Debug && !cmd.Flags().Changed("log-level") {
				logLevel = "debug"
			}
			if err := config.SetLevel(logLevel); err != nil {
				return err
			}

			cfg := config.Default()
			if cfgPath != "" {
				var err error
				if cfg, err = config.Load(cfgPath); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("workers") && workers > 0 {
				cfg.Workers = workers
			}
			if cmd.Flags().Changed("bvh-stats") {
				cfg.BVHStats = bvhStats
			}
			if cmd.Flags().Changed("pairs") {
				cfg.PrintPairs = withPairs
			}

			var in io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return scene.Run(cfg, in, os.Stdout)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&cfgPath, "config", "c", "", "JSON config file")
	fl.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fl.IntVarP(&workers, "workers", "w", 0, "parallel workers (default: number of CPUs)")
	fl.BoolVar(&bvhStats, "bvh-stats", false, "build a BVH over the input and log its statistics")
	fl.BoolVar(&withPairs, "pairs", false, "print the intersecting pair count before the indices")
	return cmd
}
