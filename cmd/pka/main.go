package main

import (
	"fmt"
	"os"

	"github.com/davauxjs/project-knowledge-analyzer/internal/config"
	"github.com/davauxjs/project-knowledge-analyzer/internal/core"
	"github.com/davauxjs/project-knowledge-analyzer/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ANSI colors
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[38;5;245m"
	colorGreen = "\033[32m"
)

var (
	version = "0.0.1"
	logger  *zap.Logger
	verbose bool
)

func main() {
	var (
		outputDir   string
		maxFileSize string
		extensions  []string
		exclude     []string
		rulesFile   string
		noGitignore bool
	)

	rootCmd := &cobra.Command{
		Use:   "pka [path]",
		Short: "Project Knowledge Analyzer - flatten a project tree for review and indexing",
		Long: `Walks a project directory, copies every accepted text file into one flat
output directory under a collision-free name, and generates PROJECT_MAP.md
plus project-index.json mapping each flattened file back to its original path.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				printBanner()
				return cmd.Help()
			}
			path := args[0]

			// Initialize logger based on verbose flag
			var err error
			if verbose {
				logger, err = zap.NewDevelopment()
			} else {
				// Silent logger - only errors
				zcfg := zap.Config{
					Level:            zap.NewAtomicLevelAt(zapcore.ErrorLevel),
					Encoding:         "json",
					OutputPaths:      []string{"stderr"},
					ErrorOutputPaths: []string{"stderr"},
					EncoderConfig:    zap.NewProductionEncoderConfig(),
				}
				logger, err = zcfg.Build()
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
				return err
			}
			defer logger.Sync()

			printBanner()
			fmt.Printf("  %sAnalyzing:%s %s\n\n", colorGray, colorReset, path)

			// Load configuration
			cfg, err := config.LoadConfig()
			if err != nil {
				logger.Error("Failed to load config", zap.Error(err))
				return err
			}

			// Override config with CLI flags
			if outputDir != "" {
				cfg.OutputDir = outputDir
			}
			if maxFileSize != "" {
				cfg.MaxSize = maxFileSize
			}
			if len(extensions) > 0 {
				cfg.Extensions = extensions
			}
			if len(exclude) > 0 {
				cfg.Exclude = exclude
			}
			if rulesFile != "" {
				cfg.RulesFile = rulesFile
			}
			if noGitignore {
				cfg.UseGitignore = false
			}

			analyzer := core.NewAnalyzer(cfg, logger)

			// Set up progress callback
			lastPhase := ""
			analyzer.SetProgressCallback(func(phase string, current, total int, message string) {
				// Clear previous line if same phase
				if lastPhase == phase && phase != "counting" {
					fmt.Print("\033[1A\033[K")
				}
				lastPhase = phase

				switch phase {
				case "counting":
					fmt.Printf("  %sCounting files...%s\n", colorGray, colorReset)
				case "scanning":
					if total > 0 {
						fmt.Printf("  %sScanning:%s  [%s] %s%.1f%%%s (%d/%d)\n",
							colorGray, colorReset, progressBar(current, total),
							colorCyan, pct(current, total), colorReset, current, total)
					}
				case "writing":
					if total > 0 {
						fmt.Printf("  %sWriting:%s   [%s] %s%.1f%%%s (%d/%d)\n",
							colorGray, colorReset, progressBar(current, total),
							colorCyan, pct(current, total), colorReset, current, total)
					}
				case "documenting":
					fmt.Printf("  %sGenerating documentation...%s\n", colorGray, colorReset)
				case "done":
					fmt.Printf("  %s✓ Done%s\n", colorGreen, colorReset)
				}
			})

			result, err := analyzer.Run(path)
			if err != nil {
				logger.Error("Analysis failed", zap.Error(err))
				return err
			}

			report.PrintConsole(result)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Output directory for flattened files (default: ./project-knowledge)")
	rootCmd.Flags().StringVar(&maxFileSize, "max-file-size", "", "Maximum file size to accept, e.g. 650K, 1M (default: 1M)")
	rootCmd.Flags().StringSliceVar(&extensions, "extensions", nil, "File extensions to accept (comma-separated, replaces defaults)")
	rootCmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Directory names to exclude (comma-separated, replaces defaults)")
	rootCmd.Flags().StringVar(&rulesFile, "rules", "", "YAML rules file with extra filter rules")
	rootCmd.Flags().BoolVar(&noGitignore, "no-gitignore", false, "Do not honor .gitignore / .pkaignore files")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printBanner prints the startup banner
func printBanner() {
	fmt.Println()
	fmt.Printf("%s%sProject Knowledge Analyzer%s %sv%s%s\n", colorBold, colorCyan, colorReset, colorGray, version, colorReset)
	fmt.Println()
}

// progressBar renders a fixed-width text progress bar
func progressBar(current, total int) string {
	const width = 30
	filled := 0
	if total > 0 {
		filled = width * current / total
	}
	if filled > width {
		filled = width
	}
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

// pct returns current/total as a percentage
func pct(current, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(current) / float64(total) * 100
}
