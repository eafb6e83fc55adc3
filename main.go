package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"diagrammer/internal/diagram"
)

var (
	// Global flags
	configPath string
	logFile    string
	verbose    bool

	// Export flags
	exportPNG    string
	exportTXT    string
	exportWidth  int
	exportHeight int

	logger *zap.Logger
	cfg    *Config
)

var rootCmd = &cobra.Command{
	Use:   "diagrammer [file]",
	Short: "Terminal editor for figures and the connections between them",
	Long: `diagrammer draws rectangles, triangles and ellipses on a terminal canvas
and connects them center to center. Diagrams are stored as plain text.

Run with a file name to open it, or to start a new diagram bound to that name.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = LoadConfig(configPath)
		if err != nil {
			return err
		}
		path := logFile
		if path == "" {
			path = cfg.LogFile
		}
		logger, err = newLogger(path, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runEditor,
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Render a diagram to PNG or to its visual text layout",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var graphCmd = &cobra.Command{
	Use:   "graph <file>",
	Short: "Print which figures each figure is connected to",
	Args:  cobra.ExactArgs(1),
	RunE:  runGraph,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", DefaultConfigPath(), "Config file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write JSON logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	exportCmd.Flags().StringVar(&exportPNG, "png", "", "Write a PNG image to this path")
	exportCmd.Flags().StringVar(&exportTXT, "txt", "", "Write the visual text layout to this path")
	exportCmd.Flags().IntVar(&exportWidth, "width", 120, "Visual text width in cells")
	exportCmd.Flags().IntVar(&exportHeight, "height", 40, "Visual text height in cells")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(graphCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runEditor(cmd *cobra.Command, args []string) error {
	m := newModel(cfg, logger)
	if len(args) == 1 {
		if err := m.openInitial(args[0]); err != nil {
			return err
		}
	}
	defer m.shutdown()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if fm, ok := final.(model); ok {
		// the watcher may have been replaced after a save-as
		fm.shutdown()
	}
	return err
}

func loadDiagram(path string) (*diagram.Diagram, error) {
	d := diagram.New()
	err := d.LoadFile(path, func(line int, reason string) {
		logger.Warn("skipped diagram line",
			zap.String("source", path), zap.Int("line", line), zap.String("reason", reason))
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportPNG == "" && exportTXT == "" {
		return errors.New("nothing to do: pass --png and/or --txt")
	}
	d, err := loadDiagram(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if exportPNG != "" {
		if err := exportPNGFile(d, exportPNG); err != nil {
			return fmt.Errorf("export png: %w", err)
		}
		fmt.Fprintf(out, "wrote %s\n", exportPNG)
	}
	if exportTXT != "" {
		// Start the viewport at the diagram's top-left corner.
		pan := diagram.Point{}
		if bounds, ok := d.Bounds(); ok {
			pan = diagram.Point{X: min(bounds.X, 0), Y: min(bounds.Y, 0)}
		}
		if err := exportVisualTXTFile(d, newShapeCache(64), exportTXT, exportWidth, exportHeight, pan); err != nil {
			return fmt.Errorf("export txt: %w", err)
		}
		fmt.Fprintf(out, "wrote %s\n", exportTXT)
	}
	logger.Info("headless export", zap.String("source", args[0]),
		zap.String("png", exportPNG), zap.String("txt", exportTXT))
	return nil
}

func runGraph(cmd *cobra.Command, args []string) error {
	d, err := loadDiagram(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, line := range formatGraph(d)[1:] {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
