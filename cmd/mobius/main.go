package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/mobius/internal/analysis"
	"github.com/san-kum/mobius/internal/config"
	"github.com/san-kum/mobius/internal/export"
	"github.com/san-kum/mobius/internal/geometry"
	"github.com/san-kum/mobius/internal/storage"
	"github.com/san-kum/mobius/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	radius     float64
	width      float64
	resolution int
	configFile string
	preset     string
	// Render options
	wireframe bool
	surface   bool
	colormap  string
	// Misc command flags
	saveRecord bool
	outFile    string
	svgScale   float64
	ladderLo   int
	ladderHi   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mobius",
		Short: "möbius strip geometry lab",
		Long:  "Computes surface area and edge length of a discretized Möbius strip\nand renders the mesh in the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default action: print the two scalars, then open the viewer.
			strip, cfg, err := buildStrip(cmd)
			if err != nil {
				return err
			}
			printScalars(strip)
			return viz.Run(strip, renderOptions(cfg))
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".mobius", "data directory")
	addStripFlags(rootCmd)

	computeCmd := &cobra.Command{
		Use:   "compute",
		Short: "compute surface area and edge length",
		RunE:  runCompute,
	}
	addStripFlags(computeCmd)
	computeCmd.Flags().BoolVar(&saveRecord, "save", false, "save the result as a record")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "interactive 3D viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			strip, cfg, err := buildStrip(cmd)
			if err != nil {
				return err
			}
			return viz.Run(strip, renderOptions(cfg))
		},
	}
	addStripFlags(viewCmd)
	addRenderFlags(viewCmd)

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "terminal plots of the boundary curve and area integrand",
		RunE:  runPlot,
	}
	addStripFlags(plotCmd)

	convergenceCmd := &cobra.Command{
		Use:   "convergence",
		Short: "surface area across a resolution ladder",
		RunE:  runConvergence,
	}
	addStripFlags(convergenceCmd)
	convergenceCmd.Flags().IntVar(&ladderLo, "from", 25, "starting resolution")
	convergenceCmd.Flags().IntVar(&ladderHi, "to", 400, "final resolution")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved records",
		RunE:  runList,
	}

	showCmd := &cobra.Command{
		Use:   "show [record_id]",
		Short: "show a saved record",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [record_id]",
		Short: "write the mesh as CSV to stdout",
		Long:  "Without an argument the mesh is computed from flags; with a record id\nthe saved mesh is replayed from the data directory.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExportCSV,
	}
	addStripFlags(exportCSVCmd)

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "write parameters, scalars, grid and mesh as JSON to stdout",
		RunE:  runExportJSON,
	}
	addStripFlags(exportJSONCmd)

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "render one frame to an SVG file",
		RunE:  runExportSVG,
	}
	addStripFlags(exportSVGCmd)
	addRenderFlags(exportSVGCmd)
	exportSVGCmd.Flags().StringVar(&outFile, "out", "mobius.svg", "output path")
	exportSVGCmd.Flags().Float64Var(&svgScale, "scale", 4, "pixels per braille dot")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Printf("  %-10s R=%g w=%g n=%d\n", name, p.Radius, p.Width, p.Resolution)
			}
		},
	}

	rootCmd.AddCommand(computeCmd, viewCmd, plotCmd, convergenceCmd, listCmd, showCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addStripFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&radius, "radius", config.DefaultRadius, "strip radius R")
	cmd.Flags().Float64Var(&width, "width", config.DefaultWidth, "strip width w")
	cmd.Flags().IntVar(&resolution, "resolution", config.DefaultResolution, "mesh resolution n")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&wireframe, "wireframe", true, "draw the wireframe")
	cmd.Flags().BoolVar(&surface, "surface", true, "draw shaded surface points")
	cmd.Flags().StringVar(&colormap, "colormap", config.DefaultColormap, "surface colormap")
}

// resolveConfig merges defaults, preset, config file and changed CLI flags,
// in that order of increasing precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("radius") {
		cfg.Radius = radius
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("resolution") {
		cfg.Resolution = resolution
	}
	if cmd.Flags().Changed("wireframe") {
		cfg.Render.Wireframe = wireframe
	}
	if cmd.Flags().Changed("surface") {
		cfg.Render.Surface = surface
	}
	if cmd.Flags().Changed("colormap") {
		cfg.Render.Colormap = colormap
	}

	return cfg, nil
}

func buildStrip(cmd *cobra.Command) (*geometry.Strip, *config.Config, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	strip, err := geometry.New(geometry.Params{
		Radius:     cfg.Radius,
		Width:      cfg.Width,
		Resolution: cfg.Resolution,
	})
	if err != nil {
		return nil, nil, err
	}
	return strip, cfg, nil
}

func renderOptions(cfg *config.Config) viz.Options {
	return viz.Options{
		ShowWireframe: cfg.Render.Wireframe,
		ShowSurface:   cfg.Render.Surface,
		Colormap:      cfg.Render.Colormap,
	}
}

func printScalars(strip *geometry.Strip) {
	p := strip.Params()
	fmt.Printf("möbius strip R=%g w=%g n=%d\n", p.Radius, p.Width, p.Resolution)
	fmt.Printf("surface area (approx): %.4f\n", strip.SurfaceArea())
	fmt.Printf("edge length  (approx): %.4f\n", strip.EdgeLength())
}

func runCompute(cmd *cobra.Command, args []string) error {
	strip, _, err := buildStrip(cmd)
	if err != nil {
		return err
	}

	area := strip.SurfaceArea()
	edge := strip.EdgeLength()

	printScalars(strip)

	if saveRecord {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(strip, area, edge)
		if err != nil {
			return err
		}
		fmt.Printf("record id: %s\n", id)
	}

	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	strip, _, err := buildStrip(cmd)
	if err != nil {
		return err
	}

	_, _, zs := analysis.EdgeCurve(strip)
	fmt.Println(asciigraph.Plot(zs,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("edge curve height z(u) at v=w/2"),
	))
	fmt.Println()

	p := strip.Params()
	center := analysis.AreaIntegrandProfile(strip, 0)
	rim := analysis.AreaIntegrandProfile(strip, p.Width/2)
	fmt.Println(asciigraph.PlotMany([][]float64{center, rim},
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("area integrand ‖ru × rv‖ along u (centerline, outer rim)"),
	))

	return nil
}

func runConvergence(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	refs, err := analysis.Convergence(cfg.Radius, cfg.Width, analysis.ResolutionLadder(ladderLo, ladderHi))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tAREA\tDELTA\tEDGE")
	areas := make([]float64, len(refs))
	for i, r := range refs {
		delta := "-"
		if i > 0 {
			delta = strconv.FormatFloat(r.AreaDelta, 'e', 2, 64)
		}
		fmt.Fprintf(w, "%d\t%.6f\t%s\t%.6f\n", r.Resolution, r.Area, delta, r.EdgeLength)
		areas[i] = r.Area
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(areas,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Caption("surface area vs refinement step"),
	))

	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	recs, err := st.List()
	if err != nil {
		return err
	}

	if len(recs) == 0 {
		fmt.Println("no records found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tR\tW\tN\tAREA\tEDGE")
	for _, r := range recs {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%d\t%.4f\t%.4f\n",
			r.ID,
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Radius,
			r.Width,
			r.Resolution,
			r.SurfaceArea,
			r.EdgeLength,
		)
	}

	return w.Flush()
}

func runShow(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	rec, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		st := storage.New(dataDir)
		points, err := st.LoadMesh(args[0])
		if err != nil {
			return err
		}
		fmt.Println("row,col,u,v,x,y,z")
		for _, p := range points {
			fmt.Printf("%d,%d,%f,%f,%f,%f,%f\n", p.Row, p.Col, p.U, p.V, p.X, p.Y, p.Z)
		}
		return nil
	}

	strip, _, err := buildStrip(cmd)
	if err != nil {
		return err
	}
	return storage.WriteMeshCSV(os.Stdout, strip)
}

func runExportJSON(cmd *cobra.Command, args []string) error {
	strip, _, err := buildStrip(cmd)
	if err != nil {
		return err
	}
	return export.WriteJSON(os.Stdout, strip, strip.SurfaceArea(), strip.EdgeLength())
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	strip, cfg, err := buildStrip(cmd)
	if err != nil {
		return err
	}

	cam := viz.NewCamera()
	cam.FitMesh(strip.Mesh())
	canvas := viz.RenderFrame(strip, renderOptions(cfg), cam, 100, 36)

	svg := export.CanvasToSVG(canvas, svgScale)
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}
