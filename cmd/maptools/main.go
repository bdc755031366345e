package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"bomb-grid/internal/cell"
	"bomb-grid/internal/level"
	"bomb-grid/internal/logger"
	"bomb-grid/internal/maps"
	"bomb-grid/internal/render"
)

func main() {
	logger.Init()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "validate":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: maptools validate <levels-dir>")
			os.Exit(1)
		}
		os.Exit(runValidate(args[0]))
	case "viz":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: maptools viz <map-file>")
			os.Exit(1)
		}
		os.Exit(runViz(args[0]))
	case "stats":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: maptools stats <map-file>")
			os.Exit(1)
		}
		os.Exit(runStats(args[0]))
	case "all":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: maptools all <levels-dir>")
			os.Exit(1)
		}
		os.Exit(runAll(args[0]))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: maptools <command> <path>

Commands:
  validate <levels-dir>  Load every level and check its maps
  viz      <map-file>    Render a map as coloured text
  stats    <map-file>    Show the cell type distribution
  all      <levels-dir>  Run validate + viz + stats for all maps`)
}

// --- validate ---

func runValidate(dir string) int {
	reg, err := level.LoadRegistry(dir, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		return 1
	}
	defer reg.Close()

	errors, warnings := 0, 0
	for _, n := range reg.Numbers() {
		l, _ := reg.Level(n)
		for i := 0; i < l.MapCount(); i++ {
			m := l.Map(i)
			fmt.Printf("Validating level %d map %d (%s)...\n", n, i, m.Name)

			problems := checkMap(m, i == l.MapCount()-1)
			for _, p := range problems {
				fmt.Printf("  %s\n", p)
				if p.fatal {
					errors++
				} else {
					warnings++
				}
			}
			if len(problems) == 0 {
				fmt.Printf("  OK (%dx%d, %d monsters)\n", m.Width(), m.Height(), m.Count(cell.TypeMonster))
			}
		}
	}

	if errors > 0 {
		fmt.Printf("\n%d error(s), %d warning(s)\n", errors, warnings)
		return 1
	}
	fmt.Printf("\nAll %d level(s) valid, %d warning(s)\n", reg.Len(), warnings)
	return 0
}

// --- viz ---

// vizCell returns the character and colour a cell is drawn with.
func vizCell(c cell.Cell) (string, [3]uint8) {
	switch c := c.(type) {
	case cell.Empty:
		return ".", [3]uint8{70, 80, 70}
	case cell.Scenery:
		if c.Kind == cell.SceneryTree {
			return "T", [3]uint8{40, 170, 40}
		}
		return "#", [3]uint8{150, 150, 160}
	case cell.Box:
		return "x", [3]uint8{170, 120, 50}
	case cell.Bonus:
		return "+", [3]uint8{90, 160, 250}
	case cell.Key:
		return "k", [3]uint8{240, 210, 60}
	case cell.Goal:
		return "G", [3]uint8{230, 60, 50}
	case cell.Door:
		if c.Open {
			return "/", [3]uint8{110, 75, 30}
		}
		return "D", [3]uint8{150, 100, 45}
	case cell.MonsterMarker:
		return "M", [3]uint8{200, 60, 220}
	}
	return "?", [3]uint8{255, 0, 255}
}

func runViz(path string) int {
	m, err := maps.LoadMap(path, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("%s (%dx%d)\n", m.Name, m.Width(), m.Height())

	for y := 0; y < m.Height(); y++ {
		var sb strings.Builder
		for x := 0; x < m.Width(); x++ {
			ch, c := vizCell(m.Cell(x, y))
			sb.WriteString(render.Colorize(ch, c[0], c[1], c[2]))
		}
		fmt.Println(sb.String())
	}
	return 0
}

// --- stats ---

func runStats(path string) int {
	m, err := maps.LoadMap(path, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	total := m.Width() * m.Height()
	fmt.Printf("%s (%dx%d = %d cells)\n\n", m.Name, m.Width(), m.Height(), total)

	type entry struct {
		name  string
		count int
	}
	var sorted []entry
	for t := cell.TypeEmpty; t <= cell.TypeMonster; t++ {
		if n := m.Count(t); n > 0 {
			sorted = append(sorted, entry{t.String(), n})
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].count > sorted[j].count })

	for _, e := range sorted {
		pct := float64(e.count) / float64(total) * 100
		bar := strings.Repeat("█", int(pct/2))
		fmt.Printf("  %-8s %4d (%5.1f%%) %s\n", e.name, e.count, pct, bar)
	}

	breakable := m.Count(cell.TypeCase)
	fmt.Printf("\nBreakable: %d (about %.1f monster spawns, %.1f bonuses)\n",
		breakable, float64(breakable)*5/99, float64(breakable)*65/99)
	return 0
}

// --- all ---

func runAll(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading directory: %v\n", err)
		return 1
	}

	fmt.Println("=== VALIDATE ===")
	if code := runValidate(dir); code != 0 {
		return code
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != maps.FileExt {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		fmt.Printf("\n=== VIZ: %s ===\n", entry.Name())
		runViz(path)
		fmt.Printf("\n=== STATS: %s ===\n", entry.Name())
		runStats(path)
	}

	return 0
}
