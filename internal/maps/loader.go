package maps

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileExt is the extension of level files.
const FileExt = ".txt"

// ErrMalformed is wrapped by every parse error.
var ErrMalformed = errors.New("malformed level file")

// Parse reads the level-file format: a "width:height" line followed by
// width*height whitespace-separated cell bytes, row by row. Anything after
// the last cell is ignored. Once the grid is filled, spawner (if not nil)
// discovers the monsters it marks.
func Parse(r io.Reader, spawner MonsterSpawner) (*Map, error) {
	br := bufio.NewReader(r)

	header, err := br.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && header != "") {
		return nil, fmt.Errorf("%w: read header: %v", ErrMalformed, err)
	}
	width, height, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	m := New(width, height)
	m.SetSpawner(spawner)

	sc := bufio.NewScanner(br)
	sc.Split(bufio.ScanWords)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return nil, fmt.Errorf("read cell (%d,%d): %w", x, y, err)
				}
				return nil, fmt.Errorf("%w: got %d of %d cells", ErrMalformed, x+width*y, width*height)
			}
			v, err := strconv.Atoi(sc.Text())
			if err != nil || v < 0 || v > 255 {
				return nil, fmt.Errorf("%w: cell (%d,%d) = %q is not a byte", ErrMalformed, x, y, sc.Text())
			}
			m.SetCellType(x, y, byte(v))
		}
	}

	if spawner != nil {
		spawner.MonstersFromMap(m)
	}
	return m, nil
}

func parseHeader(line string) (int, int, error) {
	w, h, ok := strings.Cut(strings.TrimSpace(line), ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: header %q is not width:height", ErrMalformed, line)
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: width %q: %v", ErrMalformed, w, err)
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: height %q: %v", ErrMalformed, h, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: dimensions %dx%d", ErrMalformed, width, height)
	}
	return width, height, nil
}

// LoadMap reads a level file from disk. The map is named after the file.
func LoadMap(path string, spawner MonsterSpawner) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open level file: %w", err)
	}
	defer f.Close()

	m, err := Parse(f, spawner)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return m, nil
}

// LoadMaps loads every level file in dir, indexed by Name.
func LoadMaps(dir string, spawner MonsterSpawner) (map[string]*Map, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read level directory: %w", err)
	}

	all := make(map[string]*Map)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), FileExt) {
			continue
		}
		m, err := LoadMap(filepath.Join(dir, entry.Name()), spawner)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", entry.Name(), err)
		}
		all[m.Name] = m
	}
	return all, nil
}

// WriteTo writes the grid in the level-file format. Bombs and monsters are
// not written.
func (m *Map) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	sb.Grow(8 + m.width*m.height*4)

	fmt.Fprintf(&sb, "%d:%d\n", m.width, m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(int(m.RawCell(x, y))))
		}
		sb.WriteByte('\n')
	}

	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// Save writes the map to path.
func (m *Map) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create level file: %w", err)
	}
	if _, err := m.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write level file: %w", err)
	}
	return f.Close()
}
