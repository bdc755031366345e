package level

import (
	"fmt"
	"sort"

	"bomb-grid/internal/maps"
)

// Registry owns every loaded level until Close.
type Registry struct {
	levels map[int]*Level
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{levels: make(map[int]*Level)}
}

// Add registers l, replacing any level with the same number.
func (r *Registry) Add(l *Level) {
	r.levels[l.Number()] = l
}

// Level returns level n.
func (r *Registry) Level(n int) (*Level, bool) {
	l, ok := r.levels[n]
	return l, ok
}

// Numbers returns the registered level numbers in ascending order.
func (r *Registry) Numbers() []int {
	out := make([]int, 0, len(r.levels))
	for n := range r.levels {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Len returns the number of levels.
func (r *Registry) Len() int { return len(r.levels) }

// Close frees every level and empties the registry.
func (r *Registry) Close() {
	for n, l := range r.levels {
		l.Free()
		delete(r.levels, n)
	}
}

// FileName returns the level-file name for map index of level n.
func FileName(n, index int) string {
	return fmt.Sprintf("map_%d_%d%s", n, index, maps.FileExt)
}

// LoadRegistry loads every map_<level>_<index> file in dir. Map indexes of
// a level must run from 0 without gaps.
func LoadRegistry(dir string, spawner maps.MonsterSpawner) (*Registry, error) {
	all, err := maps.LoadMaps(dir, spawner)
	if err != nil {
		return nil, err
	}

	grouped := make(map[int]map[int]*maps.Map)
	for name, m := range all {
		var n, index int
		if _, err := fmt.Sscanf(name, "map_%d_%d", &n, &index); err != nil || name != fmt.Sprintf("map_%d_%d", n, index) {
			continue
		}
		if grouped[n] == nil {
			grouped[n] = make(map[int]*maps.Map)
		}
		grouped[n][index] = m
	}
	if len(grouped) == 0 {
		return nil, fmt.Errorf("no level files in %s", dir)
	}

	reg := NewRegistry()
	for n, byIndex := range grouped {
		ms := make([]*maps.Map, len(byIndex))
		for index, m := range byIndex {
			if index < 0 || index >= len(ms) {
				return nil, fmt.Errorf("level %d: map indexes are not contiguous from 0 (found %d of %d)", n, index, len(ms))
			}
			ms[index] = m
		}
		reg.Add(New(n, ms))
	}
	return reg, nil
}
