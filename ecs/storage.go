package ecs

// entityStore tracks entity generations and free ids. Ids start at 1.
type entityStore struct {
	gen   []int
	alive []bool
	free  []int
	live  int
}

func (s *entityStore) create() Entity {
	var id int
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gen = append(s.gen, 0)
		s.alive = append(s.alive, false)
		id = len(s.gen)
	}
	s.alive[id-1] = true
	s.live++
	return Entity{ID: id, Gen: s.gen[id-1]}
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	s.gen[e.ID-1]++
	s.alive[e.ID-1] = false
	s.free = append(s.free, e.ID)
	s.live--
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	if e.ID <= 0 || e.ID > len(s.gen) {
		return false
	}
	return s.alive[e.ID-1] && s.gen[e.ID-1] == e.Gen
}

// current returns the live handle for id.
func (s *entityStore) current(id int) (Entity, bool) {
	if id <= 0 || id > len(s.gen) || !s.alive[id-1] {
		return Entity{}, false
	}
	return Entity{ID: id, Gen: s.gen[id-1]}, true
}
