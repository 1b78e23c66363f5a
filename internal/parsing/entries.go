package parsing

// entryKind describes how one list section (work, education, projects) is segmented.
type entryKind[E any] struct {
	keywords []string
	// open starts a new entry at lines[i]. It returns the entry and the number of
	// following lines it consumed while peeking for secondary fields.
	open func(lines []string, i int) (E, int)
	// primary returns the field that proves the entry exists.
	primary func(e *E) string
	// describe appends a description bullet.
	describe func(e *E, text string)
}

// entryFold is the segmentation state: entries already emitted and the one being built.
type entryFold[E any] struct {
	emitted []E
	current *E
	done    bool
}

// flush emits the current entry when it has a primary field.
func (f entryFold[E]) flush(kind entryKind[E]) entryFold[E] {
	if f.current != nil && kind.primary(f.current) != "" {
		f.emitted = append(f.emitted, *f.current)
	}
	f.current = nil
	return f
}

// step applies one classified line to the fold.
func (f entryFold[E]) step(kind entryKind[E], line string, boundary, bullet bool, begin func() E) entryFold[E] {
	switch {
	case boundary:
		f = f.flush(kind)
		f.done = true
	case !bullet:
		f = f.flush(kind)
		e := begin()
		f.current = &e
	case f.current != nil:
		kind.describe(f.current, StripBullet(line))
	}
	return f
}

// segmentEntries locates the section and folds its lines into entries. It returns an
// empty slice when the section is absent or has no entry with a primary field.
func segmentEntries[E any](lines []string, kind entryKind[E]) []E {
	start := LocateSection(lines, kind.keywords)
	if start < 0 {
		return []E{}
	}

	fold := entryFold[E]{emitted: []E{}}
	for i := start + 1; i < len(lines) && !fold.done; i++ {
		line := lines[i]
		consumed := 0
		fold = fold.step(kind, line, endsSection(line, kind.keywords), IsBullet(line), func() E {
			e, n := kind.open(lines, i)
			consumed = n
			return e
		})
		i += consumed
	}
	return fold.flush(kind).emitted
}

// inSection reports whether lines[i] exists and still belongs to the section being read.
// Date and GPA lines are recognised here even when written as bullets.
func inSection(lines []string, i int, own []string) bool {
	return i < len(lines) && !endsSection(lines[i], own)
}

// peekable reports whether lines[i] may be taken as a title or degree of the entry above
// it: it is in the section and is not a bullet.
func peekable(lines []string, i int, own []string) bool {
	return inSection(lines, i, own) && !IsBullet(lines[i])
}

// peekDate returns the date carried by lines[i], with any bullet marker removed first.
func peekDate(lines []string, i int, own []string) (string, bool) {
	if !inSection(lines, i, own) {
		return "", false
	}
	line := StripBullet(lines[i])
	if !ContainsDate(line) {
		return "", false
	}
	return ExtractDate(line), true
}
