package earley

// Chart holds, for every input position e, the distinct arcs ending at e in
// insertion order. It only grows.
type Chart struct {
	cells  []*cell
	policy Dedup
}

// cell is a growing worklist of arcs sharing an end position.
type cell struct {
	arcs  []*Arc
	index map[arcKey][]*Arc
}

// NewChart allocates a chart for an input of n tokens (n+1 cells).
func NewChart(n int, policy Dedup) *Chart {
	c := &Chart{cells: make([]*cell, n+1), policy: policy}
	for i := range c.cells {
		c.cells[i] = &cell{index: make(map[arcKey][]*Arc)}
	}
	return c
}

// Insert appends arc to the cell at its end position unless a matching arc
// is already there. It reports whether the arc was added.
func (c *Chart) Insert(arc *Arc) bool {
	cl := c.cells[arc.End()]
	k := arc.key()
	for _, existing := range cl.index[k] {
		if arc.Matches(existing, c.policy) {
			return false
		}
	}
	cl.index[k] = append(cl.index[k], arc)
	cl.arcs = append(cl.arcs, arc)
	return true
}

// Len returns the number of cells.
func (c *Chart) Len() int { return len(c.cells) }

// Cell returns a copy of the arcs ending at position i.
func (c *Chart) Cell(i int) []*Arc {
	return append([]*Arc(nil), c.cells[i].arcs...)
}

// Size returns the total number of arcs in the chart.
func (c *Chart) Size() int {
	n := 0
	for _, cl := range c.cells {
		n += len(cl.arcs)
	}
	return n
}

// Policy returns the dedup policy used by Insert.
func (c *Chart) Policy() Dedup { return c.policy }

// Forest returns the trees of complete arcs that span the whole input and
// are headed by start, in chart order.
func (c *Chart) Forest(start Symbol) []*Constituent {
	var parses []*Constituent
	for _, a := range c.cells[len(c.cells)-1].arcs {
		if a.IsComplete() && a.Start() == 0 && a.built.head == start {
			parses = append(parses, a.built)
		}
	}
	return parses
}

// at returns the j-th arc ending at i; the cell may grow between calls.
func (c *Chart) at(i, j int) *Arc { return c.cells[i].arcs[j] }

// width returns the current number of arcs ending at i.
func (c *Chart) width(i int) int { return len(c.cells[i].arcs) }
