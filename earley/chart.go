package earley

// item is an Earley item: a rule with a dot position, the input position where
// the rule has been predicted (origin) and the position of the chart holding it.
type item struct {
	rule   int
	dot    int
	origin int
	pos    int
}

func (it item) advance(pos int) item {
	return item{rule: it.rule, dot: it.dot + 1, origin: it.origin, pos: pos}
}

// completed is the index key of items with the dot at the end.
const completed = '$'

type itemset map[item]struct{}

var exists = struct{}{}

func (set itemset) add(it item) itemset {
	if set == nil {
		set = itemset{}
	}
	set[it] = exists
	return set
}

func (set itemset) contains(it item) bool {
	if set == nil {
		return false
	}
	_, ok := set[it]
	return ok
}

// chart holds the items of an input position.
type chart struct {
	items    itemset
	order    []item          // items in insertion order
	waiting  map[rune][]item // items by symbol after the dot
	nullable map[rune]bool   // non-terminals completed with an empty span here
}

func newChart() *chart {
	return &chart{
		items:    itemset{},
		waiting:  make(map[rune][]item),
		nullable: make(map[rune]bool),
	}
}

// add inserts an item expecting symbol next. It returns false if the item has
// already been present.
func (c *chart) add(it item, next rune) bool {
	if c.items.contains(it) {
		return false
	}
	c.items = c.items.add(it)
	c.order = append(c.order, it)
	c.waiting[next] = append(c.waiting[next], it)
	return true
}

func (c *chart) contains(it item) bool {
	return c.items.contains(it)
}

func (c *chart) waitingFor(sym rune) []item {
	return c.waiting[sym]
}

func (c *chart) size() int {
	return len(c.order)
}
