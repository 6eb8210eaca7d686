package models

// Collection is an insertion-ordered set of descriptors keyed by relative path.
// Adding a path that already exists replaces the descriptor but keeps the
// original position, so tree rendering stays stable across re-listings.
type Collection struct {
	byPath map[string]*FileDescriptor
	order  []string
}

// NewCollection creates an empty descriptor collection.
func NewCollection() *Collection {
	return &Collection{
		byPath: make(map[string]*FileDescriptor),
	}
}

// Add inserts a descriptor keyed by its original path. Last write wins.
func (c *Collection) Add(d *FileDescriptor) {
	if _, exists := c.byPath[d.OriginalPath]; !exists {
		c.order = append(c.order, d.OriginalPath)
	}
	c.byPath[d.OriginalPath] = d
}

// Get returns the descriptor for a relative path.
func (c *Collection) Get(path string) (*FileDescriptor, bool) {
	d, ok := c.byPath[path]
	return d, ok
}

// Paths returns all relative paths in insertion order.
func (c *Collection) Paths() []string {
	paths := make([]string, len(c.order))
	copy(paths, c.order)
	return paths
}

// Descriptors returns all descriptors in insertion order.
func (c *Collection) Descriptors() []*FileDescriptor {
	descriptors := make([]*FileDescriptor, 0, len(c.order))
	for _, path := range c.order {
		descriptors = append(descriptors, c.byPath[path])
	}
	return descriptors
}

// Len returns the number of descriptors.
func (c *Collection) Len() int {
	return len(c.order)
}
