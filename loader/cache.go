package loader

import (
	"sync"

	"github.com/patricioibar/olist-dashboard/dataset"
)

// Cache loads the dataset on first use and hands out the same snapshot
// afterwards, until Invalidate is called.
type Cache struct {
	dir      string
	load     func(dir string) (*dataset.Snapshot, error)
	mu       sync.Mutex
	snapshot *dataset.Snapshot
}

func NewCache(dir string) *Cache {
	return &Cache{dir: dir, load: LoadDataset}
}

func (c *Cache) Get() (*dataset.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshot != nil {
		return c.snapshot, nil
	}
	snapshot, err := c.load(c.dir)
	if err != nil {
		return nil, err
	}
	c.snapshot = snapshot
	return snapshot, nil
}

// Invalidate drops the cached snapshot; the next Get reloads every table.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.snapshot = nil
	c.mu.Unlock()
}
