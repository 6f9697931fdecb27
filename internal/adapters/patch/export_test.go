package patch

// SetRename replaces the rename used to publish patches.
func (c *Cache) SetRename(fn func(oldPath, newPath string) error) {
	c.rename = fn
}
