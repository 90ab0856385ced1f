package app

import "go.trai.ch/recomp/internal/core/domain"

// sourceCollector records the content hash of every regular file it visits.
type sourceCollector struct {
	hashes map[string]domain.HashCode
}

func (c *sourceCollector) PreVisitDirectory(*domain.DirectorySnapshot) bool { return true }

func (c *sourceCollector) Visit(file domain.PhysicalSnapshot) {
	if file.Type() == domain.FileTypeRegularFile {
		c.hashes[file.AbsolutePath()] = file.ContentHash()
	}
}

func (c *sourceCollector) PostVisitDirectory() {}

func sourceHashes(trees []domain.FileSystemSnapshot) map[string]domain.HashCode {
	c := &sourceCollector{hashes: make(map[string]domain.HashCode)}
	for _, tree := range trees {
		tree.Accept(c)
	}
	return c.hashes
}
