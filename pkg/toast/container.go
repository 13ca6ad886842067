package toast

import "github.com/vango-dev/toastkit/pkg/dom"

// EnsureContainer returns the container element identified by
// cfg.ContainerID, creating it and appending it to the body if absent.
// Repeated calls return the same element.
func EnsureContainer(doc *dom.Document, cfg Config) *dom.Node {
	cfg = cfg.withDefaults()
	if c := doc.ElementByID(cfg.ContainerID); c != nil {
		return c
	}

	c := doc.CreateElement("div")
	c.SetID(cfg.ContainerID)
	c.ClassList().Add(cfg.ContainerClass)
	doc.Body().AppendChild(c)
	return c
}
