// Package catalog maps itags to human-readable quality labels.
package catalog

import (
	"sort"

	"github.com/samber/lo"
)

// Catalog is a read-only itag → label table. Safe for concurrent use.
type Catalog struct {
	labels map[int]string
}

// New returns the catalog of known formats.
func New() *Catalog {
	return &Catalog{labels: map[int]string{
		13: "Low Quality - 176x144 (.3gp)",
		17: "Medium Quality - 176x144 (.3gp)",
		36: "High Quality - 320x240 (.3gp)",
		5:  "Low Quality - 400x226 (.flv)",
		6:  "Medium Quality - 640x360 (.flv)",
		34: "Medium Quality - 640x360 (.flv)",
		35: "High Quality - 854x480 (.flv)",
		43: "Low Quality - 640x360 (.webm)",
		44: "Medium Quality - 854x480 (.webm)",
		45: "High Quality - 1280x720 (.webm)",
		46: "High Quality - 1280x720 (.webm)",
		18: "Medium Quality - 480x360 (.mp4)",
		22: "High Quality - 1280x720 (.mp4)",
		37: "High Quality - 1920x1080 (.mp4)",
		33: "High Quality - 4096x230 (.mp4)",
	}}
}

// Lookup returns the label for an itag. ok is false for unknown itags.
func (c *Catalog) Lookup(formatID int) (label string, ok bool) {
	label, ok = c.labels[formatID]
	return label, ok
}

// IDs returns all known itags in ascending order.
func (c *Catalog) IDs() []int {
	ids := lo.Keys(c.labels)
	sort.Ints(ids)
	return ids
}

// Len returns the number of known itags.
func (c *Catalog) Len() int {
	return len(c.labels)
}
