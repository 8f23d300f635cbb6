package popbench

import "maps"

// NewBatch returns n independent copies of template.
// A nil template yields n distinct empty mappings.
// Copies are shallow: values are shared, keys are not.
func NewBatch(template Mapping, n int) []Mapping {
	batch := make([]Mapping, n)
	for i := range batch {
		if template == nil {
			batch[i] = Mapping{}
			continue
		}
		batch[i] = maps.Clone(template)
	}
	return batch
}
