package buildstep

import "github.com/viant/reachability/feature"

// SourceJar identifies the application archive handed over by the host build
type SourceJar struct {
	Path string
}

// FeatureItem carries imported reachability metadata to the compiler integration stage
type FeatureItem struct {
	Feature *feature.Feature
}

// Producer receives build items
type Producer interface {
	Produce(item *FeatureItem)
}

// ProducerFunc adapts a function to Producer
type ProducerFunc func(item *FeatureItem)

// Produce calls f(item)
func (f ProducerFunc) Produce(item *FeatureItem) {
	f(item)
}

// Items collects produced items
type Items []*FeatureItem

// Produce appends item
func (i *Items) Produce(item *FeatureItem) {
	*i = append(*i, item)
}
