// Package bloom provides probabilistic deduplication of discovered icon paths.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Set tracks icon paths already seen during a discovery run. Directory
// listings repeat hrefs and folders can overlap, so the pipeline consults
// the set before loading a file. False positives are possible; false
// negatives are not.
type Set struct {
	f *bloom.BloomFilter
}

// NewSet creates a Set sized for n expected paths with the given false
// positive rate.
func NewSet(n uint, fpRate float64) *Set {
	return &Set{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a path.
func (s *Set) Add(path string) {
	s.f.AddString(path)
}

// Test returns true if the path may have been recorded.
func (s *Set) Test(path string) bool {
	return s.f.TestString(path)
}

// EstimatedCount returns the approximate number of recorded paths.
func (s *Set) EstimatedCount() uint {
	return uint(s.f.ApproximatedSize())
}
