package mock

import "github.com/fwojciec/icondeck"

var _ icondeck.Inspector = (*Inspector)(nil)

// Inspector is a mock implementation of icondeck.Inspector.
type Inspector struct {
	InspectFn func(svg string) (*icondeck.SVGInfo, error)
}

func (i *Inspector) Inspect(svg string) (*icondeck.SVGInfo, error) {
	return i.InspectFn(svg)
}
