package normalizer

import (
	"fmt"

	"github.com/longbridgeapp/opencc"
)

// OpenCCConverter adapts the OpenCC Traditional-to-Simplified converter to
// the domain.Converter interface.
type OpenCCConverter struct {
	cc *opencc.OpenCC
}

// NewOpenCCConverter loads the t2s conversion tables.
func NewOpenCCConverter() (*OpenCCConverter, error) {
	cc, err := opencc.New("t2s")
	if err != nil {
		return nil, fmt.Errorf("init t2s converter: %w", err)
	}
	return &OpenCCConverter{cc: cc}, nil
}

// Convert implements domain.Converter.
func (c *OpenCCConverter) Convert(text string) (string, error) {
	return c.cc.Convert(text)
}
