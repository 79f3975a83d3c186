package render

import (
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// RenderDetail writes the raw task description payload as a YAML document.
// Each emission is prefixed with a document separator so consecutive
// emissions remain parseable as a YAML stream.
func (r *Renderer) RenderDetail(payload any) error {
	data, err := yaml.Marshal(payload)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal detail payload")
	}

	return r.write("---\n" + string(data))
}
