// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package limerick

// Classic is the original generator: three templates, flat word banks and
// fixed closing lines.
type Classic struct {
	*engine
}

// NewClassic builds a classic generator.
func NewClassic(opts ...Option) (*Classic, error) {
	e, err := newEngine(VariantClassic, classicCatalog(), buildOptions(opts))
	if err != nil {
		return nil, err
	}
	return &Classic{engine: e}, nil
}

// Generate returns a limerick about topic.
func (c *Classic) Generate(topic string) (string, error) {
	topic = NormalizeTopic(topic)

	c.mu.Lock()
	defer c.mu.Unlock()

	_, t := c.selectTemplate()
	words, err := c.bindings.Resolve(NewDraw(c.rng, c.words(topic), nil), t)
	if err != nil {
		return "", err
	}
	return t.Render(words)
}

// ResolveWords draws words for every placeholder of t.
func (c *Classic) ResolveWords(topic string, t Template) (map[string]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bindings.Resolve(NewDraw(c.rng, c.words(NormalizeTopic(topic)), nil), t)
}
