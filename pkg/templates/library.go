package templates

import (
	"strings"

	"github.com/dfgame/logstyle/pkg/config"
	"github.com/dfgame/logstyle/pkg/errors"
	"github.com/dfgame/logstyle/pkg/registry"
)

// Library is the lookup table of named templates. Names are
// case-insensitive. Build it once and share it; lookups are safe for
// concurrent use.
type Library struct {
	reg registry.Registry[Template]
}

// NewLibrary builds a library from configuration. A later template with
// the same name replaces the earlier one.
func NewLibrary(cfgs []config.TemplateConfig) (*Library, error) {
	l := &Library{reg: registry.New[Template]()}
	for _, c := range cfgs {
		kind, err := ParseShaderKind(c.Shader)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrTemplateInvalid, "template %q", c.Name)
		}
		if err := l.Put(Template{Name: c.Name, Kind: kind, Codes: []rune(c.Colors)}); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// BuiltinLibrary returns the compiled-in template set
func BuiltinLibrary() *Library {
	l, err := NewLibrary(config.Builtin().Templates)
	if err != nil {
		panic("builtin templates are invalid: " + err.Error())
	}
	return l
}

// Put adds or replaces a template
func (l *Library) Put(t Template) error {
	name := normalize(t.Name)
	if name == "" {
		return errors.New(errors.ErrTemplateInvalid, "template name cannot be empty")
	}
	t.Name = name
	return l.reg.Put(name, t)
}

// Get looks a template up by name
func (l *Library) Get(name string) (Template, bool) {
	t, err := l.reg.Get(normalize(name))
	return t, err == nil
}

// Has reports whether name is a known template
func (l *Library) Has(name string) bool {
	return l.reg.Has(normalize(name))
}

// Names lists template names in definition order
func (l *Library) Names() []string {
	return l.reg.List()
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
