package emit

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"cfgen/internal/resolver"
	"cfgen/internal/schema"
	"cfgen/pkg/logging"
)

const configTemplate = `// Code generated by cfgen; DO NOT EDIT.

package {{ .Package }}

// {{ .StructName }} holds the build-time configuration for this component,
// overrides from {{ .OverrideFile }} applied over the declared defaults.
type {{ .StructName }} struct {
{{- range .Fields }}
{{- if .Doc }}
	// {{ .Doc }}
{{- end }}
	{{ camelcase .Name }} {{ .GoType }}
{{- end }}
}

// {{ snakecase .StructName | upper }} is the resolved configuration value set.
var {{ snakecase .StructName | upper }} = {{ .StructName }}{
{{- range .Fields }}
	{{ camelcase .Name }}: {{ .Expr }},
{{- end }}
}
`

type fieldView struct {
	Name   string
	Doc    string
	GoType string
	Expr   string
}

type fileView struct {
	Package      string
	StructName   string
	OverrideFile string
	Fields       []fieldView
}

// Emitter renders resolved configurations into Go source.
type Emitter struct {
	tmpl *template.Template
}

// New returns an Emitter with the standard file template.
func New() *Emitter {
	return &Emitter{
		tmpl: template.Must(template.New("config").Funcs(sprig.TxtFuncMap()).Parse(configTemplate)),
	}
}

// GoType maps a field's type tag to the Go type used in the emitted struct.
func GoType(t schema.TypeTag) string {
	if t.IsVariant() {
		return t.Enum
	}
	switch t.Scalar {
	case schema.ScalarInt:
		return "int"
	case schema.ScalarFloat:
		return "float64"
	case schema.ScalarBool:
		return "bool"
	default:
		return "string"
	}
}

// DefaultOutputPath is the generated filename for a component, placed next to
// its schema manifest.
func DefaultOutputPath(s *schema.Schema) string {
	return s.Package + "_cfg.gen.go"
}

// Render produces the generated source for one resolved configuration.
func (e *Emitter) Render(cfg *resolver.Config) ([]byte, error) {
	view := fileView{
		Package:      cfg.Package,
		StructName:   "Config",
		OverrideFile: "cfg.toml",
		Fields:       make([]fieldView, 0, len(cfg.Fields)),
	}
	for _, f := range cfg.Fields {
		view.Fields = append(view.Fields, fieldView{
			Name:   f.Name,
			Doc:    f.Doc,
			GoType: GoType(f.Type),
			Expr:   f.Value.GoExpr(),
		})
	}

	var buf bytes.Buffer
	if err := e.tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("rendering configuration for %s: %w", cfg.Component, err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the configuration and writes it to path.
func (e *Emitter) WriteFile(cfg *resolver.Config, path string) error {
	data, err := e.Render(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing generated file %s: %w", path, err)
	}
	logging.Info("Emit", "Wrote %s (%d fields)", path, len(cfg.Fields))
	return nil
}
