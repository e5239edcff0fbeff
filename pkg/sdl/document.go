// Package sdl parses and generates the schema definition language used by
// the editor: datasource/generator blocks, models with fields and
// attributes, and enums. Parsing is best-effort and generation is the
// canonical inverse.
package sdl

// ValueKind classifies an attribute argument value.
type ValueKind int

const (
	// Literal values are emitted as quoted strings.
	Literal ValueKind = iota
	// Expression values are emitted verbatim: function calls, identifiers,
	// bracketed lists, enum member references.
	Expression
)

// Value is an attribute argument value tagged with how it must be emitted.
type Value struct {
	Kind ValueKind
	Raw  string
}

// IsExpression reports whether the value is emitted unquoted.
func (v Value) IsExpression() bool { return v.Kind == Expression }

// PositionalName is the placeholder name stored for unnamed arguments.
const PositionalName = "value"

// Argument is a single attribute argument. Name is PositionalName when the
// argument had no `key:` prefix. Order is preserved; duplicate names are
// kept as-is rather than merged.
type Argument struct {
	Name  string
	Value Value
}

// Positional reports whether the argument carried no explicit name.
func (a Argument) Positional() bool { return a.Name == PositionalName }

// Attribute is a field-level `@name(args)` decoration.
type Attribute struct {
	Name string
	Args []Argument
}

// ModelAttribute is a model-level `@@type(args)` decoration.
type ModelAttribute struct {
	Type string
	Args []Argument
}

// Field is one line of a model block.
type Field struct {
	// ID is an identity token owned by the editing layer. It is never
	// written to text and the parser assigns a fresh one on every parse.
	ID string

	Name       string
	Type       string
	IsRequired bool
	IsList     bool
	Attributes []Attribute
}

// Model is a `model Name { ... }` block.
type Model struct {
	// ID is an identity token owned by the editing layer, see Field.ID.
	ID string

	Name       string
	Fields     []Field
	Attributes []ModelAttribute
}

// Enum is an `enum Name { ... }` block. Values keep source order.
type Enum struct {
	ID string

	Name   string
	Values []string
}

// Datasource holds the recognized keys of the datasource block. URL is kept
// raw: it may be a quoted literal or an env("NAME") reference.
type Datasource struct {
	Provider string
	URL      string
}

// Generator holds the recognized keys of the generator block.
type Generator struct {
	Provider        string
	Output          string
	PreviewFeatures []string
	BinaryTargets   []string
}

// Document is a whole schema. Model and Enum order is preserved from the
// source and reused on generation.
type Document struct {
	Datasource Datasource
	Generator  Generator
	Models     []Model
	Enums      []Enum
}

// scalarTypes are the built-in type keywords; any other field type is an
// unresolved reference to an enum or model by name.
var scalarTypes = map[string]bool{
	"String":   true,
	"Boolean":  true,
	"Int":      true,
	"BigInt":   true,
	"Float":    true,
	"Decimal":  true,
	"DateTime": true,
	"Json":     true,
	"Bytes":    true,
}

// IsScalarType reports whether name is one of the built-in scalar keywords.
func IsScalarType(name string) bool { return scalarTypes[name] }
