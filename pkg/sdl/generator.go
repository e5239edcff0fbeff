package sdl

import (
	"fmt"
	"strings"
)

// Block names are not retained by the data model, so generation uses the
// conventional ones.
const (
	datasourceBlockName = "db"
	generatorBlockName  = "client"
)

// Generate renders the canonical text of a document: datasource, generator,
// models and enums in that order, blank-line separated, with empty sections
// omitted. It never fails; an incomplete document produces best-effort
// output and validation stays with the caller.
func Generate(doc *Document) string {
	var sections []string
	if doc.Datasource != (Datasource{}) {
		sections = append(sections, generateDatasource(doc.Datasource))
	}
	if !doc.Generator.isZero() {
		sections = append(sections, generateGenerator(doc.Generator))
	}
	for _, m := range doc.Models {
		sections = append(sections, GenerateModel(m))
	}
	for _, e := range doc.Enums {
		sections = append(sections, GenerateEnum(e))
	}
	if len(sections) == 0 {
		return ""
	}
	return strings.Join(sections, "\n\n") + "\n"
}

func (g Generator) isZero() bool {
	return g.Provider == "" && g.Output == "" &&
		len(g.PreviewFeatures) == 0 && len(g.BinaryTargets) == 0
}

func generateDatasource(ds Datasource) string {
	var b strings.Builder
	fmt.Fprintf(&b, "datasource %s {\n", datasourceBlockName)
	if ds.Provider != "" {
		fmt.Fprintf(&b, "  provider = %q\n", ds.Provider)
	}
	if ds.URL != "" {
		fmt.Fprintf(&b, "  url = %s\n", ds.URL)
	}
	b.WriteString("}")
	return b.String()
}

func generateGenerator(gen Generator) string {
	var b strings.Builder
	fmt.Fprintf(&b, "generator %s {\n", generatorBlockName)
	if gen.Provider != "" {
		fmt.Fprintf(&b, "  provider = %q\n", gen.Provider)
	}
	if gen.Output != "" {
		fmt.Fprintf(&b, "  output = %q\n", gen.Output)
	}
	if len(gen.PreviewFeatures) > 0 {
		fmt.Fprintf(&b, "  previewFeatures = %s\n", quotedList(gen.PreviewFeatures))
	}
	if len(gen.BinaryTargets) > 0 {
		fmt.Fprintf(&b, "  binaryTargets = %s\n", quotedList(gen.BinaryTargets))
	}
	b.WriteString("}")
	return b.String()
}

func quotedList(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = fmt.Sprintf("%q", it)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// GenerateModel renders one model block. Used directly by the editing layer
// for live single-model previews.
func GenerateModel(m Model) string {
	var b strings.Builder
	fmt.Fprintf(&b, "model %s {\n", m.Name)
	for _, f := range m.Fields {
		b.WriteString(generateFieldLine(f))
		b.WriteByte('\n')
	}
	if len(m.Attributes) > 0 {
		b.WriteByte('\n')
		for _, attr := range m.Attributes {
			fmt.Fprintf(&b, "  %s\n", renderModelAttribute(attr))
		}
	}
	b.WriteString("}")
	return b.String()
}

func generateFieldLine(f Field) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s %s", f.Name, f.Type)
	if f.IsList {
		b.WriteString("[]")
	}
	if !f.IsRequired {
		b.WriteString("?")
	}
	for _, attr := range f.Attributes {
		rendered := renderAttribute(attr)
		if rendered == "" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(rendered)
	}
	return b.String()
}

// renderAttribute formats a field attribute. Three attributes carry special
// rules: default repairs an unbalanced trailing parenthesis, db renders as
// a namespaced type attribute, relation always names its arguments.
func renderAttribute(attr Attribute) string {
	switch attr.Name {
	case "db":
		if len(attr.Args) == 0 || attr.Args[0].Value.Raw == "" {
			return ""
		}
		return "@db." + attr.Args[0].Value.Raw
	case "relation":
		if len(attr.Args) == 0 {
			return "@relation"
		}
		parts := make([]string, len(attr.Args))
		for i, a := range attr.Args {
			parts[i] = a.Name + ": " + renderValue(a.Value)
		}
		return "@relation(" + strings.Join(parts, ", ") + ")"
	case "default":
		if len(attr.Args) == 0 {
			return "@default"
		}
		rendered := renderArguments(attr.Args)
		if strings.Count(rendered, "(") > strings.Count(rendered, ")") {
			rendered += ")"
		}
		return "@default(" + rendered + ")"
	default:
		if len(attr.Args) == 0 {
			return "@" + attr.Name
		}
		return "@" + attr.Name + "(" + renderArguments(attr.Args) + ")"
	}
}

func renderArguments(args []Argument) string {
	parts := make([]string, len(args))
	for i, a := range args {
		if a.Positional() {
			parts[i] = a.Value.Raw
		} else {
			parts[i] = a.Name + ": " + renderValue(a.Value)
		}
	}
	return strings.Join(parts, ", ")
}

// renderValue quotes literal values that are not already quoted;
// expressions pass through verbatim.
func renderValue(v Value) string {
	if v.Kind == Literal && !isQuoted(v.Raw) {
		return fmt.Sprintf("%q", v.Raw)
	}
	return v.Raw
}

// renderModelAttribute joins arguments by raw value only: `@@id([a, b])`.
func renderModelAttribute(attr ModelAttribute) string {
	if len(attr.Args) == 0 {
		return "@@" + attr.Type
	}
	parts := make([]string, len(attr.Args))
	for i, a := range attr.Args {
		parts[i] = a.Value.Raw
	}
	return "@@" + attr.Type + "(" + strings.Join(parts, ", ") + ")"
}

// GenerateEnum renders one enum block.
func GenerateEnum(e Enum) string {
	var b strings.Builder
	fmt.Fprintf(&b, "enum %s {\n", e.Name)
	for _, v := range e.Values {
		fmt.Fprintf(&b, "  %s\n", v)
	}
	b.WriteString("}")
	return b.String()
}
