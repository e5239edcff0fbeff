package sdl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateModel_Basic(t *testing.T) {
	m := Model{
		Name: "User",
		Fields: []Field{
			{
				Name: "id", Type: "String", IsRequired: true,
				Attributes: []Attribute{
					{Name: "id"},
					{Name: "default", Args: []Argument{
						{Name: PositionalName, Value: Value{Kind: Expression, Raw: "cuid()"}},
					}},
				},
			},
			{Name: "name", Type: "String", IsRequired: true},
		},
	}

	want := `model User {
  id String @id @default(cuid())
  name String
}`
	require.Equal(t, want, GenerateModel(m))
}

func TestGenerateModel_MarkersAndModelAttributes(t *testing.T) {
	m := Model{
		Name: "Post",
		Fields: []Field{
			{Name: "tags", Type: "String", IsRequired: true, IsList: true},
			{Name: "age", Type: "Int", IsRequired: false},
		},
		Attributes: []ModelAttribute{
			{Type: "index", Args: []Argument{
				{Name: PositionalName, Value: Value{Kind: Expression, Raw: "[tags]"}},
			}},
			{Type: "ignore"},
		},
	}

	want := `model Post {
  tags String[]
  age Int?

  @@index([tags])
  @@ignore
}`
	require.Equal(t, want, GenerateModel(m))
}

func TestRenderAttribute_DefaultParenRepair(t *testing.T) {
	attr := Attribute{Name: "default", Args: []Argument{
		{Name: PositionalName, Value: Value{Kind: Expression, Raw: `dbgenerated("x"`}},
	}}
	require.Equal(t, `@default(dbgenerated("x"))`, renderAttribute(attr))

	balanced := Attribute{Name: "default", Args: []Argument{
		{Name: PositionalName, Value: Value{Kind: Expression, Raw: "now()"}},
	}}
	require.Equal(t, "@default(now())", renderAttribute(balanced))
}

func TestRenderAttribute_NamespacedDB(t *testing.T) {
	attr := Attribute{Name: "db", Args: []Argument{
		{Name: PositionalName, Value: Value{Kind: Expression, Raw: "Uuid"}},
	}}
	require.Equal(t, "@db.Uuid", renderAttribute(attr))

	// An empty argument drops the attribute entirely.
	empty := Attribute{Name: "db"}
	require.Equal(t, "", renderAttribute(empty))
}

func TestRenderAttribute_RelationAlwaysNamed(t *testing.T) {
	attr := Attribute{Name: "relation", Args: []Argument{
		{Name: "fields", Value: Value{Kind: Expression, Raw: "[authorId]"}},
		{Name: "references", Value: Value{Kind: Expression, Raw: "[id]"}},
	}}
	require.Equal(t, "@relation(fields: [authorId], references: [id])", renderAttribute(attr))
}

func TestRenderAttribute_NamedLiteralQuoting(t *testing.T) {
	// Editor-built literal without quotes gains them.
	attr := Attribute{Name: "map", Args: []Argument{
		{Name: "name", Value: Value{Kind: Literal, Raw: "users"}},
	}}
	require.Equal(t, `@map(name: "users")`, renderAttribute(attr))

	// A literal that came back from the parser is already quoted.
	parsed := Attribute{Name: "map", Args: []Argument{
		{Name: "name", Value: Value{Kind: Literal, Raw: `"users"`}},
	}}
	require.Equal(t, `@map(name: "users")`, renderAttribute(parsed))
}

func TestGenerateEnum(t *testing.T) {
	e := Enum{Name: "Role", Values: []string{"ADMIN", "USER"}}
	want := `enum Role {
  ADMIN
  USER
}`
	require.Equal(t, want, GenerateEnum(e))
}

func TestGenerate_SectionOrderAndOmission(t *testing.T) {
	doc := &Document{
		Datasource: Datasource{Provider: "postgresql", URL: `env("DATABASE_URL")`},
		Generator:  Generator{Provider: "prisma-client-js"},
		Models: []Model{
			{Name: "A", Fields: []Field{{Name: "id", Type: "String", IsRequired: true}}},
			{Name: "B", Fields: []Field{{Name: "id", Type: "String", IsRequired: true}}},
		},
		Enums: []Enum{{Name: "Role", Values: []string{"ADMIN"}}},
	}

	out := Generate(doc)
	idx := func(s string) int { return strings.Index(out, s) }
	require.True(t, idx("datasource db") < idx("generator client"))
	require.True(t, idx("generator client") < idx("model A"))
	require.True(t, idx("model A") < idx("model B"))
	require.True(t, idx("model B") < idx("enum Role"))
	require.Contains(t, out, "model A {\n  id String\n}")

	// Empty sections disappear rather than rendering as empty blocks.
	bare := &Document{Models: []Model{{Name: "Only"}}}
	out = Generate(bare)
	require.NotContains(t, out, "datasource")
	require.NotContains(t, out, "generator")
	require.NotContains(t, out, "enum")

	require.Equal(t, "", Generate(&Document{}))
}

func TestGenerate_GeneratorBlock(t *testing.T) {
	doc := &Document{
		Generator: Generator{
			Provider:        "prisma-client-js",
			Output:          "./generated",
			PreviewFeatures: []string{"fullTextSearch", "views"},
			BinaryTargets:   []string{"native"},
		},
	}
	out := Generate(doc)
	require.Contains(t, out, `provider = "prisma-client-js"`)
	require.Contains(t, out, `output = "./generated"`)
	require.Contains(t, out, `previewFeatures = ["fullTextSearch", "views"]`)
	require.Contains(t, out, `binaryTargets = ["native"]`)
}

func TestGenerate_IdentityTokensNeverEmitted(t *testing.T) {
	doc := &Document{
		Models: []Model{{
			ID: "model-token", Name: "User",
			Fields: []Field{{ID: "field-token", Name: "id", Type: "String", IsRequired: true}},
		}},
	}
	out := Generate(doc)
	require.NotContains(t, out, "model-token")
	require.NotContains(t, out, "field-token")
}
