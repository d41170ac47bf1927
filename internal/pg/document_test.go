package pg

import (
	"encoding/json"
	"testing"

	assert "github.com/stretchr/testify/require"

	"github.com/sean-nixon/scala-case-class-swagger-util/internal/swagger"
)

func fieldJson(t *testing.T, doc *swagger.Document, name string) string {
	for _, f := range doc.Fields {
		if f.Name == name {
			data, err := json.Marshal(f.Type)
			assert.NoError(t, err)
			return string(data)
		}
	}

	t.Fatalf("no field %q in document %s", name, doc.Name)
	return ""
}

func TestDocuments(t *testing.T) {
	db := migrated(t, `
		CREATE TABLE pet_owner (
			id BIGSERIAL PRIMARY KEY,
			first_name TEXT NOT NULL,
			nickname VARCHAR(255),
			age INT NOT NULL,
			height DOUBLE PRECISION,
			balance NUMERIC NOT NULL,
			vaccinated BOOLEAN NOT NULL,
			tag_ids INT[] NOT NULL,
			kind pet_kind NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
	`)

	docs := Documents(db)
	assert.Len(t, docs, 1)

	doc := docs[0]
	assert.Equal(t, "PetOwner", doc.Name)

	assert.JSONEq(t, `{"type":"integer","format":"int64"}`, fieldJson(t, doc, "id"))
	assert.JSONEq(t, `{"type":"string"}`, fieldJson(t, doc, "firstName"))
	assert.JSONEq(t, `{"type":"string"}`, fieldJson(t, doc, "nickname"))
	assert.JSONEq(t, `{"type":"integer","format":"int32"}`, fieldJson(t, doc, "age"))
	assert.JSONEq(t, `{"type":"number","format":"double"}`, fieldJson(t, doc, "height"))
	assert.JSONEq(t, `{"type":"number"}`, fieldJson(t, doc, "balance"))
	assert.JSONEq(t, `{"type":"boolean"}`, fieldJson(t, doc, "vaccinated"))
	assert.JSONEq(t, `{"type":"array","items":{"type":"integer","format":"int32"}}`, fieldJson(t, doc, "tagIds"))
	assert.JSONEq(t, `{"$ref":"#/definitions/PetKind"}`, fieldJson(t, doc, "kind"))
	assert.JSONEq(t, `{"type":"string"}`, fieldJson(t, doc, "createdAt"))

	assert.Equal(
		t,
		[]string{"id", "firstName", "age", "balance", "vaccinated", "tagIds", "kind", "createdAt"},
		doc.Required,
	)
}

func TestDocumentsOrder(t *testing.T) {
	db := migrated(t, `
		CREATE TABLE person (id SERIAL PRIMARY KEY);
		CREATE TABLE pet (id SERIAL PRIMARY KEY);
	`)

	docs := Documents(db)
	assert.Len(t, docs, 2)
	assert.Equal(t, "Person", docs[0].Name)
	assert.Equal(t, "Pet", docs[1].Name)
}

func TestColumnTypeArrayElement(t *testing.T) {
	// The element of a nullable array is still a concrete value type.
	typ := columnType(DataType{Name: "text", Array: true, NotNull: false})

	arr, ok := typ.(*swagger.Array)
	assert.True(t, ok)
	assert.False(t, arr.Required())
	assert.True(t, arr.Element.Required())
}

func TestPascalCase(t *testing.T) {
	assert.Equal(t, "PetOwner", pascalCase("pet_owner"))
	assert.Equal(t, "Person", pascalCase("person"))
	assert.Equal(t, "Id", pascalCase("id"))
}

func TestCamelCase(t *testing.T) {
	assert.Equal(t, "petOwner", camelCase("pet_owner"))
	assert.Equal(t, "id", camelCase("id"))
	assert.Equal(t, "createdAt", camelCase("created_at"))
}

