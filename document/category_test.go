package document

import "testing"

func TestParseRef_ValidReference(t *testing.T) {
	cat, name, ok := ParseRef("#/components/schemas/Pet")
	if !ok || cat != CategorySchemas || name != "Pet" {
		t.Fatalf("ParseRef() = (%v, %q, %v), want (CategorySchemas, \"Pet\", true)", cat, name, ok)
	}
}

func TestParseRef_UnknownCategoryFails(t *testing.T) {
	if _, _, ok := ParseRef("#/components/bogus/Pet"); ok {
		t.Fatal("ParseRef() = ok, want false for an unrecognized category segment")
	}
}

func TestParseRef_ExternalReferenceFails(t *testing.T) {
	if _, _, ok := ParseRef("other.yaml#/components/schemas/Pet"); ok {
		t.Fatal("ParseRef() = ok, want false for an external reference")
	}
}

func TestParseRef_EmptyNameFails(t *testing.T) {
	if _, _, ok := ParseRef("#/components/schemas/"); ok {
		t.Fatal("ParseRef() = ok, want false for an empty name")
	}
}

func TestBuildRef_RoundTripsWithParseRef(t *testing.T) {
	ref := BuildRef(CategoryRequestBodies, "CreateOrder")
	cat, name, ok := ParseRef(ref)
	if !ok || cat != CategoryRequestBodies || name != "CreateOrder" {
		t.Fatalf("ParseRef(BuildRef(...)) = (%v, %q, %v), want (CategoryRequestBodies, \"CreateOrder\", true)", cat, name, ok)
	}
}

func TestCategories_MatchesMandatedProcessingOrder(t *testing.T) {
	want := []Category{
		CategorySchemas, CategoryResponses, CategoryParameters, CategoryExamples,
		CategoryRequestBodies, CategoryHeaders, CategorySecuritySchemes, CategoryLinks, CategoryCallbacks,
	}
	if len(Categories) != len(want) {
		t.Fatalf("len(Categories) = %d, want %d", len(Categories), len(want))
	}
	for i, c := range want {
		if Categories[i] != c {
			t.Errorf("Categories[%d] = %v, want %v", i, Categories[i], c)
		}
	}
}

func TestCategory_StringOutOfRange(t *testing.T) {
	if got := Category(99).String(); got != "unknown" {
		t.Errorf("Category(99).String() = %q, want \"unknown\"", got)
	}
}
