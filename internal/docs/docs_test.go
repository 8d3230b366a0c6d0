package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestSwaggerDocIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("failed to read registered doc: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("doc is not valid JSON: %v", err)
	}

	paths, ok := parsed["paths"].(map[string]interface{})
	if !ok {
		t.Fatal("expected paths object")
	}
	for _, path := range []string{"/stocks", "/stocks/{id}", "/stock-value/{id}", "/portfolio-value", "/capital-gains"} {
		if _, ok := paths[path]; !ok {
			t.Errorf("expected path %s to be documented", path)
		}
	}
}
