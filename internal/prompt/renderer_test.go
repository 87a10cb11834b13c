package prompt

import (
	"strings"
	"testing"
)

func TestRender_ReactTemplate(t *testing.T) {
	renderer := NewRenderer()

	out, err := renderer.Render(ReactTemplate, map[string]interface{}{
		"tools":      "web_search: searches the web",
		"toolNames":  "web_search",
		"input":      "How do I boil an egg?",
		"scratchpad": "Thought: checking\nObservation: done\n",
	})
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	for _, want := range []string{
		"web_search: searches the web",
		"[web_search]",
		"Question: How do I boil an egg?",
		"Observation: done",
		"Final Answer:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered prompt missing %q", want)
		}
	}
}

func TestRender_DoesNotEscapeInput(t *testing.T) {
	renderer := NewRenderer()

	out, err := renderer.Render(ReactTemplate, map[string]interface{}{
		"tools":      "",
		"toolNames":  "",
		"input":      `what does "al dente" & <blanching> mean?`,
		"scratchpad": "",
	})
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	if !strings.Contains(out, `"al dente" & <blanching>`) {
		t.Error("rendered prompt HTML-escaped the user input")
	}
}

func TestRender_InvalidTemplate(t *testing.T) {
	renderer := NewRenderer()

	if _, err := renderer.Render("{{#if}}", nil); err == nil {
		t.Error("Render() should fail on a broken template")
	}
	if err := renderer.ValidateTemplate("{{#if}}"); err == nil {
		t.Error("ValidateTemplate() should fail on a broken template")
	}
	if err := renderer.ValidateTemplate(ReactTemplate); err != nil {
		t.Errorf("ValidateTemplate() failed on the react template: %v", err)
	}
}

func TestRender_CachesTemplates(t *testing.T) {
	renderer := NewRenderer()
	data := map[string]interface{}{
		"tools": "t", "toolNames": "n", "input": "q", "scratchpad": "",
	}

	first, err := renderer.Render(ReactTemplate, data)
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	second, err := renderer.Render(ReactTemplate, data)
	if err != nil {
		t.Fatalf("Render() second pass failed: %v", err)
	}
	if first != second {
		t.Error("cached render differs from first render")
	}
}
