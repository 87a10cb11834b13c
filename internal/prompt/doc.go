// Package prompt holds the prompt texts for the classifier and researcher
// steps and a cached Handlebars renderer for the ReAct template.
//
// The classifier prompt is fixed text. The researcher prompt is a template
// rendered per agent step:
//
//	renderer := prompt.NewRenderer()
//	text, err := renderer.Render(prompt.ReactTemplate, map[string]interface{}{
//	    "tools":      "web_search: searches the web",
//	    "toolNames":  "web_search",
//	    "input":      "How do I boil an egg?",
//	    "scratchpad": "",
//	})
package prompt
