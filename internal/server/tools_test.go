package server

import "testing"

func TestGetToolDefinitions(t *testing.T) {
	expectedTools := []string{
		"pixels_load",
		"pixels_get",
		"pixels_set",
		"pixels_get_range",
		"pixels_create_layer",
		"pixels_save",
		"pixels_sample_color",
		"pixels_benchmark",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("duplicate tool %s", tool.Name)
		}
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
	if len(toolMap) != len(expectedTools) {
		t.Errorf("tool count: got %d, want %d", len(toolMap), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v", tool.InputSchema["type"])
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema should have properties")
			}
			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("InputSchema should have required list")
			}
			for _, r := range required {
				if _, ok := props[r]; !ok {
					t.Errorf("required property %s is not defined", r)
				}
			}
			if _, ok := props["path"]; !ok {
				t.Error("every tool takes a path")
			}
		})
	}
}

func TestExecuteTool_Unknown(t *testing.T) {
	s := newTestServer(t)
	resp := callTool(t, s, "image_crop", map[string]interface{}{})
	if resp.Error == nil || resp.Error.Code != -32000 {
		t.Errorf("unknown tool: got %+v", resp.Error)
	}
}
