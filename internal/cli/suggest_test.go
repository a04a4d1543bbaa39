package cli

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSuggestName(t *testing.T) {
	prevJSON := jsonOutput
	prevType := suggestType
	t.Cleanup(func() {
		jsonOutput = prevJSON
		suggestType = prevType
	})
	jsonOutput = true
	suggestType = false

	out := captureStdout(t, func() {
		if err := suggestCmd.RunE(suggestCmd, []string{"Order", "line", "item!"}); err != nil {
			t.Fatalf("suggestCmd.RunE: %v", err)
		}
	})

	var resp struct {
		OK   bool `json:"ok"`
		Data struct {
			Label string `json:"label"`
			Name  string `json:"name"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("parse output: %v; out=%s", err, out)
	}
	if !resp.OK {
		t.Fatalf("expected ok response, got %s", out)
	}
	if resp.Data.Label != "Order line item!" {
		t.Errorf("label = %q, want joined args", resp.Data.Label)
	}
	if resp.Data.Name != "orderLineItem" {
		t.Errorf("name = %q, want orderLineItem", resp.Data.Name)
	}
}

func TestSuggestTypeName(t *testing.T) {
	prevJSON := jsonOutput
	prevType := suggestType
	t.Cleanup(func() {
		jsonOutput = prevJSON
		suggestType = prevType
	})
	jsonOutput = true
	suggestType = true

	out := captureStdout(t, func() {
		if err := suggestCmd.RunE(suggestCmd, []string{"order", "line", "item"}); err != nil {
			t.Fatalf("suggestCmd.RunE: %v", err)
		}
	})

	var resp struct {
		Data struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("parse output: %v; out=%s", err, out)
	}
	if resp.Data.Name != "OrderLineItemType" {
		t.Errorf("name = %q, want OrderLineItemType", resp.Data.Name)
	}
}

func TestSuggestTextOutput(t *testing.T) {
	prevJSON := jsonOutput
	prevType := suggestType
	t.Cleanup(func() {
		jsonOutput = prevJSON
		suggestType = prevType
	})
	jsonOutput = false
	suggestType = false

	out := captureStdout(t, func() {
		if err := suggestCmd.RunE(suggestCmd, []string{"shipping", "address"}); err != nil {
			t.Fatalf("suggestCmd.RunE: %v", err)
		}
	})
	if strings.TrimSpace(out) != "shippingAddress" {
		t.Errorf("stdout = %q, want shippingAddress", strings.TrimSpace(out))
	}
}

func TestSuggestNoUsableName(t *testing.T) {
	prevJSON := jsonOutput
	prevType := suggestType
	t.Cleanup(func() {
		jsonOutput = prevJSON
		suggestType = prevType
	})
	suggestType = false

	// JSON mode reports success with an empty name and a warning.
	jsonOutput = true
	out := captureStdout(t, func() {
		if err := suggestCmd.RunE(suggestCmd, []string{"!!!"}); err != nil {
			t.Fatalf("suggestCmd.RunE: %v", err)
		}
	})

	var resp struct {
		OK   bool `json:"ok"`
		Data struct {
			Name string `json:"name"`
		} `json:"data"`
		Warnings []struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"warnings"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("parse output: %v; out=%s", err, out)
	}
	if !resp.OK || resp.Data.Name != "" {
		t.Fatalf("expected ok with empty name, got %s", out)
	}
	if len(resp.Warnings) != 1 || resp.Warnings[0].Code != WarnNoSuggestion {
		t.Fatalf("expected %s warning, got %s", WarnNoSuggestion, out)
	}

	// Text mode treats it as an error.
	jsonOutput = false
	if err := suggestCmd.RunE(suggestCmd, []string{"!!!"}); err == nil {
		t.Fatal("expected an error for a label with no usable characters")
	}
}
