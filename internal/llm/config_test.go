package llm

import "testing"

func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DOCPROBE_LLM_PROVIDER",
		"DOCPROBE_OPENAI_API_KEY", "DOCPROBE_ANTHROPIC_API_KEY",
		"DOCPROBE_GEMINI_API_KEY", "DOCPROBE_OPENROUTER_API_KEY",
		"OPENAI_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("DOCPROBE_LLM_PROVIDER", "anthropic")
	t.Setenv("DOCPROBE_ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("DOCPROBE_ANTHROPIC_MODEL", "claude-sonnet")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Fatalf("expected anthropic provider, got %q", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "sk-test" {
		t.Fatalf("unexpected API key: %q", cfg.Anthropic.APIKey)
	}
	if cfg.Anthropic.Model != "claude-sonnet" {
		t.Fatalf("unexpected model: %q", cfg.Anthropic.Model)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config should validate: %v", err)
	}
}

func TestValidate_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openai"
	cfg.OpenAI.APIKey = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected missing-credential error")
	}
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "llamacpp"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected unknown-provider error")
	}
}

func TestDiscoverConfig_PriorityOrder(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "openai" {
		t.Fatalf("OpenAI should win discovery, got %q", cfg.Provider)
	}
}

func TestDiscoverConfig_NothingSet(t *testing.T) {
	clearKeyEnv(t)

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected discovery to fail with no keys set")
	}
}
