package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rushteam/feedkit/pipeline"
)

func TestDefaultNodeFactory_BuildFromYAML(t *testing.T) {
	yamlSrc := `
pipeline:
  name: home_feed
  nodes:
    - type: rank.preference
    - type: rerank.threshold
      config:
        threshold: 2.5
    - type: filter.disliked
    - type: filter.rule
      config:
        rules:
          - 'item.category == "Nightlife"'
`
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	if err := os.WriteFile(path, []byte(yamlSrc), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := pipeline.LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML: %v", err)
	}

	p, err := cfg.BuildPipeline(DefaultNodeFactory())
	if err != nil {
		t.Fatalf("BuildPipeline: %v", err)
	}
	if len(p.Nodes) != 4 {
		t.Fatalf("built %d nodes, want 4", len(p.Nodes))
	}

	wantNames := []string{"rank.preference", "rerank.threshold", "filter.node", "filter.node"}
	for i, node := range p.Nodes {
		if node.Name() != wantNames[i] {
			t.Errorf("node %d = %s, want %s", i, node.Name(), wantNames[i])
		}
	}
}

func TestDefaultNodeFactory_Errors(t *testing.T) {
	f := DefaultNodeFactory()

	tests := []struct {
		name     string
		nodeType string
		cfg      map[string]interface{}
	}{
		{name: "unknown type", nodeType: "rank.unknown"},
		{name: "threshold wrong type", nodeType: "rerank.threshold", cfg: map[string]interface{}{"threshold": "high"}},
		{name: "rules wrong type", nodeType: "filter.rule", cfg: map[string]interface{}{"rules": "not-a-list"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.Build(tt.nodeType, tt.cfg); err == nil {
				t.Error("expected build error, got nil")
			}
		})
	}
}
