package queries

import (
	"testing"

	"github.com/stacklint/stacklint/internal/config"
	"github.com/stacklint/stacklint/internal/validate"
)

func TestHooksQueryHandler_Handle(t *testing.T) {
	doc := `
deployments:
  - name: main
    modules:
      - path: frontend
        pre_deploy:
          - path: hooks/setup.sh
            args:
              environment: staging
        post_deploy:
          - path: hooks/notify.py
`
	source := &mockConfigSource{data: []byte(doc)}
	prober := &mockProber{
		probeFunc: func(path string) (validate.PathInfo, error) {
			if path == "hooks/setup.sh" {
				return validate.PathInfo{Exists: true}, nil
			}
			return validate.PathInfo{}, nil
		},
	}
	handler := NewHooksQueryHandler(source, prober)

	rows, err := handler.Handle(HooksQuery{})
	if err != nil {
		t.Fatalf("Handle() returned error: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.Deployment != "main" {
		t.Errorf("Deployment = %q, want main", first.Deployment)
	}
	if first.Module != "frontend" {
		t.Errorf("Module = %q, want frontend", first.Module)
	}
	if first.Stage != config.StagePreDeploy {
		t.Errorf("Stage = %q, want pre_deploy", first.Stage)
	}
	if first.Script != "hooks/setup.sh" {
		t.Errorf("Script = %q, want hooks/setup.sh", first.Script)
	}
	if first.Args != 1 {
		t.Errorf("Args = %d, want 1", first.Args)
	}
	if !first.Found {
		t.Error("Expected first hook to be found")
	}

	second := rows[1]
	if second.Stage != config.StagePostDeploy {
		t.Errorf("Stage = %q, want post_deploy", second.Stage)
	}
	if second.Found {
		t.Error("Expected second hook to be missing")
	}
}

func TestHooksQueryHandler_Handle_NoHooks(t *testing.T) {
	source := &mockConfigSource{data: []byte("deployments:\n  - modules:\n      - path: frontend\n")}
	handler := NewHooksQueryHandler(source, &mockProber{})

	rows, err := handler.Handle(HooksQuery{})
	if err != nil {
		t.Fatalf("Handle() returned error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("Expected no rows, got %v", rows)
	}
}

func TestHooksQueryHandler_Handle_ParseError(t *testing.T) {
	source := &mockConfigSource{data: []byte("deployments: [")}
	handler := NewHooksQueryHandler(source, &mockProber{})

	_, err := handler.Handle(HooksQuery{})
	if err == nil {
		t.Fatal("Expected error for unparseable document")
	}
}
