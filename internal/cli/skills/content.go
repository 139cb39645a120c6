package skills

// StacklintSkillContent contains the SKILL.md content for AI assistants
const StacklintSkillContent = `---
name: using-stacklint
description: Validate deployment configurations with the stacklint CLI. Use when editing deployments.yaml files, checking lifecycle hooks (pre_deploy, post_deploy, pre_destroy, post_destroy), or debugging deployment config problems.
allowed-tools:
  - Bash(stacklint *)
---

# Using Stacklint

Stacklint lints declarative deployment configurations before the deployment engine runs them. It checks document shape and verifies that referenced hook scripts exist on disk. It never executes deployments or hooks.

**Config resolution:** file argument > ` + "`--config`" + ` flag > ` + "`STACKLINT_CONFIG`" + ` env var > ` + "`deployments.yaml`" + ` in current directory or parents > ` + "`~/.stacklint/deployments.yaml`" + `

## Quick Reference

### Validating
` + "```bash" + `
stacklint validate                 # Validate the resolved deployments file
stacklint validate deploy.yaml     # Validate a specific file
stacklint validate --strict        # Warnings also fail the exit code
stacklint validate --format json   # Machine-readable report
stacklint validate --watch         # Re-validate on every change
` + "```" + `

Exit code is 0 when no check failed. Missing hook scripts are warnings, not failures.

### Optional checks
` + "```bash" + `
stacklint validate --check-module-paths   # Module directories must exist
stacklint validate --check-hook-exec      # Hook scripts should be executable
` + "```" + `

### Inspecting hooks
` + "```bash" + `
stacklint hooks                    # Table of every hook reference
` + "```" + `

### Getting started
` + "```bash" + `
stacklint init                     # Scaffold a deployments.yaml
stacklint config init              # Initialize ~/.stacklint/config.yaml
stacklint config show              # Show global settings
` + "```" + `

## deployments.yaml format

` + "```yaml" + `
deployments:
  - name: main            # optional label
    modules:
      - path: modules/network
        pre_deploy:
          - path: hooks/check_env.sh
            args:
              environment: staging
        post_deploy:
          - path: hooks/notify.py
        pre_destroy: []
        post_destroy: []
` + "```" + `

Rules stacklint enforces:
- ` + "`deployments`" + ` must be present and non-empty (failure otherwise)
- A deployment with zero modules is a warning
- Hook scripts that do not exist on disk are warnings, deduplicated per path
- Unknown fields are ignored

## Typical workflow

1. Edit ` + "`deployments.yaml`" + `
2. Run ` + "`stacklint validate`" + ` and fix any failed checks
3. Review warnings: create missing hook scripts or drop stale references
4. Run ` + "`stacklint hooks`" + ` to double-check stage assignments
`
