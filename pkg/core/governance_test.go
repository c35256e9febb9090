//go:build governance

package core_test

import (
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// TestGovernance_CoreCohesion verifies that exported names in pkg/core are
// used by at least two other packages. Single-use types belong with their
// sole consumer.
func TestGovernance_CoreCohesion(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedImports | packages.NeedTypes |
			packages.NeedTypesInfo | packages.NeedDeps,
	}
	pkgs, err := packages.Load(cfg, modulePath+"/...")
	if err != nil {
		t.Fatalf("Failed to load packages: %v", err)
	}

	coreDefs := make(map[types.Object]string)
	var corePkg *packages.Package
	for _, p := range pkgs {
		if p.PkgPath == modulePath+"/pkg/core" {
			corePkg = p
			scope := p.Types.Scope()
			for _, name := range scope.Names() {
				if obj := scope.Lookup(name); obj.Exported() {
					coreDefs[obj] = name
				}
			}
			break
		}
	}
	if corePkg == nil {
		t.Fatal("Could not find pkg/core")
	}

	usageMap := make(map[string]map[string]bool)
	for _, name := range coreDefs {
		usageMap[name] = make(map[string]bool)
	}

	base := modulePath + "/"
	for _, p := range pkgs {
		if p.PkgPath == corePkg.PkgPath || p.TypesInfo == nil {
			continue
		}
		for _, obj := range p.TypesInfo.Uses {
			if name, ok := coreDefs[obj]; ok {
				usageMap[name][strings.TrimPrefix(p.PkgPath, base)] = true
			}
		}
	}

	for name, importers := range usageMap {
		switch len(importers) {
		case 0:
			t.Logf("WARNING: Unused Core Type: %s (consider deleting)", name)
		case 1:
			for user := range importers {
				t.Errorf("COHESION VIOLATION: 'core.%s' is used ONLY by '%s'.\n"+
					"   Fix: Move it from pkg/core to %s.", name, user, user)
			}
		}
	}
}

// TestGovernance_Layering checks the import direction between packages:
// nothing under pkg/ reaches into internal/, and the grammar layers never
// import the lint layers that sit on top of them.
func TestGovernance_Layering(t *testing.T) {
	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedImports}
	pkgs, err := packages.Load(cfg, modulePath+"/pkg/...")
	if err != nil {
		t.Fatalf("Failed to load packages: %v", err)
	}

	forbidden := map[string][]string{
		"pkg/segment": {"pkg/dialect", "pkg/grammar", "pkg/parser", "pkg/lint", "pkg/fix"},
		"pkg/grammar": {"pkg/dialect", "pkg/parser", "pkg/lint", "pkg/fix"},
		"pkg/dialect": {"pkg/parser", "pkg/lint", "pkg/fix"},
		"pkg/parser":  {"pkg/lint", "pkg/fix"},
		"pkg/fix":     {"pkg/lint"},
	}

	base := modulePath + "/"
	for _, p := range pkgs {
		rel := strings.TrimPrefix(p.PkgPath, base)
		for imp := range p.Imports {
			target := strings.TrimPrefix(imp, base)
			if strings.HasPrefix(target, "internal/") {
				t.Errorf("LAYER VIOLATION: %s imports %s", rel, target)
			}
			for _, bad := range forbidden[rel] {
				if target == bad || strings.HasPrefix(target, bad+"/") {
					t.Errorf("LAYER VIOLATION: %s must not import %s", rel, target)
				}
			}
		}
	}
}
