package internalcheck

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// The scalar and point arithmetic must stay on the constant-time curve
// library types; math/big operations are variable-time and leak through
// timing.
func TestNoBigIntInCore(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, checkedPackages...)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			for _, imp := range file.Imports {
				path, err := strconv.Unquote(imp.Path.Value)
				if err != nil {
					continue
				}
				if path == "math/big" {
					pos := pkg.Fset.Position(imp.Pos())
					findings = append(findings, fmt.Sprintf("%s: math/big is variable-time; use the curve library types", pos))
				}
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("constant-time policy violation:\n%s", strings.Join(findings, "\n"))
	}
}
