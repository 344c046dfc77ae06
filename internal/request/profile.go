package request

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// Profile is a reusable selection request declared in an HCL file. Fields
// left out of the file stay at their zero value; Defaults is nil when the
// file does not say either way, so the caller's own default applies.
type Profile struct {
	Select   []string
	Defaults *bool
	Output   string
}

// profileFile is the two-stage HCL schema: the vars block is decoded first
// so its values can feed the evaluation of the remaining attributes.
type profileFile struct {
	Vars   *varsBlock `hcl:"vars,block"`
	Remain hcl.Body   `hcl:",remain"`
}

type varsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

type profileBody struct {
	Select   []string `hcl:"select,optional"`
	Defaults *bool    `hcl:"defaults,optional"`
	Output   string   `hcl:"output,optional"`
}

// LoadProfile parses and evaluates an HCL selection profile. Attributes of
// the optional `vars` block are evaluated first and exposed as variables to
// the rest of the file, so a profile can branch on its own knobs:
//
//	vars {
//	  tier = "full"
//	}
//
//	select   = tier == "full" ? ["NET", "USB"] : ["NET"]
//	defaults = true
func LoadProfile(path string) (*Profile, error) {
	f, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing profile %s: %w", path, diags)
	}

	var pf profileFile
	if diags := gohcl.DecodeBody(f.Body, nil, &pf); diags.HasErrors() {
		return nil, fmt.Errorf("decoding profile %s: %w", path, diags)
	}

	evalCtx := &hcl.EvalContext{Variables: map[string]cty.Value{}}
	if pf.Vars != nil {
		attrs, diags := pf.Vars.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("decoding profile vars in %s: %w", path, diags)
		}
		for name, attr := range attrs {
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, fmt.Errorf("evaluating profile var %q in %s: %w", name, path, diags)
			}
			evalCtx.Variables[name] = val
		}
	}

	var body profileBody
	if diags := gohcl.DecodeBody(pf.Remain, evalCtx, &body); diags.HasErrors() {
		return nil, fmt.Errorf("decoding profile %s: %w", path, diags)
	}

	return &Profile{
		Select:   body.Select,
		Defaults: body.Defaults,
		Output:   body.Output,
	}, nil
}
