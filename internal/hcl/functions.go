package hcl

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

func functions(getenv func(string) string) map[string]function.Function {
	return map[string]function.Function{
		"env":       envFunc(getenv),
		"trimspace": stdlib.TrimSpaceFunc,
		"lower":     stdlib.LowerFunc,
	}
}

// envFunc returns the value of an environment variable, or "" when unset.
func envFunc(getenv func(string) string) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "name", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			return cty.StringVal(getenv(args[0].AsString())), nil
		},
	})
}
