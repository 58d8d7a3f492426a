// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package hcl

import (
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/lonegunmanb/hclfuncs"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// envFunc returns the value of an environment variable, or an empty
// string when the variable is unset.
var envFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{
			Name: "name",
			Type: cty.String,
		},
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		return cty.StringVal(os.Getenv(args[0].AsString())), nil
	},
})

// EvalContext returns the evaluation context used for taskfile attribute
// expressions. It exposes the hclfuncs function library plus env().
func EvalContext() *hcl.EvalContext {
	funcs := hclfuncs.Functions(".")
	funcs["env"] = envFunc

	return &hcl.EvalContext{
		Functions: funcs,
		Variables: map[string]cty.Value{},
	}
}
