// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package hcl

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/peterh/liner"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// EnterDebugMode starts an interactive session for evaluating HCL
// expressions against the taskfile evaluation context.
func EnterDebugMode() {
	line := liner.NewLiner()

	defer func() {
		_ = line.Close()
	}()

	line.SetCtrlCAborts(true)
	fmt.Println("Entering debugging mode, press `quit` or `exit` or Ctrl+C to quit.")

	evalCtx := EvalContext()

	var err error

	var input string

	for {
		input, err = line.Prompt("snyke> ")
		if err != nil {
			break
		}

		if input == "quit" || input == "exit" {
			return
		}

		line.AppendHistory(input)

		expression, diag := hclsyntax.ParseExpression([]byte(input), "repl.hcl", hcl.InitialPos)
		if diag.HasErrors() {
			fmt.Printf("%s\n", diag.Error())
			continue
		}

		value, diag := expression.Value(evalCtx)
		if diag.HasErrors() {
			fmt.Printf("%s\n", diag.Error())
			continue
		}

		fmt.Println(ctyValueToString(value))
	}

	if errors.Is(err, liner.ErrPromptAborted) {
		fmt.Println("Aborted")
		return
	}

	fmt.Println("Error reading line: ", err)
}

func ctyValueToString(v cty.Value) string {
	if v.IsNull() {
		return "null"
	}

	if v.Type() == cty.String {
		return v.AsString()
	}

	b, err := ctyjson.Marshal(v, v.Type())
	if err != nil {
		return v.GoString()
	}

	return string(b)
}
