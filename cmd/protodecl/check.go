package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/mgomes/protodecl/protodecl"
)

func checkCommand(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return err
	}

	paths := fs.Args()
	if len(paths) == 0 {
		return errors.New("protodecl check: file path required")
	}

	engine := protodecl.MustNewEngine(protodecl.Config{})
	issues := 0
	for _, path := range paths {
		_, diags, err := engine.CheckFile(path)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		for _, diag := range diags {
			fmt.Printf("%s:%d:%d: %s\n", path, diag.Pos.Line, diag.Pos.Column, diag.Message())
		}
		issues += len(diags)
	}

	if issues == 0 {
		fmt.Println("No issues found")
		return nil
	}
	return fmt.Errorf("check found %d issue(s)", issues)
}
