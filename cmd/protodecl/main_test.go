package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunCLIHelp(t *testing.T) {
	if err := runCLI([]string{"protodecl", "help"}); err != nil {
		t.Fatalf("runCLI help failed: %v", err)
	}
}

func TestRunCLIInvalidCommand(t *testing.T) {
	err := runCLI([]string{"protodecl", "unknown"})
	if err == nil {
		t.Fatalf("expected invalid command error")
	}
	if !strings.Contains(err.Error(), "invalid command") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCLIWithoutCommand(t *testing.T) {
	err := runCLI([]string{"protodecl"})
	if err == nil {
		t.Fatalf("expected invalid command error")
	}
	if !strings.Contains(err.Error(), "invalid command") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLexCommandPrintsTokens(t *testing.T) {
	path := writeSource(t, "// note\nfield x u32 = 0xFF;")

	out, err := captureStdout(t, func() error {
		return lexCommand([]string{path})
	})
	if err != nil {
		t.Fatalf("lexCommand failed: %v", err)
	}

	want := strings.Join([]string{
		`1:1	Comment(" note")`,
		`2:1	Keyword("field")`,
		`2:7	Identifier("x")`,
		`2:9	Keyword("u32")`,
		`2:13	Operator('=')`,
		`2:15	Number(255)`,
		`2:19	Delimiter(';')`,
	}, "\n") + "\n"
	if out != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", out, want)
	}
}

func TestLexCommandNoComments(t *testing.T) {
	path := writeSource(t, "/* header */ packet P {}")

	out, err := captureStdout(t, func() error {
		return lexCommand([]string{"-no-comments", path})
	})
	if err != nil {
		t.Fatalf("lexCommand failed: %v", err)
	}
	if strings.Contains(out, "Comment") {
		t.Fatalf("comments should be omitted, got %q", out)
	}
	if !strings.HasPrefix(out, "1:14\tKeyword(\"packet\")") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestLexCommandJSON(t *testing.T) {
	path := writeSource(t, "field ok bool = true; 0b11")

	out, err := captureStdout(t, func() error {
		return lexCommand([]string{"-json", path})
	})
	if err != nil {
		t.Fatalf("lexCommand failed: %v", err)
	}

	var tokens []tokenJSON
	if err := json.Unmarshal([]byte(out), &tokens); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(tokens) != 7 {
		t.Fatalf("expected 7 tokens, got %d", len(tokens))
	}
	if tokens[4].Bool == nil || !*tokens[4].Bool {
		t.Fatalf("expected boolean true, got %+v", tokens[4])
	}
	last := tokens[6]
	if last.Number == nil || *last.Number != 3 || last.Lexeme != "3" || last.Offset != 22 {
		t.Fatalf("unexpected number token: %+v", last)
	}
}

func TestLexCommandDefaultsToExampleFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, defaultSource), []byte("enum E {}"), 0o644); err != nil {
		t.Fatalf("write example: %v", err)
	}
	t.Chdir(dir)

	out, err := captureStdout(t, func() error {
		return lexCommand(nil)
	})
	if err != nil {
		t.Fatalf("lexCommand failed: %v", err)
	}
	if !strings.Contains(out, `Keyword("enum")`) {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestLexCommandMissingFile(t *testing.T) {
	err := lexCommand([]string{filepath.Join(t.TempDir(), "missing.protodecl")})
	if err == nil {
		t.Fatalf("expected read error")
	}
	if !strings.Contains(err.Error(), "source error") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLexCommandInvalidNumberDiscardsTokens(t *testing.T) {
	path := writeSource(t, "field a u8 = 0x1G;")

	out, err := captureStdout(t, func() error {
		return lexCommand([]string{path})
	})
	if err == nil {
		t.Fatalf("expected number error")
	}
	if out != "" {
		t.Fatalf("no tokens should be printed, got %q", out)
	}
	if !strings.Contains(err.Error(), `invalid number literal "0x1G"`) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLexCommandRejectsExtraArguments(t *testing.T) {
	err := lexCommand([]string{"a.protodecl", "b.protodecl"})
	if err == nil || !strings.Contains(err.Error(), "at most one file") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckCommandNoIssues(t *testing.T) {
	path := writeSource(t, "packet P {\n  field a u8 = 7;\n}\n")

	out, err := captureStdout(t, func() error {
		return checkCommand([]string{path})
	})
	if err != nil {
		t.Fatalf("checkCommand failed: %v", err)
	}
	if !strings.Contains(out, "No issues found") {
		t.Fatalf("unexpected check output: %q", out)
	}
}

func TestCheckCommandReportsEveryBadLiteral(t *testing.T) {
	path := writeSource(t, "field a u8 = 0xZZ;\nfield b u64 = 99999999999999999999;\n")

	out, err := captureStdout(t, func() error {
		return checkCommand([]string{path})
	})
	if err == nil {
		t.Fatalf("expected check to report failures")
	}
	if !strings.Contains(err.Error(), "check found 2 issue(s)") {
		t.Fatalf("unexpected check error: %v", err)
	}
	if !strings.Contains(out, path+`:1:14: invalid number literal "0xZZ"`) {
		t.Fatalf("missing first diagnostic in %q", out)
	}
	if !strings.Contains(out, path+":2:15: number literal \"99999999999999999999\" does not fit in 64 bits") {
		t.Fatalf("missing second diagnostic in %q", out)
	}
}

func TestCheckCommandReportsUnexpectedCharacter(t *testing.T) {
	path := writeSource(t, "field a u8 @ 1;")

	out, err := captureStdout(t, func() error {
		return checkCommand([]string{path})
	})
	if err == nil || !strings.Contains(err.Error(), "check found 1 issue(s)") {
		t.Fatalf("unexpected check error: %v", err)
	}
	if !strings.Contains(out, path+`:1:12: unexpected character "@"`) {
		t.Fatalf("unexpected check output: %q", out)
	}
}

func TestCheckCommandKeepsScanningPastBadCharacters(t *testing.T) {
	path := writeSource(t, "field a u8 @ 0xZZ;\nfield b, u8 $;\n")

	out, err := captureStdout(t, func() error {
		return checkCommand([]string{path})
	})
	if err == nil || !strings.Contains(err.Error(), "check found 4 issue(s)") {
		t.Fatalf("unexpected check error: %v", err)
	}

	want := []string{
		path + `:1:12: unexpected character "@"`,
		path + `:1:14: invalid number literal "0xZZ"`,
		path + `:2:8: unexpected character ","`,
		path + `:2:13: unexpected character "$"`,
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(want) {
		t.Fatalf("expected %d diagnostics, got %q", len(want), out)
	}
	for i, line := range lines {
		if line != want[i] {
			t.Fatalf("diagnostic %d: got %q, want %q", i, line, want[i])
		}
	}
}

func TestCheckCommandRequiresPath(t *testing.T) {
	err := checkCommand(nil)
	if err == nil || !strings.Contains(err.Error(), "file path required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func writeSource(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.protodecl")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()
	_ = w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	if _, copyErr := io.Copy(&buf, r); copyErr != nil {
		t.Fatalf("read stdout: %v", copyErr)
	}
	_ = r.Close()
	return buf.String(), runErr
}
