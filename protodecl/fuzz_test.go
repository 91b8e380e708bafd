package protodecl

import (
	"testing"
)

func FuzzTokenizeKeepsPositionsConsistent(f *testing.F) {
	f.Add("")
	f.Add("field x u32;")
	f.Add("// note\nfield")
	f.Add("/* unterminated")
	f.Add("packet P {\n  field a Bytes16le;\n  field b u8 = 0xFF;\n}\n")
	f.Add("a/b/*c*/d//e")
	f.Add("é\n\n\t0b1 $")

	f.Fuzz(func(t *testing.T, src string) {
		tokens, err := Tokenize(src)
		if err != nil {
			if _, ok := KindOf(err); !ok {
				t.Fatalf("unstructured error: %v", err)
			}
			return
		}
		requirePositionsMatchSource(t, src, tokens)

		resolved, errs := ResolveEach(tokens)
		if len(resolved) != len(tokens) {
			t.Fatalf("resolve changed length: %d -> %d", len(tokens), len(resolved))
		}
		_, err = Resolve(tokens)
		if (err == nil) != (len(errs) == 0) {
			t.Fatalf("Resolve and ResolveEach disagree: %v vs %d diagnostics", err, len(errs))
		}
	})
}
