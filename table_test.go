package huffman

import (
	"strings"
	"testing"
)

func TestBuildCodeTable(t *testing.T) {
	root, err := BuildTree(makeTestTable())
	if err != nil {
		t.Fatal(err)
	}
	table := BuildCodeTable(root)

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(0x00) = \"1100\"\n",
		"\tEncode(0x01) = \"1101\"\n",
		"\tEncode(0x02) = \"100\"\n",
		"\tEncode(0x03) = \"101\"\n",
		"\tEncode(0x04) = \"111\"\n",
		"\tEncode(0x05) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = table.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if bits, ok := table.EncodedSize(makeTestTable()); !ok || bits != 224 {
		t.Errorf("wrong encoded size:\n\texpect: %d\n\tactual: %d", 224, bits)
	}
}

func TestBuildCodeTable_PrefixFree(t *testing.T) {
	testData := map[string]*FrequencyTable{
		"aaab":   CountString("aaab"),
		"skewed": CountBytes(makeTestData(50 * 1000)),
		"all":    CountBytes(allBytes()),
	}
	for name, ft := range testData {
		t.Run(name, func(t *testing.T) {
			root, err := BuildTree(ft)
			if err != nil {
				t.Fatal(err)
			}
			table := BuildCodeTable(root)
			if table.Len() != ft.Len() {
				t.Errorf("wrong number of codes:\n\texpect: %d\n\tactual: %d", ft.Len(), table.Len())
			}

			keys := table.Keys()
			for _, a := range keys {
				codeA, _ := table.Get(a)
				if codeA.Len() == 0 {
					t.Errorf("empty code for %v", a)
				}
				for _, b := range keys {
					if a == b {
						continue
					}
					codeB, _ := table.Get(b)
					if codeA.HasPrefix(codeB) {
						t.Errorf("code %s for %v has prefix %s for %v", codeA, a, codeB, b)
					}
				}
			}
		})
	}
}

func TestBuildCodeTable_SingleSymbol(t *testing.T) {
	table := BuildCodeTable(mustBuildTree(t, CountString("aaaa")))

	codeA, okA := table.Get('a')
	codeEOS, okEOS := table.Get(EndOfStream)
	if !okA || !okEOS {
		t.Fatalf("missing codes: 'a'=%v EOS=%v", okA, okEOS)
	}
	if codeA.Len() == 0 || codeEOS.Len() == 0 || codeA == codeEOS {
		t.Errorf("expected two distinct non-empty codes, got %s and %s", codeA, codeEOS)
	}
}

func TestBuildCodeTable_SingleEntry(t *testing.T) {
	ft := NewFrequencyTable()
	ft.Put(EndOfStream, 1)
	table := BuildCodeTable(mustBuildTree(t, ft))

	if table.Len() != 1 {
		t.Fatalf("expected one code, got %d", table.Len())
	}
	if hc, _ := table.Get(EndOfStream); hc.BitString() != "0" {
		t.Errorf("wrong code:\n\texpect: %s\n\tactual: %s", `"0"`, hc)
	}
}

func mustBuildTree(t *testing.T, ft *FrequencyTable) *Node {
	t.Helper()
	root, err := BuildTree(ft)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	return root
}
