package lexer_test

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/takoeight0821/lox/lexer"
	"github.com/takoeight0821/lox/utils"
)

func TestGolden(t *testing.T) {
	t.Parallel()

	testfiles, err := utils.FindSourceFiles("../testdata")
	if err != nil {
		t.Errorf("failed to find test files: %v", err)
		return
	}
	if len(testfiles) == 0 {
		t.Fatal("no test files in ../testdata")
	}

	g := goldie.New(t, goldie.WithFixtureDir("../testdata"))

	for _, testfile := range testfiles {
		f, err := os.Open(testfile)
		if err != nil {
			t.Errorf("failed to read %s: %v", testfile, err)
			return
		}

		var builder strings.Builder
		scanner := bufio.NewScanner(f)
		for lineNo := 1; scanner.Scan(); lineNo++ {
			for _, r := range lexer.Scan(scanner.Text(), lineNo) {
				if r.Err != nil {
					builder.WriteString("error: ")
					builder.WriteString(r.Err.Error())
				} else {
					builder.WriteString(r.Token.String())
				}
				builder.WriteString("\n")
			}
		}
		f.Close()
		if err := scanner.Err(); err != nil {
			t.Errorf("failed to read %s: %v", testfile, err)
			return
		}

		name := strings.TrimSuffix(filepath.Base(testfile), filepath.Ext(testfile))
		g.Assert(t, name, []byte(builder.String()))
	}
}
