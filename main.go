package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/repr"

	"rpncalc/calc"
)

var (
	exprFlag  = flag.String("e", "", "evaluate `expression` and exit")
	plainFlag = flag.Bool("plain", false, "accept + - * / ( ) instead of a b c d e f")
	rpnFlag   = flag.Bool("rpn", false, "print the postfix form of each expression")
	dumpFlag  = flag.Bool("dump", false, "dump the postfix tokens")
	quietFlag = flag.Bool("q", false, "do not prompt")
)

type interpreter struct {
	reader *bufio.Scanner
	out    io.Writer

	plain  bool
	rpn    bool
	dump   bool
	prompt bool

	failed bool
}

func newInterpreter(r io.Reader, w io.Writer) *interpreter {
	return &interpreter{
		reader: bufio.NewScanner(r),
		out:    w,
		prompt: true,
	}
}

// ReadLine returns the next input line. At end of input it returns io.EOF.
func (i *interpreter) ReadLine() (string, error) {
	if i.prompt {
		fmt.Fprintln(i.out, "Enter a valid expression:")
	}
	if ok := i.reader.Scan(); ok {
		return i.reader.Text(), nil
	}
	if err := i.reader.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (i *interpreter) Evaluate(line string) (int32, error) {
	if i.plain {
		line = calc.Encode(line)
	}
	tokens := calc.ToPostfix(line)
	if i.rpn {
		fmt.Fprintln(i.out, "Postfix:", calc.Format(tokens))
	}
	if i.dump {
		repr.New(i.out, repr.Indent("  ")).Println(tokens)
	}
	return calc.EvalPostfix(tokens)
}

// ExecuteLine evaluates one line and prints its result. Failures are logged
// and remembered; blank lines are skipped.
func (i *interpreter) ExecuteLine(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	v, err := i.Evaluate(line)
	if err != nil {
		log.Printf("%q: %v", line, err)
		i.failed = true
		return
	}
	fmt.Fprintf(i.out, "Result: %d\n", v)
}

func (i *interpreter) Run() error {
	for {
		line, err := i.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		i.ExecuteLine(line)
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("rpncalc: ")
	flag.Parse()

	it := newInterpreter(os.Stdin, os.Stdout)
	it.plain = *plainFlag
	it.rpn = *rpnFlag
	it.dump = *dumpFlag
	it.prompt = !*quietFlag

	if *exprFlag != "" {
		v, err := it.Evaluate(*exprFlag)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Fprintf(it.out, "Result: %d\n", v)
		return
	}

	if err := it.Run(); err != nil {
		log.Fatal(err)
	}
	if it.failed {
		os.Exit(1)
	}
}
